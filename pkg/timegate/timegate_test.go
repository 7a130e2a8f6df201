package timegate_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/whitebox/pkg/clock"
	"github.com/dmitrymomot/whitebox/pkg/timegate"
)

type mockClock struct {
	mock.Mock
}

func (m *mockClock) Now() time.Time {
	args := m.Called()
	return args.Get(0).(time.Time)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{"epoch", time.Unix(0, 0), timegate.ActionA},
		{"five seconds", time.Unix(5, 0), timegate.ActionA},
		{"just below threshold", time.Unix(9, 999_999_999), timegate.ActionA},
		{"at threshold", time.Unix(10, 0), timegate.ActionB},
		{"fifteen seconds", time.Unix(15, 0), timegate.ActionB},
		{"present day", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), timegate.ActionB},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := new(mockClock)
			c.On("Now").Return(tt.at).Once()

			s := timegate.New(timegate.WithClock(c))
			assert.Equal(t, tt.want, s.Select(context.Background()))

			c.AssertNumberOfCalls(t, "Now", 1)
		})
	}
}

func TestWithThreshold(t *testing.T) {
	t.Parallel()

	s := timegate.New(timegate.WithClock(clock.Unix(15)), timegate.WithThreshold(20))
	assert.Equal(t, timegate.ActionA, s.Select(context.Background()))

	s = timegate.New(timegate.WithClock(clock.Unix(20)), timegate.WithThreshold(20))
	assert.Equal(t, timegate.ActionB, s.Select(context.Background()))
}

func TestDefaultClock(t *testing.T) {
	t.Parallel()
	assert.Equal(t, timegate.ActionB, timegate.New().Select(context.Background()))
}
