package rules_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/rules"
)

func TestIsEven(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 2, -2, 1 << 40} {
		assert.True(t, rules.IsEven(n), n)
	}
	for _, n := range []int{7, 1, -1, -3} {
		assert.False(t, rules.IsEven(n), n)
	}
	for n := -10; n <= 10; n++ {
		assert.Equal(t, n%2 == 0, rules.IsEven(n), n)
	}
}

func TestDivide(t *testing.T) {
	t.Parallel()

	t.Run("non zero divisor", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 5.0, rules.Divide(10, 2))
		assert.Equal(t, -2.5, rules.Divide(5, -2))
		assert.InDelta(t, 1.0/3, rules.Divide(1, 3), 1e-12)
	})

	t.Run("zero divisor returns zero", func(t *testing.T) {
		t.Parallel()
		for _, a := range []float64{10, 0, -7.5, math.MaxFloat64} {
			assert.Equal(t, 0.0, rules.Divide(a, 0), a)
		}
	})
}

type celsius float32

func TestCheckNumberStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int zero", 0, rules.StatusZero},
		{"int positive", 1, rules.StatusPositive},
		{"int negative", -1, rules.StatusNegative},
		{"uint zero", uint8(0), rules.StatusZero},
		{"uint positive", uint64(3), rules.StatusPositive},
		{"float negative", -0.5, rules.StatusNegative},
		{"float negative zero", math.Copysign(0, -1), rules.StatusZero},
		{"named numeric", celsius(-3), rules.StatusNegative},
		{"infinity", math.Inf(1), rules.StatusPositive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := rules.CheckNumberStatus(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckNumberStatusRejectsNonNumeric(t *testing.T) {
	t.Parallel()

	for _, in := range []any{"R", nil, true, []int{1}, math.NaN(), struct{}{}} {
		got, err := rules.CheckNumberStatus(in)
		assert.ErrorIs(t, err, rules.ErrNotNumeric, "%#v", in)
		assert.Empty(t, got)
	}
}
