package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("order", slog.Int("lines", 2), logger.Result(9.5))
	require.Equal(t, "order", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "lines", g[0].Key)
	assert.Equal(t, "result", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())
	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "req-1", logger.RequestID("req-1").Value.String())
	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestNamedAttrs(t *testing.T) {
	tests := []struct {
		attr slog.Attr
		key  string
	}{
		{logger.Rule("get_grade"), "rule"},
		{logger.State("Ready"), "state"},
		{logger.Event("insert_coin"), "event"},
		{logger.Component("httpapi"), "component"},
		{logger.Command([]string{"echo", "hi"}), "command"},
		{logger.Duration("1s"), "duration"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.key, tt.attr.Key)
	}
}
