package command_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/whitebox/pkg/command"
)

type mockRunner struct {
	mock.Mock
}

func (m *mockRunner) Run(ctx context.Context, argv []string) (command.Result, error) {
	args := m.Called(ctx, argv)
	return args.Get(0).(command.Result), args.Error(1)
}

func TestExecute(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("returns stdout", func(t *testing.T) {
		t.Parallel()
		r := new(mockRunner)
		r.On("Run", ctx, []string{"ls", "-l"}).
			Return(command.Result{Stdout: "file1\nfile2\n"}, nil).Once()

		out, err := command.Execute(ctx, r, []string{"ls", "-l"})
		require.NoError(t, err)
		assert.Equal(t, "file1\nfile2\n", out)
		r.AssertExpectations(t)
	})

	t.Run("ignores exit status", func(t *testing.T) {
		t.Parallel()
		r := new(mockRunner)
		r.On("Run", ctx, []string{"grep", "x"}).
			Return(command.Result{Stdout: "partial", Stderr: "boom", ExitCode: 2}, nil).Once()

		out, err := command.Execute(ctx, r, []string{"grep", "x"})
		require.NoError(t, err)
		assert.Equal(t, "partial", out)
	})

	t.Run("start failure propagates", func(t *testing.T) {
		t.Parallel()
		r := new(mockRunner)
		startErr := errors.New("executable not found")
		r.On("Run", ctx, []string{"nope"}).Return(command.Result{}, startErr).Once()

		_, err := command.Execute(ctx, r, []string{"nope"})
		assert.ErrorIs(t, err, startErr)
	})
}

func TestExecuteChecked(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	r := new(mockRunner)
	r.On("Run", ctx, []string{"false"}).
		Return(command.Result{Stderr: "bad input\n", ExitCode: 1}, nil).Once()
	r.On("Run", ctx, []string{"true"}).
		Return(command.Result{Stdout: "ok"}, nil).Once()

	_, err := command.ExecuteChecked(ctx, r, []string{"false"})
	assert.ErrorIs(t, err, command.ErrCommandFailed)
	assert.True(t, command.IsExitError(err))

	var exitErr *command.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, "bad input\n", exitErr.Stderr)
	assert.Contains(t, err.Error(), "exited with status 1: bad input")

	out, err := command.ExecuteChecked(ctx, r, []string{"true"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)

	r.AssertExpectations(t)
}

func TestExecRunner(t *testing.T) {
	t.Parallel()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	ctx := context.Background()
	r := command.NewExecRunner(command.WithDir(t.TempDir()), command.WithEnv("GREETING=hi"))

	t.Run("captures stdout and stderr", func(t *testing.T) {
		t.Parallel()
		res, err := r.Run(ctx, []string{"sh", "-c", `echo "$GREETING"; echo oops >&2`})
		require.NoError(t, err)
		assert.Equal(t, "hi\n", res.Stdout)
		assert.Equal(t, "oops\n", res.Stderr)
		assert.Zero(t, res.ExitCode)
	})

	t.Run("non-zero exit is not an error", func(t *testing.T) {
		t.Parallel()
		res, err := r.Run(ctx, []string{"sh", "-c", "echo out; exit 3"})
		require.NoError(t, err)
		assert.Equal(t, 3, res.ExitCode)
		assert.Equal(t, "out\n", res.Stdout)

		_, err = command.ExecuteChecked(ctx, r, []string{"sh", "-c", "exit 3"})
		assert.ErrorIs(t, err, command.ErrCommandFailed)
	})

	t.Run("missing executable", func(t *testing.T) {
		t.Parallel()
		_, err := r.Run(ctx, []string{"definitely-not-a-real-binary-xyz"})
		require.Error(t, err)
		assert.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("empty argv", func(t *testing.T) {
		t.Parallel()
		_, err := r.Run(ctx, nil)
		assert.ErrorIs(t, err, command.ErrEmptyCommand)
	})
}
