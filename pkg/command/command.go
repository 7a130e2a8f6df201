// Package command runs external processes and captures their output as text.
//
// Execute is unchecked: it returns whatever the process wrote to stdout and
// ignores the exit status. ExecuteChecked additionally turns a non-zero exit
// status into an *ExitError that matches ErrCommandFailed.
package command

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

// Result is the captured outcome of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts argv[0] with the remaining elements as arguments and waits
// for it to finish. A non-zero exit status is reported in Result, not as an
// error; the error covers failures to start or wait for the process.
type Runner interface {
	Run(ctx context.Context, argv []string) (Result, error)
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct {
	dir string
	env []string
	log *slog.Logger
}

// RunnerOption configures an ExecRunner.
type RunnerOption func(*ExecRunner)

// WithDir sets the working directory for executed processes.
func WithDir(dir string) RunnerOption {
	return func(r *ExecRunner) {
		r.dir = dir
	}
}

// WithEnv appends KEY=VALUE pairs to the inherited environment.
func WithEnv(kv ...string) RunnerOption {
	return func(r *ExecRunner) {
		r.env = append(r.env, kv...)
	}
}

func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *ExecRunner) {
		r.log = l
	}
}

func NewExecRunner(opts ...RunnerOption) *ExecRunner {
	r := &ExecRunner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *ExecRunner) Run(ctx context.Context, argv []string) (Result, error) {
	if len(argv) == 0 || argv[0] == "" {
		return Result{}, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.dir
	if len(r.env) > 0 {
		cmd.Env = append(cmd.Environ(), r.env...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	res := Result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		res.ExitCode = exitErr.ExitCode()
	default:
		return res, fmt.Errorf("run %s: %w", argv[0], err)
	}

	if r.log != nil {
		r.log.DebugContext(ctx, "command finished",
			logger.Command(argv),
			slog.Int("exit_code", res.ExitCode),
			logger.Duration(time.Since(start)),
		)
	}
	return res, nil
}

// Execute runs argv and returns its stdout regardless of the exit status.
func Execute(ctx context.Context, r Runner, argv []string) (string, error) {
	res, err := r.Run(ctx, argv)
	if err != nil {
		return "", err
	}
	return res.Stdout, nil
}

// ExecuteChecked is Execute that fails with *ExitError on a non-zero exit
// status. The partial stdout is still returned.
func ExecuteChecked(ctx context.Context, r Runner, argv []string) (string, error) {
	res, err := r.Run(ctx, argv)
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return res.Stdout, &ExitError{Argv: argv, Code: res.ExitCode, Stderr: res.Stderr}
	}
	return res.Stdout, nil
}
