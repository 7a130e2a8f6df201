// Package cli implements the whitebox command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/internal/config"
	"github.com/dmitrymomot/whitebox/pkg/clientip"
	"github.com/dmitrymomot/whitebox/pkg/clock"
	"github.com/dmitrymomot/whitebox/pkg/command"
	"github.com/dmitrymomot/whitebox/pkg/fetch"
	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/requestid"
)

// Execute runs the root command with os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// Option replaces one of the platform seams used by the subcommands.
type Option func(*app)

// WithDoer sets the HTTP client used by fetch.
func WithDoer(d fetch.Doer) Option {
	return func(a *app) { a.doer = d }
}

// WithRunner sets the process runner used by exec.
func WithRunner(r command.Runner) Option {
	return func(a *app) { a.runner = r }
}

// WithClock sets the clock read by action.
func WithClock(c clock.Clock) Option {
	return func(a *app) { a.clock = c }
}

type app struct {
	cfg config.Config
	log *slog.Logger

	doer   fetch.Doer
	runner command.Runner
	clock  clock.Clock
}

// NewRootCmd builds the whitebox command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	a := &app{log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}

	var logLevel string

	cmd := &cobra.Command{
		Use:          "whitebox",
		Short:        "Decision rules, state machines and platform probes",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				if _, err := logger.ParseLevel(logLevel); err != nil {
					return err
				}
				cfg.LogLevel = logLevel
			}
			a.cfg = cfg
			a.log = cfg.Logger(
				logger.WithOutput(cmd.ErrOrStderr()),
				logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
			)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")

	cmd.AddCommand(
		evenCmd(a),
		divideCmd(a),
		gradeCmd(a),
		triangleCmd(a),
		statusCmd(a),
		passwordCmd(a),
		discountCmd(a),
		orderCmd(a),
		shippingCmd(a),
		loginCmd(a),
		ageCmd(a),
		categoryCmd(a),
		emailCmd(a),
		c2fCmd(a),
		vendingCmd(a),
		trafficCmd(a),
		fetchCmd(a),
		readCmd(a),
		execCmd(a),
		actionCmd(a),
		serveCmd(a),
	)

	return cmd
}

func writeln(w io.Writer, v ...any) {
	_, _ = fmt.Fprintln(w, v...)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func parseFloat(name, s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not a number", ErrInvalidArgument, name, s)
	}
	return f, nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %q is not an integer", ErrInvalidArgument, name, s)
	}
	return n, nil
}
