package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/clock"
	"github.com/dmitrymomot/whitebox/pkg/command"
	"github.com/dmitrymomot/whitebox/pkg/fetch"
	"github.com/dmitrymomot/whitebox/pkg/file"
	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/timegate"
)

func fetchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch URL",
		Short: "GET a URL and pretty-print its JSON body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []fetch.Option{fetch.WithTimeout(a.cfg.FetchTimeout)}
			if a.doer != nil {
				opts = append(opts, fetch.WithDoer(a.doer))
			}
			v, err := fetch.New(opts...).JSON(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			b, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return err
			}
			writeln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}
}

func readCmd(a *app) *cobra.Command {
	var encoding string

	c := &cobra.Command{
		Use:   "read PATH",
		Short: "Print a text file, decoded to UTF-8",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.reader(encoding)
			if err != nil {
				return err
			}
			text, err := r.Read(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	c.Flags().StringVar(&encoding, "encoding", "", "source encoding (default FILE_ENCODING)")
	return c
}

func execCmd(a *app) *cobra.Command {
	var check bool

	c := &cobra.Command{
		Use:     "exec [--check] -- ARGV...",
		Short:   "Run a command and print its stdout",
		Long:    "Run a command and print its stdout. The exit status is ignored unless --check is set.",
		Example: "  whitebox exec -- ls -la\n  whitebox exec --check -- false",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := a.runner
			if r == nil {
				r = command.NewExecRunner(command.WithLogger(a.log.With(logger.Component("command"))))
			}
			run := command.Execute
			if check {
				run = command.ExecuteChecked
			}
			stdout, err := run(cmd.Context(), r, args)
			_, _ = fmt.Fprint(cmd.OutOrStdout(), stdout)
			return err
		},
	}

	c.Flags().BoolVar(&check, "check", false, "fail on a non-zero exit status")
	return c
}

func actionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "action",
		Short: "Pick Action A or Action B from the current time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.print(cmd, "time_gated_action", a.selector().Select(cmd.Context()))
		},
	}
}

func (a *app) reader(encoding string) (*file.LocalReader, error) {
	opts := a.cfg.FileOptions()
	if encoding != "" {
		opts = append(opts, file.WithEncoding(encoding))
	}
	return file.NewLocalReader(opts...)
}

func (a *app) selector() *timegate.Selector {
	c := a.clock
	if c == nil {
		c = clock.System
	}
	return timegate.New(
		timegate.WithClock(c),
		timegate.WithThreshold(a.cfg.ActionThreshold),
		timegate.WithLogger(a.log),
	)
}
