package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/trafficlight"
	"github.com/dmitrymomot/whitebox/pkg/vending"
)

func vendingCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "vending EVENT...",
		Short:   "Feed events to a fresh vending machine",
		Long:    "Feed events to a fresh vending machine. Events are insert_coin and select_drink; anything else is an invalid operation.",
		Example: "  whitebox vending insert_coin select_drink",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m := vending.New(vending.WithLogger(a.log.With(logger.Component("vending"))))
			out := cmd.OutOrStdout()
			for _, event := range args {
				msg := m.Fire(cmd.Context(), event)
				writeln(out, fmt.Sprintf("%s: %s [%s]", event, msg, m.State().Name()))
			}
			return nil
		},
	}
}

func trafficCmd(a *app) *cobra.Command {
	var steps int

	c := &cobra.Command{
		Use:   "traffic",
		Short: "Advance a fresh traffic light and print each state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 {
				return fmt.Errorf("%w: steps must be positive", ErrInvalidArgument)
			}
			l := trafficlight.New(a.log.With(logger.Component("trafficlight")))
			out := cmd.OutOrStdout()
			for range steps {
				writeln(out, l.ChangeState(cmd.Context()).Name())
			}
			return nil
		},
	}

	c.Flags().IntVarP(&steps, "steps", "n", 1, "number of state changes")
	return c
}
