// Package trafficlight implements a three-phase light that cycles
// Red, Green, Yellow and back to Red.
package trafficlight

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/whitebox/pkg/logger"
	"github.com/dmitrymomot/whitebox/pkg/statemachine"
)

const (
	Red    statemachine.StringState = "Red"
	Green  statemachine.StringState = "Green"
	Yellow statemachine.StringState = "Yellow"
)

// Next advances the light one phase.
const Next statemachine.StringEvent = "next"

// Light is a traffic light. It is not safe for concurrent use.
type Light struct {
	fsm *statemachine.Machine
	log *slog.Logger
}

// New returns a light showing Red. A nil logger disables transition logging.
func New(log *slog.Logger) *Light {
	var opts []statemachine.Option
	if log != nil {
		opts = append(opts, statemachine.WithLogger(log))
	} else {
		log = logger.Nop()
	}

	b, err := statemachine.NewBuilder(Red, opts...).Cycle(Next, Red, Green, Yellow)
	if err != nil {
		panic(fmt.Sprintf("trafficlight: %v", err))
	}
	fsm, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("trafficlight: %v", err))
	}

	return &Light{fsm: fsm, log: log}
}

// ChangeState advances the light and returns the new phase.
func (l *Light) ChangeState(ctx context.Context) statemachine.State {
	if err := l.fsm.Fire(ctx, Next, nil); err != nil {
		l.log.ErrorContext(ctx, "traffic light did not advance",
			logger.State(l.fsm.Current().Name()), logger.Error(err))
	}
	return l.fsm.Current()
}

// State returns the current phase.
func (l *Light) State() statemachine.State {
	return l.fsm.Current()
}
