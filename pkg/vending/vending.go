// Package vending implements a coin-operated drink machine on top of the
// statemachine engine. Invalid operations are reported in the returned
// message and never change the state.
package vending

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/whitebox/pkg/statemachine"
)

const (
	Ready      statemachine.StringState = "Ready"
	Dispensing statemachine.StringState = "Dispensing"
)

const (
	InsertCoinEvent  statemachine.StringEvent = "insert_coin"
	SelectDrinkEvent statemachine.StringEvent = "select_drink"
)

// Messages returned by the machine operations.
const (
	MsgCoinInserted     = "Coin Inserted. Select your drink."
	MsgDrinkDispensed   = "Drink dispensed. Enjoy!"
	MsgInvalidOperation = "Invalid operation in current state."
)

// Machine is a vending machine. It is not safe for concurrent use.
type Machine struct {
	fsm *statemachine.Machine
}

// Option configures a Machine.
type Option func(*config)

type config struct {
	log *slog.Logger
}

// WithLogger logs every transition attempt at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.log = l
	}
}

// New returns a machine in the Ready state.
func New(opts ...Option) *Machine {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	fsmOpts := []statemachine.Option{
		statemachine.WithTransition(Ready, Dispensing, InsertCoinEvent),
		statemachine.WithTransition(Dispensing, Ready, SelectDrinkEvent),
	}
	if cfg.log != nil {
		fsmOpts = append(fsmOpts, statemachine.WithLogger(cfg.log))
	}

	return &Machine{fsm: statemachine.MustNew(Ready, fsmOpts...)}
}

// InsertCoin accepts a coin while Ready.
func (m *Machine) InsertCoin(ctx context.Context) string {
	return m.fire(ctx, InsertCoinEvent, MsgCoinInserted)
}

// SelectDrink dispenses a drink after a coin was inserted.
func (m *Machine) SelectDrink(ctx context.Context) string {
	return m.fire(ctx, SelectDrinkEvent, MsgDrinkDispensed)
}

// Fire dispatches an event by name, as used by the CLI and HTTP API.
// Unknown names yield MsgInvalidOperation.
func (m *Machine) Fire(ctx context.Context, event string) string {
	switch statemachine.StringEvent(event) {
	case InsertCoinEvent:
		return m.InsertCoin(ctx)
	case SelectDrinkEvent:
		return m.SelectDrink(ctx)
	default:
		return MsgInvalidOperation
	}
}

// State returns the current state.
func (m *Machine) State() statemachine.State {
	return m.fsm.Current()
}

func (m *Machine) fire(ctx context.Context, event statemachine.Event, ok string) string {
	if err := m.fsm.Fire(ctx, event, nil); err != nil {
		return MsgInvalidOperation
	}
	return ok
}
