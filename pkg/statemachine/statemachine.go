package statemachine

import "context"

// State is a named node of the machine.
type State interface {
	Name() string
}

// Event triggers a transition out of the current state.
type Event interface {
	Name() string
}

// Action runs during a transition. A non-nil error aborts the transition and
// leaves the machine in its source state.
type Action func(ctx context.Context, from, to State, event Event, data any) error

// Guard vetoes a transition by returning false.
type Guard func(ctx context.Context, from State, event Event, data any) bool

// Transition is one edge of the machine.
type Transition struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

// StateMachine is the behavior shared by every machine built with this package.
type StateMachine interface {
	Current() State
	AddTransition(from, to State, event Event, guards []Guard, actions []Action) error
	Fire(ctx context.Context, event Event, data any) error
	CanFire(ctx context.Context, event Event, data any) bool
	Events() []Event
	Reset() error
}

// StringState is a State identified by its string value.
type StringState string

func (s StringState) Name() string { return string(s) }

func (s StringState) String() string { return string(s) }

// StringEvent is an Event identified by its string value.
type StringEvent string

func (e StringEvent) Name() string { return string(e) }

func (e StringEvent) String() string { return string(e) }
