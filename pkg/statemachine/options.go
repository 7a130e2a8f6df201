package statemachine

import (
	"fmt"
	"log/slog"
)

// Option configures a machine during construction.
type Option func(*Machine) error

// TransitionOption attaches guards and actions to a single transition.
type TransitionOption func(*transitionConfig)

// TransitionDef describes a transition for WithTransitions.
type TransitionDef struct {
	From    State
	To      State
	Event   Event
	Guards  []Guard
	Actions []Action
}

type transitionConfig struct {
	guards  []Guard
	actions []Action
}

// New creates a machine in initialState and applies opts in order.
func New(initialState State, opts ...Option) (*Machine, error) {
	if initialState == nil {
		return nil, ErrNilInitialState
	}

	m := newMachine(initialState)
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// MustNew is New that panics on a configuration error.
func MustNew(initialState State, opts ...Option) *Machine {
	m, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return m
}

// WithLogger logs transitions and refusals at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(m *Machine) error {
		m.log = l
		return nil
	}
}

// WithTransition adds a single transition.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(m *Machine) error {
		cfg := &transitionConfig{}
		for _, opt := range opts {
			opt(cfg)
		}
		return m.AddTransition(from, to, event, cfg.guards, cfg.actions)
	}
}

// WithTransitions adds several transitions at once.
func WithTransitions(transitions []TransitionDef) Option {
	return func(m *Machine) error {
		for i, t := range transitions {
			if err := m.AddTransition(t.From, t.To, t.Event, t.Guards, t.Actions); err != nil {
				return fmt.Errorf("failed to add transition[%d] %s->%s on %s: %w",
					i, nameOf(t.From), nameOf(t.To), nameOf(t.Event), err)
			}
		}
		return nil
	}
}

func WithGuard(guard Guard) TransitionOption {
	return WithGuards(guard)
}

func WithGuards(guards ...Guard) TransitionOption {
	return func(cfg *transitionConfig) {
		for _, guard := range guards {
			if guard != nil {
				cfg.guards = append(cfg.guards, guard)
			}
		}
	}
}

func WithAction(action Action) TransitionOption {
	return WithActions(action)
}

func WithActions(actions ...Action) TransitionOption {
	return func(cfg *transitionConfig) {
		for _, action := range actions {
			if action != nil {
				cfg.actions = append(cfg.actions, action)
			}
		}
	}
}

func nameOf(v interface{ Name() string }) string {
	if v == nil {
		return "<nil>"
	}
	return v.Name()
}
