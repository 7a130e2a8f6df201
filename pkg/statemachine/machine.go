package statemachine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/whitebox/pkg/logger"
)

// Machine is the in-memory StateMachine implementation.
// Transitions are stored as [fromState][event][]Transition; multiple entries
// for the same pair are tried in declaration order.
type Machine struct {
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
	eventOrder   map[string][]Event
	log          *slog.Logger
}

func newMachine(initialState State) *Machine {
	return &Machine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
		eventOrder:   make(map[string][]Event),
	}
}

func (m *Machine) Current() State {
	return m.currentState
}

func (m *Machine) AddTransition(from, to State, event Event, guards []Guard, actions []Action) error {
	if from == nil || to == nil || event == nil {
		return ErrInvalidTransition
	}

	fromName := from.Name()
	eventName := event.Name()

	if _, ok := m.transitions[fromName]; !ok {
		m.transitions[fromName] = make(map[string][]Transition)
	}
	if _, seen := m.transitions[fromName][eventName]; !seen {
		m.eventOrder[fromName] = append(m.eventOrder[fromName], event)
	}

	m.transitions[fromName][eventName] = append(m.transitions[fromName][eventName], Transition{
		From:    from,
		To:      to,
		Event:   event,
		Guards:  guards,
		Actions: actions,
	})
	return nil
}

func (m *Machine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	stateName := m.currentState.Name()
	eventName := event.Name()

	candidates := m.transitions[stateName][eventName]
	if len(candidates) == 0 {
		m.debug(ctx, "transition not available", stateName, eventName)
		return NewErrNoTransitionAvailable(stateName, eventName)
	}

	next := m.selectTransition(ctx, candidates, event, data)
	if next == nil {
		m.debug(ctx, "transition rejected by guards", stateName, eventName)
		return NewErrTransitionRejected(stateName, eventName)
	}

	for _, action := range next.Actions {
		if action == nil {
			continue
		}
		if err := action(ctx, m.currentState, next.To, event, data); err != nil {
			return fmt.Errorf("action failed: %w", err)
		}
	}

	m.currentState = next.To
	m.debug(ctx, "transition applied", stateName, eventName, logger.State(next.To.Name()))
	return nil
}

func (m *Machine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}
	candidates := m.transitions[m.currentState.Name()][event.Name()]
	return m.selectTransition(ctx, candidates, event, data) != nil
}

// Events lists the events defined for the current state, in the order their
// first transition was added. Guards are not evaluated.
func (m *Machine) Events() []Event {
	events := m.eventOrder[m.currentState.Name()]
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

func (m *Machine) Reset() error {
	m.currentState = m.initialState
	return nil
}

// selectTransition returns the first candidate whose guards all pass.
func (m *Machine) selectTransition(ctx context.Context, candidates []Transition, event Event, data any) *Transition {
	for i, t := range candidates {
		allowed := true
		for _, guard := range t.Guards {
			if guard != nil && !guard(ctx, m.currentState, event, data) {
				allowed = false
				break
			}
		}
		if allowed {
			return &candidates[i]
		}
	}
	return nil
}

func (m *Machine) debug(ctx context.Context, msg, from, event string, attrs ...slog.Attr) {
	if m.log == nil {
		return
	}
	attrs = append(attrs, slog.String("from", from), logger.Event(event))
	m.log.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
