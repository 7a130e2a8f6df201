package statemachine

// Builder assembles a machine one transition at a time:
//
//	b := statemachine.NewBuilder(Red)
//	b.From(Red).When(Next).To(Green)
//	if _, err := b.Add(); err != nil { ... }
type Builder struct {
	machine      *Machine
	currentFrom  State
	currentEvent Event
	currentTo    State
	guards       []Guard
	actions      []Action
	err          error
}

// NewBuilder starts a builder for a machine in initialState.
// A nil initialState and the first failing option are reported by Build.
func NewBuilder(initialState State, opts ...Option) *Builder {
	b := &Builder{machine: newMachine(initialState)}
	for _, opt := range opts {
		if err := opt(b.machine); err != nil {
			b.err = err
			break
		}
	}
	return b
}

func (b *Builder) From(state State) *Builder {
	b.reset()
	b.currentFrom = state
	return b
}

func (b *Builder) When(event Event) *Builder {
	b.currentEvent = event
	return b
}

func (b *Builder) To(state State) *Builder {
	b.currentTo = state
	return b
}

func (b *Builder) WithGuard(guard Guard) *Builder {
	b.guards = append(b.guards, guard)
	return b
}

func (b *Builder) WithAction(action Action) *Builder {
	b.actions = append(b.actions, action)
	return b
}

// Add commits the pending From/When/To transition.
func (b *Builder) Add() (*Builder, error) {
	if err := b.machine.AddTransition(b.currentFrom, b.currentTo, b.currentEvent, b.guards, b.actions); err != nil {
		return b, err
	}
	b.reset()
	return b, nil
}

// Cycle links states into a ring driven by a single event:
// states[0] -> states[1] -> ... -> states[0].
func (b *Builder) Cycle(event Event, states ...State) (*Builder, error) {
	for i, from := range states {
		to := states[(i+1)%len(states)]
		if err := b.machine.AddTransition(from, to, event, nil, nil); err != nil {
			return b, err
		}
	}
	return b, nil
}

// Build returns the machine assembled so far.
func (b *Builder) Build() (*Machine, error) {
	if b.machine.initialState == nil {
		return nil, ErrNilInitialState
	}
	if b.err != nil {
		return nil, b.err
	}
	return b.machine, nil
}

func (b *Builder) reset() {
	b.currentFrom = nil
	b.currentEvent = nil
	b.currentTo = nil
	b.guards = nil
	b.actions = nil
}
