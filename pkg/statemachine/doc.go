// Package statemachine is the small finite-state-machine engine behind the
// vending machine and traffic light packages.
//
// A machine holds exactly one current State and a transition table keyed by
// the name of the source state and the name of the Event. Fire looks up the
// candidate transitions, evaluates their Guards in declaration order, runs the
// Actions of the first transition whose guards all pass and only then moves
// the machine to the target state.
//
// # Usage
//
//	const (
//	    Ready      = statemachine.StringState("Ready")
//	    Dispensing = statemachine.StringState("Dispensing")
//	    InsertCoin = statemachine.StringEvent("insert_coin")
//	)
//
//	m := statemachine.MustNew(Ready,
//	    statemachine.WithTransition(Ready, Dispensing, InsertCoin),
//	)
//
//	if err := m.Fire(ctx, InsertCoin, nil); statemachine.IsNoTransitionAvailableError(err) {
//	    // the event is not valid in the current state
//	}
//
// # Error Handling
//
// Fire never panics on an unknown transition. It returns
// *ErrNoTransitionAvailable when the current state has no transition for the
// event and *ErrTransitionRejected when every candidate was vetoed by a guard.
// Use IsNoTransitionAvailableError and IsTransitionRejectedError to tell them
// apart.
//
// # Concurrency
//
// A Machine is owned by a single caller and performs no locking. Callers that
// share one instance between goroutines must serialize access themselves.
package statemachine
