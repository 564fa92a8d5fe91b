package advisor

import (
	"errors"
	"fmt"
	"sync"
)

// State is the lifecycle of one submission.
type State string

const (
	StateIdle       State = "idle"
	StateGenerating State = "generating"
	StateSuccess    State = "success"
	StateFallback   State = "fallback"
	StateDisplayed  State = "displayed"
)

// ErrIllegalTransition is returned for transitions outside the lifecycle.
var ErrIllegalTransition = errors.New("illegal state transition")

// There is no edge back into generating: resubmitting starts a new Submission.
var transitions = map[State][]State{
	StateIdle:       {StateGenerating},
	StateGenerating: {StateSuccess, StateFallback},
	StateSuccess:    {StateDisplayed},
	StateFallback:   {StateDisplayed},
}

// Submission tracks the state of a single generation request.
type Submission struct {
	mu      sync.Mutex
	state   State
	history []State
}

// NewSubmission returns a submission in the idle state.
func NewSubmission() *Submission {
	return &Submission{state: StateIdle, history: []State{StateIdle}}
}

// State returns the current state.
func (s *Submission) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// History returns every state visited, oldest first.
func (s *Submission) History() []State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]State(nil), s.history...)
}

// Transition moves to the next state if the edge is legal.
func (s *Submission) Transition(to State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, allowed := range transitions[s.state] {
		if allowed == to {
			s.state = to
			s.history = append(s.history, to)
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, s.state, to)
}

// Result returns success or fallback once generation has finished, and the
// current state before that.
func (s *Submission) Result() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.history) - 1; i >= 0; i-- {
		if st := s.history[i]; st == StateSuccess || st == StateFallback {
			return st
		}
	}
	return s.state
}

// Complete records a result that did not need the model, such as a cache hit.
func (s *Submission) Complete(result State) error {
	if err := s.Transition(StateGenerating); err != nil {
		return err
	}
	return s.Transition(result)
}
