package session

import (
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/chapterquiz/internal/bank"
)

// Scope selects the questions a session draws from: ScopeAll or a chapter name.
type Scope string

// ScopeAll selects every question in the bank.
const ScopeAll Scope = "ALL"

// Phase represents where a session is in its lifecycle.
type Phase int

const (
	PhaseStarted   Phase = iota // First question shown, nothing answered yet
	PhaseAnswering              // Later question shown, awaiting an answer
	PhaseAnswered               // Answer submitted for the current question
	PhaseFinished               // All questions advanced past; terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseStarted:
		return "started"
	case PhaseAnswering:
		return "answering"
	case PhaseAnswered:
		return "answered"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Outcome is the last answer recorded for one question of the session.
type Outcome struct {
	Answered bool
	Correct  bool
	Choice   string
}

// Session is one play-through over a shuffled subset of a bank. It is owned
// by a single caller and discarded when the caller returns to the top screen.
type Session struct {
	// ID correlates log lines for this play-through.
	ID string

	// Scope is the selection the session was started with.
	Scope Scope

	// StartTime is when Start was called.
	StartTime time.Time

	order       []bank.Question
	position    int
	presented   []string
	selected    string
	hasSelected bool
	phase       Phase
	outcomes    []Outcome

	rng *rand.Rand
	log logrus.FieldLogger
	now func() time.Time
}

// AnswerResult is returned by SubmitAnswer.
type AnswerResult struct {
	IsCorrect bool
}

// AdvanceResult is returned by Advance.
type AdvanceResult struct {
	Done bool
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Position returns the 0-based index of the current question.
func (s *Session) Position() int {
	return s.position
}

// Len returns the number of questions in the session.
func (s *Session) Len() int {
	return len(s.order)
}

// Selected returns the choice submitted for the current question, if any.
func (s *Session) Selected() (string, bool) {
	return s.selected, s.hasSelected
}

// PresentedChoices returns the shuffled display order of the current
// question's choices.
func (s *Session) PresentedChoices() []string {
	out := make([]string, len(s.presented))
	copy(out, s.presented)
	return out
}

// Outcomes returns the recorded outcome of every question, in session order.
func (s *Session) Outcomes() []Outcome {
	out := make([]Outcome, len(s.outcomes))
	copy(out, s.outcomes)
	return out
}
