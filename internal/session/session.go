package session

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/chapterquiz/internal/bank"
)

// ErrOutOfRange is returned when an operation needs a current question but
// the session has none, either because it finished or because it was empty.
var ErrOutOfRange = errors.New("session position out of range")

// Option configures a new session.
type Option func(*Session)

// WithRand sets the random source used for both shuffles.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithSeed makes the session's shuffles reproducible.
func WithSeed(seed uint64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)) }
}

// WithLogger sets the logger state transitions are reported to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Session) { s.log = l }
}

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Start builds a session over every question (ScopeAll) or over the
// questions of one chapter, in a uniformly random order. A chapter the bank
// does not contain yields an empty session that is already finished.
func Start(b *bank.Bank, scope Scope, opts ...Option) *Session {
	s := &Session{
		ID:    uuid.New().String(),
		Scope: scope,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		s.log = discard
	}
	s.log = s.log.WithFields(logrus.Fields{
		"session_id": s.ID,
		"scope":      string(scope),
	})
	s.StartTime = s.now()

	if scope == ScopeAll {
		s.order = b.Questions()
	} else {
		s.order = b.InChapter(string(scope))
	}
	shuffle(s.rng, s.order)
	s.outcomes = make([]Outcome, len(s.order))

	if len(s.order) == 0 {
		s.phase = PhaseFinished
		s.log.Warn("session started with no questions")
		return s
	}

	s.phase = PhaseStarted
	s.presentCurrent()
	s.log.WithField("questions", len(s.order)).Debug("session started")
	return s
}

// CurrentQuestion returns the question at the current position.
func (s *Session) CurrentQuestion() (bank.Question, error) {
	if s.position < 0 || s.position >= len(s.order) {
		return bank.Question{}, fmt.Errorf("current question at %d of %d: %w", s.position, len(s.order), ErrOutOfRange)
	}
	return s.order[s.position], nil
}

// SubmitAnswer records choice as the selection for the current question and
// reports whether it is correct. Submitting again before Advance replaces
// the previous selection.
func (s *Session) SubmitAnswer(choice string) (AnswerResult, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return AnswerResult{}, fmt.Errorf("submit answer: %w", err)
	}

	correct := q.IsCorrect(choice)
	s.selected = choice
	s.hasSelected = true
	s.phase = PhaseAnswered
	s.outcomes[s.position] = Outcome{Answered: true, Correct: correct, Choice: choice}

	s.log.WithFields(logrus.Fields{
		"position": s.position,
		"correct":  correct,
	}).Debug("answer submitted")

	return AnswerResult{IsCorrect: correct}, nil
}

// Advance moves to the next question. Done is true once every question has
// been passed; the session is then finished and only good for BuildSummary.
func (s *Session) Advance() (AdvanceResult, error) {
	if s.phase == PhaseFinished {
		return AdvanceResult{}, fmt.Errorf("advance: session finished: %w", ErrOutOfRange)
	}

	s.position++
	s.selected = ""
	s.hasSelected = false

	if s.position < len(s.order) {
		s.phase = PhaseAnswering
		s.presentCurrent()
		return AdvanceResult{Done: false}, nil
	}

	s.phase = PhaseFinished
	s.presented = nil
	s.log.Debug("session finished")
	return AdvanceResult{Done: true}, nil
}

// presentCurrent reshuffles the choices of the current question.
func (s *Session) presentCurrent() {
	q := s.order[s.position]
	s.presented = make([]string, len(q.Choices))
	copy(s.presented, q.Choices[:])
	shuffle(s.rng, s.presented)
}
