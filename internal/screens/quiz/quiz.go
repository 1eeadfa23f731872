package quiz

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chapterquiz/internal/router"
	"github.com/abhisek/chapterquiz/internal/screen"
	"github.com/abhisek/chapterquiz/internal/screens/summary"
	"github.com/abhisek/chapterquiz/internal/session"
	"github.com/abhisek/chapterquiz/internal/ui/components"
	"github.com/abhisek/chapterquiz/internal/ui/layout"
)

// QuizScreen plays a session: one question at a time, then its answer and
// explanations, then the next question.
type QuizScreen struct {
	sess        *session.Session
	choices     components.MultiChoice
	explanation *session.ExplanationView // set once the current question is answered
	quitConfirm bool
	errMsg      string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New creates a QuizScreen over a started session.
func New(sess *session.Session) *QuizScreen {
	s := &QuizScreen{sess: sess}
	s.syncQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	if s.sess.Scope == session.ScopeAll {
		return "Quiz: all chapters"
	}
	return "Quiz: " + string(s.sess.Scope)
}

func (s *QuizScreen) Status() string {
	p := session.CurrentProgress(s.sess)
	if p.Total == 0 {
		return ""
	}
	return fmt.Sprintf("Q %d/%d  ✓ %d", p.Current, p.Total, p.Correct)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.explanation != nil:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoicePickedMsg:
		return s.handlePick(msg)

	case advanceMsg:
		return s.handleAdvance()

	case endEarlyMsg:
		return s, s.toSummary()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			s.quitConfirm = false
			return s, func() tea.Msg { return endEarlyMsg{} }
		case "n", "N", "esc":
			s.quitConfirm = false
		}
		return s, nil
	}

	if key == "esc" {
		s.quitConfirm = true
		return s, nil
	}

	if s.explanation != nil {
		switch key {
		case "enter", "space", " ", "n", "right", "l":
			return s, func() tea.Msg { return advanceMsg{} }
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.choices, cmd = s.choices.Update(msg)
	return s, cmd
}

// handlePick submits the picked choice and switches to the answer view.
func (s *QuizScreen) handlePick(msg components.ChoicePickedMsg) (screen.Screen, tea.Cmd) {
	if s.explanation != nil || s.quitConfirm || s.errMsg != "" {
		return s, nil
	}

	if _, err := s.sess.SubmitAnswer(msg.Value); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	view, err := s.sess.BuildExplanationView()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	s.explanation = view

	correct := -1
	for i, row := range view.Choices {
		if row.IsCorrect {
			correct = i
			break
		}
	}
	s.choices.Reveal(correct, msg.Index)
	return s, nil
}

func (s *QuizScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	if s.explanation == nil {
		return s, nil
	}

	res, err := s.sess.Advance()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	if res.Done {
		return s, s.toSummary()
	}
	s.syncQuestion()
	return s, nil
}

// syncQuestion resets per-question UI state from the session.
func (s *QuizScreen) syncQuestion() {
	s.explanation = nil
	if _, err := s.sess.CurrentQuestion(); err != nil {
		s.errMsg = err.Error()
		return
	}
	s.choices = components.NewMultiChoice(s.sess.PresentedChoices())
}

func (s *QuizScreen) toSummary() tea.Cmd {
	sum := session.BuildSummary(s.sess)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum)}
	}
}
