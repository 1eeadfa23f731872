package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chapterquiz/internal/router"
	"github.com/abhisek/chapterquiz/internal/session"
)

func testSummary() *session.Summary {
	return &session.Summary{
		Scope:     "Concurrency",
		Duration:  3*time.Minute + 7*time.Second,
		Total:     4,
		Answered:  4,
		Correct:   3,
		Accuracy:  0.75,
		Completed: true,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Session Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Session Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	for _, want := range []string{"Session complete!", "Concurrency", "3:07", "Answered: 4/4", "Correct: 3", "75%"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in summary view", want)
		}
	}
}

func TestSummaryScreen_EndedEarly(t *testing.T) {
	sum := &session.Summary{Scope: session.ScopeAll, Total: 5}
	view := New(sum).View(80, 24)
	if !strings.Contains(view, "Session ended early") {
		t.Error("expected early-end heading")
	}
	if !strings.Contains(view, "All chapters") {
		t.Error("expected ALL scope label")
	}
	if !strings.Contains(view, "No questions answered.") {
		t.Error("expected empty verdict")
	}
}

func TestSummaryScreen_NilSummary(t *testing.T) {
	if New(nil).View(80, 24) != "" {
		t.Error("expected empty view for nil summary")
	}
}

func TestSummaryScreen_Navigation(t *testing.T) {
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		s := New(testSummary())
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("expected a command on %q", key.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg on %q", key.String())
		}
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		sum  session.Summary
		want string
	}{
		{session.Summary{}, "No questions answered."},
		{session.Summary{Answered: 2, Correct: 2, Accuracy: 1}, "Perfect score!"},
		{session.Summary{Answered: 10, Correct: 7, Accuracy: 0.7}, "Nice work."},
		{session.Summary{Answered: 10, Correct: 2, Accuracy: 0.2}, "Worth another round."},
	}
	for _, tt := range tests {
		if got := verdict(&tt.sum); got != tt.want {
			t.Errorf("verdict(%+v) = %q, want %q", tt.sum, got, tt.want)
		}
	}
}
