package summary

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chapterquiz/internal/router"
	"github.com/abhisek/chapterquiz/internal/screen"
	"github.com/abhisek/chapterquiz/internal/session"
	"github.com/abhisek/chapterquiz/internal/ui/components"
	"github.com/abhisek/chapterquiz/internal/ui/layout"
	"github.com/abhisek/chapterquiz/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Chapters"},
		{Key: "Esc", Description: "Chapters"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The quiz screen was replaced by this one, so a single pop
			// lands on the chapter list.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	heading := "Session complete!"
	if !sum.Completed {
		heading = "Session ended early"
	}
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), heading, width))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Chapter: %s    Duration: %s", scopeLabel(sum.Scope), formatDuration(sum)), width))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Answered: %d/%d        Correct: %d        Accuracy: %.0f%%",
		sum.Answered, sum.Total, sum.Correct, sum.Accuracy*100)
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text), statsLine, width))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", sum.Accuracy, true, min(width-8, 50)).View()
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar))
	b.WriteString("\n\n")

	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(verdictColor(sum)).Bold(true), verdict(sum), width))

	return b.String()
}

func scopeLabel(scope session.Scope) string {
	if scope == session.ScopeAll {
		return "All chapters"
	}
	return string(scope)
}

func formatDuration(sum *session.Summary) string {
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// verdict is the one-line closing remark.
func verdict(sum *session.Summary) string {
	switch {
	case sum.Answered == 0:
		return "No questions answered."
	case sum.Correct == sum.Answered:
		return "Perfect score!"
	case sum.Accuracy >= 0.7:
		return "Nice work."
	default:
		return "Worth another round."
	}
}

func verdictColor(sum *session.Summary) color.Color {
	if sum.Answered > 0 && sum.Correct == sum.Answered {
		return theme.Success
	}
	return theme.Accent
}
