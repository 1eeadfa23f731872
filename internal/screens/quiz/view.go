package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/chapterquiz/internal/session"
	"github.com/abhisek/chapterquiz/internal/ui/components"
	"github.com/abhisek/chapterquiz/internal/ui/layout"
	"github.com/abhisek/chapterquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the prompt and choices, plus the explanations once
// the question is answered.
func (s *QuizScreen) renderQuestion(width int) string {
	q, err := s.sess.CurrentQuestion()
	if err != nil {
		return renderError(width, err.Error())
	}

	tw := layout.TextWidth(width)
	var b strings.Builder

	// Chapter and progress line.
	p := session.CurrentProgress(s.sess)
	chapter := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(q.Chapter)
	bar := components.NewProgressBar("", p.Percent(), false, 20).View()
	gap := tw - lipgloss.Width(chapter) - lipgloss.Width(bar)
	if gap < 2 {
		gap = 2
	}
	b.WriteString(chapter + strings.Repeat(" ", gap) + bar)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", tw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(tw).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	b.WriteString(s.choices.View(tw))

	if s.explanation != nil {
		b.WriteString("\n")
		b.WriteString(renderExplanation(s.explanation, tw))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderExplanation renders the verdict, the general explanation and one
// line per presented choice with the explanation written for it.
func renderExplanation(v *session.ExplanationView, width int) string {
	var b strings.Builder

	if v.IsCorrect {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Correct answer: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render(v.CorrectAnswer))
	}
	b.WriteString("\n\n")

	if v.Explanation != "" {
		b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(v.Explanation))
		b.WriteString("\n\n")
	}

	for i, row := range v.Choices {
		marker := "  "
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case row.IsCorrect:
			marker = "✓ "
			style = style.Foreground(theme.Success)
		case row.IsSelected:
			marker = "✗ "
			style = style.Foreground(theme.Error)
		}

		head := style.Bold(true).Render(fmt.Sprintf("%s%d) %s", marker, i+1, row.Choice))
		b.WriteString(head)
		b.WriteString("\n")
		if row.Explanation != "" {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				PaddingLeft(5).
				Foreground(theme.Text).
				Render(row.Explanation))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "End session early?", width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.TextDim), "You will see a summary of the questions answered so far.", width))
	b.WriteString("\n\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, end session", width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going", width))
	return b.String()
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
