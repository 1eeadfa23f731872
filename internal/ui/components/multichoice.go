package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chapterquiz/internal/ui/theme"
)

// MultiChoice is a numbered choice selector. It only tracks the cursor;
// the owner decides what a pick means and when the answer is revealed.
type MultiChoice struct {
	Options  []string
	Selected int

	// Set by Reveal.
	revealed     bool
	correctIndex int
	chosenIndex  int
}

// ChoicePickedMsg is emitted when the user picks an option.
type ChoicePickedMsg struct {
	Index int
	Value string
}

// NewMultiChoice creates a selector over options.
func NewMultiChoice(options []string) MultiChoice {
	return MultiChoice{
		Options:      options,
		correctIndex: -1,
		chosenIndex:  -1,
	}
}

// Reveal switches to showing the correct and chosen options.
func (m *MultiChoice) Reveal(correctIndex, chosenIndex int) {
	m.revealed = true
	m.correctIndex = correctIndex
	m.chosenIndex = chosenIndex
}

// Revealed reports whether Reveal was called.
func (m MultiChoice) Revealed() bool {
	return m.revealed
}

// Update handles arrows, number keys and enter.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		return m, m.pick(m.Selected)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(m.Options) {
			m.Selected = idx
			return m, m.pick(idx)
		}
	}
	return m, nil
}

func (m MultiChoice) pick(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.Options) {
		return nil
	}
	value := m.Options[idx]
	return func() tea.Msg { return ChoicePickedMsg{Index: idx, Value: value} }
}

// View renders the options, one per line, wrapped to width.
func (m MultiChoice) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.revealed {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		style := lipgloss.NewStyle().Width(width)
		switch {
		case m.revealed && i == m.correctIndex:
			style = style.Foreground(theme.Success).Bold(true)
		case m.revealed && i == m.chosenIndex:
			style = style.Foreground(theme.Error).Bold(true)
		case m.revealed:
			style = style.Foreground(theme.TextDim)
		case i == m.Selected:
			style = style.Foreground(theme.Primary).Bold(true)
		default:
			style = style.Foreground(theme.Text)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
