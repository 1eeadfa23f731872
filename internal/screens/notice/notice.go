package notice

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chapterquiz/internal/router"
	"github.com/abhisek/chapterquiz/internal/screen"
	"github.com/abhisek/chapterquiz/internal/ui/layout"
	"github.com/abhisek/chapterquiz/internal/ui/theme"
)

// NoticeScreen shows a short message, e.g. a chapter with nothing to play.
type NoticeScreen struct {
	title   string
	message string
}

var _ screen.Screen = (*NoticeScreen)(nil)
var _ screen.KeyHintProvider = (*NoticeScreen)(nil)

// New creates a NoticeScreen.
func New(title, message string) *NoticeScreen {
	return &NoticeScreen{title: title, message: message}
}

func (n *NoticeScreen) Init() tea.Cmd {
	return nil
}

func (n *NoticeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter/Esc", Description: "Back"}}
}

func (n *NoticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return n, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return n, nil
}

func (n *NoticeScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.Text).
		Render("╌╌ " + n.title + " ╌╌\n\n" + n.message)
}

func (n *NoticeScreen) Title() string {
	return n.title
}
