package components

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chapterquiz/internal/ui/theme"
)

// Button is a styled button component bound to a key.
type Button struct {
	Label   string
	Key     string // key that presses the button besides enter
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label, key string, active bool, onPress func() tea.Cmd) Button {
	return Button{
		Label:   label,
		Key:     key,
		Active:  active,
		OnPress: onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active || b.OnPress == nil {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", b.Key:
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	label := "▸ " + b.Label
	if b.Key != "" {
		label += " [" + b.Key + "]"
	}
	if b.Active {
		return theme.ButtonActive.Render(label)
	}
	return theme.ButtonInactive.Render(label)
}
