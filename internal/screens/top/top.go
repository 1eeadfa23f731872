package top

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chapterquiz/internal/bank"
	"github.com/abhisek/chapterquiz/internal/screen"
	"github.com/abhisek/chapterquiz/internal/session"
	"github.com/abhisek/chapterquiz/internal/ui/components"
	"github.com/abhisek/chapterquiz/internal/ui/layout"
	"github.com/abhisek/chapterquiz/internal/ui/theme"
)

// StartFunc starts a session over scope.
type StartFunc func(scope session.Scope) tea.Cmd

// TopScreen lists the chapters of the loaded bank with their question
// counts. Picking one starts a session.
type TopScreen struct {
	chapters []bank.ChapterCount
	total    int
	start    StartFunc
	reload   func() tea.Cmd

	menu   components.Menu
	filter components.TextInput
}

var _ screen.Screen = (*TopScreen)(nil)
var _ screen.KeyHintProvider = (*TopScreen)(nil)
var _ screen.StatusProvider = (*TopScreen)(nil)

// New creates a TopScreen for b. reload may be nil, which hides the
// reload entry.
func New(b *bank.Bank, start StartFunc, reload func() tea.Cmd) *TopScreen {
	t := &TopScreen{
		chapters: bank.ListChapters(b),
		total:    b.Len(),
		start:    start,
		reload:   reload,
		filter:   components.NewTextInput("Filter:", "type to filter chapters", 40),
	}
	t.menu = components.NewMenu(t.items())
	return t
}

func (t *TopScreen) Init() tea.Cmd {
	return nil
}

func (t *TopScreen) Title() string {
	return "Chapters"
}

func (t *TopScreen) Status() string {
	return fmt.Sprintf("%d questions", t.total)
}

func (t *TopScreen) KeyHints() []layout.KeyHint {
	if t.filter.Focused() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start"},
		{Key: "/", Description: "Filter"},
		{Key: "Q", Description: "Quit"},
	}
}

// items builds the menu: ALL, then chapters in sorted order, then actions.
// A non-empty filter keeps only chapters whose name contains it.
func (t *TopScreen) items() []components.MenuItem {
	query := strings.ToLower(t.filter.Value())
	var items []components.MenuItem

	if query == "" {
		items = append(items, t.scopeItem("All chapters", session.ScopeAll, t.total))
	}
	matched := 0
	for _, c := range t.chapters {
		if query != "" && !strings.Contains(strings.ToLower(c.Name), query) {
			continue
		}
		matched++
		items = append(items, t.scopeItem(c.Name, session.Scope(c.Name), c.Count))
	}
	if query != "" && matched == 0 {
		items = append(items, components.MenuItem{Label: "(no matching chapters)", Disabled: true})
	}

	if t.reload != nil {
		items = append(items, components.MenuItem{Label: "Reload bank", Action: t.reload})
	}
	items = append(items, components.MenuItem{Label: "Exit", Action: func() tea.Cmd { return tea.Quit }})
	return items
}

func (t *TopScreen) scopeItem(label string, scope session.Scope, count int) components.MenuItem {
	return components.MenuItem{
		Label:  label,
		Detail: fmt.Sprintf("%d", count),
		Action: func() tea.Cmd { return t.start(scope) },
	}
}

func (t *TopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if t.filter.Focused() {
			var cmd tea.Cmd
			t.filter, cmd = t.filter.Update(msg)
			return t, cmd
		}
		return t, nil
	}

	if t.filter.Focused() {
		return t.updateFilter(kmsg)
	}

	switch kmsg.String() {
	case "/":
		return t, t.filter.Focus()
	case "esc":
		if t.filter.Value() != "" {
			t.filter.Reset()
			t.menu.SetItems(t.items())
		}
		return t, nil
	case "q":
		return t, tea.Quit
	}

	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(kmsg)
	return t, cmd
}

func (t *TopScreen) updateFilter(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		t.filter.Blur()
		return t, nil
	case "esc":
		t.filter.Blur()
		t.filter.Reset()
		t.menu.SetItems(t.items())
		return t, nil
	case "up", "down":
		var cmd tea.Cmd
		t.menu, cmd = t.menu.Update(msg)
		return t, cmd
	}

	var cmd tea.Cmd
	t.filter, cmd = t.filter.Update(msg)
	t.menu.SetItems(t.items())
	return t, cmd
}

func (t *TopScreen) View(width, height int) string {
	cw := min(width-8, 56)

	var sections []string
	sections = append(sections, theme.Title.Width(cw).Render("Pick a chapter"))

	if t.filter.Focused() || t.filter.Value() != "" {
		sections = append(sections, t.filter.View())
	} else {
		sections = append(sections, theme.Hint.Width(cw).Align(lipgloss.Center).Render("press / to filter"))
	}

	sections = append(sections, theme.Card.Width(cw).Render(strings.TrimRight(t.menu.View(cw-6), "\n")))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
