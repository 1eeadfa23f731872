package loading

import (
	"context"
	"errors"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/chapterquiz/internal/bank"
	"github.com/abhisek/chapterquiz/internal/screen"
	"github.com/abhisek/chapterquiz/internal/source"
	"github.com/abhisek/chapterquiz/internal/ui/components"
	"github.com/abhisek/chapterquiz/internal/ui/layout"
	"github.com/abhisek/chapterquiz/internal/ui/theme"
)

const tickInterval = 120 * time.Millisecond

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// LoadFunc fetches and parses a question bank.
type LoadFunc func(ctx context.Context) (*bank.Bank, error)

// ReadyFunc is called once with the parsed bank and returns the navigation
// that replaces the loading screen.
type ReadyFunc func(b *bank.Bank) tea.Cmd

type tickMsg time.Time

// loadedMsg carries the result of one load attempt. Attempt lets the screen
// drop results from an attempt it no longer waits for.
type loadedMsg struct {
	Attempt int
	Bank    *bank.Bank
	Err     error
}

// LoadingScreen fetches the bank in the background and shows progress, or
// the failure with a retry action.
type LoadingScreen struct {
	location string
	load     LoadFunc
	ready    ReadyFunc

	attempt   int
	loading   bool
	tickCount int
	err       error
	retry     components.Button
	done      bool
}

var _ screen.Screen = (*LoadingScreen)(nil)
var _ screen.KeyHintProvider = (*LoadingScreen)(nil)

// New creates a LoadingScreen for the bank at location.
func New(location string, load LoadFunc, ready ReadyFunc) *LoadingScreen {
	l := &LoadingScreen{
		location: location,
		load:     load,
		ready:    ready,
	}
	l.retry = components.NewButton("Retry", "r", true, l.start)
	return l
}

func (l *LoadingScreen) Title() string {
	return "Loading"
}

func (l *LoadingScreen) KeyHints() []layout.KeyHint {
	if l.err != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Q", Description: "Quit"},
		}
	}
	return nil
}

func (l *LoadingScreen) Init() tea.Cmd {
	return l.start()
}

// start begins a new load attempt.
func (l *LoadingScreen) start() tea.Cmd {
	l.attempt++
	l.loading = true
	l.err = nil

	attempt := l.attempt
	load := l.load
	return tea.Batch(
		func() tea.Msg {
			b, err := load(context.Background())
			return loadedMsg{Attempt: attempt, Bank: b, Err: err}
		},
		tick(),
	)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if !l.loading {
			return l, nil
		}
		l.tickCount++
		return l, tick()

	case loadedMsg:
		if msg.Attempt != l.attempt || l.done {
			return l, nil
		}
		l.loading = false
		if msg.Err != nil {
			l.err = msg.Err
			return l, nil
		}
		l.done = true
		return l, l.ready(msg.Bank)

	case tea.KeyMsg:
		if l.err == nil {
			return l, nil
		}
		if k := msg.String(); k == "q" || k == "esc" {
			return l, tea.Quit
		}
		var cmd tea.Cmd
		l.retry, cmd = l.retry.Update(msg)
		return l, cmd
	}

	return l, nil
}

func (l *LoadingScreen) View(width, height int) string {
	var sections []string

	if l.err != nil {
		sections = append(sections,
			theme.ErrorText.Render(failureTitle(l.err)),
			"",
			lipgloss.NewStyle().
				Width(layout.TextWidth(width)).
				Foreground(theme.Text).
				Render(l.err.Error()),
			"",
			l.retry.View(),
		)
	} else {
		frame := spinnerFrames[l.tickCount%len(spinnerFrames)]
		sections = append(sections,
			lipgloss.NewStyle().Foreground(theme.Accent).Render(frame)+" "+
				lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Loading question bank"),
			"",
			theme.Hint.Render(l.location),
		)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// failureTitle names the failure class shown above the error detail.
func failureTitle(err error) string {
	var fetchErr *source.FetchError
	switch {
	case errors.As(err, &fetchErr):
		return "Could not read the question bank"
	case errors.Is(err, bank.ErrNoValidQuestions):
		return "The question bank has no valid questions"
	case errors.Is(err, bank.ErrInvalidDocument):
		return "The question bank document is invalid"
	default:
		return "Loading failed"
	}
}
