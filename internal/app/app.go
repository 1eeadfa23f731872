package app

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/sirupsen/logrus"

	"github.com/abhisek/chapterquiz/internal/bank"
	"github.com/abhisek/chapterquiz/internal/router"
	"github.com/abhisek/chapterquiz/internal/screen"
	"github.com/abhisek/chapterquiz/internal/screens/loading"
	"github.com/abhisek/chapterquiz/internal/screens/notice"
	"github.com/abhisek/chapterquiz/internal/screens/quiz"
	"github.com/abhisek/chapterquiz/internal/screens/top"
	"github.com/abhisek/chapterquiz/internal/session"
	"github.com/abhisek/chapterquiz/internal/source"
	"github.com/abhisek/chapterquiz/internal/ui/layout"
)

// Options holds the dependencies of the TUI.
type Options struct {
	// Location of the question bank, see source.Loader.Load.
	Location string
	Loader   *source.Loader
	Logger   logrus.FieldLogger

	// Delimiter for delimited banks; 0 means bank.DefaultDelimiter.
	Delimiter rune

	// Seed makes shuffles reproducible when non-zero.
	Seed uint64

	// Play, when set, starts a session over Scope as soon as the bank loads.
	Play  bool
	Scope session.Scope
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	opts   Options
	rng    *rand.Rand
	width  int
	height int
}

// newAppModel creates a new AppModel starting at the loading screen.
func newAppModel(opts Options) AppModel {
	if opts.Loader == nil {
		opts.Loader = source.NewLoader(source.DefaultTimeout)
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		opts.Logger = l
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = bank.DefaultDelimiter
	}

	m := AppModel{opts: opts}
	if opts.Seed != 0 {
		m.rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	}
	m.router = router.New(m.newLoadingScreen(opts.Play))
	return m
}

// loadBank fetches and parses the configured bank. Every call builds an
// independent Bank.
func (m AppModel) loadBank(ctx context.Context) (*bank.Bank, error) {
	log := m.opts.Logger.WithField("location", m.opts.Location)

	doc, err := m.opts.Loader.Load(ctx, m.opts.Location)
	if err != nil {
		log.WithError(err).Warn("failed to fetch question bank")
		return nil, err
	}

	b, err := doc.Decode(bank.WithDelimiter(m.opts.Delimiter), bank.WithLogger(m.opts.Logger))
	if err != nil {
		log.WithError(err).Warn("failed to parse question bank")
		return nil, fmt.Errorf("parse %s: %w", doc.Location, err)
	}

	log.WithFields(logrus.Fields{
		"questions":   b.Len(),
		"chapters":    len(b.Chapters()),
		"diagnostics": len(b.Diagnostics()),
	}).Info("question bank loaded")
	return b, nil
}

// newLoadingScreen returns a loading screen that is replaced by the chapter
// list once the bank is parsed. With play set, the session is pushed on top.
func (m AppModel) newLoadingScreen(play bool) screen.Screen {
	return loading.New(m.opts.Location, m.loadBank, func(b *bank.Bank) tea.Cmd {
		topScreen := top.New(b, m.startFunc(b), m.reload)
		replace := func() tea.Msg { return router.ReplaceScreenMsg{Screen: topScreen} }
		if !play {
			return replace
		}
		return tea.Sequence(replace, m.startFunc(b)(m.opts.Scope))
	})
}

// reload swaps the chapter list for a fresh loading screen.
func (m AppModel) reload() tea.Cmd {
	loadingScreen := m.newLoadingScreen(false)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: loadingScreen} }
}

// startFunc returns the top screen's session starter for b.
func (m AppModel) startFunc(b *bank.Bank) top.StartFunc {
	return func(scope session.Scope) tea.Cmd {
		if scope == "" {
			scope = session.ScopeAll
		}
		opts := []session.Option{session.WithLogger(m.opts.Logger)}
		if m.rng != nil {
			opts = append(opts, session.WithRand(m.rng))
		}

		var next screen.Screen
		sess := session.Start(b, scope, opts...)
		if sess.Len() == 0 {
			next = notice.New("Nothing to play", fmt.Sprintf("Chapter %q has no questions in this bank.", string(scope)))
		} else {
			next = quiz.New(sess)
		}
		return func() tea.Msg { return router.PushScreenMsg{Screen: next} }
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
	}

	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
