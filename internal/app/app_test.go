package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/chapterquiz/internal/bank"
	"github.com/abhisek/chapterquiz/internal/router"
	"github.com/abhisek/chapterquiz/internal/screens/loading"
	"github.com/abhisek/chapterquiz/internal/screens/notice"
	"github.com/abhisek/chapterquiz/internal/screens/quiz"
	"github.com/abhisek/chapterquiz/internal/session"
	"github.com/abhisek/chapterquiz/internal/source"
)

func TestLoadBank_Sample(t *testing.T) {
	logger, hook := test.NewNullLogger()
	m := newAppModel(Options{Location: source.SampleLocation, Logger: logger})

	b, err := m.loadBank(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, b.Len())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, 8, entry.Data["questions"])
}

func TestLoadBank_IndependentBanks(t *testing.T) {
	m := newAppModel(Options{Location: source.SampleLocation})

	b1, err := m.loadBank(context.Background())
	require.NoError(t, err)
	b2, err := m.loadBank(context.Background())
	require.NoError(t, err)
	assert.NotSame(t, b1, b2)
}

func TestLoadBank_Delimiter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bank.txt")
	raw := "h\nCh;Q;a;b;c;d;a;why;ea;eb;ec;ed\n"
	require.NoError(t, os.WriteFile(p, []byte(raw), 0o644))

	m := newAppModel(Options{Location: p, Delimiter: ';'})
	b, err := m.loadBank(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Ch"}, b.Chapters())
}

func TestLoadBank_Errors(t *testing.T) {
	dir := t.TempDir()

	m := newAppModel(Options{Location: filepath.Join(dir, "missing.csv")})
	_, err := m.loadBank(context.Background())
	var fetchErr *source.FetchError
	assert.True(t, errors.As(err, &fetchErr))

	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("header\nonly,three,fields\n"), 0o644))
	m = newAppModel(Options{Location: bad})
	_, err = m.loadBank(context.Background())
	assert.ErrorIs(t, err, bank.ErrNoValidQuestions)
}

func TestStartFunc(t *testing.T) {
	m := newAppModel(Options{Location: source.SampleLocation, Seed: 3})
	b, err := m.loadBank(context.Background())
	require.NoError(t, err)

	start := m.startFunc(b)

	msg := start("Concurrency")()
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*quiz.QuizScreen)
	assert.True(t, ok)

	msg = start("Generics")()
	push, ok = msg.(router.PushScreenMsg)
	require.True(t, ok)
	_, ok = push.Screen.(*notice.NoticeScreen)
	assert.True(t, ok, "unknown chapter should show a notice")

	msg = start("")()
	push = msg.(router.PushScreenMsg)
	assert.Equal(t, "Quiz: all chapters", push.Screen.Title())
}

func TestSeedReproducible(t *testing.T) {
	order := func() string {
		m := newAppModel(Options{Location: source.SampleLocation, Seed: 99})
		b, err := m.loadBank(context.Background())
		require.NoError(t, err)

		push := m.startFunc(b)(session.ScopeAll)().(router.PushScreenMsg)
		return push.Screen.View(100, 40)
	}
	assert.Equal(t, order(), order())
}

func TestReloadReplacesWithLoading(t *testing.T) {
	m := newAppModel(Options{Location: source.SampleLocation})

	msg := m.reload()()
	replace, ok := msg.(router.ReplaceScreenMsg)
	require.True(t, ok)
	_, ok = replace.Screen.(*loading.LoadingScreen)
	assert.True(t, ok)
}

func TestRender(t *testing.T) {
	m := newAppModel(Options{Location: source.SampleLocation})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "Terminal too small")

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	content := updated.(AppModel).render()
	assert.True(t, strings.Contains(content, "Loading question bank"), "got:\n%s", content)
	assert.Contains(t, content, "ChapterQuiz")
}

func TestCtrlCQuits(t *testing.T) {
	m := newAppModel(Options{})
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
