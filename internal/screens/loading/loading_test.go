package loading

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/chapterquiz/internal/bank"
	"github.com/abhisek/chapterquiz/internal/source"
)

const oneQuestion = "header\nCh,Q?,a,b,c,d,a,why,ea,eb,ec,ed\n"

type readyRecorder struct {
	calls int
	got   *bank.Bank
}

func (r *readyRecorder) ready(b *bank.Bank) tea.Cmd {
	r.calls++
	r.got = b
	return func() tea.Msg { return "ready" }
}

func okLoader(t *testing.T) LoadFunc {
	t.Helper()
	b, err := bank.Parse(oneQuestion)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return func(context.Context) (*bank.Bank, error) { return b, nil }
}

func failingLoader(err error) LoadFunc {
	return func(context.Context) (*bank.Bank, error) { return nil, err }
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestSuccessCallsReady(t *testing.T) {
	rec := &readyRecorder{}
	l := New("sample:", okLoader(t), rec.ready)
	l.Init()

	b, _ := okLoader(t)(context.Background())
	_, cmd := l.Update(loadedMsg{Attempt: 1, Bank: b})

	if rec.calls != 1 {
		t.Fatalf("expected ready to be called once, got %d", rec.calls)
	}
	if cmd == nil || cmd() != "ready" {
		t.Error("expected the ready command to be returned")
	}

	// A duplicate result must not navigate twice.
	l.Update(loadedMsg{Attempt: 1, Bank: b})
	if rec.calls != 1 {
		t.Errorf("ready called %d times, want 1", rec.calls)
	}
}

func TestFailureShowsErrorAndRetries(t *testing.T) {
	rec := &readyRecorder{}
	fetchErr := &source.FetchError{Location: "missing.csv", Err: errors.New("no such file")}
	l := New("missing.csv", failingLoader(fetchErr), rec.ready)
	l.Init()

	l.Update(loadedMsg{Attempt: 1, Err: fetchErr})

	view := l.View(80, 24)
	if !strings.Contains(view, "Could not read the question bank") {
		t.Errorf("expected fetch failure title in view:\n%s", view)
	}
	if !strings.Contains(view, "Retry") {
		t.Error("expected retry button in view")
	}
	if rec.calls != 0 {
		t.Error("ready must not be called on failure")
	}

	_, cmd := l.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected retry to start a new load")
	}
	if l.attempt != 2 {
		t.Errorf("expected attempt 2 after retry, got %d", l.attempt)
	}
	if l.err != nil {
		t.Error("retry should clear the error")
	}
}

func TestStaleAttemptIgnored(t *testing.T) {
	rec := &readyRecorder{}
	l := New("x", okLoader(t), rec.ready)
	l.Init()
	l.start()

	b, _ := okLoader(t)(context.Background())
	l.Update(loadedMsg{Attempt: 1, Bank: b})
	if rec.calls != 0 {
		t.Error("result of a superseded attempt should be ignored")
	}
}

func TestNoValidQuestionsTitle(t *testing.T) {
	err := errors.Join(errors.New("parse"), bank.ErrNoValidQuestions)
	if got := failureTitle(err); got != "The question bank has no valid questions" {
		t.Errorf("failureTitle = %q", got)
	}
}

func TestTickOnlyWhileLoading(t *testing.T) {
	l := New("x", failingLoader(errors.New("boom")), (&readyRecorder{}).ready)
	l.Init()

	_, cmd := l.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("expected next tick while loading")
	}

	l.Update(loadedMsg{Attempt: 1, Err: errors.New("boom")})
	_, cmd = l.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("expected ticking to stop after failure")
	}
}

func TestKeysIgnoredWhileLoading(t *testing.T) {
	l := New("x", okLoader(t), (&readyRecorder{}).ready)
	l.Init()

	_, cmd := l.Update(keyPress('r'))
	if cmd != nil {
		t.Error("keys should be ignored while loading")
	}
	if l.attempt != 1 {
		t.Errorf("attempt = %d, want 1", l.attempt)
	}
}
