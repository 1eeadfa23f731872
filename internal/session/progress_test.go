package session

import "testing"

func TestProgress_Percent(t *testing.T) {
	tests := []struct {
		name string
		p    Progress
		want float64
	}{
		{"empty", Progress{}, 0},
		{"first", Progress{Current: 1, Total: 4}, 0},
		{"third", Progress{Current: 3, Total: 4}, 0.5},
		{"last", Progress{Current: 4, Total: 4}, 0.75},
	}
	for _, tt := range tests {
		if got := tt.p.Percent(); got != tt.want {
			t.Errorf("%s: Percent() = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestCurrentProgress(t *testing.T) {
	b := testBank(t, row("x", "q1"), row("x", "q2"))
	s := Start(b, ScopeAll)

	p := CurrentProgress(s)
	if p.Current != 1 || p.Total != 2 || p.Correct != 0 {
		t.Errorf("CurrentProgress = %+v, want {1 2 0}", p)
	}

	_, _ = s.SubmitAnswer("B")
	_, _ = s.Advance()

	p = CurrentProgress(s)
	if p.Current != 2 || p.Correct != 1 {
		t.Errorf("CurrentProgress = %+v, want Current=2 Correct=1", p)
	}

	_, _ = s.Advance()
	p = CurrentProgress(s)
	if p.Current != 2 {
		t.Errorf("Current after finish = %d, want 2", p.Current)
	}
}
