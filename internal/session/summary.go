package session

import "time"

// Summary holds the data displayed on the summary screen.
type Summary struct {
	Scope     Scope
	Duration  time.Duration
	Total     int
	Answered  int
	Correct   int
	Accuracy  float64 // Correct / Answered, 0 when nothing was answered
	Completed bool
}

// BuildSummary tallies the outcomes recorded so far. It can be called at any
// phase; Completed reports whether the session reached the end.
func BuildSummary(s *Session) *Summary {
	sum := &Summary{
		Scope:     s.Scope,
		Duration:  s.now().Sub(s.StartTime),
		Total:     len(s.order),
		Completed: s.phase == PhaseFinished,
	}
	for _, o := range s.outcomes {
		if !o.Answered {
			continue
		}
		sum.Answered++
		if o.Correct {
			sum.Correct++
		}
	}
	if sum.Answered > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Answered)
	}
	return sum
}
