package session

// Progress is the "question N of M" position shown while playing.
type Progress struct {
	Current int // 1-based; 0 when there is no current question
	Total   int
	Correct int
}

// Percent returns the fraction of questions already passed, in [0, 1].
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 0
	}
	done := p.Current - 1
	if done < 0 {
		done = 0
	}
	return float64(done) / float64(p.Total)
}

// CurrentProgress reports the session's position and running score.
func CurrentProgress(s *Session) Progress {
	p := Progress{Total: len(s.order)}
	if s.position < len(s.order) {
		p.Current = s.position + 1
	} else {
		p.Current = len(s.order)
	}
	for _, o := range s.outcomes {
		if o.Correct {
			p.Correct++
		}
	}
	return p
}
