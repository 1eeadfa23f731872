package session

import "fmt"

// ChoiceExplanation is one row of the explanation view, in display order.
type ChoiceExplanation struct {
	Choice      string
	Explanation string

	// OriginalIndex is the first position of Choice in the question's
	// source order; it is the slot Explanation was read from.
	OriginalIndex int

	IsCorrect  bool
	IsSelected bool
}

// ExplanationView is everything the answer screen renders.
type ExplanationView struct {
	Prompt        string
	CorrectAnswer string
	Explanation   string

	Answered  bool
	Selected  string
	IsCorrect bool

	Choices []ChoiceExplanation
}

// BuildExplanationView pairs every presented choice with the explanation
// authored for its original position. Choices are shown shuffled, but
// per-choice explanations are aligned with the source order, so each row
// is looked up by text. Duplicate text resolves to the first original slot,
// for both the explanation and correctness.
func (s *Session) BuildExplanationView() (*ExplanationView, error) {
	q, err := s.CurrentQuestion()
	if err != nil {
		return nil, fmt.Errorf("build explanation view: %w", err)
	}

	correctIdx := q.CorrectIndex()
	view := &ExplanationView{
		Prompt:        q.Prompt,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		Answered:      s.hasSelected,
		Selected:      s.selected,
		IsCorrect:     s.hasSelected && q.IsCorrect(s.selected),
		Choices:       make([]ChoiceExplanation, 0, len(s.presented)),
	}

	for _, choice := range s.presented {
		idx := q.IndexOf(choice)
		row := ChoiceExplanation{
			Choice:        choice,
			OriginalIndex: idx,
			IsCorrect:     idx >= 0 && idx == correctIdx,
			IsSelected:    s.hasSelected && choice == s.selected,
		}
		if idx >= 0 {
			row.Explanation = q.ChoiceExplanations[idx]
		}
		view.Choices = append(view.Choices, row)
	}

	return view, nil
}
