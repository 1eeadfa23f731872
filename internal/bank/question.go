package bank

// NumChoices is the number of answer options every question carries.
const NumChoices = 4

// Question is a single multiple-choice quiz item.
type Question struct {
	Chapter       string
	Prompt        string
	Choices       [NumChoices]string
	CorrectAnswer string
	Explanation   string

	// ChoiceExplanations[i] explains Choices[i].
	ChoiceExplanations [NumChoices]string
}

// CorrectIndex returns the first position in Choices whose text equals
// CorrectAnswer, or -1 if none does.
func (q Question) CorrectIndex() int {
	return q.IndexOf(q.CorrectAnswer)
}

// IndexOf returns the first original position of the given choice text,
// or -1. Duplicate choice text always resolves to the earliest slot.
func (q Question) IndexOf(choice string) int {
	for i, c := range q.Choices {
		if c == choice {
			return i
		}
	}
	return -1
}

// IsCorrect reports whether choice is the correct answer by value.
func (q Question) IsCorrect(choice string) bool {
	return choice == q.CorrectAnswer
}

// ExplanationFor returns the per-choice explanation authored for the given
// choice text, or "" if the text is not one of the choices.
func (q Question) ExplanationFor(choice string) string {
	i := q.IndexOf(choice)
	if i < 0 {
		return ""
	}
	return q.ChoiceExplanations[i]
}
