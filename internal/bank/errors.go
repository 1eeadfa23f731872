package bank

import (
	"errors"
	"fmt"
)

// ErrNoValidQuestions is returned when no record survived filtering.
var ErrNoValidQuestions = errors.New("no valid questions")

// ErrInvalidDocument is returned when a JSON bank fails schema validation.
var ErrInvalidDocument = errors.New("invalid question bank document")

// Reasons a record is skipped.
const (
	ReasonTooFewFields   = "too few fields"
	ReasonEmptyChapter   = "empty chapter"
	ReasonAnswerNotFound = "correct answer matches no choice"
)

// MalformedRecordError describes a single skipped record. It is collected
// as a diagnostic and never returned from Parse.
type MalformedRecordError struct {
	Line   int // 1-based line number in the source text (record index for JSON)
	Fields int // number of fields the scanner produced
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Reason == ReasonTooFewFields {
		return fmt.Sprintf("line %d: %s (got %d, want %d)", e.Line, e.Reason, e.Fields, RecordFields)
	}
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
