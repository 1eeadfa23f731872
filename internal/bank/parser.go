package bank

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// RecordFields is the number of fields in a complete record:
// chapter, prompt, 4 choices, correct answer, explanation, 4 choice explanations.
const RecordFields = 12

type options struct {
	delim rune
	log   logrus.FieldLogger
}

// Option configures parsing.
type Option func(*options)

// WithDelimiter overrides the field delimiter (comma by default).
func WithDelimiter(r rune) Option {
	return func(o *options) { o.delim = r }
}

// WithLogger sets the logger skipped records are reported to.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) { o.log = l }
}

func buildOptions(opts []Option) options {
	o := options{delim: DefaultDelimiter}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		o.log = discard
	}
	return o
}

// Parse builds a Bank from delimited text. The first non-empty line is a
// header and is ignored. Malformed records are skipped and kept as
// diagnostics; Parse fails only with ErrNoValidQuestions.
func Parse(raw string, opts ...Option) (*Bank, error) {
	o := buildOptions(opts)

	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var (
		questions  []Question
		diags      []*MalformedRecordError
		seenHeader bool
	)

	for i, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !seenHeader {
			seenHeader = true
			continue
		}

		fields := splitRecord(line, o.delim)
		q, bad := recordToQuestion(fields, i+1)
		if bad != nil {
			o.log.WithField("line", bad.Line).Warnf("skipping record: %s", bad.Reason)
			diags = append(diags, bad)
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		o.log.WithField("skipped", len(diags)).Error("question bank is empty")
		return nil, ErrNoValidQuestions
	}

	o.log.WithFields(logrus.Fields{
		"questions": len(questions),
		"skipped":   len(diags),
	}).Debug("question bank parsed")

	return newBank(questions, diags), nil
}

// recordToQuestion maps fields by position. Extra fields are ignored.
func recordToQuestion(fields []string, line int) (Question, *MalformedRecordError) {
	if len(fields) < RecordFields {
		return Question{}, &MalformedRecordError{Line: line, Fields: len(fields), Reason: ReasonTooFewFields}
	}

	q := Question{
		Chapter:       fields[0],
		Prompt:        fields[1],
		CorrectAnswer: fields[6],
		Explanation:   fields[7],
	}
	copy(q.Choices[:], fields[2:6])
	copy(q.ChoiceExplanations[:], fields[8:12])

	if bad := validate(q, line, len(fields)); bad != nil {
		return Question{}, bad
	}
	return q, nil
}

func validate(q Question, line, nfields int) *MalformedRecordError {
	switch {
	case strings.TrimSpace(q.Chapter) == "":
		return &MalformedRecordError{Line: line, Fields: nfields, Reason: ReasonEmptyChapter}
	case q.CorrectIndex() < 0:
		return &MalformedRecordError{Line: line, Fields: nfields, Reason: ReasonAnswerNotFound}
	}
	return nil
}
