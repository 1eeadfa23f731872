package bank

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "schema://chapterquiz/bank.json"

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// document is the JSON interchange form of a bank.
type document struct {
	Questions []jsonQuestion `json:"questions"`
}

type jsonQuestion struct {
	Chapter            string   `json:"chapter"`
	Prompt             string   `json:"prompt"`
	Choices            []string `json:"choices"`
	CorrectAnswer      string   `json:"correct_answer"`
	Explanation        string   `json:"explanation"`
	ChoiceExplanations []string `json:"choice_explanations"`
}

// bankSchema compiles the embedded schema once.
func bankSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
		if err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// ParseJSON builds a Bank from a JSON document. The document must satisfy
// the bank schema; individual questions then go through the same checks as
// delimited records and are skipped when they fail.
func ParseJSON(data []byte, opts ...Option) (*Bank, error) {
	o := buildOptions(opts)

	schema, err := bankSchema()
	if err != nil {
		return nil, err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := schema.Validate(inst); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var (
		questions []Question
		diags     []*MalformedRecordError
	)
	for i, jq := range doc.Questions {
		q := Question{
			Chapter:       jq.Chapter,
			Prompt:        jq.Prompt,
			CorrectAnswer: jq.CorrectAnswer,
			Explanation:   jq.Explanation,
		}
		copy(q.Choices[:], jq.Choices)
		copy(q.ChoiceExplanations[:], jq.ChoiceExplanations)

		if bad := validate(q, i+1, RecordFields); bad != nil {
			o.log.WithField("record", bad.Line).Warnf("skipping question: %s", bad.Reason)
			diags = append(diags, bad)
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, ErrNoValidQuestions
	}
	return newBank(questions, diags), nil
}

// ExportJSON renders the bank as an indented JSON document accepted by
// ParseJSON.
func (b *Bank) ExportJSON() ([]byte, error) {
	doc := document{Questions: make([]jsonQuestion, 0, len(b.questions))}
	for _, q := range b.questions {
		doc.Questions = append(doc.Questions, jsonQuestion{
			Chapter:            q.Chapter,
			Prompt:             q.Prompt,
			Choices:            q.Choices[:],
			CorrectAnswer:      q.CorrectAnswer,
			Explanation:        q.Explanation,
			ChoiceExplanations: q.ChoiceExplanations[:],
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}
