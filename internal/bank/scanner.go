package bank

import "strings"

// DefaultDelimiter separates fields in a record.
const DefaultDelimiter = ','

type scanState int

const (
	stateFieldStart scanState = iota // before the first rune of a field
	stateUnquoted                    // inside a bare field
	stateQuoted                      // inside "..."
	stateAfterQuote                  // closing quote seen, waiting for delimiter
)

// splitRecord tokenizes one line into fields.
//
// Quoted fields may contain the delimiter, and "" inside quotes is a literal
// quote. Bare fields are whitespace-trimmed; quoted content is kept as is.
// An unterminated quote runs to the end of the line.
func splitRecord(line string, delim rune) []string {
	var (
		fields []string
		cur    strings.Builder
		state  = stateFieldStart
	)

	emit := func() {
		f := cur.String()
		if state == stateUnquoted {
			f = strings.TrimSpace(f)
		}
		fields = append(fields, f)
		cur.Reset()
		state = stateFieldStart
	}

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch state {
		case stateFieldStart:
			switch {
			case r == delim:
				emit()
			case r == '"':
				state = stateQuoted
			case r == ' ' || r == '\t':
				// leading whitespace before a field or an opening quote
			default:
				cur.WriteRune(r)
				state = stateUnquoted
			}

		case stateUnquoted:
			if r == delim {
				emit()
				continue
			}
			cur.WriteRune(r)

		case stateQuoted:
			if r != '"' {
				cur.WriteRune(r)
				continue
			}
			if i+1 < len(runes) && runes[i+1] == '"' {
				cur.WriteRune('"')
				i++
				continue
			}
			state = stateAfterQuote

		case stateAfterQuote:
			switch {
			case r == delim:
				emit()
			case r == ' ' || r == '\t':
			default:
				cur.WriteRune(r)
			}
		}
	}
	emit()

	return fields
}
