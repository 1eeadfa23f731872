package source

import (
	"github.com/abhisek/chapterquiz/internal/bank"
)

// Decode parses the document with the parser matching its format.
func (d *Document) Decode(opts ...bank.Option) (*bank.Bank, error) {
	if d.Format == FormatJSON {
		return bank.ParseJSON(d.Data, opts...)
	}
	return bank.Parse(string(d.Data), opts...)
}
