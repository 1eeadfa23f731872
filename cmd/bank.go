package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/chapterquiz/internal/bank"
	"github.com/abhisek/chapterquiz/internal/source"
)

// loadBank fetches and parses the configured bank.
func (e *env) loadBank(ctx context.Context) (*bank.Bank, error) {
	delim, err := e.cfg.DelimiterRune()
	if err != nil {
		return nil, err
	}

	doc, err := source.NewLoader(e.cfg.FetchTimeout).Load(ctx, e.cfg.Bank)
	if err != nil {
		return nil, err
	}

	b, err := doc.Decode(bank.WithDelimiter(delim), bank.WithLogger(e.log))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", doc.Location, err)
	}

	e.log.WithField("location", doc.Location).Debugf("loaded %d questions", b.Len())
	return b, nil
}
