package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/chapterquiz/internal/app"
	"github.com/abhisek/chapterquiz/internal/session"
	"github.com/abhisek/chapterquiz/internal/source"
)

// runApp resolves configuration and launches the TUI. With play set, a
// session over scope starts as soon as the bank is loaded.
func runApp(cmd *cobra.Command, play bool, scope session.Scope) error {
	// Logs would corrupt the alternate screen, so they are dropped unless
	// a log file is configured.
	e, err := setup(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer e.close()

	delim, err := e.cfg.DelimiterRune()
	if err != nil {
		return err
	}

	loader := source.NewLoader(e.cfg.FetchTimeout)
	if e.cfg.Bank == source.StdinLocation {
		if err := loader.BufferStdin(); err != nil {
			return err
		}
	}

	return app.Run(app.Options{
		Location:  e.cfg.Bank,
		Loader:    loader,
		Logger:    e.log,
		Delimiter: delim,
		Seed:      e.cfg.Seed,
		Play:      play,
		Scope:     scope,
	})
}
