package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/chapterquiz/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a session right away",
	Long:  "Start a session as soon as the bank is loaded, over one chapter or, without --chapter, over all questions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		chapter, _ := cmd.Flags().GetString("chapter")
		scope := session.ScopeAll
		if chapter != "" {
			scope = session.Scope(chapter)
		}
		return runApp(cmd, true, scope)
	},
}

func init() {
	playCmd.Flags().StringP("chapter", "c", "", "Chapter to play (default all chapters)")
}
