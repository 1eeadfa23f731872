package cmd

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/abhisek/chapterquiz/internal/config"
	"github.com/abhisek/chapterquiz/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "chapterquiz",
	Short: "Chapter-based multiple-choice quiz",
	Long: "ChapterQuiz loads a question bank, groups its questions by chapter and quizzes you\n" +
		"in the terminal, showing the explanation written for every choice after each answer.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	registerFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(chaptersCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// registerFlags adds the configuration flags shared by every command.
func registerFlags(f *pflag.FlagSet) {
	f.String("bank", "sample:", "Question bank: file path, - for stdin, http(s) URL, or sample:")
	f.String("delimiter", ",", "Field delimiter for delimited banks")
	f.Uint64("seed", 0, "Shuffle seed for reproducible sessions (0 = random)")
	f.Duration("fetch-timeout", 0, "Timeout for fetching URL banks (default 15s)")
	f.String("log-level", "info", "Log level (debug, info, warn, error)")
	f.String("log-file", "", "Write logs to this file")
	f.String("config", "", "Config file (default ./chapterquiz.yaml or $XDG_CONFIG_HOME/chapterquiz/chapterquiz.yaml)")
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"bank":          "bank",
	"delimiter":     "delimiter",
	"seed":          "seed",
	"fetch-timeout": "fetch_timeout",
	"log-level":     "log.level",
	"log-file":      "log.file",
}

// env is the resolved configuration and logger of one command run.
type env struct {
	cfg   *config.Config
	log   *logrus.Logger
	close func() error
}

// setup resolves configuration from flags, environment and config file, and
// builds the logger. Log output goes to fallback unless a log file is set.
func setup(cmd *cobra.Command, fallback io.Writer) (*env, error) {
	v := config.New()
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}

	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logger.New(cfg, fallback)
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: log, close: closeLog}, nil
}

// bindFlags binds the flags that were set on the command line; unset flags
// leave env, file and defaults in charge.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		fl := cmd.Flags().Lookup(name)
		if fl == nil || !fl.Changed {
			continue
		}
		if err := v.BindPFlag(key, fl); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
