package cmd

import (
	"os"
	"sync"

	"github.com/pthm/ivcoach/internal/ui"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string
)

var RootCmd = &cobra.Command{
	Use:   "ivcoach",
	Short: "An interview coaching analyzer for user research sessions",
	Long: `ivcoach analyzes user research interview transcripts to surface the
quality of the interviewer's questions.

It classifies each question (open-ended, closed, probing, clarifying,
hypothetical), flags common anti-patterns like leading, assumptive,
and double-barreled phrasing, suggests follow-up questions the
interviewer could have asked, and replays the session through the
coaching gate to show which prompts a live coach would have raised.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

var (
	globalUI *ui.UI
	uiOnce   sync.Once
)

// GetUI returns the process-wide UI, configured from the format flag
func GetUI() *ui.UI {
	uiOnce.Do(func() {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	})
	return globalUI
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
}
