package cmd

import (
	"fmt"
	"os"

	"github.com/pthm/ivcoach/internal/coach"
	"github.com/spf13/cobra"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List coaching presets and their thresholds",
	Run: func(cmd *cobra.Command, args []string) {
		u := GetUI()

		for i, p := range coach.Presets() {
			t := coach.ForPreset(p)

			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			fmt.Fprintln(os.Stdout, u.Styles.Header.Render(string(p)))
			fmt.Fprintf(os.Stdout, "  confidence threshold  %.2f\n", t.EffectiveConfidenceThreshold())
			fmt.Fprintf(os.Stdout, "  prompt cooldown       %.0fs\n", t.EffectiveCooldown())
			fmt.Fprintf(os.Stdout, "  speech cooldown       %.1fs\n", t.SpeechCooldown)
			fmt.Fprintf(os.Stdout, "  prompts per session   %d\n", t.MaxPromptsPerSession)
			fmt.Fprintf(os.Stdout, "  sensitivity           %.1f\n", t.SensitivityMultiplier)
		}
	},
}

func init() {
	RootCmd.AddCommand(presetsCmd)
}
