package cmd

import (
	"fmt"
	"os"

	"github.com/pthm/ivcoach/internal/classifier"
	"github.com/pthm/ivcoach/internal/coach"
	"github.com/pthm/ivcoach/internal/config"
	"github.com/pthm/ivcoach/internal/emotion"
	"github.com/pthm/ivcoach/internal/parser"
	"github.com/pthm/ivcoach/internal/reporter"
	"github.com/pthm/ivcoach/internal/suggester"
	"github.com/pthm/ivcoach/internal/transcript"
	"github.com/pthm/ivcoach/internal/ui"
	"github.com/spf13/cobra"
)

var (
	methodology string
	preset      string
	emotionURL  string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <transcript>",
	Short: "Analyze an interview transcript",
	Long: `Replay an interview transcript through the coaching pipeline.

Examples:
  ivcoach analyze session.md
  ivcoach analyze --methodology usability session.json
  ivcoach analyze --format json session.txt > report.json`,
	Args:         cobra.ExactArgs(1),
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().StringVarP(&methodology, "methodology", "m", "", "Research methodology for follow-up suggestions (general, jobs-to-be-done, usability, discovery)")
	analyzeCmd.Flags().StringVarP(&preset, "preset", "p", "", "Coaching preset (off, minimal, balanced, active)")
	analyzeCmd.Flags().StringVar(&emotionURL, "emotion-url", "", "Base URL of an emotion detection service")
	RootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]

	u := GetUI()

	// Start progress tracking if in interactive mode
	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	// Stage 1: Load configuration and transcript
	progress.SetStage(ui.StageLoadTranscript)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Flags override file configuration
	if methodology != "" {
		cfg.Suggestions.Methodology = methodology
	}
	if preset != "" {
		cfg.Coaching.Preset = preset
	}
	if emotionURL != "" {
		cfg.Emotion.URL = emotionURL
	}

	tr, err := parser.Parse(path)
	if err != nil {
		return fmt.Errorf("failed to parse transcript: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Parsed %d utterances from %s\n", len(tr.Utterances), path)
	}

	// Stage 2: Replay the session
	progress.SetStage(ui.StageClassify)
	progress.SetUtteranceCount(len(tr.Utterances))

	rep := replaySession(cmd, cfg, tr, path, progress)

	// Stage 3: Report results
	progress.SetStage(ui.StageReport)

	// Stop progress before writing the report
	if progress != nil {
		progress.Done(nil)
		progress = nil // Prevent double-done in defer
	}
	var out reporter.Reporter
	if u.IsJSON() {
		out = reporter.NewJSONReporter(os.Stdout)
	} else {
		out = reporter.NewTerminalReporter(os.Stdout)
	}

	return out.Report(rep)
}

// replaySession feeds each utterance through the classifier, suggester,
// and coaching gate in transcript order, as a live session would.
func replaySession(cmd *cobra.Command, cfg *config.Config, tr *transcript.Transcript, source string, progress *ui.ProgressController) *reporter.Report {
	cls := classifier.New()
	if cfg.Classifier.ClosedRunThreshold > 0 {
		cls.SetClosedRunThreshold(cfg.Classifier.ClosedRunThreshold)
	}

	sugg := suggester.New()
	sugg.SetMethodology(cfg.Methodology())
	if cfg.Suggestions.Max > 0 {
		sugg.SetMaxSuggestions(cfg.Suggestions.Max)
	}

	gate := coach.NewGate(cfg.Thresholds())

	var emo *emotion.Client
	if cfg.Emotion.URL != "" {
		emo = emotion.NewClient(cfg.Emotion.URL)
	}

	rep := &reporter.Report{
		Title:  tr.Title,
		Source: source,
	}

	for _, utt := range tr.Utterances {
		switch utt.Speaker {
		case transcript.SpeakerInterviewer:
			cl := cls.Classify(utt)
			gate.RecordSpeech(utt.Timestamp)

			// A question carrying anti-patterns is a coaching moment;
			// ask the gate whether a live prompt would have been shown.
			if cl != nil && len(cl.AntiPatterns) > 0 {
				d := gate.Consider(cl.Confidence, utt.Timestamp)
				rep.Prompts = append(rep.Prompts, reporter.PromptEvent{
					UtteranceID: utt.ID,
					Timestamp:   utt.Timestamp,
					Confidence:  cl.Confidence,
					Decision:    d,
				})
			}

		case transcript.SpeakerParticipant:
			dominant := ""
			if emo != nil {
				if res, err := emo.Detect(cmd.Context(), utt.Text); err == nil {
					dominant = res.DominantEmotion
				}
			}

			if sgs := sugg.Suggest(utt, dominant); len(sgs) > 0 {
				rep.Suggestions = append(rep.Suggestions, reporter.SuggestionEvent{
					UtteranceID: utt.ID,
					Timestamp:   utt.Timestamp,
					Emotion:     dominant,
					Suggestions: sgs,
				})
			}
		}

		progress.UtteranceDone()
	}

	rep.Classifications = cls.Classifications()
	rep.Stats = cls.Stats()
	rep.ActiveAntiPatterns = cls.CurrentAntiPatterns()

	return rep
}
