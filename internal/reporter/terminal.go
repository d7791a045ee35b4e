package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pthm/ivcoach/internal/classifier"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w io.Writer
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer) *TerminalReporter {
	return &TerminalReporter{w: w}
}

// Report outputs the session analysis to the terminal
func (r *TerminalReporter) Report(rep *Report) error {
	title := rep.Title
	if title == "" {
		title = "Interview session"
	}
	color.New(color.FgWhite, color.Bold).Fprintf(r.w, "%s\n", title)
	if rep.Source != "" {
		color.New(color.FgHiBlack).Fprintf(r.w, "  %s\n", rep.Source)
	}

	if len(rep.Classifications) == 0 {
		fmt.Fprintln(r.w)
		color.New(color.FgYellow).Fprintln(r.w, "⚠ No interviewer questions found")
		return nil
	}

	fmt.Fprintln(r.w)
	color.New(color.Bold).Fprintln(r.w, "Questions")
	for _, cl := range rep.Classifications {
		r.printClassification(cl)
	}

	if len(rep.Suggestions) > 0 {
		fmt.Fprintln(r.w)
		color.New(color.Bold).Fprintln(r.w, "Suggested follow-ups")
		for _, ev := range rep.Suggestions {
			r.printSuggestions(ev)
		}
	}

	if len(rep.Prompts) > 0 {
		fmt.Fprintln(r.w)
		color.New(color.Bold).Fprintln(r.w, "Coaching prompts")
		for _, p := range rep.Prompts {
			r.printPrompt(p)
		}
	}

	r.printSummary(rep)
	return nil
}

func (r *TerminalReporter) printClassification(cl classifier.Classification) {
	var icon string
	var iconColor *color.Color

	switch {
	case len(cl.AntiPatterns) > 0:
		icon = "✗"
		iconColor = color.New(color.FgRed)
	case cl.Type.Desirable():
		icon = "✓"
		iconColor = color.New(color.FgGreen)
	default:
		icon = "•"
		iconColor = color.New(color.FgYellow)
	}

	iconColor.Fprintf(r.w, "  %s ", icon)
	fmt.Fprintf(r.w, "[%s] %s", formatTimestamp(cl.Timestamp), cl.Type.Label())
	color.New(color.FgHiBlack).Fprintf(r.w, " (%.2f)", cl.Confidence)
	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "    %s\n", truncate(cl.Text, 120))

	for _, p := range cl.AntiPatterns {
		color.New(color.FgRed).Fprintf(r.w, "    ! %s\n", p.String())
	}
}

func (r *TerminalReporter) printSuggestions(ev SuggestionEvent) {
	fmt.Fprintf(r.w, "  [%s]", formatTimestamp(ev.Timestamp))
	if ev.Emotion != "" {
		color.New(color.FgMagenta).Fprintf(r.w, " (%s)", ev.Emotion)
	}
	fmt.Fprintln(r.w)
	for _, s := range ev.Suggestions {
		color.New(color.FgCyan).Fprintf(r.w, "    💡 %s\n", s.Text)
		color.New(color.FgHiBlack).Fprintf(r.w, "       %s (%.2f)\n", s.Reason, s.Relevance)
	}
}

func (r *TerminalReporter) printPrompt(p PromptEvent) {
	if p.Decision.Show {
		color.New(color.FgGreen).Fprintf(r.w, "  ▶ [%s] shown", formatTimestamp(p.Timestamp))
		color.New(color.FgHiBlack).Fprintf(r.w, " (confidence %.2f)\n", p.Confidence)
		return
	}
	color.New(color.FgHiBlack).Fprintf(r.w, "  - [%s] held: %s\n", formatTimestamp(p.Timestamp), p.Decision.Reason)
}

func (r *TerminalReporter) printSummary(rep *Report) {
	summary := ComputeSummary(rep)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, "─────────────────────────────────────")

	parts := []string{}

	if summary.Desirable > 0 {
		parts = append(parts, color.GreenString("%d open/probing", summary.Desirable))
	}
	if summary.Undesirable > 0 {
		parts = append(parts, color.YellowString("%d closed/other", summary.Undesirable))
	}
	if summary.AntiPatterns > 0 {
		parts = append(parts, color.RedString("%d anti-patterns", summary.AntiPatterns))
	}

	fmt.Fprintf(r.w, "Analyzed %d questions: ", summary.Questions)
	for i, part := range parts {
		if i > 0 {
			fmt.Fprint(r.w, ", ")
		}
		fmt.Fprint(r.w, part)
	}
	fmt.Fprintln(r.w)

	scoreColor := color.New(color.FgGreen)
	if summary.QualityScore < 40 {
		scoreColor = color.New(color.FgRed)
	} else if summary.QualityScore < 70 {
		scoreColor = color.New(color.FgYellow)
	}
	fmt.Fprint(r.w, "Quality score: ")
	scoreColor.Fprintf(r.w, "%.0f/100\n", summary.QualityScore)

	if len(rep.Prompts) > 0 {
		fmt.Fprintf(r.w, "Prompts: %d shown, %d held\n", summary.PromptsShown, summary.PromptsHeld)
	}

	for _, p := range rep.ActiveAntiPatterns {
		color.New(color.FgRed).Fprintf(r.w, "Active: %s\n", p.String())
	}
}

// formatTimestamp renders session-relative seconds as mm:ss
func formatTimestamp(ts float64) string {
	if ts < 0 {
		ts = 0
	}
	total := int(ts)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
