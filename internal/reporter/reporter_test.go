package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/pthm/ivcoach/internal/classifier"
	"github.com/pthm/ivcoach/internal/coach"
)

func sampleReport() *Report {
	return &Report{
		Title:  "Pilot study",
		Source: "session1.md",
		Classifications: []classifier.Classification{
			{
				ID:         "c1",
				Type:       classifier.TypeOpenEnded,
				Confidence: 0.85,
				Text:       "How do you plan your week?",
				Timestamp:  12,
			},
			{
				ID:           "c2",
				Type:         classifier.TypeLeading,
				Confidence:   0.85,
				Text:         "Don't you think this is better?",
				Timestamp:    75,
				AntiPatterns: []classifier.AntiPattern{classifier.AntiPatternLeading},
			},
		},
		Stats: classifier.Stats{
			Total:        2,
			QualityScore: 35,
			Percentages: map[classifier.QuestionType]float64{
				classifier.TypeOpenEnded: 50,
				classifier.TypeLeading:   50,
			},
		},
		ActiveAntiPatterns: []classifier.AntiPattern{classifier.AntiPatternLeading},
		Prompts: []PromptEvent{
			{UtteranceID: "u2", Timestamp: 75, Confidence: 0.85, Decision: coach.Decision{Show: true, Reason: coach.ReasonOK}},
			{UtteranceID: "u4", Timestamp: 80, Confidence: 0.9, Decision: coach.Decision{Reason: coach.ReasonCooldownActive}},
		},
	}
}

func TestComputeSummary(t *testing.T) {
	s := ComputeSummary(sampleReport())

	if s.Questions != 2 {
		t.Errorf("Questions = %d, want 2", s.Questions)
	}
	if s.Desirable != 1 || s.Undesirable != 1 {
		t.Errorf("Desirable/Undesirable = %d/%d, want 1/1", s.Desirable, s.Undesirable)
	}
	if s.AntiPatterns != 1 {
		t.Errorf("AntiPatterns = %d, want 1", s.AntiPatterns)
	}
	if s.PromptsShown != 1 || s.PromptsHeld != 1 {
		t.Errorf("PromptsShown/PromptsHeld = %d/%d, want 1/1", s.PromptsShown, s.PromptsHeld)
	}
	if s.QualityScore != 35 {
		t.Errorf("QualityScore = %v, want 35", s.QualityScore)
	}
}

func TestJSONReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	if err := r.Report(sampleReport()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if len(out.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(out.Questions))
	}
	if out.Questions[0].Type != "open-ended" {
		t.Errorf("Questions[0].Type = %q, want %q", out.Questions[0].Type, "open-ended")
	}
	if got := out.Questions[1].AntiPatterns; len(got) != 1 || got[0] != "leading-question" {
		t.Errorf("Questions[1].AntiPatterns = %v, want [leading-question]", got)
	}
	if out.Summary.PromptsShown != 1 {
		t.Errorf("Summary.PromptsShown = %d, want 1", out.Summary.PromptsShown)
	}
	if out.Percentages["open-ended"] != 50 {
		t.Errorf("Percentages[open-ended] = %v, want 50", out.Percentages["open-ended"])
	}
}

func TestTerminalReporter(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf)

	if err := r.Report(sampleReport()); err != nil {
		t.Fatalf("Report() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Pilot study", "Open-ended", "leading-question", "Quality score", "[01:15]"} {
		if !strings.Contains(out, want) {
			t.Errorf("terminal output missing %q\n%s", want, out)
		}
	}
}

func TestTerminalReporterEmpty(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf)

	if err := r.Report(&Report{Title: "Empty"}); err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No interviewer questions") {
		t.Errorf("empty report output = %q", buf.String())
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"  padded  ", 10, "padded"},
		{"abcdef", 4, "abc…"},
		{"héllo wörld", 6, "héllo…"},
	}
	for _, tc := range cases {
		got := truncate(tc.in, tc.n)
		if got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.n, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.n, got)
		}
	}
}

func TestFormatTimestamp(t *testing.T) {
	cases := []struct {
		ts   float64
		want string
	}{
		{0, "00:00"},
		{12.4, "00:12"},
		{75, "01:15"},
		{3600, "60:00"},
		{-3, "00:00"},
	}
	for _, tc := range cases {
		if got := formatTimestamp(tc.ts); got != tc.want {
			t.Errorf("formatTimestamp(%v) = %q, want %q", tc.ts, got, tc.want)
		}
	}
}
