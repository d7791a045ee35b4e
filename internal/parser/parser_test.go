package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm/ivcoach/internal/transcript"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestParse_JSONArray(t *testing.T) {
	path := writeFixture(t, "session.json", `[
		{"id": "a", "speaker": "interviewer", "text": "How do you plan your day?", "timestamp": 1.5},
		{"speaker": "Participant", "text": "I mostly improvise.", "timestamp": 4.0}
	]`)

	tr, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(tr.Utterances) != 2 {
		t.Fatalf("len(Utterances) = %d, want 2", len(tr.Utterances))
	}
	if tr.Utterances[0].Speaker != transcript.SpeakerInterviewer {
		t.Errorf("Speaker = %v, want interviewer", tr.Utterances[0].Speaker)
	}
	if tr.Utterances[1].Speaker != transcript.SpeakerParticipant {
		t.Errorf("Speaker = %v, want participant (label normalized)", tr.Utterances[1].Speaker)
	}
	if tr.Utterances[1].ID == "" {
		t.Error("missing id was not stamped")
	}
	if tr.Utterances[0].ID != "a" {
		t.Errorf("existing id overwritten: %q", tr.Utterances[0].ID)
	}
}

func TestParse_JSONDocument(t *testing.T) {
	path := writeFixture(t, "session.json", `{
		"title": "Onboarding study, P4",
		"utterances": [
			{"speaker": "moderator", "text": "What was confusing?", "timestamp": 10}
		]
	}`)

	tr, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if tr.Title != "Onboarding study, P4" {
		t.Errorf("Title = %q", tr.Title)
	}
	if tr.Utterances[0].Speaker != transcript.SpeakerInterviewer {
		t.Errorf("moderator label = %v, want interviewer", tr.Utterances[0].Speaker)
	}
}

func TestParse_YAML(t *testing.T) {
	path := writeFixture(t, "session.yaml", `title: Pricing interview
utterances:
  - speaker: interviewer
    text: Do you compare prices?
    timestamp: 3
  - speaker: user
    text: Always.
    timestamp: 6
`)

	tr, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(tr.Utterances) != 2 {
		t.Fatalf("len(Utterances) = %d, want 2", len(tr.Utterances))
	}
	if tr.Utterances[1].Speaker != transcript.SpeakerParticipant {
		t.Errorf("user label = %v, want participant", tr.Utterances[1].Speaker)
	}
}

func TestParse_Markdown(t *testing.T) {
	path := writeFixture(t, "session.md", `---
title: Diary study follow-up
participant: P7
---

**Interviewer:** [00:05] How do you track expenses?

**Participant:** [00:12] Mostly a spreadsheet,
updated at the end of the month.

**Interviewer:** [00:30] Why a spreadsheet?
`)

	tr, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if tr.Title != "Diary study follow-up" {
		t.Errorf("Title = %q", tr.Title)
	}
	if got := tr.Metadata["participant"]; got != "P7" {
		t.Errorf("Metadata[participant] = %q, want P7", got)
	}
	if len(tr.Utterances) != 3 {
		t.Fatalf("len(Utterances) = %d, want 3: %+v", len(tr.Utterances), tr.Utterances)
	}
	if tr.Utterances[0].Timestamp != 5 {
		t.Errorf("Timestamp = %v, want 5", tr.Utterances[0].Timestamp)
	}
	// Wrapped line is folded into the utterance
	want := "Mostly a spreadsheet, updated at the end of the month."
	if tr.Utterances[1].Text != want {
		t.Errorf("Text = %q, want %q", tr.Utterances[1].Text, want)
	}
}

func TestParse_PlainText(t *testing.T) {
	path := writeFixture(t, "session.txt", `[00:02] Interviewer: Walk me through your setup.
[00:10] Participant: I start with the dashboard,
then open the reports tab.
[01:05] Interviewer: Is that every day?
`)

	tr, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(tr.Utterances) != 3 {
		t.Fatalf("len(Utterances) = %d, want 3", len(tr.Utterances))
	}
	if tr.Utterances[1].Timestamp != 10 {
		t.Errorf("Timestamp = %v, want 10", tr.Utterances[1].Timestamp)
	}
	if tr.Utterances[2].Timestamp != 65 {
		t.Errorf("Timestamp = %v, want 65", tr.Utterances[2].Timestamp)
	}
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"00:05", 5, true},
		{"01:30", 90, true},
		{"12.5", 12.5, true},
		{"12.5s", 12.5, true},
		{"", 0, false},
		{"abc", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseTimestamp(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseTimestamp(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseSpeakerLine(t *testing.T) {
	u, ok := parseSpeakerLine("Researcher: What changed since then?")
	if !ok {
		t.Fatal("parseSpeakerLine() = false, want true")
	}
	if u.Speaker != transcript.SpeakerInterviewer {
		t.Errorf("Speaker = %v, want interviewer", u.Speaker)
	}

	if _, ok := parseSpeakerLine("This sentence happens to contain a colon later: see?"); ok {
		t.Error("long label before colon treated as speaker line")
	}

	u, ok = parseSpeakerLine("Observer: taking notes")
	if !ok || u.Speaker != transcript.SpeakerUnknown {
		t.Errorf("unrecognized label = (%v, %v), want unknown speaker", u.Speaker, ok)
	}
}

func TestGetFileType(t *testing.T) {
	tests := []struct {
		path string
		want FileType
	}{
		{"a/session.md", FileTypeMarkdown},
		{"session.json", FileTypeJSON},
		{"session.yml", FileTypeYAML},
		{"session.txt", FileTypeUnknown},
	}
	for _, tt := range tests {
		if got := GetFileType(tt.path); got != tt.want {
			t.Errorf("GetFileType(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
