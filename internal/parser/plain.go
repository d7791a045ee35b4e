package parser

import (
	"strings"

	"github.com/pthm/ivcoach/internal/transcript"
)

// PlainParser parses plain text transcripts, one "Speaker: text" line
// per utterance; unlabelled lines continue the previous utterance.
type PlainParser struct{}

// CanParse returns true (fallback parser)
func (p *PlainParser) CanParse(path string) bool {
	return true
}

// Parse parses a plain text transcript
func (p *PlainParser) Parse(path string, content []byte) (*transcript.Transcript, error) {
	tr := &transcript.Transcript{}

	for _, line := range strings.Split(string(content), "\n") {
		if u, ok := parseSpeakerLine(line); ok {
			tr.Utterances = append(tr.Utterances, u)
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" || len(tr.Utterances) == 0 {
			continue
		}
		last := &tr.Utterances[len(tr.Utterances)-1]
		last.Text = last.Text + " " + line
	}

	return tr, nil
}
