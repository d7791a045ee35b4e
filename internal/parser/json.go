package parser

import (
	"encoding/json"
	"fmt"

	"github.com/pthm/ivcoach/internal/transcript"
)

// JSONParser parses JSON transcript files: either a bare utterance
// array or a wrapped document with title/metadata.
type JSONParser struct{}

// CanParse returns true if this parser can handle the file
func (p *JSONParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeJSON
}

// Parse parses a JSON transcript file
func (p *JSONParser) Parse(path string, content []byte) (*transcript.Transcript, error) {
	// Bare array form first
	var utterances []transcript.Utterance
	if err := json.Unmarshal(content, &utterances); err == nil {
		return &transcript.Transcript{Utterances: normalize(utterances)}, nil
	}

	var doc transcript.Transcript
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	doc.Utterances = normalize(doc.Utterances)
	return &doc, nil
}

// normalize maps free-form speaker labels onto the known roles
func normalize(us []transcript.Utterance) []transcript.Utterance {
	for i := range us {
		us[i].Speaker = transcript.NormalizeSpeaker(string(us[i].Speaker))
	}
	return us
}
