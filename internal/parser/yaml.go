package parser

import (
	"fmt"

	"github.com/pthm/ivcoach/internal/transcript"
	"gopkg.in/yaml.v3"
)

// YAMLParser parses YAML transcript documents
type YAMLParser struct{}

// CanParse returns true if this parser can handle the file
func (p *YAMLParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeYAML
}

// yamlDocument mirrors transcript.Transcript with yaml field names
type yamlDocument struct {
	Title      string            `yaml:"title"`
	Metadata   map[string]string `yaml:"metadata"`
	Utterances []yamlUtterance   `yaml:"utterances"`
}

type yamlUtterance struct {
	ID        string  `yaml:"id"`
	Speaker   string  `yaml:"speaker"`
	Text      string  `yaml:"text"`
	Timestamp float64 `yaml:"timestamp"`
}

// Parse parses a YAML transcript file
func (p *YAMLParser) Parse(path string, content []byte) (*transcript.Transcript, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	tr := &transcript.Transcript{
		Title:    doc.Title,
		Metadata: doc.Metadata,
	}
	for _, u := range doc.Utterances {
		tr.Utterances = append(tr.Utterances, transcript.Utterance{
			ID:        u.ID,
			Speaker:   transcript.NormalizeSpeaker(u.Speaker),
			Text:      u.Text,
			Timestamp: u.Timestamp,
		})
	}
	return tr, nil
}
