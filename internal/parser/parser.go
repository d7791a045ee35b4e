package parser

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pthm/ivcoach/internal/transcript"
	"gopkg.in/yaml.v3"
)

// FileType represents the format of a transcript file
type FileType int

const (
	FileTypeUnknown FileType = iota
	FileTypeMarkdown
	FileTypeJSON
	FileTypeYAML
)

// GetFileType returns the FileType for a given path
func GetFileType(path string) FileType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return FileTypeMarkdown
	case ".json":
		return FileTypeJSON
	case ".yaml", ".yml":
		return FileTypeYAML
	default:
		return FileTypeUnknown
	}
}

// Parser defines the interface for parsing transcript files
type Parser interface {
	Parse(path string, content []byte) (*transcript.Transcript, error)
	CanParse(path string) bool
}

// Parse reads and parses a transcript file using the parser matching
// its extension. Utterances missing an id are stamped with a fresh one.
func Parse(path string) (*transcript.Transcript, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	tr, err := getParser(path).Parse(path, content)
	if err != nil {
		return nil, err
	}

	stampIDs(tr)
	return tr, nil
}

// getParser returns the appropriate parser for a file
func getParser(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return &MarkdownParser{}
	case ".json":
		return &JSONParser{}
	case ".yaml", ".yml":
		return &YAMLParser{}
	default:
		return &PlainParser{}
	}
}

func stampIDs(tr *transcript.Transcript) {
	for i := range tr.Utterances {
		if tr.Utterances[i].ID == "" {
			tr.Utterances[i].ID = uuid.New().String()
		}
	}
}

// parseSpeakerLine parses one "Speaker: text" transcript line. An
// optional "[mm:ss]" or "[12.5s]" timestamp may precede the label or the
// text. Lines without a short speaker label before the first colon are
// not utterance starts.
func parseSpeakerLine(line string) (transcript.Utterance, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return transcript.Utterance{}, false
	}

	ts, hasTS, line := stripTimestamp(line)

	idx := strings.Index(line, ":")
	if idx <= 0 {
		return transcript.Utterance{}, false
	}
	label := strings.TrimSpace(line[:idx])
	// Speaker labels are short; a colon deep into a sentence is content
	if len(strings.Fields(label)) > 2 {
		return transcript.Utterance{}, false
	}

	text := strings.TrimSpace(line[idx+1:])
	if !hasTS {
		ts, hasTS, text = stripTimestamp(text)
	}

	u := transcript.Utterance{
		Speaker: transcript.NormalizeSpeaker(label),
		Text:    text,
	}
	if hasTS {
		u.Timestamp = ts
	}
	return u, true
}

// stripTimestamp removes a leading "[...]" timestamp, returning its
// value and whatever follows.
func stripTimestamp(s string) (float64, bool, string) {
	if !strings.HasPrefix(s, "[") {
		return 0, false, s
	}
	end := strings.Index(s, "]")
	if end <= 0 {
		return 0, false, s
	}
	v, ok := parseTimestamp(s[1:end])
	if !ok {
		return 0, false, s
	}
	return v, true, strings.TrimSpace(s[end+1:])
}

// parseTimestamp accepts "mm:ss", plain seconds ("12.5"), or
// seconds with a unit suffix ("12.5s").
func parseTimestamp(s string) (float64, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(s, "s"))
	if s == "" {
		return 0, false
	}

	if parts := strings.Split(s, ":"); len(parts) == 2 {
		mins, err1 := strconv.Atoi(parts[0])
		secs, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0, false
		}
		return float64(mins)*60 + secs, true
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseFrontmatter extracts YAML frontmatter between --- delimiters.
// Returns the parsed frontmatter and the remaining content without it.
func ParseFrontmatter(content []byte) (map[string]interface{}, []byte) {
	s := string(content)

	if !strings.HasPrefix(s, "---") {
		return nil, content
	}

	rest := s[3:]
	endIdx := strings.Index(rest, "\n---")
	if endIdx == -1 {
		return nil, content
	}

	frontmatterStr := strings.TrimSpace(rest[:endIdx])

	var frontmatter map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterStr), &frontmatter); err != nil {
		return nil, content
	}

	remaining := rest[endIdx+4:]
	if strings.HasPrefix(remaining, "\n") {
		remaining = remaining[1:]
	}

	return frontmatter, []byte(remaining)
}
