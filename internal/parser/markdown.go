package parser

import (
	"fmt"
	"strings"

	"github.com/pthm/ivcoach/internal/transcript"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser parses markdown transcripts: speaker-labelled lines
// ("**Interviewer:** text" or "Interviewer: text") inside paragraphs,
// with optional YAML frontmatter carrying session metadata.
type MarkdownParser struct{}

// CanParse returns true if this parser can handle the file
func (p *MarkdownParser) CanParse(path string) bool {
	return GetFileType(path) == FileTypeMarkdown
}

// Parse parses a markdown transcript file
func (p *MarkdownParser) Parse(path string, content []byte) (*transcript.Transcript, error) {
	frontmatter, body := ParseFrontmatter(content)

	tr := &transcript.Transcript{}
	applyFrontmatter(tr, frontmatter)

	md := goldmark.New()
	reader := text.NewReader(body)
	doc := md.Parser().Parse(reader)

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.Heading:
			if tr.Title == "" && node.Level == 1 {
				tr.Title = string(node.Text(body))
			}
			return ast.WalkSkipChildren, nil

		case *ast.Paragraph:
			for i := 0; i < node.Lines().Len(); i++ {
				seg := node.Lines().At(i)
				p.consumeLine(tr, string(seg.Value(body)))
			}
			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return tr, nil
}

// consumeLine appends one paragraph line to the transcript: a speaker
// line starts a new utterance, anything else continues the previous one.
func (p *MarkdownParser) consumeLine(tr *transcript.Transcript, line string) {
	// Bold speaker labels are common in exported notes
	line = strings.ReplaceAll(line, "**", "")

	if u, ok := parseSpeakerLine(line); ok {
		tr.Utterances = append(tr.Utterances, u)
		return
	}

	line = strings.TrimSpace(line)
	if line == "" || len(tr.Utterances) == 0 {
		return
	}
	last := &tr.Utterances[len(tr.Utterances)-1]
	last.Text = last.Text + " " + line
}

func applyFrontmatter(tr *transcript.Transcript, fm map[string]interface{}) {
	if fm == nil {
		return
	}
	tr.Metadata = make(map[string]string, len(fm))
	for k, v := range fm {
		if k == "title" {
			if s, ok := v.(string); ok {
				tr.Title = s
				continue
			}
		}
		tr.Metadata[k] = fmt.Sprintf("%v", v)
	}
}
