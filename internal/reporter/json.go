package reporter

import (
	"encoding/json"
	"io"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// JSONOutput represents the JSON output format
type JSONOutput struct {
	Title              string               `json:"title,omitempty"`
	Source             string               `json:"source,omitempty"`
	Questions          []JSONClassification `json:"questions"`
	Percentages        map[string]float64   `json:"percentages"`
	ActiveAntiPatterns []string             `json:"activeAntiPatterns"`
	Suggestions        []SuggestionEvent    `json:"suggestions,omitempty"`
	Prompts            []PromptEvent        `json:"prompts,omitempty"`
	Summary            Summary              `json:"summary"`
}

// JSONClassification represents one classified question in JSON format
type JSONClassification struct {
	ID           string   `json:"id"`
	UtteranceID  string   `json:"utteranceId"`
	Type         string   `json:"type"`
	Confidence   float64  `json:"confidence"`
	Text         string   `json:"text"`
	Timestamp    float64  `json:"timestamp"`
	AntiPatterns []string `json:"antiPatterns,omitempty"`
}

// Report outputs the session analysis as JSON
func (r *JSONReporter) Report(rep *Report) error {
	output := JSONOutput{
		Title:              rep.Title,
		Source:             rep.Source,
		Questions:          make([]JSONClassification, 0, len(rep.Classifications)),
		Percentages:        make(map[string]float64, len(rep.Stats.Percentages)),
		ActiveAntiPatterns: make([]string, 0, len(rep.ActiveAntiPatterns)),
		Suggestions:        rep.Suggestions,
		Prompts:            rep.Prompts,
		Summary:            ComputeSummary(rep),
	}

	for _, cl := range rep.Classifications {
		jc := JSONClassification{
			ID:          cl.ID,
			UtteranceID: cl.UtteranceID,
			Type:        cl.Type.String(),
			Confidence:  cl.Confidence,
			Text:        cl.Text,
			Timestamp:   cl.Timestamp,
		}
		for _, p := range cl.AntiPatterns {
			jc.AntiPatterns = append(jc.AntiPatterns, p.String())
		}
		output.Questions = append(output.Questions, jc)
	}

	for t, pct := range rep.Stats.Percentages {
		output.Percentages[t.String()] = pct
	}

	for _, p := range rep.ActiveAntiPatterns {
		output.ActiveAntiPatterns = append(output.ActiveAntiPatterns, p.String())
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
