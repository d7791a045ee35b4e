package reporter

import (
	"github.com/pthm/ivcoach/internal/classifier"
	"github.com/pthm/ivcoach/internal/coach"
	"github.com/pthm/ivcoach/internal/suggester"
)

// Reporter defines the interface for outputting session results
type Reporter interface {
	// Report outputs the analysis of one session
	Report(rep *Report) error
}

// PromptEvent records one gate decision made during the session
type PromptEvent struct {
	UtteranceID string         `json:"utteranceId"`
	Timestamp   float64        `json:"timestamp"`
	Confidence  float64        `json:"confidence"`
	Decision    coach.Decision `json:"decision"`
}

// SuggestionEvent records the follow-ups generated for one participant
// utterance
type SuggestionEvent struct {
	UtteranceID string                 `json:"utteranceId"`
	Timestamp   float64                `json:"timestamp"`
	Emotion     string                 `json:"emotion,omitempty"`
	Suggestions []suggester.Suggestion `json:"suggestions"`
}

// Report is the full outcome of replaying one transcript through the
// coaching pipeline
type Report struct {
	Title              string
	Source             string
	Classifications    []classifier.Classification
	Stats              classifier.Stats
	ActiveAntiPatterns []classifier.AntiPattern
	Suggestions        []SuggestionEvent
	Prompts            []PromptEvent
}

// Summary holds summary statistics for a session
type Summary struct {
	Questions    int     `json:"questions"`
	Desirable    int     `json:"desirable"`
	Undesirable  int     `json:"undesirable"`
	AntiPatterns int     `json:"antiPatterns"`
	PromptsShown int     `json:"promptsShown"`
	PromptsHeld  int     `json:"promptsHeld"`
	QualityScore float64 `json:"qualityScore"`
}

// ComputeSummary computes summary statistics from a report
func ComputeSummary(rep *Report) Summary {
	s := Summary{
		Questions:    len(rep.Classifications),
		QualityScore: rep.Stats.QualityScore,
	}

	for _, cl := range rep.Classifications {
		if cl.Type.Desirable() {
			s.Desirable++
		} else {
			s.Undesirable++
		}
		s.AntiPatterns += len(cl.AntiPatterns)
	}

	for _, p := range rep.Prompts {
		if p.Decision.Show {
			s.PromptsShown++
		} else {
			s.PromptsHeld++
		}
	}

	return s
}
