package suggester

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pthm/ivcoach/internal/transcript"
)

// DefaultMaxSuggestions bounds the ranked list returned per call
const DefaultMaxSuggestions = 3

// Suggestion is one candidate follow-up prompt. Ephemeral: generated
// fresh per call, never persisted or deduplicated across calls.
type Suggestion struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Reason    string   `json:"reason"`
	Relevance float64  `json:"relevance"`
	Category  Category `json:"category"`
}

// Suggester generates follow-up prompts for participant utterances.
// Aside from the methodology setting it holds no cross-call state and
// is a pure function of its inputs.
type Suggester struct {
	methodology Methodology
	max         int
}

// New creates a suggester using the general methodology
func New() *Suggester {
	return &Suggester{
		methodology: MethodologyGeneral,
		max:         DefaultMaxSuggestions,
	}
}

// Methodology returns the active research methodology
func (s *Suggester) Methodology() Methodology {
	return s.methodology
}

// SetMethodology switches which template sets are consulted
func (s *Suggester) SetMethodology(m Methodology) {
	s.methodology = m
}

// SetMaxSuggestions overrides the result bound. Values below 1 are ignored.
func (s *Suggester) SetMaxSuggestions(n int) {
	if n >= 1 {
		s.max = n
	}
}

// Suggest returns ranked follow-up suggestions for a participant
// utterance. Non-participant utterances yield nil. dominantEmotion is an
// optional label from an external detector; pass "" when absent.
func (s *Suggester) Suggest(u transcript.Utterance, dominantEmotion string) []Suggestion {
	if u.Speaker != transcript.SpeakerParticipant {
		return nil
	}
	text := strings.TrimSpace(u.Text)
	if text == "" {
		return nil
	}
	norm := strings.ToLower(text)

	var picked []candidate
	for _, set := range s.activeTemplates() {
		for _, tmpl := range set {
			if tmpl.fires(norm) {
				picked = append(picked, tmpl.candidates...)
			}
		}
	}

	if dominantEmotion != "" {
		if c, ok := emotionCandidates[strings.ToLower(dominantEmotion)]; ok {
			picked = append(picked, c)
		}
	}

	if len(picked) == 0 {
		picked = append(picked, fallbackCandidate)
	}

	return rank(picked, s.max)
}

// SuggestFromContext runs Suggest against the most recent participant
// utterance in the window, or returns nil when the window holds none.
func (s *Suggester) SuggestFromContext(window []transcript.Utterance, dominantEmotion string) []Suggestion {
	for i := len(window) - 1; i >= 0; i-- {
		if window[i].Speaker == transcript.SpeakerParticipant {
			return s.Suggest(window[i], dominantEmotion)
		}
	}
	return nil
}

func (s *Suggester) activeTemplates() [][]template {
	sets := [][]template{generalTemplates}
	if extra, ok := methodologyTemplates[s.methodology]; ok {
		sets = append(sets, extra)
	}
	return sets
}

func (t *template) fires(norm string) bool {
	for _, trigger := range t.triggers {
		if strings.Contains(norm, trigger) {
			return true
		}
	}
	return false
}

// rank dedupes by suggestion text (first occurrence wins), sorts by
// descending relevance, truncates to max, and stamps fresh ids.
func rank(picked []candidate, max int) []Suggestion {
	seen := make(map[string]bool, len(picked))
	out := make([]Suggestion, 0, len(picked))
	for _, c := range picked {
		if seen[c.text] {
			continue
		}
		seen[c.text] = true
		out = append(out, Suggestion{
			ID:        uuid.New().String(),
			Text:      c.text,
			Reason:    c.reason,
			Relevance: c.relevance,
			Category:  c.category,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Relevance > out[j].Relevance
	})

	if len(out) > max {
		out = out[:max]
	}
	return out
}
