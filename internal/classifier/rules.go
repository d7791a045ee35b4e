package classifier

import "strings"

// interrogativeOpeners qualify non-"?" text as a question when they start it
var interrogativeOpeners = []string{
	"how", "what", "when", "where", "why", "who", "which",
	"do", "did", "is", "are", "have", "has", "can", "could",
	"was", "were", "will", "would", "should", "shall", "does",
	"tell me", "describe", "explain",
}

// boost raises a rule's confidence when a stronger lexical cue is present
type boost struct {
	cue        string
	confidence float64
}

// typeRule binds lexical cues to a question type. Rules are evaluated
// top-to-bottom; the first match assigns the primary type, so the order
// of typeRules is the classifier's priority, most specific first.
type typeRule struct {
	qtype      QuestionType
	confidence float64
	prefixes   []string // match the start of the normalized text
	anywhere   []string // match any position
	boosts     []boost
}

var typeRules = []typeRule{
	{
		qtype:      TypeHypothetical,
		confidence: 0.85,
		anywhere: []string{
			"what if", "imagine", "suppose", "let's say",
			"hypothetically", "what would happen if", "would you do if",
		},
		boosts: []boost{{"what if", 0.90}},
	},
	{
		qtype:      TypeClarifying,
		confidence: 0.85,
		anywhere: []string{
			"what do you mean", "could you explain", "could you clarify",
			"can you clarify", "just to confirm", "so you're saying",
			"when you say", "in what sense",
		},
		boosts: []boost{{"what do you mean", 0.95}},
	},
	{
		qtype:      TypeProbing,
		confidence: 0.85,
		prefixes:   []string{"why"},
		anywhere: []string{
			"tell me more", "what else", "can you elaborate",
			"could you elaborate", "how come", "what makes", "what led",
		},
	},
	{
		qtype:      TypeOpenEnded,
		confidence: 0.85,
		prefixes: []string{
			"how ", "what ", "tell me about", "describe",
			"walk me through", "explain",
		},
		boosts: []boost{
			{"tell me about", 0.95},
			{"walk me through", 0.95},
		},
	},
	{
		qtype:      TypeClosed,
		confidence: 0.80,
		prefixes: []string{
			"do you", "did you", "is it", "is there", "are you",
			"have you", "has ", "can you", "could you", "would you",
			"will you", "was it", "was the", "were you", "does ",
			"should ",
		},
		boosts: []boost{
			{"do you", 0.90},
			{"did you", 0.90},
		},
	},
}

// defaultClosedConfidence applies when text passed the is-a-question
// test but no rule matched; such questions default to closed.
const defaultClosedConfidence = 0.70

func (r *typeRule) matches(norm string) bool {
	for _, p := range r.prefixes {
		if strings.HasPrefix(norm, p) {
			return true
		}
	}
	for _, a := range r.anywhere {
		if strings.Contains(norm, a) {
			return true
		}
	}
	return false
}

func (r *typeRule) score(norm string) float64 {
	conf := r.confidence
	for _, b := range r.boosts {
		if strings.Contains(norm, b.cue) && b.confidence > conf {
			conf = b.confidence
		}
	}
	return conf
}

// isQuestion reports whether normalized text qualifies as a question:
// a trailing "?" always does, otherwise an interrogative opener must start it.
func isQuestion(norm string) bool {
	if strings.HasSuffix(norm, "?") {
		return true
	}
	for _, opener := range interrogativeOpeners {
		if norm == opener || strings.HasPrefix(norm, opener+" ") {
			return true
		}
	}
	return false
}

// classifyType assigns the primary question type via the ordered rule table
func classifyType(norm string) (QuestionType, float64) {
	for i := range typeRules {
		if typeRules[i].matches(norm) {
			return typeRules[i].qtype, typeRules[i].score(norm)
		}
	}
	return TypeClosed, defaultClosedConfidence
}

// Anti-pattern overlays. Applied after primary typing, in this order;
// each may force the type and raise (never lower) confidence.

var leadingCues = []string{
	"don't you think", "wouldn't you agree", "isn't it true",
	"wouldn't you say", "don't you feel",
}

var leadingPrefixes = []string{"surely ", "obviously ", "clearly "}

var leadingSuffixes = []string{"right?", "correct?"}

func applyLeading(norm string, cl *Classification) {
	matched := false
	for _, cue := range leadingCues {
		if strings.Contains(norm, cue) {
			matched = true
			break
		}
	}
	if !matched {
		for _, p := range leadingPrefixes {
			if strings.HasPrefix(norm, p) {
				matched = true
				break
			}
		}
	}
	if !matched {
		for _, s := range leadingSuffixes {
			if strings.HasSuffix(norm, s) {
				matched = true
				break
			}
		}
	}
	if !matched {
		return
	}
	cl.Type = TypeLeading
	if cl.Confidence < 0.85 {
		cl.Confidence = 0.85
	}
	cl.AntiPatterns = append(cl.AntiPatterns, AntiPatternLeading)
}

var assumptiveCues = []string{
	"you must have felt", "you must have", "i'm sure you",
	"you obviously", "you clearly", "as you know", "everyone knows",
}

func applyAssumptive(norm string, cl *Classification) {
	matched := false
	for _, cue := range assumptiveCues {
		if strings.Contains(norm, cue) {
			matched = true
			break
		}
	}
	if !matched {
		return
	}
	cl.AntiPatterns = append(cl.AntiPatterns, AntiPatternAssumptive)
	if cl.Type != TypeLeading && cl.Confidence < 0.75 {
		cl.Confidence = 0.75
	}
}

var conjunctionCues = []string{
	" and do you ", " and did you ", " and how ", " and what ",
	" and why ", " and are you ", " and is ",
}

func applyDoubleBarreled(norm string, cl *Classification) {
	if !isDoubleBarreled(norm) {
		return
	}
	cl.Type = TypeDoubleBarreled
	if cl.Confidence < 0.80 {
		cl.Confidence = 0.80
	}
	cl.AntiPatterns = append(cl.AntiPatterns, AntiPatternDoubleBarreled)
}

// isDoubleBarreled detects two questions packed into one utterance:
// a conjunction joining question fragments, multiple "?" marks, or an
// "and"-split where both halves carry an interrogative word. Requiring
// an interrogative in both halves keeps compound statements like "How
// do you work and live in this city?" from being flagged.
func isDoubleBarreled(norm string) bool {
	for _, cue := range conjunctionCues {
		if strings.Contains(norm, cue) {
			return true
		}
	}
	if strings.Count(norm, "?") >= 2 {
		return true
	}
	halves := strings.SplitN(norm, " and ", 2)
	if len(halves) == 2 && containsInterrogative(halves[0]) && containsInterrogative(halves[1]) {
		return true
	}
	return false
}

func containsInterrogative(s string) bool {
	for _, word := range strings.Fields(s) {
		word = strings.Trim(word, "?,.!;:")
		for _, opener := range interrogativeOpeners {
			if word == opener {
				return true
			}
		}
	}
	return false
}
