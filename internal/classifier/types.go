package classifier

// QuestionType categorizes an interviewer question
type QuestionType int

const (
	TypeNotAQuestion QuestionType = iota
	TypeOpenEnded
	TypeClosed
	TypeLeading
	TypeDoubleBarreled
	TypeProbing
	TypeClarifying
	TypeHypothetical
)

func (t QuestionType) String() string {
	switch t {
	case TypeOpenEnded:
		return "open-ended"
	case TypeClosed:
		return "closed"
	case TypeLeading:
		return "leading"
	case TypeDoubleBarreled:
		return "double-barreled"
	case TypeProbing:
		return "probing"
	case TypeClarifying:
		return "clarifying"
	case TypeHypothetical:
		return "hypothetical"
	default:
		return "not-a-question"
	}
}

// Label returns the display name for the type
func (t QuestionType) Label() string {
	switch t {
	case TypeOpenEnded:
		return "Open-ended"
	case TypeClosed:
		return "Closed"
	case TypeLeading:
		return "Leading"
	case TypeDoubleBarreled:
		return "Double-barreled"
	case TypeProbing:
		return "Probing"
	case TypeClarifying:
		return "Clarifying"
	case TypeHypothetical:
		return "Hypothetical"
	default:
		return "Not a question"
	}
}

// Desirable reports whether the type is good interviewing practice.
// Presentation metadata only; the quality score is its one consumer.
func (t QuestionType) Desirable() bool {
	switch t {
	case TypeOpenEnded, TypeProbing, TypeClarifying, TypeHypothetical:
		return true
	default:
		return false
	}
}

// AntiPattern is a recognized poor-practice pattern in interviewer phrasing
type AntiPattern int

const (
	AntiPatternLeading AntiPattern = iota
	AntiPatternDoubleBarreled
	AntiPatternClosedRun
	AntiPatternAssumptive
)

func (a AntiPattern) String() string {
	switch a {
	case AntiPatternLeading:
		return "leading-question"
	case AntiPatternDoubleBarreled:
		return "double-barreled-question"
	case AntiPatternClosedRun:
		return "closed-question-run"
	case AntiPatternAssumptive:
		return "assumptive-language"
	default:
		return "unknown"
	}
}

// Severity returns the fixed severity used to order anti-patterns
func (a AntiPattern) Severity() int {
	switch a {
	case AntiPatternLeading:
		return 4
	case AntiPatternDoubleBarreled:
		return 3
	case AntiPatternAssumptive:
		return 2
	case AntiPatternClosedRun:
		return 1
	default:
		return 0
	}
}

// Classification is the immutable result of classifying one interviewer
// utterance. Appended to the session log in arrival order, never mutated.
type Classification struct {
	ID           string        `json:"id"`
	UtteranceID  string        `json:"utteranceId"`
	Type         QuestionType  `json:"type"`
	Confidence   float64       `json:"confidence"`
	Text         string        `json:"text"`
	Timestamp    float64       `json:"timestamp"`
	AntiPatterns []AntiPattern `json:"antiPatterns"`
}

// HasAntiPattern reports whether the classification recorded the pattern
func (c *Classification) HasAntiPattern(a AntiPattern) bool {
	for _, p := range c.AntiPatterns {
		if p == a {
			return true
		}
	}
	return false
}

// Stats aggregates a session's classifications
type Stats struct {
	Total        int                      `json:"total"`
	ByType       map[QuestionType]int     `json:"byType"`
	Percentages  map[QuestionType]float64 `json:"percentages"`
	QualityScore float64                  `json:"qualityScore"` // 0-100
}
