package classifier

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pthm/ivcoach/internal/transcript"
)

// DefaultClosedRunThreshold is the run length at which consecutive
// closed questions are flagged as an anti-pattern.
const DefaultClosedRunThreshold = 3

// antiPatternWindow is how many recent classifications feed the
// current anti-pattern view.
const antiPatternWindow = 5

// Classifier classifies interviewer questions one utterance at a time
// and accumulates session state: the classification log, running stats,
// and a sliding anti-pattern window. One instance per interview session;
// it is not safe for concurrent use.
type Classifier struct {
	closedRunThreshold int

	log       []Classification
	stats     Stats
	current   []AntiPattern
	closedRun int
}

// New creates a session classifier with default settings
func New() *Classifier {
	return &Classifier{
		closedRunThreshold: DefaultClosedRunThreshold,
		stats:              computeStats(nil),
	}
}

// SetClosedRunThreshold overrides the closed-question-run length.
// Values below 1 are ignored.
func (c *Classifier) SetClosedRunThreshold(n int) {
	if n >= 1 {
		c.closedRunThreshold = n
	}
}

// Classify classifies one utterance. It returns nil for non-interviewer
// speakers (breaking any closed-question run), blank text (run preserved),
// and text that fails the is-a-question test (run broken). A nil result
// is an expected outcome, not an error.
func (c *Classifier) Classify(u transcript.Utterance) *Classification {
	if u.Speaker != transcript.SpeakerInterviewer {
		c.closedRun = 0
		return nil
	}

	text := strings.TrimSpace(u.Text)
	if text == "" {
		return nil
	}

	norm := strings.ToLower(text)
	if !isQuestion(norm) {
		c.closedRun = 0
		return nil
	}

	qtype, conf := classifyType(norm)
	cl := Classification{
		ID:          uuid.New().String(),
		UtteranceID: u.ID,
		Type:        qtype,
		Confidence:  conf,
		Text:        u.Text,
		Timestamp:   u.Timestamp,
	}

	// Overlays may force the type and raise confidence
	applyLeading(norm, &cl)
	applyAssumptive(norm, &cl)
	applyDoubleBarreled(norm, &cl)

	if cl.Type == TypeClosed {
		c.closedRun++
		if c.closedRun >= c.closedRunThreshold {
			// The counter keeps running; only a differently-typed
			// question or a non-question resets it.
			cl.AntiPatterns = append(cl.AntiPatterns, AntiPatternClosedRun)
		}
	} else {
		c.closedRun = 0
	}

	c.log = append(c.log, cl)
	c.stats = computeStats(c.log)
	c.current = recentAntiPatterns(c.log)

	return &cl
}

// Classifications returns the session log in arrival order
func (c *Classifier) Classifications() []Classification {
	out := make([]Classification, len(c.log))
	copy(out, c.log)
	return out
}

// Stats returns the aggregate session statistics
func (c *Classifier) Stats() Stats {
	return c.stats
}

// CurrentAntiPatterns returns the de-duplicated anti-patterns from the
// last few classifications, ordered by descending severity.
func (c *Classifier) CurrentAntiPatterns() []AntiPattern {
	out := make([]AntiPattern, len(c.current))
	copy(out, c.current)
	return out
}

// Reset clears all session state so the instance can serve a new session
func (c *Classifier) Reset() {
	c.log = nil
	c.stats = computeStats(nil)
	c.current = nil
	c.closedRun = 0
}

func computeStats(log []Classification) Stats {
	s := Stats{
		Total:       len(log),
		ByType:      make(map[QuestionType]int),
		Percentages: make(map[QuestionType]float64),
	}
	if len(log) == 0 {
		return s
	}

	for i := range log {
		s.ByType[log[i].Type]++
	}

	total := float64(s.Total)
	for t, n := range s.ByType {
		s.Percentages[t] = float64(n) / total * 100
	}

	desirable := 0
	for t, n := range s.ByType {
		if t.Desirable() {
			desirable += n
		}
	}
	penalty := s.ByType[TypeLeading] + s.ByType[TypeDoubleBarreled]

	score := float64(desirable)/total*100 - float64(penalty)/total*30
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	s.QualityScore = score

	return s
}

func recentAntiPatterns(log []Classification) []AntiPattern {
	start := len(log) - antiPatternWindow
	if start < 0 {
		start = 0
	}

	seen := make(map[AntiPattern]bool)
	var out []AntiPattern
	for i := start; i < len(log); i++ {
		for _, ap := range log[i].AntiPatterns {
			if !seen[ap] {
				seen[ap] = true
				out = append(out, ap)
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Severity() > out[j].Severity()
	})
	return out
}
