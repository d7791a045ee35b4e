package coach

// DecisionReason explains why the gate did or did not allow a prompt
type DecisionReason string

const (
	ReasonOK              DecisionReason = "ok"
	ReasonLowConfidence   DecisionReason = "confidence-below-threshold"
	ReasonBudgetExhausted DecisionReason = "budget-exhausted"
	ReasonCooldownActive  DecisionReason = "cooldown-active"
	ReasonSpeechTooRecent DecisionReason = "speech-too-recent"
)

// Decision is the gate's answer for one candidate prompt
type Decision struct {
	Show   bool           `json:"show"`
	Reason DecisionReason `json:"reason"`
}

// Gate converts raw coaching signals into do/don't-show-a-prompt-now
// decisions for one session. It holds only counters and timestamps; all
// timing is arithmetic over caller-supplied session-relative seconds,
// never waits. One instance per session; not safe for concurrent use.
type Gate struct {
	thresholds Thresholds

	shown         int
	lastPromptAt  float64
	hasPrompted   bool
	lastSpeechAt  float64
	heardAnything bool
}

// NewGate creates a prompt gate for one session
func NewGate(t Thresholds) *Gate {
	return &Gate{thresholds: t}
}

// Thresholds returns the thresholds the gate was built with
func (g *Gate) Thresholds() Thresholds {
	return g.thresholds
}

// RecordSpeech notes interviewer speech at the given session time;
// prompts are suppressed while speech is too recent.
func (g *Gate) RecordSpeech(at float64) {
	g.lastSpeechAt = at
	g.heardAnything = true
}

// Consider decides whether a prompt with the given confidence may be
// shown at session time `at`. A positive decision counts against the
// session budget and starts the cooldown.
func (g *Gate) Consider(confidence, at float64) Decision {
	if confidence < g.thresholds.EffectiveConfidenceThreshold() {
		return Decision{Reason: ReasonLowConfidence}
	}
	if g.shown >= g.thresholds.MaxPromptsPerSession {
		return Decision{Reason: ReasonBudgetExhausted}
	}
	if g.hasPrompted && at-g.lastPromptAt < g.thresholds.EffectiveCooldown() {
		return Decision{Reason: ReasonCooldownActive}
	}
	if g.heardAnything && at-g.lastSpeechAt < g.thresholds.SpeechCooldown {
		return Decision{Reason: ReasonSpeechTooRecent}
	}

	g.shown++
	g.lastPromptAt = at
	g.hasPrompted = true
	return Decision{Show: true, Reason: ReasonOK}
}

// PromptsShown reports how many prompts the gate has allowed
func (g *Gate) PromptsShown() int {
	return g.shown
}

// Reset clears session state for reuse in a new session
func (g *Gate) Reset() {
	g.shown = 0
	g.lastPromptAt = 0
	g.hasPrompted = false
	g.lastSpeechAt = 0
	g.heardAnything = false
}
