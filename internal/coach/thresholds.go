package coach

// Defaults for coaching thresholds. All durations are in seconds.
const (
	DefaultMinimumConfidence     = 0.85
	DefaultCooldownDuration      = 120.0
	DefaultSpeechCooldown        = 5.0
	DefaultMaxPromptsPerSession  = 3
	DefaultAutoDismissDuration   = 8.0
	DefaultFadeInDuration        = 0.3
	DefaultFadeOutDuration       = 0.25
	DefaultSensitivityMultiplier = 1.0

	// referenceSilenceTolerance is the silence tolerance, in seconds,
	// at which cultural adjustment leaves the speech cooldown unchanged.
	referenceSilenceTolerance = 5.0
)

// Thresholds holds the numeric coaching parameters. Construct values
// through New or a preset; every field is clamped into range at
// construction, so a Thresholds value is never observably invalid.
type Thresholds struct {
	MinimumConfidence     float64 `json:"minimumConfidence" yaml:"minimum_confidence"`
	CooldownDuration      float64 `json:"cooldownDuration" yaml:"cooldown_duration"`
	SpeechCooldown        float64 `json:"speechCooldown" yaml:"speech_cooldown"`
	MaxPromptsPerSession  int     `json:"maxPromptsPerSession" yaml:"max_prompts_per_session"`
	AutoDismissDuration   float64 `json:"autoDismissDuration" yaml:"auto_dismiss_duration"`
	FadeInDuration        float64 `json:"fadeInDuration" yaml:"fade_in_duration"`
	FadeOutDuration       float64 `json:"fadeOutDuration" yaml:"fade_out_duration"`
	SensitivityMultiplier float64 `json:"sensitivityMultiplier" yaml:"sensitivity_multiplier"`
}

// Overrides carries partial threshold settings; nil fields keep defaults.
// Out-of-range values are clamped, never rejected, so persisted or
// externally supplied configuration cannot crash the gate logic.
type Overrides struct {
	MinimumConfidence     *float64 `yaml:"minimum_confidence"`
	CooldownDuration      *float64 `yaml:"cooldown_duration"`
	SpeechCooldown        *float64 `yaml:"speech_cooldown"`
	MaxPromptsPerSession  *int     `yaml:"max_prompts_per_session"`
	AutoDismissDuration   *float64 `yaml:"auto_dismiss_duration"`
	FadeInDuration        *float64 `yaml:"fade_in_duration"`
	FadeOutDuration       *float64 `yaml:"fade_out_duration"`
	SensitivityMultiplier *float64 `yaml:"sensitivity_multiplier"`
}

// New builds a Thresholds value from partial overrides, clamping every
// field into its valid range.
func New(o Overrides) Thresholds {
	t := Thresholds{
		MinimumConfidence:     DefaultMinimumConfidence,
		CooldownDuration:      DefaultCooldownDuration,
		SpeechCooldown:        DefaultSpeechCooldown,
		MaxPromptsPerSession:  DefaultMaxPromptsPerSession,
		AutoDismissDuration:   DefaultAutoDismissDuration,
		FadeInDuration:        DefaultFadeInDuration,
		FadeOutDuration:       DefaultFadeOutDuration,
		SensitivityMultiplier: DefaultSensitivityMultiplier,
	}
	return t.With(o)
}

// With returns a copy with the non-nil override fields applied and
// every field re-clamped; the receiver is unchanged.
func (t Thresholds) With(o Overrides) Thresholds {
	if o.MinimumConfidence != nil {
		t.MinimumConfidence = *o.MinimumConfidence
	}
	if o.CooldownDuration != nil {
		t.CooldownDuration = *o.CooldownDuration
	}
	if o.SpeechCooldown != nil {
		t.SpeechCooldown = *o.SpeechCooldown
	}
	if o.MaxPromptsPerSession != nil {
		t.MaxPromptsPerSession = *o.MaxPromptsPerSession
	}
	if o.AutoDismissDuration != nil {
		t.AutoDismissDuration = *o.AutoDismissDuration
	}
	if o.FadeInDuration != nil {
		t.FadeInDuration = *o.FadeInDuration
	}
	if o.FadeOutDuration != nil {
		t.FadeOutDuration = *o.FadeOutDuration
	}
	if o.SensitivityMultiplier != nil {
		t.SensitivityMultiplier = *o.SensitivityMultiplier
	}

	t.MinimumConfidence = clamp(t.MinimumConfidence, 0, 1)
	t.CooldownDuration = clampMin(t.CooldownDuration, 0)
	t.SpeechCooldown = clampMin(t.SpeechCooldown, 0)
	if t.MaxPromptsPerSession < 0 {
		t.MaxPromptsPerSession = 0
	}
	t.AutoDismissDuration = clampMin(t.AutoDismissDuration, 1)
	t.FadeInDuration = clampMin(t.FadeInDuration, 0.1)
	t.FadeOutDuration = clampMin(t.FadeOutDuration, 0.1)
	t.SensitivityMultiplier = clamp(t.SensitivityMultiplier, 0.1, 3.0)

	return t
}

// Preset names a fixed thresholds configuration
type Preset string

const (
	PresetOff      Preset = "off"
	PresetMinimal  Preset = "minimal"
	PresetBalanced Preset = "balanced"
	PresetActive   Preset = "active"
)

// Presets returns the preset names in ascending order of eagerness
func Presets() []Preset {
	return []Preset{PresetOff, PresetMinimal, PresetBalanced, PresetActive}
}

// ForPreset returns the thresholds for a named preset. Unknown names
// fall back to the balanced preset.
func ForPreset(p Preset) Thresholds {
	switch p {
	case PresetOff:
		return New(Overrides{MaxPromptsPerSession: intp(0)})
	case PresetMinimal:
		return New(Overrides{
			MinimumConfidence:    floatp(0.95),
			CooldownDuration:     floatp(240),
			MaxPromptsPerSession: intp(1),
		})
	case PresetActive:
		return New(Overrides{
			MinimumConfidence:    floatp(0.75),
			CooldownDuration:     floatp(60),
			SpeechCooldown:       floatp(2.5),
			MaxPromptsPerSession: intp(5),
		})
	default:
		return New(Overrides{})
	}
}

// EffectiveConfidenceThreshold derives the confidence bar after
// sensitivity scaling. Higher sensitivity lowers the bar, floored at 0.5.
func (t Thresholds) EffectiveConfidenceThreshold() float64 {
	return clamp(t.MinimumConfidence/t.SensitivityMultiplier, 0.5, 1.0)
}

// EffectiveCooldown derives the prompt cooldown after sensitivity
// scaling. Higher sensitivity shortens the wait.
func (t Thresholds) EffectiveCooldown() float64 {
	return t.CooldownDuration / t.SensitivityMultiplier
}

// CulturalContext carries externally supplied conversational norms
type CulturalContext struct {
	SilenceToleranceSeconds  float64 `json:"silenceToleranceSeconds" yaml:"silence_tolerance_seconds"`
	QuestionPacingMultiplier float64 `json:"questionPacingMultiplier" yaml:"question_pacing_multiplier"`
}

// AdjustForCulture returns a new thresholds value rescaled for the
// given cultural context. The receiver is never mutated.
func (t Thresholds) AdjustForCulture(cc CulturalContext) Thresholds {
	adjusted := t
	adjusted.SpeechCooldown = t.SpeechCooldown * (cc.SilenceToleranceSeconds / referenceSilenceTolerance)
	adjusted.CooldownDuration = t.CooldownDuration * cc.QuestionPacingMultiplier
	return adjusted
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampMin(v, lo float64) float64 {
	if v < lo {
		return lo
	}
	return v
}

func floatp(v float64) *float64 { return &v }
func intp(v int) *int           { return &v }
