package coach

import (
	"math"
	"testing"
)

func TestNew_Defaults(t *testing.T) {
	got := New(Overrides{})

	if got.MinimumConfidence != 0.85 {
		t.Errorf("MinimumConfidence = %v, want 0.85", got.MinimumConfidence)
	}
	if got.CooldownDuration != 120 {
		t.Errorf("CooldownDuration = %v, want 120", got.CooldownDuration)
	}
	if got.SpeechCooldown != 5 {
		t.Errorf("SpeechCooldown = %v, want 5", got.SpeechCooldown)
	}
	if got.MaxPromptsPerSession != 3 {
		t.Errorf("MaxPromptsPerSession = %v, want 3", got.MaxPromptsPerSession)
	}
	if got.AutoDismissDuration != 8 {
		t.Errorf("AutoDismissDuration = %v, want 8", got.AutoDismissDuration)
	}
	if got.SensitivityMultiplier != 1.0 {
		t.Errorf("SensitivityMultiplier = %v, want 1.0", got.SensitivityMultiplier)
	}
}

func TestNew_ClampsOutOfRangeValues(t *testing.T) {
	tests := []struct {
		name string
		o    Overrides
		get  func(Thresholds) float64
		want float64
	}{
		{"confidence above 1", Overrides{MinimumConfidence: floatp(5.0)}, func(t Thresholds) float64 { return t.MinimumConfidence }, 1.0},
		{"confidence below 0", Overrides{MinimumConfidence: floatp(-2)}, func(t Thresholds) float64 { return t.MinimumConfidence }, 0},
		{"negative cooldown", Overrides{CooldownDuration: floatp(-10)}, func(t Thresholds) float64 { return t.CooldownDuration }, 0},
		{"negative speech cooldown", Overrides{SpeechCooldown: floatp(-1)}, func(t Thresholds) float64 { return t.SpeechCooldown }, 0},
		{"auto dismiss below floor", Overrides{AutoDismissDuration: floatp(0.2)}, func(t Thresholds) float64 { return t.AutoDismissDuration }, 1},
		{"fade below floor", Overrides{FadeInDuration: floatp(0)}, func(t Thresholds) float64 { return t.FadeInDuration }, 0.1},
		{"sensitivity above ceiling", Overrides{SensitivityMultiplier: floatp(10)}, func(t Thresholds) float64 { return t.SensitivityMultiplier }, 3.0},
		{"sensitivity below floor", Overrides{SensitivityMultiplier: floatp(0)}, func(t Thresholds) float64 { return t.SensitivityMultiplier }, 0.1},
	}

	for _, tt := range tests {
		if got := tt.get(New(tt.o)); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}

	if got := New(Overrides{MaxPromptsPerSession: intp(-5)}).MaxPromptsPerSession; got != 0 {
		t.Errorf("negative max prompts: got %d, want 0", got)
	}
}

func TestEffectiveConfidenceThreshold(t *testing.T) {
	base := New(Overrides{})
	if got := base.EffectiveConfidenceThreshold(); got != 0.85 {
		t.Errorf("EffectiveConfidenceThreshold() = %v, want 0.85", got)
	}

	// Monotonically non-increasing in sensitivity, never below 0.5
	prev := math.Inf(1)
	for _, sens := range []float64{0.1, 0.5, 1.0, 1.5, 2.0, 3.0} {
		th := New(Overrides{SensitivityMultiplier: floatp(sens)})
		got := th.EffectiveConfidenceThreshold()
		if got > prev {
			t.Errorf("threshold increased from %v to %v at sensitivity %v", prev, got, sens)
		}
		if got < 0.5 {
			t.Errorf("threshold %v below floor 0.5 at sensitivity %v", got, sens)
		}
		if got > 1.0 {
			t.Errorf("threshold %v above ceiling 1.0 at sensitivity %v", got, sens)
		}
		prev = got
	}
}

func TestEffectiveCooldown(t *testing.T) {
	th := New(Overrides{SensitivityMultiplier: floatp(2.0)})
	if got := th.EffectiveCooldown(); got != 60 {
		t.Errorf("EffectiveCooldown() = %v, want 60", got)
	}
}

func TestAdjustForCulture(t *testing.T) {
	base := New(Overrides{})
	cc := CulturalContext{
		SilenceToleranceSeconds:  12,
		QuestionPacingMultiplier: 1.5,
	}

	adjusted := base.AdjustForCulture(cc)

	if got := adjusted.SpeechCooldown; got != 12.0 {
		t.Errorf("adjusted SpeechCooldown = %v, want 12.0", got)
	}
	if got := adjusted.CooldownDuration; got != 180.0 {
		t.Errorf("adjusted CooldownDuration = %v, want 180.0", got)
	}

	// Everything else passes through
	if adjusted.MinimumConfidence != base.MinimumConfidence {
		t.Errorf("MinimumConfidence changed: %v", adjusted.MinimumConfidence)
	}
	if adjusted.MaxPromptsPerSession != base.MaxPromptsPerSession {
		t.Errorf("MaxPromptsPerSession changed: %v", adjusted.MaxPromptsPerSession)
	}

	// Base is never mutated
	if base.SpeechCooldown != 5 || base.CooldownDuration != 120 {
		t.Errorf("base mutated: %+v", base)
	}
}

func TestForPreset(t *testing.T) {
	if got := ForPreset(PresetOff).MaxPromptsPerSession; got != 0 {
		t.Errorf("off preset MaxPromptsPerSession = %d, want 0", got)
	}

	minimal := ForPreset(PresetMinimal)
	balanced := ForPreset(PresetBalanced)
	active := ForPreset(PresetActive)

	if !(minimal.MinimumConfidence > balanced.MinimumConfidence &&
		balanced.MinimumConfidence > active.MinimumConfidence) {
		t.Errorf("presets not ordered by strictness: %v / %v / %v",
			minimal.MinimumConfidence, balanced.MinimumConfidence, active.MinimumConfidence)
	}
	if !(minimal.MaxPromptsPerSession < balanced.MaxPromptsPerSession &&
		balanced.MaxPromptsPerSession < active.MaxPromptsPerSession) {
		t.Errorf("prompt budgets not ordered: %d / %d / %d",
			minimal.MaxPromptsPerSession, balanced.MaxPromptsPerSession, active.MaxPromptsPerSession)
	}

	if got := ForPreset("bogus"); got != balanced {
		t.Errorf("unknown preset = %+v, want balanced", got)
	}
}
