package transcript

import "strings"

// Speaker identifies who produced an utterance
type Speaker string

const (
	SpeakerInterviewer Speaker = "interviewer"
	SpeakerParticipant Speaker = "participant"
	SpeakerUnknown     Speaker = "unknown"
)

// Utterance is one transcribed turn of speech. Immutable once observed.
type Utterance struct {
	ID        string  `json:"id"`
	Speaker   Speaker `json:"speaker"`
	Text      string  `json:"text"`
	Timestamp float64 `json:"timestamp"` // seconds from session start
}

// Transcript holds an ordered interview transcript plus optional
// session metadata carried by the source file.
type Transcript struct {
	Title      string            `json:"title,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	Utterances []Utterance       `json:"utterances"`
}

// NormalizeSpeaker maps common transcript speaker labels onto roles.
// Unrecognized labels map to SpeakerUnknown.
func NormalizeSpeaker(label string) Speaker {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "interviewer", "moderator", "researcher", "facilitator", "i":
		return SpeakerInterviewer
	case "participant", "interviewee", "user", "respondent", "p":
		return SpeakerParticipant
	default:
		return SpeakerUnknown
	}
}
