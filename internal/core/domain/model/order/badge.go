package order

import "strings"

// Tone classifies a status for display.
type Tone string

const (
	ToneSuccess    Tone = "final-success"
	ToneFailure    Tone = "final-failure"
	ToneInProgress Tone = "in-progress"
)

// Label is the badge text: "rider_assigned" becomes "RIDER ASSIGNED".
func (s Status) Label() string {
	return strings.ToUpper(strings.ReplaceAll(s.String(), "_", " "))
}

func (s Status) Tone() Tone {
	switch s {
	case Delivered:
		return ToneSuccess
	case Cancelled, Rejected:
		return ToneFailure
	default:
		return ToneInProgress
	}
}
