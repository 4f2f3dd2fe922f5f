package domain

import "time"

// BoundaryType classifies what a boundary restricts
type BoundaryType string

const (
	BoundaryTopic     BoundaryType = "topic"     // forbidden conversation topic
	BoundaryBehavior  BoundaryType = "behavior"  // space request, triggers the hard stop
	BoundaryTiming    BoundaryType = "timing"    // time-of-day preference
	BoundaryFrequency BoundaryType = "frequency" // too many messages, triggers the hard stop
)

// canonical boundary values produced by the detector
const (
	ValueNoMorningMessages = "no_morning_messages"
	ValueNoLateMessages    = "no_late_messages"
	ValueReduceMessages    = "reduce_messages"
)

// Boundary represents a standing restriction a user has placed on the bot
type Boundary struct {
	ID                 int64
	UserID             int64
	Type               BoundaryType
	Value              string
	Active             bool
	UserInitiatedAfter *time.Time // set once, on the first user message after creation
	CreatedAt          time.Time
}

// IsSpace reports whether the boundary is a space request subject to the hard stop
func (b *Boundary) IsSpace() bool {
	return b.Type == BoundaryBehavior || b.Type == BoundaryFrequency
}

// BoundaryAction describes what happened to boundary state on an inbound message
type BoundaryAction string

const (
	BoundarySet       BoundaryAction = "set"
	BoundaryRetracted BoundaryAction = "retracted"
)

// BoundaryEvent is returned by the manager when an inbound message changed boundary state.
// Hint carries a system-prompt fragment for the generation step.
type BoundaryEvent struct {
	Action BoundaryAction
	Type   BoundaryType
	Value  string
	Hint   string
}
