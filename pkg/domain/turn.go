package domain

import "time"

// TurnRole identifies the author of a conversation turn
type TurnRole string

const (
	RoleUser TurnRole = "user"
	RoleBot  TurnRole = "bot"
)

// TurnKind distinguishes replies from bot-initiated messages
type TurnKind string

const (
	KindReactive  TurnKind = "reactive"
	KindProactive TurnKind = "proactive"
)

// Mood is a coarse emotional signal extracted from user text
type Mood string

const (
	MoodHappy    Mood = "happy"
	MoodExcited  Mood = "excited"
	MoodSad      Mood = "sad"
	MoodStressed Mood = "stressed"
	MoodAnxious  Mood = "anxious"
	MoodTired    Mood = "tired"
	MoodAnnoyed  Mood = "annoyed"
	MoodAngry    Mood = "angry"
	MoodBored    Mood = "bored"
	MoodLonely   Mood = "lonely"
	MoodNeutral  Mood = "neutral"
)

// Negative reports whether the mood counts toward a declining trend
func (m Mood) Negative() bool {
	switch m {
	case MoodSad, MoodStressed, MoodAnxious, MoodAngry, MoodLonely:
		return true
	}
	return false
}

// Turn represents one message in a conversation, user- or bot-authored
type Turn struct {
	ID               int64
	UserID           int64
	Role             TurnRole
	Content          string
	Kind             TurnKind
	DetectedMood     Mood   // user turns only, empty when not detected
	IsQuestion       bool   // bot turns only
	QuestionTopic    string // short topic extracted from a bot question
	QuestionAnswered bool
	CreatedAt        time.Time
}
