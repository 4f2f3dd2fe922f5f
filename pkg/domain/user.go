package domain

import "time"

// AttachmentStyle scales proactive cooldown, daily cap and skip probability
type AttachmentStyle string

const (
	AttachmentSecure   AttachmentStyle = "secure"
	AttachmentAnxious  AttachmentStyle = "anxious"
	AttachmentAvoidant AttachmentStyle = "avoidant"
)

// Tier caps daily proactive sends
type Tier string

const (
	TierFree    Tier = "free"
	TierPlus    Tier = "plus"
	TierPremium Tier = "premium"
)

// User holds identity and the per-user policy state consumed by the gates
type User struct {
	ID                  int64
	TelegramID          int64 // 0 when the user never connected a telegram chat
	Name                string
	Archetype           string
	BotName             string
	AttachmentStyle     AttachmentStyle
	Tier                Tier
	Timezone            string // IANA name, e.g. "Europe/Berlin"
	ProactiveEnabled    bool
	ProactiveCountToday int
	MessagesToday       int
	LastDailyReset      string // local date of the last counter reset, YYYY-MM-DD
	LastActiveAt        *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Location resolves the user timezone, falling back to UTC on bad data
func (u *User) Location() *time.Location {
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil || u.Timezone == "" {
		return time.UTC
	}
	return loc
}

// LocalTime converts the given instant to the user's local time
func (u *User) LocalTime(now time.Time) time.Time {
	return now.In(u.Location())
}
