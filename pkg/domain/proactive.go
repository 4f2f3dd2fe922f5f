package domain

import "time"

// ProactiveAttempt records one successful unprompted send, append-only
type ProactiveAttempt struct {
	ID       int64
	UserID   int64
	Content  string
	Category string // time bucket + archetype, e.g. "morning_tsundere"
	SentAt   time.Time
}

// Gate identifies one condition in the proactive send pipeline, in evaluation order
type Gate string

const (
	GateKillSwitch Gate = "kill_switch"
	GateCooldown   Gate = "cooldown"
	GateDailyCap   Gate = "daily_cap"
	GateQuestions  Gate = "pending_questions"
	GateSpace      Gate = "space_boundary"
	GateQuietHours Gate = "quiet_hours"
	GateTiming     Gate = "timing"
)

// stable machine-readable block reasons
const (
	BlockDisabled          = "disabled"
	BlockCooldownNotMet    = "cooldown_not_met"
	BlockDailyLimitReached = "daily_limit_reached"
	BlockPendingQuestions  = "pending_questions"
	BlockSpaceHardStop     = "space_boundary_hard_stop"
	BlockLateNight         = "late_night"
	BlockTimingBoundary    = "timing_boundary"
	BlockAttachmentSkipped = "attachment_skipped"
	BlockLLMError          = "llm_error"
	BlockLLMNoSend         = "llm_no_send"
	BlockBoundaryViolation = "boundary_violation"
	BlockEmptyResponse     = "empty_response"
)

// GateDecision is the outcome of evaluating the proactive gates for one user
type GateDecision struct {
	Allowed bool
	Gate    Gate   // first failing gate, empty when allowed
	Reason  string // stable block reason, empty when allowed
	Detail  string // human-readable context, e.g. "1.5h < 2h"
}

// Allow returns a passing decision
func Allow() GateDecision { return GateDecision{Allowed: true} }

// Block returns a failing decision for the given gate
func Block(gate Gate, reason, detail string) GateDecision {
	return GateDecision{Gate: gate, Reason: reason, Detail: detail}
}

// ProactiveResult is the outcome of a full proactive generation attempt
type ProactiveResult struct {
	Decision GateDecision
	Text     string // non-empty only when Decision.Allowed
	Category string
}

// TimeBucket is the coarse local-time category used for proactive message selection
type TimeBucket string

const (
	BucketMorning TimeBucket = "morning"
	BucketRandom  TimeBucket = "random"
	BucketEvening TimeBucket = "evening"
)

// BucketForHour maps a local hour to the proactive message bucket
func BucketForHour(hour int) TimeBucket {
	switch {
	case hour >= 6 && hour < 12:
		return BucketMorning
	case hour >= 12 && hour < 18:
		return BucketRandom
	default:
		return BucketEvening
	}
}
