package engine

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/companion/pkg/domain"
	"github.com/umputun/companion/pkg/persona"
)

// AttachmentPolicy tunes proactive behavior for one attachment style
type AttachmentPolicy struct {
	DailyMax        int
	Cooldown        time.Duration
	SkipProbability float64
}

// GateConfig is the injected policy configuration for the evaluator.
// Quiet hours are a band crossing midnight, e.g. start 22 end 6.
type GateConfig struct {
	Enabled            bool
	DisabledArchetypes []string // archetypes excluded from proactive sends
	QuietStart         int
	QuietEnd           int
	Attachment         map[domain.AttachmentStyle]AttachmentPolicy
	TierMax            map[domain.Tier]int
}

// DefaultGateConfig returns the production policy values
func DefaultGateConfig() GateConfig {
	return GateConfig{
		Enabled:    true,
		QuietStart: 22,
		QuietEnd:   6,
		Attachment: map[domain.AttachmentStyle]AttachmentPolicy{
			domain.AttachmentSecure:   {DailyMax: 3, Cooldown: 2 * time.Hour},
			domain.AttachmentAnxious:  {DailyMax: 3, Cooldown: 2 * time.Hour},
			domain.AttachmentAvoidant: {DailyMax: 1, Cooldown: 4 * time.Hour, SkipProbability: 0.5},
		},
		TierMax: map[domain.Tier]int{
			domain.TierFree:    1,
			domain.TierPlus:    3,
			domain.TierPremium: 5,
		},
	}
}

// Evaluator decides whether an unprompted message may be sent to a user
// right now, and produces the message when it may. Seven gates run in fixed
// order, short-circuiting on the first failure; the attachment skip is the
// only probabilistic gate and runs last so randomness never masks a
// deterministic block.
type Evaluator struct {
	cfg       GateConfig
	boundary  *Manager
	questions *Tracker
	attempts  AttemptStore
	users     UserStore
	builder   ContextBuilder
	generator Generator
	starter   StarterSource
	nowFn     func() time.Time
	randFn    func() float64
}

// EvaluatorParams holds dependencies for the evaluator
type EvaluatorParams struct {
	Config    GateConfig
	Boundary  *Manager
	Questions *Tracker
	Attempts  AttemptStore
	Users     UserStore
	Builder   ContextBuilder
	Generator Generator
	Starter   StarterSource    // optional
	NowFn     func() time.Time // defaults to time.Now
	RandFn    func() float64   // defaults to rand.Float64
}

// NewEvaluator creates the proactive gate evaluator
func NewEvaluator(params EvaluatorParams) *Evaluator {
	if params.NowFn == nil {
		params.NowFn = time.Now
	}
	if params.RandFn == nil {
		params.RandFn = rand.Float64
	}
	return &Evaluator{
		cfg:       params.Config,
		boundary:  params.Boundary,
		questions: params.Questions,
		attempts:  params.Attempts,
		users:     params.Users,
		builder:   params.Builder,
		generator: params.Generator,
		starter:   params.Starter,
		nowFn:     params.NowFn,
		randFn:    params.RandFn,
	}
}

// CanSend evaluates the seven gates for the user. A store failure is
// returned as an error, not a block, so callers can tell policy from
// infrastructure.
func (e *Evaluator) CanSend(ctx context.Context, user *domain.User) (domain.GateDecision, error) {
	// gate 1: global kill switch, archetype exclusions and per-user opt-out
	if !e.cfg.Enabled {
		return domain.Block(domain.GateKillSwitch, domain.BlockDisabled, "proactive_disabled"), nil
	}
	if slices.Contains(e.cfg.DisabledArchetypes, user.Archetype) {
		return domain.Block(domain.GateKillSwitch, domain.BlockDisabled, "archetype_"+user.Archetype), nil
	}
	if !user.ProactiveEnabled {
		return domain.Block(domain.GateKillSwitch, domain.BlockDisabled, "user_opted_out"), nil
	}

	policy := e.attachmentPolicy(user.AttachmentStyle)

	// gate 2: attachment cooldown since the last proactive send
	last, err := e.attempts.Latest(ctx, user.ID)
	if err != nil {
		return domain.GateDecision{}, fmt.Errorf("load last proactive attempt for user %d: %w", user.ID, err)
	}
	if last != nil {
		since := e.nowFn().Sub(last.SentAt)
		if since < policy.Cooldown {
			detail := fmt.Sprintf("%.1fh < %.0fh", since.Hours(), policy.Cooldown.Hours())
			return domain.Block(domain.GateCooldown, domain.BlockCooldownNotMet, detail), nil
		}
	}

	// gate 3: daily cap, the stricter of tier and attachment limits
	tierMax, ok := e.cfg.TierMax[user.Tier]
	if !ok {
		tierMax = 1
	}
	dailyMax := policy.DailyMax
	if tierMax < dailyMax {
		dailyMax = tierMax
	}
	if user.ProactiveCountToday >= dailyMax {
		detail := fmt.Sprintf("%d/%d", user.ProactiveCountToday, dailyMax)
		return domain.Block(domain.GateDailyCap, domain.BlockDailyLimitReached, detail), nil
	}

	// gate 4: an unanswered bot question means we wait, not nag
	pending, err := e.questions.HasPending(ctx, user.ID)
	if err != nil {
		return domain.GateDecision{}, err
	}
	if pending {
		return domain.Block(domain.GateQuestions, domain.BlockPendingQuestions, "unanswered_questions"), nil
	}

	// gate 5: space boundary hard stop
	allowed, reason, err := e.boundary.CheckSpaceAllowsProactive(ctx, user.ID)
	if err != nil {
		return domain.GateDecision{}, err
	}
	if !allowed {
		return domain.Block(domain.GateSpace, domain.BlockSpaceHardStop, reason), nil
	}

	// gate 6: no messages during the user's local quiet hours
	hour := user.LocalTime(e.nowFn()).Hour()
	if hour >= e.cfg.QuietStart || hour < e.cfg.QuietEnd {
		return domain.Block(domain.GateQuietHours, domain.BlockLateNight, fmt.Sprintf("hour=%d", hour)), nil
	}

	// gate 7: timing boundaries, then the attachment skip roll
	timing, err := e.boundary.TimingBoundaries(ctx, user.ID)
	if err != nil {
		return domain.GateDecision{}, err
	}
	if slices.Contains(timing, domain.ValueNoMorningMessages) && hour >= 6 && hour < 12 {
		return domain.Block(domain.GateTiming, domain.BlockTimingBoundary, domain.ValueNoMorningMessages), nil
	}
	if slices.Contains(timing, domain.ValueNoLateMessages) && hour >= 20 {
		return domain.Block(domain.GateTiming, domain.BlockTimingBoundary, domain.ValueNoLateMessages), nil
	}
	if policy.SkipProbability > 0 && e.randFn() < policy.SkipProbability {
		return domain.Block(domain.GateTiming, domain.BlockAttachmentSkipped, "skipped_"+string(user.AttachmentStyle)), nil
	}

	return domain.Allow(), nil
}

// Generate evaluates the gates and, when they pass, produces the proactive
// message: a persona template for the current time bucket when one exists,
// otherwise a generation call. The produced text is re-validated before it
// counts as sendable.
func (e *Evaluator) Generate(ctx context.Context, user *domain.User) (*domain.ProactiveResult, error) {
	decision, err := e.CanSend(ctx, user)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		lgr.Printf("[DEBUG] proactive blocked for user %d: %s (%s)", user.ID, decision.Reason, decision.Detail)
		return &domain.ProactiveResult{Decision: decision}, nil
	}

	hour := user.LocalTime(e.nowFn()).Hour()
	bucket := domain.BucketForHour(hour)
	category := fmt.Sprintf("%s_%s", bucket, user.Archetype)

	text, fromTemplate := persona.TemplateFor(user.Archetype, bucket, e.randFn)
	if !fromTemplate {
		pc, err := e.builder.Build(ctx, user, domain.KindProactive, "")
		if err != nil {
			return nil, err
		}
		if e.starter != nil {
			if topic, ok := e.starter.Topic(ctx); ok {
				pc.StarterTopic = topic
			}
		}
		text, err = e.generator.Generate(ctx, pc)
		if err != nil {
			lgr.Printf("[WARN] proactive generation failed for user %d: %v", user.ID, err)
			return blockResult(category, domain.BlockLLMError, err.Error()), nil
		}
	}

	if isNoSend(text) {
		return blockResult(category, domain.BlockLLMNoSend, "llm_decided_not_to_send"), nil
	}

	violates, matched, err := e.boundary.CheckMessageViolates(ctx, user.ID, text)
	if err != nil {
		return nil, err
	}
	if violates {
		return blockResult(category, domain.BlockBoundaryViolation, "violates: "+matched), nil
	}

	if len(strings.TrimSpace(text)) < 2 {
		return blockResult(category, domain.BlockEmptyResponse, "message_too_short"), nil
	}

	return &domain.ProactiveResult{Decision: domain.Allow(), Text: text, Category: category}, nil
}

// RecordSend appends the attempt and bumps the user's daily counter after a
// successful delivery
func (e *Evaluator) RecordSend(ctx context.Context, user *domain.User, text, category string) error {
	attempt := domain.ProactiveAttempt{UserID: user.ID, Content: text, Category: category, SentAt: e.nowFn()}
	if _, err := e.attempts.Create(ctx, attempt); err != nil {
		return fmt.Errorf("record proactive attempt for user %d: %w", user.ID, err)
	}
	if err := e.users.IncrementProactive(ctx, user.ID); err != nil {
		return fmt.Errorf("increment proactive count for user %d: %w", user.ID, err)
	}
	return nil
}

func (e *Evaluator) attachmentPolicy(style domain.AttachmentStyle) AttachmentPolicy {
	if p, ok := e.cfg.Attachment[style]; ok {
		return p
	}
	if p, ok := e.cfg.Attachment[domain.AttachmentSecure]; ok {
		return p
	}
	return AttachmentPolicy{DailyMax: 3, Cooldown: 2 * time.Hour}
}

// noSendMarkers are generator signals that the persona chose not to reach out
var noSendMarkers = []string{"[no_send]", "no_send", "dont send", "don't send"}

func isNoSend(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return true
	}
	for _, m := range noSendMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

// blockResult wraps a post-gate validation failure; Gate stays empty since
// the seven gates all passed
func blockResult(category, reason, detail string) *domain.ProactiveResult {
	return &domain.ProactiveResult{
		Decision: domain.GateDecision{Reason: reason, Detail: detail},
		Category: category,
	}
}
