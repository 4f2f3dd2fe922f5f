package engine

import (
	"context"
	"fmt"
	"html"
	"math/rand"
	"strings"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/microcosm-cc/bluemonday"

	"github.com/umputun/companion/pkg/domain"
	"github.com/umputun/companion/pkg/persona"
)

const (
	maxAttempts     = 3 // total generation calls per inbound message
	maxInputLength  = 4000
	maxReplyLength  = 2000
	supportCommand  = "/support"
	moodHistorySize = 10
)

// Orchestrator runs the reactive pipeline for one inbound message: sanitize,
// safety check, persist, boundary bookkeeping, generation with a bounded
// regenerate-on-violation loop, persist the reply. It always produces
// sendable text, degrading to a canned fallback rather than surfacing errors
// to the user.
type Orchestrator struct {
	boundary  *Manager
	questions *Tracker
	turns     TurnStore
	users     UserStore
	builder   ContextBuilder
	generator Generator
	sanitizer *bluemonday.Policy
	nowFn     func() time.Time
	randFn    func() float64
}

// OrchestratorParams holds dependencies for the reactive pipeline
type OrchestratorParams struct {
	Boundary  *Manager
	Questions *Tracker
	Turns     TurnStore
	Users     UserStore
	Builder   ContextBuilder
	Generator Generator
	NowFn     func() time.Time // defaults to time.Now
	RandFn    func() float64   // defaults to rand.Float64
}

// NewOrchestrator creates the reactive pipeline
func NewOrchestrator(params OrchestratorParams) *Orchestrator {
	if params.NowFn == nil {
		params.NowFn = time.Now
	}
	if params.RandFn == nil {
		params.RandFn = rand.Float64
	}
	return &Orchestrator{
		boundary:  params.Boundary,
		questions: params.Questions,
		turns:     params.Turns,
		users:     params.Users,
		builder:   params.Builder,
		generator: params.Generator,
		sanitizer: bluemonday.StrictPolicy(),
		nowFn:     params.NowFn,
		randFn:    params.RandFn,
	}
}

// ProcessMessage handles one inbound user message and returns the reply text.
// The reply is always sendable even when an error is returned, callers should
// log the error and deliver the text. An empty reply means the input was
// empty after sanitization and nothing should be sent.
func (o *Orchestrator) ProcessMessage(ctx context.Context, user *domain.User, raw string) (string, error) {
	text := o.sanitize(raw)
	if text == "" {
		return "", nil
	}

	// safety override: distress wins over persona, boundaries and generation
	if strings.Contains(strings.ToLower(text), supportCommand) || ShouldTriggerSupport(text, o.recentMoods(ctx, user.ID)) {
		lgr.Printf("[INFO] support response triggered for user %d", user.ID)
		return persona.SupportResponse, nil
	}

	now := o.nowFn()
	if err := o.users.MarkActive(ctx, user.ID, now); err != nil {
		return persona.Fallback(o.randFn), fmt.Errorf("mark user %d active: %w", user.ID, err)
	}

	mood := DetectMood(text)
	userTurn := domain.Turn{UserID: user.ID, Role: domain.RoleUser, Content: text, Kind: domain.KindReactive, DetectedMood: mood, CreatedAt: now}
	if _, err := o.turns.Create(ctx, userTurn); err != nil {
		return persona.Fallback(o.randFn), fmt.Errorf("save user turn for %d: %w", user.ID, err)
	}

	event, err := o.boundary.ProcessMessage(ctx, user.ID, text)
	if err != nil {
		// fail closed: proceed as if no boundary was recorded
		lgr.Printf("[WARN] boundary processing failed for user %d: %v", user.ID, err)
		event = nil
	}

	if err := o.questions.OnUserMessage(ctx, user.ID); err != nil {
		lgr.Printf("[WARN] question bookkeeping failed for user %d: %v", user.ID, err)
	}

	pc, err := o.builder.Build(ctx, user, domain.KindReactive, text)
	if err != nil {
		return persona.Fallback(o.randFn), fmt.Errorf("build context for user %d: %w", user.ID, err)
	}
	if event != nil {
		pc.SystemHint = event.Hint
	}

	reply := o.generateSafe(ctx, user, pc)

	isQ, topic := ClassifyQuestion(reply)
	botTurn := domain.Turn{UserID: user.ID, Role: domain.RoleBot, Content: reply, Kind: domain.KindReactive, IsQuestion: isQ, QuestionTopic: topic, CreatedAt: o.nowFn()}
	if _, err := o.turns.Create(ctx, botTurn); err != nil {
		return reply, fmt.Errorf("save bot turn for %d: %w", user.ID, err)
	}

	return reply, nil
}

// generateSafe is the bounded regeneration loop. A reply that is itself a
// fallback line is accepted right away, a malformed result retries, a
// boundary violation retries with a corrective hint, and exhausting the
// attempts after a violation returns a neutral topic change instead of the
// offending text.
func (o *Orchestrator) generateSafe(ctx context.Context, user *domain.User, pc *domain.PromptContext) string {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := o.generator.Generate(ctx, pc)
		if err != nil {
			lgr.Printf("[WARN] generation attempt %d failed for user %d: %v", attempt+1, user.ID, err)
			continue
		}
		if text == "" {
			continue
		}

		// a reply that reads like one of the canned fallbacks is accepted
		// as is, a fallback is not a violation
		if persona.IsFallback(text) {
			lgr.Printf("[WARN] generator returned a fallback line for user %d", user.ID)
			return text
		}

		if !validReply(text) {
			lgr.Printf("[WARN] malformed reply for user %d, attempt %d", user.ID, attempt+1)
			continue
		}

		violates, matched, err := o.boundary.CheckMessageViolates(ctx, user.ID, text)
		if err != nil {
			// fail closed: never send unchecked text
			lgr.Printf("[WARN] violation check failed for user %d: %v", user.ID, err)
			continue
		}
		if violates {
			if attempt < maxAttempts-1 {
				pc.SystemHint = fmt.Sprintf("[CRITICAL BOUNDARY VIOLATION: You mentioned '%s'. "+
					"This violates the user's boundary. Respond to them WITHOUT mentioning this "+
					"topic/behavior. Stay in character but avoid this completely.]", matched)
				lgr.Printf("[DEBUG] regenerating for user %d, reply violates %q", user.ID, matched)
				continue
			}
			lgr.Printf("[WARN] regeneration exhausted for user %d after %q violation", user.ID, matched)
			return persona.TopicChangeLine
		}

		return text
	}
	return persona.Fallback(o.randFn)
}

// sanitize strips markup and control characters and caps the input length
func (o *Orchestrator) sanitize(raw string) string {
	text := strings.ReplaceAll(raw, "\x00", "")
	text = o.sanitizer.Sanitize(text)
	text = html.UnescapeString(text)
	text = strings.TrimSpace(text)
	if len(text) > maxInputLength {
		text = text[:maxInputLength]
	}
	return text
}

// recentMoods loads mood history for the support trigger, newest first.
// A store failure degrades to no history rather than blocking the reply.
func (o *Orchestrator) recentMoods(ctx context.Context, userID int64) []domain.Mood {
	moods, err := o.turns.RecentMoods(ctx, userID, moodHistorySize)
	if err != nil {
		lgr.Printf("[WARN] mood history unavailable for user %d: %v", userID, err)
		return nil
	}
	return moods
}

// validReply rejects empty, overlong or bracket-unbalanced generator output,
// which usually means a leaked prompt fragment
func validReply(text string) bool {
	if len(text) < 2 {
		return false
	}
	if len(text) > maxReplyLength {
		return false
	}
	if strings.Count(text, "[") > strings.Count(text, "]")+2 {
		return false
	}
	return true
}
