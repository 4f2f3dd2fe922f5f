package persona

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/companion/pkg/domain"
)

//go:generate moq -out mocks/history.go -pkg mocks -skip-ensure -fmt goimports . HistoryProvider
//go:generate moq -out mocks/boundaries.go -pkg mocks -skip-ensure -fmt goimports . BoundaryProvider

// HistoryProvider supplies conversation context from storage
type HistoryProvider interface {
	RecentTurns(ctx context.Context, userID int64, limit int) ([]domain.Turn, error)
	RecentBotContents(ctx context.Context, userID int64, limit int) ([]string, error)
	PendingQuestionTopics(ctx context.Context, userID int64, limit int) ([]string, error)
	RecentMoods(ctx context.Context, userID int64, limit int) ([]domain.Mood, error)
}

// BoundaryProvider supplies active boundaries for the prompt
type BoundaryProvider interface {
	ActiveBoundaries(ctx context.Context, userID int64) ([]domain.Boundary, error)
}

// Builder assembles the generation context for one message.
// Missing history is not an error: a brand-new user gets an empty context.
type Builder struct {
	history    HistoryProvider
	boundaries BoundaryProvider
	nowFn      func() time.Time
}

// BuilderParams holds dependencies for Builder
type BuilderParams struct {
	History    HistoryProvider
	Boundaries BoundaryProvider
	NowFn      func() time.Time // defaults to time.Now
}

// NewBuilder creates a context builder
func NewBuilder(params BuilderParams) *Builder {
	if params.NowFn == nil {
		params.NowFn = time.Now
	}
	return &Builder{history: params.History, boundaries: params.Boundaries, nowFn: params.NowFn}
}

const (
	historyLimit    = 10
	botLinesLimit   = 5
	pendingLimit    = 5
	moodLimit       = 1
	historyTruncate = 200
	botLineTruncate = 100
)

// Build collects persona, conversation and boundary context for the user.
// userMessage is empty for proactive generation.
func (b *Builder) Build(ctx context.Context, user *domain.User, kind domain.TurnKind, userMessage string) (*domain.PromptContext, error) {
	local := user.LocalTime(b.nowFn())

	pc := &domain.PromptContext{
		Kind:         kind,
		UserMessage:  userMessage,
		BotName:      user.BotName,
		Archetype:    user.Archetype,
		Instructions: Instructions(user.Archetype),
		Attachment:   user.AttachmentStyle,
		UserName:     user.Name,
		LocalTime:    local.Format("03:04 PM"),
		TimeOfDay:    TimeOfDay(local.Hour()),
		RecentMood:   domain.MoodNeutral,

		ProactiveCountToday: user.ProactiveCountToday,
	}
	if pc.BotName == "" {
		pc.BotName = "Dot"
	}
	if pc.UserName == "" {
		pc.UserName = "friend"
	}
	if kind == domain.KindProactive {
		pc.AttachmentHint = AttachmentHint(user.AttachmentStyle)
	}

	turns, err := b.history.RecentTurns(ctx, user.ID, historyLimit)
	if err != nil {
		return nil, fmt.Errorf("recent turns for user %d: %w", user.ID, err)
	}
	pc.History = make([]domain.HistoryLine, 0, len(turns))
	for _, t := range turns {
		pc.History = append(pc.History, domain.HistoryLine{Role: t.Role, Content: truncate(t.Content, historyTruncate)})
	}

	botLines, err := b.history.RecentBotContents(ctx, user.ID, botLinesLimit)
	if err != nil {
		return nil, fmt.Errorf("recent bot lines for user %d: %w", user.ID, err)
	}
	pc.RecentBotLines = make([]string, 0, len(botLines))
	for _, l := range botLines {
		pc.RecentBotLines = append(pc.RecentBotLines, truncate(l, botLineTruncate))
	}

	pending, err := b.history.PendingQuestionTopics(ctx, user.ID, pendingLimit)
	if err != nil {
		return nil, fmt.Errorf("pending questions for user %d: %w", user.ID, err)
	}
	pc.PendingQuestions = pending

	moods, err := b.history.RecentMoods(ctx, user.ID, moodLimit)
	if err != nil {
		return nil, fmt.Errorf("recent moods for user %d: %w", user.ID, err)
	}
	if len(moods) > 0 {
		pc.RecentMood = moods[0]
	}

	active, err := b.boundaries.ActiveBoundaries(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("active boundaries for user %d: %w", user.ID, err)
	}
	pc.Boundaries = make([]string, 0, len(active))
	for _, bd := range active {
		pc.Boundaries = append(pc.Boundaries, fmt.Sprintf("%s: %s", bd.Type, bd.Value))
	}

	return pc, nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
