// Package engine implements the engagement policy: whether the bot may speak,
// what it must avoid saying, and when it may initiate contact unprompted.
// It is a pure decision and state layer, persistence and generation are
// injected behind narrow interfaces.
package engine

import (
	"context"
	"time"

	"github.com/umputun/companion/pkg/domain"
)

//go:generate moq -out mocks/boundary_store.go -pkg mocks -skip-ensure -fmt goimports . BoundaryStore
//go:generate moq -out mocks/question_store.go -pkg mocks -skip-ensure -fmt goimports . QuestionStore
//go:generate moq -out mocks/turn_store.go -pkg mocks -skip-ensure -fmt goimports . TurnStore
//go:generate moq -out mocks/attempt_store.go -pkg mocks -skip-ensure -fmt goimports . AttemptStore
//go:generate moq -out mocks/user_store.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/context_builder.go -pkg mocks -skip-ensure -fmt goimports . ContextBuilder
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . Generator
//go:generate moq -out mocks/starter_source.go -pkg mocks -skip-ensure -fmt goimports . StarterSource

// BoundaryStore persists boundary records
type BoundaryStore interface {
	Create(ctx context.Context, b domain.Boundary) (int64, error)
	ExistsActive(ctx context.Context, userID int64, btype domain.BoundaryType, value string) (bool, error)
	LatestActiveSpace(ctx context.Context, userID int64) (*domain.Boundary, error)
	MarkUserInitiated(ctx context.Context, userID int64, ts time.Time) error
	DeactivateSpace(ctx context.Context, userID int64) (bool, error)
	ActiveValues(ctx context.Context, userID int64, btype domain.BoundaryType) ([]string, error)
}

// QuestionStore tracks unanswered bot questions
type QuestionStore interface {
	MarkAllAnswered(ctx context.Context, userID int64) error
	HasPending(ctx context.Context, userID int64) (bool, error)
}

// TurnStore persists conversation turns and serves recent mood history
type TurnStore interface {
	Create(ctx context.Context, t domain.Turn) (int64, error)
	RecentMoods(ctx context.Context, userID int64, limit int) ([]domain.Mood, error)
}

// AttemptStore records successful proactive sends
type AttemptStore interface {
	Create(ctx context.Context, a domain.ProactiveAttempt) (int64, error)
	Latest(ctx context.Context, userID int64) (*domain.ProactiveAttempt, error)
}

// UserStore mutates per-user activity state and counters
type UserStore interface {
	IncrementProactive(ctx context.Context, userID int64) error
	MarkActive(ctx context.Context, userID int64, ts time.Time) error
}

// ContextBuilder assembles the generation context for one message
type ContextBuilder interface {
	Build(ctx context.Context, user *domain.User, kind domain.TurnKind, userMessage string) (*domain.PromptContext, error)
}

// Generator produces persona text from a prompt context
type Generator interface {
	Generate(ctx context.Context, pc *domain.PromptContext) (string, error)
}

// StarterSource supplies an optional conversation starter topic for
// proactive generation
type StarterSource interface {
	Topic(ctx context.Context) (string, bool)
}
