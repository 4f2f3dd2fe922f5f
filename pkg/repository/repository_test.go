package repository

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/companion/pkg/domain"
)

var testTelegramID int64 = 1000

func setupTestDB(t *testing.T) (repos *Repositories, cleanup func()) {
	t.Helper()

	cfg := Config{
		DSN:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)

	cleanup = func() {
		require.NoError(t, repos.Close())
	}
	return repos, cleanup
}

func makeTestUser(t *testing.T, repos *Repositories) *domain.User {
	t.Helper()

	user := &domain.User{
		TelegramID:       atomic.AddInt64(&testTelegramID, 1),
		Name:             "alex",
		Archetype:        "golden_retriever",
		BotName:          "Dot",
		AttachmentStyle:  domain.AttachmentSecure,
		Tier:             domain.TierPlus,
		Timezone:         "UTC",
		ProactiveEnabled: true,
	}
	require.NoError(t, repos.User.Create(context.Background(), user))
	return user
}

func TestRepositories_Integration(t *testing.T) {
	cfg := Config{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 30 * time.Second,
	}

	repos, err := NewRepositories(context.Background(), cfg)
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, repos.Close())
	}()

	require.NoError(t, repos.Ping(context.Background()))
	ctx := context.Background()

	user := &domain.User{
		TelegramID:       12345,
		Name:             "alex",
		Archetype:        "tsundere",
		BotName:          "Rin",
		AttachmentStyle:  domain.AttachmentAnxious,
		Tier:             domain.TierPremium,
		Timezone:         "Europe/Berlin",
		ProactiveEnabled: true,
	}

	t.Run("user lifecycle", func(t *testing.T) {
		require.NoError(t, repos.User.Create(ctx, user))
		assert.NotZero(t, user.ID)

		got, err := repos.User.Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "alex", got.Name)
		assert.Equal(t, "tsundere", got.Archetype)
		assert.Equal(t, domain.AttachmentAnxious, got.AttachmentStyle)

		byTg, err := repos.User.GetByTelegram(ctx, 12345)
		require.NoError(t, err)
		assert.Equal(t, user.ID, byTg.ID)
	})

	t.Run("boundary lifecycle", func(t *testing.T) {
		id, err := repos.Boundary.Create(ctx, domain.Boundary{
			UserID: user.ID, Type: domain.BoundaryTopic, Value: "my ex", Active: true,
		})
		require.NoError(t, err)
		assert.NotZero(t, id)

		values, err := repos.Boundary.ActiveValues(ctx, user.ID, domain.BoundaryTopic)
		require.NoError(t, err)
		assert.Equal(t, []string{"my ex"}, values)
	})

	t.Run("conversation and proactive log", func(t *testing.T) {
		_, err := repos.Turn.Create(ctx, domain.Turn{
			UserID: user.ID, Role: domain.RoleUser, Content: "hello there",
			Kind: domain.KindReactive, DetectedMood: domain.MoodHappy,
		})
		require.NoError(t, err)

		turns, err := repos.Turn.RecentTurns(ctx, user.ID, 10)
		require.NoError(t, err)
		require.Len(t, turns, 1)
		assert.Equal(t, "hello there", turns[0].Content)

		_, err = repos.Proactive.Create(ctx, domain.ProactiveAttempt{
			UserID: user.ID, Content: "thinking of you", Category: "evening_tsundere",
		})
		require.NoError(t, err)

		latest, err := repos.Proactive.Latest(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, "thinking of you", latest.Content)
	})

	t.Run("cascade on user delete", func(t *testing.T) {
		_, err := repos.DB.ExecContext(ctx, "DELETE FROM users WHERE id = ?", user.ID)
		require.NoError(t, err)

		turns, err := repos.Turn.RecentTurns(ctx, user.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, turns)

		values, err := repos.Boundary.ActiveValues(ctx, user.ID, domain.BoundaryTopic)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}
