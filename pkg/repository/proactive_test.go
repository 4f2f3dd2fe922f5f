package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/companion/pkg/domain"
)

func TestProactiveRepository_CreateAndLatest(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)

	latest, err := repos.Proactive.Latest(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, latest, "no attempts yet")

	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	first, err := repos.Proactive.Create(ctx, domain.ProactiveAttempt{
		UserID:   user.ID,
		Content:  "morning! how did you sleep?",
		Category: "proactive_morning",
		SentAt:   ts,
	})
	require.NoError(t, err)
	require.NotZero(t, first)

	second, err := repos.Proactive.Create(ctx, domain.ProactiveAttempt{
		UserID:   user.ID,
		Content:  "how's the afternoon treating you?",
		Category: "proactive_random",
		SentAt:   ts.Add(5 * time.Hour),
	})
	require.NoError(t, err)
	require.Greater(t, second, first)

	latest, err = repos.Proactive.Latest(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, second, latest.ID)
	assert.Equal(t, "how's the afternoon treating you?", latest.Content)
	assert.Equal(t, "proactive_random", latest.Category)
	assert.Equal(t, ts.Add(5*time.Hour).Unix(), latest.SentAt.Unix())
}

func TestProactiveRepository_CreateDefaultsSentAt(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	_, err := repos.Proactive.Create(ctx, domain.ProactiveAttempt{
		UserID:   user.ID,
		Content:  "hey you",
		Category: "template_evening",
	})
	require.NoError(t, err)

	latest, err := repos.Proactive.Latest(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.WithinDuration(t, time.Now(), latest.SentAt, time.Minute)
}

func TestProactiveRepository_RecentForUser(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	other := makeTestUser(t, repos)
	ts := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	for i, content := range []string{"one", "two", "three"} {
		_, err := repos.Proactive.Create(ctx, domain.ProactiveAttempt{
			UserID:   user.ID,
			Content:  content,
			Category: "proactive_morning",
			SentAt:   ts.Add(time.Duration(i) * time.Hour),
		})
		require.NoError(t, err)
	}
	_, err := repos.Proactive.Create(ctx, domain.ProactiveAttempt{
		UserID: other.ID, Content: "not mine", Category: "proactive_morning", SentAt: ts,
	})
	require.NoError(t, err)

	attempts, err := repos.Proactive.RecentForUser(ctx, user.ID, 2)
	require.NoError(t, err)
	require.Len(t, attempts, 2)
	assert.Equal(t, "three", attempts[0].Content, "newest first")
	assert.Equal(t, "two", attempts[1].Content)
}

func TestProactiveRepository_DeleteOlderThan(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	ts := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	_, err := repos.Proactive.Create(ctx, domain.ProactiveAttempt{
		UserID: user.ID, Content: "old", Category: "proactive_morning", SentAt: ts,
	})
	require.NoError(t, err)
	_, err = repos.Proactive.Create(ctx, domain.ProactiveAttempt{
		UserID: user.ID, Content: "fresh", Category: "proactive_evening", SentAt: ts.Add(40 * 24 * time.Hour),
	})
	require.NoError(t, err)

	deleted, err := repos.Proactive.DeleteOlderThan(ctx, ts.Add(30*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	latest, err := repos.Proactive.Latest(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "fresh", latest.Content)
}
