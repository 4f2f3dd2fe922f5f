package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/companion/pkg/domain"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := &domain.User{
		TelegramID:       777,
		Name:             "sam",
		Archetype:        "lawyer",
		BotName:          "Harvey",
		AttachmentStyle:  domain.AttachmentAvoidant,
		Tier:             domain.TierFree,
		Timezone:         "America/New_York",
		ProactiveEnabled: true,
	}
	require.NoError(t, repos.User.Create(ctx, user))
	require.NotZero(t, user.ID)

	got, err := repos.User.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "sam", got.Name)
	assert.Equal(t, "lawyer", got.Archetype)
	assert.Equal(t, "Harvey", got.BotName)
	assert.Equal(t, domain.AttachmentAvoidant, got.AttachmentStyle)
	assert.Equal(t, domain.TierFree, got.Tier)
	assert.Equal(t, "America/New_York", got.Timezone)
	assert.True(t, got.ProactiveEnabled)
	assert.Zero(t, got.ProactiveCountToday)
	assert.Nil(t, got.LastActiveAt)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUserRepository_GetNotFound(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repos.User.Get(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = repos.User.GetByTelegram(context.Background(), 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_UnconnectedTelegramNotUnique(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	// zero telegram id means not connected, several such users may exist
	u1 := &domain.User{Name: "one", Archetype: "golden_retriever"}
	u2 := &domain.User{Name: "two", Archetype: "golden_retriever"}
	require.NoError(t, repos.User.Create(ctx, u1))
	require.NoError(t, repos.User.Create(ctx, u2))

	u3 := &domain.User{Name: "three", TelegramID: 555}
	require.NoError(t, repos.User.Create(ctx, u3))
	u4 := &domain.User{Name: "four", TelegramID: 555}
	assert.Error(t, repos.User.Create(ctx, u4), "connected telegram ids are unique")
}

func TestUserRepository_Update(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	user.Archetype = "cool_girl"
	user.BotName = "Vee"
	user.Tier = domain.TierPremium
	user.ProactiveEnabled = false

	require.NoError(t, repos.User.Update(ctx, user))

	got, err := repos.User.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "cool_girl", got.Archetype)
	assert.Equal(t, "Vee", got.BotName)
	assert.Equal(t, domain.TierPremium, got.Tier)
	assert.False(t, got.ProactiveEnabled)
}

func TestUserRepository_UpdateNotFound(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()

	err := repos.User.Update(context.Background(), &domain.User{ID: 12345, Name: "ghost"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepository_MarkActive(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	ts := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)

	require.NoError(t, repos.User.MarkActive(ctx, user.ID, ts))
	require.NoError(t, repos.User.MarkActive(ctx, user.ID, ts.Add(time.Minute)))

	got, err := repos.User.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.MessagesToday)
	require.NotNil(t, got.LastActiveAt)
	assert.Equal(t, ts.Add(time.Minute).Unix(), got.LastActiveAt.Unix())
}

func TestUserRepository_IncrementProactive(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	require.NoError(t, repos.User.IncrementProactive(ctx, user.ID))
	require.NoError(t, repos.User.IncrementProactive(ctx, user.ID))
	require.NoError(t, repos.User.IncrementProactive(ctx, user.ID))

	got, err := repos.User.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ProactiveCountToday)
}

func TestUserRepository_ActiveForProactive(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	recent := makeTestUser(t, repos)
	older := makeTestUser(t, repos)
	stale := makeTestUser(t, repos)
	optedOut := makeTestUser(t, repos)
	never := makeTestUser(t, repos)
	_ = never // created but never active

	require.NoError(t, repos.User.MarkActive(ctx, recent.ID, now.Add(-time.Hour)))
	require.NoError(t, repos.User.MarkActive(ctx, older.ID, now.Add(-48*time.Hour)))
	require.NoError(t, repos.User.MarkActive(ctx, stale.ID, now.Add(-10*24*time.Hour)))
	require.NoError(t, repos.User.MarkActive(ctx, optedOut.ID, now.Add(-time.Hour)))

	optedOut.ProactiveEnabled = false
	require.NoError(t, repos.User.Update(ctx, optedOut))

	users, err := repos.User.ActiveForProactive(ctx, now.Add(-7*24*time.Hour), 100)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, recent.ID, users[0].ID, "most recently active first")
	assert.Equal(t, older.ID, users[1].ID)

	limited, err := repos.User.ActiveForProactive(ctx, now.Add(-7*24*time.Hour), 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, recent.ID, limited[0].ID)
}

func TestUserRepository_Timezones(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	for _, tz := range []string{"UTC", "Europe/Berlin", "Europe/Berlin", ""} {
		u := makeTestUser(t, repos)
		u.Timezone = tz
		require.NoError(t, repos.User.Update(ctx, u))
	}

	zones, err := repos.User.Timezones(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"UTC", "Europe/Berlin"}, zones, "empty timezone folds into UTC")
}

func TestUserRepository_ResetDaily(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	utcUser := makeTestUser(t, repos)
	berlinUser := makeTestUser(t, repos)
	berlinUser.Timezone = "Europe/Berlin"
	require.NoError(t, repos.User.Update(ctx, berlinUser))

	for _, u := range []*domain.User{utcUser, berlinUser} {
		require.NoError(t, repos.User.MarkActive(ctx, u.ID, time.Now()))
		require.NoError(t, repos.User.IncrementProactive(ctx, u.ID))
	}

	rows, err := repos.User.ResetDaily(ctx, "UTC", "2025-06-02")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	got, err := repos.User.Get(ctx, utcUser.ID)
	require.NoError(t, err)
	assert.Zero(t, got.ProactiveCountToday)
	assert.Zero(t, got.MessagesToday)
	assert.Equal(t, "2025-06-02", got.LastDailyReset)

	// berlin user untouched
	got, err = repos.User.Get(ctx, berlinUser.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.ProactiveCountToday)

	// same local date again is a no-op
	rows, err = repos.User.ResetDaily(ctx, "UTC", "2025-06-02")
	require.NoError(t, err)
	assert.Zero(t, rows)

	// next local date resets again
	rows, err = repos.User.ResetDaily(ctx, "UTC", "2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}
