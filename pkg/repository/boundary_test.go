package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/companion/pkg/domain"
)

func TestBoundaryRepository_Create(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	id, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID,
		Type:   domain.BoundaryTopic,
		Value:  "my ex",
		Active: true,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	list, err := repos.Boundary.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
	assert.Equal(t, domain.BoundaryTopic, list[0].Type)
	assert.Equal(t, "my ex", list[0].Value)
	assert.True(t, list[0].Active)
	assert.Nil(t, list[0].UserInitiatedAfter)
	assert.WithinDuration(t, time.Now(), list[0].CreatedAt, time.Minute)
}

func TestBoundaryRepository_ExistsActive(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	_, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryTopic, Value: "work", Active: true,
	})
	require.NoError(t, err)
	_, err = repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryTopic, Value: "politics", Active: false,
	})
	require.NoError(t, err)

	exists, err := repos.Boundary.ExistsActive(ctx, user.ID, domain.BoundaryTopic, "work")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repos.Boundary.ExistsActive(ctx, user.ID, domain.BoundaryTopic, "politics")
	require.NoError(t, err)
	assert.False(t, exists, "inactive boundary does not count")

	exists, err = repos.Boundary.ExistsActive(ctx, user.ID, domain.BoundaryTopic, "family")
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repos.Boundary.ExistsActive(ctx, user.ID, domain.BoundaryTiming, "work")
	require.NoError(t, err)
	assert.False(t, exists, "type is part of the identity")
}

func TestBoundaryRepository_LatestActiveSpace(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)

	b, err := repos.Boundary.LatestActiveSpace(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, b, "no space boundary yet")

	// topic boundaries never qualify as space, even with a space-like value
	_, err = repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryTopic, Value: "space", Active: true,
	})
	require.NoError(t, err)
	b, err = repos.Boundary.LatestActiveSpace(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, b)

	first, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryBehavior, Value: domain.ValueReduceMessages, Active: true,
	})
	require.NoError(t, err)
	second, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryFrequency, Value: domain.ValueReduceMessages, Active: true,
	})
	require.NoError(t, err)
	require.Greater(t, second, first)

	b, err = repos.Boundary.LatestActiveSpace(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, second, b.ID, "most recent space boundary wins, frequency counts too")
}

func TestBoundaryRepository_MarkUserInitiated(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	_, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryFrequency, Value: domain.ValueReduceMessages, Active: true,
	})
	require.NoError(t, err)

	ts := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
	require.NoError(t, repos.Boundary.MarkUserInitiated(ctx, user.ID, ts))

	b, err := repos.Boundary.LatestActiveSpace(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, b)
	require.NotNil(t, b.UserInitiatedAfter)
	assert.Equal(t, ts.Unix(), b.UserInitiatedAfter.Unix())

	// only the first contact is recorded, later calls don't move the stamp
	require.NoError(t, repos.Boundary.MarkUserInitiated(ctx, user.ID, ts.Add(3*time.Hour)))
	b, err = repos.Boundary.LatestActiveSpace(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, b.UserInitiatedAfter)
	assert.Equal(t, ts.Unix(), b.UserInitiatedAfter.Unix())
}

func TestBoundaryRepository_DeactivateSpace(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)

	lifted, err := repos.Boundary.DeactivateSpace(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, lifted, "nothing to lift")

	_, err = repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryBehavior, Value: domain.ValueReduceMessages, Active: true,
	})
	require.NoError(t, err)
	_, err = repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryFrequency, Value: domain.ValueReduceMessages, Active: true,
	})
	require.NoError(t, err)

	lifted, err = repos.Boundary.DeactivateSpace(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, lifted, "both space types are lifted in one call")

	b, err := repos.Boundary.LatestActiveSpace(ctx, user.ID)
	require.NoError(t, err)
	assert.Nil(t, b)

	lifted, err = repos.Boundary.DeactivateSpace(ctx, user.ID)
	require.NoError(t, err)
	assert.False(t, lifted, "already lifted")
}

func TestBoundaryRepository_ActiveValues(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	other := makeTestUser(t, repos)

	for _, b := range []domain.Boundary{
		{UserID: user.ID, Type: domain.BoundaryTopic, Value: "my ex", Active: true},
		{UserID: user.ID, Type: domain.BoundaryTopic, Value: "diet", Active: true},
		{UserID: user.ID, Type: domain.BoundaryTopic, Value: "politics", Active: false},
		{UserID: user.ID, Type: domain.BoundaryTiming, Value: domain.ValueNoMorningMessages, Active: true},
		{UserID: other.ID, Type: domain.BoundaryTopic, Value: "sports", Active: true},
	} {
		_, err := repos.Boundary.Create(ctx, b)
		require.NoError(t, err)
	}

	values, err := repos.Boundary.ActiveValues(ctx, user.ID, domain.BoundaryTopic)
	require.NoError(t, err)
	assert.Equal(t, []string{"my ex", "diet"}, values)

	values, err = repos.Boundary.ActiveValues(ctx, user.ID, domain.BoundaryTiming)
	require.NoError(t, err)
	assert.Equal(t, []string{domain.ValueNoMorningMessages}, values)
}

func TestBoundaryRepository_ActiveBoundaries(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	for _, b := range []domain.Boundary{
		{UserID: user.ID, Type: domain.BoundaryTopic, Value: "my ex", Active: true},
		{UserID: user.ID, Type: domain.BoundaryBehavior, Value: domain.ValueReduceMessages, Active: false},
		{UserID: user.ID, Type: domain.BoundaryTiming, Value: domain.ValueNoLateMessages, Active: true},
	} {
		_, err := repos.Boundary.Create(ctx, b)
		require.NoError(t, err)
	}

	active, err := repos.Boundary.ActiveBoundaries(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "my ex", active[0].Value)
	assert.Equal(t, domain.ValueNoLateMessages, active[1].Value)
}

func TestBoundaryRepository_ListForUser(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	first, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryTopic, Value: "my ex", Active: true,
	})
	require.NoError(t, err)
	second, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryBehavior, Value: domain.ValueReduceMessages, Active: false,
	})
	require.NoError(t, err)

	list, err := repos.Boundary.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 2, "lifted boundaries are listed too")
	assert.Equal(t, second, list[0].ID, "newest first")
	assert.Equal(t, first, list[1].ID)
}

func TestBoundaryRepository_Delete(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	user := makeTestUser(t, repos)
	other := makeTestUser(t, repos)
	id, err := repos.Boundary.Create(ctx, domain.Boundary{
		UserID: user.ID, Type: domain.BoundaryTopic, Value: "my ex", Active: true,
	})
	require.NoError(t, err)

	deleted, err := repos.Boundary.Delete(ctx, other.ID, id)
	require.NoError(t, err)
	assert.False(t, deleted, "cannot delete another user's boundary")

	deleted, err = repos.Boundary.Delete(ctx, user.ID, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	// the row survives deactivated, enforcement no longer sees it
	list, err := repos.Boundary.ListForUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.False(t, list[0].Active)

	active, err := repos.Boundary.ActiveBoundaries(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, active)

	deleted, err = repos.Boundary.Delete(ctx, user.ID, id)
	require.NoError(t, err)
	assert.False(t, deleted, "already deactivated")
}
