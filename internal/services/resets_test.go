package services

import (
	"testing"
	"time"

	"github.com/peopleops/attrition/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnqueueDeduplicates(t *testing.T) {
	conn := setupTestDB(t)
	require.NoError(t, NewCredentialService(conn).Register("dora", "p", DefaultRole))
	svc := NewResetService(conn)

	require.NoError(t, svc.Enqueue("dora"))
	require.NoError(t, svc.Enqueue("dora"))

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Len(t, pending, 1)
}

func TestEnqueueUnknownUser(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewResetService(conn)
	assert.ErrorIs(t, svc.Enqueue("ghost"), ErrNotFound)

	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestListPendingOrder(t *testing.T) {
	conn := setupTestDB(t)
	creds := NewCredentialService(conn)
	for _, u := range []string{"beta", "alpha", "gamma"} {
		require.NoError(t, creds.Register(u, "p", DefaultRole))
	}
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	// same timestamp for two rows so the username tiebreak is exercised
	rows := []models.ResetRequest{
		{Username: "gamma", RequestedAt: base},
		{Username: "beta", RequestedAt: base.Add(time.Hour)},
		{Username: "alpha", RequestedAt: base},
	}
	for _, r := range rows {
		require.NoError(t, conn.Create(&r).Error)
	}

	pending, err := NewResetService(conn).ListPending()
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, "alpha", pending[0].Username)
	assert.Equal(t, "gamma", pending[1].Username)
	assert.Equal(t, "beta", pending[2].Username)
}

func TestResolveSetsPasswordAndDequeues(t *testing.T) {
	conn := setupTestDB(t)
	creds := NewCredentialService(conn)
	require.NoError(t, creds.Register("erin", "old", DefaultRole))
	svc := NewResetService(conn)
	require.NoError(t, svc.Enqueue("erin"))

	require.NoError(t, svc.Resolve("erin", "fresh"))

	_, ok, err := creds.Authenticate("erin", "fresh")
	require.NoError(t, err)
	assert.True(t, ok)
	pending, err := svc.ListPending()
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestResolveTwiceIsSafe(t *testing.T) {
	conn := setupTestDB(t)
	creds := NewCredentialService(conn)
	require.NoError(t, creds.Register("fred", "old", DefaultRole))
	svc := NewResetService(conn)
	require.NoError(t, svc.Enqueue("fred"))

	require.NoError(t, svc.Resolve("fred", "fresh"))
	assert.ErrorIs(t, svc.Resolve("fred", "fresh"), ErrNotFound)

	// the password from the first resolve is still in effect
	_, ok, err := creds.Authenticate("fred", "fresh")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestResolveWithoutRequest(t *testing.T) {
	conn := setupTestDB(t)
	require.NoError(t, NewCredentialService(conn).Register("gail", "old", DefaultRole))
	assert.ErrorIs(t, NewResetService(conn).Resolve("gail", "x"), ErrNotFound)
}
