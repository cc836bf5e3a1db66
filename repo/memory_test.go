package repo

import (
	"context"
	"testing"
	"time"

	"DVBot/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ SessionStore    = (*MemoryStore)(nil)
	_ SubmissionStore = (*MemoryStore)(nil)
	_ SessionStore    = (*FirebaseConnector)(nil)
	_ SubmissionStore = (*FirebaseConnector)(nil)
	_ Store           = (*MemoryStore)(nil)
	_ Store           = (*FirebaseConnector)(nil)
)

func TestMemorySessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, err := store.GetSession(ctx, 1)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	sess := model.NewSession(1)
	sess.Dossier.Children = []model.Child{{Name: "Abel"}}
	require.NoError(t, store.SaveSession(ctx, sess))

	// the store keeps its own copy
	sess.Dossier.Children[0].Name = "changed"
	got, err := store.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Abel", got.Dossier.Children[0].Name)

	got.State = model.StateMainMenu
	require.NoError(t, store.SaveSession(ctx, got))
	got, err = store.GetSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.StateMainMenu, got.State)

	require.NoError(t, store.DeleteSession(ctx, 1))
	_, err = store.GetSession(ctx, 1)
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
}

func TestMemorySubmissionsApproveOnce(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	_, err := store.ApproveSubmission(ctx, 9, first)
	assert.ErrorIs(t, err, model.ErrSubmissionNotFound)

	require.NoError(t, store.CreateSubmission(ctx, &model.Submission{ID: "s1", RequesterID: 9}))

	sub, err := store.ApproveSubmission(ctx, 9, first)
	require.NoError(t, err)
	assert.True(t, sub.Approved)

	sub, err = store.ApproveSubmission(ctx, 9, first.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, first, sub.ApprovedAt)

	sub, err = store.ReadSubmission(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, "s1", sub.ID)
	assert.True(t, sub.Approved)
}
