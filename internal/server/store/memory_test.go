package store

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"testing"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecord(name string, y1, y2 int64) *models.UserRecord {
	return &models.UserRecord{
		UserName: name,
		Y1:       big.NewInt(y1),
		Y2:       big.NewInt(y2),
		State:    models.StateRegistered,
	}
}

func TestPutGetUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	replaced, err := s.PutUser(ctx, newRecord("alice", 2, 12), true)
	require.NoError(t, err)
	assert.False(t, replaced)

	got, err := s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Y1.Int64())
	assert.Equal(t, int64(12), got.Y2.Int64())

	_, err = s.GetUser(ctx, "bob")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestPutUser_OverwritePolicy(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.PutUser(ctx, newRecord("alice", 2, 12), true)
	require.NoError(t, err)

	replaced, err := s.PutUser(ctx, newRecord("alice", 3, 9), true)
	require.NoError(t, err)
	assert.True(t, replaced)

	got, err := s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Y1.Int64())

	_, err = s.PutUser(ctx, newRecord("alice", 4, 4), false)
	require.ErrorIs(t, err, common.ErrorAlreadyExists)

	got, err = s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Y1.Int64(), "rejected put must not change the record")
}

func TestRecordsAreCopied(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	rec := newRecord("alice", 2, 12)
	_, err := s.PutUser(ctx, rec, true)
	require.NoError(t, err)
	rec.Y1.SetInt64(100)

	got, err := s.GetUser(ctx, "alice")
	require.NoError(t, err)
	got.Y2.SetInt64(100)

	again, err := s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Y1.Int64())
	assert.Equal(t, int64(12), again.Y2.Int64())
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.PutUser(ctx, newRecord("alice", 2, 12), true)
	require.NoError(t, err)

	err = s.UpdateUser(ctx, "alice", func(r *models.UserRecord) error {
		r.State = models.StateChallenged
		r.Challenge = &models.ChallengeSession{AuthID: "a1", C: big.NewInt(4)}
		return nil
	})
	require.NoError(t, err)

	got, err := s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.StateChallenged, got.State)
	assert.Equal(t, "a1", got.Challenge.AuthID)

	boom := errors.New("boom")
	err = s.UpdateUser(ctx, "alice", func(r *models.UserRecord) error {
		r.State = models.StateVerified
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err = s.GetUser(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.StateChallenged, got.State, "failed update must be discarded")

	err = s.UpdateUser(ctx, "nobody", func(*models.UserRecord) error { return nil })
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAuthIDs(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	require.NoError(t, s.BindAuthID(ctx, "a1", "alice"))
	require.ErrorIs(t, s.BindAuthID(ctx, "a1", "bob"), common.ErrorAlreadyExists)

	name, err := s.ResolveAuthID(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	require.NoError(t, s.ReleaseAuthID(ctx, "a1"))
	_, err = s.ResolveAuthID(ctx, "a1")
	require.ErrorIs(t, err, common.ErrorNotFound)
	require.ErrorIs(t, s.ReleaseAuthID(ctx, "a1"), common.ErrorNotFound)
}

func TestIndependentInstances(t *testing.T) {
	ctx := context.Background()
	a := NewMemoryStore()
	b := NewMemoryStore()

	_, err := a.PutUser(ctx, newRecord("alice", 2, 12), true)
	require.NoError(t, err)

	_, err = b.GetUser(ctx, "alice")
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := NewMemoryStore()

	_, err := s.PutUser(ctx, newRecord("alice", 2, 12), true)
	require.ErrorIs(t, err, context.Canceled)
	_, err = s.GetUser(ctx, "alice")
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, s.BindAuthID(ctx, "a", "alice"), context.Canceled)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	const workers = 16
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			name := fmt.Sprintf("user-%d", w)
			_, err := s.PutUser(ctx, newRecord(name, 2, 12), true)
			assert.NoError(t, err)

			for i := 0; i < perWorker; i++ {
				authID := fmt.Sprintf("%s-%d", name, i)
				assert.NoError(t, s.BindAuthID(ctx, authID, name))
				assert.NoError(t, s.UpdateUser(ctx, name, func(r *models.UserRecord) error {
					r.Challenge = &models.ChallengeSession{AuthID: authID}
					return nil
				}))
				got, err := s.ResolveAuthID(ctx, authID)
				assert.NoError(t, err)
				assert.Equal(t, name, got)
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		name := fmt.Sprintf("user-%d", w)
		rec, err := s.GetUser(ctx, name)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("%s-%d", name, perWorker-1), rec.Challenge.AuthID)
	}
}
