package store

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/dmitrijs2005/zkpauth/internal/common"
	"github.com/dmitrijs2005/zkpauth/internal/server/models"
)

const shardCount = 32

type userShard struct {
	mu    sync.RWMutex
	users map[string]*models.UserRecord
}

type authShard struct {
	mu      sync.RWMutex
	authIDs map[string]string
}

// MemoryStore is a Store backed by lock-striped maps: keys hash onto
// shardCount shards, so requests for different users rarely wait on each
// other.
type MemoryStore struct {
	users   [shardCount]userShard
	authIDs [shardCount]authShard
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{}
	for i := range s.users {
		s.users[i].users = make(map[string]*models.UserRecord)
		s.authIDs[i].authIDs = make(map[string]string)
	}
	return s
}

func shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % shardCount)
}

func (s *MemoryStore) userShard(username string) *userShard {
	return &s.users[shardIndex(username)]
}

func (s *MemoryStore) authShard(authID string) *authShard {
	return &s.authIDs[shardIndex(authID)]
}

func (s *MemoryStore) PutUser(ctx context.Context, rec *models.UserRecord, overwrite bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	sh := s.userShard(rec.UserName)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	_, exists := sh.users[rec.UserName]
	if exists && !overwrite {
		return false, common.ErrorAlreadyExists
	}
	sh.users[rec.UserName] = rec.Clone()
	return exists, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, username string) (*models.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sh := s.userShard(username)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	rec, ok := sh.users[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return rec.Clone(), nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, username string, fn func(*models.UserRecord) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sh := s.userShard(username)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	rec, ok := sh.users[username]
	if !ok {
		return common.ErrorNotFound
	}

	// fn mutates a copy; the stored record changes only when fn succeeds
	cp := rec.Clone()
	if err := fn(cp); err != nil {
		return err
	}
	cp.UserName = username
	sh.users[username] = cp
	return nil
}

func (s *MemoryStore) BindAuthID(ctx context.Context, authID, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sh := s.authShard(authID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, exists := sh.authIDs[authID]; exists {
		return common.ErrorAlreadyExists
	}
	sh.authIDs[authID] = username
	return nil
}

func (s *MemoryStore) ResolveAuthID(ctx context.Context, authID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	sh := s.authShard(authID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	username, ok := sh.authIDs[authID]
	if !ok {
		return "", common.ErrorNotFound
	}
	return username, nil
}

func (s *MemoryStore) ReleaseAuthID(ctx context.Context, authID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sh := s.authShard(authID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.authIDs[authID]; !ok {
		return common.ErrorNotFound
	}
	delete(sh.authIDs, authID)
	return nil
}
