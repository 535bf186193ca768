// Copyright 2026 The PDEP Viewer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package quiz

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"pdepview/rdb"

	"github.com/rs/zerolog/log"
)

const (
	DfltSessionTTL = time.Hour

	memoryCleanupInterval = 5 * time.Minute
)

var (
	ErrSessionNotFound = errors.New("quiz session not found")
)

// Store keeps quiz sessions between requests
type Store interface {
	Get(ctx context.Context, id string) (*Session, error)
	Save(ctx context.Context, sess *Session) error
}

// ----------------------------

type memoryEntry struct {
	sess    Session
	expires time.Time
}

// MemoryStore keeps sessions in the process memory. Expired
// sessions are removed by the Start goroutine.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]memoryEntry
	ttl      time.Duration
}

func (ms *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	entry, ok := ms.sessions[id]
	if !ok || time.Now().After(entry.expires) {
		return nil, ErrSessionNotFound
	}
	sess := entry.sess
	return &sess, nil
}

func (ms *MemoryStore) Save(ctx context.Context, sess *Session) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.sessions[sess.ID] = memoryEntry{
		sess:    *sess,
		expires: time.Now().Add(ms.ttl),
	}
	return nil
}

func (ms *MemoryStore) removeExpired() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	now := time.Now()
	var numRemoved int
	for id, entry := range ms.sessions {
		if now.After(entry.expires) {
			delete(ms.sessions, id)
			numRemoved++
		}
	}
	return numRemoved
}

func (ms *MemoryStore) Start(ctx context.Context) {
	ticker := time.NewTicker(memoryCleanupInterval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := ms.removeExpired(); n > 0 {
					log.Debug().Int("numRemoved", n).Msg("removed expired quiz sessions")
				}
			}
		}
	}()
}

func (ms *MemoryStore) Stop(ctx context.Context) error {
	log.Warn().Msg("stopping quiz session store")
	return nil
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DfltSessionTTL
	}
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		ttl:      ttl,
	}
}

// ----------------------------

// RedisStore keeps sessions in Redis as JSON values
// with the adapter's expiration
type RedisStore struct {
	radapter *rdb.Adapter
}

func (rs *RedisStore) mkKey(id string) string {
	return fmt.Sprintf("quiz:%s", id)
}

func (rs *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	var sess Session
	found, err := rs.radapter.GetJSON(ctx, rs.mkKey(id), &sess)
	if err != nil {
		return nil, fmt.Errorf("failed to load quiz session: %w", err)
	}
	if !found {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (rs *RedisStore) Save(ctx context.Context, sess *Session) error {
	if err := rs.radapter.SetJSON(ctx, rs.mkKey(sess.ID), sess, 0); err != nil {
		return fmt.Errorf("failed to store quiz session: %w", err)
	}
	return nil
}

func NewRedisStore(radapter *rdb.Adapter) *RedisStore {
	return &RedisStore{radapter: radapter}
}
