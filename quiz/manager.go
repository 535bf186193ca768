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
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Manager runs quiz sessions. Session updates are serialized
// so concurrent requests cannot lose an answer.
type Manager struct {
	gen   *Generator
	store Store
	mu    sync.Mutex
}

func (m *Manager) NewSession(ctx context.Context) (*Session, error) {
	q, err := m.gen.NewQuestion()
	if err != nil {
		return nil, err
	}
	sess := NewSession(q)
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	log.Debug().Str("sessionId", sess.ID).Msg("created new quiz session")
	return sess, nil
}

func (m *Manager) Session(ctx context.Context, id string) (*Session, error) {
	return m.store.Get(ctx, id)
}

func (m *Manager) update(ctx context.Context, id string, fn func(sess *Session) error) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sess, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(sess); err != nil {
		return nil, err
	}
	if err := m.store.Save(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Answer evaluates an answer to the current question
// of a session
func (m *Manager) Answer(ctx context.Context, id, sense string) (*Session, error) {
	sess, err := m.update(ctx, id, func(sess *Session) error {
		_, err := sess.Answer(sense)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to answer quiz question: %w", err)
	}
	return sess, nil
}

// Next loads a new question for a session
func (m *Manager) Next(ctx context.Context, id string) (*Session, error) {
	sess, err := m.update(ctx, id, func(sess *Session) error {
		q, err := m.gen.NewQuestion()
		if err != nil {
			return err
		}
		sess.Next(q)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load next quiz question: %w", err)
	}
	return sess, nil
}

func NewManager(gen *Generator, store Store) *Manager {
	return &Manager{
		gen:   gen,
		store: store,
	}
}
