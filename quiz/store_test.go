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
	"strconv"
	"testing"
	"time"

	"pdepview/rdb"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

func newTestRedisStore(t *testing.T, srv *miniredis.Miniredis) *RedisStore {
	port, err := strconv.Atoi(srv.Port())
	assert.NoError(t, err)
	adapter := rdb.NewAdapter(
		&rdb.Conf{Host: srv.Host(), Port: port, KeyPrefix: "pdepview", SessionTTLSecs: 60},
		context.Background(),
	)
	t.Cleanup(func() { adapter.Close() })
	return NewRedisStore(adapter)
}

func TestRedisStore(t *testing.T) {
	srv := miniredis.RunT(t)
	store := newTestRedisStore(t, srv)
	ctx := context.Background()

	sess := NewSession(mkQuestion())
	ok, err := sess.Answer("1(1)")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, store.Save(ctx, sess))
	assert.True(t, srv.Exists("pdepview:quiz:"+sess.ID))
	assert.Equal(t, time.Minute, srv.TTL("pdepview:quiz:"+sess.ID))

	loaded, err := store.Get(ctx, sess.ID)
	assert.NoError(t, err)
	assert.Equal(t, sess.ID, loaded.ID)
	assert.Equal(t, StateAnswered, loaded.State)
	assert.Equal(t, "1(1)", loaded.Selected)
	assert.Equal(t, 1, loaded.Score)
	assert.Equal(t, 1, loaded.Total)
	assert.Equal(t, sess.Question.CorrectSense, loaded.Question.CorrectSense)
	assert.Equal(t, sess.Question.Options, loaded.Question.Options)
	assert.True(t, loaded.IsCorrect())
}

func TestRedisStoreMissingSession(t *testing.T) {
	srv := miniredis.RunT(t)
	store := newTestRedisStore(t, srv)
	_, err := store.Get(context.Background(), "unknown")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisStoreExpiration(t *testing.T) {
	srv := miniredis.RunT(t)
	store := newTestRedisStore(t, srv)
	ctx := context.Background()
	sess := NewSession(mkQuestion())
	assert.NoError(t, store.Save(ctx, sess))
	srv.FastForward(61 * time.Second)
	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
