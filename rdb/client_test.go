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

package rdb

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
)

type testRecord struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestAdapter(t *testing.T, srv *miniredis.Miniredis) *Adapter {
	port, err := strconv.Atoi(srv.Port())
	assert.NoError(t, err)
	a := NewAdapter(
		&Conf{Host: srv.Host(), Port: port, KeyPrefix: "test", SessionTTLSecs: 60},
		context.Background(),
	)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestAdapterJSONRoundTrip(t *testing.T) {
	srv := miniredis.RunT(t)
	a := newTestAdapter(t, srv)
	ctx := context.Background()
	assert.NoError(t, a.TestConnection(time.Second))

	assert.NoError(t, a.SetJSON(ctx, "rec", testRecord{Name: "on", Count: 3}, 0))
	assert.True(t, srv.Exists("test:rec"))
	assert.Equal(t, time.Minute, srv.TTL("test:rec"))

	var rec testRecord
	found, err := a.GetJSON(ctx, "rec", &rec)
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, testRecord{Name: "on", Count: 3}, rec)

	assert.NoError(t, a.Delete(ctx, "rec"))
	found, err = a.GetJSON(ctx, "rec", &rec)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestAdapterExplicitExpiration(t *testing.T) {
	srv := miniredis.RunT(t)
	a := newTestAdapter(t, srv)
	ctx := context.Background()
	assert.NoError(t, a.SetJSON(ctx, "rec", testRecord{Name: "in"}, 5*time.Second))
	assert.Equal(t, 5*time.Second, srv.TTL("test:rec"))

	srv.FastForward(6 * time.Second)
	var rec testRecord
	found, err := a.GetJSON(ctx, "rec", &rec)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestAdapterInvalidJSON(t *testing.T) {
	srv := miniredis.RunT(t)
	a := newTestAdapter(t, srv)
	assert.NoError(t, srv.Set("test:rec", "{broken"))
	var rec testRecord
	_, err := a.GetJSON(context.Background(), "rec", &rec)
	assert.Error(t, err)
}
