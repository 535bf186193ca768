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
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	connectionRetryInterval = 2 * time.Second
)

// Adapter provides access to Redis with JSON-encoded values
// stored under prefixed keys
type Adapter struct {
	ctx       context.Context
	c         *redis.Client
	keyPrefix string
	ttl       time.Duration
}

func (a *Adapter) mkKey(key string) string {
	return fmt.Sprintf("%s:%s", a.keyPrefix, key)
}

// TTL returns default expiration of stored values
func (a *Adapter) TTL() time.Duration {
	return a.ttl
}

// TestConnection pings Redis until it responds or until
// the timeout is reached
func (a *Adapter) TestConnection(timeout time.Duration) error {
	tick := time.NewTicker(connectionRetryInterval)
	defer tick.Stop()
	timeoutCh := time.After(timeout)
	for {
		err := a.c.Ping(a.ctx).Err()
		if err == nil {
			log.Info().Msg("connection to Redis OK")
			return nil
		}
		log.Warn().Err(err).Msg("failed to connect to Redis, going to retry")
		select {
		case <-timeoutCh:
			return fmt.Errorf("failed to connect to Redis: %w", err)
		case <-a.ctx.Done():
			return a.ctx.Err()
		case <-tick.C:
		}
	}
}

// GetJSON loads a value stored under key and decodes it into target.
// The returned flag is false in case the key does not exist.
func (a *Adapter) GetJSON(ctx context.Context, key string, target any) (bool, error) {
	data, err := a.c.Get(ctx, a.mkKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil

	} else if err != nil {
		return false, fmt.Errorf("failed to get Redis key %s: %w", key, err)
	}
	if err := sonic.Unmarshal(data, target); err != nil {
		return false, fmt.Errorf("failed to decode Redis value of %s: %w", key, err)
	}
	return true, nil
}

// SetJSON stores a JSON-encoded value under key. In case
// expiration is zero, the adapter's default TTL is used.
func (a *Adapter) SetJSON(ctx context.Context, key string, value any, expiration time.Duration) error {
	data, err := sonic.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode Redis value of %s: %w", key, err)
	}
	if expiration == 0 {
		expiration = a.ttl
	}
	if err := a.c.Set(ctx, a.mkKey(key), data, expiration).Err(); err != nil {
		return fmt.Errorf("failed to set Redis key %s: %w", key, err)
	}
	return nil
}

func (a *Adapter) Delete(ctx context.Context, key string) error {
	return a.c.Del(ctx, a.mkKey(key)).Err()
}

func (a *Adapter) Close() error {
	return a.c.Close()
}

func NewAdapter(conf *Conf, ctx context.Context) *Adapter {
	return &Adapter{
		c: redis.NewClient(&redis.Options{
			Addr:     conf.ServerInfo(),
			Password: conf.Password,
			DB:       conf.DB,
		}),
		ctx:       ctx,
		keyPrefix: conf.KeyPrefix,
		ttl:       time.Duration(conf.SessionTTLSecs) * time.Second,
	}
}
