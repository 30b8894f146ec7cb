// Copyright 2019-2025 The Liqo Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/liqotech/cidrcalc/pkg/utils/errdefs"
)

// Redis is a Store keeping the keys in a Redis server.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

var _ Store = &Redis{}

// NewRedis returns a new Redis store. Redis keys are built concatenating prefix and key.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) name(key string) string {
	return r.prefix + key
}

// Get implements Store.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.name(key)).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", errdefs.NotFoundf("key %q not found", r.name(key))
	case err != nil:
		return "", errdefs.AsUnavailable(fmt.Errorf("failed to get key %q: %w", r.name(key), err))
	}
	return value, nil
}

// Put implements Store.
func (r *Redis) Put(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.name(key), value, 0).Err(); err != nil {
		return errdefs.AsUnavailable(fmt.Errorf("failed to set key %q: %w", r.name(key), err))
	}
	return nil
}

// Delete implements Store.
func (r *Redis) Delete(ctx context.Context, key string) error {
	deleted, err := r.client.Del(ctx, r.name(key)).Result()
	if err != nil {
		return errdefs.AsUnavailable(fmt.Errorf("failed to delete key %q: %w", r.name(key), err))
	}
	if deleted == 0 {
		return errdefs.NotFoundf("key %q not found", r.name(key))
	}
	return nil
}

// Ping checks the connectivity towards the Redis server.
func (r *Redis) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errdefs.AsUnavailable(fmt.Errorf("failed to reach redis: %w", err))
	}
	return nil
}
