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

// Package store provides the key-value persistence used to keep computed partitions.
package store

import (
	"context"
)

// Store is a flat key-value store. Implementations return an errdefs.ErrNotFound
// error when reading or deleting a key which does not exist.
type Store interface {
	// Get returns the value associated with key.
	Get(ctx context.Context, key string) (string, error)
	// Put sets the value associated with key, overwriting any previous one.
	Put(ctx context.Context, key, value string) error
	// Delete removes key.
	Delete(ctx context.Context, key string) error
}
