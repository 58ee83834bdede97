// Licensed to Apache Software Foundation (ASF) under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Apache Software Foundation (ASF) licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package backend

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apache/burrowdb/pkg/test"
)

func TestBadgerIDRecovery(t *testing.T) {
	ctx := context.Background()
	dir, cleanup := test.Space(require.New(t))
	defer cleanup()

	store, err := Open(KindBadger, OnDisk(dir))
	require.NoError(t, err)
	var last uint64
	for i := 0; i < 3; i++ {
		last, err = store.Blobs().Store(ctx, []byte{byte(i)}, nil)
		require.NoError(t, err)
	}
	require.NoError(t, store.Close())

	// a reopened store seeds its counter from the persisted records, so
	// the next id continues past the highest one issued before the close
	store, err = Open(KindBadger, OnDisk(dir))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()
	id, err := store.Blobs().Store(ctx, []byte{0xff}, nil)
	require.NoError(t, err)
	assert.Equal(t, last+1, id)
}

func TestBadgerIDAllocationConcurrent(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, KindBadger)
	blobs := store.Blobs()

	const n = 64
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id, err := blobs.Store(ctx, []byte(fmt.Sprintf("payload-%d", i)), nil)
			assert.NoError(t, err)
			ids[i] = id
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]struct{}, n)
	for _, id := range ids {
		_, dup := seen[id]
		assert.False(t, dup, "id %d issued twice", id)
		seen[id] = struct{}{}
	}
}

func TestBadgerConcurrentWritesNoTearing(t *testing.T) {
	ctx := context.Background()
	kv := openTestStore(t, KindBadger).KV()

	const n = 32
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, kv.Set(ctx, fmt.Sprintf("k%d", i), fmt.Sprintf("v%d", i)))
		}(i)
	}
	wg.Wait()

	for i := 0; i < n; i++ {
		got, err := kv.Get(ctx, fmt.Sprintf("k%d", i))
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("v%d", i), got)
	}
}
