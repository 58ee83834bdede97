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
	"crypto/sha256"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testKinds returns the engines every contract test runs against. The
// duckdb bindings link a full columnar engine, so short mode leaves it out.
func testKinds(t *testing.T) []Kind {
	kinds := []Kind{KindSQLite, KindBadger}
	if !testing.Short() {
		kinds = append(kinds, KindDuckDB)
	}
	return kinds
}

func openTestStore(t *testing.T, kind Kind) Store {
	t.Helper()
	store, err := Open(kind, InMemory())
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestKVContract(t *testing.T) {
	for _, kind := range testKinds(t) {
		t.Run(string(kind), func(t *testing.T) {
			ctx := context.Background()
			kv := openTestStore(t, kind).KV()

			_, err := kv.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Set(ctx, "city", "porto"))
			got, err := kv.Get(ctx, "city")
			require.NoError(t, err)
			assert.Equal(t, "porto", got)

			// set is an upsert
			require.NoError(t, kv.Set(ctx, "city", "lisbon"))
			got, err = kv.Get(ctx, "city")
			require.NoError(t, err)
			assert.Equal(t, "lisbon", got)

			digest, err := kv.ValueDigest(ctx, "city")
			require.NoError(t, err)
			assert.Equal(t, Digest(sha256.Sum256([]byte("lisbon"))), digest)

			require.NoError(t, kv.Delete(ctx, "city"))
			_, err = kv.Get(ctx, "city")
			assert.ErrorIs(t, err, ErrNotFound)

			// deleting again is not a silent no-op
			assert.ErrorIs(t, kv.Delete(ctx, "city"), ErrNotFound)
			_, err = kv.ValueDigest(ctx, "city")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestBlobContract(t *testing.T) {
	for _, kind := range testKinds(t) {
		t.Run(string(kind), func(t *testing.T) {
			ctx := context.Background()
			blobs := openTestStore(t, kind).Blobs()

			_, _, err := blobs.Get(ctx, 42)
			assert.ErrorIs(t, err, ErrNotFound)

			id, err := blobs.Store(ctx, []byte{0xde, 0xad}, nil)
			require.NoError(t, err)
			id2, err := blobs.Store(ctx, []byte{0xbe, 0xef}, strPtr("second"))
			require.NoError(t, err)
			assert.NotEqual(t, id, id2)

			data, metadata, err := blobs.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, []byte{0xde, 0xad}, data)
			assert.Nil(t, metadata)

			data, metadata, err = blobs.Get(ctx, id2)
			require.NoError(t, err)
			assert.Equal(t, []byte{0xbe, 0xef}, data)
			require.NotNil(t, metadata)
			assert.Equal(t, "second", *metadata)

			digest, err := blobs.DataDigest(ctx, id2)
			require.NoError(t, err)
			assert.Equal(t, Digest(sha256.Sum256([]byte{0xbe, 0xef})), digest)

			// data update leaves metadata alone
			require.NoError(t, blobs.Update(ctx, BlobUpdate{ID: id2, Data: []byte{0x01}, UpdateData: true}))
			data, metadata, err = blobs.Get(ctx, id2)
			require.NoError(t, err)
			assert.Equal(t, []byte{0x01}, data)
			require.NotNil(t, metadata)
			assert.Equal(t, "second", *metadata)

			// metadata can be cleared without touching data
			require.NoError(t, blobs.Update(ctx, BlobUpdate{ID: id2, UpdateMetadata: true}))
			data, metadata, err = blobs.Get(ctx, id2)
			require.NoError(t, err)
			assert.Equal(t, []byte{0x01}, data)
			assert.Nil(t, metadata)

			// a no-op update still succeeds on an existing record
			require.NoError(t, blobs.Update(ctx, BlobUpdate{ID: id}))
			assert.ErrorIs(t, blobs.Update(ctx, BlobUpdate{ID: 9999, Data: []byte{0x02}, UpdateData: true}), ErrNotFound)
			assert.ErrorIs(t, blobs.Update(ctx, BlobUpdate{ID: 9999}), ErrNotFound)

			require.NoError(t, blobs.Delete(ctx, id2))
			_, _, err = blobs.Get(ctx, id2)
			assert.ErrorIs(t, err, ErrNotFound)
			assert.ErrorIs(t, blobs.Delete(ctx, id2), ErrNotFound)
		})
	}
}

func TestQueriesCapability(t *testing.T) {
	sqlStore := openTestStore(t, KindSQLite)
	_, ok := sqlStore.Queries()
	assert.True(t, ok)

	badgerStore := openTestStore(t, KindBadger)
	_, ok = badgerStore.Queries()
	assert.False(t, ok)

	if !testing.Short() {
		duckStore := openTestStore(t, KindDuckDB)
		_, ok = duckStore.Queries()
		assert.True(t, ok)
	}
}

func TestSQLiteSecondHandleOnSameFileFails(t *testing.T) {
	if testing.Short() {
		t.Skip("waits out the sqlite busy timeout")
	}
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "kv_store.db")
	store, err := Open(KindSQLite, OnDisk(path))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	// exclusive locking mode retains the file lock after the first write
	require.NoError(t, store.KV().Set(ctx, "city", "porto"))

	second, err := Open(KindSQLite, OnDisk(path))
	if second != nil {
		_ = second.Close()
	}
	require.Error(t, err)
	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
}

func TestSQLiteRawQuery(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, KindSQLite)
	queries, ok := store.Queries()
	require.True(t, ok)

	kv := store.KV()
	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "b", "2"))

	iter, err := queries.Query(ctx, "SELECT key, value FROM kv ORDER BY key")
	require.NoError(t, err)
	row, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, []Value{TextValue("a"), TextValue("1")}, row)
	row, err = iter.Next()
	require.NoError(t, err)
	assert.Equal(t, []Value{TextValue("b"), TextValue("2")}, row)
	_, err = iter.Next()
	assert.ErrorIs(t, err, io.EOF)
	require.NoError(t, iter.Close())

	n, err := queries.Exec(ctx, "DELETE FROM kv")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestDuckDBRawQuery(t *testing.T) {
	if testing.Short() {
		t.Skip("duckdb bindings link a full columnar engine")
	}
	ctx := context.Background()
	store := openTestStore(t, KindDuckDB)
	queries, ok := store.Queries()
	require.True(t, ok)

	kv := store.KV()
	require.NoError(t, kv.Set(ctx, "a", "1"))
	require.NoError(t, kv.Set(ctx, "b", "2"))

	iter, err := queries.Query(ctx, "SELECT key, value FROM kv ORDER BY key")
	require.NoError(t, err)
	row, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, []Value{TextValue("a"), TextValue("1")}, row)
	row, err = iter.Next()
	require.NoError(t, err)
	assert.Equal(t, []Value{TextValue("b"), TextValue("2")}, row)
	_, err = iter.Next()
	assert.ErrorIs(t, err, io.EOF)
	require.NoError(t, iter.Close())

	n, err := queries.Exec(ctx, "DELETE FROM kv")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestSQLiteRawQueryScalarKinds(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, KindSQLite)
	queries, ok := store.Queries()
	require.True(t, ok)

	iter, err := queries.Query(ctx, "SELECT NULL, 7, 2.5, 'txt', x'0a0b'")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, iter.Close())
	}()
	row, err := iter.Next()
	require.NoError(t, err)
	assert.Equal(t, []Value{
		NullValue(),
		IntValue(7),
		RealValue(2.5),
		TextValue("txt"),
		BlobValue([]byte{0x0a, 0x0b}),
	}, row)
}

func TestRawExecSharesStoreLock(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t, KindSQLite)
	queries, ok := store.Queries()
	require.True(t, ok)
	kv := store.KV()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("key-%d", i)
			assert.NoError(t, kv.Set(ctx, key, "v"))
			_, err := queries.Exec(ctx, fmt.Sprintf("UPDATE kv SET value = 'w' WHERE key = 'key-%d'", i))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		got, err := kv.Get(ctx, fmt.Sprintf("key-%d", i))
		require.NoError(t, err)
		assert.Equal(t, "w", got)
	}
}

func TestOpenUnknownKind(t *testing.T) {
	_, err := Open(Kind("paper"), InMemory())
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	for _, kind := range []Kind{KindSQLite, KindDuckDB, KindBadger} {
		parsed, err := ParseKind(string(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ParseKind("rocksdb")
	assert.Error(t, err)
}
