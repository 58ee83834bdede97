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
	"database/sql"
	"io"
	"sync"

	"github.com/apache/burrowdb/pkg/logger"
)

// sqlDialect carries the engine-specific statements of a database/sql
// backed store. Both regions are created idempotently by schema.
type sqlDialect struct {
	kind       Kind
	schema     []string
	insertBlob string
	getBlob    string
	updateBoth string
	updateData string
	updateMeta string
	deleteBlob string
	getData    string
}

// sqlStore serves both regions from one database/sql handle. The engines
// behind it are single-writer, so every operation runs under mu, held per
// operation rather than per streamed call.
type sqlStore struct {
	db  *sql.DB
	log *logger.Logger
	d   sqlDialect
	mu  sync.Mutex
}

func openSQL(db *sql.DB, d sqlDialect, log *logger.Logger) (*sqlStore, error) {
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, connectionErr(d.kind, err)
	}
	// one writer at a time; the mutex serializes callers, this keeps the
	// pool from handing out a second connection underneath them
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	for _, stmt := range d.schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, connectionErr(d.kind, err)
		}
	}
	log.Info().Str("kind", string(d.kind)).Msg("backend opened")
	return &sqlStore{db: db, d: d, log: log}, nil
}

func (s *sqlStore) Kind() Kind {
	return s.d.kind
}

func (s *sqlStore) KV() KV {
	return sqlKV{s}
}

func (s *sqlStore) Blobs() Blobs {
	return sqlBlobs{s}
}

func (s *sqlStore) Queries() (Queries, bool) {
	return sqlQueries{s}, true
}

func (s *sqlStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

type sqlKV struct {
	s *sqlStore
}

func (kv sqlKV) Get(ctx context.Context, key string) (string, error) {
	kv.s.mu.Lock()
	defer kv.s.mu.Unlock()
	var value string
	err := kv.s.db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", backendErr(kv.s.d.kind, err)
	}
	return value, nil
}

func (kv sqlKV) Set(ctx context.Context, key, value string) error {
	kv.s.mu.Lock()
	defer kv.s.mu.Unlock()
	_, err := kv.s.db.ExecContext(ctx, "INSERT OR REPLACE INTO kv (key, value) VALUES (?, ?)", key, value)
	return backendErr(kv.s.d.kind, err)
}

func (kv sqlKV) Delete(ctx context.Context, key string) error {
	kv.s.mu.Lock()
	defer kv.s.mu.Unlock()
	res, err := kv.s.db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key)
	if err != nil {
		return backendErr(kv.s.d.kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return backendErr(kv.s.d.kind, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (kv sqlKV) ValueDigest(ctx context.Context, key string) (Digest, error) {
	value, err := kv.Get(ctx, key)
	if err != nil {
		return Digest{}, err
	}
	return sha256.Sum256([]byte(value)), nil
}

type sqlBlobs struct {
	s *sqlStore
}

func (b sqlBlobs) Get(ctx context.Context, id uint64) ([]byte, *string, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	var (
		data     []byte
		metadata sql.NullString
	)
	err := b.s.db.QueryRowContext(ctx, b.s.d.getBlob, int64(id)).Scan(&data, &metadata)
	if err == sql.ErrNoRows {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, backendErr(b.s.d.kind, err)
	}
	if !metadata.Valid {
		return data, nil, nil
	}
	return data, &metadata.String, nil
}

func (b sqlBlobs) Store(ctx context.Context, data []byte, metadata *string) (uint64, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	var id int64
	err := b.s.db.QueryRowContext(ctx, b.s.d.insertBlob, data, nullable(metadata)).Scan(&id)
	if err != nil {
		return 0, backendErr(b.s.d.kind, err)
	}
	return uint64(id), nil
}

func (b sqlBlobs) Update(ctx context.Context, up BlobUpdate) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	var (
		res sql.Result
		err error
	)
	switch {
	case up.UpdateData && up.UpdateMetadata:
		res, err = b.s.db.ExecContext(ctx, b.s.d.updateBoth, up.Data, nullable(up.Metadata), int64(up.ID))
	case up.UpdateData:
		res, err = b.s.db.ExecContext(ctx, b.s.d.updateData, up.Data, int64(up.ID))
	case up.UpdateMetadata:
		res, err = b.s.db.ExecContext(ctx, b.s.d.updateMeta, nullable(up.Metadata), int64(up.ID))
	default:
		// a no-op update still verifies the record exists
		var data []byte
		err = b.s.db.QueryRowContext(ctx, b.s.d.getData, int64(up.ID)).Scan(&data)
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return backendErr(b.s.d.kind, err)
	}
	if err != nil {
		return backendErr(b.s.d.kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return backendErr(b.s.d.kind, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (b sqlBlobs) Delete(ctx context.Context, id uint64) error {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	res, err := b.s.db.ExecContext(ctx, b.s.d.deleteBlob, int64(id))
	if err != nil {
		return backendErr(b.s.d.kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return backendErr(b.s.d.kind, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (b sqlBlobs) DataDigest(ctx context.Context, id uint64) (Digest, error) {
	b.s.mu.Lock()
	defer b.s.mu.Unlock()
	var data []byte
	err := b.s.db.QueryRowContext(ctx, b.s.d.getData, int64(id)).Scan(&data)
	if err == sql.ErrNoRows {
		return Digest{}, ErrNotFound
	}
	if err != nil {
		return Digest{}, backendErr(b.s.d.kind, err)
	}
	return sha256.Sum256(data), nil
}

type sqlQueries struct {
	s *sqlStore
}

func (q sqlQueries) Query(ctx context.Context, text string) (RowIter, error) {
	q.s.mu.Lock()
	rows, err := q.s.db.QueryContext(ctx, text)
	if err != nil {
		q.s.mu.Unlock()
		return nil, backendErr(q.s.d.kind, err)
	}
	// the iterator owns the lock until Close; raw reads may not interleave
	// with typed mutations on a single-writer engine
	return &sqlRowIter{s: q.s, rows: rows}, nil
}

func (q sqlQueries) Exec(ctx context.Context, text string) (int64, error) {
	q.s.mu.Lock()
	defer q.s.mu.Unlock()
	res, err := q.s.db.ExecContext(ctx, text)
	if err != nil {
		return 0, backendErr(q.s.d.kind, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, backendErr(q.s.d.kind, err)
	}
	return n, nil
}

type sqlRowIter struct {
	s      *sqlStore
	rows   *sql.Rows
	closed bool
}

func (it *sqlRowIter) Next() ([]Value, error) {
	if it.closed {
		return nil, errIterClosed
	}
	if !it.rows.Next() {
		if err := it.rows.Err(); err != nil {
			return nil, backendErr(it.s.d.kind, err)
		}
		return nil, io.EOF
	}
	cols, err := it.rows.Columns()
	if err != nil {
		return nil, backendErr(it.s.d.kind, err)
	}
	raw := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range raw {
		ptrs[i] = &raw[i]
	}
	if err := it.rows.Scan(ptrs...); err != nil {
		return nil, backendErr(it.s.d.kind, err)
	}
	values := make([]Value, len(raw))
	for i := range raw {
		if values[i], err = normalizeValue(raw[i]); err != nil {
			return nil, err
		}
	}
	return values, nil
}

func (it *sqlRowIter) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	defer it.s.mu.Unlock()
	return it.rows.Close()
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
