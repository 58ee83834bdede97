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

// Package backend implements the embedded storage engines behind BurrowDB.
// A Store holds one key-value region and one blob region backed by a single
// engine picked at open time.
package backend

import (
	"context"
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"

	"github.com/apache/burrowdb/pkg/logger"
)

// Kind identifies a storage engine.
type Kind string

// The engines compiled into this build.
const (
	KindSQLite Kind = "sqlite"
	KindDuckDB Kind = "duckdb"
	KindBadger Kind = "badger"
)

// ParseKind parses s into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindSQLite, KindDuckDB, KindBadger:
		return Kind(s), nil
	}
	return "", errors.Errorf("unknown backend kind %q", s)
}

// String implements pflag.Value.
func (k *Kind) String() string {
	return string(*k)
}

// Set implements pflag.Value.
func (k *Kind) Set(s string) error {
	parsed, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Type implements pflag.Value.
func (k *Kind) Type() string {
	return "backendKind"
}

// Location is where an engine keeps its data. The zero value is in-memory.
type Location struct {
	Path string
}

// OnDisk returns a Location rooted at path.
func OnDisk(path string) Location {
	return Location{Path: path}
}

// InMemory returns a Location without a backing file.
func InMemory() Location {
	return Location{}
}

// IsInMemory reports whether the Location has no backing file.
func (l Location) IsInMemory() bool {
	return l.Path == ""
}

func (l Location) String() string {
	if l.IsInMemory() {
		return ":memory:"
	}
	return l.Path
}

// Digest is a content digest used by streamed equality comparisons.
type Digest = [sha256.Size]byte

// KV is the key-value region of a Store. Keys and values are strings.
type KV interface {
	// Get returns the value bound to key. ErrNotFound if absent.
	Get(ctx context.Context, key string) (string, error)
	// Set creates or overwrites the binding for key.
	Set(ctx context.Context, key, value string) error
	// Delete removes the binding for key. ErrNotFound if absent.
	Delete(ctx context.Context, key string) error
	// ValueDigest returns the sha256 digest of the value bound to key.
	ValueDigest(ctx context.Context, key string) (Digest, error)
}

// BlobUpdate describes a blob Update operation. Data is only written when
// UpdateData is set; Metadata only when UpdateMetadata is set, with a nil
// Metadata clearing it. An update with neither flag set is a no-op that
// still succeeds.
type BlobUpdate struct {
	Metadata       *string
	Data           []byte
	ID             uint64
	UpdateData     bool
	UpdateMetadata bool
}

// Blobs is the blob region of a Store. Records are addressed by an
// engine-issued id that is never reused for the lifetime of the store.
type Blobs interface {
	// Get returns the bytes and optional metadata of id. ErrNotFound if absent.
	Get(ctx context.Context, id uint64) ([]byte, *string, error)
	// Store writes a new blob record and returns its id.
	Store(ctx context.Context, data []byte, metadata *string) (uint64, error)
	// Update applies up to an existing record. ErrNotFound if absent.
	Update(ctx context.Context, up BlobUpdate) error
	// Delete removes bytes and metadata together. ErrNotFound if absent.
	Delete(ctx context.Context, id uint64) error
	// DataDigest returns the sha256 digest of the bytes of id. Metadata is
	// not part of the digest.
	DataDigest(ctx context.Context, id uint64) (Digest, error)
}

// Queries executes raw statements in the engine's native dialect.
type Queries interface {
	// Query runs text and returns a lazy, non-restartable row iterator.
	Query(ctx context.Context, text string) (RowIter, error)
	// Exec runs text and returns the affected row count reported by the
	// engine.
	Exec(ctx context.Context, text string) (int64, error)
}

// RowIter iterates rows produced by Queries.Query. Next returns io.EOF when
// the rows are exhausted and ErrUnsupportedType when a cell cannot be
// represented as a Value; rows already returned stay valid either way.
type RowIter interface {
	Next() ([]Value, error)
	Close() error
}

// Store is an open engine instance. The capability probe Queries reports
// false for engines without a query dialect.
type Store interface {
	io.Closer
	Kind() Kind
	KV() KV
	Blobs() Blobs
	Queries() (Queries, bool)
}

// Option customizes an opening Store.
type Option func(*options)

type options struct {
	log *logger.Logger
}

// WithLogger sets an external logger into the underlying Store.
func WithLogger(l *logger.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// Open opens a Store of the given kind at location. The region schemas are
// created idempotently before Open returns. Failures surface as
// *ConnectionError.
func Open(kind Kind, location Location, opts ...Option) (Store, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logger.GetLogger("backend")
	}
	switch kind {
	case KindSQLite:
		return openSQLite(location, o.log)
	case KindDuckDB:
		return openDuckDB(location, o.log)
	case KindBadger:
		return openBadger(location, o.log)
	}
	return nil, errors.Errorf("unknown backend kind %q", kind)
}
