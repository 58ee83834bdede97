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
	"log"
	"sync"

	"github.com/dgraph-io/badger/v3"

	"github.com/apache/burrowdb/pkg/convert"
	"github.com/apache/burrowdb/pkg/logger"
)

// Region prefixes inside the single badger keyspace. Blob bytes and blob
// metadata live under separate prefixes keyed by the big-endian id, so a
// reverse scan over blobDataRegion yields the highest issued id first.
var (
	kvRegion       = []byte("kv/")
	blobDataRegion = []byte("blob/d/")
	blobMetaRegion = []byte("blob/m/")
)

func kvKey(key string) []byte {
	return append(append([]byte{}, kvRegion...), key...)
}

func blobDataKey(id uint64) []byte {
	return append(append([]byte{}, blobDataRegion...), convert.Uint64ToBytes(id)...)
}

func blobMetaKey(id uint64) []byte {
	return append(append([]byte{}, blobMetaRegion...), convert.Uint64ToBytes(id)...)
}

// badgerStore is the natively concurrent engine. Data operations need no
// store-level lock; only id allocation is serialized.
type badgerStore struct {
	db     *badger.DB
	log    *logger.Logger
	nextID uint64
	idMu   sync.Mutex
}

func openBadger(location Location, l *logger.Logger) (Store, error) {
	l = l.Named("badger")
	opts := badger.DefaultOptions(location.Path).
		WithLogger(&badgerLog{delegated: l}).
		WithInMemory(location.IsInMemory())
	db, err := badger.Open(opts)
	if err != nil {
		return nil, connectionErr(KindBadger, err)
	}
	s := &badgerStore{db: db, log: l}
	if s.nextID, err = scanNextID(db); err != nil {
		_ = db.Close()
		return nil, connectionErr(KindBadger, err)
	}
	l.Info().Uint64("next_id", s.nextID).Msg("backend opened")
	return s, nil
}

// scanNextID seeds the id counter from the highest id present in the data
// region. A counter persisted by a previous process is never trusted; the
// scan is the source of truth after a crash.
func scanNextID(db *badger.DB) (uint64, error) {
	next := uint64(1)
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{Reverse: true, Prefix: blobDataRegion})
		defer it.Close()
		seek := append(append([]byte{}, blobDataRegion...), 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)
		it.Seek(seek)
		if it.ValidForPrefix(blobDataRegion) {
			key := it.Item().Key()
			next = convert.BytesToUint64(key[len(blobDataRegion):]) + 1
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return next, nil
}

func (s *badgerStore) Kind() Kind {
	return KindBadger
}

func (s *badgerStore) KV() KV {
	return badgerKV{s}
}

func (s *badgerStore) Blobs() Blobs {
	return badgerBlobs{s}
}

// Queries reports no capability: badger has no query dialect.
func (s *badgerStore) Queries() (Queries, bool) {
	return nil, false
}

func (s *badgerStore) Close() error {
	if s.db != nil && !s.db.IsClosed() {
		return s.db.Close()
	}
	return nil
}

type badgerKV struct {
	s *badgerStore
}

func (kv badgerKV) Get(_ context.Context, key string) (string, error) {
	var value []byte
	err := kv.s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(kvKey(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if err == badger.ErrKeyNotFound {
		return "", ErrNotFound
	}
	if err != nil {
		return "", backendErr(KindBadger, err)
	}
	return string(value), nil
}

func (kv badgerKV) Set(_ context.Context, key, value string) error {
	err := kv.s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(kvKey(key), []byte(value))
	})
	return backendErr(KindBadger, err)
}

func (kv badgerKV) Delete(_ context.Context, key string) error {
	err := kv.s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(kvKey(key)); err != nil {
			return err
		}
		return txn.Delete(kvKey(key))
	})
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	return backendErr(KindBadger, err)
}

func (kv badgerKV) ValueDigest(ctx context.Context, key string) (Digest, error) {
	value, err := kv.Get(ctx, key)
	if err != nil {
		return Digest{}, err
	}
	return sha256.Sum256([]byte(value)), nil
}

type badgerBlobs struct {
	s *badgerStore
}

func (b badgerBlobs) Get(_ context.Context, id uint64) ([]byte, *string, error) {
	var (
		data     []byte
		metadata *string
	)
	err := b.s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(blobDataKey(id))
		if err != nil {
			return err
		}
		if data, err = item.ValueCopy(nil); err != nil {
			return err
		}
		metaItem, err := txn.Get(blobMetaKey(id))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		metaBytes, err := metaItem.ValueCopy(nil)
		if err != nil {
			return err
		}
		meta := string(metaBytes)
		metadata = &meta
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return nil, nil, ErrNotFound
	}
	if err != nil {
		return nil, nil, backendErr(KindBadger, err)
	}
	return data, metadata, nil
}

func (b badgerBlobs) Store(_ context.Context, data []byte, metadata *string) (uint64, error) {
	b.s.idMu.Lock()
	id := b.s.nextID
	b.s.nextID++
	b.s.idMu.Unlock()
	err := b.s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(blobDataKey(id), data); err != nil {
			return err
		}
		if metadata != nil {
			return txn.Set(blobMetaKey(id), []byte(*metadata))
		}
		return nil
	})
	if err != nil {
		return 0, backendErr(KindBadger, err)
	}
	return id, nil
}

func (b badgerBlobs) Update(_ context.Context, up BlobUpdate) error {
	err := b.s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(blobDataKey(up.ID)); err != nil {
			return err
		}
		if up.UpdateData {
			if err := txn.Set(blobDataKey(up.ID), up.Data); err != nil {
				return err
			}
		}
		if up.UpdateMetadata {
			if up.Metadata == nil {
				err := txn.Delete(blobMetaKey(up.ID))
				if err != nil && err != badger.ErrKeyNotFound {
					return err
				}
				return nil
			}
			return txn.Set(blobMetaKey(up.ID), []byte(*up.Metadata))
		}
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	return backendErr(KindBadger, err)
}

func (b badgerBlobs) Delete(_ context.Context, id uint64) error {
	err := b.s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(blobDataKey(id)); err != nil {
			return err
		}
		if err := txn.Delete(blobDataKey(id)); err != nil {
			return err
		}
		err := txn.Delete(blobMetaKey(id))
		if err != nil && err != badger.ErrKeyNotFound {
			return err
		}
		return nil
	})
	if err == badger.ErrKeyNotFound {
		return ErrNotFound
	}
	return backendErr(KindBadger, err)
}

func (b badgerBlobs) DataDigest(ctx context.Context, id uint64) (Digest, error) {
	data, _, err := b.Get(ctx, id)
	if err != nil {
		return Digest{}, err
	}
	return sha256.Sum256(data), nil
}

// badgerLog delegates the badger logger to zerolog.
type badgerLog struct {
	*log.Logger
	delegated *logger.Logger
}

func (l *badgerLog) Errorf(f string, v ...interface{}) {
	l.delegated.Error().Msgf(f, v...)
}

func (l *badgerLog) Warningf(f string, v ...interface{}) {
	l.delegated.Warn().Msgf(f, v...)
}

func (l *badgerLog) Infof(f string, v ...interface{}) {
	l.delegated.Info().Msgf(f, v...)
}

func (l *badgerLog) Debugf(f string, v ...interface{}) {
	l.delegated.Debug().Msgf(f, v...)
}
