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

// Package compare implements streamed equality comparisons over content
// digests. A session holds one sha256 digest per distinct item seen instead
// of the items themselves, so memory stays bounded by the number of
// distinct items, not their size.
package compare

import "crypto/sha256"

// Digest is the sha256 content digest a session compares.
type Digest = [sha256.Size]byte

// Sum digests b.
func Sum(b []byte) Digest {
	return sha256.Sum256(b)
}

// Mode selects the comparison a Session performs.
type Mode int

const (
	// AllEqual determines whether every observed item equals the first.
	AllEqual Mode = iota
	// AllUnique determines whether no two observed items are equal.
	AllUnique
)

// Session is a tri-state comparison over a stream of digests. It starts
// collecting, and flips to determined as soon as the outcome is fixed;
// once determined, further observations are absorbed without lookups so
// the caller can keep draining its input stream.
type Session struct {
	seen       map[Digest]struct{}
	reference  Digest
	mode       Mode
	outcome    bool
	determined bool
	started    bool
}

// NewSession returns a collecting Session in the given mode.
func NewSession(mode Mode) *Session {
	s := &Session{mode: mode}
	if mode == AllUnique {
		s.seen = make(map[Digest]struct{})
	}
	return s
}

// Determined reports whether the outcome is already fixed. Callers stop
// issuing lookups once it returns true.
func (s *Session) Determined() bool {
	return s.determined
}

// Observe feeds the digest of one present item.
func (s *Session) Observe(d Digest) {
	if s.determined {
		return
	}
	switch s.mode {
	case AllEqual:
		if !s.started {
			s.started = true
			s.reference = d
			return
		}
		if d != s.reference {
			s.determined = true
			s.outcome = false
		}
	case AllUnique:
		if _, dup := s.seen[d]; dup {
			s.determined = true
			s.outcome = false
			return
		}
		s.seen[d] = struct{}{}
	}
}

// ObserveMissing feeds one absent item. A missing item fails either mode.
func (s *Session) ObserveMissing() {
	if s.determined {
		return
	}
	s.determined = true
	s.outcome = false
}

// Result returns the outcome. End of input while still collecting resolves
// to true: an all-equal or all-unique claim over what was seen holds
// vacuously, including over an empty stream.
func (s *Session) Result() bool {
	if s.determined {
		return s.outcome
	}
	return true
}
