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

package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllEqual(t *testing.T) {
	a, b := Sum([]byte("a")), Sum([]byte("b"))

	tests := []struct {
		name    string
		observe []Digest
		want    bool
	}{
		{name: "empty stream", observe: nil, want: true},
		{name: "single item", observe: []Digest{a}, want: true},
		{name: "all same", observe: []Digest{a, a, a}, want: true},
		{name: "mismatch", observe: []Digest{a, b}, want: false},
		{name: "mismatch then match again", observe: []Digest{a, b, a}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(AllEqual)
			for _, d := range tt.observe {
				s.Observe(d)
			}
			assert.Equal(t, tt.want, s.Result())
		})
	}
}

func TestAllUnique(t *testing.T) {
	a, b, c := Sum([]byte("a")), Sum([]byte("b")), Sum([]byte("c"))

	tests := []struct {
		name    string
		observe []Digest
		want    bool
	}{
		{name: "empty stream", observe: nil, want: true},
		{name: "single item", observe: []Digest{a}, want: true},
		{name: "all distinct", observe: []Digest{a, b, c}, want: true},
		{name: "repeat", observe: []Digest{a, b, a}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(AllUnique)
			for _, d := range tt.observe {
				s.Observe(d)
			}
			assert.Equal(t, tt.want, s.Result())
		})
	}
}

func TestMissingItemFailsEitherMode(t *testing.T) {
	for _, mode := range []Mode{AllEqual, AllUnique} {
		s := NewSession(mode)
		s.Observe(Sum([]byte("a")))
		s.ObserveMissing()
		assert.True(t, s.Determined())
		assert.False(t, s.Result())
	}
}

func TestDeterminedAbsorbsFurtherInput(t *testing.T) {
	a, b := Sum([]byte("a")), Sum([]byte("b"))
	s := NewSession(AllEqual)
	s.Observe(a)
	s.Observe(b)
	assert.True(t, s.Determined())

	// draining the rest of the stream must not flip the outcome
	s.Observe(a)
	s.Observe(a)
	s.ObserveMissing()
	assert.False(t, s.Result())
}

func TestDeterminedStateIsSticky(t *testing.T) {
	s := NewSession(AllUnique)
	assert.False(t, s.Determined())
	s.Observe(Sum([]byte("x")))
	assert.False(t, s.Determined())
	s.Observe(Sum([]byte("x")))
	assert.True(t, s.Determined())
	s.Observe(Sum([]byte("y")))
	assert.True(t, s.Determined())
}
