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
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		raw  any
		want Value
		name string
	}{
		{name: "null", raw: nil, want: NullValue()},
		{name: "int64", raw: int64(-7), want: IntValue(-7)},
		{name: "int32 widens", raw: int32(9), want: IntValue(9)},
		{name: "uint32 widens", raw: uint32(9), want: IntValue(9)},
		{name: "uint64 in range", raw: uint64(10), want: IntValue(10)},
		{name: "float64", raw: 2.5, want: RealValue(2.5)},
		{name: "float32 widens", raw: float32(0.5), want: RealValue(0.5)},
		{name: "text", raw: "hi", want: TextValue("hi")},
		{name: "blob", raw: []byte{1, 2}, want: BlobValue([]byte{1, 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeValue(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeValueUnsupported(t *testing.T) {
	for _, raw := range []any{
		true,
		time.Now(),
		uint64(math.MaxInt64) + 1,
		[]string{"nested"},
	} {
		_, err := normalizeValue(raw)
		assert.ErrorIs(t, err, ErrUnsupportedType, "%T should be unsupported", raw)
	}
}

func TestNormalizeValueCopiesBlob(t *testing.T) {
	raw := []byte{1, 2, 3}
	got, err := normalizeValue(raw)
	require.NoError(t, err)
	raw[0] = 9
	assert.Equal(t, byte(1), got.Blob[0])
}
