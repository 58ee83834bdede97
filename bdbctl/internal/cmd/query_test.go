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

package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	queryv1 "github.com/apache/burrowdb/api/proto/burrowdb/query/v1"
)

func TestParseTarget(t *testing.T) {
	tgt, err := parseTarget("kv")
	require.NoError(t, err)
	assert.Equal(t, queryv1.TargetStore_TARGET_STORE_KV, tgt)

	tgt, err = parseTarget("BLOB")
	require.NoError(t, err)
	assert.Equal(t, queryv1.TargetStore_TARGET_STORE_BLOB, tgt)

	_, err = parseTarget("graph")
	assert.Error(t, err)
}

func TestFormatField(t *testing.T) {
	tests := []struct {
		field *queryv1.Value
		want  string
	}{
		{&queryv1.Value{Kind: &queryv1.Value_Null{Null: true}}, "NULL"},
		{&queryv1.Value{Kind: &queryv1.Value_Integer{Integer: -42}}, "-42"},
		{&queryv1.Value{Kind: &queryv1.Value_Real{Real: 2.5}}, "2.5"},
		{&queryv1.Value{Kind: &queryv1.Value_Text{Text: "hi"}}, "hi"},
		{&queryv1.Value{Kind: &queryv1.Value_Blob{Blob: []byte{0x0a, 0x0b}}}, "0x0a0b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatField(tt.field))
	}
}

func TestParseBlobIDs(t *testing.T) {
	ids, err := parseBlobIDs([]string{"1", "42"})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 42}, ids)

	_, err = parseBlobIDs([]string{"nope"})
	assert.Error(t, err)
}
