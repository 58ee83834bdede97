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

package grpc

import (
	"io"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	queryv1 "github.com/apache/burrowdb/api/proto/burrowdb/query/v1"
	"github.com/apache/burrowdb/burrowd/backend"
	"github.com/apache/burrowdb/pkg/logger"
)

// stubRowIter yields its rows in order, then err if set, then io.EOF.
type stubRowIter struct {
	err    error
	rows   [][]backend.Value
	closed bool
}

func (i *stubRowIter) Next() ([]backend.Value, error) {
	if len(i.rows) == 0 {
		if i.err != nil {
			return nil, i.err
		}
		return nil, io.EOF
	}
	row := i.rows[0]
	i.rows = i.rows[1:]
	return row, nil
}

func (i *stubRowIter) Close() error {
	i.closed = true
	return nil
}

type captureQueryStream struct {
	grpclib.ServerStream
	sent []*queryv1.QueryResult
}

func (s *captureQueryStream) Send(r *queryv1.QueryResult) error {
	s.sent = append(s.sent, r)
	return nil
}

func (s *captureQueryStream) Recv() (*queryv1.RawQuery, error) {
	return nil, io.EOF
}

func TestSendRowsDeliversPrefixBeforeUnsupportedType(t *testing.T) {
	svc := &queryService{log: logger.GetLogger("query")}
	iter := &stubRowIter{
		rows: [][]backend.Value{
			{backend.IntValue(7)},
			{backend.TextValue("txt")},
		},
		err: errors.Wrap(backend.ErrUnsupportedType, "engine value of type bool"),
	}
	stream := &captureQueryStream{}

	err := svc.sendRows(stream, iter)
	require.Error(t, err)
	assert.Equal(t, codes.Unimplemented, status.Code(err))
	// the rows produced before the bad cell stay delivered
	require.Len(t, stream.sent, 2)
	assert.Equal(t, int64(7), stream.sent[0].GetFields()[0].GetInteger())
	assert.Equal(t, "txt", stream.sent[1].GetFields()[0].GetText())
	assert.True(t, iter.closed)
}

func TestSendRowsClosesIterOnEOF(t *testing.T) {
	svc := &queryService{log: logger.GetLogger("query")}
	iter := &stubRowIter{rows: [][]backend.Value{{backend.NullValue()}}}
	stream := &captureQueryStream{}

	require.NoError(t, svc.sendRows(stream, iter))
	require.Len(t, stream.sent, 1)
	assert.True(t, stream.sent[0].GetFields()[0].GetNull())
	assert.True(t, iter.closed)
}
