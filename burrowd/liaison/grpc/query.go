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

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	queryv1 "github.com/apache/burrowdb/api/proto/burrowdb/query/v1"
	"github.com/apache/burrowdb/burrowd/backend"
	"github.com/apache/burrowdb/pkg/logger"
)

type queryService struct {
	queryv1.UnimplementedQueryServiceServer
	kvStore   backend.Store
	blobStore backend.Store
	log       *logger.Logger
}

func (s *queryService) target(t queryv1.TargetStore) (backend.Queries, error) {
	var store backend.Store
	switch t {
	case queryv1.TargetStore_TARGET_STORE_KV:
		store = s.kvStore
	case queryv1.TargetStore_TARGET_STORE_BLOB:
		store = s.blobStore
	default:
		return nil, status.Error(codes.InvalidArgument, "unknown target store")
	}
	queries, ok := store.Queries()
	if !ok {
		return nil, status.Errorf(codes.Unimplemented, "raw queries are not supported by the %s backend", store.Kind())
	}
	return queries, nil
}

// Query streams the result rows of each query before moving to the next
// request. A row holding a value outside the wire type set terminates the
// stream after the rows already sent.
func (s *queryService) Query(stream queryv1.QueryService_QueryServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		queries, err := s.target(req.GetTarget())
		if err != nil {
			return err
		}
		iter, err := queries.Query(ctx, req.GetQuery())
		if err != nil {
			return convertToStatus(err)
		}
		if err := s.sendRows(stream, iter); err != nil {
			return err
		}
	}
}

func (s *queryService) sendRows(stream queryv1.QueryService_QueryServer, iter backend.RowIter) error {
	defer func() {
		if err := iter.Close(); err != nil {
			s.log.Warn().Err(err).Msg("failed to close the row iterator")
		}
	}()
	for {
		row, err := iter.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return convertToStatus(err)
		}
		fields := make([]*queryv1.Value, 0, len(row))
		for _, v := range row {
			fields = append(fields, encodeValue(v))
		}
		if err := stream.Send(&queryv1.QueryResult{Fields: fields}); err != nil {
			return recvError(err)
		}
	}
}

func (s *queryService) Execute(stream queryv1.QueryService_ExecuteServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		queries, err := s.target(req.GetTarget())
		if err != nil {
			return err
		}
		changed, err := queries.Exec(ctx, req.GetQuery())
		if err != nil {
			return convertToStatus(err)
		}
		if err := stream.Send(&queryv1.RowsChanged{RowsChanged: uint64(changed)}); err != nil {
			return recvError(err)
		}
	}
}

func encodeValue(v backend.Value) *queryv1.Value {
	switch v.Kind {
	case backend.ValueInteger:
		return &queryv1.Value{Kind: &queryv1.Value_Integer{Integer: v.Int}}
	case backend.ValueReal:
		return &queryv1.Value{Kind: &queryv1.Value_Real{Real: v.Real}}
	case backend.ValueText:
		return &queryv1.Value{Kind: &queryv1.Value_Text{Text: v.Text}}
	case backend.ValueBlob:
		return &queryv1.Value{Kind: &queryv1.Value_Blob{Blob: v.Blob}}
	default:
		return &queryv1.Value{Kind: &queryv1.Value_Null{Null: true}}
	}
}
