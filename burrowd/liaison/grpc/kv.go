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

	kvv1 "github.com/apache/burrowdb/api/proto/burrowdb/kv/v1"
	"github.com/apache/burrowdb/burrowd/backend"
	"github.com/apache/burrowdb/pkg/compare"
	"github.com/apache/burrowdb/pkg/logger"
)

type kvService struct {
	kvv1.UnimplementedKvServiceServer
	kv  backend.KV
	log *logger.Logger
}

// Get streams one response per request, in request order. A missing key
// terminates the stream with NotFound.
func (s *kvService) Get(stream kvv1.KvService_GetServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		value, err := s.kv.Get(ctx, req.GetKey())
		if err != nil {
			s.log.Debug().Err(err).Str("key", req.GetKey()).Msg("get terminated the stream")
			return convertToStatus(err)
		}
		if err := stream.Send(&kvv1.GetResponse{Value: value}); err != nil {
			return recvError(err)
		}
	}
}

func (s *kvService) Set(stream kvv1.KvService_SetServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		if err := s.kv.Set(ctx, req.GetKey(), req.GetValue()); err != nil {
			s.log.Debug().Err(err).Str("key", req.GetKey()).Msg("set terminated the stream")
			return convertToStatus(err)
		}
		if err := stream.Send(&kvv1.SetResponse{Key: req.GetKey()}); err != nil {
			return recvError(err)
		}
	}
}

func (s *kvService) Delete(stream kvv1.KvService_DeleteServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		if err := s.kv.Delete(ctx, req.GetKey()); err != nil {
			s.log.Debug().Err(err).Str("key", req.GetKey()).Msg("delete terminated the stream")
			return convertToStatus(err)
		}
		if err := stream.Send(&kvv1.DeleteResponse{Key: req.GetKey()}); err != nil {
			return recvError(err)
		}
	}
}

func (s *kvService) Eq(stream kvv1.KvService_EqServer) error {
	ctx := stream.Context()
	result, err := compareStream(stream.Recv, func(req *kvv1.EqRequest) (compare.Digest, error) {
		return s.kv.ValueDigest(ctx, req.GetKey())
	}, compare.AllEqual)
	if err != nil {
		return err
	}
	return recvError(stream.SendAndClose(&kvv1.EqResponse{Equal: result}))
}

func (s *kvService) NotEq(stream kvv1.KvService_NotEqServer) error {
	ctx := stream.Context()
	result, err := compareStream(stream.Recv, func(req *kvv1.NotEqRequest) (compare.Digest, error) {
		return s.kv.ValueDigest(ctx, req.GetKey())
	}, compare.AllUnique)
	if err != nil {
		return err
	}
	return recvError(stream.SendAndClose(&kvv1.NotEqResponse{NotEqual: result}))
}

// compareStream folds a request stream through a comparison session. Once the
// session is determined, the remaining requests are drained without touching
// the store. A missing record settles the outcome to false in either mode.
func compareStream[T any](recv func() (T, error), digest func(T) (compare.Digest, error), mode compare.Mode) (bool, error) {
	session := compare.NewSession(mode)
	for {
		req, err := recv()
		if errors.Is(err, io.EOF) {
			return session.Result(), nil
		}
		if err != nil {
			return false, recvError(err)
		}
		if session.Determined() {
			continue
		}
		d, err := digest(req)
		if errors.Is(err, backend.ErrNotFound) {
			session.ObserveMissing()
			continue
		}
		if err != nil {
			return false, convertToStatus(err)
		}
		session.Observe(d)
	}
}
