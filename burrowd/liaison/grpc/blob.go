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

	blobv1 "github.com/apache/burrowdb/api/proto/burrowdb/blob/v1"
	"github.com/apache/burrowdb/burrowd/backend"
	"github.com/apache/burrowdb/pkg/compare"
	"github.com/apache/burrowdb/pkg/logger"
)

type blobService struct {
	blobv1.UnimplementedBlobServiceServer
	blobs backend.Blobs
	log   *logger.Logger
}

func (s *blobService) Get(stream blobv1.BlobService_GetServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		data, metadata, err := s.blobs.Get(ctx, req.GetId())
		if err != nil {
			s.log.Debug().Err(err).Uint64("id", req.GetId()).Msg("get terminated the stream")
			return convertToStatus(err)
		}
		if err := stream.Send(&blobv1.GetResponse{Data: data, Metadata: metadata}); err != nil {
			return recvError(err)
		}
	}
}

func (s *blobService) Store(stream blobv1.BlobService_StoreServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		id, err := s.blobs.Store(ctx, req.GetData(), req.Metadata)
		if err != nil {
			s.log.Debug().Err(err).Msg("store terminated the stream")
			return convertToStatus(err)
		}
		if err := stream.Send(&blobv1.StoreResponse{Id: id}); err != nil {
			return recvError(err)
		}
	}
}

func (s *blobService) Update(stream blobv1.BlobService_UpdateServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		update := backend.BlobUpdate{
			ID:             req.GetId(),
			Data:           req.GetData(),
			UpdateData:     req.Data != nil,
			Metadata:       req.Metadata,
			UpdateMetadata: req.GetShouldUpdateMetadata(),
		}
		if err := s.blobs.Update(ctx, update); err != nil {
			s.log.Debug().Err(err).Uint64("id", req.GetId()).Msg("update terminated the stream")
			return convertToStatus(err)
		}
		if err := stream.Send(&blobv1.UpdateResponse{Id: req.GetId()}); err != nil {
			return recvError(err)
		}
	}
}

func (s *blobService) Delete(stream blobv1.BlobService_DeleteServer) error {
	ctx := stream.Context()
	for {
		req, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return recvError(err)
		}
		if err := s.blobs.Delete(ctx, req.GetId()); err != nil {
			s.log.Debug().Err(err).Uint64("id", req.GetId()).Msg("delete terminated the stream")
			return convertToStatus(err)
		}
		if err := stream.Send(&blobv1.DeleteResponse{Id: req.GetId()}); err != nil {
			return recvError(err)
		}
	}
}

// EqData compares blob bytes only. Metadata never participates in the
// comparison.
func (s *blobService) EqData(stream blobv1.BlobService_EqDataServer) error {
	ctx := stream.Context()
	result, err := compareStream(stream.Recv, func(req *blobv1.EqDataRequest) (compare.Digest, error) {
		return s.blobs.DataDigest(ctx, req.GetId())
	}, compare.AllEqual)
	if err != nil {
		return err
	}
	return recvError(stream.SendAndClose(&blobv1.EqDataResponse{Equal: result}))
}

func (s *blobService) NotEqData(stream blobv1.BlobService_NotEqDataServer) error {
	ctx := stream.Context()
	result, err := compareStream(stream.Recv, func(req *blobv1.NotEqDataRequest) (compare.Digest, error) {
		return s.blobs.DataDigest(ctx, req.GetId())
	}, compare.AllUnique)
	if err != nil {
		return err
	}
	return recvError(stream.SendAndClose(&blobv1.NotEqDataResponse{NotEqual: result}))
}
