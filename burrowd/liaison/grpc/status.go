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
	"context"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/apache/burrowdb/burrowd/backend"
)

// convertToStatus maps a backend error onto the gRPC status it terminates the
// stream with.
func convertToStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, backend.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, backend.ErrUnsupportedOperation):
		return status.Error(codes.Unimplemented, err.Error())
	case errors.Is(err, backend.ErrUnsupportedType):
		return status.Error(codes.Unimplemented, err.Error())
	}
	var connErr *backend.ConnectionError
	if errors.As(err, &connErr) {
		return status.Error(codes.Unavailable, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// recvError normalizes the error returned by a stream's Recv or Send. A
// cancellation initiated by the client ends the stream without an error.
func recvError(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if stat, ok := status.FromError(err); ok && stat.Code() == codes.Canceled {
		return nil
	}
	return err
}
