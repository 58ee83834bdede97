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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/apache/burrowdb/burrowd/backend"
)

func TestFlagDefaults(t *testing.T) {
	s := NewServer().(*server)
	fs := s.FlagSet()

	port := fs.Lookup("grpc-port")
	assert.NotNil(t, port)
	assert.Equal(t, "50051", port.DefValue)

	assert.Equal(t, "sqlite", fs.Lookup("kv-backend").DefValue)
	assert.Equal(t, "sqlite", fs.Lookup("blob-backend").DefValue)
	assert.Equal(t, "10.00MiB", fs.Lookup("max-recv-msg-size").DefValue)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		mutate    func(*server)
		name      string
		expectErr error
	}{
		{
			name:   "golden path",
			mutate: func(_ *server) {},
		},
		{
			name: "tls without cert",
			mutate: func(s *server) {
				s.tls = true
				s.keyFile = "key.pem"
			},
			expectErr: errServerCert,
		},
		{
			name: "tls without key",
			mutate: func(s *server) {
				s.tls = true
				s.certFile = "cert.pem"
			},
			expectErr: errServerKey,
		},
		{
			name: "empty kv location",
			mutate: func(s *server) {
				s.kvLocation = ""
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &server{
				host:         "localhost",
				port:         50051,
				kvKind:       backend.KindSQLite,
				blobKind:     backend.KindSQLite,
				kvLocation:   "kv_store.db",
				blobLocation: "blob_store.db",
			}
			tt.mutate(s)
			err := s.Validate()
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}
			if tt.name == "empty kv location" {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
