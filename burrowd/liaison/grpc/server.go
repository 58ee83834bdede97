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

// Package grpc implements the gRPC surface of burrowd. It terminates the
// streaming protocol and dispatches each request item to the backend stores.
package grpc

import (
	"context"
	"net"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/pkg/errors"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	blobv1 "github.com/apache/burrowdb/api/proto/burrowdb/blob/v1"
	kvv1 "github.com/apache/burrowdb/api/proto/burrowdb/kv/v1"
	queryv1 "github.com/apache/burrowdb/api/proto/burrowdb/query/v1"
	"github.com/apache/burrowdb/burrowd/backend"
	"github.com/apache/burrowdb/pkg/logger"
	"github.com/apache/burrowdb/pkg/run"
)

const defaultRecvSize = 10 << 20

var (
	errServerCert = errors.New("invalid server cert file")
	errServerKey  = errors.New("invalid server key file")
	errNoAddr     = errors.New("no address")

	_ run.Unit    = (*server)(nil)
	_ run.Config  = (*server)(nil)
	_ run.Service = (*server)(nil)
)

// Server is the gRPC liaison unit. It owns the listening socket and the two
// backend stores that back the registered services.
type Server interface {
	run.Unit
	run.Config
	run.Service
	GetPort() *uint32
}

type server struct {
	creds          credentials.TransportCredentials
	log            *logger.Logger
	ser            *grpclib.Server
	kvStore        backend.Store
	blobStore      backend.Store
	stopCh         chan struct{}
	kvKind         backend.Kind
	blobKind       backend.Kind
	kvLocation     string
	blobLocation   string
	host           string
	addr           string
	certFile       string
	keyFile        string
	maxRecvMsgSize run.Bytes
	port           uint32
	tls            bool
}

// NewServer returns a liaison server with unopened stores. The stores are
// opened in PreRun once flags have been validated.
func NewServer() Server {
	return &server{
		kvKind:   backend.KindSQLite,
		blobKind: backend.KindSQLite,
	}
}

func (s *server) Name() string {
	return "grpc"
}

func (s *server) GetPort() *uint32 {
	return &s.port
}

func (s *server) FlagSet() *run.FlagSet {
	fs := run.NewFlagSet("grpc")
	s.maxRecvMsgSize = defaultRecvSize
	fs.VarP(&s.maxRecvMsgSize, "max-recv-msg-size", "", "the size of max receiving message")
	fs.BoolVar(&s.tls, "tls", false, "connection uses TLS if true, else plain TCP")
	fs.StringVar(&s.certFile, "cert-file", "", "the TLS cert file")
	fs.StringVar(&s.keyFile, "key-file", "", "the TLS key file")
	fs.StringVar(&s.host, "grpc-host", "", "the host of burrowd listened")
	fs.Uint32Var(&s.port, "grpc-port", 50051, "the port of burrowd listened")
	fs.Var(&s.kvKind, "kv-backend", "the engine backing the key-value store (sqlite, duckdb or badger)")
	fs.Var(&s.blobKind, "blob-backend", "the engine backing the blob store (sqlite, duckdb or badger)")
	fs.StringVar(&s.kvLocation, "kv-location", "kv_store.db", "the path of the key-value store, or :memory:")
	fs.StringVar(&s.blobLocation, "blob-location", "blob_store.db", "the path of the blob store, or :memory:")
	return fs
}

func (s *server) Validate() error {
	s.addr = net.JoinHostPort(s.host, strconv.FormatUint(uint64(s.port), 10))
	if s.addr == ":" {
		return errNoAddr
	}
	if s.kvLocation == "" {
		return errors.New("no key-value store location")
	}
	if s.blobLocation == "" {
		return errors.New("no blob store location")
	}
	if !s.tls {
		return nil
	}
	if s.certFile == "" {
		return errServerCert
	}
	if s.keyFile == "" {
		return errServerKey
	}
	creds, errTLS := credentials.NewServerTLSFromFile(s.certFile, s.keyFile)
	if errTLS != nil {
		return errors.Wrap(errTLS, "failed to load cert and key")
	}
	s.creds = creds
	return nil
}

func (s *server) PreRun(_ context.Context) error {
	s.log = logger.GetLogger("liaison-grpc")
	kvStore, err := backend.Open(s.kvKind, locationOf(s.kvLocation), backend.WithLogger(s.log))
	if err != nil {
		return errors.Wrap(err, "failed to open the key-value store")
	}
	s.kvStore = kvStore
	blobStore, err := backend.Open(s.blobKind, locationOf(s.blobLocation), backend.WithLogger(s.log))
	if err != nil {
		_ = kvStore.Close()
		return errors.Wrap(err, "failed to open the blob store")
	}
	s.blobStore = blobStore
	s.stopCh = make(chan struct{})
	return nil
}

func locationOf(raw string) backend.Location {
	if raw == backend.InMemory().String() {
		return backend.InMemory()
	}
	return backend.OnDisk(raw)
}

func (s *server) Serve() run.StopNotify {
	var opts []grpclib.ServerOption
	if s.tls {
		opts = []grpclib.ServerOption{grpclib.Creds(s.creds)}
	}
	grpcPanicRecoveryHandler := func(p any) (err error) {
		s.log.Error().Interface("panic", p).Str("stack", string(debug.Stack())).Msg("recovered from panic")
		return status.Errorf(codes.Internal, "%s", p)
	}
	streamChain := []grpclib.StreamServerInterceptor{
		recovery.StreamServerInterceptor(recovery.WithRecoveryHandler(grpcPanicRecoveryHandler)),
	}
	unaryChain := []grpclib.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recovery.WithRecoveryHandler(grpcPanicRecoveryHandler)),
	}
	opts = append(opts, grpclib.MaxRecvMsgSize(int(s.maxRecvMsgSize)),
		grpclib.ChainUnaryInterceptor(unaryChain...),
		grpclib.ChainStreamInterceptor(streamChain...),
	)
	s.ser = grpclib.NewServer(opts...)

	kvv1.RegisterKvServiceServer(s.ser, &kvService{kv: s.kvStore.KV(), log: s.log.Named("kv")})
	blobv1.RegisterBlobServiceServer(s.ser, &blobService{blobs: s.blobStore.Blobs(), log: s.log.Named("blob")})
	queryv1.RegisterQueryServiceServer(s.ser, &queryService{
		kvStore:   s.kvStore,
		blobStore: s.blobStore,
		log:       s.log.Named("query"),
	})
	grpc_health_v1.RegisterHealthServer(s.ser, health.NewServer())

	go func() {
		lis, err := net.Listen("tcp", s.addr)
		if err != nil {
			s.log.Error().Err(err).Msg("failed to listen")
			close(s.stopCh)
			return
		}
		s.log.Info().Str("addr", s.addr).Msg("listening to")
		err = s.ser.Serve(lis)
		if err != nil {
			s.log.Error().Err(err).Msg("server is interrupted")
		}
		close(s.stopCh)
	}()
	return s.stopCh
}

func (s *server) GracefulStop() {
	s.log.Info().Msg("stopping")
	stopped := make(chan struct{})
	go func() {
		s.ser.GracefulStop()
		close(stopped)
	}()

	t := time.NewTimer(10 * time.Second)
	select {
	case <-t.C:
		s.ser.Stop()
		s.log.Info().Msg("force stopped")
	case <-stopped:
		t.Stop()
		s.log.Info().Msg("stopped gracefully")
	}
	if s.blobStore != nil {
		if err := s.blobStore.Close(); err != nil {
			s.log.Error().Err(err).Msg("failed to close the blob store")
		}
	}
	if s.kvStore != nil {
		if err := s.kvStore.Close(); err != nil {
			s.log.Error().Err(err).Msg("failed to close the key-value store")
		}
	}
}
