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
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	blobv1 "github.com/apache/burrowdb/api/proto/burrowdb/blob/v1"
	kvv1 "github.com/apache/burrowdb/api/proto/burrowdb/kv/v1"
	queryv1 "github.com/apache/burrowdb/api/proto/burrowdb/query/v1"
	"github.com/apache/burrowdb/burrowd/backend"
	"github.com/apache/burrowdb/pkg/test"
	testflags "github.com/apache/burrowdb/pkg/test/flags"
)

// setup boots a liaison over in-memory stores on a free localhost port and
// returns a client connection to it.
func setup(t *testing.T, kvKind, blobKind backend.Kind) *grpclib.ClientConn {
	t.Helper()
	ports, err := test.AllocateFreePorts(1)
	require.NoError(t, err)

	s := NewServer().(*server)
	s.host = "localhost"
	s.port = uint32(ports[0])
	s.kvKind = kvKind
	s.blobKind = blobKind
	s.kvLocation = ":memory:"
	s.blobLocation = ":memory:"
	require.NoError(t, s.Validate())
	require.NoError(t, s.PreRun(context.Background()))
	stopCh := s.Serve()
	require.Eventually(t, func() bool {
		c, dialErr := net.Dial("tcp", fmt.Sprintf("localhost:%d", ports[0]))
		if dialErr != nil {
			return false
		}
		_ = c.Close()
		return true
	}, testflags.EventuallyTimeout, 100*time.Millisecond)
	t.Cleanup(func() {
		s.GracefulStop()
		select {
		case <-stopCh:
		case <-time.After(15 * time.Second):
			t.Error("server did not stop")
		}
	})

	conn, err := grpclib.NewClient(fmt.Sprintf("localhost:%d", ports[0]),
		grpclib.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func kvSet(t *testing.T, client kvv1.KvServiceClient, pairs map[string]string) {
	t.Helper()
	stream, err := client.Set(context.Background())
	require.NoError(t, err)
	for k, v := range pairs {
		require.NoError(t, stream.Send(&kvv1.SetRequest{Key: k, Value: v}))
		resp, errRecv := stream.Recv()
		require.NoError(t, errRecv)
		assert.Equal(t, k, resp.GetKey())
	}
	require.NoError(t, stream.CloseSend())
}

func TestKvRoundTrip(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := kvv1.NewKvServiceClient(conn)
	ctx := context.Background()

	kvSet(t, client, map[string]string{"alpha": "1", "beta": "2"})

	get, err := client.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, get.Send(&kvv1.GetRequest{Key: "alpha"}))
	resp, err := get.Recv()
	require.NoError(t, err)
	assert.Equal(t, "1", resp.GetValue())
	require.NoError(t, get.Send(&kvv1.GetRequest{Key: "beta"}))
	resp, err = get.Recv()
	require.NoError(t, err)
	assert.Equal(t, "2", resp.GetValue())
	require.NoError(t, get.CloseSend())
	_, err = get.Recv()
	assert.ErrorIs(t, err, io.EOF)

	del, err := client.Delete(ctx)
	require.NoError(t, err)
	require.NoError(t, del.Send(&kvv1.DeleteRequest{Key: "alpha"}))
	dresp, err := del.Recv()
	require.NoError(t, err)
	assert.Equal(t, "alpha", dresp.GetKey())
	require.NoError(t, del.CloseSend())
	_, err = del.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestKvClientCancelMidStream(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := kvv1.NewKvServiceClient(conn)

	kvSet(t, client, map[string]string{"alpha": "1"})

	ctx, cancel := context.WithCancel(context.Background())
	get, err := client.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, get.Send(&kvv1.GetRequest{Key: "alpha"}))
	resp, err := get.Recv()
	require.NoError(t, err)
	assert.Equal(t, "1", resp.GetValue())
	cancel()
	_, err = get.Recv()
	assert.Equal(t, codes.Canceled, status.Code(err))

	// an aborted stream leaves the server serving subsequent calls
	get2, err := client.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, get2.Send(&kvv1.GetRequest{Key: "alpha"}))
	resp, err = get2.Recv()
	require.NoError(t, err)
	assert.Equal(t, "1", resp.GetValue())
	require.NoError(t, get2.CloseSend())
	_, err = get2.Recv()
	assert.ErrorIs(t, err, io.EOF)
}

func TestKvMissingKeyTerminatesStream(t *testing.T) {
	conn := setup(t, backend.KindBadger, backend.KindSQLite)
	client := kvv1.NewKvServiceClient(conn)

	get, err := client.Get(context.Background())
	require.NoError(t, err)
	require.NoError(t, get.Send(&kvv1.GetRequest{Key: "ghost"}))
	_, err = get.Recv()
	require.Error(t, err)
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestKvDeleteMissingKey(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := kvv1.NewKvServiceClient(conn)

	del, err := client.Delete(context.Background())
	require.NoError(t, err)
	require.NoError(t, del.Send(&kvv1.DeleteRequest{Key: "ghost"}))
	_, err = del.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestKvEq(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := kvv1.NewKvServiceClient(conn)
	ctx := context.Background()

	kvSet(t, client, map[string]string{"a": "same", "b": "same", "c": "other"})

	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"all equal", []string{"a", "b"}, true},
		{"mismatch", []string{"a", "c"}, false},
		{"single key", []string{"a"}, true},
		{"empty stream", nil, true},
		{"missing key", []string{"a", "ghost"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := client.Eq(ctx)
			require.NoError(t, err)
			for _, k := range tt.keys {
				require.NoError(t, stream.Send(&kvv1.EqRequest{Key: k}))
			}
			resp, err := stream.CloseAndRecv()
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetEqual())
		})
	}
}

func TestKvNotEq(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := kvv1.NewKvServiceClient(conn)
	ctx := context.Background()

	kvSet(t, client, map[string]string{"a": "same", "b": "same", "c": "other"})

	tests := []struct {
		name string
		keys []string
		want bool
	}{
		{"all unique", []string{"a", "c"}, true},
		{"duplicate", []string{"a", "b"}, false},
		{"empty stream", nil, true},
		{"missing key", []string{"a", "ghost"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stream, err := client.NotEq(ctx)
			require.NoError(t, err)
			for _, k := range tt.keys {
				require.NoError(t, stream.Send(&kvv1.NotEqRequest{Key: k}))
			}
			resp, err := stream.CloseAndRecv()
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.GetNotEqual())
		})
	}
}

func blobStore(t *testing.T, client blobv1.BlobServiceClient, data []byte, metadata *string) uint64 {
	t.Helper()
	stream, err := client.Store(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&blobv1.StoreRequest{Data: data, Metadata: metadata}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())
	return resp.GetId()
}

func TestBlobRoundTrip(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindBadger)
	client := blobv1.NewBlobServiceClient(conn)
	ctx := context.Background()

	meta := "image/png"
	id := blobStore(t, client, []byte{0xde, 0xad}, &meta)
	bare := blobStore(t, client, []byte{0xbe, 0xef}, nil)
	assert.NotEqual(t, id, bare)

	get, err := client.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, get.Send(&blobv1.GetRequest{Id: id}))
	resp, err := get.Recv()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xde, 0xad}, resp.GetData())
	require.NotNil(t, resp.Metadata)
	assert.Equal(t, meta, resp.GetMetadata())

	require.NoError(t, get.Send(&blobv1.GetRequest{Id: bare}))
	resp, err = get.Recv()
	require.NoError(t, err)
	assert.Nil(t, resp.Metadata)
	require.NoError(t, get.CloseSend())
}

func TestBlobUpdate(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := blobv1.NewBlobServiceClient(conn)
	ctx := context.Background()

	meta := "text/plain"
	id := blobStore(t, client, []byte("old"), &meta)

	update, err := client.Update(ctx)
	require.NoError(t, err)
	newData := []byte("new")
	require.NoError(t, update.Send(&blobv1.UpdateRequest{Id: id, Data: newData}))
	uresp, err := update.Recv()
	require.NoError(t, err)
	assert.Equal(t, id, uresp.GetId())
	// Clearing the metadata requires the explicit flag.
	require.NoError(t, update.Send(&blobv1.UpdateRequest{Id: id, ShouldUpdateMetadata: true}))
	_, err = update.Recv()
	require.NoError(t, err)
	require.NoError(t, update.CloseSend())

	get, err := client.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, get.Send(&blobv1.GetRequest{Id: id}))
	resp, err := get.Recv()
	require.NoError(t, err)
	assert.Equal(t, newData, resp.GetData())
	assert.Nil(t, resp.Metadata)
	require.NoError(t, get.CloseSend())
}

func TestBlobDeleteMissing(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := blobv1.NewBlobServiceClient(conn)

	del, err := client.Delete(context.Background())
	require.NoError(t, err)
	require.NoError(t, del.Send(&blobv1.DeleteRequest{Id: 404}))
	_, err = del.Recv()
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestBlobEqData(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := blobv1.NewBlobServiceClient(conn)
	ctx := context.Background()

	metaA := "a"
	metaB := "b"
	one := blobStore(t, client, []byte("same"), &metaA)
	two := blobStore(t, client, []byte("same"), &metaB)
	three := blobStore(t, client, []byte("other"), nil)

	eq, err := client.EqData(ctx)
	require.NoError(t, err)
	require.NoError(t, eq.Send(&blobv1.EqDataRequest{Id: one}))
	require.NoError(t, eq.Send(&blobv1.EqDataRequest{Id: two}))
	resp, err := eq.CloseAndRecv()
	require.NoError(t, err)
	assert.True(t, resp.GetEqual(), "metadata must not affect data comparison")

	notEq, err := client.NotEqData(ctx)
	require.NoError(t, err)
	for _, id := range []uint64{one, two, three} {
		require.NoError(t, notEq.Send(&blobv1.NotEqDataRequest{Id: id}))
	}
	nresp, err := notEq.CloseAndRecv()
	require.NoError(t, err)
	assert.False(t, nresp.GetNotEqual())
}

func TestQueryRoutesByTarget(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	kvClient := kvv1.NewKvServiceClient(conn)
	queryClient := queryv1.NewQueryServiceClient(conn)
	ctx := context.Background()

	kvSet(t, kvClient, map[string]string{"k1": "v1"})

	stream, err := queryClient.Query(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&queryv1.RawQuery{
		Query:  "SELECT key, value FROM kv ORDER BY key",
		Target: queryv1.TargetStore_TARGET_STORE_KV,
	}))
	row, err := stream.Recv()
	require.NoError(t, err)
	require.Len(t, row.GetFields(), 2)
	assert.Equal(t, "k1", row.GetFields()[0].GetText())
	assert.Equal(t, "v1", row.GetFields()[1].GetText())

	// The blob store sees its own schema, not the kv table.
	require.NoError(t, stream.Send(&queryv1.RawQuery{
		Query:  "SELECT count(*) FROM blob",
		Target: queryv1.TargetStore_TARGET_STORE_BLOB,
	}))
	row, err = stream.Recv()
	require.NoError(t, err)
	require.Len(t, row.GetFields(), 1)
	assert.Equal(t, int64(0), row.GetFields()[0].GetInteger())
	require.NoError(t, stream.CloseSend())
}

func TestExecuteReportsRowsChanged(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := queryv1.NewQueryServiceClient(conn)

	stream, err := client.Execute(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&queryv1.RawQuery{
		Query:  "INSERT INTO kv (key, value) VALUES ('x', '1'), ('y', '2')",
		Target: queryv1.TargetStore_TARGET_STORE_KV,
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), resp.GetRowsChanged())
	require.NoError(t, stream.CloseSend())
}

func TestQueryUnsupportedBackend(t *testing.T) {
	conn := setup(t, backend.KindBadger, backend.KindSQLite)
	client := queryv1.NewQueryServiceClient(conn)

	stream, err := client.Query(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&queryv1.RawQuery{
		Query:  "SELECT 1",
		Target: queryv1.TargetStore_TARGET_STORE_KV,
	}))
	_, err = stream.Recv()
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}

func TestQueryUnknownTarget(t *testing.T) {
	conn := setup(t, backend.KindSQLite, backend.KindSQLite)
	client := queryv1.NewQueryServiceClient(conn)

	stream, err := client.Execute(context.Background())
	require.NoError(t, err)
	require.NoError(t, stream.Send(&queryv1.RawQuery{Query: "SELECT 1"}))
	_, err = stream.Recv()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
