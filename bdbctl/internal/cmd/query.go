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
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	queryv1 "github.com/apache/burrowdb/api/proto/burrowdb/query/v1"
)

func parseTarget(raw string) (queryv1.TargetStore, error) {
	switch strings.ToLower(raw) {
	case "kv":
		return queryv1.TargetStore_TARGET_STORE_KV, nil
	case "blob":
		return queryv1.TargetStore_TARGET_STORE_BLOB, nil
	default:
		return queryv1.TargetStore_TARGET_STORE_UNSPECIFIED, errors.Errorf("unknown target store %q", raw)
	}
}

func formatField(field *queryv1.Value) string {
	switch kind := field.GetKind().(type) {
	case *queryv1.Value_Integer:
		return fmt.Sprintf("%d", kind.Integer)
	case *queryv1.Value_Real:
		return fmt.Sprintf("%g", kind.Real)
	case *queryv1.Value_Text:
		return kind.Text
	case *queryv1.Value_Blob:
		return "0x" + hex.EncodeToString(kind.Blob)
	default:
		return "NULL"
	}
}

func newQueryCmd() *cobra.Command {
	var target string
	queryCmd := &cobra.Command{
		Use:   "query <statement>",
		Short: "Run a raw query against a store and print its rows",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tgt, err := parseTarget(target)
			if err != nil {
				return err
			}
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()
			stream, err := queryv1.NewQueryServiceClient(conn).Query(ctx)
			if err != nil {
				return err
			}
			if err = stream.Send(&queryv1.RawQuery{Query: args[0], Target: tgt}); err != nil {
				return err
			}
			if err = stream.CloseSend(); err != nil {
				return err
			}
			for {
				row, errRecv := stream.Recv()
				if errors.Is(errRecv, io.EOF) {
					return nil
				}
				if errRecv != nil {
					return errRecv
				}
				fields := make([]string, 0, len(row.GetFields()))
				for _, field := range row.GetFields() {
					fields = append(fields, formatField(field))
				}
				fmt.Println(strings.Join(fields, "|"))
			}
		},
	}
	queryCmd.Flags().StringVarP(&target, "target", "t", "kv", "the store the query runs against, kv or blob")
	return queryCmd
}

func newExecuteCmd() *cobra.Command {
	var target string
	executeCmd := &cobra.Command{
		Use:   "execute <statement>",
		Short: "Run a raw statement against a store and print the changed row count",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			tgt, err := parseTarget(target)
			if err != nil {
				return err
			}
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()
			stream, err := queryv1.NewQueryServiceClient(conn).Execute(ctx)
			if err != nil {
				return err
			}
			if err = stream.Send(&queryv1.RawQuery{Query: args[0], Target: tgt}); err != nil {
				return err
			}
			resp, err := stream.Recv()
			if err != nil {
				return err
			}
			fmt.Println(resp.GetRowsChanged())
			return stream.CloseSend()
		},
	}
	executeCmd.Flags().StringVarP(&target, "target", "t", "kv", "the store the statement runs against, kv or blob")
	return executeCmd
}
