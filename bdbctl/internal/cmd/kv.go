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
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	kvv1 "github.com/apache/burrowdb/api/proto/burrowdb/kv/v1"
)

const rpcTimeout = 30 * time.Second

var errComparisonFailed = errors.New("comparison failed")

func newKvCmd() *cobra.Command {
	kvCmd := &cobra.Command{
		Use:   "kv",
		Short: "Operate the key-value store",
	}
	kvCmd.AddCommand(newKvGetCmd(), newKvSetCmd(), newKvDeleteCmd(), newKvEqCmd(), newKvNotEqCmd())
	return kvCmd
}

func newKvGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()
			stream, err := kvv1.NewKvServiceClient(conn).Get(ctx)
			if err != nil {
				return err
			}
			if err = stream.Send(&kvv1.GetRequest{Key: args[0]}); err != nil {
				return err
			}
			resp, err := stream.Recv()
			if err != nil {
				return err
			}
			fmt.Println(resp.GetValue())
			return stream.CloseSend()
		},
	}
}

func newKvSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set the value of a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()
			stream, err := kvv1.NewKvServiceClient(conn).Set(ctx)
			if err != nil {
				return err
			}
			if err = stream.Send(&kvv1.SetRequest{Key: args[0], Value: args[1]}); err != nil {
				return err
			}
			if _, err = stream.Recv(); err != nil {
				return err
			}
			return stream.CloseSend()
		},
	}
}

func newKvDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()
			stream, err := kvv1.NewKvServiceClient(conn).Delete(ctx)
			if err != nil {
				return err
			}
			if err = stream.Send(&kvv1.DeleteRequest{Key: args[0]}); err != nil {
				return err
			}
			if _, err = stream.Recv(); err != nil {
				return err
			}
			return stream.CloseSend()
		},
	}
}

func newKvEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "eq <key>...",
		Short:         "Check whether the values of all keys are equal",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()
			stream, err := kvv1.NewKvServiceClient(conn).Eq(ctx)
			if err != nil {
				return err
			}
			for _, key := range args {
				if err = stream.Send(&kvv1.EqRequest{Key: key}); err != nil {
					return err
				}
			}
			resp, err := stream.CloseAndRecv()
			if err != nil {
				return err
			}
			fmt.Println(resp.GetEqual())
			if !resp.GetEqual() {
				return errComparisonFailed
			}
			return nil
		},
	}
}

func newKvNotEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "noteq <key>...",
		Short:         "Check whether the values of all keys are distinct",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			ctx, cancel := context.WithTimeout(context.Background(), rpcTimeout)
			defer cancel()
			stream, err := kvv1.NewKvServiceClient(conn).NotEq(ctx)
			if err != nil {
				return err
			}
			for _, key := range args {
				if err = stream.Send(&kvv1.NotEqRequest{Key: key}); err != nil {
					return err
				}
			}
			resp, err := stream.CloseAndRecv()
			if err != nil {
				return err
			}
			fmt.Println(resp.GetNotEqual())
			if !resp.GetNotEqual() {
				return errComparisonFailed
			}
			return nil
		},
	}
}
