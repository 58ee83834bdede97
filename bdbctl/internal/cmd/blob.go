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
	"os"
	"strconv"

	"github.com/spf13/cobra"

	blobv1 "github.com/apache/burrowdb/api/proto/burrowdb/blob/v1"
)

func newBlobCmd() *cobra.Command {
	blobCmd := &cobra.Command{
		Use:   "blob",
		Short: "Operate the blob store",
	}
	blobCmd.AddCommand(newBlobGetCmd(), newBlobStoreCmd(), newBlobUpdateCmd(), newBlobDeleteCmd(), newBlobEqCmd(), newBlobNotEqCmd())
	return blobCmd
}

func parseBlobIDs(args []string) ([]uint64, error) {
	ids := make([]uint64, 0, len(args))
	for _, arg := range args {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func readBlobData(file string, inline string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	return []byte(inline), nil
}

func newBlobGetCmd() *cobra.Command {
	var output string
	getCmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Fetch a blob and print its metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := parseBlobIDs(args)
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
			stream, err := blobv1.NewBlobServiceClient(conn).Get(ctx)
			if err != nil {
				return err
			}
			if err = stream.Send(&blobv1.GetRequest{Id: ids[0]}); err != nil {
				return err
			}
			resp, err := stream.Recv()
			if err != nil {
				return err
			}
			if resp.Metadata != nil {
				fmt.Println(resp.GetMetadata())
			}
			if output != "" {
				if err = os.WriteFile(output, resp.GetData(), 0o600); err != nil {
					return err
				}
			} else {
				_, _ = os.Stdout.Write(resp.GetData())
			}
			return stream.CloseSend()
		},
	}
	getCmd.Flags().StringVarP(&output, "output", "o", "", "write the blob bytes to a file instead of stdout")
	return getCmd
}

func newBlobStoreCmd() *cobra.Command {
	var file, data, metadata string
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Store a blob and print its id",
		RunE: func(cmd *cobra.Command, _ []string) error {
			payload, err := readBlobData(file, data)
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
			stream, err := blobv1.NewBlobServiceClient(conn).Store(ctx)
			if err != nil {
				return err
			}
			req := &blobv1.StoreRequest{Data: payload}
			if cmd.Flags().Changed("metadata") {
				req.Metadata = &metadata
			}
			if err = stream.Send(req); err != nil {
				return err
			}
			resp, err := stream.Recv()
			if err != nil {
				return err
			}
			fmt.Println(resp.GetId())
			return stream.CloseSend()
		},
	}
	storeCmd.Flags().StringVarP(&file, "file", "f", "", "read the blob bytes from a file")
	storeCmd.Flags().StringVar(&data, "data", "", "the blob bytes as an inline string")
	storeCmd.Flags().StringVarP(&metadata, "metadata", "m", "", "the metadata attached to the blob")
	return storeCmd
}

func newBlobUpdateCmd() *cobra.Command {
	var file, data, metadata string
	var clearMetadata bool
	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a blob's bytes, metadata or both",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseBlobIDs(args)
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
			stream, err := blobv1.NewBlobServiceClient(conn).Update(ctx)
			if err != nil {
				return err
			}
			req := &blobv1.UpdateRequest{Id: ids[0]}
			if cmd.Flags().Changed("file") || cmd.Flags().Changed("data") {
				payload, errRead := readBlobData(file, data)
				if errRead != nil {
					return errRead
				}
				req.Data = payload
			}
			switch {
			case clearMetadata:
				req.ShouldUpdateMetadata = true
			case cmd.Flags().Changed("metadata"):
				req.ShouldUpdateMetadata = true
				req.Metadata = &metadata
			}
			if err = stream.Send(req); err != nil {
				return err
			}
			if _, err = stream.Recv(); err != nil {
				return err
			}
			return stream.CloseSend()
		},
	}
	updateCmd.Flags().StringVarP(&file, "file", "f", "", "read the new blob bytes from a file")
	updateCmd.Flags().StringVar(&data, "data", "", "the new blob bytes as an inline string")
	updateCmd.Flags().StringVarP(&metadata, "metadata", "m", "", "the new metadata of the blob")
	updateCmd.Flags().BoolVar(&clearMetadata, "clear-metadata", false, "remove the metadata from the blob")
	return updateCmd
}

func newBlobDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a blob",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := parseBlobIDs(args)
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
			stream, err := blobv1.NewBlobServiceClient(conn).Delete(ctx)
			if err != nil {
				return err
			}
			if err = stream.Send(&blobv1.DeleteRequest{Id: ids[0]}); err != nil {
				return err
			}
			if _, err = stream.Recv(); err != nil {
				return err
			}
			return stream.CloseSend()
		},
	}
}

func newBlobEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "eq <id>...",
		Short:         "Check whether the bytes of all blobs are equal",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := parseBlobIDs(args)
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
			stream, err := blobv1.NewBlobServiceClient(conn).EqData(ctx)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if err = stream.Send(&blobv1.EqDataRequest{Id: id}); err != nil {
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

func newBlobNotEqCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "noteq <id>...",
		Short:         "Check whether the bytes of all blobs are distinct",
		Args:          cobra.MinimumNArgs(1),
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			ids, err := parseBlobIDs(args)
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
			stream, err := blobv1.NewBlobServiceClient(conn).NotEqData(ctx)
			if err != nil {
				return err
			}
			for _, id := range ids {
				if err = stream.Send(&blobv1.NotEqDataRequest{Id: id}); err != nil {
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
