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

// Package cmd implements the command tree of bdbctl.
package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/apache/burrowdb/pkg/grpchelper"
	"github.com/apache/burrowdb/pkg/version"
)

var (
	addr      string
	enableTLS bool
	insecure  bool
	cert      string
)

// NewRoot returns the root command.
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "bdbctl",
		DisableAutoGenTag: true,
		Version:           version.Build(),
		Short:             "bdbctl is the command line tool of BurrowDB",
		SilenceUsage:      true,
	}
	cmd.PersistentFlags().StringVarP(&addr, "addr", "a", "127.0.0.1:50051", "the server address, the format is Domain:Port")
	cmd.PersistentFlags().BoolVar(&enableTLS, "enable-tls", false, "used to enable tls connection")
	cmd.PersistentFlags().BoolVar(&insecure, "insecure", false, "used to skip server's cert verification")
	cmd.PersistentFlags().StringVar(&cert, "cert", "", "the cert file path for tls connection")
	cmd.AddCommand(newKvCmd(), newBlobCmd(), newQueryCmd(), newExecuteCmd(), newHealthCheckCmd())
	return cmd
}

func dial() (*grpc.ClientConn, error) {
	opts, err := grpchelper.SecureOptions(nil, enableTLS, insecure, cert)
	if err != nil {
		return nil, err
	}
	return grpchelper.Conn(addr, 10*time.Second, opts...)
}
