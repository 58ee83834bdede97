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
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/apache/burrowdb/pkg/grpchelper"
	"github.com/apache/burrowdb/pkg/version"
)

func newHealthCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "health",
		Version:       version.Build(),
		Short:         "Health check",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, _ []string) error {
			conn, err := dial()
			if err != nil {
				return err
			}
			defer conn.Close()
			healthClient := grpc_health_v1.NewHealthClient(conn)
			if err = grpchelper.Request(context.Background(), 10*time.Second, func(rpcCtx context.Context) error {
				resp, errCheck := healthClient.Check(rpcCtx, &grpc_health_v1.HealthCheckRequest{Service: ""})
				if errCheck != nil {
					return errCheck
				}
				if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
					return errors.Errorf("server is %s", resp.GetStatus())
				}
				return nil
			}); err != nil {
				return err
			}
			fmt.Println("connected")
			return nil
		},
	}
}
