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

// Package cmdsetup assembles the burrowd command tree.
package cmdsetup

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/apache/burrowdb/pkg/cgroups"
	"github.com/apache/burrowdb/pkg/config"
	"github.com/apache/burrowdb/pkg/logger"
	"github.com/apache/burrowdb/pkg/run"
	"github.com/apache/burrowdb/pkg/version"
)

const logo = `
 ____                                      ____   ____
| __ )  _   _  _ __  _ __   ___  __      _|  _ \ | __ )
|  _ \ | | | || '__|| '__| / _ \ \ \ /\ / / | | ||  _ \
| |_) || |_| || |   | |   | (_) | \ V  V /| |_| || |_) |
|____/  \__,_||_|   |_|    \___/   \_/\_/ |____/ |____/
`

// NewRoot returns a root command.
func NewRoot(runners ...run.Unit) *cobra.Command {
	logging := logger.Logging{}
	cmd := &cobra.Command{
		DisableAutoGenTag: true,
		Version:           version.Build(),
		Short:             "BurrowDB is an embedded multi-store database server",
		Long: logo + `
BurrowDB exposes a key-value store, a blob store and raw query passthrough
over interchangeable embedded storage engines
`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) (err error) {
			fmt.Print(logo)
			if err = config.Load("logging", cmd.Flags()); err != nil {
				return err
			}

			if err = logger.Init(logging); err != nil {
				return err
			}

			logger.Infof("CPU Number: %d", cgroups.CPUs())
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&logging.Env, "logging-env", "prod", "the logging")
	cmd.PersistentFlags().StringVar(&logging.Level, "logging-level", "info", "the root level of logging")
	cmd.PersistentFlags().StringSliceVar(&logging.Modules, "logging-modules", nil, "the specific module")
	cmd.PersistentFlags().StringSliceVar(&logging.Levels, "logging-levels", nil, "the level logging of logging")
	cmd.AddCommand(newStandaloneCmd(runners...))
	return cmd
}
