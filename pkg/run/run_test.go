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

package run

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupLifecycle(t *testing.T) {
	g := NewGroup("lifecycle-test")
	tester, stop := NewTester("tester")
	g.Register(tester)
	g.RegisterFlags()

	done := make(chan error, 1)
	go func() {
		done <- g.Run(context.Background())
	}()
	g.WaitTillReady()
	stop()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("group did not stop")
	}
}

func TestGroupRegisterPhases(t *testing.T) {
	g := NewGroup("phases-test")
	tester, stop := NewTester("tester")
	defer stop()
	registered := g.Register(tester)
	require.Len(t, registered, 1)
	assert.True(t, registered[0])

	deregistered := g.Deregister(tester)
	require.Len(t, deregistered, 1)
	assert.True(t, deregistered[0])
}
