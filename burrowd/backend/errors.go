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

package backend

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel errors shared by all engines. Callers match them with errors.Is.
var (
	// ErrNotFound reports a key or id with no record.
	ErrNotFound = errors.New("not found")
	// ErrUnsupportedOperation reports an operation the engine cannot serve,
	// such as raw queries against the badger engine.
	ErrUnsupportedOperation = errors.New("unsupported operation")
	// ErrUnsupportedType reports an engine value with no representation in
	// the Value set.
	ErrUnsupportedType = errors.New("unsupported type")

	errIterClosed = errors.New("row iterator is closed")
)

// ConnectionError reports a failure to open or reach an engine.
type ConnectionError struct {
	Err  error
	Kind Kind
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("%s connection: %v", e.Kind, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// BackendError reports an engine-internal failure during an operation.
type BackendError struct {
	Err  error
	Kind Kind
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s backend: %v", e.Kind, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func connectionErr(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &ConnectionError{Kind: kind, Err: err}
}

func backendErr(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &BackendError{Kind: kind, Err: err}
}
