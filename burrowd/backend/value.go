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
	"math"

	"github.com/pkg/errors"
)

// ValueKind tags a Value variant.
type ValueKind int

// The closed set of row cell variants.
const (
	ValueNull ValueKind = iota
	ValueInteger
	ValueReal
	ValueText
	ValueBlob
)

// Value is one row cell produced by a raw query, normalized into a closed
// set of scalars. Exactly the field selected by Kind carries the payload.
type Value struct {
	Text string
	Blob []byte
	Int  int64
	Real float64
	Kind ValueKind
}

// IntValue returns an integer Value.
func IntValue(i int64) Value {
	return Value{Kind: ValueInteger, Int: i}
}

// RealValue returns a real Value.
func RealValue(f float64) Value {
	return Value{Kind: ValueReal, Real: f}
}

// TextValue returns a text Value.
func TextValue(s string) Value {
	return Value{Kind: ValueText, Text: s}
}

// BlobValue returns a blob Value.
func BlobValue(b []byte) Value {
	return Value{Kind: ValueBlob, Blob: b}
}

// NullValue returns the null Value.
func NullValue() Value {
	return Value{Kind: ValueNull}
}

// normalizeValue maps a database/sql scan result into a Value.
// Widths below 64 bit widen losslessly. Anything outside the closed set,
// including timestamps and booleans, fails with ErrUnsupportedType.
func normalizeValue(raw any) (Value, error) {
	switch v := raw.(type) {
	case nil:
		return NullValue(), nil
	case int64:
		return IntValue(v), nil
	case int:
		return IntValue(int64(v)), nil
	case int32:
		return IntValue(int64(v)), nil
	case int16:
		return IntValue(int64(v)), nil
	case int8:
		return IntValue(int64(v)), nil
	case uint8:
		return IntValue(int64(v)), nil
	case uint16:
		return IntValue(int64(v)), nil
	case uint32:
		return IntValue(int64(v)), nil
	case uint64:
		if v > math.MaxInt64 {
			return Value{}, errors.Wrapf(ErrUnsupportedType, "uint64 %d overflows int64", v)
		}
		return IntValue(int64(v)), nil
	case float64:
		return RealValue(v), nil
	case float32:
		return RealValue(float64(v)), nil
	case string:
		return TextValue(v), nil
	case []byte:
		// copy; database/sql may reuse the buffer on the next scan
		return BlobValue(append([]byte(nil), v...)), nil
	}
	return Value{}, errors.Wrapf(ErrUnsupportedType, "engine value of type %T", raw)
}
