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

package logger

// Debugf logs a formatted message at debug level to the root logger.
func Debugf(format string, args ...interface{}) {
	root.verify()
	root.l.Debug().Msgf(format, args...)
}

// Infof logs a formatted message at info level to the root logger.
func Infof(format string, args ...interface{}) {
	root.verify()
	root.l.Info().Msgf(format, args...)
}

// Warningf logs a formatted message at warn level to the root logger.
func Warningf(format string, args ...interface{}) {
	root.verify()
	root.l.Warn().Msgf(format, args...)
}

// Errorf logs a formatted message at error level to the root logger.
func Errorf(format string, args ...interface{}) {
	root.verify()
	root.l.Error().Msgf(format, args...)
}

// Panicf logs a formatted message at panic level to the root logger.
func Panicf(format string, args ...interface{}) {
	root.verify()
	root.l.Panic().Msgf(format, args...)
}
