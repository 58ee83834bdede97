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
	"database/sql"

	// registers the sqlite3 driver
	_ "github.com/mattn/go-sqlite3"

	"github.com/apache/burrowdb/pkg/logger"
)

// The blob region rides on sqlite's rowid, so store ids are rowids.
var sqliteDialect = sqlDialect{
	kind: KindSQLite,
	schema: []string{
		"CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT)",
		"CREATE TABLE IF NOT EXISTS blob (data BLOB, metadata TEXT)",
	},
	insertBlob: "INSERT INTO blob (data, metadata) VALUES (?, ?) RETURNING rowid",
	getBlob:    "SELECT data, metadata FROM blob WHERE rowid = ?",
	updateBoth: "UPDATE blob SET data = ?, metadata = ? WHERE rowid = ?",
	updateData: "UPDATE blob SET data = ? WHERE rowid = ?",
	updateMeta: "UPDATE blob SET metadata = ? WHERE rowid = ?",
	deleteBlob: "DELETE FROM blob WHERE rowid = ?",
	getData:    "SELECT data FROM blob WHERE rowid = ?",
}

func openSQLite(location Location, log *logger.Logger) (Store, error) {
	dsn := ":memory:"
	if !location.IsInMemory() {
		// exclusive locking keeps a second handle from silently sharing
		// the same file
		dsn = "file:" + location.Path + "?_locking_mode=EXCLUSIVE&_busy_timeout=5000"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, connectionErr(KindSQLite, err)
	}
	return openSQL(db, sqliteDialect, log.Named("sqlite"))
}
