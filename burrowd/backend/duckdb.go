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

	// registers the duckdb driver
	_ "github.com/marcboeker/go-duckdb/v2"

	"github.com/apache/burrowdb/pkg/logger"
)

// DuckDB has no rowid, so the blob region allocates ids from a sequence.
// DuckDB also holds its own file lock, which covers the two-handles case.
var duckdbDialect = sqlDialect{
	kind: KindDuckDB,
	schema: []string{
		"CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value TEXT)",
		"CREATE SEQUENCE IF NOT EXISTS blob_id_seq START 1",
		"CREATE TABLE IF NOT EXISTS blob (id BIGINT PRIMARY KEY DEFAULT nextval('blob_id_seq'), data BLOB, metadata TEXT)",
	},
	insertBlob: "INSERT INTO blob (data, metadata) VALUES (?, ?) RETURNING id",
	getBlob:    "SELECT data, metadata FROM blob WHERE id = ?",
	updateBoth: "UPDATE blob SET data = ?, metadata = ? WHERE id = ?",
	updateData: "UPDATE blob SET data = ? WHERE id = ?",
	updateMeta: "UPDATE blob SET metadata = ? WHERE id = ?",
	deleteBlob: "DELETE FROM blob WHERE id = ?",
	getData:    "SELECT data FROM blob WHERE id = ?",
}

func openDuckDB(location Location, log *logger.Logger) (Store, error) {
	dsn := ""
	if !location.IsInMemory() {
		dsn = location.Path
	}
	db, err := sql.Open("duckdb", dsn)
	if err != nil {
		return nil, connectionErr(KindDuckDB, err)
	}
	return openSQL(db, duckdbDialect, log.Named("duckdb"))
}
