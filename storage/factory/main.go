// Copyright 2026 The PDEP Viewer Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package factory

import (
	"database/sql"
	"fmt"

	"pdepview/storage"
	"pdepview/storage/mysql"
	"pdepview/storage/sqlite"
)

type NullWriter struct {
}

func (nw *NullWriter) DatabaseExists() bool {
	return false
}

func (nw *NullWriter) Initialize(appendMode bool) error {
	return fmt.Errorf("no valid database writer installed")
}

func (nw *NullWriter) PrepareInsert(table string, cols []string) (storage.InsertOperation, error) {
	return nil, fmt.Errorf("no valid database writer installed")
}

func (nw *NullWriter) Commit() error {
	return fmt.Errorf("no valid database writer installed")
}

func (nw *NullWriter) Rollback() error {
	return fmt.Errorf("no valid database writer installed")
}

func (nw *NullWriter) Close() {}

func NewDatabaseWriter(conf *storage.Conf, schemas []storage.TableSchema) storage.Writer {
	switch conf.Type {
	case "sqlite":
		return &sqlite.Writer{
			Path:           conf.Path,
			PreconfQueries: conf.PreconfQueries,
			Schemas:        schemas,
		}
	case "mysql":
		return mysql.NewWriter(conf, schemas)
	default:
		return &NullWriter{}
	}
}

// OpenDatabase opens a database for reading
// based on the configured type
func OpenDatabase(conf *storage.Conf) (*sql.DB, error) {
	switch conf.Type {
	case "sqlite":
		return sqlite.OpenDatabase(conf.Path)
	case "mysql":
		return mysql.OpenDatabase(conf)
	default:
		return nil, fmt.Errorf("unsupported database type `%s`", conf.Type)
	}
}
