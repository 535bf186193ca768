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

package sqlite

import (
	"database/sql"
	"fmt"

	"pdepview/storage"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog/log"
)

// Writer stores dataset tables into an sqlite3 database
type Writer struct {
	database       *sql.DB
	tx             *sql.Tx
	Path           string
	PreconfQueries []string
	Schemas        []storage.TableSchema
}

func (w *Writer) DatabaseExists() bool {
	isFile, err := fs.IsFile(w.Path)
	return err == nil && isFile
}

func (w *Writer) Initialize(appendMode bool) error {
	var err error
	dbExisted := w.DatabaseExists()
	w.database, err = OpenDatabase(w.Path)
	if err != nil {
		return err
	}
	log.Info().Msgf("Opened sqlite3 database %s", w.Path)

	if !appendMode {
		if dbExisted {
			log.
				Warn().
				Str("database", w.Path).
				Msg("The database already exists. Existing data will be deleted.")
			if err := dropExisting(w.database, w.Schemas); err != nil {
				return err
			}
		}
		if err := createSchema(w.database, w.Schemas); err != nil {
			return err
		}
	}

	var dbConf []string
	if len(w.PreconfQueries) > 0 {
		dbConf = w.PreconfQueries

	} else {
		log.Warn().Msg("No pre-configuration queries found, using default")
		dbConf = []string{
			"PRAGMA synchronous = OFF",
			"PRAGMA journal_mode = MEMORY",
		}
	}
	for _, cnf := range dbConf {
		log.Info().Str("value", cnf).Msg("Applying preconfiguration")
		if _, err := w.database.Exec(cnf); err != nil {
			log.Warn().Err(err).Str("value", cnf).Msg("failed to apply preconfiguration")
		}
	}
	w.tx, err = w.database.Begin()
	return err
}

func (w *Writer) PrepareInsert(table string, cols []string) (storage.InsertOperation, error) {
	if w.tx == nil {
		return nil, fmt.Errorf("cannot prepare insert - no transaction active")
	}
	stmt, err := prepareInsert(w.tx, table, cols)
	if err != nil {
		return nil, err
	}
	return &storage.Insert{Stmt: stmt}, nil
}

func (w *Writer) Commit() error {
	return w.tx.Commit()
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback()
}

func (w *Writer) Close() {
	if w.database == nil {
		return
	}
	if err := w.database.Close(); err != nil {
		log.Warn().Err(err).Msg("Error closing database")
	}
}
