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

/*
This file contains all the database operations
required to create a proper schema for the
preposition dataset (tables and their indices)
*/

import (
	"database/sql"
	"fmt"
	"strings"

	"pdepview/storage"

	"github.com/rs/zerolog/log"

	_ "github.com/mattn/go-sqlite3" // load the driver
)

// OpenDatabase opens an sqlite3 database file. For ":memory:"
// an in-memory database is created.
func OpenDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset db: %w", err)
	}
	return db, nil
}

func columnType(c storage.Column) string {
	if c.Type == storage.ColumnInt {
		return "INTEGER"
	}
	return "TEXT"
}

func generateColDefs(schema storage.TableSchema) []string {
	ans := make([]string, len(schema.Columns))
	for i, c := range schema.Columns {
		ans[i] = fmt.Sprintf("%s %s", c.Name, columnType(c))
	}
	return ans
}

func dropExisting(database *sql.DB, schemas []storage.TableSchema) error {
	for _, s := range schemas {
		log.Info().Str("table", s.Name).Msg("dropping existing table")
		if _, err := database.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s", s.Name)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", s.Name, err)
		}
	}
	return nil
}

func createSchema(database *sql.DB, schemas []storage.TableSchema) error {
	for _, s := range schemas {
		_, err := database.Exec(
			fmt.Sprintf(
				"CREATE TABLE %s (id INTEGER PRIMARY KEY AUTOINCREMENT, %s)",
				s.Name, storage.JoinArgs(generateColDefs(s)),
			),
		)
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", s.Name, err)
		}
		if len(s.IndexedCols) > 0 {
			_, err := database.Exec(
				fmt.Sprintf(
					"CREATE INDEX %s_%s_idx ON %s(%s)",
					s.Name, strings.Join(s.IndexedCols, "_"), s.Name, storage.JoinArgs(s.IndexedCols),
				),
			)
			if err != nil {
				return fmt.Errorf("failed to create index for %s: %w", s.Name, err)
			}
		}
	}
	return nil
}

func prepareInsert(tx *sql.Tx, table string, cols []string) (*sql.Stmt, error) {
	ans, err := tx.Prepare(
		fmt.Sprintf(
			"INSERT INTO %s (%s) VALUES (%s)",
			table, storage.JoinArgs(cols), storage.Placeholders(len(cols)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare INSERT: %w", err)
	}
	return ans, nil
}
