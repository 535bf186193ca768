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

package mysql

import (
	"database/sql"
	"fmt"
	"time"

	"pdepview/storage"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
)

// OpenDatabase creates a MySQL connection pool based
// on the provided configuration
func OpenDatabase(conf *storage.Conf) (*sql.DB, error) {
	mconf := mysql.NewConfig()
	mconf.Net = "tcp"
	mconf.Addr = fmt.Sprintf("%s:%d", conf.Host, conf.Port)
	mconf.User = conf.User
	mconf.Passwd = conf.Password
	mconf.DBName = conf.Name
	mconf.ParseTime = true
	mconf.Loc = time.Local
	mconf.Params = map[string]string{"charset": "utf8mb4"}
	db, err := sql.Open("mysql", mconf.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset db: %w", err)
	}
	return db, nil
}

func columnType(c storage.Column) string {
	if c.Type == storage.ColumnInt {
		return "INT"
	}
	return "TEXT"
}

// Writer stores dataset tables into a MySQL (MariaDB) database
type Writer struct {
	database *sql.DB
	tx       *sql.Tx
	dbName   string
	conf     *storage.Conf
	Schemas  []storage.TableSchema
}

func (w *Writer) DatabaseExists() bool {
	if len(w.Schemas) == 0 {
		return false
	}
	row := w.database.QueryRow(
		`SELECT COUNT(*) > 0 FROM information_schema.TABLES WHERE TABLE_SCHEMA = ? AND TABLE_NAME = ?`,
		w.dbName, w.Schemas[0].Name,
	)
	var ans bool
	err := row.Scan(&ans)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Error().Err(err).Msg("failed to test data storage existence")
		return false
	}
	return ans
}

func (w *Writer) dropExisting() error {
	for _, s := range w.Schemas {
		if _, err := w.database.Exec(fmt.Sprintf("DROP TABLE IF EXISTS `%s`", s.Name)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", s.Name, err)
		}
	}
	return nil
}

func (w *Writer) createSchema() error {
	for _, s := range w.Schemas {
		colDefs := make([]string, len(s.Columns))
		for i, c := range s.Columns {
			colDefs[i] = fmt.Sprintf("`%s` %s", c.Name, columnType(c))
		}
		sql1 := fmt.Sprintf(
			"CREATE TABLE `%s` (id INT NOT NULL AUTO_INCREMENT, %s, PRIMARY KEY (id)",
			s.Name, storage.JoinArgs(colDefs),
		)
		if len(s.IndexedCols) > 0 {
			idxCols := make([]string, len(s.IndexedCols))
			for i, c := range s.IndexedCols {
				// TEXT columns require a key prefix length in MySQL
				idxCols[i] = fmt.Sprintf("`%s`(64)", c)
			}
			sql1 += fmt.Sprintf(", INDEX (%s)", storage.JoinArgs(idxCols))
		}
		sql1 += ") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"
		if _, err := w.database.Exec(sql1); err != nil {
			return fmt.Errorf("failed to create table %s: %w", s.Name, err)
		}
	}
	return nil
}

func (w *Writer) Initialize(appendMode bool) error {
	var err error
	w.database, err = OpenDatabase(w.conf)
	if err != nil {
		return err
	}
	if !appendMode {
		if w.DatabaseExists() {
			log.
				Warn().
				Str("database", w.dbName).
				Msg("The data storage already exists. Existing data will be deleted.")
			if err := w.dropExisting(); err != nil {
				return err
			}
		}
		if err := w.createSchema(); err != nil {
			return err
		}
	}
	w.tx, err = w.database.Begin()
	return err
}

func (w *Writer) PrepareInsert(table string, cols []string) (storage.InsertOperation, error) {
	if w.tx == nil {
		return nil, fmt.Errorf("cannot prepare insert into %s - no transaction active", table)
	}
	stmt, err := w.tx.Prepare(
		fmt.Sprintf(
			"INSERT INTO `%s` (%s) VALUES (%s)",
			table, storage.JoinArgs(cols), storage.Placeholders(len(cols)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare INSERT into %s: %w", table, err)
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

func NewWriter(conf *storage.Conf, schemas []storage.TableSchema) *Writer {
	return &Writer{
		dbName:  conf.Name,
		conf:    conf,
		Schemas: schemas,
	}
}
