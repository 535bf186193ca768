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

package storage

import (
	"database/sql"
	"fmt"
	"strings"
)

const (
	TablePrepDefs  = "prepdefs"
	TablePrepCorp  = "prepcorp"
	TablePrepProps = "prepprops"
)

type ColumnType string

const (
	ColumnText ColumnType = "text"
	ColumnInt  ColumnType = "int"
)

type Column struct {
	Name string
	Type ColumnType
}

// TableSchema describes a table the dataset is stored in
type TableSchema struct {
	Name    string
	Columns []Column

	// IndexedCols lists columns to be indexed (in the order
	// they should appear in a compound index)
	IndexedCols []string
}

func (ts TableSchema) ColumnNames() []string {
	ans := make([]string, len(ts.Columns))
	for i, c := range ts.Columns {
		ans[i] = c.Name
	}
	return ans
}

type Conf struct {
	Type           string   `json:"type"`
	Path           string   `json:"path"`
	Host           string   `json:"host"`
	Port           int      `json:"port"`
	Name           string   `json:"name"`
	User           string   `json:"user"`
	Password       string   `json:"password"`
	TablePrefix    string   `json:"tablePrefix"`
	PreconfQueries []string `json:"preconfSettings"`
}

func (conf *Conf) ValidateAndDefaults(confContext string) error {
	if conf == nil {
		return fmt.Errorf("missing configuration section `%s`", confContext)
	}
	switch conf.Type {
	case "sqlite":
		if conf.Path == "" {
			return fmt.Errorf("missing `%s.path` for sqlite database", confContext)
		}
	case "mysql":
		if conf.Host == "" || conf.Name == "" {
			return fmt.Errorf("missing `%s.host` or `%s.name` for mysql database", confContext, confContext)
		}
		if conf.Port == 0 {
			conf.Port = 3306
		}
	default:
		return fmt.Errorf("unsupported `%s.type`: %s", confContext, conf.Type)
	}
	return nil
}

// TableName returns a table name with an optional configured prefix
func (conf *Conf) TableName(name string) string {
	if conf == nil || conf.TablePrefix == "" {
		return name
	}
	return conf.TablePrefix + "_" + name
}

type Writer interface {
	DatabaseExists() bool
	Initialize(appendMode bool) error
	PrepareInsert(table string, cols []string) (InsertOperation, error)
	Commit() error
	Rollback() error
	Close()
}

type InsertOperation interface {
	Exec(values ...any) error
	Close() error
}

// Insert is a database/sql based implementation of InsertOperation
type Insert struct {
	Stmt *sql.Stmt
}

func (ins *Insert) Exec(values ...any) error {
	_, err := ins.Stmt.Exec(values...)
	return err
}

func (ins *Insert) Close() error {
	return ins.Stmt.Close()
}

func JoinArgs(args []string) string {
	return strings.Join(args, ", ")
}

func Placeholders(num int) string {
	valReplac := make([]string, num)
	for i := range valReplac {
		valReplac[i] = "?"
	}
	return JoinArgs(valReplac)
}

// WriteRows inserts all the rows into a table using a single
// prepared statement.
func WriteRows(w Writer, table string, cols []string, rows [][]any) error {
	ins, err := w.PrepareInsert(table, cols)
	if err != nil {
		return err
	}
	defer ins.Close()
	for i, row := range rows {
		if err := ins.Exec(row...); err != nil {
			return fmt.Errorf("failed to insert row %d into %s: %w", i, table, err)
		}
	}
	return nil
}
