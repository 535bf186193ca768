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

package sqlimport

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"pdepview/general"
	"pdepview/storage"
	"pdepview/storage/factory"

	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

const (
	PrepIndexFile = "preps.json"
)

// Summary describes the result of a complete import
type Summary struct {
	NumDefinitions int `json:"numDefinitions"`
	NumExamples    int `json:"numExamples"`
	NumProperties  int `json:"numProperties"`
	NumPreps       int `json:"numPreps"`
	NumDropped     int `json:"numDropped"`
}

func (s Summary) Log() {
	log.Info().
		Str("definitions", general.CountLabel(s.NumDefinitions, "definition")).
		Str("examples", general.CountLabel(s.NumExamples, "corpus example")).
		Str("properties", general.CountLabel(s.NumProperties, "property")).
		Str("preps", general.CountLabel(s.NumPreps, "unique preposition")).
		Int("droppedTuples", s.NumDropped).
		Msg("import done")
}

// ImportTable reads and parses a single SQL dump file
func ImportTable(dir string, spec TableSpec, verify bool) (ParseResult, error) {
	path := filepath.Join(dir, spec.File)
	log.Info().Str("file", path).Msgf("importing %s", spec.Name)
	src, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to import %s: %w", spec.File, err)
	}
	sql := string(src)
	ans := ParseSQLValues(sql, spec.ColumnNames())
	var numFixed int
	for _, row := range ans.Rows {
		for _, fx := range spec.Fixups {
			if fx.Apply(row) {
				numFixed++
			}
		}
	}
	log.Info().
		Str("table", spec.Name).
		Int("rows", len(ans.Rows)).
		Int("dropped", ans.NumDropped).
		Int("fixed", numFixed).
		Msg("parsed rows")

	if verify {
		numVerified, err := CountVerifiedTuples(sql)
		if err != nil {
			log.Warn().Err(err).Str("table", spec.Name).Msg("failed to verify SQL dump")

		} else if numVerified != ans.NumTuples {
			log.Warn().
				Str("table", spec.Name).
				Int("lexer", ans.NumTuples).
				Int("sqlParser", numVerified).
				Msg("number of tuples does not match")

		} else {
			log.Info().Str("table", spec.Name).Int("tuples", numVerified).Msg("verified")
		}
	}
	return ans, nil
}

// UniquePreps returns sorted unique values of the `prep` column
func UniquePreps(rows []Row) []string {
	set := make(map[string]struct{})
	for _, row := range rows {
		set[row.Get("prep").String()] = struct{}{}
	}
	ans := make([]string, 0, len(set))
	for p := range set {
		ans = append(ans, p)
	}
	sort.Strings(ans)
	return ans
}

func writeJSON(path string, data any) error {
	b, err := sonic.ConfigStd.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Info().Str("file", path).Msg("written")
	return nil
}

func writeDatabase(conf *storage.Conf, tables []TableSpec, data map[string][]Row) error {
	schemas := make([]storage.TableSchema, len(tables))
	for i, t := range tables {
		schemas[i] = t.Schema(conf)
	}
	w := factory.NewDatabaseWriter(conf, schemas)
	defer w.Close()
	if err := w.Initialize(false); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	return storeTables(w, schemas, tables, data)
}

// storeTables inserts all the rows within a single transaction.
// The transaction is rolled back only if an insert fails.
func storeTables(
	w storage.Writer,
	schemas []storage.TableSchema,
	tables []TableSpec,
	data map[string][]Row,
) error {
	for i, t := range tables {
		rows := data[t.Name]
		args := make([][]any, len(rows))
		for j, row := range rows {
			args[j] = row.SQLArgs()
		}
		if err := storage.WriteRows(w, schemas[i].Name, t.ColumnNames(), args); err != nil {
			if err2 := w.Rollback(); err2 != nil {
				log.Error().Err(err2).Msg("failed to rollback")
			}
			return err
		}
		log.Info().Str("table", schemas[i].Name).Int("rows", len(rows)).Msg("stored to database")
	}
	if err := w.Commit(); err != nil {
		return fmt.Errorf("failed to commit database transaction: %w", err)
	}
	return nil
}

// Run imports all the dataset tables and writes them
// as JSON files (and optionally to a database)
func Run(conf *Conf) (Summary, error) {
	var summary Summary
	data := make(map[string][]Row)
	for _, spec := range DefaultTables {
		res, err := ImportTable(conf.SQLDir, spec, conf.Verify)
		if err != nil {
			return summary, err
		}
		data[spec.Name] = res.Rows
		summary.NumDropped += res.NumDropped
	}
	if err := os.MkdirAll(conf.OutputDir, 0755); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}
	for _, spec := range DefaultTables {
		rows := data[spec.Name]
		if rows == nil {
			rows = []Row{}
		}
		if err := writeJSON(filepath.Join(conf.OutputDir, spec.Output), rows); err != nil {
			return summary, err
		}
	}
	preps := UniquePreps(data[TablePrepDefs])
	if err := writeJSON(filepath.Join(conf.OutputDir, PrepIndexFile), preps); err != nil {
		return summary, err
	}
	if conf.Database != nil {
		if err := writeDatabase(conf.Database, DefaultTables, data); err != nil {
			return summary, err
		}
	}
	summary.NumDefinitions = len(data[TablePrepDefs])
	summary.NumExamples = len(data[TablePrepCorp])
	summary.NumProperties = len(data[TablePrepProps])
	summary.NumPreps = len(preps)
	return summary, nil
}
