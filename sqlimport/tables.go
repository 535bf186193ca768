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
	"strings"

	"pdepview/storage"
)

const (
	TablePrepDefs  = storage.TablePrepDefs
	TablePrepCorp  = storage.TablePrepCorp
	TablePrepProps = storage.TablePrepProps
)

// Fixup replaces a known error in a text column
type Fixup struct {
	Column  string
	Search  string
	Replace string
}

// Apply rewrites the row in place and reports whether it changed
func (f Fixup) Apply(row Row) bool {
	v := row.Get(f.Column)
	if v.Kind != KindString || !strings.Contains(v.Str, f.Search) {
		return false
	}
	return row.Set(f.Column, StringValue(strings.ReplaceAll(v.Str, f.Search, f.Replace)))
}

// TableSpec describes a single SQL dump file and
// the table it contains
type TableSpec struct {
	Name    string
	File    string
	Output  string
	Columns []storage.Column
	Fixups  []Fixup

	// Indexed lists columns the data are typically searched by
	Indexed []string
}

func (ts TableSpec) ColumnNames() []string {
	ans := make([]string, len(ts.Columns))
	for i, c := range ts.Columns {
		ans[i] = c.Name
	}
	return ans
}

func (ts TableSpec) Schema(dbConf *storage.Conf) storage.TableSchema {
	return storage.TableSchema{
		Name:        dbConf.TableName(ts.Name),
		Columns:     ts.Columns,
		IndexedCols: ts.Indexed,
	}
}

func textCols(names ...string) []storage.Column {
	ans := make([]storage.Column, len(names))
	for i, n := range names {
		ans[i] = storage.Column{Name: n, Type: storage.ColumnText}
	}
	return ans
}

func intCols(names ...string) []storage.Column {
	ans := make([]storage.Column, len(names))
	for i, n := range names {
		ans[i] = storage.Column{Name: n, Type: storage.ColumnInt}
	}
	return ans
}

func concatCols(groups ...[]storage.Column) []storage.Column {
	var ans []storage.Column
	for _, g := range groups {
		ans = append(ans, g...)
	}
	return ans
}

var (
	PrepDefsSpec = TableSpec{
		Name:    TablePrepDefs,
		File:    "prepdefs.sql",
		Output:  "prepdefs.json",
		Columns: textCols("prep", "sense", "def"),
		Indexed: []string{"prep", "sense"},
	}

	PrepCorpSpec = TableSpec{
		Name:   TablePrepCorp,
		File:   "prepcorp.sql",
		Output: "prepcorp.json",
		Columns: concatCols(
			textCols("prep", "source", "sense"),
			intCols("inst", "preploc"),
			textCols("sentence"),
		),
		Indexed: []string{"prep", "sense"},
	}

	PrepPropsSpec = TableSpec{
		Name:   TablePrepProps,
		File:   "prepprops.sql",
		Output: "prepprops.json",
		Columns: concatCols(
			textCols(
				"prep", "sense", "cprop", "aprop", "sup", "srtype", "tratz", "srikumar",
				"opreps", "srel", "qsyn", "qpar", "com",
			),
			intCols("cnn", "cnnp", "cwh", "cing"),
			textCols("clexset"),
			intCols("gnoun", "gverb", "gadj"),
			textCols("csel", "gsel", "conto", "ssense"),
			intCols("clanal"),
			textCols("subc"),
		),
		Fixups: []Fixup{
			{Column: "opreps", Search: "aprt from", Replace: "apart from"},
		},
		Indexed: []string{"prep", "sense"},
	}

	DefaultTables = []TableSpec{PrepDefsSpec, PrepCorpSpec, PrepPropsSpec}
)
