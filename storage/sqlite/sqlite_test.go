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
	"path/filepath"
	"testing"

	"pdepview/storage"

	"github.com/stretchr/testify/assert"
)

var testSchema = storage.TableSchema{
	Name: "prepcorp",
	Columns: []storage.Column{
		{Name: "prep", Type: storage.ColumnText},
		{Name: "preploc", Type: storage.ColumnInt},
	},
	IndexedCols: []string{"prep"},
}

func writeTestRows(t *testing.T, path string, rows [][]any) {
	w := &Writer{Path: path, Schemas: []storage.TableSchema{testSchema}}
	defer w.Close()
	assert.NoError(t, w.Initialize(false))
	assert.NoError(t, storage.WriteRows(w, testSchema.Name, testSchema.ColumnNames(), rows))
	assert.NoError(t, w.Commit())
}

func TestWriterRecreatesTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	writeTestRows(t, path, [][]any{{"on", int64(4)}, {"about", nil}})
	writeTestRows(t, path, [][]any{{"in", int64(1)}})

	db, err := OpenDatabase(path)
	assert.NoError(t, err)
	defer db.Close()
	var num int
	assert.NoError(t, db.QueryRow("SELECT COUNT(*) FROM prepcorp").Scan(&num))
	assert.Equal(t, 1, num)
	var prep string
	assert.NoError(t, db.QueryRow("SELECT prep FROM prepcorp WHERE preploc = 1").Scan(&prep))
	assert.Equal(t, "in", prep)
}

func TestPrepareInsertWithoutTransaction(t *testing.T) {
	w := &Writer{Path: filepath.Join(t.TempDir(), "test.db")}
	_, err := w.PrepareInsert("prepcorp", []string{"prep"})
	assert.Error(t, err)
	assert.False(t, w.DatabaseExists())
}
