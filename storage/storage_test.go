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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceholders(t *testing.T) {
	assert.Equal(t, "?, ?, ?", Placeholders(3))
	assert.Equal(t, "", Placeholders(0))
	assert.Equal(t, "prep, sense", JoinArgs([]string{"prep", "sense"}))
}

func TestTableName(t *testing.T) {
	var conf *Conf
	assert.Equal(t, "prepdefs", conf.TableName(TablePrepDefs))
	conf = &Conf{TablePrefix: "pdep"}
	assert.Equal(t, "pdep_prepdefs", conf.TableName(TablePrepDefs))
}

func TestConfValidation(t *testing.T) {
	conf := &Conf{Type: "mysql", Host: "localhost", Name: "pdep"}
	assert.NoError(t, conf.ValidateAndDefaults("db"))
	assert.Equal(t, 3306, conf.Port)
	assert.Error(t, (&Conf{Type: "mysql", Host: "localhost"}).ValidateAndDefaults("db"))
	assert.Error(t, (&Conf{Type: "sqlite"}).ValidateAndDefaults("db"))
	assert.NoError(t, (&Conf{Type: "sqlite", Path: "/tmp/pdep.db"}).ValidateAndDefaults("db"))
	assert.Error(t, (&Conf{Type: "postgres"}).ValidateAndDefaults("db"))
}

func TestSchemaColumnNames(t *testing.T) {
	schema := TableSchema{
		Name:    "prepdefs",
		Columns: []Column{{Name: "prep", Type: ColumnText}, {Name: "inst", Type: ColumnInt}},
	}
	assert.Equal(t, []string{"prep", "inst"}, schema.ColumnNames())
}
