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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerifyStatements(t *testing.T) {
	sql := "INSERT INTO `prepdefs` VALUES ('about','1(1)','Concerning'),('above','2(1)','it''s higher');\n" +
		"INSERT INTO `prepdefs` (prep, sense, def) VALUES ('after','1(1)','Later');\n"
	stmts, err := VerifyStatements(sql)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(stmts))
	assert.Equal(t, "prepdefs", stmts[0].Table)
	assert.Equal(t, 2, stmts[0].NumTuples)
	assert.Equal(t, []string{"prep", "sense", "def"}, stmts[1].Columns)
	assert.Equal(t, 1, stmts[1].NumTuples)

	total, err := CountVerifiedTuples(sql)
	assert.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, total, ParseSQLValues(sql, []string{"prep", "sense", "def"}).NumTuples)
}

func TestVerifyStatementsInvalidSQL(t *testing.T) {
	_, err := VerifyStatements("INSERT INTO t VALUES (1,,2);")
	assert.Error(t, err)
}
