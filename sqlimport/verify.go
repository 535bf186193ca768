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
	"regexp"

	"github.com/xwb1989/sqlparser"
)

var (
	insertStmtStart = regexp.MustCompile(`(?i)INSERT\s+INTO`)
)

// StatementInfo describes an INSERT statement as seen
// by a full MySQL grammar parser
type StatementInfo struct {
	Table     string
	Columns   []string
	NumTuples int
}

// VerifyStatements parses all the INSERT statements of an SQL dump
// using a complete MySQL grammar. It is much slower than
// ParseSQLValues and it is intended to cross-check its results.
func VerifyStatements(sql string) ([]StatementInfo, error) {
	ans := make([]StatementInfo, 0, 4)
	pos := 0
	for pos < len(sql) {
		loc := insertStmtStart.FindStringIndex(sql[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[0]
		end := scanOutsideStrings(
			sql,
			pos+loc[1],
			func(string, int) bool { return true },
		)
		stmt, err := sqlparser.Parse(sql[start:end])
		if err != nil {
			return ans, fmt.Errorf("failed to parse INSERT statement at offset %d: %w", start, err)
		}
		ins, ok := stmt.(*sqlparser.Insert)
		if !ok {
			return ans, fmt.Errorf("unexpected statement type %T at offset %d", stmt, start)
		}
		info := StatementInfo{Table: ins.Table.Name.String()}
		for _, col := range ins.Columns {
			info.Columns = append(info.Columns, col.String())
		}
		if values, ok := ins.Rows.(sqlparser.Values); ok {
			info.NumTuples = len(values)
		}
		ans = append(ans, info)
		pos = end
	}
	return ans, nil
}

// CountVerifiedTuples returns the total number of tuples
// found by VerifyStatements
func CountVerifiedTuples(sql string) (int, error) {
	stmts, err := VerifyStatements(sql)
	if err != nil {
		return 0, err
	}
	var ans int
	for _, s := range stmts {
		ans += s.NumTuples
	}
	return ans, nil
}
