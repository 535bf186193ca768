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

func TestParseSimpleInsert(t *testing.T) {
	sql := "INSERT INTO `prepdefs` VALUES ('about','1(1)','Concerning'),('above','2(1)','Higher than');"
	res := ParseSQLValues(sql, []string{"prep", "sense", "def"})
	assert.Equal(t, 2, len(res.Rows))
	assert.Equal(t, 2, res.NumTuples)
	assert.Equal(t, 0, res.NumDropped)
	assert.Equal(t, "about", res.Rows[0].Get("prep").Str)
	assert.Equal(t, "1(1)", res.Rows[0].Get("sense").Str)
	assert.Equal(t, "Higher than", res.Rows[1].Get("def").Str)
}

func TestParseQuotesAndEscapes(t *testing.T) {
	tuples := ParseTuples(`('it''s','a\\b','q\'s','tab\t')`)
	assert.Equal(t, 1, len(tuples))
	assert.Equal(
		t,
		[]Value{
			StringValue("it's"),
			StringValue(`a\b`),
			StringValue("q's"),
			StringValue("tabt"),
		},
		tuples[0],
	)
}

func TestParseNullsAndNumbers(t *testing.T) {
	tuples := ParseTuples(`(NULL, 12, -3.5, 1e3, 0x1F, abc, null)`)
	assert.Equal(t, 1, len(tuples))
	tp := tuples[0]
	assert.Equal(t, 7, len(tp))
	assert.True(t, tp[0].IsNull())
	assert.Equal(t, NumberValue(12), tp[1])
	assert.Equal(t, NumberValue(-3.5), tp[2])
	assert.Equal(t, NumberValue(1000), tp[3])
	assert.Equal(t, NumberValue(31), tp[4])
	assert.Equal(t, Value{Kind: KindBare, Str: "abc"}, tp[5])
	// only the upper-case keyword is recognized
	assert.Equal(t, Value{Kind: KindBare, Str: "null"}, tp[6])
}

func TestParseNaNIsNotNumber(t *testing.T) {
	tuples := ParseTuples(`(NaN, Inf)`)
	assert.Equal(t, KindBare, tuples[0][0].Kind)
	assert.Equal(t, KindBare, tuples[0][1].Kind)
}

func TestParseEmptyStringAndWhitespace(t *testing.T) {
	tuples := ParseTuples("( '' ,\n\t7 )")
	assert.Equal(t, [][]Value{{StringValue(""), NumberValue(7)}}, tuples)
}

func TestParseWhitespaceInsideBareToken(t *testing.T) {
	tuples := ParseTuples("(- 5, 1 2)")
	assert.Equal(t, [][]Value{{NumberValue(-5), NumberValue(12)}}, tuples)
}

func TestParseUnterminatedTuple(t *testing.T) {
	tuples := ParseTuples("(1, 'a'")
	assert.Equal(t, [][]Value{{NumberValue(1), StringValue("a")}}, tuples)
}

func TestParseTrailingBackslash(t *testing.T) {
	tuples := ParseTuples(`('ab\`)
	assert.Equal(t, 1, len(tuples))
	assert.Equal(t, 0, len(tuples[0]))
}

func TestParseUTF8Escape(t *testing.T) {
	tuples := ParseTuples(`('\ž', 'à la')`)
	assert.Equal(t, [][]Value{{StringValue("ž"), StringValue("à la")}}, tuples)
}

func TestArityMismatchIsDropped(t *testing.T) {
	sql := "INSERT INTO t VALUES (1,2),(3),(4,5,6),(7,8);"
	res := ParseSQLValues(sql, []string{"a", "b"})
	assert.Equal(t, 4, res.NumTuples)
	assert.Equal(t, 2, res.NumDropped)
	assert.Equal(t, 2, len(res.Rows))
	assert.Equal(t, NumberValue(7), res.Rows[1].Get("a"))
}

func TestMultipleInsertStatements(t *testing.T) {
	sql := "INSERT INTO t VALUES (1,2);\ninsert INTO t VALUES (3,4);\n"
	sections := ExtractValuesSections(sql)
	assert.Equal(t, []string{"(1,2)", "(3,4)"}, sections)
	res := ParseSQLValues(sql, []string{"a", "b"})
	assert.Equal(t, 2, len(res.Rows))
	assert.Equal(t, NumberValue(3), res.Rows[1].Get("a"))
}

func TestSemicolonInsideString(t *testing.T) {
	sql := "INSERT INTO t VALUES ('a;INSERT',1),('b',2);"
	sections := ExtractValuesSections(sql)
	assert.Equal(t, 1, len(sections))
	res := ParseSQLValues(sql, []string{"a", "b"})
	assert.Equal(t, 2, len(res.Rows))
	assert.Equal(t, "a;INSERT", res.Rows[0].Get("a").Str)
}

func TestTrailingStatementsAreIgnored(t *testing.T) {
	sql := "LOCK TABLES `t` WRITE;\nINSERT INTO `t` VALUES (1,2);\nUNLOCK TABLES;\n"
	res := ParseSQLValues(sql, []string{"a", "b"})
	assert.Equal(t, 1, len(res.Rows))
}

func TestNoValuesSection(t *testing.T) {
	res := ParseSQLValues("CREATE TABLE t (a int, b int);", []string{"a", "b"})
	assert.Equal(t, 0, len(res.Rows))
	assert.Equal(t, 0, res.NumTuples)
}

func TestRowMarshalJSONKeepsColumnOrder(t *testing.T) {
	row := Row{
		Columns: []string{"prep", "sense", "cnn", "def"},
		Values:  []Value{StringValue("on"), StringValue("1(1)"), NullValue(), NumberValue(12)},
	}
	data, err := row.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, `{"prep":"on","sense":"1(1)","cnn":null,"def":12}`, string(data))
}

func TestFixupApply(t *testing.T) {
	row := Row{
		Columns: []string{"prep", "opreps"},
		Values:  []Value{StringValue("besides"), StringValue("aprt from, except")},
	}
	fx := Fixup{Column: "opreps", Search: "aprt from", Replace: "apart from"}
	assert.True(t, fx.Apply(row))
	assert.Equal(t, "apart from, except", row.Get("opreps").Str)
	assert.False(t, fx.Apply(row))
}

func TestFixupIgnoresNull(t *testing.T) {
	row := Row{
		Columns: []string{"prep", "opreps"},
		Values:  []Value{StringValue("besides"), NullValue()},
	}
	fx := Fixup{Column: "opreps", Search: "aprt from", Replace: "apart from"}
	assert.False(t, fx.Apply(row))
	assert.True(t, row.Get("opreps").IsNull())
}

func TestValueSQLArg(t *testing.T) {
	assert.Nil(t, NullValue().SQLArg())
	assert.Equal(t, int64(12), NumberValue(12).SQLArg())
	assert.Equal(t, 1.5, NumberValue(1.5).SQLArg())
	assert.Equal(t, "x", StringValue("x").SQLArg())
}
