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
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ValueKind distinguishes literals of a VALUES tuple
type ValueKind int

const (
	KindNull ValueKind = iota
	KindString
	KindNumber

	// KindBare is an unquoted token which is neither NULL
	// nor a number (e.g. a function call or a keyword)
	KindBare
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBare:
		return "bare"
	}
	return "unknown"
}

// Value is a single literal found in a VALUES tuple
type Value struct {
	Kind ValueKind
	Str  string
	Num  float64
}

// NullValue creates an SQL NULL
func NullValue() Value {
	return Value{Kind: KindNull}
}

// StringValue creates a value of a quoted string literal
func StringValue(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// NumberValue creates a numeric value
func NumberValue(n float64) Value {
	return Value{Kind: KindNumber, Num: n}
}

func (v Value) IsNull() bool {
	return v.Kind == KindNull
}

// IsText returns true for both quoted strings and bare tokens
func (v Value) IsText() bool {
	return v.Kind == KindString || v.Kind == KindBare
}

// String returns a textual representation of the value.
// NULL is represented by an empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindString, KindBare:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	}
	return ""
}

// SQLArg converts the value into a form suitable
// for database/sql statement arguments
func (v Value) SQLArg() any {
	switch v.Kind {
	case KindString, KindBare:
		return v.Str
	case KindNumber:
		if v.Num == math.Trunc(v.Num) && math.Abs(v.Num) < 1<<53 {
			return int64(v.Num)
		}
		return v.Num
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindString, KindBare:
		return json.Marshal(v.Str)
	case KindNumber:
		return json.Marshal(v.Num)
	}
	return []byte("null"), nil
}

// ----------------------------

// Row is a parsed tuple with values bound to named columns.
// The columns slice is shared by all the rows of a table.
type Row struct {
	Columns []string
	Values  []Value
}

func (r Row) colIdx(col string) int {
	for i, c := range r.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Get returns a value of a column. For unknown columns,
// NULL is returned.
func (r Row) Get(col string) Value {
	if i := r.colIdx(col); i >= 0 {
		return r.Values[i]
	}
	return NullValue()
}

// Set replaces the value of col. It returns false
// if the row has no such column.
func (r Row) Set(col string, v Value) bool {
	if i := r.colIdx(col); i >= 0 {
		r.Values[i] = v
		return true
	}
	return false
}

// SQLArgs returns all the values converted via Value.SQLArg
func (r Row) SQLArgs() []any {
	ans := make([]any, len(r.Values))
	for i, v := range r.Values {
		ans[i] = v.SQLArg()
	}
	return ans
}

// MarshalJSON encodes the row as a JSON object with keys
// in the order of the columns.
func (r Row) MarshalJSON() ([]byte, error) {
	var buff bytes.Buffer
	buff.WriteByte('{')
	for i, col := range r.Columns {
		if i > 0 {
			buff.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buff.Write(key)
		buff.WriteByte(':')
		var val []byte
		if i < len(r.Values) {
			val, err = r.Values[i].MarshalJSON()

		} else {
			val, err = NullValue().MarshalJSON()
		}
		if err != nil {
			return nil, err
		}
		buff.Write(val)
	}
	buff.WriteByte('}')
	return buff.Bytes(), nil
}

// ----------------------------

func hasRadixPrefix(s string) bool {
	return len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1]))
}

// parseNumber accepts decimal literals (including exponent forms)
// and unsigned 0x/0o/0b integer literals.
func parseNumber(s string) (float64, bool) {
	if hasRadixPrefix(s) {
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return 0, false
		}
		return float64(v), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// bareValue converts an unquoted token. An empty token produces
// no value at all.
func bareValue(token string) (Value, bool) {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Value{}, false
	}
	if tok == "NULL" {
		return NullValue(), true
	}
	if n, ok := parseNumber(tok); ok {
		return NumberValue(n), true
	}
	return Value{Kind: KindBare, Str: tok}, true
}
