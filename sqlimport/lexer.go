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
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

var (
	valuesKeyword = regexp.MustCompile(`(?i)VALUES\s*`)
)

// isStatementEnd tests whether a semicolon at position i
// terminates a VALUES section, i.e. whether it is followed
// (modulo whitespace) by another INSERT or by the end of input.
func isStatementEnd(sql string, i int) bool {
	rest := strings.TrimLeftFunc(sql[i+1:], unicode.IsSpace)
	if rest == "" {
		return true
	}
	return len(rest) >= 6 && strings.EqualFold(rest[:6], "INSERT")
}

// scanOutsideStrings returns a position of the first semicolon
// outside quoted strings accepted by the isEnd function.
// If there is no such semicolon, the length of the input is returned.
func scanOutsideStrings(sql string, start int, isEnd func(sql string, i int) bool) int {
	var inString bool
	for i := start; i < len(sql); i++ {
		ch := sql[i]
		if inString {
			switch ch {
			case '\\':
				i++
			case '\'':
				if i+1 < len(sql) && sql[i+1] == '\'' {
					i++

				} else {
					inString = false
				}
			}
			continue
		}
		switch ch {
		case '\'':
			inString = true
		case ';':
			if isEnd(sql, i) {
				return i
			}
		}
	}
	return len(sql)
}

func findSectionEnd(sql string, start int) int {
	return scanOutsideStrings(sql, start, isStatementEnd)
}

// ExtractValuesSections finds all the VALUES parts of INSERT statements
// in an SQL dump. Each section starts right after the VALUES keyword
// and ends before a semicolon followed by another INSERT or by
// the end of input (or simply at the end of input).
func ExtractValuesSections(sql string) []string {
	ans := make([]string, 0, 4)
	pos := 0
	for pos < len(sql) {
		loc := valuesKeyword.FindStringIndex(sql[pos:])
		if loc == nil {
			break
		}
		start := pos + loc[1]
		end := findSectionEnd(sql, start)
		ans = append(ans, sql[start:end])
		pos = end
	}
	return ans
}

// ----------------------------

type tupleLexer struct {
	src string
	pos int
}

func (lx *tupleLexer) peek(offset int) byte {
	if lx.pos+offset < len(lx.src) {
		return lx.src[lx.pos+offset]
	}
	return 0
}

// nextTuple reads values of the next parenthesized tuple.
// The second returned value is false once there is no other
// tuple start in the input. A tuple not closed before the end
// of input yields the values read so far.
func (lx *tupleLexer) nextTuple() ([]Value, bool) {
	idx := strings.IndexByte(lx.src[lx.pos:], '(')
	if idx < 0 {
		lx.pos = len(lx.src)
		return nil, false
	}
	lx.pos += idx + 1

	values := make([]Value, 0, 8)
	var current strings.Builder
	var inString bool

	for lx.pos < len(lx.src) {
		ch := lx.src[lx.pos]

		if inString {
			switch {
			case ch == '\'' && lx.peek(1) == '\'':
				current.WriteByte('\'')
				lx.pos += 2
			case ch == '\\':
				// the escaped character is taken literally; a trailing
				// backslash is dropped
				if lx.pos+1 < len(lx.src) {
					_, size := utf8.DecodeRuneInString(lx.src[lx.pos+1:])
					current.WriteString(lx.src[lx.pos+1 : lx.pos+1+size])
					lx.pos += 1 + size

				} else {
					lx.pos++
				}
			case ch == '\'':
				inString = false
				values = append(values, StringValue(current.String()))
				current.Reset()
				lx.pos++
			default:
				current.WriteByte(ch)
				lx.pos++
			}
			continue
		}

		switch ch {
		case '\'':
			inString = true
			lx.pos++
		case ',':
			if v, ok := bareValue(current.String()); ok {
				values = append(values, v)
			}
			current.Reset()
			lx.pos++
		case ')':
			if v, ok := bareValue(current.String()); ok {
				values = append(values, v)
			}
			lx.pos++
			return values, true
		default:
			r, size := utf8.DecodeRuneInString(lx.src[lx.pos:])
			if !unicode.IsSpace(r) {
				current.WriteString(lx.src[lx.pos : lx.pos+size])
			}
			lx.pos += size
		}
	}
	return values, true
}

// ParseTuples tokenizes a VALUES section into a list of tuples
func ParseTuples(section string) [][]Value {
	lx := &tupleLexer{src: section}
	ans := make([][]Value, 0, 64)
	for {
		tuple, ok := lx.nextTuple()
		if !ok {
			break
		}
		ans = append(ans, tuple)
	}
	return ans
}

// ParseResult contains rows extracted from an SQL dump along
// with some basic stats
type ParseResult struct {
	Rows       []Row
	NumTuples  int
	NumDropped int
}

// ParseSQLValues extracts all the VALUES tuples from an SQL dump
// and binds them to the provided columns. Tuples with a different
// number of values than the number of columns are dropped.
func ParseSQLValues(sql string, columns []string) ParseResult {
	var ans ParseResult
	for _, section := range ExtractValuesSections(sql) {
		for _, tuple := range ParseTuples(section) {
			ans.NumTuples++
			if len(tuple) != len(columns) {
				ans.NumDropped++
				log.Debug().
					Int("expected", len(columns)).
					Int("found", len(tuple)).
					Msg("dropping tuple with unexpected number of values")
				continue
			}
			ans.Rows = append(ans.Rows, Row{Columns: columns, Values: tuple})
		}
	}
	return ans
}
