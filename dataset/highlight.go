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

package dataset

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

const (
	// maxHighlightTail limits how many characters following
	// a preposition may become part of the highlighted word
	maxHighlightTail = 10
)

var (
	wordPatterns sync.Map
)

// Highlight is a sentence split into three parts with
// the preposition in the middle
type Highlight struct {
	Before string `json:"before"`
	Prep   string `json:"prep"`
	After  string `json:"after"`
}

func wordPattern(prep string) *regexp.Regexp {
	if v, ok := wordPatterns.Load(prep); ok {
		return v.(*regexp.Regexp)
	}
	patt := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(prep) + `\b`)
	wordPatterns.Store(prep, patt)
	return patt
}

func matchesAt(runes []rune, prep string, pos int) bool {
	n := utf8.RuneCountInString(prep)
	if pos < 0 || pos >= len(runes) || pos+n > len(runes) {
		return false
	}
	return strings.EqualFold(string(runes[pos:pos+n]), prep)
}

// HighlightSentence locates a preposition in a sentence. The expected
// position preploc (in characters) is tried first, then the first whole-word
// case-insensitive occurrence. The highlighted part covers the preposition
// and the non-space characters directly attached to it (e.g. punctuation).
func HighlightSentence(sentence, prep string, preploc int) Highlight {
	if prep == "" {
		return Highlight{Before: sentence}
	}
	runes := []rune(sentence)
	pos := preploc
	prepLen := utf8.RuneCountInString(prep)
	if !matchesAt(runes, prep, pos) {
		pos = -1
		if loc := wordPattern(prep).FindStringIndex(sentence); loc != nil {
			pos = utf8.RuneCountInString(sentence[:loc[0]])
			prepLen = utf8.RuneCountInString(sentence[loc[0]:loc[1]])
		}
	}
	if pos < 0 || pos >= len(runes) {
		return Highlight{Before: sentence}
	}
	end := pos + prepLen
	limit := end + maxHighlightTail
	if limit > len(runes) {
		limit = len(runes)
	}
	for end < limit && !unicode.IsSpace(runes[end]) {
		end++
	}
	return Highlight{
		Before: string(runes[:pos]),
		Prep:   string(runes[pos:end]),
		After:  string(runes[end:]),
	}
}
