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

package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"pdepview/dataset"
	"pdepview/quiz"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

const (
	DfltPageSize = 20
	MaxPageSize  = 100

	// NumPreviewExamples is the number of examples shown
	// for each sense in a preposition overview
	NumPreviewExamples = 10
)

type Actions struct {
	ds       *dataset.Dataset
	searcher *dataset.Searcher
	quiz     *quiz.Manager
}

type exampleItem struct {
	Source    string            `json:"source"`
	Inst      int               `json:"inst"`
	Sentence  string            `json:"sentence"`
	Highlight dataset.Highlight `json:"highlight"`
}

func mkExamples(items []dataset.PrepCorp) []exampleItem {
	ans := make([]exampleItem, len(items))
	for i, item := range items {
		ans[i] = exampleItem{
			Source:    item.Source,
			Inst:      item.Inst,
			Sentence:  item.Sentence,
			Highlight: dataset.HighlightSentence(item.Sentence, item.Prep, item.Preploc),
		}
	}
	return ans
}

// SenseURL returns a path of a sense detail
func SenseURL(prep, sense string) string {
	return fmt.Sprintf("/preps/%s/senses/%s", url.PathEscape(prep), url.PathEscape(sense))
}

func queryIntArg(ctx *gin.Context, name string, dflt int) (int, error) {
	v := ctx.Query(name)
	if v == "" {
		return dflt, nil
	}
	ans, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid value of `%s`: %s", name, v)
	}
	return ans, nil
}

func respondNotFound(ctx *gin.Context, err error) {
	uniresp.WriteJSONErrorResponse(
		ctx.Writer, uniresp.NewActionErrorFrom(err), http.StatusNotFound)
}

func NewActions(ds *dataset.Dataset, searcher *dataset.Searcher, quizManager *quiz.Manager) *Actions {
	return &Actions{
		ds:       ds,
		searcher: searcher,
		quiz:     quizManager,
	}
}
