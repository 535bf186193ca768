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
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pdepview/dataset"
	"pdepview/quiz"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string {
	return &s
}

func createTestDataset() *dataset.Dataset {
	defs := []dataset.PrepDef{
		{Prep: "on", Sense: "1(1)", Def: "Touching a surface"},
		{Prep: "on", Sense: "2(1)", Def: "Concerning"},
		{Prep: "about", Sense: "1(1)", Def: "Concerning"},
		{Prep: "next to", Sense: "1(1)", Def: "Beside"},
	}
	props := []dataset.PrepProp{
		{Prep: "on", Sense: "1(1)", CProp: "surface", OPreps: strPtr("upon, onto")},
	}
	corpus := make([]dataset.PrepCorp, 0, 30)
	for i := 0; i < 25; i++ {
		corpus = append(corpus, dataset.PrepCorp{
			Prep: "on", Sense: "1(1)", Inst: i + 1, Preploc: 7, Sentence: "Put it on the table",
		})
	}
	corpus = append(corpus, dataset.PrepCorp{
		Prep: "on", Sense: "2(1)", Inst: 26, Preploc: 7, Sentence: "A book on Go",
	})
	return dataset.New(nil, defs, props, corpus)
}

func setupRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ds := createTestDataset()
	searcher, err := dataset.NewSearcher(ds, 10)
	assert.NoError(t, err)
	manager := quiz.NewManager(quiz.NewGenerator(ds, 1), quiz.NewMemoryStore(time.Minute))
	actions := NewActions(ds, searcher, manager)
	engine := gin.New()
	engine.GET("/preps", actions.Preps)
	engine.GET("/preps/:prep", actions.PrepDetail)
	engine.GET("/preps/:prep/senses/:sense", actions.SenseDetail)
	engine.POST("/quiz", actions.NewQuiz)
	engine.GET("/quiz/:sessionId", actions.QuizState)
	engine.POST("/quiz/:sessionId/answer", actions.AnswerQuiz)
	engine.POST("/quiz/:sessionId/next", actions.NextQuestion)
	return engine
}

func doRequest(engine *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var ans T
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &ans))
	return ans
}

func TestPreps(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/preps?q=O&sort=senses", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[prepListResponse](t, w)
	assert.Equal(t, dataset.SortSenses, resp.Sort)
	assert.Equal(t, "3 prepositions", resp.Summary)
	if assert.Len(t, resp.Items, 3) {
		assert.Equal(t, "on", resp.Items[0].Prep)
		assert.Equal(t, 2, resp.Items[0].Senses)
		assert.Equal(t, 26, resp.Items[0].Examples)
	}
}

func TestPrepsInvalidSort(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/preps?sort=length", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPrepDetail(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/preps/on", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[prepDetailResponse](t, w)
	assert.Equal(t, 2, resp.NumSenses)
	assert.Equal(t, 26, resp.NumExamples)
	assert.Equal(t, "2 senses, 26 examples", resp.Summary)
	if assert.Len(t, resp.Senses, 2) {
		first := resp.Senses[0]
		assert.Equal(t, 25, first.NumExamples)
		assert.Len(t, first.Examples, NumPreviewExamples)
		assert.Equal(t, "on", first.Examples[0].Highlight.Prep)
		assert.Equal(t, "/preps/on/senses/1%281%29", first.URL)
		if assert.Len(t, first.Props, 2) {
			assert.Equal(t, "Complement", first.Props[0].Label)
			assert.Equal(t, []string{"upon", "onto"}, first.Props[1].Related)
		}
		assert.Empty(t, resp.Senses[1].Props)
	}
}

func TestPrepDetailMultiword(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/preps/next%20to", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[prepDetailResponse](t, w)
	assert.Equal(t, "next to", resp.Prep)
	assert.Equal(t, "1 sense, 0 examples", resp.Summary)
}

func TestPrepDetailNotFound(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/preps/under", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSenseDetailPagination(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/preps/on/senses/1(1)", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[senseDetailResponse](t, w)
	assert.Equal(t, "Touching a surface", resp.Def)
	assert.Equal(t, 25, resp.Total)
	assert.Equal(t, DfltPageSize, resp.Limit)
	assert.Len(t, resp.Examples, DfltPageSize)

	w = doRequest(engine, http.MethodGet, "/preps/on/senses/1(1)?offset=20&limit=20", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[senseDetailResponse](t, w)
	if assert.Len(t, resp.Examples, 5) {
		assert.Equal(t, 21, resp.Examples[0].Inst)
	}

	w = doRequest(engine, http.MethodGet, "/preps/on/senses/1(1)?offset=100", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[senseDetailResponse](t, w)
	assert.Empty(t, resp.Examples)
}

func TestSenseDetailHugeOffset(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/preps/on/senses/1(1)?offset=9223372036854775800&limit=20", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[senseDetailResponse](t, w)
	assert.Empty(t, resp.Examples)
	assert.Equal(t, 25, resp.Total)
}

func TestSenseDetailInvalidArgs(t *testing.T) {
	engine := setupRouter(t)
	for _, q := range []string{"offset=-1", "limit=0", "limit=101", "offset=x"} {
		w := doRequest(engine, http.MethodGet, "/preps/on/senses/1(1)?"+q, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
	w := doRequest(engine, http.MethodGet, "/preps/on/senses/7(1)", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestQuizFlow(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodPost, "/quiz", "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody[quizResponse](t, w)
	assert.Equal(t, quiz.StatePlaying, resp.State)
	assert.Equal(t, "on", resp.Prep)
	assert.Len(t, resp.Options, 2)
	assert.Nil(t, resp.Correct)
	assert.Nil(t, resp.CorrectOption)
	sessionID := resp.SessionID

	w = doRequest(engine, http.MethodGet, "/quiz/"+sessionID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(engine, http.MethodPost, fmt.Sprintf("/quiz/%s/answer", sessionID), `{"sense": "1(1)"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[quizResponse](t, w)
	assert.Equal(t, quiz.StateAnswered, resp.State)
	assert.Equal(t, 1, resp.Total)
	if assert.NotNil(t, resp.Correct) && assert.NotNil(t, resp.CorrectOption) {
		assert.Equal(t, *resp.Correct, resp.CorrectOption.Sense == "1(1)")
		assert.Equal(t, SenseURL("on", resp.CorrectOption.Sense), resp.SenseURL)
	}

	w = doRequest(engine, http.MethodPost, fmt.Sprintf("/quiz/%s/answer", sessionID), `{"sense": "1(1)"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = doRequest(engine, http.MethodPost, fmt.Sprintf("/quiz/%s/next", sessionID), "")
	assert.Equal(t, http.StatusOK, w.Code)
	resp = decodeBody[quizResponse](t, w)
	assert.Equal(t, quiz.StatePlaying, resp.State)
	assert.Equal(t, 1, resp.Total)
}

func TestQuizErrors(t *testing.T) {
	engine := setupRouter(t)
	w := doRequest(engine, http.MethodGet, "/quiz/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doRequest(engine, http.MethodPost, "/quiz/unknown/answer", `{"sense": "1(1)"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(engine, http.MethodPost, "/quiz", "")
	resp := decodeBody[quizResponse](t, w)
	w = doRequest(engine, http.MethodPost, fmt.Sprintf("/quiz/%s/answer", resp.SessionID), `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
