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
	"errors"
	"net/http"

	"pdepview/dataset"
	"pdepview/merror"
	"pdepview/quiz"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type answerArgs struct {
	Sense string `json:"sense" binding:"required"`
}

// quizResponse is a public view of a quiz session. Until
// the question is answered, the correct sense is not revealed.
type quizResponse struct {
	SessionID     string            `json:"sessionId"`
	State         quiz.State        `json:"state"`
	Prep          string            `json:"prep"`
	Sentence      string            `json:"sentence"`
	Highlight     dataset.Highlight `json:"highlight"`
	Options       []dataset.PrepDef `json:"options"`
	Score         int               `json:"score"`
	Total         int               `json:"total"`
	Streak        int               `json:"streak"`
	ShowStreak    bool              `json:"showStreak"`
	Selected      string            `json:"selected,omitempty"`
	Correct       *bool             `json:"correct,omitempty"`
	CorrectOption *dataset.PrepDef  `json:"correctOption,omitempty"`
	SenseURL      string            `json:"senseUrl,omitempty"`
}

func newQuizResponse(sess *quiz.Session) quizResponse {
	ans := quizResponse{
		SessionID:  sess.ID,
		State:      sess.State,
		Score:      sess.Score,
		Total:      sess.Total,
		Streak:     sess.Streak,
		ShowStreak: sess.ShowStreak(),
	}
	if sess.Question == nil {
		return ans
	}
	q := sess.Question
	ans.Prep = q.Prep
	ans.Sentence = q.Sentence
	ans.Highlight = q.Highlight
	ans.Options = q.Options
	if sess.State == quiz.StateAnswered {
		correct := sess.IsCorrect()
		ans.Correct = &correct
		ans.Selected = sess.Selected
		ans.SenseURL = SenseURL(q.Prep, q.CorrectSense)
		if opt, ok := q.CorrectOption(); ok {
			ans.CorrectOption = &opt
		}
	}
	return ans
}

func (a *Actions) respondQuizError(ctx *gin.Context, err error) {
	if errors.Is(err, quiz.ErrSessionNotFound) || errors.Is(err, quiz.ErrNoQuestions) {
		respondNotFound(ctx, err)
		return
	}
	uniresp.WriteJSONErrorResponse(
		ctx.Writer, uniresp.NewActionErrorFrom(err), merror.HTTPStatus(err))
}

// NewQuiz godoc
// @Summary      NewQuiz
// @Description  Start a new quiz session and get its first question.
// @Produce      json
// @Success      200 {object} quizResponse
// @Router       /quiz [post]
func (a *Actions) NewQuiz(ctx *gin.Context) {
	sess, err := a.quiz.NewSession(ctx.Request.Context())
	if err != nil {
		a.respondQuizError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, newQuizResponse(sess))
}

// QuizState godoc
// @Summary      QuizState
// @Description  Get the current state of a quiz session.
// @Produce      json
// @Param        sessionId path string true "a quiz session ID"
// @Success      200 {object} quizResponse
// @Router       /quiz/{sessionId} [get]
func (a *Actions) QuizState(ctx *gin.Context) {
	sess, err := a.quiz.Session(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		a.respondQuizError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, newQuizResponse(sess))
}

// AnswerQuiz godoc
// @Summary      AnswerQuiz
// @Description  Answer the current question of a quiz session. The response reveals the correct sense.
// @Accept       json
// @Produce      json
// @Param        sessionId path string true "a quiz session ID"
// @Param        args body answerArgs true "the selected sense"
// @Success      200 {object} quizResponse
// @Router       /quiz/{sessionId}/answer [post]
func (a *Actions) AnswerQuiz(ctx *gin.Context) {
	var args answerArgs
	if err := ctx.ShouldBindJSON(&args); err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	sess, err := a.quiz.Answer(ctx.Request.Context(), ctx.Param("sessionId"), args.Sense)
	if err != nil {
		a.respondQuizError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, newQuizResponse(sess))
}

// NextQuestion godoc
// @Summary      NextQuestion
// @Description  Load a new question into a quiz session.
// @Produce      json
// @Param        sessionId path string true "a quiz session ID"
// @Success      200 {object} quizResponse
// @Router       /quiz/{sessionId}/next [post]
func (a *Actions) NextQuestion(ctx *gin.Context) {
	sess, err := a.quiz.Next(ctx.Request.Context(), ctx.Param("sessionId"))
	if err != nil {
		a.respondQuizError(ctx, err)
		return
	}
	uniresp.WriteJSONResponse(ctx.Writer, newQuizResponse(sess))
}
