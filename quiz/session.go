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

package quiz

import (
	"fmt"
	"time"

	"pdepview/merror"

	"github.com/google/uuid"
)

type State string

const (
	StatePlaying  State = "playing"
	StateAnswered State = "answered"

	// MinDisplayedStreak is the smallest streak worth
	// announcing to a user
	MinDisplayedStreak = 2
)

// Session is a state of a single quiz. A session alternates
// between the playing state (waiting for an answer) and
// the answered state (waiting for the next question).
type Session struct {
	ID       string    `json:"id"`
	State    State     `json:"state"`
	Question *Question `json:"question"`
	Selected string    `json:"selected,omitempty"`
	Score    int       `json:"score"`
	Total    int       `json:"total"`
	Streak   int       `json:"streak"`
	Created  time.Time `json:"created"`
	LastUsed time.Time `json:"lastUsed"`
}

func (s *Session) IsCorrect() bool {
	return s.State == StateAnswered && s.Question != nil &&
		s.Selected == s.Question.CorrectSense
}

func (s *Session) ShowStreak() bool {
	return s.Streak >= MinDisplayedStreak
}

// Answer evaluates the selected sense of the current question
func (s *Session) Answer(sense string) (bool, error) {
	if s.State != StatePlaying || s.Question == nil {
		return false, merror.InputError{Msg: "the question has already been answered"}
	}
	if !s.Question.HasOption(sense) {
		return false, merror.InputError{Msg: fmt.Sprintf("sense `%s` is not among the options", sense)}
	}
	s.Selected = sense
	s.State = StateAnswered
	s.Total++
	if sense == s.Question.CorrectSense {
		s.Score++
		s.Streak++

	} else {
		s.Streak = 0
	}
	s.LastUsed = time.Now()
	return s.IsCorrect(), nil
}

// Next sets a new question and switches the session back
// to the playing state. The score is kept.
func (s *Session) Next(q *Question) {
	s.Question = q
	s.Selected = ""
	s.State = StatePlaying
	s.LastUsed = time.Now()
}

func NewSession(q *Question) *Session {
	now := time.Now()
	return &Session{
		ID:       uuid.New().String(),
		State:    StatePlaying,
		Question: q,
		Created:  now,
		LastUsed: now,
	}
}
