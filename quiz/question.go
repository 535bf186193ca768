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
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"pdepview/dataset"

	"github.com/czcorpus/cnc-gokit/collections"
)

const (
	MaxOptions = 4
)

var (
	ErrNoQuestions = errors.New("no preposition suitable for a quiz question")
)

// Question asks for the sense of a preposition used
// in a corpus example
type Question struct {
	Prep         string            `json:"prep"`
	Sentence     string            `json:"sentence"`
	Highlight    dataset.Highlight `json:"highlight"`
	Source       string            `json:"source"`
	Inst         int               `json:"inst"`
	CorrectSense string            `json:"correctSense"`
	Options      []dataset.PrepDef `json:"options"`
}

// HasOption tests whether sense is among the offered answers
func (q *Question) HasOption(sense string) bool {
	for _, opt := range q.Options {
		if opt.Sense == sense {
			return true
		}
	}
	return false
}

// CorrectOption returns the offered definition matching
// the example's sense. It may be missing in case the sense
// has no definition.
func (q *Question) CorrectOption() (dataset.PrepDef, bool) {
	for _, opt := range q.Options {
		if opt.Sense == q.CorrectSense {
			return opt, true
		}
	}
	return dataset.PrepDef{}, false
}

// ----------------------------

// Generator creates random questions from a dataset. Only
// prepositions with multiple senses and at least one example
// labeled with a sense are used.
type Generator struct {
	ds       *dataset.Dataset
	eligible []string
	mu       sync.Mutex
	rnd      *rand.Rand
}

func (g *Generator) NumEligiblePreps() int {
	return len(g.eligible)
}

func (g *Generator) intN(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rnd.IntN(n)
}

func (g *Generator) shuffle(n int, swap func(i, j int)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.rnd.Shuffle(n, swap)
}

func (g *Generator) pickOptions(defs []dataset.PrepDef, sense string) []dataset.PrepDef {
	if len(defs) <= MaxOptions {
		ans := make([]dataset.PrepDef, len(defs))
		copy(ans, defs)
		return ans
	}
	distractors := collections.SliceFilter(
		defs,
		func(d dataset.PrepDef, i int) bool {
			return d.Sense != sense
		},
	)
	g.shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	distractors = distractors[:min(len(distractors), MaxOptions-1)]
	ans := make([]dataset.PrepDef, 0, MaxOptions)
	for _, d := range defs {
		if d.Sense == sense {
			ans = append(ans, d)
			break
		}
	}
	return append(ans, distractors...)
}

// NewQuestion picks a random preposition, then a random sense
// among its labeled examples and then a random example of the sense.
func (g *Generator) NewQuestion() (*Question, error) {
	if len(g.eligible) == 0 {
		return nil, ErrNoQuestions
	}
	prep := g.eligible[g.intN(len(g.eligible))]
	bySense := make(map[string][]dataset.PrepCorp)
	senses := make([]string, 0, 10)
	for _, ex := range g.ds.CorpusForPrepSense(prep, "") {
		if ex.Sense == "" {
			continue
		}
		if _, ok := bySense[ex.Sense]; !ok {
			senses = append(senses, ex.Sense)
		}
		bySense[ex.Sense] = append(bySense[ex.Sense], ex)
	}
	sense := senses[g.intN(len(senses))]
	examples := bySense[sense]
	example := examples[g.intN(len(examples))]

	options := g.pickOptions(g.ds.DefsForPrep(prep), sense)
	g.shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return &Question{
		Prep:         prep,
		Sentence:     example.Sentence,
		Highlight:    dataset.HighlightSentence(example.Sentence, prep, example.Preploc),
		Source:       example.Source,
		Inst:         example.Inst,
		CorrectSense: sense,
		Options:      options,
	}, nil
}

func hasLabeledExample(ds *dataset.Dataset, prep string) bool {
	for _, ex := range ds.CorpusForPrepSense(prep, "") {
		if ex.Sense != "" {
			return true
		}
	}
	return false
}

// NewGenerator creates a question generator. A zero seed
// means the generator is seeded from the current time.
func NewGenerator(ds *dataset.Dataset, seed uint64) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	eligible := collections.SliceFilter(
		ds.PrepsWithMultipleSenses(),
		func(prep string, i int) bool {
			return hasLabeledExample(ds, prep)
		},
	)
	return &Generator{
		ds:       ds,
		eligible: eligible,
		rnd:      rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}
