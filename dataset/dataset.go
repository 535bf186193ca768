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
	"sort"
)

// Dataset provides read-only access to preposition definitions,
// properties and corpus examples. Returned slices are shared
// with the dataset and must not be modified.
type Dataset struct {
	preps  []string
	defs   []PrepDef
	props  []PrepProp
	corpus []PrepCorp

	defsByPrep   map[string][]PrepDef
	propsByPrep  map[string][]PrepProp
	corpusByPrep map[string][]PrepCorp
	stats        []PrepStats
}

func (ds *Dataset) buildIndexes() {
	ds.defsByPrep = make(map[string][]PrepDef)
	for _, d := range ds.defs {
		ds.defsByPrep[d.Prep] = append(ds.defsByPrep[d.Prep], d)
	}
	ds.propsByPrep = make(map[string][]PrepProp)
	for _, p := range ds.props {
		ds.propsByPrep[p.Prep] = append(ds.propsByPrep[p.Prep], p)
	}
	ds.corpusByPrep = make(map[string][]PrepCorp)
	for _, c := range ds.corpus {
		ds.corpusByPrep[c.Prep] = append(ds.corpusByPrep[c.Prep], c)
	}
	ds.stats = make([]PrepStats, len(ds.preps))
	for i, prep := range ds.preps {
		ds.stats[i] = PrepStats{
			Prep:     prep,
			Senses:   len(ds.defsByPrep[prep]),
			Examples: len(ds.corpusByPrep[prep]),
		}
	}
}

func (ds *Dataset) AllPreps() []string {
	return ds.preps
}

// AllPrepStats returns all the prepositions along with
// their number of senses and examples
func (ds *Dataset) AllPrepStats() []PrepStats {
	return ds.stats
}

func (ds *Dataset) DefsForPrep(prep string) []PrepDef {
	return ds.defsByPrep[prep]
}

func (ds *Dataset) PropsForPrep(prep string) []PrepProp {
	return ds.propsByPrep[prep]
}

// CorpusForPrepSense returns corpus examples of a preposition.
// If sense is empty, examples of all the senses are returned.
func (ds *Dataset) CorpusForPrepSense(prep, sense string) []PrepCorp {
	examples := ds.corpusByPrep[prep]
	if sense == "" {
		return examples
	}
	ans := make([]PrepCorp, 0, len(examples))
	for _, ex := range examples {
		if ex.Sense == sense {
			ans = append(ans, ex)
		}
	}
	return ans
}

func (ds *Dataset) PropForSense(prep, sense string) (PrepProp, error) {
	for _, p := range ds.propsByPrep[prep] {
		if p.Sense == sense {
			return p, nil
		}
	}
	return PrepProp{}, ErrNotFound
}

func (ds *Dataset) DefForSense(prep, sense string) (PrepDef, error) {
	for _, d := range ds.defsByPrep[prep] {
		if d.Sense == sense {
			return d, nil
		}
	}
	return PrepDef{}, ErrNotFound
}

func (ds *Dataset) SenseCountForPrep(prep string) int {
	return len(ds.defsByPrep[prep])
}

func (ds *Dataset) ExampleCountForPrep(prep string) int {
	return len(ds.corpusByPrep[prep])
}

// PrepsWithMultipleSenses returns prepositions having at least two
// definitions, in the order of their first occurrence among definitions.
func (ds *Dataset) PrepsWithMultipleSenses() []string {
	ans := make([]string, 0, len(ds.defsByPrep))
	seen := make(map[string]bool)
	for _, d := range ds.defs {
		if seen[d.Prep] {
			continue
		}
		seen[d.Prep] = true
		if len(ds.defsByPrep[d.Prep]) >= 2 {
			ans = append(ans, d.Prep)
		}
	}
	return ans
}

func (ds *Dataset) NumDefs() int {
	return len(ds.defs)
}

func (ds *Dataset) NumExamples() int {
	return len(ds.corpus)
}

// New creates a dataset from already loaded data. In case preps
// is nil, the list of prepositions is derived from definitions.
func New(preps []string, defs []PrepDef, props []PrepProp, corpus []PrepCorp) *Dataset {
	if preps == nil {
		set := make(map[string]struct{})
		for _, d := range defs {
			set[d.Prep] = struct{}{}
		}
		preps = make([]string, 0, len(set))
		for p := range set {
			preps = append(preps, p)
		}
		sort.Strings(preps)
	}
	ds := &Dataset{
		preps:  preps,
		defs:   defs,
		props:  props,
		corpus: corpus,
	}
	ds.buildIndexes()
	return ds
}
