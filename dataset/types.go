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

import "errors"

var (
	ErrNotFound = errors.New("not found")
)

// PrepDef is a definition of a single preposition sense
type PrepDef struct {
	Prep  string `json:"prep"`
	Sense string `json:"sense"`
	Def   string `json:"def"`
}

// PrepProp contains linguistic properties of a preposition sense
// (complement and attachment properties, supersenses, relations
// to other inventories, corpus statistics etc.)
type PrepProp struct {
	Prep     string  `json:"prep"`
	Sense    string  `json:"sense"`
	CProp    string  `json:"cprop"`
	AProp    string  `json:"aprop"`
	Sup      string  `json:"sup"`
	SRType   string  `json:"srtype"`
	Tratz    *string `json:"tratz"`
	Srikumar *string `json:"srikumar"`
	OPreps   *string `json:"opreps"`
	SRel     *string `json:"srel"`
	QSyn     *string `json:"qsyn"`
	QPar     *string `json:"qpar"`
	Com      *string `json:"com"`
	CNN      *int    `json:"cnn"`
	CNNP     *int    `json:"cnnp"`
	CWH      *int    `json:"cwh"`
	CIng     *int    `json:"cing"`
	CLexSet  *string `json:"clexset"`
	GNoun    *int    `json:"gnoun"`
	GVerb    *int    `json:"gverb"`
	GAdj     *int    `json:"gadj"`
	CSel     *string `json:"csel"`
	GSel     *string `json:"gsel"`
	COnto    *string `json:"conto"`
	SSense   *string `json:"ssense"`
	CLAnal   *int    `json:"clanal"`
	Subc     string  `json:"subc"`
}

func strOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

// TextValue returns a value of a text property identified
// by its column name. NULL and unknown properties produce
// an empty string.
func (p *PrepProp) TextValue(key string) string {
	switch key {
	case "cprop":
		return p.CProp
	case "aprop":
		return p.AProp
	case "sup":
		return p.Sup
	case "srtype":
		return p.SRType
	case "tratz":
		return strOrEmpty(p.Tratz)
	case "srikumar":
		return strOrEmpty(p.Srikumar)
	case "opreps":
		return strOrEmpty(p.OPreps)
	case "srel":
		return strOrEmpty(p.SRel)
	case "qsyn":
		return strOrEmpty(p.QSyn)
	case "qpar":
		return strOrEmpty(p.QPar)
	case "com":
		return strOrEmpty(p.Com)
	case "clexset":
		return strOrEmpty(p.CLexSet)
	case "csel":
		return strOrEmpty(p.CSel)
	case "gsel":
		return strOrEmpty(p.GSel)
	case "conto":
		return strOrEmpty(p.COnto)
	case "ssense":
		return strOrEmpty(p.SSense)
	case "subc":
		return p.Subc
	}
	return ""
}

// PrepCorp is a corpus example of a preposition sense
type PrepCorp struct {
	Prep   string `json:"prep"`
	Source string `json:"source"`
	Sense  string `json:"sense"`
	Inst   int    `json:"inst"`

	// Preploc is an expected (character) position of the
	// preposition in the sentence
	Preploc  int    `json:"preploc"`
	Sentence string `json:"sentence"`
}

type PrepStats struct {
	Prep     string `json:"prep"`
	Senses   int    `json:"senses"`
	Examples int    `json:"examples"`
}
