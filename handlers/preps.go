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
	"fmt"
	"net/http"

	"pdepview/dataset"
	"pdepview/general"

	"github.com/czcorpus/cnc-gokit/uniresp"
	"github.com/gin-gonic/gin"
)

type prepListResponse struct {
	Query   string              `json:"query"`
	Sort    dataset.SortOption  `json:"sort"`
	Summary string              `json:"summary"`
	Items   []dataset.PrepStats `json:"items"`
}

type senseOverview struct {
	Sense       string                `json:"sense"`
	Def         string                `json:"def"`
	URL         string                `json:"url"`
	Props       []dataset.DisplayProp `json:"props"`
	NumExamples int                   `json:"numExamples"`
	Examples    []exampleItem         `json:"examples"`
}

type prepDetailResponse struct {
	Prep        string          `json:"prep"`
	NumSenses   int             `json:"numSenses"`
	NumExamples int             `json:"numExamples"`
	Summary     string          `json:"summary"`
	Senses      []senseOverview `json:"senses"`
}

type senseDetailResponse struct {
	Prep     string                `json:"prep"`
	Sense    string                `json:"sense"`
	Def      string                `json:"def"`
	Props    []dataset.DisplayProp `json:"props"`
	Total    int                   `json:"total"`
	Offset   int                   `json:"offset"`
	Limit    int                   `json:"limit"`
	Examples []exampleItem         `json:"examples"`
}

func (a *Actions) displayProps(prep, sense string) []dataset.DisplayProp {
	prop, err := a.ds.PropForSense(prep, sense)
	if err != nil {
		return []dataset.DisplayProp{}
	}
	return dataset.DisplayProps(&prop)
}

// Preps godoc
// @Summary      Preps
// @Description  List prepositions with their number of senses and examples. The list can be filtered and sorted.
// @Produce      json
// @Param        q query string false "a case-insensitive substring of a preposition"
// @Param        sort query string false "sorting of the list" enums(alpha, senses, examples)
// @Success      200 {object} prepListResponse
// @Router       /preps [get]
func (a *Actions) Preps(ctx *gin.Context) {
	query := ctx.Query("q")
	sortBy, err := dataset.ParseSortOption(ctx.Query("sort"))
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	items := a.searcher.Search(query, sortBy)
	ans := prepListResponse{
		Query:   query,
		Sort:    sortBy,
		Summary: general.CountLabel(len(items), "preposition"),
		Items:   items,
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// PrepDetail godoc
// @Summary      PrepDetail
// @Description  Get all the senses of a preposition along with their properties and first few examples.
// @Produce      json
// @Param        prep path string true "a preposition"
// @Success      200 {object} prepDetailResponse
// @Router       /preps/{prep} [get]
func (a *Actions) PrepDetail(ctx *gin.Context) {
	prep := ctx.Param("prep")
	defs := a.ds.DefsForPrep(prep)
	if len(defs) == 0 {
		respondNotFound(ctx, fmt.Errorf("preposition `%s` %w", prep, dataset.ErrNotFound))
		return
	}
	senses := make([]senseOverview, len(defs))
	for i, def := range defs {
		examples := a.ds.CorpusForPrepSense(prep, def.Sense)
		preview := examples
		if len(preview) > NumPreviewExamples {
			preview = preview[:NumPreviewExamples]
		}
		senses[i] = senseOverview{
			Sense:       def.Sense,
			Def:         def.Def,
			URL:         SenseURL(prep, def.Sense),
			Props:       a.displayProps(prep, def.Sense),
			NumExamples: len(examples),
			Examples:    mkExamples(preview),
		}
	}
	numExamples := a.ds.ExampleCountForPrep(prep)
	ans := prepDetailResponse{
		Prep:        prep,
		NumSenses:   len(defs),
		NumExamples: numExamples,
		Summary: fmt.Sprintf(
			"%s, %s",
			general.CountLabel(len(defs), "sense"),
			general.CountLabel(numExamples, "example"),
		),
		Senses: senses,
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}

// SenseDetail godoc
// @Summary      SenseDetail
// @Description  Get a definition, properties and paginated examples of a preposition sense.
// @Produce      json
// @Param        prep path string true "a preposition"
// @Param        sense path string true "a sense identifier (e.g. 1(1))"
// @Param        offset query int false "index of the first example" default(0)
// @Param        limit query int false "max. number of examples (at most 100)" default(20)
// @Success      200 {object} senseDetailResponse
// @Router       /preps/{prep}/senses/{sense} [get]
func (a *Actions) SenseDetail(ctx *gin.Context) {
	prep := ctx.Param("prep")
	sense := ctx.Param("sense")
	offset, err := queryIntArg(ctx, "offset", 0)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	limit, err := queryIntArg(ctx, "limit", DfltPageSize)
	if err != nil {
		uniresp.RespondWithErrorJSON(ctx, err, http.StatusBadRequest)
		return
	}
	if offset < 0 || limit < 1 || limit > MaxPageSize {
		uniresp.RespondWithErrorJSON(
			ctx,
			fmt.Errorf("invalid page, offset must be >= 0 and limit between 1 and %d", MaxPageSize),
			http.StatusBadRequest,
		)
		return
	}
	def, err := a.ds.DefForSense(prep, sense)
	if errors.Is(err, dataset.ErrNotFound) {
		respondNotFound(ctx, fmt.Errorf("sense `%s` of `%s` %w", sense, prep, err))
		return
	}
	examples := a.ds.CorpusForPrepSense(prep, sense)
	start := min(offset, len(examples))
	page := examples[start : start+min(limit, len(examples)-start)]
	ans := senseDetailResponse{
		Prep:     prep,
		Sense:    sense,
		Def:      def.Def,
		Props:    a.displayProps(prep, sense),
		Total:    len(examples),
		Offset:   offset,
		Limit:    limit,
		Examples: mkExamples(page),
	}
	uniresp.WriteJSONResponse(ctx.Writer, ans)
}
