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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRelatedPreps(t *testing.T) {
	assert.Equal(t, []string{"upon", "onto", "at"}, RelatedPreps("upon,onto ,  , at"))
	assert.Equal(t, []string{}, RelatedPreps(""))
}

func TestDisplayProps(t *testing.T) {
	prop := &PrepProp{
		Prep:   "on",
		Sense:  "1(1)",
		CProp:  "surface",
		Sup:    "Locus",
		OPreps: strPtr("upon, onto"),
		Tratz:  strPtr("loc"),
	}
	props := DisplayProps(prop)
	assert.Len(t, props, 3)
	assert.Equal(t, DisplayProp{Key: "cprop", Label: "Complement", Value: "surface"}, props[0])
	assert.Equal(t, "Supersense", props[1].Label)
	assert.Equal(t, "Related", props[2].Label)
	assert.Equal(t, []string{"upon", "onto"}, props[2].Related)
}

func TestDisplayPropsNil(t *testing.T) {
	assert.Empty(t, DisplayProps(nil))
}
