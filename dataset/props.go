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
)

var (
	relatedSplitPatt = regexp.MustCompile(`,\s*`)

	displayedProps = []struct {
		key   string
		label string
	}{
		{"cprop", "Complement"},
		{"aprop", "Attachment"},
		{"sup", "Supersense"},
		{"srtype", "SR Type"},
		{"opreps", "Related"},
		{"subc", "Subcat"},
	}
)

// RelatedPreps parses a comma separated list of prepositions
// with a similar meaning
func RelatedPreps(opreps string) []string {
	items := relatedSplitPatt.Split(opreps, -1)
	ans := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			ans = append(ans, item)
		}
	}
	return ans
}

type DisplayProp struct {
	Key     string   `json:"key"`
	Label   string   `json:"label"`
	Value   string   `json:"value"`
	Related []string `json:"related,omitempty"`
}

// DisplayProps returns labeled non-empty properties
// intended for presenting a sense to a user
func DisplayProps(prop *PrepProp) []DisplayProp {
	ans := make([]DisplayProp, 0, len(displayedProps))
	if prop == nil {
		return ans
	}
	for _, dp := range displayedProps {
		v := prop.TextValue(dp.key)
		if v == "" {
			continue
		}
		item := DisplayProp{
			Key:   dp.key,
			Label: dp.label,
			Value: v,
		}
		if dp.key == "opreps" {
			item.Related = RelatedPreps(v)
		}
		ans = append(ans, item)
	}
	return ans
}
