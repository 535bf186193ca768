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
	"fmt"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	DfltSearchCacheSize = 256
)

type SortOption string

const (
	SortAlpha    SortOption = "alpha"
	SortSenses   SortOption = "senses"
	SortExamples SortOption = "examples"
)

func (so SortOption) Validate() error {
	if so != SortAlpha && so != SortSenses && so != SortExamples {
		return fmt.Errorf("unknown sort option `%s`", so)
	}
	return nil
}

// ParseSortOption parses a sort option with `alpha` as a default
func ParseSortOption(v string) (SortOption, error) {
	if v == "" {
		return SortAlpha, nil
	}
	ans := SortOption(v)
	return ans, ans.Validate()
}

// Searcher filters and sorts prepositions. Results are kept
// in an LRU cache as the underlying dataset never changes.
type Searcher struct {
	ds    *Dataset
	cache *lru.Cache[string, []PrepStats]
}

func (s *Searcher) mkKey(query string, sortBy SortOption) string {
	return fmt.Sprintf("%s#%s", sortBy, query)
}

// Search returns prepositions containing query (case-insensitive)
// sorted by sortBy. Sorting by senses and examples is descending
// and stable (i.e. ties keep the alphabetical order).
func (s *Searcher) Search(query string, sortBy SortOption) []PrepStats {
	q := strings.ToLower(query)
	key := s.mkKey(q, sortBy)
	if ans, ok := s.cache.Get(key); ok {
		return ans
	}
	stats := s.ds.AllPrepStats()
	ans := make([]PrepStats, 0, len(stats))
	for _, item := range stats {
		if q == "" || strings.Contains(strings.ToLower(item.Prep), q) {
			ans = append(ans, item)
		}
	}
	switch sortBy {
	case SortSenses:
		sort.SliceStable(ans, func(i, j int) bool {
			return ans[i].Senses > ans[j].Senses
		})
	case SortExamples:
		sort.SliceStable(ans, func(i, j int) bool {
			return ans[i].Examples > ans[j].Examples
		})
	default:
		coll := collate.New(language.English)
		sort.SliceStable(ans, func(i, j int) bool {
			return coll.CompareString(ans[i].Prep, ans[j].Prep) < 0
		})
	}
	s.cache.Add(key, ans)
	return ans
}

func NewSearcher(ds *Dataset, cacheSize int) (*Searcher, error) {
	if cacheSize <= 0 {
		cacheSize = DfltSearchCacheSize
	}
	cache, err := lru.New[string, []PrepStats](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create search cache: %w", err)
	}
	return &Searcher{
		ds:    ds,
		cache: cache,
	}, nil
}
