// Package listview is the shared view-model behind every admin grid:
// conjunctive search + predicate filters, a stable sort, and caller-applied
// pagination.
package listview

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Dir string

const (
	Asc  Dir = "asc"
	Desc Dir = "desc"
)

// AllowedPageSizes is the fixed set of grid page sizes. Controllers reject
// anything else before pagination runs.
var AllowedPageSizes = []int{10, 25, 50, 100}

func AllowedPageSize(n int) bool {
	for _, s := range AllowedPageSizes {
		if n == s {
			return true
		}
	}
	return false
}

// Filter pairs a raw filter value with its predicate. An empty value means
// the filter is inactive and retains everything.
type Filter[T any] struct {
	Value string
	Pred  func(item T, value string) bool
}

// Accessors maps grid field names to value extractors. The same map serves
// the search and sort stages.
type Accessors[T any] map[string]func(T) any

// Select applies the filter and sort stages and returns a new slice; the
// input is never mutated. Search and every active filter are ANDed. The sort
// is stable, so ties keep their insertion order.
func Select[T any](items []T, search string, searchFields []string, sortField string, dir Dir, filters []Filter[T], fields Accessors[T]) []T {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]T, 0, len(items))
	for _, item := range items {
		if needle != "" && !matchesSearch(item, needle, searchFields, fields) {
			continue
		}
		if !passesFilters(item, filters) {
			continue
		}
		out = append(out, item)
	}

	if sortField != "" {
		if access, ok := fields[sortField]; ok {
			sortItems(out, access, dir)
		}
	}

	return out
}

func matchesSearch[T any](item T, needle string, searchFields []string, fields Accessors[T]) bool {
	for _, name := range searchFields {
		access, ok := fields[name]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(fmt.Sprint(access(item))), needle) {
			return true
		}
	}
	return false
}

func passesFilters[T any](item T, filters []Filter[T]) bool {
	for _, f := range filters {
		if f.Value == "" {
			continue
		}
		if !f.Pred(item, f.Value) {
			return false
		}
	}
	return true
}

func sortItems[T any](items []T, access func(T) any, dir Dir) {
	// Collators are not safe for concurrent use, so each sort gets its own.
	col := collate.New(language.English, collate.Loose)

	sort.SliceStable(items, func(i, j int) bool {
		a, b := access(items[i]), access(items[j])

		fa, aNum := toFloat(a)
		fb, bNum := toFloat(b)
		if aNum && bNum {
			if dir == Desc {
				return fb < fa
			}
			return fa < fb
		}

		cmp := col.CompareString(fmt.Sprint(a), fmt.Sprint(b))
		if dir == Desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Paginate slices the 1-based page out of items. A page beyond the end
// yields an empty slice rather than clamping to the last page; after a
// filter shrinks the result the grid shows "no rows" until the page resets.
func Paginate[T any](items []T, page, pageSize int) []T {
	start := (page - 1) * pageSize
	if page < 1 || start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// TotalPages is ceil(total/pageSize) with a floor of one page.
func TotalPages(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}
