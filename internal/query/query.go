package query

import (
	"sort"
	"strings"
)

// Order is a sort direction. Anything other than Desc sorts ascending.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// StatusAll is the sentinel status filter value meaning "no status filtering".
const StatusAll = "all"

// Spec is the combined search/filter/sort/pagination request for one page of
// records. Zero values mean "no effect": an empty search matches everything,
// empty filter sets disable filtering, an unknown sort field skips sorting and
// Limit <= 0 disables pagination. Malformed values never cause an error.
type Spec struct {
	Search     string
	Statuses   []string
	Categories []string
	Scope      string
	SortBy     string
	SortOrder  Order
	Page       int
	Limit      int
}

// Fields parameterizes the engine over one record shape. Nil accessors disable
// the corresponding filter stage; Compare returning nil disables sorting for
// that field.
type Fields[T any] struct {
	// SearchText returns the fields matched case-insensitively against Spec.Search.
	SearchText func(T) []string
	// Status returns the value matched against Spec.Statuses.
	Status func(T) string
	// Category returns the value matched against Spec.Categories.
	Category func(T) string
	// Scope returns the value matched against Spec.Scope.
	Scope func(T) string
	// Compare returns a three-way comparison for the named sort field.
	Compare func(field string) func(a, b T) int
}

// Result is one page of records plus the filtered, pre-pagination count.
type Result[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// Run filters, sorts and paginates the collection according to the spec. The
// stage order is fixed: search, status, category, scope, sort, paginate. The
// input collection is never mutated.
func Run[T any](items []T, spec Spec, f Fields[T]) Result[T] {
	search := strings.ToLower(strings.TrimSpace(spec.Search))
	statuses := filterSet(spec.Statuses)
	categories := filterSet(spec.Categories)
	scope := strings.TrimSpace(spec.Scope)

	filtered := make([]T, 0, len(items))
	for _, item := range items {
		if search != "" && f.SearchText != nil && !matchesSearch(f.SearchText(item), search) {
			continue
		}
		if statuses != nil && f.Status != nil && !statuses[strings.ToLower(f.Status(item))] {
			continue
		}
		if categories != nil && f.Category != nil && !categories[strings.ToLower(f.Category(item))] {
			continue
		}
		if scope != "" && f.Scope != nil && f.Scope(item) != scope {
			continue
		}
		filtered = append(filtered, item)
	}

	if spec.SortBy != "" && f.Compare != nil {
		if cmp := f.Compare(spec.SortBy); cmp != nil {
			desc := spec.SortOrder == Desc
			sort.SliceStable(filtered, func(i, j int) bool {
				c := cmp(filtered[i], filtered[j])
				if desc {
					return c > 0
				}
				return c < 0
			})
		}
	}

	total := len(filtered)
	if spec.Limit <= 0 {
		return Result[T]{Items: filtered, Total: total}
	}

	page := spec.Page
	if page < 0 {
		page = 0
	}
	// Compare without multiplying so a huge page number cannot overflow.
	if total == 0 || page > (total-1)/spec.Limit {
		return Result[T]{Items: []T{}, Total: total}
	}
	start := page * spec.Limit
	end := start + spec.Limit
	if end > total {
		end = total
	}
	return Result[T]{Items: filtered[start:end], Total: total}
}

// filterSet lowercases the values into a set. A nil result means the filter is
// disabled, either because no values were given or the "all" sentinel is present.
func filterSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if v == StatusAll {
			return nil
		}
		set[v] = true
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func matchesSearch(fields []string, search string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}
