// internal/analytics/filter.go
package analytics

import (
	"fmt"
	"sort"
)

// Filter is a multi-select over one category dimension (teams or regions).
// The universe is every distinct value observed in the current row set; the
// selection is interpreted as "all" when it is empty or covers the whole
// universe, so "3 of 3 selected" filters identically to "0 selected".
type Filter struct {
	universe []string
	selected map[string]struct{}
}

// NewFilter builds a filter whose universe is the given values (deduped,
// blanks dropped, sorted) with everything selected.
func NewFilter(values []string) *Filter {
	seen := make(map[string]struct{})
	var universe []string
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		universe = append(universe, v)
	}
	sort.Strings(universe)

	f := &Filter{universe: universe}
	f.SelectAll()
	return f
}

// Universe returns the full category value list in sorted order.
func (f *Filter) Universe() []string {
	return f.universe
}

// Selected returns the currently selected values in sorted order.
func (f *Filter) Selected() []string {
	out := make([]string, 0, len(f.selected))
	for v := range f.selected {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// IsSelected reports whether a single value is currently selected.
func (f *Filter) IsSelected(value string) bool {
	_, ok := f.selected[value]
	return ok
}

// IncludesAll reports whether the selection means "no restriction": either
// nothing or everything is selected.
func (f *Filter) IncludesAll() bool {
	return len(f.selected) == 0 || len(f.selected) == len(f.universe)
}

// Matches is the row inclusion predicate.
func (f *Filter) Matches(value string) bool {
	if f == nil || f.IncludesAll() {
		return true
	}
	_, ok := f.selected[value]
	return ok
}

// Toggle flips one value's membership in the selection.
func (f *Filter) Toggle(value string) {
	if _, ok := f.selected[value]; ok {
		delete(f.selected, value)
	} else {
		f.selected[value] = struct{}{}
	}
}

// Only reduces the selection to the single given value. This is
// destructive: toggling the value back afterwards does not restore the
// prior selection.
func (f *Filter) Only(value string) {
	f.selected = map[string]struct{}{value: {}}
}

// Deselect removes one value from the selection.
func (f *Filter) Deselect(value string) {
	delete(f.selected, value)
}

// SelectAll selects every universe value.
func (f *Filter) SelectAll() {
	f.selected = make(map[string]struct{}, len(f.universe))
	for _, v := range f.universe {
		f.selected[v] = struct{}{}
	}
}

// Clear empties the selection. An empty selection still means "all" for
// filtering purposes.
func (f *Filter) Clear() {
	f.selected = make(map[string]struct{})
}

// SummaryLabel renders the filter button text: "All Teams", a single
// selected name, or "3 teams selected".
func (f *Filter) SummaryLabel(plural string) string {
	if f.IncludesAll() {
		return "All " + plural
	}
	selected := f.Selected()
	if len(selected) == 1 {
		return selected[0]
	}
	return fmt.Sprintf("%d %s selected", len(selected), lower(plural))
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
