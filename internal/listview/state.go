// Package listview implements the list-management engine shared by
// every admin screen: a wholesale-replaced item list, a debounced
// search term, the derived filtered view, page windowing, and per-row
// in-flight action tracking.
//
// The package is UI-free. The TUI layer owns timers and rendering; this
// package owns the bookkeeping so the derivation rules are testable in
// isolation.
package listview

import "strings"

// DefaultPageSize is used when a State is created with a non-positive
// page size.
const DefaultPageSize = 10

// State holds the view state for one entity list. Items are always
// replaced wholesale by SetItems; nothing here mutates an item in place.
type State[T any] struct {
	items      []T
	searchText func(T) string

	search  string // raw term, as typed
	applied string // debounced term the filtered view is derived from
	seq     int    // bumped on every SetSearch; stale commits are dropped

	page     int
	pageSize int
}

// New creates a State. searchText projects an item to the string the
// filter matches against; nil means "match nothing but the empty term".
func New[T any](searchText func(T) string, pageSize int) *State[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &State[T]{
		searchText: searchText,
		page:       1,
		pageSize:   pageSize,
	}
}

// SetItems replaces the item list wholesale, as after every (re)fetch.
// The current page is clamped into the new range.
func (s *State[T]) SetItems(items []T) {
	s.items = items
	s.clampPage()
}

// Items returns the full unfiltered list as last set.
func (s *State[T]) Items() []T { return s.items }

// SetSearch records the raw search term and returns a sequence number.
// The filtered view is unchanged until CommitSearch is called with the
// same sequence, which is how the caller debounces keystrokes.
func (s *State[T]) SetSearch(term string) int {
	s.search = term
	s.seq++
	return s.seq
}

// Search returns the raw term as typed.
func (s *State[T]) Search() string { return s.search }

// CommitSearch applies the pending search term if seq is still current.
// Stale sequences (a newer keystroke arrived) are dropped. Applying a
// changed term resets the page to 1.
func (s *State[T]) CommitSearch(seq int) bool {
	if seq != s.seq {
		return false
	}
	if s.applied != s.search {
		s.applied = s.search
		s.page = 1
	}
	return true
}

// Applied returns the debounced term the filtered view is derived from.
func (s *State[T]) Applied() string { return s.applied }

// Filtered derives the filtered view: items whose search-text contains
// the applied term, case-insensitively. An empty term yields the full
// list.
func (s *State[T]) Filtered() []T {
	term := strings.ToLower(strings.TrimSpace(s.applied))
	if term == "" || s.searchText == nil {
		return s.items
	}

	filtered := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(s.searchText(item)), term) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// Window returns the visible slice of the filtered view for the current
// page.
func (s *State[T]) Window() []T {
	filtered := s.Filtered()

	start := (s.page - 1) * s.pageSize
	if start >= len(filtered) {
		return nil
	}
	end := start + s.pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end]
}

// Ordinal returns the 1-based display ordinal ("S.No") for a row index
// within the current window.
func (s *State[T]) Ordinal(rowIdx int) int {
	return (s.page-1)*s.pageSize + rowIdx + 1
}

// Page returns the current 1-based page.
func (s *State[T]) Page() int { return s.page }

// PageSize returns the current page size.
func (s *State[T]) PageSize() int { return s.pageSize }

// TotalPages returns the number of pages in the filtered view, at least 1.
func (s *State[T]) TotalPages() int {
	n := len(s.Filtered())
	if n == 0 {
		return 1
	}
	return (n + s.pageSize - 1) / s.pageSize
}

// NextPage advances one page. Returns false at the last page.
func (s *State[T]) NextPage() bool {
	if s.page >= s.TotalPages() {
		return false
	}
	s.page++
	return true
}

// PrevPage goes back one page. Returns false at the first page.
func (s *State[T]) PrevPage() bool {
	if s.page <= 1 {
		return false
	}
	s.page--
	return true
}

// SetPage jumps to the given page, clamped into range.
func (s *State[T]) SetPage(page int) {
	s.page = page
	s.clampPage()
}

// SetPageSize changes the window size and resets to the first page.
func (s *State[T]) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	s.pageSize = size
	s.page = 1
}

func (s *State[T]) clampPage() {
	if total := s.TotalPages(); s.page > total {
		s.page = total
	}
	if s.page < 1 {
		s.page = 1
	}
}
