package dashboard

import (
	"slices"
	"strings"
	"sync"
)

// PageSize is the number of rows per table page.
const PageSize = 10

// Table is a filtered, sortable, paginated view over rows.
type Table[R Row] struct {
	mu      sync.Mutex
	all     []R
	rows    []R
	search  string
	query   string
	sortKey string
	desc    bool
	page    int
}

// NewTable keeps the rows whose searchKey column contains query, ignoring
// case.
func NewTable[R Row](rows []R, searchKey, query string) *Table[R] {
	t := &Table[R]{all: rows, search: searchKey}
	t.Filter(query)
	return t
}

// Filter replaces the search query and returns to the first page.
func (t *Table[R]) Filter(query string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.query = query
	q := strings.ToLower(strings.TrimSpace(query))
	t.rows = t.rows[:0:0]
	for _, r := range t.all {
		if q == "" || strings.Contains(strings.ToLower(r.Field(t.search)), q) {
			t.rows = append(t.rows, r)
		}
	}
	t.sortLocked()
	t.page = 0
}

func (t *Table[R]) Query() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.query
}

// SortBy orders rows by the column key, ignoring case. Ties keep their
// original order.
func (t *Table[R]) SortBy(key string, desc bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sortKey, t.desc = key, desc
	t.sortLocked()
}

func (t *Table[R]) sortLocked() {
	if t.sortKey == "" {
		return
	}
	slices.SortStableFunc(t.rows, func(a, b R) int {
		c := strings.Compare(strings.ToLower(a.SortKey(t.sortKey)), strings.ToLower(b.SortKey(t.sortKey)))
		if t.desc {
			return -c
		}
		return c
	})
}

// Len is the number of rows matching the query.
func (t *Table[R]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}

// Rows returns the current page.
func (t *Table[R]) Rows() []R {
	t.mu.Lock()
	defer t.mu.Unlock()
	start := t.page * PageSize
	end := min(start+PageSize, len(t.rows))
	return slices.Clone(t.rows[start:end])
}

// PageIndex is the zero-based current page.
func (t *Table[R]) PageIndex() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.page
}

// PageCount is at least one, even for an empty table.
func (t *Table[R]) PageCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pageCountLocked()
}

func (t *Table[R]) pageCountLocked() int {
	return max(1, (len(t.rows)+PageSize-1)/PageSize)
}

// SetPage moves to page i, clamped to the valid range.
func (t *Table[R]) SetPage(i int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.page = min(max(i, 0), t.pageCountLocked()-1)
}

func (t *Table[R]) CanPrevious() bool { return t.PageIndex() > 0 }

func (t *Table[R]) CanNext() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.page < t.pageCountLocked()-1
}

func (t *Table[R]) Previous() { t.SetPage(t.PageIndex() - 1) }

func (t *Table[R]) Next() { t.SetPage(t.PageIndex() + 1) }
