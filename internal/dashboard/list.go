package dashboard

import "fmt"

// ListClient is the read side of an entity page: heading, create route,
// table and API reference.
type ListClient[R Row] struct {
	entity  Entity
	storeID string
	rows    []R
}

// NewListClient wraps rows already fetched and ordered by the caller.
func NewListClient[R Row](e Entity, storeID string, rows []R) *ListClient[R] {
	return &ListClient[R]{entity: e, storeID: storeID, rows: rows}
}

func (l *ListClient[R]) Entity() Entity { return l.entity }

// Heading is "Billboards (3)", or "Billboard (1)" for a single row.
func (l *ListClient[R]) Heading() string {
	name := l.entity.Plural
	if len(l.rows) == 1 {
		name = l.entity.Singular
	}
	return fmt.Sprintf("%s (%d)", name, len(l.rows))
}

func (l *ListClient[R]) Description() string {
	return "Manage " + l.entity.lowerPlural() + " for your store"
}

// CanCreate is false for read-only entities such as orders.
func (l *ListClient[R]) CanCreate() bool { return !l.entity.ReadOnly }

func (l *ListClient[R]) NewRoute() string { return l.entity.ItemRoute(l.storeID, "new") }

// Table returns the rows filtered by the entity's search column.
func (l *ListClient[R]) Table(query string) *Table[R] {
	return NewTable(l.rows, l.entity.SearchKey, query)
}

// APIRoutes is empty for read-only entities.
func (l *ListClient[R]) APIRoutes(origin string) []APIRoute {
	if l.entity.ReadOnly {
		return nil
	}
	return APIRoutes(origin, l.storeID, l.entity)
}
