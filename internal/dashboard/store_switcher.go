package dashboard

import (
	"strings"
	"sync"
)

// StoreItem is one entry of the store switcher.
type StoreItem struct {
	Label string
	Value string
}

// StoreSwitcher is the navbar popover listing the user's stores.
type StoreSwitcher struct {
	items  []StoreItem
	active string
	modal  *StoreModal
	fx     Effects

	mu   sync.Mutex
	open bool
}

// NewStoreSwitcher builds the switcher from stores the caller already
// loaded; it never fetches.
func NewStoreSwitcher(items []StoreItem, activeID string, modal *StoreModal, fx Effects) *StoreSwitcher {
	return &StoreSwitcher{items: items, active: activeID, modal: modal, fx: fx}
}

func (s *StoreSwitcher) Items() []StoreItem { return s.items }

// Current is the active store, if it is among the items.
func (s *StoreSwitcher) Current() (StoreItem, bool) {
	for _, it := range s.items {
		if it.Value == s.active {
			return it, true
		}
	}
	return StoreItem{}, false
}

// Filter returns the items whose label contains query, ignoring case.
func (s *StoreSwitcher) Filter(query string) []StoreItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.items
	}
	var out []StoreItem
	for _, it := range s.items {
		if strings.Contains(strings.ToLower(it.Label), q) {
			out = append(out, it)
		}
	}
	return out
}

func (s *StoreSwitcher) SetOpen(open bool) {
	s.mu.Lock()
	s.open = open
	s.mu.Unlock()
}

func (s *StoreSwitcher) IsOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// Select closes the popover and navigates to the store.
func (s *StoreSwitcher) Select(id string) {
	s.SetOpen(false)
	s.fx.Push("/" + id)
}

// CreateStore closes the popover and opens the store modal.
func (s *StoreSwitcher) CreateStore() {
	s.SetOpen(false)
	s.modal.Open()
}
