package dashboard

import (
	"context"
	"errors"
	"sync"
)

var (
	// ErrBusy is returned when a mutation is requested while another one is
	// in flight. Nothing is sent.
	ErrBusy = errors.New("dashboard: request already in progress")
	// ErrNotOpen is returned by Confirm before the modal was opened.
	ErrNotOpen = errors.New("dashboard: confirmation modal is not open")
)

// ModalState is the delete-confirmation lifecycle.
type ModalState int

const (
	ModalClosed ModalState = iota
	ModalOpen
	ModalDeleting
)

func (s ModalState) String() string {
	switch s {
	case ModalOpen:
		return "open"
	case ModalDeleting:
		return "deleting"
	default:
		return "closed"
	}
}

// AlertModal asks the user to confirm a destructive action.
type AlertModal struct {
	mu      sync.Mutex
	state   ModalState
	mounted bool
}

func (m *AlertModal) Title() string       { return "Are you sure?" }
func (m *AlertModal) Description() string { return "This action cannot be undone." }

// Mount marks the modal as rendered at least once. Until then it is never
// visible.
func (m *AlertModal) Mount() {
	m.mu.Lock()
	m.mounted = true
	m.mu.Unlock()
}

// Visible reports whether the modal should be drawn.
func (m *AlertModal) Visible() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mounted && m.state != ModalClosed
}

func (m *AlertModal) State() ModalState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Loading reports whether the confirmed action is running.
func (m *AlertModal) Loading() bool { return m.State() == ModalDeleting }

// Open shows the modal. It is a no-op while loading.
func (m *AlertModal) Open() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == ModalClosed {
		m.state = ModalOpen
	}
}

// Close hides the modal and reports whether it did; it refuses while loading.
func (m *AlertModal) Close() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == ModalDeleting {
		return false
	}
	m.state = ModalClosed
	return true
}

// Confirm runs action with the modal in the loading state and closes it
// afterwards, whatever the outcome.
func (m *AlertModal) Confirm(ctx context.Context, action func(context.Context) error) error {
	if err := m.begin(); err != nil {
		return err
	}
	defer m.finish()
	return action(ctx)
}

func (m *AlertModal) begin() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch m.state {
	case ModalDeleting:
		return ErrBusy
	case ModalClosed:
		return ErrNotOpen
	}
	m.state = ModalDeleting
	return nil
}

func (m *AlertModal) finish() {
	m.mu.Lock()
	m.state = ModalClosed
	m.mu.Unlock()
}
