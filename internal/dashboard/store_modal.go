package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/georgemunganga/storeadmin/internal/modules/store"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

var errMissingID = errors.New("dashboard: created store has no id")

// StoreModal creates a store and sends the browser to it.
type StoreModal struct {
	client *Client
	fx     Effects
	logger *zap.Logger

	mu    sync.Mutex
	open  bool
	state FormState
	errs  validation.Errors
}

func NewStoreModal(client *Client, fx Effects, logger *zap.Logger) *StoreModal {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StoreModal{client: client, fx: fx, logger: logger}
}

func (m *StoreModal) Title() string       { return "Create store" }
func (m *StoreModal) Description() string { return "Add a new store to manage products and categories" }

func (m *StoreModal) Open() {
	m.mu.Lock()
	m.open = true
	m.mu.Unlock()
}

// Close is refused while a submit is in flight.
func (m *StoreModal) Close() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state == Submitting {
		return false
	}
	m.open = false
	return true
}

func (m *StoreModal) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

func (m *StoreModal) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state == Submitting
}

func (m *StoreModal) Errors() validation.Errors {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errs
}

// Submit creates a store called name and performs a full navigation to it.
// It returns the new store's id.
func (m *StoreModal) Submit(ctx context.Context, name string) (string, error) {
	in := store.Input{Name: strings.TrimSpace(name)}

	m.mu.Lock()
	if m.state == Submitting {
		m.mu.Unlock()
		return "", ErrBusy
	}
	if err := validation.Struct(in); err != nil {
		errors.As(err, &m.errs)
		m.mu.Unlock()
		return "", err
	}
	m.errs = nil
	m.state = Submitting
	m.mu.Unlock()

	var created struct {
		ID string `json:"id"`
	}
	err := m.client.Do(ctx, http.MethodPost, "/api/stores", in, &created)

	m.mu.Lock()
	m.state = Idle
	m.mu.Unlock()

	if err == nil && created.ID == "" {
		err = errMissingID
	}
	if err != nil {
		m.logger.Error("create store failed", zap.String("name", in.Name), zap.Error(err))
		m.fx.Error(GenericError)
		return "", err
	}
	m.fx.Assign("/" + created.ID)
	return created.ID, nil
}
