package dashboard

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/georgemunganga/storeadmin/internal/modules/store"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

// SettingsForm renames or deletes the active store.
type SettingsForm struct {
	client  *Client
	storeID string
	fx      Effects

	mu    sync.Mutex
	state FormState
	errs  validation.Errors
	modal AlertModal
}

func NewSettingsForm(client *Client, storeID string, fx Effects) *SettingsForm {
	return &SettingsForm{client: client, storeID: storeID, fx: fx}
}

func (f *SettingsForm) Title() string       { return "Settings" }
func (f *SettingsForm) Description() string { return "Manage store preferences" }
func (f *SettingsForm) Modal() *AlertModal  { return &f.modal }

func (f *SettingsForm) Errors() validation.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs
}

func (f *SettingsForm) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state == Submitting || f.modal.Loading()
}

func (f *SettingsForm) path() string { return "/api/" + Stores.Path + "/" + f.storeID }

// Submit renames the store.
func (f *SettingsForm) Submit(ctx context.Context, name string) error {
	in := store.Input{Name: strings.TrimSpace(name)}

	f.mu.Lock()
	if f.state == Submitting || f.modal.Loading() {
		f.mu.Unlock()
		return ErrBusy
	}
	if err := validation.Struct(in); err != nil {
		errors.As(err, &f.errs)
		f.mu.Unlock()
		return err
	}
	f.errs = nil
	f.state = Submitting
	f.mu.Unlock()

	err := f.client.Do(ctx, http.MethodPatch, f.path(), in, nil)

	f.mu.Lock()
	f.state = Idle
	f.mu.Unlock()

	if err != nil {
		f.fx.Error(GenericError)
		return err
	}
	f.fx.Refresh()
	f.fx.Success("Store updated.")
	return nil
}

func (f *SettingsForm) OpenDelete() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == Submitting || f.modal.Loading() {
		return ErrBusy
	}
	f.modal.Open()
	return nil
}

// ConfirmDelete deletes the store and returns to the root page.
func (f *SettingsForm) ConfirmDelete(ctx context.Context) error {
	f.mu.Lock()
	if f.state == Submitting {
		f.mu.Unlock()
		return ErrBusy
	}
	err := f.modal.begin()
	f.mu.Unlock()
	if err != nil {
		return err
	}
	defer f.modal.finish()

	if err := f.client.Do(ctx, http.MethodDelete, f.path(), nil, nil); err != nil {
		f.fx.Error(Stores.DeleteWarning())
		return err
	}
	f.fx.Refresh()
	f.fx.Push("/")
	f.fx.Success("Store deleted.")
	return nil
}
