package dashboard

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/georgemunganga/storeadmin/internal/validation"
)

// ErrCreateMode is returned when deleting from a form that has no entity yet.
var ErrCreateMode = errors.New("dashboard: nothing to delete in create mode")

// FormState is the submit lifecycle of a form.
type FormState int

const (
	Idle FormState = iota
	Submitting
)

func (s FormState) String() string {
	if s == Submitting {
		return "submitting"
	}
	return "idle"
}

// Form creates or edits one entity. T is the input schema, validated with
// its `validate` tags before anything is sent.
type Form[T any] struct {
	client   *Client
	entity   Entity
	storeID  string
	entityID string
	fx       Effects

	mu     sync.Mutex
	state  FormState
	values T
	errs   validation.Errors
	modal  AlertModal
}

// NewForm returns a form in edit mode when entityID names an entity and in
// create mode when it is empty or "new".
func NewForm[T any](client *Client, e Entity, storeID, entityID string, initial T, fx Effects) *Form[T] {
	if entityID == "new" {
		entityID = ""
	}
	return &Form[T]{client: client, entity: e, storeID: storeID, entityID: entityID, values: initial, fx: fx}
}

func (f *Form[T]) IsEdit() bool { return f.entityID != "" }

func (f *Form[T]) Title() string {
	if f.IsEdit() {
		return "Edit " + f.entity.lower()
	}
	return "Create " + f.entity.lower()
}

func (f *Form[T]) Description() string {
	if f.IsEdit() {
		return "Edit a " + f.entity.lower()
	}
	return "Add a new " + f.entity.lower()
}

func (f *Form[T]) Action() string {
	if f.IsEdit() {
		return "Save changes"
	}
	return "Create"
}

func (f *Form[T]) successMessage() string {
	if f.IsEdit() {
		return f.entity.Singular + " updated."
	}
	return f.entity.Singular + " created."
}

func (f *Form[T]) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Busy reports whether a submit or delete is in flight.
func (f *Form[T]) Busy() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.busyLocked()
}

func (f *Form[T]) busyLocked() bool {
	return f.state == Submitting || f.modal.Loading()
}

// Values returns the last submitted (or initial) values.
func (f *Form[T]) Values() T {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Errors returns the field errors of the last rejected submit.
func (f *Form[T]) Errors() validation.Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errs
}

// Modal is the delete confirmation.
func (f *Form[T]) Modal() *AlertModal { return &f.modal }

// Submit validates values and sends them: PATCH in edit mode, POST
// otherwise. Field errors are returned as validation.Errors with no request
// made.
func (f *Form[T]) Submit(ctx context.Context, values T) error {
	f.mu.Lock()
	if f.busyLocked() {
		f.mu.Unlock()
		return ErrBusy
	}
	f.values = values
	if err := validation.Struct(values); err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			f.errs = verrs
		}
		f.mu.Unlock()
		return err
	}
	f.errs = nil
	f.state = Submitting
	f.mu.Unlock()

	var err error
	if f.IsEdit() {
		err = f.client.Do(ctx, http.MethodPatch, f.entity.ItemPath(f.storeID, f.entityID), values, nil)
	} else {
		err = f.client.Do(ctx, http.MethodPost, f.entity.CollectionPath(f.storeID), values, nil)
	}

	f.mu.Lock()
	f.state = Idle
	f.mu.Unlock()

	if err != nil {
		f.fx.Error(GenericError)
		return err
	}
	f.fx.Refresh()
	f.fx.Push(f.entity.ListRoute(f.storeID))
	f.fx.Success(f.successMessage())
	return nil
}

// OpenDelete shows the confirmation modal without sending anything.
func (f *Form[T]) OpenDelete() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.IsEdit() {
		return ErrCreateMode
	}
	if f.busyLocked() {
		return ErrBusy
	}
	f.modal.Open()
	return nil
}

// ConfirmDelete deletes the entity. The modal closes in both outcomes.
func (f *Form[T]) ConfirmDelete(ctx context.Context) error {
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

	if err := f.client.Do(ctx, http.MethodDelete, f.entity.ItemPath(f.storeID, f.entityID), nil, nil); err != nil {
		f.fx.Error(f.entity.DeleteWarning())
		return err
	}
	f.fx.Refresh()
	f.fx.Push(f.entity.ListRoute(f.storeID))
	f.fx.Success(f.entity.Singular + " deleted.")
	return nil
}
