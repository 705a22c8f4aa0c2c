package dashboard

import (
	"context"
	"net/http"
)

// CellAction is the per-row menu of a list table.
type CellAction struct {
	client  *Client
	entity  Entity
	storeID string
	rowID   string
	fx      Effects
	modal   AlertModal
}

// NewCellAction returns the actions for the row identified by rowID.
func NewCellAction(client *Client, e Entity, storeID, rowID string, fx Effects) *CellAction {
	return &CellAction{client: client, entity: e, storeID: storeID, rowID: rowID, fx: fx}
}

func (a *CellAction) Modal() *AlertModal { return &a.modal }

// Copy puts the row id on the clipboard.
func (a *CellAction) Copy() {
	a.fx.Write(a.rowID)
	a.fx.Success(a.entity.Singular + " Id copied to the clipboard.")
}

// Edit navigates to the row's form.
func (a *CellAction) Edit() {
	a.fx.Push(a.entity.ItemRoute(a.storeID, a.rowID))
}

// OpenDelete asks for confirmation.
func (a *CellAction) OpenDelete() error {
	if a.modal.Loading() {
		return ErrBusy
	}
	a.modal.Open()
	return nil
}

// ConfirmDelete deletes the row and refreshes the list in place.
func (a *CellAction) ConfirmDelete(ctx context.Context) error {
	return a.modal.Confirm(ctx, func(ctx context.Context) error {
		if err := a.client.Do(ctx, http.MethodDelete, a.entity.ItemPath(a.storeID, a.rowID), nil, nil); err != nil {
			a.fx.Error(a.entity.DeleteWarning())
			return err
		}
		a.fx.Refresh()
		a.fx.Success(a.entity.Singular + " deleted.")
		return nil
	})
}
