package dashboard

import (
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/georgemunganga/storeadmin/internal/modules/billboard"
	"github.com/georgemunganga/storeadmin/internal/modules/color"
	"github.com/georgemunganga/storeadmin/internal/modules/size"
	"github.com/georgemunganga/storeadmin/internal/validation"
)

func TestCreateSizeScenario(t *testing.T) {
	api := newFakeAPI(http.StatusOK, map[string]string{"id": "z1"})
	rec, fx := newRecorder()
	form := NewForm(api.client(), Sizes, "s1", "new", size.Input{}, fx)

	assert.Equal(t, "Create size", form.Title())
	assert.Equal(t, "Add a new size", form.Description())
	assert.Equal(t, "Create", form.Action())
	assert.Equal(t, Idle, form.State())
	assert.Equal(t, ModalClosed, form.Modal().State())

	require.NoError(t, form.Submit(ctx, size.Input{Name: "Large", Value: "L"}))

	got := requireSingle(t, api)
	want := request{Method: http.MethodPost, Path: "/api/s1/sizes", Body: map[string]any{"name": "Large", "value": "L"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("request mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"/s1/sizes"}, rec.Pushed)
	assert.Equal(t, 1, rec.Refreshes)
	assert.Equal(t, []Toast{{Message: "Size created."}}, rec.Toasts)
	assert.False(t, form.Busy())
}

func TestEditPatchesEntity(t *testing.T) {
	api := newFakeAPI(http.StatusOK, nil)
	rec, fx := newRecorder()
	form := NewForm(api.client(), Billboards, "s1", "b9", billboard.Input{Label: "Old", ImageURL: "https://img/x.png"}, fx)

	assert.Equal(t, "Edit billboard", form.Title())
	assert.Equal(t, "Edit a billboard", form.Description())
	assert.Equal(t, "Save changes", form.Action())

	require.NoError(t, form.Submit(ctx, billboard.Input{Label: "New", ImageURL: "https://img/x.png"}))
	got := requireSingle(t, api)
	assert.Equal(t, http.MethodPatch, got.Method)
	assert.Equal(t, "/api/s1/billboards/b9", got.Path)
	assert.Equal(t, "New", got.Body["label"])
	assert.Equal(t, []string{"/s1/billboards"}, rec.Pushed)
	assert.Equal(t, []Toast{{Message: "Billboard updated."}}, rec.Toasts)
}

func TestInvalidSubmitSendsNothing(t *testing.T) {
	api := newFakeAPI(http.StatusOK, nil)
	rec, fx := newRecorder()
	form := NewForm(api.client(), Colors, "s1", "", color.Input{}, fx)

	err := form.Submit(ctx, color.Input{Name: "Black", Value: "000"})
	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("value"))
	assert.Equal(t, verrs, form.Errors())
	assert.Empty(t, api.Requests())
	assert.Empty(t, rec.Toasts)

	err = form.Submit(ctx, color.Input{Value: "#000"})
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, validation.Errors{"name": "Required"}, verrs)
	assert.Empty(t, api.Requests())
}

func TestFailedSubmitKeepsValues(t *testing.T) {
	api := newFakeAPI(http.StatusInternalServerError, map[string]string{"error": "boom", "code": "INTERNAL_ERROR"})
	rec, fx := newRecorder()
	form := NewForm(api.client(), Sizes, "s1", "", size.Input{}, fx)

	in := size.Input{Name: "Large", Value: "L"}
	err := form.Submit(ctx, in)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "INTERNAL_ERROR", apiErr.Code)

	assert.Equal(t, Idle, form.State())
	assert.Equal(t, in, form.Values())
	assert.Equal(t, []Toast{{Error: true, Message: GenericError}}, rec.Toasts)
	assert.Empty(t, rec.Pushed)
	assert.Zero(t, rec.Refreshes)
}

func TestSubmitWhileInFlightIsRejected(t *testing.T) {
	api := newFakeAPI(http.StatusOK, nil)
	api.gate = make(chan struct{})
	api.arrived = make(chan struct{}, 1)
	_, fx := newRecorder()
	form := NewForm(api.client(), Sizes, "s1", "z1", size.Input{}, fx)

	done := make(chan error, 1)
	go func() { done <- form.Submit(ctx, size.Input{Name: "Large", Value: "L"}) }()
	<-api.arrived

	assert.True(t, form.Busy())
	assert.Equal(t, Submitting, form.State())
	assert.ErrorIs(t, form.Submit(ctx, size.Input{Name: "Large", Value: "L"}), ErrBusy)
	assert.ErrorIs(t, form.OpenDelete(), ErrBusy)
	assert.ErrorIs(t, form.ConfirmDelete(ctx), ErrBusy)

	close(api.gate)
	require.NoError(t, <-done)
	assert.Len(t, api.Requests(), 1)
	assert.False(t, form.Busy())
}

func TestDeleteOnlyAfterConfirm(t *testing.T) {
	api := newFakeAPI(http.StatusNoContent, nil)
	rec, fx := newRecorder()
	form := NewForm(api.client(), Sizes, "s1", "z1", size.Input{Name: "Large", Value: "L"}, fx)

	assert.ErrorIs(t, form.ConfirmDelete(ctx), ErrNotOpen)
	require.NoError(t, form.OpenDelete())
	assert.Equal(t, ModalOpen, form.Modal().State())
	assert.Empty(t, api.Requests())

	require.NoError(t, form.ConfirmDelete(ctx))
	got := requireSingle(t, api)
	assert.Equal(t, http.MethodDelete, got.Method)
	assert.Equal(t, "/api/s1/sizes/z1", got.Path)
	assert.Equal(t, ModalClosed, form.Modal().State())
	assert.Equal(t, []string{"/s1/sizes"}, rec.Pushed)
	assert.Equal(t, []Toast{{Message: "Size deleted."}}, rec.Toasts)
}

func TestDeleteReferencedBillboardWarns(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError} {
		api := newFakeAPI(status, nil)
		rec, fx := newRecorder()
		form := NewForm(api.client(), Billboards, "s1", "b1", billboard.Input{}, fx)

		require.NoError(t, form.OpenDelete())
		require.Error(t, form.ConfirmDelete(ctx))

		assert.Equal(t, []Toast{{Error: true, Message: "Make sure you have removed all categories using this billboard first."}}, rec.Toasts)
		assert.Equal(t, ModalClosed, form.Modal().State())
		assert.False(t, form.Modal().Visible())
		assert.False(t, form.Busy())
		assert.Empty(t, rec.Pushed)
	}
}

func TestCreateModeHasNothingToDelete(t *testing.T) {
	_, fx := newRecorder()
	form := NewForm(newFakeAPI(http.StatusOK, nil).client(), Products, "s1", "", struct{}{}, fx)
	assert.ErrorIs(t, form.OpenDelete(), ErrCreateMode)
	assert.Equal(t, GenericError, Products.DeleteWarning())
}
