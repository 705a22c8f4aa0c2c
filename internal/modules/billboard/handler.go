package billboard

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// Handler exposes billboard HTTP endpoints under /{storeId}.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts /billboards on a router that carries {storeId}.
// Reads are public; writes pass through admin.
func (h *Handler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Route("/billboards", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{billboardId}", h.get)
		r.Group(func(r chi.Router) {
			r.Use(admin)
			r.Post("/", h.create)
			r.Patch("/{billboardId}", h.update)
			r.Delete("/{billboardId}", h.delete)
		})
	})
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	b, err := h.service.CreateBillboard(r.Context(), storeID, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	out, err := h.service.ListBillboards(r.Context(), storeID)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, out)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "billboardId")
	if !ok {
		return
	}
	b, err := h.service.GetBillboard(r.Context(), storeID, id)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "billboardId")
	if !ok {
		return
	}
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	b, err := h.service.UpdateBillboard(r.Context(), storeID, id, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "billboardId")
	if !ok {
		return
	}
	if err := h.service.DeleteBillboard(r.Context(), storeID, id); err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
