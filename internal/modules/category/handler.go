package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// Handler exposes category HTTP endpoints under /{storeId}.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{categoryId}", h.get)
		r.With(admin).Post("/", h.create)
		r.With(admin).Patch("/{categoryId}", h.update)
		r.With(admin).Delete("/{categoryId}", h.delete)
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
	v, err := h.service.CreateCategory(r.Context(), storeID, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, v)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	out, err := h.service.ListCategories(r.Context(), storeID)
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
	id, ok := httpapi.ParseUUID(w, r, "categoryId")
	if !ok {
		return
	}
	v, err := h.service.GetCategory(r.Context(), storeID, id)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "categoryId")
	if !ok {
		return
	}
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	v, err := h.service.UpdateCategory(r.Context(), storeID, id, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, v)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	id, ok := httpapi.ParseUUID(w, r, "categoryId")
	if !ok {
		return
	}
	if err := h.service.DeleteCategory(r.Context(), storeID, id); err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
