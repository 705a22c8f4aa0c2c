package color

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// Handler exposes color HTTP endpoints under /{storeId}.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.Route("/colors", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{colorId}", h.get)
		r.With(admin).Post("/", h.create)
		r.With(admin).Patch("/{colorId}", h.update)
		r.With(admin).Delete("/{colorId}", h.delete)
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
	v, err := h.service.CreateColor(r.Context(), storeID, req)
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
	out, err := h.service.ListColors(r.Context(), storeID)
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
	id, ok := httpapi.ParseUUID(w, r, "colorId")
	if !ok {
		return
	}
	v, err := h.service.GetColor(r.Context(), storeID, id)
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
	id, ok := httpapi.ParseUUID(w, r, "colorId")
	if !ok {
		return
	}
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	v, err := h.service.UpdateColor(r.Context(), storeID, id, req)
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
	id, ok := httpapi.ParseUUID(w, r, "colorId")
	if !ok {
		return
	}
	if err := h.service.DeleteColor(r.Context(), storeID, id); err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
