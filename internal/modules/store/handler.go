package store

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// Handler exposes store HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts /stores. r must already be behind the auth middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/stores", func(r chi.Router) {
		r.Get("/", h.listStores)
		r.Post("/", h.createStore)
		r.Get("/{storeId}", h.getStore)
		r.Patch("/{storeId}", h.updateStore)
		r.Delete("/{storeId}", h.deleteStore)
	})
}

func (h *Handler) createStore(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpapi.UserID(r.Context())
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	st, err := h.service.CreateStore(r.Context(), userID, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, st)
}

func (h *Handler) listStores(w http.ResponseWriter, r *http.Request) {
	userID, _ := httpapi.UserID(r.Context())
	stores, err := h.service.ListStores(r.Context(), userID)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, stores)
}

func (h *Handler) getStore(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	userID, _ := httpapi.UserID(r.Context())
	st, err := h.service.GetOwnedStore(r.Context(), userID, id)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) updateStore(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	var req Input
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	userID, _ := httpapi.UserID(r.Context())
	st, err := h.service.UpdateStore(r.Context(), userID, id, req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, st)
}

func (h *Handler) deleteStore(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	userID, _ := httpapi.UserID(r.Context())
	if err := h.service.DeleteStore(r.Context(), userID, id); err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
