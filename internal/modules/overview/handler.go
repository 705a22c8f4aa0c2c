package overview

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

// RegisterRoutes mounts GET /overview; the figures are owner-only.
func (h *Handler) RegisterRoutes(r chi.Router, admin func(http.Handler) http.Handler) {
	r.With(admin).Get("/overview", h.get)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	storeID, ok := httpapi.ParseUUID(w, r, "storeId")
	if !ok {
		return
	}
	o, err := h.service.Overview(r.Context(), storeID)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, o)
}
