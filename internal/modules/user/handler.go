package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the user endpoints. r must already be behind the
// auth middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/users/me", h.getMe)
}

func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	id, ok := httpapi.UserID(r.Context())
	if !ok {
		httpapi.WriteServiceError(w, r, httpapi.ErrUnauthorized)
		return
	}

	user, err := h.service.GetUser(r.Context(), id)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}

	httpapi.WriteJSON(w, http.StatusOK, user)
}
