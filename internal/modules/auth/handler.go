package auth

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
	"github.com/georgemunganga/storeadmin/internal/modules/user"
)

// Handler exposes the sign-up, sign-in and sign-out endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/sign-up", h.signUp)
		r.Post("/sign-in", h.signIn)
		r.Post("/sign-out", h.signOut)
	})
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterInput
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	sess, err := h.service.SignUp(r.Context(), req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	SetSessionCookie(w, sess)
	httpapi.WriteJSON(w, http.StatusCreated, sess)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var req SignInInput
	if !httpapi.DecodeOrReject(w, r, &req) {
		return
	}
	sess, err := h.service.SignIn(r.Context(), req)
	if err != nil {
		httpapi.WriteServiceError(w, r, err)
		return
	}
	SetSessionCookie(w, sess)
	httpapi.WriteJSON(w, http.StatusOK, sess)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	ClearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

// SetSessionCookie stores the session token in an HTTP-only cookie.
func SetSessionCookie(w http.ResponseWriter, sess *Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    sess.Token,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
