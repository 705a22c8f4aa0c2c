package auth

import (
	"net/http"
	"strings"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// Token returns the session token from the Authorization header or, failing
// that, the session cookie.
func Token(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	if c, err := r.Cookie(SessionCookie); err == nil {
		return c.Value
	}
	return ""
}

// RequireUser rejects API requests without a valid session with 401.
func RequireUser(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := svc.ParseToken(Token(r))
			if err != nil {
				httpapi.WriteServiceError(w, r, httpapi.ErrUnauthorized)
				return
			}
			next.ServeHTTP(w, r.WithContext(httpapi.WithUserID(r.Context(), id)))
		})
	}
}

// RequirePageUser redirects page requests without a valid session to the
// sign-in page.
func RequirePageUser(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := svc.ParseToken(Token(r))
			if err != nil {
				if r.Header.Get("HX-Request") == "true" {
					w.Header().Set("HX-Redirect", "/sign-in")
					w.WriteHeader(http.StatusOK)
					return
				}
				http.Redirect(w, r, "/sign-in", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r.WithContext(httpapi.WithUserID(r.Context(), id)))
		})
	}
}
