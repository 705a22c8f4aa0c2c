package store

import (
	"net/http"

	"github.com/georgemunganga/storeadmin/internal/httpapi"
)

// RequireOwner lets a request through only when the authenticated user owns
// the store named by the {storeId} route parameter.
func RequireOwner(svc Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			storeID, ok := httpapi.ParseUUID(w, r, "storeId")
			if !ok {
				return
			}
			userID, ok := httpapi.UserID(r.Context())
			if !ok {
				httpapi.WriteServiceError(w, r, httpapi.ErrUnauthorized)
				return
			}
			if _, err := svc.GetOwnedStore(r.Context(), userID, storeID); err != nil {
				httpapi.WriteServiceError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
