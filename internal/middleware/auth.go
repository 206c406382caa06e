package middleware

import (
	"net/http"

	"github.com/Yash-007/zenith-engine/internal/remote"
	"github.com/Yash-007/zenith-engine/internal/utils"
)

// tokenHeader est l'en-tête utilisé par le frontend Zenith historique.
const tokenHeader = "X-Auth-Token"

// AuthMiddleware exige un token et le propage au client distant via le
// contexte. La validation du token appartient au backend: ici on ne fait que
// le transporter (pass-through), un 401 distant vaut session expirée.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(tokenHeader)
		if token == "" {
			token = r.Header.Get("Authorization")
		}
		if token == "" {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		ctx := remote.WithToken(r.Context(), token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth propage le token s'il est présent, sans l'exiger.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(tokenHeader)
		if token == "" {
			token = r.Header.Get("Authorization")
		}
		if token != "" {
			r = r.WithContext(remote.WithToken(r.Context(), token))
		}
		next.ServeHTTP(w, r)
	})
}
