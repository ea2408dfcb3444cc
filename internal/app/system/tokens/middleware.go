package tokens

import (
	"context"
	"net/http"
	"strings"

	"github.com/camphub/camphub/internal/app/system/httpjson"
)

type ctxKey struct{}

// unauthorizedMessage is the exact body text clients already match on.
const unauthorizedMessage = "unauthorized access"

// RequireBearer rejects requests that do not carry a valid
// "Authorization: Bearer <token>" header with 401 before the handler runs.
// On success the decoded claims are attached to the request context and
// can be read with FromContext.
func (s *Service) RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			httpjson.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		scheme, token, found := strings.Cut(authorization, " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
			httpjson.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		claims, err := s.Verify(token)
		if err != nil {
			httpjson.Error(w, http.StatusUnauthorized, unauthorizedMessage)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the claims attached by RequireBearer, if any.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	return claims, ok
}
