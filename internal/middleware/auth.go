package middleware

import (
	"context"
	"net/http"
	"strings"

	"lion_slot/pkg/resp"
	"lion_slot/pkg/token"
)

type ctxKey struct{}

// WithLogin кладёт логин игрока в контекст
func WithLogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, ctxKey{}, login)
}

// LoginFromContext логин игрока, привязанного к запросу
func LoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(ctxKey{}).(string)
	if !ok || login == "" {
		return "", false
	}
	return login, true
}

// Auth проверяет Bearer access токен
func Auth(secretKey []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				resp.WriteError(w, http.StatusUnauthorized, "missing access token")
				return
			}

			claims, err := token.VerifyToken(raw, secretKey)
			if err != nil {
				resp.WriteError(w, http.StatusUnauthorized, "invalid access token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithLogin(r.Context(), claims.Subject)))
		})
	}
}
