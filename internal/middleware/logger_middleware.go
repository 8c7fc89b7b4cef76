package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// requestUser is a mutable holder the logger installs before any other
// middleware runs. AuthMiddleware fills it in once the token is
// validated, which lets the access log attribute the request even though
// auth derives a new context further down the chain.
type requestUser struct {
	id string
}

type requestUserKey struct{}

func setRequestUser(ctx context.Context, userID string) {
	if ru, ok := ctx.Value(requestUserKey{}).(*requestUser); ok {
		ru.id = userID
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func LoggerMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ru := &requestUser{}
			r = r.WithContext(context.WithValue(r.Context(), requestUserKey{}, ru))

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(rw, r)

			user := ru.id
			if user == "" {
				user = "anonymous"
			}

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("remote", r.RemoteAddr).
				Int("status", rw.statusCode).
				Dur("duration", time.Since(start)).
				Str("user", user).
				Msg("request")
		})
	}
}
