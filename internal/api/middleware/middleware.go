package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"shopify-sync/internal/domain/model"
	"shopify-sync/internal/logging"
)

const secretHeader = "X-Secret-Token"

// SharedSecret rejects requests whose shared-secret header does not match.
func SharedSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get(secretHeader) != secret {
				writeJSONError(w, http.StatusUnauthorized, (&model.AuthError{}).Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Logger logs one line per request with status and duration.
func Logger(logger logging.LoggerService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if logger == nil {
				next.ServeHTTP(w, r)
				return
			}
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Log(
				r.Method + " " + r.URL.Path +
					" status=" + strconv.Itoa(ww.Status()) +
					" duration=" + time.Since(start).String(),
			)
		})
	}
}

// Recoverer turns a handler panic into a 500 JSON response instead of
// killing the process.
func Recoverer(logger logging.LoggerService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					if logger != nil {
						logger.LogWarning("panic recovered in handler")
					}
					writeJSONError(w, http.StatusInternalServerError, "internal error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
