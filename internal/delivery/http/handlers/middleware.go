package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/infrastructure/metrics"
	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase"
)

type ctxKey int

const userKey ctxKey = iota

func withUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// currentUser returns the authenticated user. Only valid behind Authenticate.
func currentUser(r *http.Request) *domain.User {
	user, _ := r.Context().Value(userKey).(*domain.User)
	return user
}

func sessionToken(r *http.Request, cookieName string) string {
	if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}

// Authenticate resolves the session cookie (or bearer token) to a user.
func Authenticate(auth usecase.AuthUsecase, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.Authenticate(r.Context(), sessionToken(r, cookieName))
			if err != nil {
				respondWithDomainError(w, r, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(withUser(r.Context(), user)))
		})
	}
}

func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !currentUser(r).IsAdmin() {
			respondWithError(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequirePage gates a route on a page permission. edit asks for the edit
// flag instead of view.
func RequirePage(access usecase.AccessUsecase, pageID string, edit bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := currentUser(r)
			var (
				allowed bool
				err     error
			)
			if edit {
				allowed, err = access.CanEditPage(r.Context(), user, pageID)
			} else {
				allowed, err = access.CanViewPage(r.Context(), user, pageID)
			}
			if err != nil {
				respondWithDomainError(w, r, err)
				return
			}
			if !allowed {
				respondWithError(w, http.StatusForbidden, "you do not have access to this page")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestLogger logs one line per request with the chi request id.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			level := slog.LevelInfo
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "http request",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}

// Metrics records request counts and latency by route pattern.
func Metrics(m *metrics.HTTPMetrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					route = pattern
				}
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			m.RecordRequest(r.Method, route, status, time.Since(start).Seconds())
		})
	}
}
