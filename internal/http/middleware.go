package http

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"fairplay10x/internal/model"
	"fairplay10x/internal/service"
)

type viewerKey struct{}

// ViewerFromContext возвращает пользователя, выполняющего запрос.
func ViewerFromContext(ctx context.Context) (model.Viewer, bool) {
	v, ok := ctx.Value(viewerKey{}).(model.Viewer)
	return v, ok
}

func viewer(r *http.Request) model.Viewer {
	v, _ := ViewerFromContext(r.Context())
	return v
}

func (h *Handler) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		const handlerName = "authenticate"

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			h.writeError(w, handlerName, service.ErrUnauthorized("missing bearer token"))
			return
		}

		v, err := h.Tokens.Parse(token)
		if err != nil {
			h.writeError(w, handlerName, service.ErrUnauthorized("invalid token"))
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), viewerKey{}, v)))
	})
}

// RequireRole пропускает только пользователей с одной из ролей.
func RequireRole(h *Handler, roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			v, ok := ViewerFromContext(r.Context())
			if !ok || !slices.Contains(roles, v.Role) {
				h.writeError(w, "require_role", service.ErrForbidden("insufficient role"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// requireUUIDParam отклоняет запрос с некорректным идентификатором до вызова сервиса.
func (h *Handler) requireUUIDParam(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := ValidateID(name, chi.URLParam(r, name)); err != nil {
				h.writeError(w, "validate_"+name, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.Log.Info("http request",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
