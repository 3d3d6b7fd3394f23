package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"fairplay10x/internal/model"
	"fairplay10x/internal/service"
)

// AuthService регистрирует и впускает пользователей.
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (model.User, error)
	Login(ctx context.Context, email, password string) (service.LoginResult, error)
}

// TokenParser проверяет токен доступа.
type TokenParser interface {
	Parse(token string) (model.Viewer, error)
}

// UserService администрирует учётные записи.
type UserService interface {
	List(ctx context.Context, status model.UserStatus) ([]model.User, error)
	Get(ctx context.Context, id string) (model.User, error)
	Approve(ctx context.Context, id string) (model.User, error)
	SetRole(ctx context.Context, id string, role model.Role, viewer model.Viewer) (model.User, error)
	LinkPlayer(ctx context.Context, id, playerID string) (model.User, error)
	Delete(ctx context.Context, id string, viewer model.Viewer) error
}

// PlayerService управляет карточками игроков.
type PlayerService interface {
	Create(ctx context.Context, p model.Player) (model.Player, error)
	Get(ctx context.Context, id string, viewer model.Viewer) (model.Player, error)
	List(ctx context.Context, f model.PlayerFilter, viewer model.Viewer) ([]model.Player, error)
	Update(ctx context.Context, p model.Player, viewer model.Viewer) (model.Player, error)
	Delete(ctx context.Context, id string) error
}

// EventService управляет событиями.
type EventService interface {
	Create(ctx context.Context, e model.Event, viewer model.Viewer) (model.Event, error)
	Get(ctx context.Context, id string) (model.Event, error)
	List(ctx context.Context, f model.EventFilter) ([]model.Event, error)
	Update(ctx context.Context, e model.Event, viewer model.Viewer) (model.Event, error)
	Delete(ctx context.Context, id string, viewer model.Viewer) error
}

// SignupService управляет записями на события.
type SignupService interface {
	SignUp(ctx context.Context, eventID, playerID string, viewer model.Viewer) (model.EventSignup, error)
	UpdateStatus(ctx context.Context, eventID, signupID string, status model.SignupStatus, viewer model.Viewer) (model.EventSignup, error)
	List(ctx context.Context, eventID string, viewer model.Viewer) ([]model.EventSignup, error)
}

// DrawService проводит жеребьёвку и утверждает составы.
type DrawService interface {
	GetDraw(ctx context.Context, eventID string, viewer model.Viewer) (service.DrawView, error)
	RunDraw(ctx context.Context, eventID string, teamCount int, viewer model.Viewer) (service.DrawView, error)
	MovePlayer(ctx context.Context, eventID, signupID string, targetTeam int, expectedVersion int64, viewer model.Viewer) (service.DrawView, bool, error)
	SaveAssignments(ctx context.Context, eventID string, entries []model.TeamAssignment, expectedVersion int64, viewer model.Viewer) (service.DrawView, error)
	ConfirmTeams(ctx context.Context, eventID string, expectedVersion int64, viewer model.Viewer) (service.DrawView, error)
}

// DashboardService собирает сводку главной страницы.
type DashboardService interface {
	Summary(ctx context.Context, viewer model.Viewer) (model.DashboardSummary, error)
}

// Services собирает зависимости обработчиков.
type Services struct {
	Auth      AuthService
	Users     UserService
	Players   PlayerService
	Events    EventService
	Signups   SignupService
	Draws     DrawService
	Dashboard DashboardService
}

type Handler struct {
	Services
	Tokens         TokenParser
	AllowedOrigins []string
	Log            *slog.Logger
}

func NewHandler(svc Services, tokens TokenParser, allowedOrigins []string, log *slog.Logger) *Handler {
	return &Handler{
		Services:       svc,
		Tokens:         tokens,
		AllowedOrigins: allowedOrigins,
		Log:            log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.handleRegister)
		r.Post("/login", h.handleLogin)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Get("/dashboard", h.handleDashboard)

		r.Route("/users", func(r chi.Router) {
			r.Use(RequireRole(h, model.RoleAdmin))
			r.Get("/", h.handleUserList)
			r.Route("/{userID}", func(r chi.Router) {
				r.Use(h.requireUUIDParam("userID"))
				r.Get("/", h.handleUserGet)
				r.Post("/approve", h.handleUserApprove)
				r.Patch("/role", h.handleUserSetRole)
				r.Patch("/player", h.handleUserLinkPlayer)
				r.Delete("/", h.handleUserDelete)
			})
		})

		r.Route("/players", func(r chi.Router) {
			r.Get("/", h.handlePlayerList)
			r.With(RequireRole(h, model.RoleAdmin, model.RoleOrganizer)).Post("/", h.handlePlayerCreate)
			r.Route("/{playerID}", func(r chi.Router) {
				r.Use(h.requireUUIDParam("playerID"))
				r.Get("/", h.handlePlayerGet)
				r.With(RequireRole(h, model.RoleAdmin, model.RoleOrganizer)).Patch("/", h.handlePlayerUpdate)
				r.With(RequireRole(h, model.RoleAdmin)).Delete("/", h.handlePlayerDelete)
			})
		})

		r.Route("/event", func(r chi.Router) {
			r.Get("/", h.handleEventList)
			r.With(RequireRole(h, model.RoleAdmin, model.RoleOrganizer)).Post("/", h.handleEventCreate)

			r.Route("/{eventID}", func(r chi.Router) {
				r.Use(h.requireUUIDParam("eventID"))
				r.Get("/", h.handleEventGet)
				r.With(RequireRole(h, model.RoleAdmin, model.RoleOrganizer)).Patch("/", h.handleEventUpdate)
				r.With(RequireRole(h, model.RoleAdmin, model.RoleOrganizer)).Delete("/", h.handleEventDelete)

				r.Route("/signups", func(r chi.Router) {
					r.Get("/", h.handleSignupList)
					r.Post("/", h.handleSignupCreate)
					r.With(h.requireUUIDParam("signupID")).Patch("/{signupID}", h.handleSignupUpdate)
				})

				r.Route("/draw", func(r chi.Router) {
					r.Get("/", h.handleDrawGet)
					r.Group(func(r chi.Router) {
						r.Use(RequireRole(h, model.RoleAdmin, model.RoleOrganizer))
						r.Post("/", h.handleDrawRun)
						r.Post("/move", h.handleDrawMove)
						r.Put("/assignments", h.handleDrawAssignments)
						r.Post("/confirm", h.handleDrawConfirm)
					})
				})
			})
		})
	})

	return r
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	var appErr *service.AppError
	if !errors.As(err, &appErr) {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	level := slog.LevelWarn
	switch {
	case appErr.Status >= http.StatusInternalServerError:
		level = slog.LevelError
	case service.IsNotFound(appErr):
		level = slog.LevelDebug
	}
	h.Log.Log(context.Background(), level, "handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return service.ErrBadRequest("invalid JSON")
	}
	return nil
}

// decodeOptionalJSON разбирает тело, которое можно не передавать.
// Пустое тело (в том числе chunked) оставляет v без изменений.
func decodeOptionalJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return service.ErrBadRequest("invalid JSON")
	}
	return nil
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
