package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/teamhub-intranet/leave-backend-go/internal/config"
	"github.com/teamhub-intranet/leave-backend-go/internal/handler/http/middleware"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth     AuthHandler
	Leave    LeaveHandler
	Overtime OvertimeHandler
	Document DocumentHandler
	WorkLog  WorkLogHandler
	Approval ApprovalHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamhub-leave"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/leave", func(r chi.Router) {
				r.Get("/balance", h.Leave.GetMyBalance)
				r.Get("/calendar", h.Leave.Calendar)

				r.Route("/requests", func(r chi.Router) {
					r.Post("/", h.Leave.CreateRequest)
					r.Get("/my", h.Leave.GetMyRequests)
					r.Delete("/{id}", h.Leave.CancelRequest)

					// Privileged only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePrivileged)
						r.Get("/", h.Leave.ListRequests)
						r.Post("/approve", h.Leave.ApproveRequest)
						r.Post("/reject", h.Leave.RejectRequest)
					})
				})

				// Privileged only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePrivileged)
					r.Get("/balances", h.Leave.ListBalances)
					r.Put("/allowance", h.Leave.SetAllowance)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", h.Overtime.CreateRequest)
				r.Get("/my", h.Overtime.GetMyRequests)
				r.Delete("/{id}", h.Overtime.CancelRequest)

				// Privileged only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePrivileged)
					r.Get("/", h.Overtime.ListRequests)
					r.Post("/{id}/approve", h.Overtime.ApproveRequest)
					r.Post("/reject", h.Overtime.RejectRequest)
				})
			})

			r.Route("/documents", func(r chi.Router) {
				r.Post("/", h.Document.CreateDocument)
				r.Get("/my", h.Document.GetMyDocuments)
				r.Delete("/{id}", h.Document.CancelDocument)

				r.Route("/labels", func(r chi.Router) {
					r.Get("/", h.Document.ListLabels)

					// Privileged only
					r.Group(func(r chi.Router) {
						r.Use(middleware.RequirePrivileged)
						r.Post("/", h.Document.CreateLabel)
					})
				})

				// Privileged only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePrivileged)
					r.Get("/", h.Document.ListDocuments)
					r.Post("/{id}/approve", h.Document.ApproveDocument)
					r.Post("/reject", h.Document.RejectDocument)
				})
			})

			r.Route("/worklogs", func(r chi.Router) {
				r.Put("/", h.WorkLog.Upsert)
				r.Get("/", h.WorkLog.ListWeek)
				r.Get("/{date}", h.WorkLog.Get)
				r.Delete("/{date}", h.WorkLog.Delete)
				r.Post("/summary", h.WorkLog.WeeklySummary)
			})

			// Privileged only
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequirePrivileged)
				r.Get("/approvals/pending", h.Approval.PendingQueue)
			})
		})
	})

	return r
}
