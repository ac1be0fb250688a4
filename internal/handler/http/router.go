package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/pontohq/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/token"
)

func NewRouter(
	tokenService token.Service,
	authHandler AuthHandler,
	timeClockHandler TimeClockHandler,
	summaryHandler SummaryHandler,
	statusHandler StatusHandler,
	mirrorHandler MirrorHandler,
	allowedOrigins []string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Authenticate)
		})

		// Requires a session issued by the credential gate
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(tokenService.JWTAuth()))
			r.Use(middleware.SessionRequired(tokenService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", timeClockHandler.RegisterPunch)
			})

			r.Route("/employees/{employeeID}", func(r chi.Router) {
				r.Get("/punches", timeClockHandler.ListDayPunches)
				r.Get("/status", statusHandler.Current)

				r.Route("/summary", func(r chi.Router) {
					r.Get("/day", summaryHandler.Day)
					r.Get("/{year}/{month}", summaryHandler.Month)
				})

				r.Get("/mirror/{year}/{month}", mirrorHandler.Build)
			})
		})
	})
	return r
}
