package http

import (
	"log/slog"

	"github.com/cmlabs-hris/attendance-engine/internal/handler/http/middleware"
	"github.com/cmlabs-hris/attendance-engine/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// RouterConfig carries the transport settings of NewRouter.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	teamHandler TeamHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
			Level:  slog.LevelDebug,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/holidays/{year}", leaveHandler.ListHolidays)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/users/{userID}", func(r chi.Router) {
				r.Get("/shifts", attendanceHandler.GetShifts)
				r.Get("/hours/daily", attendanceHandler.GetDailyHours)
				r.Get("/hours/weekly", attendanceHandler.GetWeeklyHours)
				r.Get("/lateness", attendanceHandler.GetLateness)
				r.Get("/calendar", leaveHandler.GetCalendar)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateLeave)
				r.Get("/me", leaveHandler.GetMyLeaves)
				r.Delete("/{id}", leaveHandler.DeleteLeave)

				// Manager only
				r.With(middleware.RequireManager).Put("/{id}/approve", leaveHandler.ApproveLeave)
			})

			r.Route("/teams/{teamID}", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/averages", teamHandler.GetAverages)
				r.Get("/expected-hours", teamHandler.GetExpectedHours)
			})

			r.Get("/reports", reportHandler.Generate)
		})
	})

	return r
}
