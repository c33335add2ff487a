package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/syedsmuzakkir/Gym-Portal/internal/config"
	"github.com/syedsmuzakkir/Gym-Portal/internal/domain"
	"github.com/syedsmuzakkir/Gym-Portal/internal/handler"
)

// NewRouter wires HTTP routes and middleware.
func NewRouter(cfg config.Config,
	logger *slog.Logger,
	health handler.HealthHandler,
	auth handler.AuthHandler,
	employees handler.EmployeeHandler,
	customers handler.CustomerHandler,
	attendance handler.AttendanceHandler,
	memberCodes handler.MemberCodeHandler,
	payments handler.PaymentHandler,
	billing handler.BillingHandler,
	meetings handler.MeetingHandler,
	messages handler.MessageHandler,
	dashboard handler.DashboardHandler,
	settings handler.SettingsHandler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(NewLoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(httprate.LimitByIP(200, 1*time.Minute))

	health.RegisterRoutes(r)
	auth.RegisterRoutes(r)
	r.Method("GET", "/metrics", promhttp.Handler())

	r.Group(func(pr chi.Router) {
		pr.Use(AuthMiddleware(cfg.JWTSecret))
		// employee-level (employee/manager/admin)
		pr.Group(func(er chi.Router) {
			er.Use(RequireRole(domain.RoleAdmin, domain.RoleManager, domain.RoleEmployee))
			auth.RegisterProtectedRoutes(er)
			attendance.RegisterRoutes(er)
			memberCodes.RegisterRoutes(er)
			customers.RegisterRoutes(er)
			meetings.RegisterRoutes(er)
			messages.RegisterRoutes(er)
		})
		// manager-level (manager/admin)
		pr.Group(func(mr chi.Router) {
			mr.Use(RequireRole(domain.RoleAdmin, domain.RoleManager))
			employees.RegisterRoutes(mr)
			customers.RegisterManagerRoutes(mr)
			billing.RegisterRoutes(mr)
			payments.RegisterRoutes(mr)
			dashboard.RegisterRoutes(mr)
			settings.RegisterRoutes(mr)
		})
	})

	return r
}
