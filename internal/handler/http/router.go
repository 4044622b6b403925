package http

import (
	"log/slog"
	"os"

	"github.com/attendly-hq/attendly-backend-go/internal/handler/http/middleware"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	JWTService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	overtimeHandler OvertimeHandler,
	payrollHandler PayrollHandler,
	dashboardHandler DashboardHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendly-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
			r.Post("/login", authHandler.Login)
			r.Post("/register", employeeHandler.Register)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/my", attendanceHandler.GetMyAttendance)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Post("/override-check-in", attendanceHandler.OverrideCheckIn)
					r.Post("/override-check-out", attendanceHandler.OverrideCheckOut)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Create)
				r.Get("/my", leaveHandler.GetMyRequests)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", leaveHandler.List)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
				})
			})

			r.Route("/overtime", func(r chi.Router) {
				r.Post("/", overtimeHandler.Submit)
				r.Get("/my", overtimeHandler.GetMyOvertime)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", overtimeHandler.List)
					r.Patch("/{id}/status", overtimeHandler.UpdateStatus)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/my", payrollHandler.GetMyPayroll)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", payrollHandler.List)
					r.Post("/process", payrollHandler.Process)
					r.Patch("/{id}/paid", payrollHandler.MarkAsPaid)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/overview", dashboardHandler.EmployeeOverview)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin-overview", dashboardHandler.AdminOverview)
				})
			})

			// Admin only
			r.Route("/employees", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Post("/registration-codes", employeeHandler.CreateRegistrationCode)
			})
		})
	})
	return r
}
