package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	corsOrigins []string,
	authHandler AuthHandler,
	clockHandler ClockHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	departmentHandler DepartmentHandler,
	scheduleHandler ScheduleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/time-in", clockHandler.TimeIn)
				r.Post("/time-out", clockHandler.TimeOut)
				r.Post("/lunch-in", clockHandler.LunchIn)
				r.Post("/lunch-out", clockHandler.LunchOut)
				r.Get("/today/{id}", clockHandler.Today)

				r.Get("/employee/{id}", attendanceHandler.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", attendanceHandler.List)
					r.Post("/", attendanceHandler.Create)
					r.Get("/{id}", attendanceHandler.Get)
					r.Put("/{id}", attendanceHandler.Update)
					r.Delete("/{id}", attendanceHandler.Delete)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/{id}", employeeHandler.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Get("/team-leaders", employeeHandler.ListTeamLeaders)
					r.Get("/admins", employeeHandler.ListAdmins)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/departments", func(r chi.Router) {
				r.Get("/", departmentHandler.List)
				r.Get("/{id}", departmentHandler.Get)
				r.Get("/{id}/leader", departmentHandler.Leader)

				// Team leaders see their department's people and records
				r.Group(func(r chi.Router) {
					r.Use(middleware.TeamLeaderOrAdmin)
					r.Get("/{id}/employees", departmentHandler.Members)
					r.Get("/{id}/attendance", departmentHandler.Attendance)
					r.Get("/{id}/schedules", scheduleHandler.ListByDepartment)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", departmentHandler.Create)
					r.Put("/{id}", departmentHandler.Update)
					r.Delete("/{id}", departmentHandler.Delete)
					r.Post("/{id}/employees", departmentHandler.AssignEmployee)
					r.Delete("/{id}/employees/{employeeId}", departmentHandler.RemoveEmployee)
					r.Post("/{id}/leader", departmentHandler.AssignLeader)
					r.Delete("/{id}/leader", departmentHandler.RemoveLeader)
				})
			})

			// Admin only
			r.Route("/department-schedules", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", scheduleHandler.List)
				r.Post("/", scheduleHandler.Create)
				r.Get("/{id}", scheduleHandler.Get)
				r.Put("/{id}", scheduleHandler.Update)
				r.Delete("/{id}", scheduleHandler.Delete)
			})
		})
	})

	return r
}
