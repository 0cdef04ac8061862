package main

import (
	"fmt"
	"net/http"

	"github.com/workpulse/timeclock-backend-go/internal/config"
	appHTTP "github.com/workpulse/timeclock-backend-go/internal/handler/http"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/database"
	"github.com/workpulse/timeclock-backend-go/internal/pkg/jwt"
	"github.com/workpulse/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/timeclock-backend-go/internal/service/attendance"
	authService "github.com/workpulse/timeclock-backend-go/internal/service/auth"
	clockService "github.com/workpulse/timeclock-backend-go/internal/service/clock"
	departmentService "github.com/workpulse/timeclock-backend-go/internal/service/department"
	employeeService "github.com/workpulse/timeclock-backend-go/internal/service/employee"
	scheduleService "github.com/workpulse/timeclock-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	departmentScheduleRepo := postgresql.NewDepartmentScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(employeeRepo, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	departmentSvc := departmentService.NewDepartmentService(db, departmentRepo, employeeRepo, departmentScheduleRepo)
	scheduleSvc := scheduleService.NewDepartmentScheduleService(departmentScheduleRepo, departmentRepo)
	clockSvc := clockService.NewClockService(employeeRepo, departmentScheduleRepo, attendanceRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, JWTService)
	clockHandler := appHTTP.NewClockHandler(clockSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	departmentHandler := appHTTP.NewDepartmentHandler(departmentSvc, employeeRepo, attendanceRepo)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(
		JWTService,
		cfg.App.Env,
		cfg.App.CORSOrigins,
		authHandler,
		clockHandler,
		attendanceHandler,
		employeeHandler,
		departmentHandler,
		scheduleHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
