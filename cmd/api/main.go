package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/attendly-hq/attendly-backend-go/internal/config"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/attendance"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/employee"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/leave"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/overtime"
	"github.com/attendly-hq/attendly-backend-go/internal/domain/payroll"
	appHTTP "github.com/attendly-hq/attendly-backend-go/internal/handler/http"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/cron"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/database"
	"github.com/attendly-hq/attendly-backend-go/internal/pkg/jwt"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/jsonstore"
	"github.com/attendly-hq/attendly-backend-go/internal/repository/postgresql"
	attendanceService "github.com/attendly-hq/attendly-backend-go/internal/service/attendance"
	serviceAuth "github.com/attendly-hq/attendly-backend-go/internal/service/auth"
	dashboardService "github.com/attendly-hq/attendly-backend-go/internal/service/dashboard"
	employeeService "github.com/attendly-hq/attendly-backend-go/internal/service/employee"
	leaveService "github.com/attendly-hq/attendly-backend-go/internal/service/leave"
	overtimeService "github.com/attendly-hq/attendly-backend-go/internal/service/overtime"
	payrollService "github.com/attendly-hq/attendly-backend-go/internal/service/payroll"
	"github.com/shopspring/decimal"
)

type repositories struct {
	employee         employee.EmployeeRepository
	registrationCode employee.RegistrationCodeRepository
	attendance       attendance.AttendanceRepository
	leave            leave.LeaveRequestRepository
	overtime         overtime.OvertimeRepository
	payroll          payroll.PayrollRepository
	tx               employee.Transactor
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	var repos repositories
	switch cfg.Ledger.StorageDriver {
	case "postgres":
		db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
		if err != nil {
			fmt.Println("Error connecting to database:", err)
			return
		}
		repos = repositories{
			employee:         postgresql.NewEmployeeRepository(db),
			registrationCode: postgresql.NewRegistrationCodeRepository(db),
			attendance:       postgresql.NewAttendanceRepository(db),
			leave:            postgresql.NewLeaveRequestRepository(db),
			overtime:         postgresql.NewOvertimeRepository(db),
			payroll:          postgresql.NewPayrollRepository(db),
			tx:               postgresql.NewTransactor(db),
		}
	case "jsonfile":
		store, err := jsonstore.New(cfg.Ledger.DataDir)
		if err != nil {
			fmt.Println("Error opening data directory:", err)
			return
		}
		repos = repositories{
			employee:         jsonstore.NewEmployeeRepository(store),
			registrationCode: jsonstore.NewRegistrationCodeRepository(store),
			attendance:       jsonstore.NewAttendanceRepository(store),
			leave:            jsonstore.NewLeaveRequestRepository(store),
			overtime:         jsonstore.NewOvertimeRepository(store),
			payroll:          jsonstore.NewPayrollRepository(store),
			tx:               store,
		}
	default:
		log.Fatal("Unsupported storage driver: ", cfg.Ledger.StorageDriver)
	}

	loc := cfg.Location()
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var calculator payroll.SalaryCalculator
	switch cfg.Ledger.PayrollCalculator {
	case "attendance":
		calculator = payrollService.NewAttendanceSalaryCalculator(repos.attendance, repos.overtime, decimal.NewFromInt(100))
	default:
		calculator = payrollService.NewFixedSalaryCalculator()
	}

	authSvc := serviceAuth.NewAuthService(repos.employee, JWTService)
	employeeSvc := employeeService.NewEmployeeService(repos.employee, repos.registrationCode, repos.tx)
	attendanceSvc := attendanceService.NewAttendanceService(repos.attendance, repos.employee, loc)
	leaveSvc := leaveService.NewLeaveService(repos.leave, loc)
	overtimeSvc := overtimeService.NewOvertimeService(repos.overtime)
	payrollSvc := payrollService.NewPayrollService(repos.payroll, repos.employee, calculator)
	dashboardSvc := dashboardService.NewDashboardService(
		repos.attendance,
		repos.leave,
		repos.overtime,
		repos.payroll,
		repos.employee,
		loc,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	overtimeHandler := appHTTP.NewOvertimeHandler(overtimeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(repos.attendance, loc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
		},
		JWTService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		overtimeHandler,
		payrollHandler,
		dashboardHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server failed: ", err)
	}
}
