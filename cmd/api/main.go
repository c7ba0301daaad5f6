package main

import (
	"fmt"
	"net/http"

	"github.com/smartpay/smartpay-backend-go/internal/config"
	appHTTP "github.com/smartpay/smartpay-backend-go/internal/handler/http"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/clock"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/database"
	"github.com/smartpay/smartpay-backend-go/internal/pkg/jwt"
	"github.com/smartpay/smartpay-backend-go/internal/repository/postgresql"
	attendanceService "github.com/smartpay/smartpay-backend-go/internal/service/attendance"
	dashboardService "github.com/smartpay/smartpay-backend-go/internal/service/dashboard"
	leaveService "github.com/smartpay/smartpay-backend-go/internal/service/leave"
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
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	txManager := postgresql.NewTxManager(db)
	clk := clock.System{}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	attendanceSvc := attendanceService.NewAttendanceService(clk, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, clk, leaveRequestRepo, leaveBalanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(clk, dashboardRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeRepo)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
		dashboardHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server starting on port %d\n", cfg.App.Port)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
