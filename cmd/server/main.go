package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/syedsmuzakkir/Gym-Portal/internal/config"
	"github.com/syedsmuzakkir/Gym-Portal/internal/db"
	"github.com/syedsmuzakkir/Gym-Portal/internal/gateway"
	"github.com/syedsmuzakkir/Gym-Portal/internal/handler"
	"github.com/syedsmuzakkir/Gym-Portal/internal/repository"
	"github.com/syedsmuzakkir/Gym-Portal/internal/server"
	"github.com/syedsmuzakkir/Gym-Portal/internal/service"
	"github.com/syedsmuzakkir/Gym-Portal/internal/worker"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to open data store", "err", err)
		os.Exit(1)
	}
	defer store.Close()

	// repositories
	userRepo := repository.UserRepository{DB: store}
	employeeRepo := repository.EmployeeRepository{DB: store}
	customerRepo := repository.CustomerRepository{DB: store}
	invoiceRepo := repository.InvoiceRepository{DB: store}
	paymentRepo := repository.PaymentRepository{DB: store}
	linkRepo := repository.PaymentLinkRepository{DB: store}
	attendanceRepo := repository.AttendanceRepository{DB: store}
	codeRepo := repository.MemberCodeRepository{DB: store}
	meetingRepo := repository.MeetingRepository{DB: store}
	messageRepo := repository.MessageRepository{DB: store}
	settingsRepo := repository.SettingsRepository{DB: store}

	// payment gateways
	gateways := gateway.Registry{
		"razorpay": gateway.NewRazorpay(),
		"stripe":   gateway.NewStripe(),
	}

	// services
	authSvc := service.AuthService{Config: cfg, Users: userRepo, Logger: logger}
	attendanceSvc := service.AttendanceService{
		Attendance: attendanceRepo,
		Codes:      codeRepo,
		Employees:  employeeRepo,
		Location:   cfg.Timezone,
		Logger:     logger,
	}
	paymentSvc := service.PaymentService{
		Payments:  paymentRepo,
		Customers: customerRepo,
		Invoices:  invoiceRepo,
		Links:     linkRepo,
		Gateways:  gateways,
		FeePct:    cfg.GatewayFeePct,
		Logger:    logger,
	}
	billingSvc := service.BillingService{Invoices: invoiceRepo, Customers: customerRepo, Logger: logger}
	dashboardSvc := service.DashboardService{
		Employees:  employeeRepo,
		Customers:  customerRepo,
		Invoices:   invoiceRepo,
		Attendance: &attendanceSvc,
		Payments:   &paymentSvc,
	}

	// handlers
	healthHandler := handler.HealthHandler{Store: store}
	authHandler := handler.AuthHandler{Service: &authSvc}
	employeeHandler := handler.EmployeeHandler{Repo: employeeRepo}
	customerHandler := handler.CustomerHandler{Repo: customerRepo, Payments: paymentRepo, Invoices: invoiceRepo}
	attendanceHandler := handler.AttendanceHandler{Service: &attendanceSvc, Repo: attendanceRepo}
	codeHandler := handler.MemberCodeHandler{Repo: codeRepo, Employees: employeeRepo, Customers: customerRepo}
	paymentHandler := handler.PaymentHandler{Service: &paymentSvc, Repo: paymentRepo, Links: linkRepo}
	billingHandler := handler.BillingHandler{Service: &billingSvc, Repo: invoiceRepo}
	meetingHandler := handler.MeetingHandler{Repo: meetingRepo}
	messageHandler := handler.MessageHandler{Repo: messageRepo, Users: userRepo}
	dashboardHandler := handler.DashboardHandler{Service: dashboardSvc}
	settingsHandler := handler.SettingsHandler{Repo: settingsRepo}

	sweeper := worker.Sweeper{
		Service:    &attendanceSvc,
		Schedule:   cfg.SweepSchedule,
		MaxSession: time.Duration(cfg.MaxSessionMins) * time.Minute,
		Location:   cfg.Timezone,
		Logger:     logger,
	}
	if err := sweeper.Start(); err != nil {
		logger.Error("failed to start attendance sweeper", "err", err)
		os.Exit(1)
	}
	defer sweeper.Stop()

	router := server.NewRouter(cfg, logger,
		healthHandler, authHandler, employeeHandler, customerHandler,
		attendanceHandler, codeHandler, paymentHandler, billingHandler,
		meetingHandler, messageHandler, dashboardHandler, settingsHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
