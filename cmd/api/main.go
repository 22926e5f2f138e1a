package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/madison-jay/edike-backend/internal/config"
	appHTTP "github.com/madison-jay/edike-backend/internal/handler/http"
	"github.com/madison-jay/edike-backend/internal/pkg/cron"
	"github.com/madison-jay/edike-backend/internal/pkg/database"
	"github.com/madison-jay/edike-backend/internal/pkg/jwt"
	"github.com/madison-jay/edike-backend/internal/pkg/pdf"
	"github.com/madison-jay/edike-backend/internal/repository/postgresql"
	attendanceService "github.com/madison-jay/edike-backend/internal/service/attendance"
	documentService "github.com/madison-jay/edike-backend/internal/service/document"
	employeeService "github.com/madison-jay/edike-backend/internal/service/employee"
	inventoryService "github.com/madison-jay/edike-backend/internal/service/inventory"
	kpiService "github.com/madison-jay/edike-backend/internal/service/kpi"
	learningService "github.com/madison-jay/edike-backend/internal/service/learning"
	leaveService "github.com/madison-jay/edike-backend/internal/service/leave"
	payrollService "github.com/madison-jay/edike-backend/internal/service/payroll"
	reportService "github.com/madison-jay/edike-backend/internal/service/report"
	salesService "github.com/madison-jay/edike-backend/internal/service/sales"
	scheduleService "github.com/madison-jay/edike-backend/internal/service/schedule"
	taskService "github.com/madison-jay/edike-backend/internal/service/task"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	shiftTypeRepo := postgresql.NewShiftTypeRepository(db)
	shiftScheduleRepo := postgresql.NewShiftScheduleRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	salaryComponentRepo := postgresql.NewSalaryComponentRepository(db)
	defaultChargeRepo := postgresql.NewDefaultChargeRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	paymentHistoryRepo := postgresql.NewPaymentHistoryRepository(db)
	kpiTemplateRepo := postgresql.NewKPITemplateRepository(db)
	kpiAssignmentRepo := postgresql.NewKPIAssignmentRepository(db)
	moduleRepo := postgresql.NewLearningModuleRepository(db)
	lessonRepo := postgresql.NewLessonRepository(db)
	questionRepo := postgresql.NewQuestionRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	componentRepo := postgresql.NewComponentRepository(db)
	supplierRepo := postgresql.NewSupplierRepository(db)
	importBatchRepo := postgresql.NewImportBatchRepository(db)
	boxRepo := postgresql.NewBoxRepository(db)
	stockTransactionRepo := postgresql.NewStockTransactionRepository(db)
	customerRepo := postgresql.NewCustomerRepository(db)
	orderRepo := postgresql.NewOrderRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	employeeDocumentRepo := postgresql.NewEmployeeDocumentRepository(db)
	taskDocumentRepo := postgresql.NewTaskDocumentRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.Auth.Secret)
	labelGenerator := pdf.NewGenerator(cfg.Labels.CompanyName)

	employeeSvc := employeeService.NewService(db, employeeRepo, departmentRepo)
	leaveSvc := leaveService.NewService(db, leaveRequestRepo, employeeRepo)
	attendanceSvc := attendanceService.NewService(db, attendanceRepo, shiftScheduleRepo, leaveRequestRepo, employeeRepo)
	scheduleSvc := scheduleService.NewService(db, shiftTypeRepo, shiftScheduleRepo, employeeRepo)
	taskSvc := taskService.NewService(db, taskRepo, employeeRepo)
	payrollSvc := payrollService.NewService(db, employeeRepo, salaryComponentRepo, defaultChargeRepo, deductionRepo, paymentHistoryRepo)
	kpiSvc := kpiService.NewService(db, kpiTemplateRepo, kpiAssignmentRepo, employeeRepo)
	learningSvc := learningService.NewService(db, moduleRepo, lessonRepo, questionRepo)
	inventorySvc := inventoryService.NewService(db, productRepo, componentRepo, supplierRepo, importBatchRepo, boxRepo, stockTransactionRepo, labelGenerator)
	salesSvc := salesService.NewService(db, customerRepo, orderRepo)
	reportSvc := reportService.NewService(reportRepo)
	documentSvc := documentService.NewService(employeeDocumentRepo, taskDocumentRepo, employeeRepo, taskRepo)

	router := appHTTP.NewRouter(cfg, jwtSvc, appHTTP.Handlers{
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Document:   appHTTP.NewDocumentHandler(documentSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Schedule:   appHTTP.NewScheduleHandler(scheduleSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
		KPI:        appHTTP.NewKPIHandler(kpiSvc),
		Learning:   appHTTP.NewLearningHandler(learningSvc),
		Inventory:  appHTTP.NewInventoryHandler(inventorySvc),
		Sales:      appHTTP.NewSalesHandler(salesSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	scheduler := cron.NewScheduler()
	cron.NewPayrollJobs(payrollSvc).RegisterJobs(scheduler)
	scheduler.Start()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server shutdown error: ", err)
	}
}
