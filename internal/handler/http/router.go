package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/madison-jay/edike-backend/internal/config"
	"github.com/madison-jay/edike-backend/internal/domain/user"
	"github.com/madison-jay/edike-backend/internal/handler/http/middleware"
	"github.com/madison-jay/edike-backend/internal/pkg/jwt"
)

type Handlers struct {
	Employee   EmployeeHandler
	Document   DocumentHandler
	Leave      LeaveHandler
	Attendance AttendanceHandler
	Schedule   ScheduleHandler
	Task       TaskHandler
	Payroll    PayrollHandler
	KPI        KPIHandler
	Learning   LearningHandler
	Inventory  InventoryHandler
	Sales      SalesHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "edike-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.Auth.AllowedOrigin},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.Identity(jwtService))

			r.Route("/employees", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermEmployeeRead)).Get("/", h.Employee.List)
				r.With(middleware.RequirePermission(user.PermEmployeeWrite)).Post("/", h.Employee.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermEmployeeRead)).Get("/", h.Employee.Get)
					// Self-service updates are narrowed inside the service.
					r.Put("/", h.Employee.Update)
					r.With(middleware.RequirePermission(user.PermEmployeeWrite)).Delete("/", h.Employee.Delete)

					r.With(middleware.RequirePermission(user.PermAttendanceRead)).Get("/attendance", h.Attendance.ListByEmployee)
					r.With(middleware.RequirePermission(user.PermPayrollRead)).Get("/payments", h.Payroll.ListPayments)
					r.With(middleware.RequirePermission(user.PermPayrollRead)).Get("/payment", h.Payroll.GetPayment)

					r.Get("/documents", h.Document.ListEmployeeDocuments)
					r.Post("/documents", h.Document.CreateEmployeeDocuments)
				})
			})

			r.Route("/employee-documents/{id}", func(r chi.Router) {
				r.Put("/", h.Document.UpdateEmployeeDocument)
				r.Delete("/", h.Document.DeleteEmployeeDocument)
			})

			r.With(middleware.RequirePermission(user.PermEmployeeRead)).Get("/departments", h.Employee.ListDepartments)

			r.Route("/leave-requests", func(r chi.Router) {
				r.Get("/", h.Leave.List)
				r.Post("/", h.Leave.Submit)
				r.Get("/{id}", h.Leave.Get)
				r.Post("/{id}/decision", h.Leave.Decide)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermAttendanceRead)).Get("/", h.Attendance.ListByDate)
				r.With(middleware.RequirePermission(user.PermAttendanceWrite)).Post("/", h.Attendance.Record)
				r.With(middleware.RequirePermission(user.PermAttendanceWrite)).Post("/sync", h.Attendance.Sync)
			})

			r.Route("/shift-types", func(r chi.Router) {
				r.Get("/", h.Schedule.ListShiftTypes)
				r.With(middleware.RequirePermission(user.PermScheduleWrite)).Post("/", h.Schedule.CreateShiftType)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Schedule.GetShiftType)
					r.With(middleware.RequirePermission(user.PermScheduleWrite)).Put("/", h.Schedule.UpdateShiftType)
					r.With(middleware.RequirePermission(user.PermScheduleWrite)).Delete("/", h.Schedule.DeleteShiftType)
				})
			})

			r.Route("/shift-schedules", func(r chi.Router) {
				r.Get("/", h.Schedule.ListShiftSchedules)
				r.With(middleware.RequirePermission(user.PermScheduleWrite)).Post("/", h.Schedule.CreateShiftSchedule)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Schedule.GetShiftSchedule)
					r.With(middleware.RequirePermission(user.PermScheduleWrite)).Put("/", h.Schedule.UpdateShiftSchedule)
					r.With(middleware.RequirePermission(user.PermScheduleWrite)).Delete("/", h.Schedule.DeleteShiftSchedule)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", h.Task.List)
				r.With(middleware.RequirePermission(user.PermTaskWrite)).Post("/", h.Task.Create)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Task.Get)
					// Assignee status moves are narrowed inside the service.
					r.Put("/", h.Task.Update)
					r.With(middleware.RequirePermission(user.PermTaskWrite)).Delete("/", h.Task.Delete)

					r.Get("/documents", h.Document.ListTaskDocuments)
					r.With(middleware.RequirePermission(user.PermTaskWrite)).Post("/documents", h.Document.CreateTaskDocuments)
				})
			})

			r.Route("/task-documents/{id}", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermTaskWrite))
				r.Put("/", h.Document.UpdateTaskDocument)
				r.Delete("/", h.Document.DeleteTaskDocument)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermPayrollWrite))
				r.Post("/generate", h.Payroll.GeneratePayment)
				r.Post("/generate-all", h.Payroll.GenerateAll)
			})

			r.Route("/salary-components", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermPayrollWrite))
				r.Get("/", h.Payroll.ListSalaryComponents)
				r.Post("/", h.Payroll.CreateSalaryComponent)
				r.Get("/{id}", h.Payroll.GetSalaryComponent)
				r.Put("/{id}", h.Payroll.UpdateSalaryComponent)
				r.Delete("/{id}", h.Payroll.DeleteSalaryComponent)
			})

			r.Route("/default-charges", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermPayrollWrite))
				r.Get("/", h.Payroll.ListDefaultCharges)
				r.Post("/", h.Payroll.CreateDefaultCharge)
				r.Get("/{id}", h.Payroll.GetDefaultCharge)
				r.Put("/{id}", h.Payroll.UpdateDefaultCharge)
				r.Delete("/{id}", h.Payroll.DeleteDefaultCharge)
			})

			r.Route("/deductions", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermPayrollWrite))
				r.Get("/", h.Payroll.ListDeductions)
				r.Post("/", h.Payroll.CreateDeduction)
				r.Get("/{id}", h.Payroll.GetDeduction)
				r.Put("/{id}", h.Payroll.UpdateDeduction)
				r.Delete("/{id}", h.Payroll.DeleteDeduction)
			})

			r.Route("/kpi", func(r chi.Router) {
				r.Route("/templates", func(r chi.Router) {
					r.Get("/", h.KPI.ListTemplates)
					r.With(middleware.RequirePermission(user.PermKPIWrite)).Post("/", h.KPI.CreateTemplate)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.KPI.GetTemplate)
						r.With(middleware.RequirePermission(user.PermKPIWrite)).Put("/", h.KPI.UpdateTemplate)
						r.With(middleware.RequirePermission(user.PermKPIWrite)).Delete("/", h.KPI.DeleteTemplate)
					})
				})

				r.Route("/assignments", func(r chi.Router) {
					r.Get("/", h.KPI.ListAssignments)
					r.With(middleware.RequirePermission(user.PermKPIWrite)).Post("/", h.KPI.CreateAssignment)

					r.Route("/{id}", func(r chi.Router) {
						r.Get("/", h.KPI.GetAssignment)
						r.Post("/start", h.KPI.StartAssignment)
						r.Post("/submit", h.KPI.SubmitAssignment)
						r.With(middleware.RequirePermission(user.PermKPIReview)).Post("/review", h.KPI.ReviewAssignment)
						r.With(middleware.RequirePermission(user.PermKPIWrite)).Delete("/", h.KPI.DeleteAssignment)
					})
				})
			})

			r.Route("/modules", func(r chi.Router) {
				r.Get("/", h.Learning.ListModules)
				r.With(middleware.RequirePermission(user.PermLearningWrite)).Post("/", h.Learning.CreateModule)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", h.Learning.GetModule)
					r.With(middleware.RequirePermission(user.PermLearningWrite)).Put("/", h.Learning.UpdateModule)
					r.With(middleware.RequirePermission(user.PermLearningWrite)).Delete("/", h.Learning.DeleteModule)
				})

				r.Route("/{moduleID}/lessons", func(r chi.Router) {
					r.Get("/", h.Learning.ListLessons)
					r.With(middleware.RequirePermission(user.PermLearningWrite)).Post("/", h.Learning.CreateLesson)
				})
			})

			r.Route("/lessons/{id}", func(r chi.Router) {
				r.Get("/", h.Learning.GetLesson)
				r.With(middleware.RequirePermission(user.PermLearningWrite)).Put("/", h.Learning.UpdateLesson)
				r.With(middleware.RequirePermission(user.PermLearningWrite)).Delete("/", h.Learning.DeleteLesson)
			})

			r.Route("/lessons/{lessonID}/questions", func(r chi.Router) {
				r.Get("/", h.Learning.ListQuestions)
				r.With(middleware.RequirePermission(user.PermLearningWrite)).Post("/", h.Learning.CreateQuestion)
			})

			r.Route("/questions/{id}", func(r chi.Router) {
				r.Get("/", h.Learning.GetQuestion)
				r.With(middleware.RequirePermission(user.PermLearningWrite)).Put("/", h.Learning.UpdateQuestion)
				r.With(middleware.RequirePermission(user.PermLearningWrite)).Delete("/", h.Learning.DeleteQuestion)
			})

			r.Route("/products", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.ListProducts)
				r.With(middleware.RequirePermission(user.PermInventoryWrite)).Post("/", h.Inventory.CreateProduct)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.GetProduct)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Put("/", h.Inventory.UpdateProduct)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Delete("/", h.Inventory.DeleteProduct)
				})
			})

			r.Route("/components", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.ListComponents)
				r.With(middleware.RequirePermission(user.PermInventoryWrite)).Post("/", h.Inventory.CreateComponent)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.GetComponent)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Put("/", h.Inventory.UpdateComponent)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Delete("/", h.Inventory.DeleteComponent)
				})
			})

			r.Route("/suppliers", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.ListSuppliers)
				r.With(middleware.RequirePermission(user.PermInventoryWrite)).Post("/", h.Inventory.CreateSupplier)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.GetSupplier)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Put("/", h.Inventory.UpdateSupplier)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Delete("/", h.Inventory.DeleteSupplier)
				})
			})

			r.Route("/import-batches", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.ListImportBatches)
				r.With(middleware.RequirePermission(user.PermInventoryWrite)).Post("/", h.Inventory.CreateImportBatch)

				r.Route("/{id}", func(r chi.Router) {
					r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.GetImportBatch)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Put("/", h.Inventory.UpdateImportBatch)
					r.With(middleware.RequirePermission(user.PermInventoryWrite)).Delete("/", h.Inventory.DeleteImportBatch)
					r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/boxes", h.Inventory.ListBoxesByBatch)
				})
			})

			r.Route("/stocks", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/", h.Inventory.StockOverview)
				r.With(middleware.RequirePermission(user.PermInventoryWrite)).Post("/add", h.Inventory.AddNewStock)
				r.With(middleware.RequirePermission(user.PermInventoryWrite)).Post("/sell", h.Inventory.SellStock)
				r.With(middleware.RequirePermission(user.PermInventoryRead)).Get("/barcode/{barcode}", h.Inventory.GetBoxByBarcode)
				r.With(middleware.RequirePermission(user.PermInventoryWrite)).Put("/boxes/{id}/status", h.Inventory.UpdateBoxStatus)

				r.Route("/transactions", func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermInventoryRead))
					r.Get("/", h.Inventory.ListTransactions)
					r.Get("/{id}", h.Inventory.GetTransaction)
				})
			})

			r.Route("/customers", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermSalesWrite))
				r.Get("/", h.Sales.ListCustomers)
				r.Post("/", h.Sales.CreateCustomer)
				r.Get("/{id}", h.Sales.GetCustomer)
				r.Put("/{id}", h.Sales.UpdateCustomer)
				r.Delete("/{id}", h.Sales.DeleteCustomer)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermSalesWrite))
				r.Get("/", h.Sales.ListOrders)
				r.Post("/", h.Sales.CreateOrder)
				r.Get("/{id}", h.Sales.GetOrder)
				r.Put("/{id}", h.Sales.UpdateOrder)
				r.Delete("/{id}", h.Sales.DeleteOrder)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermReportRead))
				r.Get("/attendance", h.Report.AttendanceMatrix)
				r.Get("/payroll", h.Report.PayrollRegister)
			})
		})
	})

	return r
}
