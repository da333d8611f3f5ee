package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"

	"github.com/packpal/packpal-backend-go/internal/config"
)

type Handlers struct {
	Employee     EmployeeHandler
	Attendance   AttendanceHandler
	Advance      AdvanceHandler
	Salary       SalaryHandler
	Transfer     TransferHandler
	Contribution ContributionHandler
	Product      ProductHandler
	Transaction  TransactionHandler
	Inventory    InventoryHandler
	Finance      FinanceHandler
	Sewing       SewingHandler
}

func NewRouter(cfg *config.Config, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "packpal-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.Employee.List)
			r.Post("/", h.Employee.Create)
			r.Get("/{empId}", h.Employee.Get)
			r.Put("/{empId}", h.Employee.Update)
			r.Delete("/{empId}", h.Employee.Delete)
		})

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", h.Attendance.List)
			r.Post("/", h.Attendance.Create)
			r.Get("/lookup", h.Attendance.Lookup)
			r.Get("/{id}", h.Attendance.Get)
			r.Put("/{id}", h.Attendance.Update)
			r.Delete("/{id}", h.Attendance.Delete)
		})

		r.Route("/advances", func(r chi.Router) {
			r.Get("/", h.Advance.List)
			r.Post("/", h.Advance.Create)
			r.Post("/compute", h.Advance.Compute)
			r.Get("/lookup", h.Advance.Lookup)
			r.Get("/{id}", h.Advance.Get)
			r.Put("/{id}", h.Advance.Update)
			r.Delete("/{id}", h.Advance.Delete)
		})

		r.Route("/salary", func(r chi.Router) {
			r.Get("/calc", h.Salary.Calc)
			r.Get("/summary", h.Salary.Summary)
		})

		r.Route("/transfers", func(r chi.Router) {
			r.Get("/", h.Transfer.List)
			r.Post("/", h.Transfer.Create)
			r.Post("/generate", h.Transfer.Generate)
			r.Get("/{id}", h.Transfer.Get)
			r.Patch("/{id}/pay", h.Transfer.MarkPaid)
			r.Delete("/{id}", h.Transfer.Delete)
		})

		r.Route("/contributions", func(r chi.Router) {
			r.Get("/", h.Contribution.List)
			r.Post("/", h.Contribution.Create)
			r.Patch("/{id}/pay", h.Contribution.MarkPaid)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.Product.List)
			r.Post("/", h.Product.Create)
			r.Get("/summary", h.Product.Summary)
			r.Get("/summary-v2", h.Product.SummaryV2)
			r.Get("/{id}", h.Product.Get)
			r.Put("/{id}", h.Product.Update)
			r.Delete("/{id}", h.Product.Delete)
		})

		r.Route("/transactions", func(r chi.Router) {
			r.Get("/", h.Transaction.List)
			r.Post("/", h.Transaction.Create)
			r.Get("/revenue", h.Transaction.Revenue)
			r.Get("/revenue/monthly", h.Transaction.MonthlyRevenue)
			r.Get("/{id}", h.Transaction.Get)
			r.Put("/{id}", h.Transaction.Update)
			r.Delete("/{id}", h.Transaction.Delete)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", h.Inventory.ListItems)
			r.Post("/", h.Inventory.CreateItem)
			r.Get("/summary", h.Inventory.Summary)
			r.Get("/{itemId}", h.Inventory.GetItem)
			r.Put("/{itemId}", h.Inventory.UpdateItem)
			r.Delete("/{itemId}", h.Inventory.DeleteItem)
		})

		r.Route("/purchases", func(r chi.Router) {
			r.Get("/", h.Inventory.ListPurchases)
			r.Post("/", h.Inventory.CreatePurchase)
			r.Get("/summary", h.Inventory.PurchaseSummary)
			r.Get("/{id}", h.Inventory.GetPurchase)
			r.Patch("/{id}/approve", h.Inventory.ApprovePurchase)
			r.Delete("/{id}", h.Inventory.DeletePurchase)
		})

		r.Route("/finance", func(r chi.Router) {
			r.Get("/receivables/summary", h.Finance.Receivables)
			r.Get("/payables/summary", h.Finance.Payables)
			r.Get("/overview", h.Finance.Overview)
		})

		r.Route("/sewing", func(r chi.Router) {
			r.Get("/", h.Sewing.List)
			r.Post("/", h.Sewing.Create)
			r.Get("/{id}", h.Sewing.Get)
			r.Put("/{id}", h.Sewing.Update)
			r.Patch("/{id}/status", h.Sewing.UpdateStatus)
			r.Delete("/{id}", h.Sewing.Delete)
		})
	})

	return r
}
