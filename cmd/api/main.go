package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/packpal/packpal-backend-go/internal/config"
	appHTTP "github.com/packpal/packpal-backend-go/internal/handler/http"
	"github.com/packpal/packpal-backend-go/internal/pkg/database"
	"github.com/packpal/packpal-backend-go/internal/repository/postgresql"
	advanceService "github.com/packpal/packpal-backend-go/internal/service/advance"
	attendanceService "github.com/packpal/packpal-backend-go/internal/service/attendance"
	contributionService "github.com/packpal/packpal-backend-go/internal/service/contribution"
	employeeService "github.com/packpal/packpal-backend-go/internal/service/employee"
	financeService "github.com/packpal/packpal-backend-go/internal/service/finance"
	inventoryService "github.com/packpal/packpal-backend-go/internal/service/inventory"
	productService "github.com/packpal/packpal-backend-go/internal/service/product"
	salaryService "github.com/packpal/packpal-backend-go/internal/service/salary"
	sewingService "github.com/packpal/packpal-backend-go/internal/service/sewing"
	transactionService "github.com/packpal/packpal-backend-go/internal/service/transaction"
	transferService "github.com/packpal/packpal-backend-go/internal/service/transfer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	transferRepo := postgresql.NewTransferRepository(db)
	contributionRepo := postgresql.NewContributionRepository(db)
	productRepo := postgresql.NewProductRepository(db)
	transactionRepo := postgresql.NewTransactionRepository(db)
	itemRepo := postgresql.NewItemRepository(db)
	purchaseRepo := postgresql.NewPurchaseRepository(db)
	sewingRepo := postgresql.NewSewingRepository(db)

	employees := employeeService.NewEmployeeService(employeeRepo)
	attendance := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	advances := advanceService.NewAdvanceService(advanceRepo, employeeRepo)
	salaries := salaryService.NewSalaryService(employeeRepo, attendanceRepo, advanceRepo)
	transfers := transferService.NewTransferService(transferRepo, employeeRepo, salaries)
	contributions := contributionService.NewContributionService(contributionRepo, employeeRepo)
	products := productService.NewProductService(productRepo)
	transactions := transactionService.NewTransactionService(transactionRepo, productRepo)
	inventories := inventoryService.NewInventoryService(itemRepo, purchaseRepo)
	finances := financeService.NewFinanceService(transactionRepo, purchaseRepo, transferRepo, contributionRepo)
	sewings := sewingService.NewSewingService(sewingRepo)

	router := appHTTP.NewRouter(cfg, appHTTP.Handlers{
		Employee:     appHTTP.NewEmployeeHandler(employees),
		Attendance:   appHTTP.NewAttendanceHandler(attendance),
		Advance:      appHTTP.NewAdvanceHandler(advances),
		Salary:       appHTTP.NewSalaryHandler(salaries),
		Transfer:     appHTTP.NewTransferHandler(transfers),
		Contribution: appHTTP.NewContributionHandler(contributions),
		Product:      appHTTP.NewProductHandler(products),
		Transaction:  appHTTP.NewTransactionHandler(transactions),
		Inventory:    appHTTP.NewInventoryHandler(inventories),
		Finance:      appHTTP.NewFinanceHandler(finances),
		Sewing:       appHTTP.NewSewingHandler(sewings),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
