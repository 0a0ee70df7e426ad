package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/auth"
	"github.com/jhoicas/bodega-api/internal/application/directory"
	"github.com/jhoicas/bodega-api/internal/application/ledger"
	"github.com/jhoicas/bodega-api/internal/application/reports"
	"github.com/jhoicas/bodega-api/internal/domain/entity"
	"github.com/jhoicas/bodega-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC    *ledger.LedgerUseCase
	ReportsUC   *reports.ReportUseCase
	DirectoryUC *directory.DirectoryUseCase
	AuthUC      *auth.AuthUseCase
	PDFGen      *pdf.LowStockReportGenerator
	AppName     string
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, registro solo para administradores.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Libro de stock (protegido)
	ledgerHandler := NewLedgerHandler(deps.LedgerUC)
	stockGroup := protected.Group("/stock")
	stockGroup.Post("/in", ledgerHandler.StockIn)
	stockGroup.Post("/out", ledgerHandler.StockOut)
	stockGroup.Get("/movements", ledgerHandler.Movements)
	stockGroup.Get("/items/:id", ledgerHandler.ItemStock)

	// Artículos (protegido)
	itemHandler := NewItemHandler(deps.DirectoryUC)
	items := protected.Group("/items")
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.Get)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.Archive)

	// Categorías (protegido)
	categoryHandler := NewCategoryHandler(deps.DirectoryUC)
	categories := protected.Group("/categories")
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)

	// Proveedores (protegido)
	supplierHandler := NewSupplierHandler(deps.DirectoryUC)
	suppliers := protected.Group("/suppliers")
	suppliers.Post("/", supplierHandler.Create)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Put("/:id", supplierHandler.Update)
	suppliers.Delete("/:id", supplierHandler.Delete)

	// Reportes (protegido; la conciliación solo para administradores)
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup := protected.Group("/reports")
	reportsGroup.Get("/low-stock", reportHandler.LowStock)
	reportsGroup.Get("/turnover", reportHandler.Turnover)
	reportsGroup.Get("/dead-stock", reportHandler.DeadStock)
	reportsGroup.Get("/trends", reportHandler.Trends)
	reportsGroup.Get("/dashboard", reportHandler.Dashboard)
	reportsGroup.Get("/reconcile", RequireRole(entity.RoleAdmin), reportHandler.Reconcile)

	// Exportes (protegido)
	exportHandler := NewExportHandler(deps.LedgerUC, deps.ReportsUC, deps.PDFGen, deps.AppName)
	exportsGroup := protected.Group("/exports")
	exportsGroup.Get("/movements.csv", exportHandler.MovementsCSV)
	exportsGroup.Get("/movements.xml", exportHandler.MovementsXML)
	exportsGroup.Get("/low-stock.csv", exportHandler.LowStockCSV)
	exportsGroup.Get("/low-stock.pdf", exportHandler.LowStockPDF)
}
