package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/billing"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	UserUC      *usecase.UserUseCase
	LeadUC      *usecase.LeadUseCase
	DealUC      *usecase.DealUseCase
	ActivityUC  *usecase.ActivityUseCase
	ProductUC   *usecase.ProductUseCase
	QuotationUC *billing.QuotationUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PaymentUC   *billing.PaymentUseCase
	PDFUC       *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login es público; me/logout requieren token)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret), authHandler.Me)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret), authHandler.Logout)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users (crear es solo admin; listar cualquiera autenticado)
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", RequireRole(entity.RoleAdmin), userHandler.Create)
	users.Get("/", userHandler.List)

	// Leads (protegido)
	leads := protected.Group("/leads")
	leadHandler := NewLeadHandler(deps.LeadUC)
	leads.Post("/", leadHandler.Create)
	leads.Get("/", leadHandler.List)
	leads.Put("/:id", leadHandler.Update)
	leads.Post("/:id/convert", leadHandler.Convert)

	// Deals (protegido)
	deals := protected.Group("/deals")
	dealHandler := NewDealHandler(deps.DealUC)
	deals.Post("/", dealHandler.Create)
	deals.Get("/", dealHandler.List)
	deals.Put("/:id", dealHandler.Update)

	// Actividades: listado combinado filtrado por rol + CRUD por tipo
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activities", activityHandler.List)
	tasks := protected.Group("/tasks")
	tasks.Post("/", activityHandler.CreateTask)
	tasks.Put("/:id", activityHandler.UpdateTask)
	calls := protected.Group("/calls")
	calls.Post("/", activityHandler.CreateCall)
	calls.Put("/:id", activityHandler.UpdateCall)
	meetings := protected.Group("/meetings")
	meetings.Post("/", activityHandler.CreateMeeting)
	meetings.Put("/:id", activityHandler.UpdateMeeting)

	// Products e inventario (protegido)
	productHandler := NewProductHandler(deps.ProductUC)
	products := protected.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	invGroup := protected.Group("/inventory")
	invGroup.Get("/", productHandler.ListInventory)
	invGroup.Put("/:productId", productHandler.UpdateInventory)

	// Quotations (protegido)
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC, deps.InvoiceUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Post("/:id/convert", quotationHandler.Convert)

	// Invoices (protegido)
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Put("/:id", invoiceHandler.Update)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Payments (protegido)
	payments := protected.Group("/payments")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.List)

	// Dashboard: el resumen global es para admin y manager; el personal para
	// cualquier usuario autenticado.
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", RequireRole(entity.RoleAdmin, entity.RoleManager), dashboardHandler.Summary)
	dashboard.Get("/my", dashboardHandler.My)
}
