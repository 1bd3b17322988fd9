package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/crm-pro/internal/application/analytics"
	"github.com/tu-usuario/crm-pro/internal/application/auth"
	"github.com/tu-usuario/crm-pro/internal/application/billing"
	"github.com/tu-usuario/crm-pro/internal/application/usecase"
	"github.com/tu-usuario/crm-pro/internal/infrastructure/memory"
	infrapdf "github.com/tu-usuario/crm-pro/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/crm-pro/internal/interfaces/http"
	"github.com/tu-usuario/crm-pro/pkg/config"
	"github.com/tu-usuario/crm-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Store en memoria: todo el estado vive aquí y se pierde al apagar.
	store := memory.NewStore()
	if cfg.Seed.Enabled {
		store.Seed()
		log.Info().Msg("datos de demostración cargados")
	}

	userRepo := memory.NewUserRepository(store)
	leadRepo := memory.NewLeadRepository(store)
	dealRepo := memory.NewDealRepository(store)
	taskRepo := memory.NewTaskRepository(store)
	callRepo := memory.NewCallRepository(store)
	meetingRepo := memory.NewMeetingRepository(store)
	productRepo := memory.NewProductRepository(store)
	inventoryRepo := memory.NewInventoryRepository(store)
	quotationRepo := memory.NewQuotationRepository(store)
	invoiceRepo := memory.NewInvoiceRepository(store)
	paymentRepo := memory.NewPaymentRepository(store)

	userUC := usecase.NewUserUseCase(userRepo)
	leadUC := usecase.NewLeadUseCase(leadRepo, dealRepo)
	dealUC := usecase.NewDealUseCase(dealRepo)
	activityUC := usecase.NewActivityUseCase(taskRepo, callRepo, meetingRepo)
	productUC := usecase.NewProductUseCase(productRepo, inventoryRepo)

	quotationUC := billing.NewQuotationUseCase(quotationRepo, productRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, quotationRepo, productRepo)
	paymentUC := billing.NewPaymentUseCase(paymentRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, productRepo, pdfGenerator)

	dashboardUC := appanalytics.NewDashboardUseCase(
		userRepo, leadRepo, dealRepo,
		taskRepo, callRepo, meetingRepo,
		invoiceRepo, paymentRepo, inventoryRepo, productRepo,
	)

	authUC := auth.NewAuthUseCase(userRepo, store, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	mountSwagger(app, log, "./docs/swagger.json")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		UserUC:      userUC,
		LeadUC:      leadUC,
		DealUC:      dealUC,
		ActivityUC:  activityUC,
		ProductUC:   productUC,
		QuotationUC: quotationUC,
		InvoiceUC:   invoiceUC,
		PaymentUC:   paymentUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

// mountSwagger registra la UI de swagger solo si el artefacto generado
// existe: swagger.New hace panic con un FilePath ausente y la API debe
// arrancar igual sin la UI de documentación.
func mountSwagger(app *fiber.App, log *logger.Logger, filePath string) {
	if _, err := os.Stat(filePath); err != nil {
		log.Warn().Str("path", filePath).Msg("swagger.json no encontrado, UI de documentación deshabilitada")
		return
	}
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: filePath,
		Path:     "docs",
		Title:    "CRM Pro API",
	}))
}
