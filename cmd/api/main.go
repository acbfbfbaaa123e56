package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/gudang-api/internal/application/analytics"
	"github.com/jhoicas/gudang-api/internal/application/auth"
	"github.com/jhoicas/gudang-api/internal/application/inventory"
	"github.com/jhoicas/gudang-api/internal/application/report"
	"github.com/jhoicas/gudang-api/internal/application/requests"
	"github.com/jhoicas/gudang-api/internal/application/usecase"
	"github.com/jhoicas/gudang-api/internal/domain/event"
	"github.com/jhoicas/gudang-api/internal/infrastructure/messaging"
	infrapdf "github.com/jhoicas/gudang-api/internal/infrastructure/pdf"
	"github.com/jhoicas/gudang-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gudang-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/gudang-api/internal/interfaces/http"
	"github.com/jhoicas/gudang-api/pkg/config"
	"github.com/jhoicas/gudang-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	// Eventos del libro de stock: Kafka si hay brokers, si no se descartan.
	var publisher event.Publisher = event.NopPublisher{}
	if cfg.Kafka.Enabled() {
		kafkaPub := messaging.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, log.Zerolog())
		defer func() {
			if err := kafkaPub.Close(); err != nil {
				log.Warn().Err(err).Msg("cerrar publicador kafka")
			}
		}()
		publisher = kafkaPub
		log.Info().Strs("brokers", cfg.Kafka.Brokers).Str("topic", cfg.Kafka.Topic).Msg("publicación de eventos habilitada")
	}

	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	requestRepo := postgres.NewStockRequestRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	ledgerUC := inventory.NewLedgerUseCase(txRunner, movementRepo, publisher, log.Zerolog())
	lowStockUC := inventory.NewLowStockUseCase(itemRepo)
	itemUC := usecase.NewItemUseCase(itemRepo, movementRepo, categoryRepo, vendorRepo, txRunner)
	requestUC := requests.NewUseCase(txRunner, requestRepo, itemRepo, publisher, log.Zerolog())
	dashboardUC := appanalytics.NewDashboardUseCase(postgres.NewDashboardRepository(pool))
	analyticsUC := usecase.NewAnalyticsUseCase(postgres.NewAnalyticsRepository(pool))
	reportUC := report.NewUseCase(itemRepo, movementRepo,
		infrapdf.NewMarotoPDFGenerator(cfg.App.Name), xmlexport.NewStockCardBuilder())
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := httpRouter.NewApp(httpRouter.AppConfig{
		Name:        cfg.App.Name,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Logger:      log.Component("http"),
	})

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Gudang API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "database": err.Error()})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Ledger:      ledgerUC,
		LowStock:    lowStockUC,
		ItemUC:      itemUC,
		CategoryUC:  usecase.NewCategoryUseCase(categoryRepo),
		VendorUC:    usecase.NewVendorUseCase(vendorRepo),
		UserUC:      usecase.NewUserUseCase(userRepo),
		AnalyticsUC: analyticsUC,
		RequestUC:   requestUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		AuthUC:      authUC,
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
