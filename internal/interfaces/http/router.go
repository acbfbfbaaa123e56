package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/gudang-api/internal/application/analytics"
	"github.com/jhoicas/gudang-api/internal/application/auth"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/inventory"
	"github.com/jhoicas/gudang-api/internal/application/report"
	"github.com/jhoicas/gudang-api/internal/application/requests"
	"github.com/jhoicas/gudang-api/internal/application/usecase"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/rs/zerolog"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Ledger      *inventory.LedgerUseCase
	LowStock    *inventory.LowStockUseCase
	ItemUC      *usecase.ItemUseCase
	CategoryUC  *usecase.CategoryUseCase
	VendorUC    *usecase.VendorUseCase
	UserUC      *usecase.UserUseCase
	AnalyticsUC *usecase.AnalyticsUseCase
	RequestUC   *requests.UseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *report.UseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// AppConfig opciones del servidor Fiber.
type AppConfig struct {
	Name        string
	CORSOrigins string
	Logger      zerolog.Logger
}

// NewApp crea la app Fiber con recover, CORS, log de peticiones y un ErrorHandler
// que responde con dto.ErrorResponse.
func NewApp(cfg AppConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.Name,
		ErrorHandler: errorHandler,
	})
	app.Use(recover.New())
	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(RequestLogger(cfg.Logger))
	return app
}

func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
	}
	return respondError(c, err)
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth: login público, alta de usuarios solo admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/register",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	stockRoles := RequireRole(entity.RoleAdmin, entity.RoleWarehouseStaff)
	itemWriteRoles := RequireRole(entity.RoleAdmin, entity.RoleWarehouseStaff, entity.RolePurchasing)
	masterWriteRoles := RequireRole(entity.RoleAdmin, entity.RolePurchasing)
	adminOnly := RequireRole(entity.RoleAdmin)

	// Libro de stock
	movementHandler := NewMovementHandler(deps.Ledger, deps.ReportUC)
	movements := protected.Group("/stock-transactions")
	movements.Get("/", movementHandler.List)
	movements.Post("/", stockRoles, movementHandler.Post)
	movements.Get("/:id", movementHandler.Get)
	movements.Get("/:id/pdf", movementHandler.Receipt)
	movements.Delete("/:id", stockRoles, movementHandler.Delete)

	// Artículos (low-stock antes de /:id)
	itemHandler := NewItemHandler(deps.ItemUC, deps.LowStock, deps.ReportUC)
	items := protected.Group("/items")
	items.Get("/", itemHandler.List)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Post("/", itemWriteRoles, itemHandler.Create)
	items.Get("/:id", itemHandler.Get)
	items.Get("/:id/stock-card", itemHandler.StockCard)
	items.Put("/:id", itemWriteRoles, itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Categorías y proveedores
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories := protected.Group("/categories")
	categories.Get("/", categoryHandler.List)
	categories.Post("/", masterWriteRoles, categoryHandler.Create)
	categories.Get("/:id", categoryHandler.Get)
	categories.Put("/:id", masterWriteRoles, categoryHandler.Update)
	categories.Delete("/:id", masterWriteRoles, categoryHandler.Delete)

	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors := protected.Group("/vendors")
	vendors.Get("/", vendorHandler.List)
	vendors.Post("/", masterWriteRoles, vendorHandler.Create)
	vendors.Get("/:id", vendorHandler.Get)
	vendors.Put("/:id", masterWriteRoles, vendorHandler.Update)
	vendors.Delete("/:id", masterWriteRoles, vendorHandler.Delete)

	// Solicitudes de stock
	requestHandler := NewStockRequestHandler(deps.RequestUC)
	stockRequests := protected.Group("/stock-requests")
	stockRequests.Get("/", requestHandler.List)
	stockRequests.Post("/", requestHandler.Create)
	stockRequests.Get("/:id", requestHandler.Get)
	stockRequests.Post("/:id/approve", adminOnly, requestHandler.Approve)
	stockRequests.Post("/:id/reject", adminOnly, requestHandler.Reject)
	stockRequests.Post("/:id/fulfill", stockRoles, requestHandler.Fulfill)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	protected.Get("/users/me", userHandler.Me)
	protected.Get("/users", adminOnly, userHandler.List)

	// Panel y reportes
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.GetSummary)

	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	protected.Get("/reports/consumption", analyticsHandler.GetConsumption)
}
