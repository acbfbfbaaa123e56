// seed pobla la base con usuarios por rol, categorías y proveedores de ejemplo y,
// opcionalmente, artículos desde un CSV (separador ';', UTF-8 o ISO-8859-1).
//
// Uso: go run ./cmd/seed [-items articulos.csv] [-latin1] [-password clave]
// Los registros existentes (mismo email o código) se omiten, así que puede ejecutarse
// varias veces.
package main

import (
	"context"
	"errors"
	"flag"
	"os"

	"github.com/jhoicas/gudang-api/internal/application/auth"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/usecase"
	"github.com/jhoicas/gudang-api/internal/domain"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/infrastructure/postgres"
	"github.com/jhoicas/gudang-api/pkg/config"
	"github.com/jhoicas/gudang-api/pkg/logger"
	"github.com/shopspring/decimal"
)

var seedUsers = []dto.RegisterRequest{
	{Name: "Administrador", Email: "admin@gudang.local", Role: entity.RoleAdmin},
	{Name: "Personal de bodega", Email: "bodega@gudang.local", Role: entity.RoleWarehouseStaff},
	{Name: "Compras", Email: "compras@gudang.local", Role: entity.RolePurchasing},
	{Name: "Finanzas", Email: "finanzas@gudang.local", Role: entity.RoleFinance},
	{Name: "Usuario", Email: "usuario@gudang.local", Role: entity.RoleUser},
}

var seedCategories = []dto.CategoryRequest{
	{Name: "Electrónica", Code: "ELEC", Description: "Componentes y dispositivos electrónicos"},
	{Name: "Útiles de oficina", Code: "OFFC", Description: "Papelería y suministros de oficina"},
	{Name: "Hardware", Code: "COMP", Description: "Equipos y accesorios de cómputo"},
	{Name: "Redes", Code: "NETW", Description: "Equipos de red y cableado"},
	{Name: "Seguridad industrial", Code: "SAFE", Description: "Elementos de protección personal"},
	{Name: "Herramientas", Code: "TOOL", Description: "Herramientas manuales y eléctricas"},
	{Name: "Materias primas", Code: "RAWM", Description: "Materiales para producción"},
	{Name: "Repuestos", Code: "SPAR", Description: "Repuestos de máquinas y equipos"},
}

var seedVendors = []dto.VendorRequest{
	{
		Name: "Tecnología Avanzada", Company: "Tecnología Avanzada S.A.", Email: "ventas@tecavanzada.test",
		Phone: "+57-1-5550101", Address: "Calle 100 # 15-20, Bogotá", ContactPerson: "Laura Gómez",
		Rating: decimal.RequireFromString("4.5"),
	},
	{
		Name: "Suministros del Norte", Company: "Suministros del Norte Ltda.", Email: "info@sumnorte.test",
		Phone: "+57-4-5550202", Address: "Carrera 50 # 30-10, Medellín", ContactPerson: "Andrés Ríos",
		Rating: decimal.RequireFromString("4.2"),
	},
	{
		Name: "Electro Andina", Company: "Electro Andina S.A.S.", Email: "comercial@electroandina.test",
		Phone: "+57-2-5550303", Address: "Avenida 6N # 25-40, Cali", ContactPerson: "Paula Mejía",
		Rating: decimal.RequireFromString("4.8"),
	},
}

func main() {
	itemsPath := flag.String("items", "", "CSV de artículos (opcional)")
	latin1 := flag.Bool("latin1", false, "el CSV está en ISO-8859-1")
	password := flag.String("password", "password", "contraseña de los usuarios creados")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migración del esquema")
	}

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{Secret: cfg.JWT.Secret})
	for _, u := range seedUsers {
		u.Password = *password
		if _, err := authUC.RegisterUser(ctx, u); err != nil && !errors.Is(err, domain.ErrEmailAlreadyExists) {
			log.Fatal().Err(err).Str("email", u.Email).Msg("crear usuario")
		}
	}
	log.Info().Int("usuarios", len(seedUsers)).Msg("usuarios listos")

	categoryRepo := postgres.NewCategoryRepository(pool)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	for _, c := range seedCategories {
		if _, err := categoryUC.Create(ctx, c); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Str("code", c.Code).Msg("crear categoría")
		}
	}

	vendorRepo := postgres.NewVendorRepository(pool)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	for _, v := range seedVendors {
		if _, err := vendorUC.Create(ctx, v); err != nil && !errors.Is(err, domain.ErrDuplicate) {
			log.Fatal().Err(err).Str("email", v.Email).Msg("crear proveedor")
		}
	}
	log.Info().Int("categorias", len(seedCategories)).Int("proveedores", len(seedVendors)).Msg("datos maestros listos")

	if *itemsPath == "" {
		return
	}
	f, err := os.Open(*itemsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir CSV de artículos")
	}
	defer f.Close()
	rows, err := readItemsCSV(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV de artículos")
	}

	categories, err := categoryUC.List(ctx, "", 1000, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar categorías")
	}
	categoryByCode := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryByCode[c.Code] = c.ID
	}
	vendors, err := vendorUC.List(ctx, "", 1000, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("listar proveedores")
	}
	vendorByEmail := make(map[string]string, len(vendors))
	for _, v := range vendors {
		vendorByEmail[v.Email] = v.ID
	}

	itemRepo := postgres.NewItemRepository(pool)
	itemUC := usecase.NewItemUseCase(itemRepo, postgres.NewStockMovementRepository(pool), categoryRepo, vendorRepo, postgres.NewTxRunner(pool))
	var created, skipped int
	for _, r := range rows {
		_, err := itemUC.Create(ctx, dto.CreateItemRequest{
			Code:          r.Code,
			Name:          r.Name,
			CategoryID:    categoryByCode[r.CategoryCode],
			VendorID:      vendorByEmail[r.VendorEmail],
			Type:          r.Type,
			PurchasePrice: r.PurchasePrice,
			SellingPrice:  r.SellingPrice,
			CurrentStock:  r.OpeningStock,
			MinimumStock:  r.MinimumStock,
			Unit:          r.Unit,
			Location:      r.Location,
			Barcode:       r.Barcode,
		})
		switch {
		case err == nil:
			created++
		case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPrice):
			skipped++
			log.Warn().Err(err).Str("code", r.Code).Msg("artículo omitido")
		default:
			log.Fatal().Err(err).Str("code", r.Code).Msg("crear artículo")
		}
	}
	log.Info().Int("creados", created).Int("omitidos", skipped).Msg("artículos importados")
}
