package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/gudang-api/internal/application/auth"
	"github.com/jhoicas/gudang-api/internal/application/dto"
	"github.com/jhoicas/gudang-api/internal/application/inventory"
	"github.com/jhoicas/gudang-api/internal/application/requests"
	"github.com/jhoicas/gudang-api/internal/application/usecase"
	"github.com/jhoicas/gudang-api/internal/domain/entity"
	"github.com/jhoicas/gudang-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/gudang-api/internal/interfaces/http"
)

const (
	adminID = "00000000-0000-0000-0000-0000000000aa"
	staffID = "00000000-0000-0000-0000-0000000000bb"
	itemID  = "00000000-0000-0000-0000-000000000100"
)

type apiFixture struct {
	app   *fiber.App
	items *memory.ItemRepository
}

func newAPI(t *testing.T, stock int64) apiFixture {
	t.Helper()
	store := memory.NewStore()
	store.Seed(
		[]entity.Item{{
			ID: itemID, Code: "ITM-001", Name: "Guantes de nitrilo", CategoryID: "cat-1", VendorID: "ven-1",
			Type: entity.ItemTypeConsumable, CurrentStock: stock, MinimumStock: 20, Unit: "caja", Status: entity.StatusActive,
		}},
		[]entity.Category{{ID: "cat-1", Name: "EPP", Code: "EPP", Status: entity.StatusActive}},
		[]entity.Vendor{{ID: "ven-1", Name: "Proveedor", Email: "ventas@proveedor.test", Status: entity.StatusActive}},
		[]entity.User{
			{ID: adminID, Name: "Admin", Email: "admin@gudang.test", Role: entity.RoleAdmin, Status: entity.StatusActive},
			{ID: staffID, Name: "Bodega", Email: "bodega@gudang.test", Role: entity.RoleWarehouseStaff, Status: entity.StatusActive},
		},
	)

	txRunner := memory.NewTxRunner(store)
	itemRepo := memory.NewItemRepository(store)
	movementRepo := memory.NewStockMovementRepository(store)
	userRepo := memory.NewUserRepository(store)

	app := apphttp.NewApp(apphttp.AppConfig{Name: "gudang-test", Logger: zerolog.Nop()})
	apphttp.Router(app, apphttp.RouterDeps{
		Ledger:     inventory.NewLedgerUseCase(txRunner, movementRepo, nil, zerolog.Nop()),
		LowStock:   inventory.NewLowStockUseCase(itemRepo),
		ItemUC:     usecase.NewItemUseCase(itemRepo, movementRepo, memory.NewCategoryRepository(store), memory.NewVendorRepository(store), txRunner),
		CategoryUC: usecase.NewCategoryUseCase(memory.NewCategoryRepository(store)),
		VendorUC:   usecase.NewVendorUseCase(memory.NewVendorRepository(store)),
		UserUC:     usecase.NewUserUseCase(userRepo),
		RequestUC:  requests.NewUseCase(txRunner, memory.NewStockRequestRepository(store), itemRepo, nil, zerolog.Nop()),
		AuthUC:     auth.NewAuthUseCase(userRepo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer}),
		JWTSecret:  testJWTSecret,
	})
	return apiFixture{app: app, items: itemRepo}
}

func (f apiFixture) do(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	resp, err := f.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	if resp.StatusCode != http.StatusNoContent {
		_ = json.NewDecoder(resp.Body).Decode(&out)
	}
	return resp, out
}

func (f apiFixture) stock(t *testing.T) int64 {
	t.Helper()
	it, err := f.items.GetByID(context.Background(), itemID)
	require.NoError(t, err)
	require.NotNil(t, it)
	return it.CurrentStock
}

func movement(typ string, qty int64, price string) map[string]any {
	return map[string]any{
		"item_id":          itemID,
		"type":             typ,
		"quantity":         qty,
		"unit_price":       price,
		"transaction_date": "2026-03-10",
	}
}

func TestStockTransactions_EntradaSalidaYReversa(t *testing.T) {
	f := newAPI(t, 100)
	staff := tokenFor(t, staffID, entity.RoleWarehouseStaff)

	resp, in := f.do(t, http.MethodPost, "/api/stock-transactions", staff, movement("in", 50, "3.50"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, strings.HasPrefix(in["transaction_code"].(string), "IN-"))
	assert.EqualValues(t, 100, in["stock_before"])
	assert.EqualValues(t, 150, in["stock_after"])
	assert.Equal(t, staffID, in["user_id"])
	total, err := decimal.NewFromString(in["total_amount"].(string))
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("175")))

	resp, out := f.do(t, http.MethodPost, "/api/stock-transactions", staff, movement("out", 30, "0"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.EqualValues(t, 120, out["stock_after"])
	assert.Equal(t, int64(120), f.stock(t))

	// Revertir la entrada se calcula sobre el saldo actual: 120 - 50.
	resp, _ = f.do(t, http.MethodDelete, "/api/stock-transactions/"+in["id"].(string), staff, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, int64(70), f.stock(t))

	resp, body := f.do(t, http.MethodDelete, "/api/stock-transactions/"+in["id"].(string), staff, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestStockTransactions_StockInsuficiente(t *testing.T) {
	f := newAPI(t, 10)
	staff := tokenFor(t, staffID, entity.RoleWarehouseStaff)

	resp, body := f.do(t, http.MethodPost, "/api/stock-transactions", staff, movement("out", 15, "1"))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "INSUFFICIENT_STOCK", body["code"])
	fields, ok := body["fields"].(map[string]any)
	require.True(t, ok)
	assert.NotEmpty(t, fields["error"])
	assert.Equal(t, int64(10), f.stock(t))
}

func TestStockTransactions_Validacion(t *testing.T) {
	f := newAPI(t, 10)
	staff := tokenFor(t, staffID, entity.RoleWarehouseStaff)

	resp, body := f.do(t, http.MethodPost, "/api/stock-transactions", staff, map[string]any{"type": "sideways", "quantity": 0})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	fields := body["fields"].(map[string]any)
	assert.Contains(t, fields, "item_id")
	assert.Contains(t, fields, "type")
	assert.Contains(t, fields, "quantity")
	assert.Contains(t, fields, "transaction_date")

	resp, body = f.do(t, http.MethodPost, "/api/stock-transactions", staff, movement("in", 5, "-1"))
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "INVALID_PRICE", body["code"])
	assert.Equal(t, int64(10), f.stock(t))
}

func TestIdsMalformados(t *testing.T) {
	f := newAPI(t, 10)
	staff := tokenFor(t, staffID, entity.RoleWarehouseStaff)

	bad := movement("in", 5, "1")
	bad["item_id"] = "abc"
	resp, body := f.do(t, http.MethodPost, "/api/stock-transactions", staff, bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", body["code"])
	assert.Contains(t, body["fields"].(map[string]any), "item_id")

	huge := movement("in", 1_000_000_001, "1")
	resp, body = f.do(t, http.MethodPost, "/api/stock-transactions", staff, huge)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["fields"].(map[string]any), "quantity")

	resp, body = f.do(t, http.MethodDelete, "/api/stock-transactions/abc", staff, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])

	resp, body = f.do(t, http.MethodGet, "/api/items/abc", staff, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ITEM_NOT_FOUND", body["code"])

	resp, _ = f.do(t, http.MethodPost, "/api/stock-requests/abc/fulfill", staff, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, int64(10), f.stock(t))
}

func TestStockTransactions_RolSinPermiso(t *testing.T) {
	f := newAPI(t, 10)
	finance := tokenFor(t, "00000000-0000-0000-0000-0000000000cc", entity.RoleFinance)

	resp, _ := f.do(t, http.MethodPost, "/api/stock-transactions", finance, movement("in", 5, "1"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Lectura permitida a cualquier usuario autenticado.
	resp, body := f.do(t, http.MethodGet, "/api/stock-transactions", finance, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "items")

	resp, _ = f.do(t, http.MethodGet, "/api/stock-transactions", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestItems_BorradoBloqueadoConMovimientos(t *testing.T) {
	f := newAPI(t, 10)
	staff := tokenFor(t, staffID, entity.RoleWarehouseStaff)
	admin := tokenFor(t, adminID, entity.RoleAdmin)

	resp, _ := f.do(t, http.MethodPost, "/api/stock-transactions", staff, movement("in", 1, "1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := f.do(t, http.MethodDelete, "/api/items/"+itemID, admin, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DELETE_BLOCKED", body["code"])

	resp, body = f.do(t, http.MethodGet, "/api/items/"+itemID, staff, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 11, body["current_stock"])
	assert.Len(t, body["recent_transactions"], 1)
}

func TestItems_CrearActualizarYBajoMinimo(t *testing.T) {
	f := newAPI(t, 10)
	staff := tokenFor(t, staffID, entity.RoleWarehouseStaff)

	resp, created := f.do(t, http.MethodPost, "/api/items", staff, dto.CreateItemRequest{
		Code: "ITM-002", Name: "Casco", CategoryID: "cat-1", VendorID: "ven-1", Type: entity.ItemTypeAsset,
		PurchasePrice: decimal.NewFromInt(20), CurrentStock: 3, MinimumStock: 1, Unit: "pcs",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := f.do(t, http.MethodPost, "/api/items", staff, dto.CreateItemRequest{
		Code: "ITM-002", Name: "Otro", CategoryID: "cat-1", VendorID: "ven-1", Type: entity.ItemTypeAsset, Unit: "pcs",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", body["code"])

	name := "Casco de seguridad"
	resp, updated := f.do(t, http.MethodPut, "/api/items/"+created["id"].(string), staff, dto.UpdateItemRequest{Name: &name})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, name, updated["name"])
	assert.EqualValues(t, 3, updated["current_stock"])

	// ITM-001 tiene 10 con mínimo 20: sugerido 2*20-10 = 30.
	resp, low := f.do(t, http.MethodGet, "/api/items/low-stock", staff, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 1, low["total"])
	first := low["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "ITM-001", first["code"])
	assert.EqualValues(t, 30, first["suggested_qty"])
}

func TestAuth_RegistroSoloAdminYLogin(t *testing.T) {
	f := newAPI(t, 0)
	newUser := dto.RegisterRequest{Name: "Compras", Email: "Compras@Gudang.test", Password: "supersecreta", Role: entity.RolePurchasing}

	resp, _ := f.do(t, http.MethodPost, "/api/auth/register", tokenFor(t, staffID, entity.RoleWarehouseStaff), newUser)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, user := f.do(t, http.MethodPost, "/api/auth/register", tokenFor(t, adminID, entity.RoleAdmin), newUser)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "compras@gudang.test", user["email"])

	resp, body := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "compras@gudang.test", Password: "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", body["code"])

	resp, login := f.do(t, http.MethodPost, "/api/auth/login", "", dto.LoginRequest{Email: "compras@gudang.test", Password: "supersecreta"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	token := login["token"].(string)
	require.NotEmpty(t, token)

	resp, me := f.do(t, http.MethodGet, "/api/users/me", "Bearer "+token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RolePurchasing, me["role"])
}

func TestStockRequests_FlujoAprobacion(t *testing.T) {
	f := newAPI(t, 10)
	staff := tokenFor(t, staffID, entity.RoleWarehouseStaff)
	admin := tokenFor(t, adminID, entity.RoleAdmin)

	resp, created := f.do(t, http.MethodPost, "/api/stock-requests", staff, dto.CreateStockRequestRequest{
		ItemID: itemID, RequestedQuantity: 4, RequestReason: "mantenimiento",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id := created["id"].(string)
	assert.Equal(t, entity.RequestStatusPending, created["status"])

	resp, _ = f.do(t, http.MethodPost, "/api/stock-requests/"+id+"/approve", staff, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = f.do(t, http.MethodPost, "/api/stock-requests/"+id+"/fulfill", staff, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, approved := f.do(t, http.MethodPost, "/api/stock-requests/"+id+"/approve", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 4, approved["approved_quantity"])

	resp, done := f.do(t, http.MethodPost, "/api/stock-requests/"+id+"/fulfill", staff, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, entity.RequestStatusFulfilled, done["status"])

	// El flujo de solicitudes no toca el saldo.
	assert.Equal(t, int64(10), f.stock(t))
}
