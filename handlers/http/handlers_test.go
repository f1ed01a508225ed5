package httpHandler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafe-ledger/apperrors"
	"cafe-ledger/reports"
	"cafe-ledger/repositories"
	"cafe-ledger/testutil"
	"cafe-ledger/usecases"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type errorBody struct {
	Error struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repositories.NewStore(testutil.NewDatabase(t))
	cafe := usecases.NewCafeUseCase(store, zap.NewNop())

	login := NewLoginHandler(cafe)
	users := NewUserHandler(cafe)
	ledger := NewLedgerHandler(cafe)
	inventory := NewInventoryHandler(cafe)
	report := NewReportHandler(reports.NewBuilder(store))

	r := gin.New()
	api := r.Group("/api/v1")
	api.POST("/auth/login", login.Login)
	api.POST("/users", users.RegisterUser)
	api.GET("/users", users.ListUsers)
	api.PUT("/users/:id", users.UpdateUser)
	api.DELETE("/users/:id", users.DeleteUser)
	api.POST("/expenses", ledger.RecordExpense)
	api.GET("/expenses", ledger.ExpenseHistory)
	api.POST("/sales", ledger.RecordSale)
	api.GET("/sales", ledger.SalesHistory)
	api.POST("/inventory", inventory.AddItem)
	api.GET("/inventory", inventory.ListItems)
	api.PUT("/inventory/:id", inventory.UpdateItem)
	api.DELETE("/inventory/:id", inventory.DeleteItem)
	api.GET("/inventory/:id/quote", inventory.Quote)
	api.POST("/inventory/:id/purchase", inventory.Purchase)
	api.GET("/reports", report.All)
	api.GET("/reports/sales", report.Sales)
	return r
}

func do(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, StatusFor(apperrors.InvalidDate))
	assert.Equal(t, http.StatusBadRequest, StatusFor(apperrors.NoUpdatesProvided))
	assert.Equal(t, http.StatusUnauthorized, StatusFor(apperrors.WrongPassword))
	assert.Equal(t, http.StatusNotFound, StatusFor(apperrors.ItemNotFound))
	assert.Equal(t, http.StatusConflict, StatusFor(apperrors.InsufficientStock))
	assert.Equal(t, http.StatusPaymentRequired, StatusFor(apperrors.PurchaseCancelled))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(apperrors.StorageError))
	assert.Equal(t, http.StatusInternalServerError, StatusFor("Unknown"))
}

func TestUserRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"username": "alice", "password": "secret", "email": "alice@cafe.com", "role": "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "password")

	w = do(t, r, http.MethodPost, "/api/v1/users", gin.H{
		"username": "alice", "password": "x", "email": "other@cafe.com", "role": "user",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DuplicateUser", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "alice", "password": "secret"})
	require.Equal(t, http.StatusOK, w.Code)
	var login LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	assert.True(t, login.Success)
	assert.Equal(t, "admin", login.Role)

	w = do(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"username": "alice", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "WrongPassword", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPut, "/api/v1/users/1", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NoUpdatesProvided", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPut, "/api/v1/users/abc", gin.H{"role": "user"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, invalidRequest, decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodDelete, "/api/v1/users/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/users", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestExpenseRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/expenses", gin.H{
		"date": "2024-03-01", "amount": "42.50", "category": "Supplies",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodPost, "/api/v1/expenses", gin.H{
		"date": "03/01/2024", "amount": 10, "category": "Supplies",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidDate", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodGet, "/api/v1/expenses", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":1`)
}

func TestPurchaseRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/inventory", gin.H{"item_name": "Latte Beans", "quantity": 10, "cost": "5.00"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/v1/inventory/1/quote?quantity=3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var quote struct {
		Data usecases.PurchaseQuote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quote))
	assert.Equal(t, "15.00", quote.Data.Total.StringFixed(2))

	w = do(t, r, http.MethodGet, "/api/v1/inventory/1/quote?quantity=lots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "InvalidAmount", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPost, "/api/v1/inventory/1/purchase", PurchaseRequest{Quantity: 3, PaymentConfirmed: false})
	assert.Equal(t, http.StatusPaymentRequired, w.Code)
	assert.Equal(t, "PurchaseCancelled", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPost, "/api/v1/inventory/1/purchase", PurchaseRequest{Quantity: 11, PaymentConfirmed: true})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "InsufficientStock", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPost, "/api/v1/inventory/9/purchase", PurchaseRequest{Quantity: 1, PaymentConfirmed: true})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "ItemNotFound", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPost, "/api/v1/inventory/1/purchase", PurchaseRequest{Quantity: 3, PaymentConfirmed: true})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var receipt struct {
		Data usecases.PurchaseReceipt `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receipt))
	assert.Equal(t, 7, receipt.Data.Item.Quantity)
	assert.Equal(t, "Latte Beans x 3", receipt.Data.Sale.ItemsSold)

	w = do(t, r, http.MethodGet, "/api/v1/reports/sales", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":"15.00"`)

	w = do(t, r, http.MethodGet, "/api/v1/reports", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"item_name":"Latte Beans","quantity":7,"cost":"5.00"`)
}

func TestInventoryRoutes(t *testing.T) {
	r := newRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/inventory", gin.H{"item_name": "Mocha", "quantity": -2, "cost": "3"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "NegativeValue", decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodPost, "/api/v1/inventory", gin.H{"item_name": "Mocha", "quantity": 2, "cost": "3"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPut, "/api/v1/inventory/1", gin.H{"quantity": 20})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"quantity":20`)

	w = do(t, r, http.MethodPost, "/api/v1/inventory", gin.H{"item_name": "Mocha", "quantity": 1, "cost": "3"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/inventory", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, invalidRequest, decodeError(t, w).Error.Kind)

	w = do(t, r, http.MethodDelete, "/api/v1/inventory/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, http.MethodDelete, "/api/v1/inventory/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
