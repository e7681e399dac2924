package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/orderdesk/config"
	"github.com/ray-remotestate/orderdesk/handlers"
	"github.com/ray-remotestate/orderdesk/models"
	"github.com/ray-remotestate/orderdesk/server"
	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/services/testutil"
	"github.com/ray-remotestate/orderdesk/utils"
)

type nopImages struct{}

func (nopImages) Save(filename string, r io.Reader) (string, error) { return "products/" + filename, nil }
func (nopImages) Delete(path string) error                          { return nil }
func (nopImages) URL(path string) string                            { return "http://test/storage/" + path }

type envelope struct {
	Status  bool              `json:"status"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Errors  map[string]string `json:"errors"`
}

func newTestServer(t *testing.T) (*server.Server, *testutil.MemStore) {
	t.Helper()
	config.SecretKey = []byte("test-secret")

	store := testutil.NewMemStore()
	svr := server.SetupRoutes(server.Handlers{
		Auth:       handlers.NewAuthHandler(services.NewUserService(store)),
		Categories: handlers.NewCategoryHandler(services.NewCategoryService(store)),
		Suppliers:  handlers.NewSupplierHandler(services.NewSupplierService(store)),
		Products:   handlers.NewProductHandler(services.NewProductService(store, nopImages{})),
		Orders:     handlers.NewOrderHandler(services.NewOrderService(store)),
		OrderItems: handlers.NewOrderItemHandler(services.NewOrderItemService(store)),
	})
	return svr, store
}

func authedRequest(t *testing.T, method, target string, userID uuid.UUID, body any) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)

	token, err := utils.GenerateAccessToken(userID)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func doJSON(t *testing.T, svr *server.Server, req *http.Request) (int, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	svr.Router.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec.Code, env
}

func TestHealth(t *testing.T) {
	svr, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	svr.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alive")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	svr, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	svr.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/orders", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRegisterAndLogin(t *testing.T) {
	svr, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]string{
		"name":     "Ayu",
		"email":    "ayu@example.com",
		"password": "secret1",
	})
	code, env := doJSON(t, svr, httptest.NewRequest(http.MethodPost, "/register", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, code, env.Message)
	assert.True(t, env.Status)

	body, _ = json.Marshal(map[string]string{"email": "ayu@example.com", "password": "secret1"})
	code, env = doJSON(t, svr, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, code)

	var data map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data["access_token"])

	body, _ = json.Marshal(map[string]string{"email": "ayu@example.com", "password": "wrong"})
	code, _ = doJSON(t, svr, httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestOrderCreateOverHTTP(t *testing.T) {
	svr, store := newTestServer(t)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})

	code, env := doJSON(t, svr, authedRequest(t, http.MethodPost, "/api/orders", user.ID, map[string]any{
		"user_id":    user.ID,
		"order_type": "dine_in",
		"status":     "pending",
		"subtotal":   "40.00",
		"tax":        "4.00",
		"total":      "44.00",
	}))
	require.Equal(t, http.StatusCreated, code, env.Message)

	var order models.Order
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Len(t, order.OrderNumber, 12)
	assert.Equal(t, "ORD-", order.OrderNumber[:4])
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestOrderCreateValidationOverHTTP(t *testing.T) {
	svr, store := newTestServer(t)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})

	code, env := doJSON(t, svr, authedRequest(t, http.MethodPost, "/api/orders", user.ID, map[string]any{}))
	require.Equal(t, http.StatusUnprocessableEntity, code)
	assert.False(t, env.Status)
	assert.Contains(t, env.Errors, "user_id")
	assert.Contains(t, env.Errors, "order_type")
	assert.Contains(t, env.Errors, "subtotal")
	assert.Contains(t, env.Errors, "total")
}

func TestCancelCompletedOrderOverHTTP(t *testing.T) {
	svr, store := newTestServer(t)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})
	order := store.SeedOrder(models.Order{
		OrderNumber: "ORD-COMPLETE",
		UserID:      user.ID,
		OrderType:   models.OrderTypeDineIn,
		Status:      models.StatusCompleted,
	})

	code, env := doJSON(t, svr, authedRequest(t, http.MethodPatch, "/api/orders/"+order.ID.String()+"/cancel", user.ID, nil))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, env.Status)
	assert.Equal(t, "Completed orders cannot be cancelled", env.Message)
	assert.Equal(t, models.StatusCompleted, store.OrdersByID[order.ID].Status)
}

func TestOrderStatusUpdateOverHTTP(t *testing.T) {
	svr, store := newTestServer(t)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})
	order := store.SeedOrder(models.Order{
		OrderNumber: "ORD-STATUSXX",
		UserID:      user.ID,
		OrderType:   models.OrderTypeTakeaway,
		Status:      models.StatusPending,
	})

	code, _ := doJSON(t, svr, authedRequest(t, http.MethodPatch, "/api/orders/"+order.ID.String()+"/status", user.ID,
		map[string]string{"status": "ready"}))
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.StatusReady, store.OrdersByID[order.ID].Status)

	code, env := doJSON(t, svr, authedRequest(t, http.MethodPatch, "/api/orders/"+order.ID.String()+"/status", user.ID,
		map[string]string{"status": "shipped"}))
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, env.Errors, "status")
}

func TestBulkAddOverHTTP(t *testing.T) {
	svr, store := newTestServer(t)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})
	order := store.SeedOrder(models.Order{
		OrderNumber: "ORD-BULKADDX",
		UserID:      user.ID,
		OrderType:   models.OrderTypeDineIn,
		Status:      models.StatusPending,
	})
	product := store.SeedProduct(models.Product{
		Name:     "Burger",
		Price:    decimal.RequireFromString("9.99"),
		IsActive: true,
	})

	code, env := doJSON(t, svr, authedRequest(t, http.MethodPost, "/api/order-items/bulk", user.ID, map[string]any{
		"order_id": order.ID,
		"items": []map[string]any{
			{"product_id": product.ID, "quantity": 2},
			{"product_id": uuid.New(), "quantity": 1},
		},
	}))
	require.Equal(t, http.StatusCreated, code, env.Message)

	var items []models.OrderItem
	require.NoError(t, json.Unmarshal(env.Data, &items))
	require.Len(t, items, 1, "entries with unknown products are skipped")
	assert.True(t, items[0].Subtotal.Equal(decimal.RequireFromString("19.98")))
}

func TestCategoryDeactivateOverHTTP(t *testing.T) {
	svr, store := newTestServer(t)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})
	cat := store.SeedCategory(models.Category{Name: "Mains", IsActive: true})

	code, env := doJSON(t, svr, authedRequest(t, http.MethodDelete, "/api/categories/"+cat.ID.String(), user.ID, nil))
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Status)

	kept, ok := store.CategoriesByID[cat.ID]
	require.True(t, ok, "deactivation must keep the row")
	assert.False(t, kept.IsActive)
}

func TestInvalidPathID(t *testing.T) {
	svr, store := newTestServer(t)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})

	code, env := doJSON(t, svr, authedRequest(t, http.MethodGet, "/api/orders/not-a-uuid", user.ID, nil))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid id", env.Message)
}
