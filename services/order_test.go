package services_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/models"
	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/services/testutil"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func seedOrder(store *testutil.MemStore, status models.OrderStatus) models.Order {
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})
	return store.SeedOrder(models.Order{
		OrderNumber: "ORD-TEST0001",
		UserID:      user.ID,
		OrderType:   models.OrderTypeDineIn,
		Status:      status,
		Subtotal:    dec("10.00"),
		Tax:         dec("1.00"),
		Discount:    decimal.Zero,
		Total:       dec("11.00"),
	})
}

func TestOrderCreate(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)
	user := store.SeedUser(models.User{Name: "Ayu", Email: "ayu@example.com"})

	order, err := svc.Create(services.CreateOrderInput{
		UserID:    user.ID,
		OrderType: models.OrderTypeTakeaway,
		Status:    models.StatusPending,
		Subtotal:  decPtr("20.00"),
		Tax:       decPtr("2.00"),
		Total:     decPtr("22.00"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(order.OrderNumber, "ORD-"))
	assert.Len(t, order.OrderNumber, 12)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.True(t, order.Discount.IsZero(), "discount should default to 0")
}

func TestOrderCreateUnknownUser(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)

	_, err := svc.Create(services.CreateOrderInput{
		UserID:    uuid.New(),
		OrderType: models.OrderTypeDineIn,
		Status:    models.StatusPending,
		Subtotal:  decPtr("20.00"),
		Tax:       decPtr("2.00"),
		Total:     decPtr("22.00"),
	})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Contains(t, appErr.Fields, "user_id")
	assert.Empty(t, store.OrdersByID)
}

func TestOrderCancel(t *testing.T) {
	for _, status := range []models.OrderStatus{
		models.StatusPending,
		models.StatusPreparing,
		models.StatusReady,
		models.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			store := testutil.NewMemStore()
			svc := services.NewOrderService(store)
			order := seedOrder(store, status)

			got, err := svc.Cancel(order.ID)
			require.NoError(t, err)
			assert.Equal(t, models.StatusCancelled, got.Status)
			assert.Equal(t, models.StatusCancelled, store.OrdersByID[order.ID].Status)
		})
	}
}

func TestOrderCancelCompleted(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)
	order := seedOrder(store, models.StatusCompleted)

	_, err := svc.Cancel(order.ID)

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Completed orders cannot be cancelled", appErr.Message)
	assert.Equal(t, models.StatusCompleted, store.OrdersByID[order.ID].Status, "status must be unchanged")
}

func TestOrderCancelNotFound(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)

	_, err := svc.Cancel(uuid.New())

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestOrderUpdateStatusNoAdjacencyCheck(t *testing.T) {
	// the generic status update accepts any enum value regardless of the
	// current one
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)
	order := seedOrder(store, models.StatusCompleted)

	got, err := svc.UpdateStatus(order.ID, models.StatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, got.Status)
}

func TestOrderUpdateStatusInvalidValue(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)
	order := seedOrder(store, models.StatusPending)

	_, err := svc.UpdateStatus(order.ID, models.OrderStatus("shipped"))

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Equal(t, models.StatusPending, store.OrdersByID[order.ID].Status)
}

func TestOrderUpdatePartial(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)
	order := seedOrder(store, models.StatusPending)

	table := "12A"
	got, err := svc.Update(order.ID, services.UpdateOrderInput{Table: &table})
	require.NoError(t, err)

	assert.Equal(t, "12A", *got.Table)
	assert.Equal(t, models.StatusPending, got.Status)
	assert.True(t, got.Total.Equal(dec("11.00")), "absent fields stay untouched")
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
}

func TestOrderListByStatus(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderService(store)
	seedOrder(store, models.StatusPending)
	seedOrder(store, models.StatusReady)

	orders, err := svc.ListByStatus(models.StatusReady)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, models.StatusReady, orders[0].Status)

	_, err = svc.ListByStatus(models.OrderStatus("bogus"))
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Equal(t, "Invalid status parameter", appErr.Message)
}
