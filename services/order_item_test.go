package services_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ray-remotestate/orderdesk/apperr"
	"github.com/ray-remotestate/orderdesk/models"
	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/services/testutil"
)

func seedProduct(store *testutil.MemStore, price string) models.Product {
	category := store.SeedCategory(models.Category{Name: "Drinks", IsActive: true})
	return store.SeedProduct(models.Product{
		CategoryID: category.ID,
		Name:       "Latte",
		Price:      dec(price),
		IsActive:   true,
	})
}

func TestOrderItemCreateSnapshotsPrice(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusPending)
	product := seedProduct(store, "15.50")

	item, err := svc.Create(services.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)

	assert.True(t, item.UnitPrice.Equal(dec("15.50")))
	assert.True(t, item.Subtotal.Equal(dec("46.50")))
	assert.True(t, item.Subtotal.Equal(item.UnitPrice.Mul(dec("3"))))
}

func TestOrderItemCreateMissingRefs(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusPending)
	product := seedProduct(store, "9.00")

	_, err := svc.Create(services.CreateOrderItemInput{
		OrderID:   uuid.New(),
		ProductID: product.ID,
		Quantity:  1,
	})
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Order not found", appErr.Message)

	_, err = svc.Create(services.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: uuid.New(),
		Quantity:  1,
	})
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Product not found", appErr.Message)
	assert.Empty(t, store.ItemsByID)
}

func TestOrderItemMutationsBlockedOnClosedOrders(t *testing.T) {
	for _, status := range []models.OrderStatus{models.StatusCompleted, models.StatusCancelled} {
		t.Run(string(status), func(t *testing.T) {
			store := testutil.NewMemStore()
			svc := services.NewOrderItemService(store)
			order := seedOrder(store, status)
			product := seedProduct(store, "5.00")
			item := store.SeedItem(models.OrderItem{
				OrderID:   order.ID,
				ProductID: product.ID,
				Quantity:  2,
				UnitPrice: dec("5.00"),
				Subtotal:  dec("10.00"),
			})

			var appErr *apperr.Error

			_, err := svc.Create(services.CreateOrderItemInput{
				OrderID: order.ID, ProductID: product.ID, Quantity: 1,
			})
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, "Cannot add items to completed or cancelled orders", appErr.Message)

			_, err = svc.UpdateQuantity(item.ID, 4)
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, "Cannot modify items in completed or cancelled orders", appErr.Message)

			err = svc.Delete(item.ID)
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, http.StatusBadRequest, appErr.Status)
			assert.Equal(t, "Cannot remove items from completed or cancelled orders", appErr.Message)

			// the item set is unchanged
			require.Len(t, store.ItemsByID, 1)
			stored := store.ItemsByID[item.ID]
			assert.Equal(t, 2, stored.Quantity)
		})
	}
}

func TestOrderItemUpdateQuantityRecomputesSubtotal(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusPreparing)
	product := seedProduct(store, "15.50")

	item, err := svc.Create(services.CreateOrderItemInput{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)

	// the product price moving later must not affect the snapshot
	product.Price = dec("99.99")
	store.ProductsByID[product.ID] = product

	updated, err := svc.UpdateQuantity(item.ID, 5)
	require.NoError(t, err)
	assert.True(t, updated.UnitPrice.Equal(dec("15.50")), "unit price stays the creation-time snapshot")
	assert.True(t, updated.Subtotal.Equal(dec("77.50")))
}

func TestOrderItemUpdateQuantityValidation(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)

	_, err := svc.UpdateQuantity(uuid.New(), 0)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusUnprocessableEntity, appErr.Status)
	assert.Contains(t, appErr.Fields, "quantity")

	_, err = svc.UpdateQuantity(uuid.New(), 2)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestOrderItemDelete(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusReady)
	product := seedProduct(store, "4.00")
	item := store.SeedItem(models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  1,
		UnitPrice: dec("4.00"),
		Subtotal:  dec("4.00"),
	})

	require.NoError(t, svc.Delete(item.ID))
	assert.Empty(t, store.ItemsByID, "delete is a hard delete")
}

func TestOrderItemGenericUpdate(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusPending)
	product := seedProduct(store, "8.00")
	item := store.SeedItem(models.OrderItem{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  2,
		UnitPrice: dec("8.00"),
		Subtotal:  dec("16.00"),
	})

	quantity := 4
	notes := "no sugar"
	updated, err := svc.Update(item.ID, services.UpdateOrderItemInput{
		Quantity: &quantity,
		Notes:    &notes,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.Quantity)
	assert.True(t, updated.Subtotal.Equal(dec("32.00")), "quantity change recomputes subtotal")
	assert.True(t, updated.UnitPrice.Equal(dec("8.00")))
	assert.Equal(t, "no sugar", *updated.Notes)
}

func TestOrderItemListByOrder(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusPending)
	product := seedProduct(store, "3.00")
	store.SeedItem(models.OrderItem{
		OrderID: order.ID, ProductID: product.ID,
		Quantity: 1, UnitPrice: dec("3.00"), Subtotal: dec("3.00"),
	})

	items, err := svc.ListByOrder(order.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	_, err = svc.ListByOrder(uuid.New())
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
}

func TestBulkAddSkipsUnresolvedProducts(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusPending)
	product := seedProduct(store, "2.50")

	added, err := svc.BulkAdd(services.BulkAddInput{
		OrderID: order.ID,
		Items: []services.BulkAddEntry{
			{ProductID: product.ID, Quantity: 2},
			{ProductID: uuid.New(), Quantity: 1},
		},
	})
	require.NoError(t, err, "an unresolved product must not fail the batch")

	require.Len(t, added, 1)
	assert.Equal(t, product.ID, added[0].ProductID)
	assert.True(t, added[0].Subtotal.Equal(dec("5.00")))
	assert.Len(t, store.ItemsByID, 1)
}

func TestBulkAddClosedOrder(t *testing.T) {
	store := testutil.NewMemStore()
	svc := services.NewOrderItemService(store)
	order := seedOrder(store, models.StatusCancelled)
	product := seedProduct(store, "2.50")

	_, err := svc.BulkAdd(services.BulkAddInput{
		OrderID: order.ID,
		Items:   []services.BulkAddEntry{{ProductID: product.ID, Quantity: 1}},
	})

	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Empty(t, store.ItemsByID)
}
