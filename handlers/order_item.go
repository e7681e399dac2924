package handlers

import (
	"net/http"

	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/utils"
)

type OrderItemHandler struct {
	svc *services.OrderItemService
}

func NewOrderItemHandler(svc *services.OrderItemService) *OrderItemHandler {
	return &OrderItemHandler{svc: svc}
}

func (h *OrderItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", items)
}

func (h *OrderItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderItemInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	item, err := h.svc.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, "Order item created successfully", item)
}

func (h *OrderItemHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	item, err := h.svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", item)
}

func (h *OrderItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var in services.UpdateOrderItemInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	item, err := h.svc.Update(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Order item updated successfully", item)
}

func (h *OrderItemHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(id); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Order item deleted successfully", nil)
}

func (h *OrderItemHandler) ListByOrder(w http.ResponseWriter, r *http.Request) {
	orderID, ok := pathUUID(w, r, "orderId")
	if !ok {
		return
	}

	items, err := h.svc.ListByOrder(orderID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", items)
}

func (h *OrderItemHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var in struct {
		Quantity int `json:"quantity" validate:"required,min=1"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	item, err := h.svc.UpdateQuantity(id, in.Quantity)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Order item quantity updated successfully", item)
}

// BulkAdd inserts a batch of items; entries whose product no longer exists
// are skipped rather than failing the batch.
func (h *OrderItemHandler) BulkAdd(w http.ResponseWriter, r *http.Request) {
	var in services.BulkAddInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	items, err := h.svc.BulkAdd(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, "Order items added successfully", items)
}
