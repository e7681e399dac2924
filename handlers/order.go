package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/orderdesk/models"
	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/utils"
)

type OrderHandler struct {
	svc *services.OrderService
}

func NewOrderHandler(svc *services.OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.List()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", orders)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateOrderInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	order, err := h.svc.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, "Order created successfully", order)
}

func (h *OrderHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", order)
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var in services.UpdateOrderInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	order, err := h.svc.Update(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Order updated successfully", order)
}

func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var in struct {
		Status models.OrderStatus `json:"status" validate:"required,oneof=pending preparing ready completed cancelled"`
	}
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	order, err := h.svc.UpdateStatus(id, in.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Order status updated successfully", order)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.svc.Cancel(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Order cancelled successfully", order)
}

func (h *OrderHandler) ListByStatus(w http.ResponseWriter, r *http.Request) {
	status := models.OrderStatus(mux.Vars(r)["status"])

	orders, err := h.svc.ListByStatus(status)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", orders)
}
