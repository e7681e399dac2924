package handlers

import (
	"net/http"

	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/utils"
)

type SupplierHandler struct {
	svc *services.SupplierService
}

func NewSupplierHandler(svc *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{svc: svc}
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.svc.List()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", suppliers)
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateSupplierInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	supplier, err := h.svc.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, "Supplier created successfully", supplier)
}

func (h *SupplierHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	supplier, err := h.svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", supplier)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var in services.UpdateSupplierInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	supplier, err := h.svc.Update(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Supplier updated successfully", supplier)
}

func (h *SupplierHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Deactivate(id); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Supplier deactivated successfully", nil)
}
