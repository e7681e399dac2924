package handlers

import (
	"net/http"

	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/utils"
)

type CategoryHandler struct {
	svc *services.CategoryService
}

func NewCategoryHandler(svc *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Categories retrieved successfully", categories)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in services.CreateCategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	category, err := h.svc.Create(in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, "Category created successfully", category)
}

func (h *CategoryHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	category, err := h.svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Category retrieved successfully", category)
}

func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var in services.UpdateCategoryInput
	if !decodeJSON(w, r, &in) {
		return
	}
	if fields := utils.Validate(in); fields != nil {
		respondValidation(w, fields)
		return
	}

	category, err := h.svc.Update(id, in)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Category updated successfully", category)
}

func (h *CategoryHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Deactivate(id); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Category deactivated successfully", nil)
}
