package handlers

import (
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ray-remotestate/orderdesk/services"
	"github.com/ray-remotestate/orderdesk/utils"
)

const maxImageBytes = 2 << 20 // 2MB

var allowedImageExts = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
}

type ProductHandler struct {
	svc *services.ProductService
}

func NewProductHandler(svc *services.ProductService) *ProductHandler {
	return &ProductHandler{svc: svc}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.List()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", products)
}

// Create accepts multipart form data so the image can ride along with the
// fields.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageBytes + 1<<20); err != nil {
		writeJSON(w, http.StatusBadRequest, Envelope{Status: false, Message: "invalid form data"})
		return
	}

	var in services.CreateProductInput
	fields := map[string]string{}

	if v := r.FormValue("category_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			fields["category_id"] = "category_id must be a valid uuid"
		} else {
			in.CategoryID = id
		}
	}
	in.Name = r.FormValue("name")
	if v := r.FormValue("description"); v != "" {
		in.Description = &v
	}
	if v := r.FormValue("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			fields["price"] = "price must be a number"
		} else {
			in.Price = &price
		}
	}
	in.IsActive = formBool(r, "is_active", fields)
	in.IsFeatured = formBool(r, "is_featured", fields)

	image, file := formImage(r, fields)
	if file != nil {
		defer file.Close()
	}

	for k, v := range utils.Validate(in) {
		fields[k] = v
	}
	if len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	product, err := h.svc.Create(in, image)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, "Product created successfully", product)
}

func (h *ProductHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.svc.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", product)
}

func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes + 1<<20); err != nil {
		writeJSON(w, http.StatusBadRequest, Envelope{Status: false, Message: "invalid form data"})
		return
	}

	var in services.UpdateProductInput
	fields := map[string]string{}

	if v := r.FormValue("category_id"); v != "" {
		cid, err := uuid.Parse(v)
		if err != nil {
			fields["category_id"] = "category_id must be a valid uuid"
		} else {
			in.CategoryID = &cid
		}
	}
	if v := r.FormValue("name"); v != "" {
		in.Name = &v
	}
	if v := r.FormValue("description"); v != "" {
		in.Description = &v
	}
	if v := r.FormValue("price"); v != "" {
		price, err := decimal.NewFromString(v)
		if err != nil {
			fields["price"] = "price must be a number"
		} else {
			in.Price = &price
		}
	}
	in.IsActive = formBool(r, "is_active", fields)
	in.IsFeatured = formBool(r, "is_featured", fields)

	image, file := formImage(r, fields)
	if file != nil {
		defer file.Close()
	}

	for k, v := range utils.Validate(in) {
		fields[k] = v
	}
	if len(fields) > 0 {
		respondValidation(w, fields)
		return
	}

	product, err := h.svc.Update(id, in, image)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Product updated successfully", product)
}

func (h *ProductHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.svc.RemoveImage(id)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Product image removed successfully", product)
}

func (h *ProductHandler) Destroy(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Deactivate(id); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "Product deactivated successfully", nil)
}

func (h *ProductHandler) ListFeatured(w http.ResponseWriter, r *http.Request) {
	products, err := h.svc.ListFeatured()
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", products)
}

func (h *ProductHandler) ListByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := pathUUID(w, r, "categoryId")
	if !ok {
		return
	}

	products, err := h.svc.ListByCategory(categoryID)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, "", products)
}

func formBool(r *http.Request, key string, fields map[string]string) *bool {
	v := r.FormValue(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		fields[key] = key + " must be a boolean"
		return nil
	}
	return &b
}

// formImage pulls the optional "image" upload, enforcing the 2MB limit and
// the jpeg/png/jpg/gif whitelist.
func formImage(r *http.Request, fields map[string]string) (*services.ImageUpload, multipart.File) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if err != http.ErrMissingFile {
			fields["image"] = "image upload is malformed"
		}
		return nil, nil
	}

	if header.Size > maxImageBytes {
		file.Close()
		fields["image"] = "image may not be larger than 2MB"
		return nil, nil
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !allowedImageExts[ext] {
		file.Close()
		fields["image"] = "image must be a jpeg, png, jpg or gif file"
		return nil, nil
	}

	return &services.ImageUpload{Filename: header.Filename, Reader: file}, file
}
