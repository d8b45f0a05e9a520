package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"jewelry-store/internal/dto/request"
	"jewelry-store/internal/usecase"
	"jewelry-store/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductHandler struct {
	service usecase.ProductService
	log     *zap.Logger
}

func NewProductHandler(service usecase.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		log:     log.With(zap.String("handler", "product")),
	}
}

// GetProducts handles GET /products
func (h *ProductHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &request.ProductListRequest{
		Page:  utils.ParseInt(query.Get("page"), usecase.DefaultPage),
		Limit: utils.ParseInt(query.Get("limit"), usecase.DefaultLimit),
	}

	if search := query.Get("search"); search != "" {
		req.Search = &search
	}
	if category := query.Get("category"); category != "" {
		req.Category = &category
	}

	resp, err := h.service.ListProducts(r.Context(), req)
	if err != nil {
		handleServiceError(w, h.log, err, "list products")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// CreateProduct handles POST /products (admin only)
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req request.ProductRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create product")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, product)
}

// UpdateProduct handles PUT /products/{id} (admin only)
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req request.ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update product")
		return
	}

	utils.WriteJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{id} (admin only)
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete product")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]string{"message": "Product deleted"})
}

func (h *ProductHandler) parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		utils.ResponseBadRequest(w, "Invalid product ID", nil)
		return 0, false
	}

	return id, true
}
