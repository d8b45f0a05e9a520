package adaptor

import (
	"encoding/json"
	"net/http"

	"jewelry-store/internal/dto/request"
	"jewelry-store/internal/usecase"
	"jewelry-store/pkg/utils"

	"go.uber.org/zap"
)

type OrderHandler struct {
	service usecase.OrderService
	log     *zap.Logger
}

func NewOrderHandler(service usecase.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log.With(zap.String("handler", "order")),
	}
}

// PlaceOrder handles POST /orders
func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	// Identity comes from the claim attached by the auth middleware,
	// never from the request body.
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.PlaceOrder(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "place order")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, resp)
}

// GetOrders handles GET /orders
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	page := utils.ParseInt(query.Get("page"), usecase.DefaultPage)
	limit := utils.ParseInt(query.Get("limit"), usecase.DefaultLimit)

	resp, err := h.service.GetUserOrders(r.Context(), userID, page, limit)
	if err != nil {
		handleServiceError(w, h.log, err, "get orders")
		return
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
