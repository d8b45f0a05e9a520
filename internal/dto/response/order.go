package response

import (
	"time"

	"jewelry-store/internal/data/entity"
)

type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"orderId"`
}

type OrderItemResponse struct {
	ProductID       int64   `json:"product_id"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type OrderResponse struct {
	ID          int64               `json:"id"`
	TotalAmount float64             `json:"total_amount"`
	CreatedAt   time.Time           `json:"created_at"`
	Items       []OrderItemResponse `json:"items"`
}

type OrderListResponse struct {
	Orders      []OrderResponse `json:"orders"`
	TotalPages  int             `json:"totalPages"`
	CurrentPage int             `json:"currentPage"`
}

func OrderToResponse(order *entity.Order, items []*entity.OrderItem) OrderResponse {
	resp := OrderResponse{
		ID:          order.ID,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		Items:       make([]OrderItemResponse, 0, len(items)),
	}

	for _, item := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		})
	}

	return resp
}
