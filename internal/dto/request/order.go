package request

// OrderItemRequest mirrors one cart line as the client submits it. The
// price is the price at the time the product was added to the cart.
type OrderItemRequest struct {
	ProductID int64   `json:"productId" validate:"required,gt=0"`
	Qty       int     `json:"qty" validate:"required,gt=0"`
	Price     float64 `json:"price" validate:"required,gt=0"`
}

type PlaceOrderRequest struct {
	Items       []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount float64            `json:"total_amount" validate:"required,gt=0"`
}
