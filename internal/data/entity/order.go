package entity

import "time"

type Order struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	TotalAmount float64   `db:"total_amount"`
	CreatedAt   time.Time `db:"created_at"`
}

// OrderItem carries the price at the time of purchase, deliberately
// decoupled from the live product price.
type OrderItem struct {
	ID              int64   `db:"id"`
	OrderID         int64   `db:"order_id"`
	ProductID       int64   `db:"product_id"`
	Quantity        int     `db:"quantity"`
	PriceAtPurchase float64 `db:"price_at_purchase"`
}
