package repository

import (
	"context"
	"errors"
	"fmt"

	"jewelry-store/internal/data/entity"
	"jewelry-store/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type OrderRepository interface {
	// CreateWithItems persists an order header and its line items as one
	// atomic unit and returns the generated order id.
	CreateWithItems(ctx context.Context, order *entity.Order, items []*entity.OrderItem) (int64, error)

	FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.Order, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
	FindItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// CreateWithItems is the only multi-statement write in the system. The
// header insert, the per-item stock reservations, and the line-item
// inserts either all commit or none do: an order header must never
// persist without its line items.
func (r *orderRepository) CreateWithItems(ctx context.Context, order *entity.Order, items []*entity.OrderItem) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return 0, fmt.Errorf("begin order transaction: %w", err)
	}

	// Rollback after a successful commit is a no-op. A genuine rollback
	// failure is logged here but never replaces the error already being
	// returned to the caller.
	defer func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			r.log.Error("Failed to roll back order transaction",
				zap.Error(rbErr),
				zap.Int64("user_id", order.UserID),
			)
		}
	}()

	var orderID int64
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (user_id, total_amount) VALUES ($1, $2) RETURNING id`,
		order.UserID, order.TotalAmount,
	).Scan(&orderID)
	if err != nil {
		r.log.Error("Failed to insert order",
			zap.Error(err),
			zap.Int64("user_id", order.UserID),
		)
		return 0, fmt.Errorf("insert order: %w", err)
	}

	for _, item := range items {
		// Reserve stock first: zero rows affected means the product does
		// not exist or has insufficient stock, and aborts the whole order.
		tag, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock - $2 WHERE id = $1 AND stock >= $2`,
			item.ProductID, item.Quantity,
		)
		if err != nil {
			r.log.Error("Failed to reserve stock",
				zap.Error(err),
				zap.Int64("product_id", item.ProductID),
				zap.Int("quantity", item.Quantity),
			)
			return 0, fmt.Errorf("reserve stock for product %d: %w", item.ProductID, err)
		}
		if tag.RowsAffected() == 0 {
			return 0, fmt.Errorf("product %d is unavailable or out of stock", item.ProductID)
		}

		_, err = tx.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity, price_at_purchase) VALUES ($1, $2, $3, $4)`,
			orderID, item.ProductID, item.Quantity, item.PriceAtPurchase,
		)
		if err != nil {
			r.log.Error("Failed to insert order item",
				zap.Error(err),
				zap.Int64("order_id", orderID),
				zap.Int64("product_id", item.ProductID),
			)
			return 0, fmt.Errorf("insert order item for product %d: %w", item.ProductID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return 0, fmt.Errorf("commit order: %w", err)
	}

	r.log.Info("Order committed",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", order.UserID),
		zap.Int("item_count", len(items)),
		zap.Float64("total_amount", order.TotalAmount),
	)

	return orderID, nil
}

func (r *orderRepository) FindByUserID(ctx context.Context, userID int64, limit, offset int) ([]*entity.Order, error) {
	query := `
		SELECT id, user_id, total_amount, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, userID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find orders by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return nil, fmt.Errorf("find orders by user ID %d: %w", userID, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalAmount,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM orders WHERE user_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count orders by user ID",
			zap.Error(err),
			zap.Int64("user_id", userID),
		)
		return 0, fmt.Errorf("count orders by user ID %d: %w", userID, err)
	}

	return count, nil
}

func (r *orderRepository) FindItemsByOrderID(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity, price_at_purchase
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find order items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Quantity,
			&item.PriceAtPurchase,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}
