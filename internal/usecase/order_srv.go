package usecase

import (
	"context"
	"fmt"

	"jewelry-store/internal/data/entity"
	"jewelry-store/internal/data/repository"
	"jewelry-store/internal/dto/request"
	"jewelry-store/internal/dto/response"
	"jewelry-store/internal/errs"
	"jewelry-store/pkg/utils"

	"go.uber.org/zap"
)

type OrderService interface {
	// PlaceOrder validates the cart payload and persists the order header
	// plus its line items atomically.
	PlaceOrder(ctx context.Context, userID int64, req *request.PlaceOrderRequest) (*response.PlaceOrderResponse, error)

	GetUserOrders(ctx context.Context, userID int64, page, limit int) (*response.OrderListResponse, error)
}

type orderService struct {
	orders repository.OrderRepository
	log    *zap.Logger
}

func NewOrderService(orders repository.OrderRepository, log *zap.Logger) OrderService {
	return &orderService{
		orders: orders,
		log:    log.With(zap.String("service", "order")),
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, userID int64, req *request.PlaceOrderRequest) (*response.PlaceOrderResponse, error) {
	// All preconditions are checked before any storage access, so a bad
	// payload never costs a connection.

	// 1. Caller identity comes from the verified claim, never the body
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user not found in request context", errs.ErrUnauthorized)
	}

	// 2. Items must be a non-empty sequence
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: must provide at least one item", errs.ErrInvalidInput)
	}

	// 3. Total must be positive
	if req.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total_amount must be a positive number", errs.ErrInvalidInput)
	}

	// 4. Every item carries productId, qty, and price; name the offender
	for i, item := range req.Items {
		if item.ProductID <= 0 || item.Qty <= 0 || item.Price <= 0 {
			return nil, fmt.Errorf("%w: item %d is missing productId, qty, or price", errs.ErrInvalidInput, i+1)
		}
	}

	order := &entity.Order{
		UserID:      userID,
		TotalAmount: req.TotalAmount,
	}

	items := make([]*entity.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = &entity.OrderItem{
			ProductID:       item.ProductID,
			Quantity:        item.Qty,
			PriceAtPurchase: item.Price,
		}
	}

	orderID, err := s.orders.CreateWithItems(ctx, order, items)
	if err != nil {
		s.log.Error("Failed to place order",
			zap.Error(err),
			zap.Int64("user_id", userID),
			zap.Int("item_count", len(items)),
		)
		return nil, fmt.Errorf("place order: %w", err)
	}

	s.log.Info("Order placed",
		zap.Int64("order_id", orderID),
		zap.Int64("user_id", userID),
		zap.Int("item_count", len(items)),
	)

	return &response.PlaceOrderResponse{
		Message: "Order placed successfully",
		OrderID: orderID,
	}, nil
}

func (s *orderService) GetUserOrders(ctx context.Context, userID int64, page, limit int) (*response.OrderListResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user not found in request context", errs.ErrUnauthorized)
	}

	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := utils.CalculateOffset(page, limit)

	orders, err := s.orders.FindByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}

	total, err := s.orders.CountByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count user orders: %w", err)
	}

	orderResponses := make([]response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items, err := s.orders.FindItemsByOrderID(ctx, order.ID)
		if err != nil {
			return nil, fmt.Errorf("get order items: %w", err)
		}
		orderResponses = append(orderResponses, response.OrderToResponse(order, items))
	}

	return &response.OrderListResponse{
		Orders:      orderResponses,
		TotalPages:  utils.CalculateTotalPages(total, limit),
		CurrentPage: page,
	}, nil
}
