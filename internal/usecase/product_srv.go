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

const (
	DefaultPage  = 1
	DefaultLimit = 6
	MaxLimit     = 100
)

type ProductService interface {
	// Public catalog
	ListProducts(ctx context.Context, req *request.ProductListRequest) (*response.ProductListResponse, error)

	// Admin CRUD
	CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) (*response.ProductResponse, error)
	DeleteProduct(ctx context.Context, id int64) error
}

type productService struct {
	products repository.ProductRepository
	log      *zap.Logger
}

func NewProductService(products repository.ProductRepository, log *zap.Logger) ProductService {
	return &productService{
		products: products,
		log:      log.With(zap.String("service", "product")),
	}
}

func (s *productService) ListProducts(ctx context.Context, req *request.ProductListRequest) (*response.ProductListResponse, error) {
	// Coerce paging to sane values; the handler already defaulted
	// non-numeric input, this guards direct callers.
	page := req.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := req.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	offset := utils.CalculateOffset(page, limit)
	filter := repository.ProductFilter{
		Search:   req.Search,
		Category: req.Category,
	}

	products, err := s.products.FindAll(ctx, offset, limit, filter)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	// The count must use the identical filter predicate as the listing,
	// otherwise totalPages drifts from the rows returned.
	total, err := s.products.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}

	productResponses := make([]response.ProductResponse, 0, len(products))
	for _, product := range products {
		productResponses = append(productResponses, response.ProductToResponse(product))
	}

	return &response.ProductListResponse{
		Products:    productResponses,
		TotalPages:  utils.CalculateTotalPages(total, limit),
		CurrentPage: page,
	}, nil
}

func (s *productService) CreateProduct(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	// 1. Validate input
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Create product validation failed", zap.Any("errors", errors))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(errors))
	}

	// 2. Save product
	product := productFromRequest(req)
	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info("Product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))

	resp := response.ProductToResponse(product)
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id int64, req *request.ProductRequest) (*response.ProductResponse, error) {
	// 1. Validate input
	if errors := utils.ValidateStruct(req); len(errors) > 0 {
		s.log.Warn("Update product validation failed", zap.Any("errors", errors))
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidInput, utils.FormatValidationErrors(errors))
	}

	// 2. Replace all mutable attributes by id
	product := productFromRequest(req)
	product.ID = id

	updated, err := s.products.Update(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	if updated == nil {
		return nil, fmt.Errorf("%w: product %d", errs.ErrNotFound, id)
	}

	s.log.Info("Product updated", zap.Int64("product_id", id))

	resp := response.ProductToResponse(updated)
	return &resp, nil
}

// DeleteProduct removes by id, idempotently succeeding even when the id
// no longer exists.
func (s *productService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func productFromRequest(req *request.ProductRequest) *entity.Product {
	return &entity.Product{
		Name:     req.Name,
		Category: req.Category,
		Material: req.Material,
		GemType:  req.GemType,
		Color:    req.Color,
		Carat:    req.Carat,
		Cut:      req.Cut,
		Stock:    req.Stock,
		Price:    req.Price,
		ImageURL: req.ImageURL,
	}
}
