package response

import (
	"time"

	"jewelry-store/internal/data/entity"
)

type ProductResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Material  string    `json:"material"`
	GemType   *string   `json:"gem_type"`
	Color     *string   `json:"color"`
	Carat     *float64  `json:"carat"`
	Cut       *string   `json:"cut"`
	Stock     int       `json:"stock"`
	Price     float64   `json:"price"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductListResponse is the exact wire shape the storefront client
// paginates with.
type ProductListResponse struct {
	Products    []ProductResponse `json:"products"`
	TotalPages  int               `json:"totalPages"`
	CurrentPage int               `json:"currentPage"`
}

func ProductToResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        product.ID,
		Name:      product.Name,
		Category:  product.Category,
		Material:  product.Material,
		GemType:   product.GemType,
		Color:     product.Color,
		Carat:     product.Carat,
		Cut:       product.Cut,
		Stock:     product.Stock,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		CreatedAt: product.CreatedAt,
	}
}
