package request

// ProductRequest carries the full attribute set for create and update.
type ProductRequest struct {
	Name     string   `json:"name" validate:"required,max=255"`
	Category string   `json:"category" validate:"required,max=100"`
	Material string   `json:"material" validate:"required,max=100"`
	GemType  *string  `json:"gem_type" validate:"omitempty,max=100"`
	Color    *string  `json:"color" validate:"omitempty,max=50"`
	Carat    *float64 `json:"carat" validate:"omitempty,gte=0"`
	Cut      *string  `json:"cut" validate:"omitempty,max=50"`
	Stock    int      `json:"stock" validate:"gte=0"`
	Price    float64  `json:"price" validate:"required,gt=0"`
	ImageURL *string  `json:"image_url" validate:"omitempty,max=2048"`
}

// ProductListRequest holds the parsed listing query parameters.
type ProductListRequest struct {
	Page     int
	Limit    int
	Search   *string
	Category *string
}
