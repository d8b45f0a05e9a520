package usecase

import (
	"context"
	"testing"

	"jewelry-store/internal/data/entity"
	"jewelry-store/internal/data/repository"
	"jewelry-store/internal/dto/request"
	"jewelry-store/internal/errs"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeProducts struct {
	byID   map[int64]*entity.Product
	nextID int64

	lastOffset int
	lastLimit  int
	lastFilter repository.ProductFilter
}

var _ repository.ProductRepository = (*fakeProducts)(nil)

func (f *fakeProducts) Create(_ context.Context, product *entity.Product) error {
	if f.byID == nil {
		f.byID = map[int64]*entity.Product{}
	}
	f.nextID++
	product.ID = f.nextID
	cpy := *product
	f.byID[product.ID] = &cpy
	return nil
}

func (f *fakeProducts) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	c := *p
	return &c, nil
}

func (f *fakeProducts) FindAll(_ context.Context, offset, limit int, filter repository.ProductFilter) ([]*entity.Product, error) {
	f.lastOffset = offset
	f.lastLimit = limit
	f.lastFilter = filter

	all := make([]*entity.Product, 0, len(f.byID))
	for id := f.nextID; id >= 1; id-- {
		if p, ok := f.byID[id]; ok {
			all = append(all, p)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (f *fakeProducts) CountAll(_ context.Context, _ repository.ProductFilter) (int64, error) {
	return int64(len(f.byID)), nil
}

func (f *fakeProducts) Update(_ context.Context, product *entity.Product) (*entity.Product, error) {
	if _, ok := f.byID[product.ID]; !ok {
		return nil, nil
	}
	cpy := *product
	f.byID[product.ID] = &cpy
	out := cpy
	return &out, nil
}

func (f *fakeProducts) Delete(_ context.Context, id int64) error {
	delete(f.byID, id)
	return nil
}

func validProductRequest() *request.ProductRequest {
	return &request.ProductRequest{
		Name:     "Sapphire Ring",
		Category: "ring",
		Material: "white gold",
		Stock:    5,
		Price:    899.99,
	}
}

func seedProducts(t *testing.T, s ProductService, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := s.CreateProduct(context.Background(), validProductRequest())
		require.NoError(t, err)
	}
}

func TestProductService_ListProducts_Defaults(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())
	seedProducts(t, s, 7)

	// Zero page and limit coerce to the defaults.
	resp, err := s.ListProducts(context.Background(), &request.ProductListRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Products, DefaultLimit)
	require.Equal(t, 2, resp.TotalPages)
	require.Equal(t, DefaultPage, resp.CurrentPage)
	require.Equal(t, 0, products.lastOffset)
}

func TestProductService_ListProducts_NewestFirst(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())
	seedProducts(t, s, 3)

	resp, err := s.ListProducts(context.Background(), &request.ProductListRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	require.Len(t, resp.Products, 3)
	require.Equal(t, int64(3), resp.Products[0].ID)
	require.Equal(t, int64(1), resp.Products[2].ID)
}

func TestProductService_ListProducts_CapsLimit(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())
	seedProducts(t, s, 1)

	_, err := s.ListProducts(context.Background(), &request.ProductListRequest{Page: 1, Limit: 5000})
	require.NoError(t, err)
	require.Equal(t, MaxLimit, products.lastLimit)
}

func TestProductService_ListProducts_PassesFilters(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())
	seedProducts(t, s, 1)

	search := "sapphire"
	category := "ring"
	_, err := s.ListProducts(context.Background(), &request.ProductListRequest{
		Page:     1,
		Limit:    6,
		Search:   &search,
		Category: &category,
	})
	require.NoError(t, err)
	require.NotNil(t, products.lastFilter.Search)
	require.Equal(t, "sapphire", *products.lastFilter.Search)
	require.NotNil(t, products.lastFilter.Category)
	require.Equal(t, "ring", *products.lastFilter.Category)
}

func TestProductService_CreateProduct_Validates(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())

	_, err := s.CreateProduct(context.Background(), &request.ProductRequest{})
	require.ErrorIs(t, err, errs.ErrInvalidInput)
	require.Empty(t, products.byID)
}

func TestProductService_UpdateProduct_OK(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())
	seedProducts(t, s, 1)

	req := validProductRequest()
	req.Name = "Emerald Ring"
	req.Price = 1200

	resp, err := s.UpdateProduct(context.Background(), 1, req)
	require.NoError(t, err)
	require.Equal(t, "Emerald Ring", resp.Name)
	require.Equal(t, float64(1200), resp.Price)
	require.Equal(t, "Emerald Ring", products.byID[1].Name)
}

func TestProductService_UpdateProduct_NotFound(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())

	_, err := s.UpdateProduct(context.Background(), 99, validProductRequest())
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func TestProductService_DeleteProduct_Idempotent(t *testing.T) {
	products := &fakeProducts{}
	s := NewProductService(products, zap.NewNop())
	seedProducts(t, s, 1)

	require.NoError(t, s.DeleteProduct(context.Background(), 1))
	require.Empty(t, products.byID)

	// Deleting an id that is already gone still succeeds.
	require.NoError(t, s.DeleteProduct(context.Background(), 1))
}
