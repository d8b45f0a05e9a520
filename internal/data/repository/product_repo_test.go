package repository

import (
	"context"
	"testing"
	"time"

	"jewelry-store/internal/data/entity"

	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func strptr(s string) *string { return &s }

func productRow(id int64, name string) []any {
	gem := "Diamond"
	carat := 1.2
	return []any{
		id, name, "rings", "gold", &gem, (*string)(nil), &carat, (*string)(nil),
		10, 99.5, (*string)(nil), time.Now(),
	}
}

func TestProductRepo_FindAll_AppliesBothFilters(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductRepository(mock, zap.NewNop())

	cols := []string{"id", "name", "category", "material", "gem_type", "color", "carat", "cut", "stock", "price", "image_url", "created_at"}

	mock.ExpectQuery(`SELECT .+ FROM products WHERE \(name ILIKE \$1 OR material ILIKE \$1\) AND category = \$2 ORDER BY id DESC LIMIT \$3 OFFSET \$4`).
		WithArgs("%ring%", "rings", 6, 0).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(productRow(2, "Gold Ring")...).
			AddRow(productRow(1, "Silver Ring")...))

	products, err := r.FindAll(context.Background(), 0, 6, ProductFilter{
		Search:   strptr("ring"),
		Category: strptr("rings"),
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, int64(2), products[0].ID)
	require.Equal(t, "Gold Ring", products[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_CountAll_SamePredicateAsFindAll(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductRepository(mock, zap.NewNop())

	// The count query must carry the identical WHERE clause and arguments
	// as the listing query.
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE \(name ILIKE \$1 OR material ILIKE \$1\) AND category = \$2`).
		WithArgs("%ring%", "rings").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(13)))

	total, err := r.CountAll(context.Background(), ProductFilter{
		Search:   strptr("ring"),
		Category: strptr("rings"),
	})
	require.NoError(t, err)
	require.Equal(t, int64(13), total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_FindAll_NoFilters(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductRepository(mock, zap.NewNop())

	cols := []string{"id", "name", "category", "material", "gem_type", "color", "carat", "cut", "stock", "price", "image_url", "created_at"}

	mock.ExpectQuery(`SELECT .+ FROM products ORDER BY id DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(6, 6).
		WillReturnRows(pgxmock.NewRows(cols).AddRow(productRow(9, "Pearl Necklace")...))

	products, err := r.FindAll(context.Background(), 6, 6, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, products, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Update_ReturnsNilWhenMissing(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductRepository(mock, zap.NewNop())

	mock.ExpectQuery(`UPDATE products\s+SET name = \$2`).
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
		).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	updated, err := r.Update(context.Background(), &entity.Product{ID: 999, Name: "Ghost"})
	require.NoError(t, err)
	require.Nil(t, updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Delete_IdempotentWhenMissing(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductRepository(mock, zap.NewNop())

	mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := r.Delete(context.Background(), 999)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductRepo_Delete_RemovesRow(t *testing.T) {
	mock := newMock(t)
	defer mock.Close()
	r := NewProductRepository(mock, zap.NewNop())

	mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
		WithArgs(int64(5)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := r.Delete(context.Background(), 5)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
