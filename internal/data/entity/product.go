package entity

import "time"

type Product struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Category  string    `db:"category"`
	Material  string    `db:"material"`
	GemType   *string   `db:"gem_type"`
	Color     *string   `db:"color"`
	Carat     *float64  `db:"carat"`
	Cut       *string   `db:"cut"`
	Stock     int       `db:"stock"`
	Price     float64   `db:"price"`
	ImageURL  *string   `db:"image_url"`
	CreatedAt time.Time `db:"created_at"`
}
