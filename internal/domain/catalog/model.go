package catalog

import (
	"errors"
	"strings"
)

// Seeded category names.
const (
	CategoryMerch = "merch"
	CategoryBroc  = "broc"
)

// Domain errors
var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNegativePrice = errors.New("price cannot be negative")
	ErrEmptyCategory = errors.New("category reference cannot be empty")
)

// Category groups shop products.
type Category struct {
	ID   string
	Name string
}

// Product is a shop item. Price is in euro cents.
type Product struct {
	ID           string
	Name         string
	Description  string
	Price        int
	Image        string
	CategoryID   string
	CategoryName string
}

// Validate checks if the Product has valid data.
// PRE: Product struct is populated
// POST: Returns nil if valid, error otherwise
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}
	if p.Price < 0 {
		return ErrNegativePrice
	}
	if strings.TrimSpace(p.CategoryID) == "" {
		return ErrEmptyCategory
	}
	return nil
}
