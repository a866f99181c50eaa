package order

import (
	"context"

	domain "assosite/internal/domain/order"
)

// Store persists Order state. The public site never writes orders
// (checkout is a mail-client handoff); the store exists so the admin
// dashboard can surface whatever rows exist.
type Store interface {
	// Save persists an order and its items in one transaction.
	Save(ctx context.Context, value domain.Order, items []domain.Item) error

	// ListWithItemCounts returns all orders with the number of lines
	// each contains, newest first.
	ListWithItemCounts(ctx context.Context) ([]domain.WithItemCount, error)
}
