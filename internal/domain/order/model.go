package order

import "time"

// Order is a persisted customer order. The current site never writes
// orders (checkout hands the cart off to the visitor's mail client), but
// the schema and store are kept so past data stays readable from the
// admin dashboard.
type Order struct {
	ID        string
	UserID    string
	Name      string
	Email     string
	Phone     string
	Total     int
	CreatedAt time.Time
}

// Item is one product line inside an Order. Price is the unit price in
// euro cents captured at order time.
type Item struct {
	OrderID   string
	ProductID string
	Quantity  int
	Price     int
}

// WithItemCount pairs an Order with the number of lines it contains,
// for dashboard listings.
type WithItemCount struct {
	Order
	ItemCount int
}
