package domain

import "time"

type EventKind string

const (
	EventProductView EventKind = "product_view"
	EventCartAdd     EventKind = "cart_add"
)

type EventPrice struct {
	Amount   float64
	Currency string
}

// ClientEvent is a storefront interaction emitted to the broker
// for downstream analytics.
type ClientEvent struct {
	Kind       EventKind
	CartID     string
	ProductID  int64
	VariantID  string
	Quantity   int
	Price      EventPrice
	OccurredAt time.Time
}
