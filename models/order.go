package models

import "fmt"

// Order is the sort direction accepted by ordered listings.
type Order string

const (
	OrderAscendent  Order = "ascendent"
	OrderDescendent Order = "descendent"
)

// ParseOrder converts a query value into an [Order].
// An empty value yields [OrderAscendent].
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "":
		return OrderAscendent, nil
	case OrderAscendent, OrderDescendent:
		return Order(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}
