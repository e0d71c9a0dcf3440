package entity

import (
	"strings"
	"time"
)

// Order is the aggregate root: a customer order together with its line items.
//
// ID and CreatedAt are nil until the order has been persisted.
type Order struct {
	ID          *int64          `json:"id,omitempty"`
	OrderNumber string          `json:"order_number"`
	CreatedAt   *time.Time      `json:"created_at,omitempty"`
	Items       []OrderLineItem `json:"items"`
}

// OrderLineItem is a single line of an order. Price is expressed in minor currency units.
type OrderLineItem struct {
	ID       *int64 `json:"id,omitempty"`
	SKUCode  string `json:"sku_code"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// NewOrder builds an unpersisted order carrying the given number and items.
func NewOrder(number string, items []OrderLineItem) Order {
	copied := make([]OrderLineItem, len(items))
	for i, item := range items {
		copied[i] = OrderLineItem{
			SKUCode:  item.SKUCode,
			Price:    item.Price,
			Quantity: item.Quantity,
		}
	}
	return Order{
		OrderNumber: number,
		Items:       copied,
	}
}

// SKUCodes returns the comma-joined SKU codes of the order's items in input order.
func (o Order) SKUCodes() string {
	codes := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		codes = append(codes, item.SKUCode)
	}
	return strings.Join(codes, ",")
}

// Int64Ptr returns a pointer to v.
func Int64Ptr(v int64) *int64 {
	return &v
}

// TimePtr returns a pointer to t.
func TimePtr(t time.Time) *time.Time {
	return &t
}
