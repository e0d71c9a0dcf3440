package dto

import "time"

// OrderLineItemRequest is a single item of a place-order payload.
type OrderLineItemRequest struct {
	SKUCode  string `json:"sku_code"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// PlaceOrderRequest is the JSON body accepted by POST /orders.
type PlaceOrderRequest struct {
	Items []OrderLineItemRequest `json:"items"`
}

// PlaceOrderResponse carries the server-assigned order number.
type PlaceOrderResponse struct {
	OrderNumber string `json:"order_number"`
}

// OrderLineItemResponse represents a persisted line item.
type OrderLineItemResponse struct {
	ID       int64  `json:"order_line_item_id"`
	SKUCode  string `json:"sku_code"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

// OrderResponse represents an order as exposed via transport layers.
type OrderResponse struct {
	ID          int64                   `json:"order_id"`
	OrderNumber string                  `json:"order_number"`
	CreatedAt   *time.Time              `json:"created_at,omitempty"`
	Items       []OrderLineItemResponse `json:"items"`
}

// DeleteOrderResponse reports whether an order row was removed.
type DeleteOrderResponse struct {
	IsDeleted bool `json:"is_deleted"`
}
