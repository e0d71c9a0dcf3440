package order

import (
	"time"

	"github.com/uptrace/bun"
)

// The table names below are overridden per query so they can be schema-qualified.

type orderRow struct {
	bun.BaseModel `bun:"table:t_orders"`

	ID          int64     `bun:"id,pk,autoincrement"`
	OrderNumber string    `bun:"order_number"`
	CreatedAt   time.Time `bun:"created_at"`
}

type lineItemRow struct {
	bun.BaseModel `bun:"table:t_order_line_items"`

	ID       int64  `bun:"id,pk,autoincrement"`
	SKUCode  string `bun:"sku_code"`
	Price    int64  `bun:"price"`
	Quantity int64  `bun:"quantity"`
	OrderID  int64  `bun:"order_id"`
}

// joinedRow is one row of the orders x line items inner join.
type joinedRow struct {
	OrderID     int64        `bun:"order_id"`
	OrderNumber string       `bun:"order_number"`
	CreatedAt   bun.NullTime `bun:"created_at"`
	ItemID      int64        `bun:"item_id"`
	SKUCode     string       `bun:"sku_code"`
	Price       int64        `bun:"price"`
	Quantity    int64        `bun:"quantity"`
}
