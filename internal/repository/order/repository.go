package order

import (
	"cmp"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Additional-Code/order-service/internal/database"
	"github.com/Additional-Code/order-service/internal/entity"
)

var repoTracer = otel.Tracer("github.com/Additional-Code/order-service/repository/order")

const (
	ordersTable    = "t_orders"
	lineItemsTable = "t_order_line_items"
)

// ErrNilOrder is returned when Save receives no order.
var ErrNilOrder = errors.New("nil order")

// Repository encapsulates read/write access for orders and their line items.
type Repository struct {
	writer *bun.DB
	reader *bun.DB
	schema string
	now    func() time.Time
}

// NewRepository wires a repository backed by configured database connections.
func NewRepository(conns *database.Connections) *Repository {
	return &Repository{
		writer: conns.Writer,
		reader: conns.Reader,
		schema: conns.Schema,
		now:    time.Now,
	}
}

// Save persists the order and all of its items in a single transaction and returns the
// order number. On success the aggregate's ids and creation time are filled in.
func (r *Repository) Save(ctx context.Context, order *entity.Order) (string, error) {
	if order == nil {
		return "", ErrNilOrder
	}
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Save", trace.WithAttributes(
		attribute.String("order.number", order.OrderNumber),
		attribute.Int("order.items", len(order.Items)),
	))
	defer span.End()

	// DATETIME(6) keeps microseconds.
	createdAt := r.now().UTC().Truncate(time.Microsecond)

	parent := &orderRow{
		OrderNumber: order.OrderNumber,
		CreatedAt:   createdAt,
	}
	children := make([]*lineItemRow, len(order.Items))

	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewInsert().
			Model(parent).
			ModelTableExpr("?.?", bun.Ident(r.schema), bun.Ident(ordersTable)).
			Exec(ctx); err != nil {
			return fmt.Errorf("insert order: %w", err)
		}
		if parent.ID == 0 {
			return errors.New("insert order: no id generated")
		}

		for i, item := range order.Items {
			child := &lineItemRow{
				SKUCode:  item.SKUCode,
				Price:    item.Price,
				Quantity: item.Quantity,
				OrderID:  parent.ID,
			}
			if _, err := tx.NewInsert().
				Model(child).
				ModelTableExpr("?.?", bun.Ident(r.schema), bun.Ident(lineItemsTable)).
				Exec(ctx); err != nil {
				return fmt.Errorf("insert order line item %d: %w", i, err)
			}
			children[i] = child
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "save failed")
		return "", err
	}

	order.ID = entity.Int64Ptr(parent.ID)
	order.CreatedAt = entity.TimePtr(createdAt)
	for i, child := range children {
		order.Items[i].ID = entity.Int64Ptr(child.ID)
	}
	span.SetAttributes(attribute.Int64("order.id", parent.ID))

	return order.OrderNumber, nil
}

// List returns every order that has at least one line item, sorted by order id, with
// items sorted by item id.
func (r *Repository) List(ctx context.Context) ([]entity.Order, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.List")
	defer span.End()

	var rows []joinedRow
	err := r.reader.NewRaw(`
		SELECT o.id AS order_id, o.order_number, o.created_at,
		       i.id AS item_id, i.sku_code, i.price, i.quantity
		FROM ?.? AS o
		INNER JOIN ?.? AS i ON i.order_id = o.id
		ORDER BY o.id ASC, i.id ASC`,
		bun.Ident(r.schema), bun.Ident(ordersTable),
		bun.Ident(r.schema), bun.Ident(lineItemsTable),
	).Scan(ctx, &rows)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "select failed")
		return nil, fmt.Errorf("select orders: %w", err)
	}

	orders := aggregate(rows)
	span.SetAttributes(attribute.Int("orders.count", len(orders)))

	return orders, nil
}

// Delete removes the order's line items and then the order itself in one transaction.
// It reports whether an order row was removed; an unknown id is not an error.
func (r *Repository) Delete(ctx context.Context, orderID int64) (bool, error) {
	ctx, span := repoTracer.Start(ctx, "OrderRepository.Delete", trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	var affected int64
	err := r.writer.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM ?.? WHERE order_id = ?",
			bun.Ident(r.schema), bun.Ident(lineItemsTable), orderID,
		); err != nil {
			return fmt.Errorf("delete order line items: %w", err)
		}

		res, err := tx.ExecContext(ctx,
			"DELETE FROM ?.? WHERE id = ?",
			bun.Ident(r.schema), bun.Ident(ordersTable), orderID,
		)
		if err != nil {
			return fmt.Errorf("delete order: %w", err)
		}

		affected, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("delete order: rows affected: %w", err)
		}
		return nil
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "delete failed")
		return false, err
	}

	span.SetAttributes(attribute.Bool("order.deleted", affected > 0))
	return affected > 0, nil
}

// aggregate folds one-row-per-item join results into orders keyed by order id.
func aggregate(rows []joinedRow) []entity.Order {
	byID := make(map[int64]*entity.Order)
	for _, row := range rows {
		order, ok := byID[row.OrderID]
		if !ok {
			order = &entity.Order{
				ID:          entity.Int64Ptr(row.OrderID),
				OrderNumber: row.OrderNumber,
			}
			if !row.CreatedAt.IsZero() {
				order.CreatedAt = entity.TimePtr(row.CreatedAt.Time.UTC())
			}
			byID[row.OrderID] = order
		}
		order.Items = append(order.Items, entity.OrderLineItem{
			ID:       entity.Int64Ptr(row.ItemID),
			SKUCode:  row.SKUCode,
			Price:    row.Price,
			Quantity: row.Quantity,
		})
	}

	orders := make([]entity.Order, 0, len(byID))
	for _, order := range byID {
		slices.SortStableFunc(order.Items, func(a, b entity.OrderLineItem) int {
			return cmp.Compare(*a.ID, *b.ID)
		})
		orders = append(orders, *order)
	}
	slices.SortFunc(orders, func(a, b entity.Order) int {
		return cmp.Compare(*a.ID, *b.ID)
	})
	return orders
}
