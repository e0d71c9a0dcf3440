package order

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"

	"github.com/Additional-Code/order-service/internal/database"
	"github.com/Additional-Code/order-service/internal/database/databasetest"
	"github.com/Additional-Code/order-service/internal/entity"
)

func setupTestRepository(t *testing.T) (*Repository, *database.Connections) {
	conns := databasetest.New(t)
	return NewRepository(conns), conns
}

func newTestOrder(number string, items ...entity.OrderLineItem) *entity.Order {
	order := entity.NewOrder(number, items)
	return &order
}

func item(sku string, price, quantity int64) entity.OrderLineItem {
	return entity.OrderLineItem{SKUCode: sku, Price: price, Quantity: quantity}
}

func bunTime(t time.Time) bun.NullTime {
	return bun.NullTime{Time: t}
}

func triples(items []entity.OrderLineItem) []entity.OrderLineItem {
	out := make([]entity.OrderLineItem, len(items))
	for i, it := range items {
		out[i] = item(it.SKUCode, it.Price, it.Quantity)
	}
	return out
}

func TestRepository_Save(t *testing.T) {
	repo, conns := setupTestRepository(t)
	ctx := context.Background()

	fixed := time.Date(2024, 3, 1, 12, 30, 45, 123456789, time.FixedZone("CET", 3600))
	repo.now = func() time.Time { return fixed }

	order := newTestOrder("3f0c1c4e-7c1a-4a57-9a2c-6a0f0f4f7c11", item("SKU-A", 100, 2), item("SKU-B", 50, 1))

	number, err := repo.Save(ctx, order)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, number)

	require.NotNil(t, order.ID)
	assert.GreaterOrEqual(t, *order.ID, int64(1))
	require.NotNil(t, order.CreatedAt)
	assert.Equal(t, fixed.UTC().Truncate(time.Microsecond), *order.CreatedAt)
	for _, it := range order.Items {
		require.NotNil(t, it.ID)
	}

	assert.Equal(t, 1, databasetest.Count(t, conns, "t_orders"))
	assert.Equal(t, 2, databasetest.Count(t, conns, "t_order_line_items"))

	rows, err := conns.Writer.DB.Query("SELECT sku_code, price, quantity, order_id FROM t_order_line_items ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()

	var stored []entity.OrderLineItem
	for rows.Next() {
		var it entity.OrderLineItem
		var orderID int64
		require.NoError(t, rows.Scan(&it.SKUCode, &it.Price, &it.Quantity, &orderID))
		assert.Equal(t, *order.ID, orderID)
		stored = append(stored, it)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []entity.OrderLineItem{item("SKU-A", 100, 2), item("SKU-B", 50, 1)}, stored)
}

func TestRepository_SaveRollsBack(t *testing.T) {
	testCases := map[string]struct {
		order         *entity.Order
		setupContext  func() context.Context
		expectedError string
	}{
		"should roll back when an item insert fails": {
			order: newTestOrder("b8c1d7e2-0d43-4c8e-9e0c-7a4d2b9a1f00",
				item("SKU-OK", 1, 1),
				item(strings.Repeat("X", 300), 2, 2),
			),
			setupContext:  context.Background,
			expectedError: "insert order line item 1",
		},
		"should roll back on duplicate order number": {
			order:         newTestOrder("duplicate-number", item("SKU-A", 1, 1)),
			setupContext:  context.Background,
			expectedError: "insert order",
		},
		"should return error when context is cancelled": {
			order: newTestOrder("c2c6d0f1-3b9e-4e1f-8a5b-1d2e3f405060", item("SKU-A", 1, 1)),
			setupContext: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			},
			expectedError: "context canceled",
		},
		"should reject nil order": {
			setupContext:  context.Background,
			expectedError: ErrNilOrder.Error(),
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			repo, conns := setupTestRepository(t)

			// Pre-existing order used by the duplicate case; every case must leave it untouched.
			_, err := repo.Save(context.Background(), newTestOrder("duplicate-number", item("SEED", 9, 9)))
			require.NoError(t, err)

			_, err = repo.Save(tc.setupContext(), tc.order)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectedError)
			assert.Equal(t, 1, databasetest.Count(t, conns, "t_orders"))
			assert.Equal(t, 1, databasetest.Count(t, conns, "t_order_line_items"))

			orders, err := repo.List(context.Background())
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, "duplicate-number", orders[0].OrderNumber)
		})
	}
}

func TestRepository_List(t *testing.T) {
	t.Run("should return empty slice for empty database", func(t *testing.T) {
		repo, _ := setupTestRepository(t)

		orders, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, orders)
		assert.Empty(t, orders)
	})

	t.Run("should reconstruct aggregates ordered by id", func(t *testing.T) {
		repo, _ := setupTestRepository(t)
		ctx := context.Background()

		start := time.Now().UTC()
		first := newTestOrder("00000000-0000-4000-8000-000000000001", item("X", 1, 1))
		second := newTestOrder("00000000-0000-4000-8000-000000000002", item("Y", 2, 2), item("Z", 3, 3))
		_, err := repo.Save(ctx, first)
		require.NoError(t, err)
		_, err = repo.Save(ctx, second)
		require.NoError(t, err)

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 2)

		assert.Less(t, *orders[0].ID, *orders[1].ID)
		assert.Equal(t, first.OrderNumber, orders[0].OrderNumber)
		assert.Equal(t, second.OrderNumber, orders[1].OrderNumber)
		assert.Equal(t, []entity.OrderLineItem{item("X", 1, 1)}, triples(orders[0].Items))
		assert.Equal(t, []entity.OrderLineItem{item("Y", 2, 2), item("Z", 3, 3)}, triples(orders[1].Items))

		for _, order := range orders {
			require.NotNil(t, order.CreatedAt)
			assert.WithinDuration(t, start, *order.CreatedAt, 5*time.Second)
			assert.Equal(t, time.UTC, order.CreatedAt.Location())
			for _, it := range order.Items {
				require.NotNil(t, it.ID)
			}
		}
		assert.Equal(t, *second.Items[0].ID, *orders[1].Items[0].ID)
		assert.Equal(t, *second.Items[1].ID, *orders[1].Items[1].ID)
	})

	t.Run("should be deterministic", func(t *testing.T) {
		repo, _ := setupTestRepository(t)
		ctx := context.Background()

		for _, number := range []string{"n-1", "n-2", "n-3"} {
			_, err := repo.Save(ctx, newTestOrder(number, item("A", 1, 1), item("B", 2, 2)))
			require.NoError(t, err)
		}

		firstRead, err := repo.List(ctx)
		require.NoError(t, err)
		secondRead, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, firstRead, secondRead)
	})

	t.Run("should hide orders without items", func(t *testing.T) {
		repo, conns := setupTestRepository(t)
		ctx := context.Background()

		_, err := repo.Save(ctx, newTestOrder("empty-order"))
		require.NoError(t, err)
		_, err = repo.Save(ctx, newTestOrder("full-order", item("A", 1, 1)))
		require.NoError(t, err)

		assert.Equal(t, 2, databasetest.Count(t, conns, "t_orders"))

		orders, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, orders, 1)
		assert.Equal(t, "full-order", orders[0].OrderNumber)
	})
}

func TestRepository_Delete(t *testing.T) {
	testCases := map[string]struct {
		targetIndex     int
		missingID       int64
		expectedDeleted bool
		expectedOrders  []string
		expectedItems   int
	}{
		"should cascade delete an existing order": {
			targetIndex:     0,
			expectedDeleted: true,
			expectedOrders:  []string{"second"},
			expectedItems:   2,
		},
		"should return false for an unknown order": {
			targetIndex:     -1,
			missingID:       999999,
			expectedDeleted: false,
			expectedOrders:  []string{"first", "second"},
			expectedItems:   3,
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			repo, conns := setupTestRepository(t)
			ctx := context.Background()

			saved := []*entity.Order{
				newTestOrder("first", item("X", 1, 1)),
				newTestOrder("second", item("Y", 2, 2), item("Z", 3, 3)),
			}
			for _, order := range saved {
				_, err := repo.Save(ctx, order)
				require.NoError(t, err)
			}

			target := tc.missingID
			if tc.targetIndex >= 0 {
				target = *saved[tc.targetIndex].ID
			}

			deleted, err := repo.Delete(ctx, target)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedDeleted, deleted)

			orders, err := repo.List(ctx)
			require.NoError(t, err)
			numbers := make([]string, 0, len(orders))
			for _, order := range orders {
				numbers = append(numbers, order.OrderNumber)
			}
			assert.Equal(t, tc.expectedOrders, numbers)
			assert.Equal(t, tc.expectedItems, databasetest.Count(t, conns, "t_order_line_items"))
			assert.Equal(t, len(tc.expectedOrders), databasetest.Count(t, conns, "t_orders"))
		})
	}
}

func TestRepository_DeleteTwice(t *testing.T) {
	repo, _ := setupTestRepository(t)
	ctx := context.Background()

	order := newTestOrder("once", item("A", 1, 1))
	_, err := repo.Save(ctx, order)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, *order.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, *order.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestAggregate(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 6000, time.UTC)
	rows := []joinedRow{
		{OrderID: 7, OrderNumber: "b", ItemID: 30, SKUCode: "B2", Price: 2, Quantity: 1},
		{OrderID: 3, OrderNumber: "a", CreatedAt: bunTime(created), ItemID: 12, SKUCode: "A2", Price: 5, Quantity: 2},
		{OrderID: 7, OrderNumber: "b", ItemID: 21, SKUCode: "B1", Price: 1, Quantity: 1},
		{OrderID: 3, OrderNumber: "a", CreatedAt: bunTime(created), ItemID: 11, SKUCode: "A1", Price: 4, Quantity: 3},
	}

	orders := aggregate(rows)

	expected := []entity.Order{
		{
			ID:          entity.Int64Ptr(3),
			OrderNumber: "a",
			CreatedAt:   entity.TimePtr(created),
			Items: []entity.OrderLineItem{
				{ID: entity.Int64Ptr(11), SKUCode: "A1", Price: 4, Quantity: 3},
				{ID: entity.Int64Ptr(12), SKUCode: "A2", Price: 5, Quantity: 2},
			},
		},
		{
			ID:          entity.Int64Ptr(7),
			OrderNumber: "b",
			Items: []entity.OrderLineItem{
				{ID: entity.Int64Ptr(21), SKUCode: "B1", Price: 1, Quantity: 1},
				{ID: entity.Int64Ptr(30), SKUCode: "B2", Price: 2, Quantity: 1},
			},
		},
	}
	assert.Equal(t, expected, orders)
	assert.Empty(t, aggregate(nil))
}
