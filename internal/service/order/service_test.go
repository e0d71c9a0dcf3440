package order

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Additional-Code/order-service/internal/cache"
	"github.com/Additional-Code/order-service/internal/config"
	"github.com/Additional-Code/order-service/internal/entity"
	"github.com/Additional-Code/order-service/pkg/errorbank"
)

type fakeRepository struct {
	mu        sync.Mutex
	saved     []entity.Order
	orders    []entity.Order
	deleted   map[int64]bool
	saveErr   error
	listErr   error
	deleteErr error
	listCalls int
	// afterList runs once, outside the lock, after List has taken its snapshot.
	afterList func()
}

func (f *fakeRepository) Save(_ context.Context, order *entity.Order) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, *order)
	f.orders = append(f.orders, *order)
	return order.OrderNumber, nil
}

func (f *fakeRepository) List(context.Context) ([]entity.Order, error) {
	f.mu.Lock()
	f.listCalls++
	if f.listErr != nil {
		f.mu.Unlock()
		return nil, f.listErr
	}
	snapshot := append([]entity.Order(nil), f.orders...)
	hook := f.afterList
	f.afterList = nil
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return snapshot, nil
}

func (f *fakeRepository) Delete(_ context.Context, orderID int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return false, f.deleteErr
	}
	return f.deleted[orderID], nil
}

func setupTestService(t *testing.T, repo *fakeRepository) (*Service, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.InfoLevel)
	svc, err := NewService(Params{
		Repository: repo,
		Cache:      cache.NewMemoryStore(time.Minute),
		Config:     config.Config{Cache: config.Cache{DefaultTTL: time.Minute}},
		Logger:     zap.New(core),
	})
	require.NoError(t, err)
	svc.newID = func() string { return "7d0b6f7e-3f43-4d0c-a1b7-2b0b8c3f9a10" }
	return svc, logs
}

func TestService_Place(t *testing.T) {
	testCases := map[string]struct {
		items          []entity.OrderLineItem
		saveErr        error
		expectedNumber string
		expectedKind   errorbank.Kind
		expectedMsg    string
	}{
		"should persist order with generated number": {
			items: []entity.OrderLineItem{
				{SKUCode: "SKU-A", Price: 100, Quantity: 2},
				{SKUCode: "SKU-B", Price: 50, Quantity: 1},
			},
			expectedNumber: "7d0b6f7e-3f43-4d0c-a1b7-2b0b8c3f9a10",
		},
		"should reject empty items": {
			expectedKind: errorbank.KindBadRequest,
			expectedMsg:  "order must contain at least one item",
		},
		"should reject blank sku": {
			items:        []entity.OrderLineItem{{SKUCode: "  ", Price: 1, Quantity: 1}},
			expectedKind: errorbank.KindBadRequest,
			expectedMsg:  "sku_code is required",
		},
		"should reject zero quantity": {
			items:        []entity.OrderLineItem{{SKUCode: "A", Price: 1, Quantity: 0}},
			expectedKind: errorbank.KindBadRequest,
			expectedMsg:  "quantity must be at least 1",
		},
		"should hide repository failure behind internal error": {
			items:        []entity.OrderLineItem{{SKUCode: "A", Price: 1, Quantity: 1}},
			saveErr:      errors.New("insert order line item 0: data too long"),
			expectedKind: errorbank.KindInternal,
			expectedMsg:  "could not save order",
		},
		"should keep cancellation distinct": {
			items:        []entity.OrderLineItem{{SKUCode: "A", Price: 1, Quantity: 1}},
			saveErr:      context.Canceled,
			expectedKind: errorbank.KindCanceled,
			expectedMsg:  "could not save order",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeRepository{saveErr: tc.saveErr}
			svc, _ := setupTestService(t, repo)

			number, err := svc.Place(context.Background(), tc.items)

			if tc.expectedMsg != "" {
				require.Error(t, err)
				appErr := errorbank.From(err)
				assert.Equal(t, tc.expectedKind, appErr.Kind())
				assert.Equal(t, tc.expectedMsg, appErr.Message())
				assert.Empty(t, number)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expectedNumber, number)
			require.Len(t, repo.saved, 1)
			saved := repo.saved[0]
			assert.Nil(t, saved.ID)
			assert.Nil(t, saved.CreatedAt)
			assert.Equal(t, tc.expectedNumber, saved.OrderNumber)
			assert.Equal(t, tc.items, saved.Items)
		})
	}
}

func TestService_PlaceLogs(t *testing.T) {
	svc, logs := setupTestService(t, &fakeRepository{})

	_, err := svc.Place(context.Background(), []entity.OrderLineItem{
		{SKUCode: "SKU-A", Price: 100, Quantity: 2},
		{SKUCode: "SKU-B", Price: 50, Quantity: 1},
	})
	require.NoError(t, err)

	received := logs.FilterMessage("received order place request").All()
	require.Len(t, received, 1)
	assert.Equal(t, "SKU-A,SKU-B", received[0].ContextMap()["sku_codes"])

	placed := logs.FilterMessage("order placed successfully").All()
	require.Len(t, placed, 1)
	assert.Equal(t, "7d0b6f7e-3f43-4d0c-a1b7-2b0b8c3f9a10", placed[0].ContextMap()["order_number"])
}

func TestService_GeneratesUUIDNumbers(t *testing.T) {
	repo := &fakeRepository{}
	svc, err := NewService(Params{Repository: repo})
	require.NoError(t, err)

	items := []entity.OrderLineItem{{SKUCode: "A", Price: 1, Quantity: 1}}
	first, err := svc.Place(context.Background(), items)
	require.NoError(t, err)
	second, err := svc.Place(context.Background(), items)
	require.NoError(t, err)

	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, first)
	assert.Len(t, first, 36)
	assert.NotEqual(t, first, second)
}

func TestService_List(t *testing.T) {
	created := time.Date(2024, 5, 6, 7, 8, 9, 123456000, time.UTC)
	stored := []entity.Order{{
		ID:          entity.Int64Ptr(1),
		OrderNumber: "n-1",
		CreatedAt:   entity.TimePtr(created),
		Items:       []entity.OrderLineItem{{ID: entity.Int64Ptr(4), SKUCode: "A", Price: 1, Quantity: 1}},
	}}

	t.Run("should read through the cache", func(t *testing.T) {
		repo := &fakeRepository{orders: stored}
		svc, _ := setupTestService(t, repo)

		first, err := svc.List(context.Background())
		require.NoError(t, err)
		second, err := svc.List(context.Background())
		require.NoError(t, err)

		assert.Equal(t, stored, first)
		assert.Equal(t, first, second)
		assert.Equal(t, 1, repo.listCalls)
	})

	t.Run("should invalidate the cache after place", func(t *testing.T) {
		repo := &fakeRepository{orders: stored}
		svc, _ := setupTestService(t, repo)

		_, err := svc.List(context.Background())
		require.NoError(t, err)
		_, err = svc.Place(context.Background(), []entity.OrderLineItem{{SKUCode: "B", Price: 2, Quantity: 2}})
		require.NoError(t, err)
		_, err = svc.List(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, repo.listCalls)
	})

	t.Run("should not cache a list read before a concurrent place", func(t *testing.T) {
		snapshotTaken := make(chan struct{})
		release := make(chan struct{})
		repo := &fakeRepository{afterList: func() {
			close(snapshotTaken)
			<-release
		}}
		svc, _ := setupTestService(t, repo)
		ctx := context.Background()

		stale := make(chan []entity.Order, 1)
		go func() {
			orders, err := svc.List(ctx)
			assert.NoError(t, err)
			stale <- orders
		}()

		<-snapshotTaken
		number, err := svc.Place(ctx, []entity.OrderLineItem{{SKUCode: "SKU-A", Price: 100, Quantity: 2}})
		require.NoError(t, err)
		close(release)
		assert.Empty(t, <-stale)

		for i := 0; i < 2; i++ {
			orders, err := svc.List(ctx)
			require.NoError(t, err)
			require.Len(t, orders, 1)
			assert.Equal(t, number, orders[0].OrderNumber)
		}
		assert.Equal(t, 2, repo.listCalls)
	})

	t.Run("should invalidate the cache after delete", func(t *testing.T) {
		repo := &fakeRepository{orders: stored, deleted: map[int64]bool{1: true}}
		svc, _ := setupTestService(t, repo)
		ctx := context.Background()

		_, err := svc.List(ctx)
		require.NoError(t, err)
		deleted, err := svc.Delete(ctx, 1)
		require.NoError(t, err)
		require.True(t, deleted)
		_, err = svc.List(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, repo.listCalls)
	})

	t.Run("should log receipt and result count", func(t *testing.T) {
		svc, logs := setupTestService(t, &fakeRepository{orders: stored})

		_, err := svc.List(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 1, logs.FilterMessage("received order list request").Len())
		served := logs.FilterMessage("order list served").All()
		require.Len(t, served, 1)
		assert.Equal(t, int64(1), served[0].ContextMap()["count"])
	})

	t.Run("should return empty slice when nothing is stored", func(t *testing.T) {
		svc, _ := setupTestService(t, &fakeRepository{})

		orders, err := svc.List(context.Background())
		require.NoError(t, err)
		assert.Empty(t, orders)
	})

	t.Run("should map repository failure to internal error", func(t *testing.T) {
		svc, logs := setupTestService(t, &fakeRepository{listErr: errors.New("connection refused")})

		orders, err := svc.List(context.Background())
		require.Error(t, err)
		assert.Nil(t, orders)
		assert.Equal(t, errorbank.KindInternal, errorbank.From(err).Kind())
		assert.Equal(t, "could not get order list", errorbank.From(err).Message())
		assert.Equal(t, 1, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
	})
}

func TestService_Delete(t *testing.T) {
	testCases := map[string]struct {
		orderID         int64
		deleteErr       error
		expectedDeleted bool
		expectedLog     string
		expectedMsg     string
	}{
		"should report deleted order": {
			orderID:         1,
			expectedDeleted: true,
			expectedLog:     "order deleted",
		},
		"should report missing order": {
			orderID:     999999,
			expectedLog: "order not deleted",
		},
		"should hide repository failure": {
			orderID:     1,
			deleteErr:   errors.New("lock wait timeout"),
			expectedLog: "could not delete order",
			expectedMsg: "could not delete order",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			repo := &fakeRepository{deleted: map[int64]bool{1: true}, deleteErr: tc.deleteErr}
			svc, logs := setupTestService(t, repo)

			deleted, err := svc.Delete(context.Background(), tc.orderID)

			assert.Equal(t, tc.expectedDeleted, deleted)
			entries := logs.FilterMessage(tc.expectedLog).All()
			require.Len(t, entries, 1)
			assert.Equal(t, tc.orderID, entries[0].ContextMap()["order_id"])
			if tc.expectedMsg != "" {
				require.Error(t, err)
				assert.Equal(t, errorbank.KindInternal, errorbank.From(err).Kind())
				assert.Equal(t, tc.expectedMsg, errorbank.From(err).Message())
				return
			}
			require.NoError(t, err)
		})
	}
}
