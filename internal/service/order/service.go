package order

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/order-service/internal/cache"
	"github.com/Additional-Code/order-service/internal/config"
	"github.com/Additional-Code/order-service/internal/entity"
	"github.com/Additional-Code/order-service/internal/observability"
	"github.com/Additional-Code/order-service/pkg/errorbank"
)

var serviceTracer = otel.Tracer("github.com/Additional-Code/order-service/service/order")

// The cached list lives under orders:list:<version>. Writes rotate the version, so a List
// that read the repository before a write can only fill a key nobody reads any more.
const (
	listCacheKey   = "orders:list"
	listVersionKey = "orders:list:version"
)

const (
	msgSaveFailed   = "could not save order"
	msgListFailed   = "could not get order list"
	msgDeleteFailed = "could not delete order"
)

// Repository is the persistence contract the service relies on.
type Repository interface {
	Save(ctx context.Context, order *entity.Order) (string, error)
	List(ctx context.Context) ([]entity.Order, error)
	Delete(ctx context.Context, orderID int64) (bool, error)
}

// Service encapsulates business logic around orders.
type Service struct {
	repo     Repository
	cache    cache.Store
	cacheTTL time.Duration
	logger   *zap.Logger
	placed   metric.Int64Counter
	deleted  metric.Int64Counter
	newID    func() string
}

// Params defines dependencies for constructing Service.
type Params struct {
	fx.In

	Repository    Repository
	Cache         cache.Store
	Config        config.Config
	Logger        *zap.Logger
	Observability *observability.Manager `optional:"true"`
}

// NewService wires a new Service instance.
func NewService(p Params) (*Service, error) {
	meter := p.Observability.Meter("github.com/Additional-Code/order-service/service/order")

	placed, err := meter.Int64Counter("orders.placed", metric.WithDescription("Orders persisted through Place."))
	if err != nil {
		return nil, err
	}
	deleted, err := meter.Int64Counter("orders.deleted", metric.WithDescription("Orders removed through Delete."))
	if err != nil {
		return nil, err
	}

	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	store := p.Cache
	if store == nil {
		store = cache.NoopStore{}
	}

	return &Service{
		repo:     p.Repository,
		cache:    store,
		cacheTTL: p.Config.Cache.DefaultTTL,
		logger:   logger,
		placed:   placed,
		deleted:  deleted,
		newID:    uuid.NewString,
	}, nil
}

// Place validates the items, assigns a fresh order number and persists the order.
func (s *Service) Place(ctx context.Context, items []entity.OrderLineItem) (string, error) {
	if err := validateItems(items); err != nil {
		return "", err
	}

	order := entity.NewOrder(s.newID(), items)
	ctx, span := serviceTracer.Start(ctx, "OrderService.Place", trace.WithAttributes(
		attribute.String("order.number", order.OrderNumber),
		attribute.Int("order.items", len(order.Items)),
	))
	defer span.End()

	s.logger.Info("received order place request", zap.String("sku_codes", order.SKUCodes()))

	number, err := s.repo.Save(ctx, &order)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, msgSaveFailed)
		s.logger.Error(msgSaveFailed, zap.String("order_number", order.OrderNumber), zap.Error(err))
		return "", errorbank.Wrap(err, msgSaveFailed)
	}

	s.invalidateList(ctx)
	s.logger.Info("order placed successfully", zap.String("order_number", number))
	s.placed.Add(ctx, 1)
	return number, nil
}

// List returns every order that has at least one line item, ordered by id.
func (s *Service) List(ctx context.Context) ([]entity.Order, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.List")
	defer span.End()

	s.logger.Info("received order list request")

	// The version must be read before the repository so a concurrent write rotates it.
	version, err := s.listVersion(ctx)
	if err != nil {
		s.logger.Warn("orders cache version read failed", zap.Error(err))
	}

	if version != "" {
		orders, err := s.listFromCache(ctx, version)
		if err == nil {
			span.SetAttributes(attribute.Bool("cache.hit", true))
			s.logger.Info("order list served", zap.Int("count", len(orders)), zap.Bool("cached", true))
			return orders, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("orders cache read failed", zap.Error(err))
		}
	}

	orders, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, msgListFailed)
		s.logger.Error(msgListFailed, zap.Error(err))
		return nil, errorbank.Wrap(err, msgListFailed)
	}

	if version != "" {
		if err := s.storeList(ctx, version, orders); err != nil {
			s.logger.Warn("orders cache write failed", zap.Error(err))
		}
	}
	s.logger.Info("order list served", zap.Int("count", len(orders)), zap.Bool("cached", false))
	return orders, nil
}

// Delete removes the order and its items. Deleting an unknown id reports false without error.
func (s *Service) Delete(ctx context.Context, orderID int64) (bool, error) {
	ctx, span := serviceTracer.Start(ctx, "OrderService.Delete", trace.WithAttributes(attribute.Int64("order.id", orderID)))
	defer span.End()

	deleted, err := s.repo.Delete(ctx, orderID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, msgDeleteFailed)
		s.logger.Error(msgDeleteFailed, zap.Int64("order_id", orderID), zap.Error(err))
		return false, errorbank.Wrap(err, msgDeleteFailed)
	}

	if !deleted {
		s.logger.Info("order not deleted", zap.Int64("order_id", orderID))
		return false, nil
	}

	s.logger.Info("order deleted", zap.Int64("order_id", orderID))
	s.deleted.Add(ctx, 1)
	s.invalidateList(ctx)
	return true, nil
}

func validateItems(items []entity.OrderLineItem) error {
	if len(items) == 0 {
		return errorbank.BadRequest("order must contain at least one item")
	}
	for i, item := range items {
		if strings.TrimSpace(item.SKUCode) == "" {
			return errorbank.BadRequest("sku_code is required", errorbank.WithDetail("index", i))
		}
		if item.Quantity < 1 {
			return errorbank.BadRequest("quantity must be at least 1",
				errorbank.WithDetail("index", i),
				errorbank.WithDetail("quantity", item.Quantity),
			)
		}
	}
	return nil
}

// listVersion returns the current list version, minting one when none is stored.
func (s *Service) listVersion(ctx context.Context) (string, error) {
	raw, err := s.cache.Get(ctx, listVersionKey)
	if err == nil && len(raw) > 0 {
		return string(raw), nil
	}
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		return "", err
	}
	return s.rotateListVersion(ctx)
}

func (s *Service) rotateListVersion(ctx context.Context) (string, error) {
	version := uuid.NewString()
	if err := s.cache.Set(ctx, listVersionKey, []byte(version), s.cacheTTL); err != nil {
		return "", err
	}
	return version, nil
}

func listKey(version string) string {
	return listCacheKey + ":" + version
}

func (s *Service) listFromCache(ctx context.Context, version string) ([]entity.Order, error) {
	payload, err := s.cache.Get(ctx, listKey(version))
	if err != nil {
		return nil, err
	}
	var orders []entity.Order
	if err := json.Unmarshal(payload, &orders); err != nil {
		return nil, err
	}
	if orders == nil {
		orders = []entity.Order{}
	}
	return orders, nil
}

func (s *Service) storeList(ctx context.Context, version string, orders []entity.Order) error {
	payload, err := json.Marshal(orders)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, listKey(version), payload, s.cacheTTL)
}

// invalidateList rotates the list version and drops the list cached under the old one.
// If the rotation fails the version key is deleted so the next List mints a fresh one.
func (s *Service) invalidateList(ctx context.Context) {
	previous, err := s.cache.Get(ctx, listVersionKey)
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("orders cache version read failed", zap.Error(err))
	}

	if _, err := s.rotateListVersion(ctx); err != nil {
		s.logger.Warn("orders cache invalidation failed", zap.Error(err))
		if err := s.cache.Delete(ctx, listVersionKey); err != nil {
			s.logger.Warn("orders cache invalidation failed", zap.Error(err))
		}
	}

	if len(previous) > 0 {
		if err := s.cache.Delete(ctx, listKey(string(previous))); err != nil {
			s.logger.Warn("orders cache invalidation failed", zap.Error(err))
		}
	}
}
