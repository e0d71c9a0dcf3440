package seeder

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/order-service/internal/database"
	"github.com/Additional-Code/order-service/internal/entity"
	repo "github.com/Additional-Code/order-service/internal/repository/order"
)

// Module provides the Seeder to Fx.
var Module = fx.Provide(New)

// Seeder performs database seeding for local/dev setups.
type Seeder struct {
	db     *bun.DB
	schema string
	repo   *repo.Repository
	logger *zap.Logger
}

// New constructs a Seeder backed by the primary database connection.
func New(conns *database.Connections, repository *repo.Repository, logger *zap.Logger) *Seeder {
	return &Seeder{db: conns.Writer, schema: conns.Schema, repo: repository, logger: logger}
}

// Samples are the orders written by Orders. Their numbers are fixed so seeding is repeatable.
func Samples() []entity.Order {
	return []entity.Order{
		entity.NewOrder("00000000-0000-4000-8000-00000000a001", []entity.OrderLineItem{
			{SKUCode: "SKU-A", Price: 100, Quantity: 2},
			{SKUCode: "SKU-B", Price: 50, Quantity: 1},
		}),
		entity.NewOrder("00000000-0000-4000-8000-00000000a002", []entity.OrderLineItem{
			{SKUCode: "SKU-C", Price: 1250, Quantity: 1},
		}),
	}
}

// Orders seeds example orders if they are missing and returns how many were written.
func (s *Seeder) Orders(ctx context.Context) (int, error) {
	written := 0
	for _, sample := range Samples() {
		var existing int
		err := s.db.NewRaw("SELECT COUNT(*) FROM ?.? WHERE order_number = ?",
			bun.Ident(s.schema), bun.Ident("t_orders"), sample.OrderNumber,
		).Scan(ctx, &existing)
		if err != nil {
			return written, fmt.Errorf("check order %s: %w", sample.OrderNumber, err)
		}
		if existing > 0 {
			continue
		}

		order := sample
		if _, err := s.repo.Save(ctx, &order); err != nil {
			return written, fmt.Errorf("seed order %s: %w", sample.OrderNumber, err)
		}
		written++
	}

	if s.logger != nil {
		s.logger.Info("seeded orders", zap.Int("written", written), zap.Int("samples", len(Samples())))
	}
	return written, nil
}
