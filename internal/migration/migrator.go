package migration

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/uptrace/bun"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Additional-Code/order-service/internal/database"
)

//go:embed sql/*/*.sql
var migrationsFS embed.FS

// Module provides the migrator to Fx.
var Module = fx.Provide(New)

// goose keeps its dialect, base FS and logger in package state.
var gooseMu sync.Mutex

// Migrator wraps goose operations.
type Migrator struct {
	db      *bun.DB
	dialect string
	schema  string
	dir     string
	logger  *zap.Logger
}

// New constructs a goose-backed migrator for the configured driver.
func New(conns *database.Connections, logger *zap.Logger) (*Migrator, error) {
	dialect, err := gooseDialect(conns.Driver)
	if err != nil {
		return nil, err
	}

	return &Migrator{
		db:      conns.Writer,
		dialect: dialect,
		schema:  conns.Schema,
		dir:     path.Join("sql", conns.Driver),
		logger:  logger,
	}, nil
}

// Up applies all pending migrations. On postgres the order schema is created first; the
// connection's search_path already points at it.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.ensureSchema(ctx); err != nil {
		return err
	}
	return m.withGoose(func() error {
		if err := goose.UpContext(ctx, m.db.DB, m.dir); err != nil {
			if isNoMigrationErr(err) {
				m.logger.Info("no migrations to apply")

				return nil
			}
			return err
		}

		m.logger.Info("migrations applied")

		return nil
	})
}

// Down rolls back migrations. Steps <=0 defaults to 1; all=true rolls everything back.
func (m *Migrator) Down(ctx context.Context, steps int, all bool) error {
	return m.withGoose(func() error {
		if all {
			if err := goose.DownToContext(ctx, m.db.DB, m.dir, 0); err != nil {
				if isNoMigrationErr(err) {
					m.logger.Info("no migrations to rollback")

					return nil
				}
				return err
			}
			m.logger.Info("migrations rolled back", zap.String("mode", "all"))

			return nil
		}

		if steps <= 0 {
			steps = 1
		}

		for i := 0; i < steps; i++ {
			if err := goose.DownContext(ctx, m.db.DB, m.dir); err != nil {
				if isNoMigrationErr(err) {
					m.logger.Info("no migrations to rollback")

					return nil
				}
				return err
			}
		}

		m.logger.Info("migrations rolled back", zap.Int("steps", steps))

		return nil
	})
}

// Version reports the currently applied schema version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	var version int64
	err := m.withGoose(func() error {
		v, err := goose.GetDBVersionContext(ctx, m.db.DB)
		if err != nil {
			return err
		}
		version = v
		return nil
	})
	return version, err
}

func (m *Migrator) ensureSchema(ctx context.Context) error {
	if m.dialect != "postgres" {
		return nil
	}
	if _, err := m.db.ExecContext(ctx, "CREATE SCHEMA IF NOT EXISTS ?", bun.Ident(m.schema)); err != nil {
		return fmt.Errorf("create schema %s: %w", m.schema, err)
	}
	return nil
}

func (m *Migrator) withGoose(fn func() error) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{logger: m.logger})
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	return fn()
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case "postgres", "pg":
		return "postgres", nil
	case "mysql":
		return "mysql", nil
	case "sqlite", "sqlite3":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported goose dialect for driver %s", driver)
	}
}

func isNoMigrationErr(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, goose.ErrNoNextVersion) || errors.Is(err, goose.ErrNoCurrentVersion) || errors.Is(err, goose.ErrNoMigrationFiles) {
		return true
	}

	msg := err.Error()
	return strings.Contains(msg, "no migration")
}

type gooseLogger struct {
	logger *zap.Logger
}

func (g gooseLogger) Printf(format string, args ...interface{}) {
	g.logger.Sugar().Debugf(strings.TrimSpace(format), args...)
}

func (g gooseLogger) Fatalf(format string, args ...interface{}) {
	g.logger.Sugar().Errorf(strings.TrimSpace(format), args...)
}
