package database

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"

	"github.com/Additional-Code/order-service/internal/config"
)

// MySQLDSN converts a mysql:// URL into a go-sql-driver DSN, or normalizes a native DSN.
// Timestamps are always parsed into time.Time in UTC.
func MySQLDSN(raw string) (string, error) {
	cfg, err := mysqlConfig(raw)
	if err != nil {
		return "", err
	}
	return cfg.FormatDSN(), nil
}

func mysqlConfig(raw string) (*mysql.Config, error) {
	var cfg *mysql.Config

	if strings.HasPrefix(raw, "mysql://") {
		u, err := url.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse database url: %w", err)
		}
		cfg = mysql.NewConfig()
		cfg.Net = "tcp"
		cfg.Addr = u.Host
		if u.Port() == "" && u.Host != "" {
			cfg.Addr = u.Host + ":3306"
		}
		if u.User != nil {
			cfg.User = u.User.Username()
			cfg.Passwd, _ = u.User.Password()
		}
		cfg.DBName = strings.TrimPrefix(u.Path, "/")
		if len(u.Query()) > 0 {
			cfg.Params = make(map[string]string, len(u.Query()))
			for key, values := range u.Query() {
				if len(values) > 0 {
					cfg.Params[key] = values[0]
				}
			}
		}
	} else {
		parsed, err := mysql.ParseDSN(raw)
		if err != nil {
			return nil, fmt.Errorf("parse database dsn: %w", err)
		}
		cfg = parsed
	}

	cfg.ParseTime = true
	cfg.Loc = time.UTC
	return cfg, nil
}

// PostgresSearchPath quotes schema for use as a search_path value.
func PostgresSearchPath(schema string) string {
	return `"` + strings.ReplaceAll(schema, `"`, `""`) + `"`
}

// checkSchema rejects schema settings the driver would silently ignore. SQLite only exposes
// main, and a MySQL schema is the database named in the DSN.
func checkSchema(cfg config.Database) error {
	switch cfg.Driver {
	case "sqlite":
		if cfg.Schema != config.SQLiteSchema {
			return fmt.Errorf("sqlite schema must be %q, got %q", config.SQLiteSchema, cfg.Schema)
		}
	case "mysql":
		for _, dsn := range []string{cfg.WriterDSN, cfg.ReaderDSN} {
			if dsn == "" {
				continue
			}
			parsed, err := mysqlConfig(dsn)
			if err != nil {
				return err
			}
			if parsed.DBName != cfg.Schema {
				return fmt.Errorf("mysql schema %q does not match dsn database %q", cfg.Schema, parsed.DBName)
			}
		}
	}
	return nil
}
