package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"time"
	"todos-go-backend/config"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// DriverPQ selects PostgreSQL through lib/pq instead of the pgx pool.
const DriverPQ = "pq"

func NewDSN() string {
	dsn := "postgres://" + config.C.Database.User + ":" + config.C.Database.Password + "@" + config.C.Database.Addr + ":" + config.C.Database.Port + "/" + config.C.Database.DBName + "?sslmode=disable"
	return dsn
}

// NewMySQLDSN builds a go-sql-driver DSN from config.
func NewMySQLDSN() (string, error) {
	c := mysql.NewConfig()
	c.User = config.C.Database.User
	c.Passwd = config.C.Database.Password
	c.Net = config.C.Database.Net
	if c.Net == "" {
		c.Net = "tcp"
	}
	c.Addr = config.C.Database.Addr + ":" + config.C.Database.Port
	c.DBName = config.C.Database.DBName
	c.AllowNativePasswords = config.C.Database.AllowNativePasswords
	c.ParseTime = config.C.Database.Params.ParseTime != "false"
	// Report matched rather than changed rows so an update with identical values is not a conflict.
	c.ClientFoundRows = true
	if config.C.Database.Params.TLS != "" {
		c.TLSConfig = config.C.Database.Params.TLS
	}
	if config.C.Database.Params.Charset != "" {
		c.Params = map[string]string{"charset": config.C.Database.Params.Charset}
	}
	if config.C.Database.Params.Loc != "" {
		loc, err := time.LoadLocation(config.C.Database.Params.Loc)
		if err != nil {
			return "", fmt.Errorf("invalid database location %q: %w", config.C.Database.Params.Loc, err)
		}
		c.Loc = loc
	}
	return c.FormatDSN(), nil
}

// NewClient opens the store configured in config.C.Database.
func NewClient() (*entsql.Driver, error) {
	switch config.C.Database.Driver {
	case dialect.Postgres, "":
		return NewClientWithDSN(NewDSN())
	case DriverPQ:
		db, err := sql.Open("postgres", NewDSN())
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return entsql.OpenDB(dialect.Postgres, db), nil
	case dialect.MySQL:
		dsn, err := NewMySQLDSN()
		if err != nil {
			return nil, err
		}
		return entsql.Open(dialect.MySQL, dsn)
	case dialect.SQLite:
		return entsql.Open(dialect.SQLite, config.C.Database.Source)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", config.C.Database.Driver)
	}
}

// Create a new driver using pgxpool
func NewClientWithDSN(dsn string) (*entsql.Driver, error) {
	// Create pgx connection pool
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to create pool config: %w", err)
	}
	poolConfig.MaxConns = 20
	if config.C.Database.MaxConns > 0 {
		poolConfig.MaxConns = config.C.Database.MaxConns
	}
	poolConfig.MinConns = 0
	poolConfig.MaxConnLifetime = time.Minute * 2
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	// Use stdlib to wrap pgxpool in database/sql compatibility
	sqlDB := stdlib.OpenDBFromPool(pool)

	return entsql.OpenDB(dialect.Postgres, sqlDB), nil
}

// WithDebug logs every statement at debug level when database.debug is set.
func WithDebug(drv dialect.Driver, logger *zap.Logger) dialect.Driver {
	if !config.C.Database.Debug {
		return drv
	}
	sugar := logger.Sugar().Named("sql")
	return dialect.Debug(drv, func(v ...any) { sugar.Debug(v...) })
}
