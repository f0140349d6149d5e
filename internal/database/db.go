package database

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type DBInterface interface {
	Ping(ctx context.Context) error
	Close()
}

// PgxIface покрывает методы pgxpool.Pool, которыми пользуются репозитории.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
	Close()
}

// DB представляет подключение к БД
type DB struct {
	Pool   PgxIface
	Logger *zap.Logger
}

// NewDB создает новое подключение к БД по переданному DSN
func NewDB(dsn string, logger *zap.Logger) (*DB, error) {
	if dsn == "" {
		logger.Fatal("database DSN is not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	return &DB{Pool: pool, Logger: logger}, nil
}

// Ping проверяет соединение с БД
func (db *DB) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return db.Pool.Ping(ctx)
}

// Close закрывает соединение с БД
func (db *DB) Close() {
	db.Pool.Close()
}
