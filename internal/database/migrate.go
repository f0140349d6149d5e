package database

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/zap"
)

// RunMigrations применяет миграции из каталога path к базе по DSN.
// Отсутствие новых миграций ошибкой не считается.
func RunMigrations(dsn, path string, logger *zap.Logger) error {
	m, err := migrate.New("file://"+path, dsn)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.Info("Миграции не требуются")
			return nil
		}
		return err
	}

	logger.Info("Миграции применены", zap.String("path", path))
	return nil
}
