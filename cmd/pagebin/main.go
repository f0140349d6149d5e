package main

import (
	"net/http"

	"github.com/Totarae/PageBin/internal/config"
	"github.com/Totarae/PageBin/internal/database"
	"github.com/Totarae/PageBin/internal/handlers"
	"github.com/Totarae/PageBin/internal/repositories"
	"github.com/Totarae/PageBin/internal/router"
	"github.com/Totarae/PageBin/internal/service"
	"go.uber.org/zap"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Инициализация конфигурации
	cfg := config.NewConfig()

	db, err := database.NewDB(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseDSN, cfg.PgMigrationsPath, logger); err != nil {
		logger.Fatal("Не удалось применить миграции", zap.Error(err))
	}

	repo := repositories.NewPageRepository(db)
	pages := service.NewPageService(repo, logger, cfg.RecentLimit)
	suggestions := service.NewSuggestionService(repo, logger)

	handler := handlers.NewHandler(pages, suggestions, logger)
	r := router.NewRouter(handler, logger)

	logger.Info("Сервер запущен на ", zap.String("address", cfg.ServerAddress))
	if cfg.EnableHTTPS {
		err = http.ListenAndServeTLS(cfg.ServerAddress, cfg.TLSCertPath, cfg.TLSKeyPath, r)
	} else {
		err = http.ListenAndServe(cfg.ServerAddress, r)
	}
	if err != nil {
		logger.Fatal("Ошибка при запуске сервера: ", zap.Error(err))
	}
}
