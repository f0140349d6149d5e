package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/PageBin/internal/model"
	"github.com/Totarae/PageBin/internal/repositories"
	"github.com/Totarae/PageBin/internal/util"
	"go.uber.org/zap"
)

// DefaultRecentLimit — количество страниц в ленте по умолчанию.
const DefaultRecentLimit = 10

// Repository определяет методы хранилища, нужные сервисам страниц.
//
//go:generate mockgen -source=page.go -destination=mocks/mock_repository.go -package=mocks Repository
type Repository interface {
	GetPageByName(ctx context.Context, name string) (*model.Page, error)
	GetRecentPages(ctx context.Context, limit int) ([]*model.Page, error)
	CheckPageExists(ctx context.Context, name string) (bool, error)
	GetExpiredPageID(ctx context.Context, name string) (int64, bool, error)
	DeletePageByID(ctx context.Context, id int64) error
	CreatePage(ctx context.Context, page *repositories.NewPage) (*model.Page, error)
	IncrementCounter(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// PageService отвечает за жизненный цикл страниц: создание с
// переиспользованием протухших имён, чтение с сжиганием view-once,
// лента недавних страниц.
type PageService struct {
	Repo        Repository
	Logger      *zap.Logger
	RecentLimit int
}

func NewPageService(repo Repository, logger *zap.Logger, recentLimit int) *PageService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &PageService{Repo: repo, Logger: logger, RecentLimit: recentLimit}
}

// Create создаёт страницу с именем name.
// Занятое живое имя — ErrPageExists. Протухшая строка с тем же именем
// предварительно удаляется, освобождая имя.
func (s *PageService) Create(ctx context.Context, name string, req *model.CreatePageRequest) (*model.Page, error) {
	if req.Content == "" {
		return nil, ErrContentRequired
	}

	exists, err := s.Repo.CheckPageExists(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check page existence: %w", err)
	}
	if exists {
		return nil, ErrPageExists
	}

	// Освобождаем имя, если его держит протухшая строка
	if id, ok, err := s.Repo.GetExpiredPageID(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to look up expired page: %w", err)
	} else if ok {
		if err := s.Repo.DeletePageByID(ctx, id); err != nil {
			return nil, fmt.Errorf("failed to reclaim expired page: %w", err)
		}
		s.Logger.Info("Протухшая страница удалена, имя освобождено",
			zap.String("name", name), zap.Int64("id", id))
	}

	content := req.Content
	if !req.Encrypted {
		// Шифротекст непрозрачен, его не трогаем
		content = util.SanitizeHTML(content)
	}

	var deletedAt *int64
	if req.ExpiresInHours > 0 {
		expiry := time.Now().Unix() + int64(req.ExpiresInHours)*3600
		deletedAt = &expiry
	}

	encrypted := 0
	if req.Encrypted {
		encrypted = 1
	}

	var viewOnceOnly *int
	if req.ViewOnceOnly != nil {
		v := 0
		if *req.ViewOnceOnly {
			v = 1
		}
		viewOnceOnly = &v
	}

	page, err := s.Repo.CreatePage(ctx, &repositories.NewPage{
		Name:         name,
		Content:      content,
		Encrypted:    encrypted,
		ViewOnceOnly: viewOnceOnly,
		DeletedAt:    deletedAt,
	})
	if err != nil {
		// Гонка между проверкой и вставкой: уникальный индекс —
		// единственный арбитр, нарушение мапится в тот же конфликт
		if errors.Is(err, repositories.ErrUniqueViolation) {
			return nil, ErrPageExists
		}
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return page, nil
}

// GetByName возвращает живую страницу по имени.
// Страница view_once_only удаляется хранилищем при первом же чтении,
// повторный запрос того же имени вернёт ErrPageNotFound.
func (s *PageService) GetByName(ctx context.Context, name string) (*model.Page, error) {
	page, err := s.Repo.GetPageByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return page, nil
}

// GetRecent возвращает не более count живых страниц,
// отсортированных по времени обновления по убыванию.
func (s *PageService) GetRecent(ctx context.Context, count int) ([]*model.Page, error) {
	if count <= 0 {
		count = s.RecentLimit
	}
	return s.Repo.GetRecentPages(ctx, count)
}

// Ping проверяет доступность хранилища.
func (s *PageService) Ping(ctx context.Context) error {
	return s.Repo.Ping(ctx)
}
