package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Totarae/PageBin/internal/database"
	"github.com/Totarae/PageBin/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrUniqueViolation сигнализирует о нарушении уникальности имени страницы.
// Сервисный слой транслирует её в конфликт, видимый клиенту.
var ErrUniqueViolation = errors.New("page name unique violation")

// displayLayout — формат отображения временных меток (UTC),
// совпадает с datetime(..., 'unixepoch') в SQLite.
const displayLayout = "2006-01-02 15:04:05"

// NewPage описывает параметры вставки новой страницы.
type NewPage struct {
	Name         string
	Content      string
	Encrypted    int
	ViewOnceOnly *int
	DeletedAt    *int64
}

// PageRepositoryInterface определяет методы репозитория страниц.
type PageRepositoryInterface interface {
	GetPageByName(ctx context.Context, name string) (*model.Page, error)
	GetRecentPages(ctx context.Context, limit int) ([]*model.Page, error)
	CheckPageExists(ctx context.Context, name string) (bool, error)
	GetExpiredPageID(ctx context.Context, name string) (int64, bool, error)
	DeletePageByID(ctx context.Context, id int64) error
	CreatePage(ctx context.Context, page *NewPage) (*model.Page, error)
	IncrementCounter(ctx context.Context) (int64, error)
	Ping(ctx context.Context) error
}

// PageRepository реализует PageRepositoryInterface с использованием PostgreSQL.
type PageRepository struct {
	DB database.DBInterface
}

// NewPageRepository создаёт новый экземпляр PageRepository.
func NewPageRepository(db database.DBInterface) *PageRepository {
	return &PageRepository{DB: db}
}

// pageRow — строка таблицы pages до преобразования эпох в строки.
type pageRow struct {
	id           int64
	name         string
	content      string
	encrypted    int
	viewOnceOnly *int
	createdAt    int64
	updatedAt    int64
	deletedAt    *int64
}

func (r *pageRow) toModel() *model.Page {
	p := &model.Page{
		ID:           r.id,
		Name:         r.name,
		Content:      r.content,
		Encrypted:    r.encrypted,
		ViewOnceOnly: r.viewOnceOnly,
		CreatedAt:    formatEpoch(r.createdAt),
		UpdatedAt:    formatEpoch(r.updatedAt),
	}
	if r.deletedAt != nil {
		s := formatEpoch(*r.deletedAt)
		p.DeletedAt = &s
	}
	return p
}

func formatEpoch(sec int64) string {
	return time.Unix(sec, 0).UTC().Format(displayLayout)
}

// GetPageByName извлекает живую страницу по имени.
// Страница с view_once_only удаляется тем же запросом:
// чтение и сжигание выполняются атомарно, одним стейтментом.
func (r *PageRepository) GetPageByName(ctx context.Context, name string) (*model.Page, error) {
	query := `WITH target AS (
                  SELECT id, name, content, encrypted, view_once_only, created_at, updated_at, deleted_at
                  FROM pages
                  WHERE name = $1 AND (deleted_at IS NULL OR deleted_at > $2)
              ), burned AS (
                  DELETE FROM pages
                  WHERE id IN (SELECT id FROM target WHERE view_once_only = 1)
              )
              SELECT id, name, content, encrypted, view_once_only, created_at, updated_at, deleted_at
              FROM target`

	row := pageRow{}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, name, time.Now().Unix()).Scan(
		&row.id, &row.name, &row.content, &row.encrypted, &row.viewOnceOnly,
		&row.createdAt, &row.updatedAt, &row.deletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return row.toModel(), nil
}

// GetRecentPages возвращает живые страницы, отсортированные по updated_at по убыванию.
func (r *PageRepository) GetRecentPages(ctx context.Context, limit int) ([]*model.Page, error) {
	query := `SELECT id, name, content, encrypted, view_once_only, created_at, updated_at, deleted_at
              FROM pages
              WHERE deleted_at IS NULL OR deleted_at > $1
              ORDER BY updated_at DESC
              LIMIT $2`

	rows, err := r.DB.(*database.DB).Pool.Query(ctx, query, time.Now().Unix(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent pages: %w", err)
	}
	defer rows.Close()

	var results []*model.Page
	for rows.Next() {
		row := pageRow{}
		err := rows.Scan(&row.id, &row.name, &row.content, &row.encrypted, &row.viewOnceOnly,
			&row.createdAt, &row.updatedAt, &row.deletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		results = append(results, row.toModel())
	}

	return results, rows.Err()
}

// CheckPageExists проверяет, существует ли живая страница с таким именем.
func (r *PageRepository) CheckPageExists(ctx context.Context, name string) (bool, error) {
	var id int64
	query := `SELECT id FROM pages WHERE name = $1 AND (deleted_at IS NULL OR deleted_at > $2)`
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, name, time.Now().Unix()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("database query error: %w", err)
	}
	return true, nil
}

// GetExpiredPageID возвращает id протухшей страницы с данным именем, если такая есть.
func (r *PageRepository) GetExpiredPageID(ctx context.Context, name string) (int64, bool, error) {
	var id int64
	query := `SELECT id FROM pages WHERE name = $1 AND deleted_at IS NOT NULL AND deleted_at <= $2`
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query, name, time.Now().Unix()).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("database query error: %w", err)
	}
	return id, true, nil
}

// DeletePageByID удаляет страницу по id.
func (r *PageRepository) DeletePageByID(ctx context.Context, id int64) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, `DELETE FROM pages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}
	return nil
}

// CreatePage сохраняет новую страницу и возвращает её сохранённое представление.
// Нарушение уникальности имени возвращается как ErrUniqueViolation —
// это единственный сигнал конфликта на пути вставки.
func (r *PageRepository) CreatePage(ctx context.Context, page *NewPage) (*model.Page, error) {
	now := time.Now().Unix()
	query := `INSERT INTO pages (name, content, encrypted, view_once_only, created_at, updated_at, deleted_at)
              VALUES ($1, $2, $3, $4, $5, $5, $6)
              RETURNING id`

	row := pageRow{
		name:         page.Name,
		content:      page.Content,
		encrypted:    page.Encrypted,
		viewOnceOnly: page.ViewOnceOnly,
		createdAt:    now,
		updatedAt:    now,
		deletedAt:    page.DeletedAt,
	}
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query,
		page.Name, page.Content, page.Encrypted, page.ViewOnceOnly, now, page.DeletedAt,
	).Scan(&row.id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUniqueViolation
		}
		return nil, fmt.Errorf("database insert error: %w", err)
	}
	return row.toModel(), nil
}

// IncrementCounter атомарно увеличивает счётчик имён
// и возвращает значение до инкремента.
func (r *PageRepository) IncrementCounter(ctx context.Context) (int64, error) {
	var value int64
	query := `UPDATE appdata SET integer_value = integer_value + 1
              WHERE key = 'page_name_counter'
              RETURNING integer_value - 1`
	err := r.DB.(*database.DB).Pool.QueryRow(ctx, query).Scan(&value)
	if err != nil {
		return 0, fmt.Errorf("failed to increment counter: %w", err)
	}
	return value, nil
}

// Ping проверяет доступность базы данных.
func (r *PageRepository) Ping(ctx context.Context) error {
	_, err := r.DB.(*database.DB).Pool.Exec(ctx, "SELECT 1")
	return err
}
