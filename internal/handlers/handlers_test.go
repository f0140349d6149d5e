package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Totarae/PageBin/internal/handlers"
	"github.com/Totarae/PageBin/internal/model"
	"github.com/Totarae/PageBin/internal/repositories"
	"github.com/Totarae/PageBin/internal/router"
	"github.com/Totarae/PageBin/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// stubRepo — хранилище в памяти для тестов обработчиков.
type stubRepo struct {
	pages   map[string]*model.Page
	counter int64
}

func newStubRepo() *stubRepo {
	return &stubRepo{pages: make(map[string]*model.Page)}
}

func (s *stubRepo) GetPageByName(ctx context.Context, name string) (*model.Page, error) {
	p, ok := s.pages[name]
	if !ok {
		return nil, nil
	}
	if p.ViewOnceOnly != nil && *p.ViewOnceOnly == 1 {
		delete(s.pages, name)
	}
	return p, nil
}

func (s *stubRepo) GetRecentPages(ctx context.Context, limit int) ([]*model.Page, error) {
	var result []*model.Page
	for _, p := range s.pages {
		if len(result) >= limit {
			break
		}
		result = append(result, p)
	}
	return result, nil
}

func (s *stubRepo) CheckPageExists(ctx context.Context, name string) (bool, error) {
	_, ok := s.pages[name]
	return ok, nil
}

func (s *stubRepo) GetExpiredPageID(ctx context.Context, name string) (int64, bool, error) {
	return 0, false, nil
}

func (s *stubRepo) DeletePageByID(ctx context.Context, id int64) error {
	return nil
}

func (s *stubRepo) CreatePage(ctx context.Context, page *repositories.NewPage) (*model.Page, error) {
	if _, ok := s.pages[page.Name]; ok {
		return nil, repositories.ErrUniqueViolation
	}
	now := time.Now().UTC().Format("2006-01-02 15:04:05")
	p := &model.Page{
		ID:           int64(len(s.pages) + 1),
		Name:         page.Name,
		Content:      page.Content,
		Encrypted:    page.Encrypted,
		ViewOnceOnly: page.ViewOnceOnly,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.pages[page.Name] = p
	return p, nil
}

func (s *stubRepo) IncrementCounter(ctx context.Context) (int64, error) {
	v := s.counter
	s.counter++
	return v, nil
}

func (s *stubRepo) Ping(ctx context.Context) error {
	return nil
}

func setupTestRouter(repo service.Repository) *chi.Mux {
	logger, _ := zap.NewDevelopment()
	pages := service.NewPageService(repo, logger, 0)
	suggestions := service.NewSuggestionService(repo, logger)
	handler := handlers.NewHandler(pages, suggestions, logger)
	return router.NewRouter(handler, logger)
}

func TestGetPage(t *testing.T) {
	repo := newStubRepo()
	repo.pages["greeting"] = &model.Page{ID: 1, Name: "greeting", Content: "hello"}
	r := setupTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/pages/greeting", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var page model.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, "greeting", page.Name)
	assert.Equal(t, "hello", page.Content)
}

func TestGetPage_NotFound(t *testing.T) {
	r := setupTestRouter(newStubRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/pages/nonexistent", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body model.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Page not found", body.Error)
}

// Первое чтение view-once отдаёт содержимое, второе — 404
func TestGetPage_ViewOnce(t *testing.T) {
	repo := newStubRepo()
	once := 1
	repo.pages["burn"] = &model.Page{ID: 1, Name: "burn", Content: "see me once", ViewOnceOnly: &once}
	r := setupTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/pages/burn", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	resp := w.Result()
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/api/pages/burn", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	resp = w.Result()
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreatePage(t *testing.T) {
	r := setupTestRouter(newStubRepo())

	body := `{"content":"первый паст"}`
	req := httptest.NewRequest(http.MethodPost, "/api/pages/mypage", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var page model.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, "mypage", page.Name)
	assert.NotEmpty(t, page.CreatedAt)
	assert.Nil(t, page.DeletedAt)
}

func TestCreatePage_Conflict(t *testing.T) {
	repo := newStubRepo()
	repo.pages["taken"] = &model.Page{ID: 1, Name: "taken", Content: "old"}
	r := setupTestRouter(repo)

	body := `{"content":"new content"}`
	req := httptest.NewRequest(http.MethodPost, "/api/pages/taken", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreatePage_MissingContent(t *testing.T) {
	r := setupTestRouter(newStubRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/pages/empty", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreatePage_InvalidJSON(t *testing.T) {
	r := setupTestRouter(newStubRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/pages/bad", strings.NewReader(`{broken`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetRecents(t *testing.T) {
	repo := newStubRepo()
	repo.pages["one"] = &model.Page{ID: 1, Name: "one"}
	repo.pages["two"] = &model.Page{ID: 2, Name: "two"}
	r := setupTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/recents", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pages []*model.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pages))
	assert.Len(t, pages, 2)
}

func TestGetRecents_CountParam(t *testing.T) {
	repo := newStubRepo()
	repo.pages["one"] = &model.Page{ID: 1, Name: "one"}
	repo.pages["two"] = &model.Page{ID: 2, Name: "two"}
	repo.pages["three"] = &model.Page{ID: 3, Name: "three"}
	r := setupTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/recents?count=2", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var pages []*model.Page
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&pages))
	assert.Len(t, pages, 2)
}

// Подсказки идут по алфавиту: a, b, ...
func TestNextName(t *testing.T) {
	r := setupTestRouter(newStubRepo())

	for _, want := range []string{"a", "b", "c"} {
		req := httptest.NewRequest(http.MethodGet, "/api/suggestions/next-name", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		resp := w.Result()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var suggestion model.SuggestionResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&suggestion))
		resp.Body.Close()
		assert.Equal(t, want, suggestion.Value)
	}
}

// Подсказка перепрыгивает вручную созданную страницу
func TestNextName_SkipsManuallyTakenName(t *testing.T) {
	repo := newStubRepo()
	repo.pages["a"] = &model.Page{ID: 1, Name: "a"}
	r := setupTestRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/suggestions/next-name", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var suggestion model.SuggestionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&suggestion))
	assert.Equal(t, "b", suggestion.Value)
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(newStubRepo())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
