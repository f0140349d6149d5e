package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Totarae/PageBin/internal/middleware"
	"github.com/Totarae/PageBin/internal/model"
	"github.com/Totarae/PageBin/internal/service"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler объединяет HTTP-обработчики API страниц.
type Handler struct {
	Pages       *service.PageService
	Suggestions *service.SuggestionService
	Logger      *zap.Logger
}

// NewHandler создаёт новый экземпляр Handler.
func NewHandler(pages *service.PageService, suggestions *service.SuggestionService, logger *zap.Logger) *Handler {
	return &Handler{Pages: pages, Suggestions: suggestions, Logger: logger}
}

func writeJSON(res http.ResponseWriter, status int, payload any) {
	res.Header().Set("Content-Type", "application/json; charset=utf-8")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(payload)
}

func writeError(res http.ResponseWriter, status int, message string) {
	writeJSON(res, status, model.ErrorResponse{Error: message})
}

// GetPage обрабатывает GET /api/pages/{name}.
// Страница view-once при этом чтении уничтожается.
func (h *Handler) GetPage(res http.ResponseWriter, req *http.Request) {
	name := chi.URLParam(req, "name")
	if name == "" {
		writeError(res, http.StatusBadRequest, "Missing page name")
		return
	}

	page, err := h.Pages.GetByName(req.Context(), name)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			writeError(res, http.StatusNotFound, "Page not found")
			return
		}
		h.Logger.Error("Не удалось получить страницу",
			zap.String("name", name),
			zap.String("request_id", middleware.RequestIDFromContext(req.Context())),
			zap.Error(err),
		)
		writeError(res, http.StatusInternalServerError, "Failed to get page")
		return
	}

	writeJSON(res, http.StatusOK, page)
}

// CreatePage обрабатывает POST /api/pages/{name}.
func (h *Handler) CreatePage(res http.ResponseWriter, req *http.Request) {
	start := time.Now()
	name := chi.URLParam(req, "name")
	if name == "" {
		writeError(res, http.StatusBadRequest, "Missing page name")
		return
	}

	var body model.CreatePageRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		writeError(res, http.StatusBadRequest, "Content is required")
		return
	}
	if body.Content == "" {
		writeError(res, http.StatusBadRequest, "Content is required")
		return
	}

	page, err := h.Pages.Create(req.Context(), name, &body)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrContentRequired):
			writeError(res, http.StatusBadRequest, "Content is required")
		case errors.Is(err, service.ErrPageExists):
			writeError(res, http.StatusConflict, fmt.Sprintf("Page %q already exists", name))
		default:
			h.Logger.Error("Не удалось создать страницу",
				zap.String("name", name),
				zap.Bool("encrypted", body.Encrypted),
				zap.Int("content_length", len(body.Content)),
				zap.Int("expires_in_hours", body.ExpiresInHours),
				zap.String("request_id", middleware.RequestIDFromContext(req.Context())),
				zap.String("user_agent", req.UserAgent()),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
			writeError(res, http.StatusInternalServerError, "Failed to create page")
		}
		return
	}

	writeJSON(res, http.StatusCreated, page)
}

// GetRecents обрабатывает GET /api/recents?count=N.
func (h *Handler) GetRecents(res http.ResponseWriter, req *http.Request) {
	count, _ := strconv.Atoi(req.URL.Query().Get("count"))

	pages, err := h.Pages.GetRecent(req.Context(), count)
	if err != nil {
		h.Logger.Error("Не удалось получить недавние страницы",
			zap.Int("count", count),
			zap.String("request_id", middleware.RequestIDFromContext(req.Context())),
			zap.Error(err),
		)
		writeError(res, http.StatusInternalServerError, "Failed to get recent pages")
		return
	}
	if pages == nil {
		pages = []*model.Page{}
	}

	writeJSON(res, http.StatusOK, pages)
}

// NextName обрабатывает GET /api/suggestions/next-name.
func (h *Handler) NextName(res http.ResponseWriter, req *http.Request) {
	name, err := h.Suggestions.NextName(req.Context())
	if err != nil {
		h.Logger.Error("Не удалось подобрать имя страницы",
			zap.String("endpoint", "/api/suggestions/next-name"),
			zap.String("request_id", middleware.RequestIDFromContext(req.Context())),
			zap.String("user_agent", req.UserAgent()),
			zap.Error(err),
		)
		writeError(res, http.StatusInternalServerError, "Failed to get next page name")
		return
	}

	writeJSON(res, http.StatusOK, model.SuggestionResponse{Value: name})
}

// Health обрабатывает GET /api/health.
func (h *Handler) Health(res http.ResponseWriter, req *http.Request) {
	if err := h.Pages.Ping(req.Context()); err != nil {
		h.Logger.Error("База данных недоступна", zap.Error(err))
		writeError(res, http.StatusInternalServerError, "Database unavailable")
		return
	}
	writeJSON(res, http.StatusOK, map[string]string{"status": "ok"})
}
