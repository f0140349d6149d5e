package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/Totarae/PageBin/internal/handlers"
	"github.com/Totarae/PageBin/internal/model"
	"github.com/Totarae/PageBin/internal/service"
	"go.uber.org/zap"
)

// ExampleHandler_NextName демонстрирует подбор свободного имени страницы.
func ExampleHandler_NextName() {
	repo := newStubRepo()
	logger := zap.NewNop()
	pages := service.NewPageService(repo, logger, 0)
	suggestions := service.NewSuggestionService(repo, logger)

	h := handlers.NewHandler(pages, suggestions, logger)

	req := httptest.NewRequest(http.MethodGet, "/api/suggestions/next-name", nil)
	rec := httptest.NewRecorder()

	h.NextName(rec, req)
	resp := rec.Result()
	defer resp.Body.Close()

	var suggestion model.SuggestionResponse
	_ = json.NewDecoder(resp.Body).Decode(&suggestion)

	fmt.Println(resp.StatusCode)
	fmt.Println(suggestion.Value)

	// Output:
	// 200
	// a
}
