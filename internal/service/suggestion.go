package service

import (
	"context"
	"fmt"

	"github.com/Totarae/PageBin/internal/util"
	"go.uber.org/zap"
)

// maxSuggestionAttempts ограничивает перебор кандидатов.
// Счётчик монотонный, так что потолок на практике недостижим:
// коллизия возможна только с именем, созданным вручную.
const maxSuggestionAttempts = 100

// SuggestionService подбирает свободное короткое имя для новой страницы.
type SuggestionService struct {
	Repo   Repository
	Logger *zap.Logger
}

func NewSuggestionService(repo Repository, logger *zap.Logger) *SuggestionService {
	return &SuggestionService{Repo: repo, Logger: logger}
}

// NextName атомарно инкрементирует счётчик, кодирует прежнее значение
// в биективную 26-ричную запись и проверяет, что имя не занято живой
// страницей. Значения счётчика никогда не переиспользуются.
func (s *SuggestionService) NextName(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxSuggestionAttempts; attempt++ {
		value, err := s.Repo.IncrementCounter(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to increment name counter: %w", err)
		}

		candidate := util.EncodeBase26(value)

		exists, err := s.Repo.CheckPageExists(ctx, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check candidate name: %w", err)
		}
		if !exists {
			return candidate, nil
		}

		s.Logger.Info("Имя-кандидат занято, пробуем следующее",
			zap.String("candidate", candidate), zap.Int64("counter", value))
	}
	return "", ErrNameExhausted
}
