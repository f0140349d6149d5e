package model

// CreatePageRequest представляет тело запроса на создание страницы.
type CreatePageRequest struct {
	Content        string `json:"content"`
	Encrypted      bool   `json:"encrypted,omitempty"`
	ExpiresInHours int    `json:"expires_in_hours,omitempty"`
	ViewOnceOnly   *bool  `json:"view_once_only,omitempty"`
}

// SuggestionResponse представляет ответ с предложенным именем страницы.
type SuggestionResponse struct {
	Value string `json:"value"`
}

// ErrorResponse представляет структуру ответа с ошибкой.
type ErrorResponse struct {
	Error string `json:"error"`
}
