package model

// Page представляет сохранённую страницу.
// Временные метки отдаются наружу уже в виде строк UTC,
// эпохи в секундах наружу не выходят.
type Page struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Content      string  `json:"content"`
	Encrypted    int     `json:"encrypted"`
	ViewOnceOnly *int    `json:"view_once_only"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	DeletedAt    *string `json:"deleted_at"`
}
