package service

import "errors"

// Ошибки сервисного слоя, транслируемые обработчиками в HTTP-коды.
var (
	// ErrContentRequired — в запросе на создание отсутствует содержимое.
	ErrContentRequired = errors.New("content is required")
	// ErrPageExists — живая страница с таким именем уже существует.
	ErrPageExists = errors.New("page already exists")
	// ErrPageNotFound — живой страницы с таким именем нет.
	ErrPageNotFound = errors.New("page not found")
	// ErrNameExhausted — не удалось подобрать свободное имя за отведённое число попыток.
	ErrNameExhausted = errors.New("unable to generate unique page name")
)
