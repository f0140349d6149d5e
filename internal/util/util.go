package util

import "github.com/microcosm-cc/bluemonday"

// Политика разрешает обычную разметку пользовательского контента,
// но вырезает скрипты и активные элементы.
var sanitizePolicy = bluemonday.UGCPolicy()

// EncodeBase26 кодирует неотрицательное число в биективную
// 26-ричную запись строчными латинскими буквами:
// 0 -> "a", 25 -> "z", 26 -> "aa" и так далее.
// Каждому числу соответствует ровно одна строка.
func EncodeBase26(num int64) string {
	if num == 0 {
		return "a"
	}

	var buf []byte
	n := num
	for n >= 0 {
		buf = append([]byte{byte('a' + n%26)}, buf...)
		n = n/26 - 1
		if n < 0 {
			break
		}
	}
	return string(buf)
}

// SanitizeHTML вырезает из текста активный HTML,
// чтобы последующий рендеринг не исполнил внедрённый скрипт.
func SanitizeHTML(content string) string {
	return sanitizePolicy.Sanitize(content)
}
