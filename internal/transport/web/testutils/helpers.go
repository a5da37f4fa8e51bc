package testutils

import (
	"net/http"
	"strings"
)

// GenerateOverBytesUnderRunes генерирует строку, длина которой в рунах будет всегда меньше длины в байтах.
func GenerateOverBytesUnderRunes(count int) string {
	symbol := "😁" // 4 байта, 1 руна
	return strings.Repeat(symbol, count)
}

// FindCookie возвращает последнюю cookie ответа с именем name или nil. Как и в браузере,
// последняя Set-Cookie перекрывает предыдущие.
func FindCookie(resp *http.Response, name string) *http.Cookie {
	var found *http.Cookie
	for _, cookie := range resp.Cookies() {
		if cookie.Name == name {
			found = cookie
		}
	}
	return found
}
