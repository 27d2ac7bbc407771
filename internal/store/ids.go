package store

import "crypto/rand"

const idCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// newID возвращает короткий токен вида "7K2FQ9ZD": его можно набрать руками
// и вставить в deep link. Уникальность проверяет вызывающая сторона.
func newID(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // /dev/urandom недоступен — дальше работать нельзя
	}
	for i, b := range buf {
		buf[i] = idCharset[int(b)%len(idCharset)]
	}
	return string(buf)
}
