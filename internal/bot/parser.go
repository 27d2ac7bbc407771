package bot

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Границы суммы чека, как в пользовательском сценарии "Другая сумма".
const (
	minCheckAmount = 0     // строго больше
	maxCheckAmount = 10000 // включительно
)

var (
	errNotANumber = errors.New("not a number")
	errOutOfRange = errors.New("amount out of range")
)

// parseAmount разбирает свободный ввод суммы: "150", "99.5", "99,5".
func parseAmount(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotANumber
	}
	if v <= minCheckAmount || v > maxCheckAmount {
		return 0, errOutOfRange
	}
	return v, nil
}

func amountErrText(err error) string {
	if errors.Is(err, errOutOfRange) {
		return "❌ Сумма должна быть от 1 до 10000."
	}
	return "❌ Введите корректное число."
}

// fmtStars печатает сумму без хвостовых нулей: 100, 99.5, 0.25.
func fmtStars(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
