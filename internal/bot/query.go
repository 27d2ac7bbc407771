package bot

import (
	"regexp"
	"strconv"
	"strings"
)

// Inline-запрос либо создаёт чек ("@бот 300", только для админов), либо
// ищет существующий чек по ID.
type inlineAction int

const (
	inlineHint inlineAction = iota
	inlineWrongBot
	inlineNeedAdmin
	inlineIssue
	inlineLookup
)

type inlineRoute struct {
	Action    inlineAction
	Amount    float64
	VoucherID string
}

var reBotAmount = regexp.MustCompile(`^@?([A-Za-z0-9_]+)\s+([0-9]+(?:[.,][0-9]+)?)$`)

// routeInlineQuery — чистая функция разбора inline-запроса; побочные
// эффекты (выпуск чека, поиск) выполняет вызывающая сторона.
func routeInlineQuery(query, botUsername string, isAdmin bool) inlineRoute {
	query = strings.TrimSpace(query)

	if m := reBotAmount.FindStringSubmatch(query); m != nil {
		if !strings.EqualFold(m[1], botUsername) {
			return inlineRoute{Action: inlineWrongBot}
		}
		if !isAdmin {
			return inlineRoute{Action: inlineNeedAdmin}
		}
		raw := strings.ReplaceAll(m[2], ",", ".")
		amount, err := strconv.ParseFloat(raw, 64)
		if err != nil || amount <= 0 {
			return inlineRoute{Action: inlineHint}
		}
		return inlineRoute{Action: inlineIssue, Amount: amount}
	}

	if len(query) >= 4 {
		return inlineRoute{Action: inlineLookup, VoucherID: strings.ToUpper(query)}
	}
	return inlineRoute{Action: inlineHint}
}
