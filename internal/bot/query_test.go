package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteInlineQueryIssue(t *testing.T) {
	r := routeInlineQuery("mybot 250", "mybot", true)
	assert.Equal(t, inlineIssue, r.Action)
	assert.Equal(t, 250.0, r.Amount)

	// с собакой и запятой в сумме
	r = routeInlineQuery("@MyBot 99,5", "mybot", true)
	assert.Equal(t, inlineIssue, r.Action)
	assert.Equal(t, 99.5, r.Amount)
}

func TestRouteInlineQueryNeedAdmin(t *testing.T) {
	r := routeInlineQuery("mybot 250", "mybot", false)
	assert.Equal(t, inlineNeedAdmin, r.Action)
}

func TestRouteInlineQueryWrongBot(t *testing.T) {
	r := routeInlineQuery("otherbot 250", "mybot", true)
	assert.Equal(t, inlineWrongBot, r.Action)
}

func TestRouteInlineQueryLookup(t *testing.T) {
	r := routeInlineQuery("ab12cd34", "mybot", false)
	assert.Equal(t, inlineLookup, r.Action)
	assert.Equal(t, "AB12CD34", r.VoucherID)
}

func TestRouteInlineQueryHint(t *testing.T) {
	// слишком короткий запрос не считается ID
	r := routeInlineQuery("ab1", "mybot", true)
	assert.Equal(t, inlineHint, r.Action)

	r = routeInlineQuery("", "mybot", true)
	assert.Equal(t, inlineHint, r.Action)

	// нулевая сумма от админа — подсказка, а не выпуск
	r = routeInlineQuery("mybot 0", "mybot", true)
	assert.Equal(t, inlineHint, r.Action)
}
