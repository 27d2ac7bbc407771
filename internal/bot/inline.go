package bot

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/starcheck-bot/internal/logger"
	"github.com/yourname/starcheck-bot/internal/metrics"
)

const inlineImageURL = "https://avatars.mds.yandex.net/i?id=7e270ad8b2182e1d142d7b9c650f393d728fc331-7051980-images-thumbs&n=13"

func (h *Handler) HandleInlineQuery(ctx context.Context, q *tgbotapi.InlineQuery) {
	isAdmin := h.admins.IsAdmin(q.From.ID)
	route := routeInlineQuery(q.Query, h.username, isAdmin)

	var results []interface{}
	switch route.Action {
	case inlineWrongBot:
		results = append(results, hintArticle("wrong_bot",
			"❗ Неверный юзернейм",
			fmt.Sprintf("Используйте @%s <сумма>", h.username),
			fmt.Sprintf("Формат: @%s 100", h.username)))

	case inlineNeedAdmin:
		results = append(results, hintArticle("no_admin",
			"❌ Ошибка",
			"Требуются права администратора",
			"❌ У вас нет прав для создания чеков."))

	case inlineIssue:
		v, link := h.vouchers.Issue(q.From.ID, route.Amount, true)
		metrics.RecordIssue(v.IsGift, true)
		logger.Info("inline voucher issued", "id", v.ID, "issuer", q.From.ID, "amount", v.Amount)
		results = append(results, checkPhotoResult(v.ID,
			fmt.Sprintf("✨ Чек на %s ⭐", fmtStars(v.Amount)), v.Amount, link))

	case inlineLookup:
		if v, ok := h.vouchers.Lookup(route.VoucherID); ok && !v.Claimed() {
			results = append(results, checkPhotoResult(v.ID,
				"🎁 Чек "+v.ID, v.Amount, h.vouchers.Link(v.ID)))
		}
	}

	if len(results) == 0 {
		if isAdmin {
			results = append(results, hintArticle("admin_help",
				"👑 Создание чека",
				fmt.Sprintf("Введите: @%s <сумма>", h.username),
				fmt.Sprintf("📱 Введите @%s 300 для создания чека.", h.username)))
		} else {
			results = append(results, hintArticle("user_help",
				"❌ Ошибка",
				"Требуются права администратора",
				"❌ У вас нет прав для создания чеков."))
		}
	}

	if _, err := h.api.Request(tgbotapi.InlineConfig{
		InlineQueryID: q.ID,
		Results:       results,
		IsPersonal:    true,
		CacheTime:     1,
	}); err != nil {
		logger.Error("inline answer failed", "err", err)
	}
}

func hintArticle(id, title, description, messageText string) tgbotapi.InlineQueryResultArticle {
	a := tgbotapi.NewInlineQueryResultArticle(id, title, messageText)
	a.Description = description
	return a
}

func checkPhotoResult(checkID, title string, amount float64, link string) tgbotapi.InlineQueryResultPhoto {
	kb := tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonURL("🎁 Получить", link),
	))
	photo := tgbotapi.NewInlineQueryResultPhotoWithThumb(checkID, inlineImageURL, inlineImageURL)
	photo.Title = title
	photo.Caption = fmt.Sprintf("🎁 Чек на ⭐️%s Звёзд\nID: %s", fmtStars(amount), checkID)
	photo.ReplyMarkup = &kb
	return photo
}
