package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/starcheck-bot/internal/domain"
	"github.com/yourname/starcheck-bot/internal/logger"
	"github.com/yourname/starcheck-bot/internal/metrics"
	"github.com/yourname/starcheck-bot/internal/store"
)

// Суммы кнопок повторяют оригинальные наборы меню.
var (
	menuAmounts   = map[string]float64{"amount_25": 25, "amount_100": 100, "amount_500": 500, "amount_1000": 1000, "amount_2000": 2000, "amount_5000": 5000}
	inlineAmounts = map[string]float64{"inline_amount_100": 100, "inline_amount_300": 300, "inline_amount_500": 500, "inline_amount_1000": 1000, "inline_amount_2000": 2000}
)

func (h *Handler) HandleCallback(ctx context.Context, q *tgbotapi.CallbackQuery) {
	// обязательно отвечаем Telegram
	defer h.api.Request(tgbotapi.NewCallback(q.ID, ""))

	if q.Message == nil || q.From == nil {
		return
	}
	data := q.Data
	chatID := q.Message.Chat.ID
	userID := q.From.ID

	// решения по заявкам: "verify_ok:<id>" / "verify_no:<id>"
	if parts := strings.SplitN(data, ":", 2); len(parts) == 2 {
		switch parts[0] {
		case "verify_ok":
			h.decideVerification(q, parts[1], true)
		case "verify_no":
			h.decideVerification(q, parts[1], false)
		}
		return
	}

	switch data {
	case "back_to_main":
		h.sessions.Clear(chatID) // возврат в меню сбрасывает незавершённый ввод
		h.edit(q, h.mainMenuText(userID, displayName(q.From)), h.mainMenuKB(userID))

	case "create_check":
		h.edit(q, "💰 Выберите сумму чека:", createCheckKB())

	case "my_checks":
		h.edit(q, h.walletText(userID), tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✨ Создать чек", "create_check")),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "back_to_main")),
		))

	case "help":
		h.edit(q, fragmentHelpText(), backToMainKB())

	case "auto_gifts":
		h.edit(q, h.autoGiftsText(userID), autoGiftsKB())

	case "auto_gifts_on", "auto_gifts_off":
		h.autoGifts.Toggle(userID, data == "auto_gifts_on")
		h.edit(q, h.autoGiftsText(userID), autoGiftsKB())

	case "custom_amount":
		h.sessions.Set(chatID, domain.ModeAwaitCustomAmount)
		h.edit(q, "📝 Введите сумму (1-10000):", cancelKB("create_check"))

	case "admin_panel":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.edit(q, h.adminPanelText(), adminPanelKB())

	case "admin_inline_check":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.edit(q, "💰 Выберите сумму для чека:", inlineCheckKB())

	case "inline_custom_amount":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.sessions.Set(chatID, domain.ModeAwaitInlineAmount)
		h.edit(q, "📝 Введите сумму:", cancelKB("admin_inline_check"))

	case "admin_all_checks":
		if !h.admins.IsAdmin(userID) {
			return
		}
		text := h.adminAllChecksText(10)
		if text == "" {
			h.edit(q, "📭 Нет созданных чеков.", cancelKB("admin_panel"))
			return
		}
		h.editHTML(q, text, cancelKB("admin_panel"))

	case "admin_users":
		if !h.admins.IsAdmin(userID) {
			return
		}
		text := h.adminUsersText(10)
		if text == "" {
			h.edit(q, "📭 Нет активных пользователей.", cancelKB("admin_panel"))
			return
		}
		h.editHTML(q, text, cancelKB("admin_panel"))

	case "admin_settings":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.edit(q, h.adminSettingsText(), tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("➕ Добавить админа", "admin_add_admin")),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "admin_panel")),
		))

	case "admin_add_admin":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.sessions.Set(chatID, domain.ModeAwaitAdminID)
		h.edit(q, "📝 Отправьте ID пользователя для добавления в админы:", cancelKB("admin_settings"))

	case "verify_panel":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.edit(q, h.verificationPanelText(), verifyPanelKB())

	case "bot_verifications":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.showPendingVerifications(q)

	case "website_verifications":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.showWebsiteVerifications(q)

	case "clear_website_verifications":
		if !h.admins.IsAdmin(userID) {
			return
		}
		h.verifs.ClearWebsite()
		logger.Info("website verifications cleared", "by", userID)
		h.edit(q, "✅ Верификации очищены.", cancelKB("verify_panel"))

	case "check_verification_status":
		status := "❌ НЕ ВЕРИФИЦИРОВАН"
		if h.verifs.IsVerified(userID) {
			status = "✅ ВЕРИФИЦИРОВАН"
		}
		h.edit(q, fmt.Sprintf("🔐 СТАТУС ВЕРИФИКАЦИИ\n\n👤 Пользователь: %s\n📊 Статус: %s",
			displayName(q.From), status),
			tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⬅️ На главную", "back_to_main"))))

	default:
		if amount, ok := menuAmounts[data]; ok {
			v, _ := h.vouchers.Issue(userID, amount, false)
			metrics.RecordIssue(v.IsGift, false)
			logger.Info("voucher issued", "id", v.ID, "issuer", userID, "amount", amount)
			h.edit(q, fragmentErrText(), backToMainKB())
			return
		}
		if amount, ok := inlineAmounts[data]; ok {
			if !h.admins.IsAdmin(userID) {
				h.edit(q, "❌ Только для администраторов.", cancelKB("back_to_main"))
				return
			}
			v, _ := h.vouchers.Issue(userID, amount, true)
			metrics.RecordIssue(v.IsGift, true)
			logger.Info("inline voucher issued", "id", v.ID, "issuer", userID, "amount", amount)
			h.editHTML(q, inlineCheckCreatedText(v.ID, amount, h.username),
				tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
					tgbotapi.NewInlineKeyboardButtonData("➕ Ещё", "admin_inline_check"),
					tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "admin_panel"),
				)))
		}
	}
}

func (h *Handler) decideVerification(q *tgbotapi.CallbackQuery, id string, approve bool) {
	if !h.admins.IsAdmin(q.From.ID) {
		return
	}
	r, err := h.verifs.Decide(id, q.From.ID, approve)
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.edit(q, "❌ Заявка не найдена.", cancelKB("verify_panel"))
		return
	case errors.Is(err, store.ErrAlreadyDecided):
		h.edit(q, "⚠️ По этой заявке уже принято решение.", cancelKB("verify_panel"))
		return
	case err != nil:
		logger.Error("verification decide failed", "id", id, "err", err)
		h.edit(q, "❌ Не удалось обработать заявку.", cancelKB("verify_panel"))
		return
	}

	verdict := "✅ Заявка одобрена"
	if !approve {
		verdict = "❌ Заявка отклонена"
	}
	logger.Info("verification decided", "id", r.ID, "approved", approve, "by", q.From.ID)
	h.edit(q, fmt.Sprintf("%s\n🆔 %s\n👤 %d", verdict, r.ID, r.UserID), cancelKB("bot_verifications"))
}

func (h *Handler) showPendingVerifications(q *tgbotapi.CallbackQuery) {
	pending := h.verifs.PendingSession()
	if len(pending) == 0 {
		h.edit(q, "📭 Нет заявок из бота.", cancelKB("verify_panel"))
		return
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(pending)+1)
	for _, r := range pending {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ "+r.ID, "verify_ok:"+r.ID),
			tgbotapi.NewInlineKeyboardButtonData("❌ "+r.ID, "verify_no:"+r.ID),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "verify_panel")))

	h.editHTML(q, pendingVerificationsText(pending), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (h *Handler) showWebsiteVerifications(q *tgbotapi.CallbackQuery) {
	list := h.verifs.RecentWebsite(20)
	if len(list) == 0 {
		h.edit(q, "🌐 Нет верификаций с сайта.", cancelKB("verify_panel"))
		return
	}
	h.editHTML(q, websiteVerificationsText(list), tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗑 Очистить", "clear_website_verifications"),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Обновить", "website_verifications"),
		),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "verify_panel")),
	))
}

func (h *Handler) sendAdminPanel(chatID int64) {
	h.replyKB(chatID, h.adminPanelText(), adminPanelKB())
}

func (h *Handler) sendVerificationPanel(chatID int64) {
	h.replyKB(chatID, h.verificationPanelText(), verifyPanelKB())
}

// --- клавиатуры ---

func createCheckKB() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("25 ⭐", "amount_25"),
			tgbotapi.NewInlineKeyboardButtonData("100 ⭐", "amount_100"),
			tgbotapi.NewInlineKeyboardButtonData("500 ⭐", "amount_500"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("1000 ⭐", "amount_1000"),
			tgbotapi.NewInlineKeyboardButtonData("2000 ⭐", "amount_2000"),
			tgbotapi.NewInlineKeyboardButtonData("5000 ⭐", "amount_5000"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("💰 Другая сумма", "custom_amount"),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "back_to_main"),
		),
	)
}

func inlineCheckKB() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("100 ⭐", "inline_amount_100"),
			tgbotapi.NewInlineKeyboardButtonData("300 ⭐", "inline_amount_300"),
			tgbotapi.NewInlineKeyboardButtonData("500 ⭐", "inline_amount_500"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("1000 ⭐", "inline_amount_1000"),
			tgbotapi.NewInlineKeyboardButtonData("2000 ⭐", "inline_amount_2000"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Другая сумма", "inline_custom_amount"),
			tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "admin_panel"),
		),
	)
}

func adminPanelKB() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✨ Создать чек", "admin_inline_check")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⚙️ Настройки", "admin_settings")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📋 Все чеки", "admin_all_checks")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("👥 Пользователи", "admin_users")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🔐 Верификации", "verify_panel")),
	)
}

func verifyPanelKB() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📋 Из бота", "bot_verifications")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🌐 С сайта", "website_verifications")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Work-панель", "admin_panel")),
	)
}

func autoGiftsKB() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Включить", "auto_gifts_on"),
			tgbotapi.NewInlineKeyboardButtonData("❌ Выключить", "auto_gifts_off"),
		),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "back_to_main")),
	)
}

func cancelKB(target string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", target),
	))
}
