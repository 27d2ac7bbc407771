package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/starcheck-bot/internal/logger"
	"github.com/yourname/starcheck-bot/internal/metrics"
)

func (h *Handler) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	userID := msg.From.ID

	switch msg.Command() {
	case "start":
		// команда всегда прерывает незавершённый сценарий
		h.sessions.Clear(chatID)

		if h.admins.IsAdmin(userID) {
			h.sendAdminPanel(chatID)
			return
		}
		if args := strings.TrimSpace(msg.CommandArguments()); strings.HasPrefix(args, "check_") {
			h.claimCheck(chatID, userID, strings.TrimPrefix(args, "check_"))
			return
		}
		h.sendMainMenu(chatID, userID, msg.From)

	case "admin":
		if !h.admins.IsAdmin(userID) {
			h.reply(chatID, "❌ У вас нет прав администратора.")
			return
		}
		h.sendAdminPanel(chatID)

	case "setadmin":
		h.handleSetAdmin(chatID, msg.From, msg.CommandArguments())

	case "help":
		h.replyKB(chatID, fragmentHelpText(), backToMainKB())

	case "verification":
		if h.admins.IsAdmin(userID) {
			h.sendVerificationPanel(chatID)
			return
		}
		h.replyKB(chatID, verificationInfoText(), tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📋 Проверить статус", "check_verification_status")),
			tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "back_to_main")),
		))

	case "verify":
		h.handleVerifySubmit(chatID, userID, msg.CommandArguments())

	case "cancel":
		h.sessions.Clear(chatID)
		h.reply(chatID, "❌ Действие отменено.")

	default:
		h.reply(chatID, "Неизвестная команда. Напишите /help")
	}
}

// handleVerifySubmit принимает заявку на верификацию прямо из чата:
// /verify +79991234567 123456. Те же правила, что и у формы на сайте.
func (h *Handler) handleVerifySubmit(chatID, userID int64, args string) {
	parts := strings.Fields(args)
	if len(parts) != 2 {
		h.reply(chatID, "📝 Использование: /verify <телефон> <код>\nПример: /verify +79991234567 123456")
		return
	}
	phone, code := parts[0], parts[1]
	if !strings.HasPrefix(phone, "+") {
		h.reply(chatID, "❌ Телефон должен начинаться с +")
		return
	}
	if len(code) != 6 || strings.Trim(code, "0123456789") != "" {
		h.reply(chatID, "❌ Код должен состоять из 6 цифр.")
		return
	}

	id := h.verifs.SubmitFromSession(userID, phone, code)
	metrics.RecordVerification("bot")
	logger.Info("session verification received", "id", id, "user", userID)
	h.reply(chatID, fmt.Sprintf("✅ Заявка принята!\n🆔 Номер заявки: %s\n⏱ Время проверки: 5-15 минут.", id))
}

func (h *Handler) handleSetAdmin(chatID int64, from *tgbotapi.User, args string) {
	secret := strings.TrimSpace(args)
	if secret == "" {
		h.reply(chatID, "📝 Использование: /setadmin <секретный_ключ>\nСекретный ключ узнайте у разработчика.")
		return
	}
	if secret != h.cfg.AdminSecret {
		h.reply(chatID, "❌ Неверный секретный ключ.")
		return
	}
	h.admins.Grant(from.ID, from.UserName)
	logger.Info("admin granted via secret", "id", from.ID)
	h.reply(chatID, "✅ Вы стали администратором!\nИспользуйте /admin для доступа к панели.")
}

func (h *Handler) sendMainMenu(chatID, userID int64, from *tgbotapi.User) {
	h.replyKB(chatID, h.mainMenuText(userID, displayName(from)), h.mainMenuKB(userID))
}

func (h *Handler) mainMenuKB(userID int64) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🐝 Вывод средств", "help")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("👛 Мой кошелёк", "my_checks")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("💰 Купить звёзды", "create_check")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🤖 Автоскупщик", "auto_gifts")),
	}
	if h.admins.IsAdmin(userID) {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👑 Work-панель", "admin_panel")))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func (h *Handler) mainMenuText(userID int64, name string) string {
	return fmt.Sprintf(`⭐️ @%s — сервис покупки звёзд Telegram

👤 Ваш профиль:
├ Имя: %s
└ Баланс: %s ⭐

Покупай звёзды быстро и безопасно!`, h.username, name, fmtStars(h.wallets.Balance(userID)))
}

func displayName(u *tgbotapi.User) string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = "@" + u.UserName
	}
	return name
}
