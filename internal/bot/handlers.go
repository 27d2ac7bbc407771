package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourname/starcheck-bot/internal/config"
	"github.com/yourname/starcheck-bot/internal/domain"
	"github.com/yourname/starcheck-bot/internal/logger"
	"github.com/yourname/starcheck-bot/internal/metrics"
	"github.com/yourname/starcheck-bot/internal/store"
)

type Handler struct {
	api      *tgbotapi.BotAPI
	cfg      config.Config
	username string // username бота без @

	wallets   *store.Wallets
	vouchers  *store.Vouchers
	admins    *store.Admins
	verifs    *store.Verifications
	sessions  *store.Sessions
	autoGifts *store.AutoGifts
}

func NewHandler(
	api *tgbotapi.BotAPI,
	cfg config.Config,
	username string,
	w *store.Wallets,
	v *store.Vouchers,
	a *store.Admins,
	vf *store.Verifications,
	s *store.Sessions,
	g *store.AutoGifts,
) *Handler {
	return &Handler{
		api: api, cfg: cfg, username: username,
		wallets: w, vouchers: v, admins: a, verifs: vf, sessions: s, autoGifts: g,
	}
}

func (h *Handler) HandleUpdate(ctx context.Context, upd tgbotapi.Update) {
	if upd.InlineQuery != nil {
		h.HandleInlineQuery(ctx, upd.InlineQuery)
		return
	}
	if upd.CallbackQuery != nil {
		h.HandleCallback(ctx, upd.CallbackQuery)
		return
	}

	if upd.Message == nil {
		return
	}
	msg := upd.Message
	// работаем только в личке
	if !msg.Chat.IsPrivate() || msg.From == nil {
		return
	}

	if msg.IsCommand() {
		h.handleCommand(ctx, msg)
		return
	}

	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}
	h.handleFreeText(msg.Chat.ID, msg.From, text)
}

// handleFreeText доводит до конца многошаговый сценарий чата. Режим
// снимается через TakeIf ровно один раз: повторная доставка того же текста
// второй переход не применит.
func (h *Handler) handleFreeText(chatID int64, from *tgbotapi.User, text string) {
	switch h.sessions.Get(chatID) {
	case domain.ModeAwaitCustomAmount:
		amount, err := parseAmount(text)
		if err != nil {
			h.reply(chatID, amountErrText(err)) // режим сохраняется, можно повторить
			return
		}
		if !h.sessions.TakeIf(chatID, domain.ModeAwaitCustomAmount) {
			return
		}
		h.issueMenuCheck(chatID, from.ID, amount)

	case domain.ModeAwaitInlineAmount:
		amount, err := parseAmount(text)
		if err != nil {
			h.reply(chatID, amountErrText(err))
			return
		}
		if !h.sessions.TakeIf(chatID, domain.ModeAwaitInlineAmount) {
			return
		}
		h.issueInlineCheck(chatID, from.ID, amount)

	case domain.ModeAwaitAdminID:
		newID, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			h.reply(chatID, "❌ Неверный формат ID. Введите число.")
			return
		}
		if !h.sessions.TakeIf(chatID, domain.ModeAwaitAdminID) {
			return
		}
		h.admins.Grant(newID, from.UserName)
		logger.Info("admin granted", "id", newID, "by", from.ID)
		h.replyKB(chatID,
			fmt.Sprintf("✅ Пользователь %d добавлен в администраторы!", newID),
			tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("⬅️ Work-панель", "admin_panel"),
			)))
	}
}

// issueMenuCheck выпускает чек из меню. Ответ повторяет оригинальное
// поведение: чек создан, но пользователю показывается требование верификации.
func (h *Handler) issueMenuCheck(chatID, userID int64, amount float64) {
	v, _ := h.vouchers.Issue(userID, amount, false)
	metrics.RecordIssue(v.IsGift, false)
	logger.Info("voucher issued", "id", v.ID, "issuer", userID, "amount", amount)

	h.replyKB(chatID, fragmentErrText(), backToMainKB())
}

func (h *Handler) issueInlineCheck(chatID, userID int64, amount float64) {
	if !h.admins.IsAdmin(userID) {
		h.reply(chatID, "❌ Только для администраторов.")
		return
	}
	v, _ := h.vouchers.Issue(userID, amount, true)
	metrics.RecordIssue(v.IsGift, true)
	logger.Info("inline voucher issued", "id", v.ID, "issuer", userID, "amount", amount)

	msg := tgbotapi.NewMessage(chatID, inlineCheckCreatedText(v.ID, amount, h.username))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("➕ Ещё", "admin_inline_check"),
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "admin_panel"),
	))
	h.send(msg)
}

// claimCheck — попытка получить чек по deep link /start check_<id>.
func (h *Handler) claimCheck(chatID, userID int64, checkID string) {
	res, err := h.vouchers.Claim(checkID, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		metrics.RecordClaimFailure("not_found")
		h.reply(chatID, "❌ Чек не найден или был удален.")
		return
	case errors.Is(err, store.ErrAlreadyClaimed):
		metrics.RecordClaimFailure("already_claimed")
		h.reply(chatID, "⚠️ Этот чек уже был получен.")
		return
	case err != nil:
		logger.Error("claim failed", "id", checkID, "err", err)
		h.reply(chatID, "❌ Не удалось получить чек.")
		return
	}

	metrics.RecordClaim(res.Voucher.IsGift)
	logger.Info("voucher claimed", "id", res.Voucher.ID, "by", userID)

	h.replyKB(chatID, claimSuccessText(res), tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("✨ Создать чек", "create_check")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("📋 Мой кошелёк", "my_checks")),
		tgbotapi.NewInlineKeyboardRow(tgbotapi.NewInlineKeyboardButtonData("🏠 На главную", "back_to_main")),
	))
}

// --- отправка ---

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.api.Send(c); err != nil {
		logger.Error("send failed", "err", err)
	}
}

func (h *Handler) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handler) replyKB(chatID int64, text string, kb tgbotapi.InlineKeyboardMarkup) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	h.send(msg)
}

// edit меняет сообщение, по кнопке которого пришёл callback.
func (h *Handler) edit(q *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	h.send(tgbotapi.NewEditMessageTextAndMarkup(q.Message.Chat.ID, q.Message.MessageID, text, kb))
}

func (h *Handler) editHTML(q *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) {
	e := tgbotapi.NewEditMessageTextAndMarkup(q.Message.Chat.ID, q.Message.MessageID, text, kb)
	e.ParseMode = tgbotapi.ModeHTML
	h.send(e)
}

func backToMainKB() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("⬅️ Назад", "back_to_main"),
	))
}
