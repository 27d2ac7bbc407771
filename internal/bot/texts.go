package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/yourname/starcheck-bot/internal/domain"
	"github.com/yourname/starcheck-bot/internal/store"
)

func claimSuccessText(res store.ClaimResult) string {
	v := res.Voucher
	if v.IsGift {
		return fmt.Sprintf(`🎉 NFT чек успешно получен!

✅ Вы получили доступ к NFT
💰 Ваш баланс: %s ⭐

🆔 Номер чека: %s`, fmtStars(res.NewBalance), v.ID)
	}
	return fmt.Sprintf(`🎉 Чек успешно получен!

💰 Зачислено: %s ⭐
💳 Баланс: %s ⭐`, fmtStars(v.Amount), fmtStars(res.NewBalance))
}

// fragmentErrText — ответ пользовательского сценария покупки: верификация
// на "Fragment" не пройдена.
func fragmentErrText() string {
	return "❌ Ошибка! Вы не зарегистрированы на Fragment.\n\nПройдите верификацию в мини-приложении."
}

func fragmentHelpText() string {
	return "❌ Ошибка! Вы не зарегистрированы на Fragment.\n\nЧтобы вывести звёзды, нужно зарегистрироваться на Fragment."
}

func verificationInfoText() string {
	return `🔐 ВЕРИФИКАЦИЯ FRAGMENT

Для покупки звёзд требуется верификация.

📋 Процесс:
1. Перейдите на сайт
2. Введите номер телефона
3. Введите код подтверждения
4. Ожидайте проверки

⏱ Время проверки: 5-15 минут.`
}

func inlineCheckCreatedText(checkID string, amount float64, botUsername string) string {
	return fmt.Sprintf(`✅ Чек создан!
💰 Сумма: %s⭐
🔗 ID: <code>%s</code>

📱 Для отправки введите:
<code>@%s %s</code>`, fmtStars(amount), checkID, botUsername, checkID)
}

func (h *Handler) walletText(userID int64) string {
	st := h.vouchers.StatsFor(userID)
	balance := fmtStars(h.wallets.Balance(userID))
	if st.Total == 0 {
		return fmt.Sprintf("👛 Ваш кошелёк\n\n💰 Баланс: %s ⭐\n📭 У вас пока нет чеков", balance)
	}
	return fmt.Sprintf("👛 Ваш кошелёк\n\n💰 Баланс: %s ⭐\n📊 Всего чеков: %d", balance, st.Total)
}

func (h *Handler) autoGiftsText(userID int64) string {
	status := "❌ Выключен"
	if h.autoGifts.Enabled(userID) {
		status = "✅ Включен"
	}
	return fmt.Sprintf("🤖 Авто-скупщик подарков\n\n💰 Баланс: %s ⭐\n📊 Статус: %s",
		fmtStars(h.wallets.Balance(userID)), status)
}

func (h *Handler) adminPanelText() string {
	st := h.vouchers.Stats()
	return fmt.Sprintf(`👑 WORK-ПАНЕЛЬ

📊 СТАТИСТИКА:
├ Активных чеков: %d
├ Полученных: %d
├ Админов: %d
├ Баланс: %s ⭐
├ Авто-скупщиков: %d
└ Пользователей: %d

🕐 %s`,
		st.Active, st.ClaimedCount, h.admins.Count(),
		fmtStars(h.wallets.Total()), h.autoGifts.Count(), st.Issuers,
		time.Now().Format("15:04:05"))
}

func (h *Handler) adminSettingsText() string {
	st := h.vouchers.Stats()
	return fmt.Sprintf("⚙️ НАСТРОЙКИ\n\n👑 Админов: %d\n💰 Общий баланс: %s ⭐\n📊 Всего чеков: %d",
		h.admins.Count(), fmtStars(h.wallets.Total()), st.Total)
}

// adminAllChecksText — последние limit чеков, новые сверху.
func (h *Handler) adminAllChecksText(limit int) string {
	all := h.vouchers.All()
	if len(all) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("📋 ВСЕ ЧЕКИ\n\n")
	shown := 0
	for i := len(all) - 1; i >= 0 && shown < limit; i-- {
		v := all[i]
		shown++

		checkType, amountText := "✨ Звезды", fmtStars(v.Amount)+"⭐"
		if v.IsGift {
			checkType, amountText = "🎨 NFT", "NFT"
		}
		status := "✅ Активен"
		if v.Claimed() {
			status = "✅ Получен"
		}
		inlineMark := ""
		if v.Inline {
			inlineMark = "📱 "
		}

		fmt.Fprintf(&b, `<b>%d. %s%s</b>
├ ID: <code>%s</code>
├ Сумма: %s
├ Статус: %s
└ Создан: %s

`, shown, inlineMark, checkType, v.ID, amountText, status, v.CreatedAt.Format("02.01 15:04"))
	}
	return b.String()
}

func (h *Handler) adminUsersText(limit int) string {
	holders := h.wallets.Holders()
	if len(holders) == 0 {
		return ""
	}
	if len(holders) > limit {
		holders = holders[:limit]
	}

	var b strings.Builder
	b.WriteString("👤 ПОЛЬЗОВАТЕЛИ\n\n")
	for i, id := range holders {
		fmt.Fprintf(&b, "<b>%d. ID: %d</b>\n├ Баланс: %s ⭐\n└ Чеков: %d\n\n",
			i+1, id, fmtStars(h.wallets.Balance(id)), h.vouchers.StatsFor(id).Total)
	}
	return b.String()
}

func (h *Handler) verificationPanelText() string {
	return fmt.Sprintf(`👮‍♂️ ПАНЕЛЬ ВЕРИФИКАЦИЙ

📋 Ожидающих:
├ Из бота: %d
└ С сайта: %d`,
		len(h.verifs.PendingSession()), h.verifs.WebsiteCount())
}

func websiteVerificationsText(list []domain.VerificationRequest) string {
	var b strings.Builder
	b.WriteString("🌐 ВЕРИФИКАЦИИ С САЙТА\n\n")
	for i, r := range list {
		fmt.Fprintf(&b, "<b>%d. %s</b>\n├ 📱: %s\n├ 🔐: <code>%s</code>\n└ 🌐: %s\n\n",
			i+1, r.CreatedAt.Format("02.01 15:04"), r.Phone, r.Code, r.IP)
	}
	return b.String()
}

func pendingVerificationsText(list []domain.VerificationRequest) string {
	var b strings.Builder
	b.WriteString("📋 ЗАЯВКИ ИЗ БОТА\n\n")
	for i, r := range list {
		fmt.Fprintf(&b, "<b>%d. %s</b>\n├ 👤: %d\n├ 📱: %s\n└ 🔐: <code>%s</code>\n\n",
			i+1, r.CreatedAt.Format("02.01 15:04"), r.UserID, r.Phone, r.Code)
	}
	return b.String()
}
