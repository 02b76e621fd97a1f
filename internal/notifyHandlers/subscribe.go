package notifyhandlers

import (
	"context"
	"strconv"
	"time"

	"russiabasket-bot/internal/models"
)

// Subscribe создаёт или перезаписывает подписку чата. Повторный вызов
// безопасен: запись одна, имя берётся из последнего вызова.
func (h *Handler) Subscribe(ctx context.Context, chatID int64, name string) {
	if name == "" {
		name = strconv.FormatInt(chatID, 10)
	}

	group := models.TelegramGroup{
		ChatID:    chatID,
		GroupName: name,
		AddedDate: time.Now().UTC(),
	}

	if err := h.Groups.Upsert(ctx, group); err != nil {
		h.Log.Errorf("Не удалось подписать чат %d: %v", chatID, err)
		h.reply(chatID, "❌ Ошибка. Пожалуйста, попробуйте позже.")
		return
	}

	h.reply(chatID, "✅ Теперь вы будете получать уведомления о ближайших и сыгранных матчах")
}

// Unsubscribe удаляет подписку чата.
func (h *Handler) Unsubscribe(ctx context.Context, chatID int64) {
	deleted, err := h.Groups.Delete(ctx, chatID)
	if err != nil {
		h.Log.Errorf("Не удалось отписать чат %d: %v", chatID, err)
		h.reply(chatID, "❌ Ошибка. Пожалуйста, попробуйте позже.")
		return
	}

	if deleted > 0 {
		h.reply(chatID, "✅ Вы успешно отписались от обновлений")
	} else {
		h.reply(chatID, "ℹ️ Вы не подписаны на обновления")
	}
}
