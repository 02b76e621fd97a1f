package notifyhandlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	matchhandlers "russiabasket-bot/internal/matchHandlers"
	"russiabasket-bot/internal/models"
	"russiabasket-bot/internal/viewmodels"
)

type MatchProvider interface {
	GetMatches(ctx context.Context, upcoming bool, limit int, date *time.Time) ([]viewmodels.MatchVm, error)
}

type MatchUpdater interface {
	ParseMatches(ctx context.Context, updateAll bool) (int, error)
}

type GroupStore interface {
	ChatIDs(ctx context.Context) ([]int64, error)
	Upsert(ctx context.Context, group models.TelegramGroup) error
	Delete(ctx context.Context, chatID int64) (int64, error)
}

type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Handler собирает выдачу матчей в текст и рассылает его подписчикам
// либо отвечает одному чату на команду.
type Handler struct {
	Bot        Sender
	Groups     GroupStore
	Basketball MatchProvider
	Parser     MatchUpdater
	Loc        *time.Location
	SendDelay  time.Duration
	Log        *zap.SugaredLogger
}

// ParseAndNotify — тело планового задания: полная пересинхронизация матчей
// и рассылка подписчикам за сегодняшний день. Любая ошибка логируется,
// процесс продолжает жить.
func (h *Handler) ParseAndNotify(ctx context.Context, upcoming bool) {
	h.Log.Info("Плановое обновление матчей и рассылка")

	if _, err := h.Parser.ParseMatches(ctx, true); err != nil {
		h.Log.Errorf("Не удалось обновить матчи перед рассылкой: %v", err)
		return
	}

	today := time.Now().UTC()
	h.NotifyGroups(ctx, upcoming, nil, &today)
}

// NotifyGroups отправляет выдачу матчей. chatID == nil — рассылка всем
// подписчикам: пустой список чатов и пустая выдача молчат, отказ одного
// чата не прерывает остальных. chatID != nil — прямой ответ на команду:
// пустая выдача отвечает "Матчи не найдены", любая ошибка деградирует в
// извинение.
func (h *Handler) NotifyGroups(ctx context.Context, upcoming bool, chatID *int64, date *time.Time) {
	var chatIDs []int64
	if chatID != nil {
		chatIDs = []int64{*chatID}
	} else {
		ids, err := h.Groups.ChatIDs(ctx)
		if err != nil {
			h.Log.Errorf("Не удалось получить список подписчиков: %v", err)
			return
		}
		chatIDs = ids
	}
	if len(chatIDs) == 0 {
		return
	}

	matches, err := h.Basketball.GetMatches(ctx, upcoming, matchhandlers.DefaultLimit, date)
	if err != nil {
		h.Log.Errorf("Не удалось получить матчи для рассылки: %v", err)
		if chatID != nil {
			h.reply(*chatID, "❌ Ошибка, попробуйте позже")
		}
		return
	}

	if len(matches) == 0 {
		if chatID != nil {
			h.reply(*chatID, "Матчи не найдены")
		}
		return
	}

	text := buildMessage(matches, upcoming, h.Loc)

	for i, id := range chatIDs {
		msg := tgbotapi.NewMessage(id, text)
		msg.ParseMode = tgbotapi.ModeHTML
		msg.DisableWebPagePreview = true

		if _, err := h.Bot.Send(msg); err != nil {
			h.Log.Errorf("Не удалось отправить уведомление в чат %d: %v", id, err)
			if chatID != nil {
				h.reply(*chatID, "❌ Ошибка, попробуйте позже")
			}
		}

		// Пауза между отправками — ограничение исходящего канала.
		if i < len(chatIDs)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(h.SendDelay):
			}
		}
	}
}

// reply отправляет служебный ответ; ошибка отправки только логируется.
func (h *Handler) reply(chatID int64, text string) {
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		h.Log.Errorf("Не удалось ответить в чат %d: %v", chatID, err)
	}
}

func buildMessage(matches []viewmodels.MatchVm, upcoming bool, loc *time.Location) string {
	var sb strings.Builder
	if upcoming {
		sb.WriteString("Ближайшие матчи:\n\n")
	} else {
		sb.WriteString("Недавние матчи:\n\n")
	}

	for _, m := range matches {
		fmt.Fprintf(&sb, "🏀 %s vs %s\n", m.HomeTeamName, m.GuestTeamName)
		if !upcoming {
			fmt.Fprintf(&sb, "Счет: <b>%s</b>\n", m.Score())
			fmt.Fprintf(&sb, "Статус: %s\n", m.StatusText())
		}
		fmt.Fprintf(&sb, "Дата: %s (мск)\n", m.DateIn(loc).Format("02.01.2006 15:04"))
		fmt.Fprintf(&sb, "<a href='%s'>%s</a>\n\n", m.URL, m.URLText())
	}

	return sb.String()
}
