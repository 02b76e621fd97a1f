package bot

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"russiabasket-bot/config"
	notifyhandlers "russiabasket-bot/internal/notifyHandlers"
)

// Bot инкапсулирует работу Telegram-бота и маршрутизацию команд.
type Bot struct {
	API    *tgbotapi.BotAPI
	Config *config.Config
	Notify *notifyhandlers.Handler
	Log    *zap.SugaredLogger
}

// NewBot создаёт и инициализирует нового бота. Поле Notify заполняется
// после создания: обработчику уведомлений нужен уже готовый API.
func NewBot(cfg *config.Config, log *zap.SugaredLogger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TgAPIToken)
	if err != nil {
		return nil, err
	}
	return &Bot{API: api, Config: cfg, Log: log}, nil
}

// Run запускает цикл получения и обработки обновлений.
func (b *Bot) Run(ctx context.Context) {
	b.Log.Infof("Авторизация выполнена на аккаунте %s", b.API.Self.UserName)
	b.registerBotMenu()

	updates := b.API.GetUpdatesChan(tgbotapi.NewUpdate(0))
	for {
		select {
		case <-ctx.Done():
			b.API.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message != nil {
				go b.handleMessage(ctx, update.Message)
			}
		}
	}
}

// registerBotMenu публикует меню команд бота.
func (b *Bot) registerBotMenu() {
	commands := tgbotapi.NewSetMyCommands(
		tgbotapi.BotCommand{Command: "start", Description: "Запуск бота"},
		tgbotapi.BotCommand{Command: "newest", Description: "Ближайшие матчи"},
		tgbotapi.BotCommand{Command: "latest", Description: "Последние матчи"},
		tgbotapi.BotCommand{Command: "subscribe", Description: "Подписаться на обновления"},
		tgbotapi.BotCommand{Command: "unsubscribe", Description: "Отписаться от обновлений"},
	)
	if _, err := b.API.Request(commands); err != nil {
		b.Log.Errorf("Не удалось зарегистрировать меню команд: %v", err)
	}
}

// handleMessage обрабатывает входящие сообщения.
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	if msg.Text == "" {
		b.sendMessage(chatID, "Бот принимает только текстовые команды.")
		return
	}

	command := strings.ToLower(strings.SplitN(msg.Text, " ", 2)[0])
	switch command {
	case "/start":
		b.sendStartMessage(chatID)
	case "/newest":
		b.Notify.NotifyGroups(ctx, true, &chatID, nil)
	case "/latest":
		b.Notify.NotifyGroups(ctx, false, &chatID, nil)
	case "/subscribe":
		b.Notify.Subscribe(ctx, chatID, chatTitle(msg.Chat))
	case "/unsubscribe":
		b.Notify.Unsubscribe(ctx, chatID)
	default:
		b.sendMessage(chatID, "Неизвестная команда. Выполните /start чтобы посмотреть список доступных команд")
	}
}

func chatTitle(chat *tgbotapi.Chat) string {
	if chat == nil {
		return ""
	}
	if chat.Title != "" {
		return chat.Title
	}
	return chat.UserName
}

// sendStartMessage отправляет приветственное сообщение.
func (b *Bot) sendStartMessage(chatID int64) {
	message := `Добро пожаловать! 🏀
Я помогу тебе узнать результаты последних матчей, планируемые матчи, а также напомнить о них.

Доступные команды:
/newest - посмотреть ближайшие матчи
/latest - посмотреть результаты последних матчей
/subscribe - подписаться на обновления
/unsubscribe - отписаться от обновлений`
	b.sendMessage(chatID, message)
}

// sendMessage отправляет сообщение в чат.
func (b *Bot) sendMessage(chatID int64, text string) {
	if _, err := b.API.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		b.Log.Errorf("Не удалось отправить сообщение в чат %d: %v", chatID, err)
	}
}
