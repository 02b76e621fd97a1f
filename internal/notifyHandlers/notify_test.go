package notifyhandlers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"russiabasket-bot/internal/models"
	"russiabasket-bot/internal/viewmodels"
)

type sentMessage struct {
	chatID int64
	text   string
}

type fakeSender struct {
	sent    []sentMessage
	failFor map[int64]bool
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, errors.New("неожиданный тип сообщения")
	}
	if f.failFor[msg.ChatID] {
		return tgbotapi.Message{}, errors.New("чат недоступен")
	}
	f.sent = append(f.sent, sentMessage{chatID: msg.ChatID, text: msg.Text})
	return tgbotapi.Message{}, nil
}

type fakeGroups struct {
	chatIDs   []int64
	groups    map[int64]models.TelegramGroup
	upsertErr error
}

func (f *fakeGroups) ChatIDs(_ context.Context) ([]int64, error) {
	return f.chatIDs, nil
}

func (f *fakeGroups) Upsert(_ context.Context, group models.TelegramGroup) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.groups == nil {
		f.groups = map[int64]models.TelegramGroup{}
	}
	f.groups[group.ChatID] = group
	return nil
}

func (f *fakeGroups) Delete(_ context.Context, chatID int64) (int64, error) {
	if _, ok := f.groups[chatID]; ok {
		delete(f.groups, chatID)
		return 1, nil
	}
	return 0, nil
}

type fakeProvider struct {
	matches []viewmodels.MatchVm
	err     error
}

func (f *fakeProvider) GetMatches(_ context.Context, _ bool, _ int, _ *time.Time) ([]viewmodels.MatchVm, error) {
	return f.matches, f.err
}

type fakeUpdater struct {
	calls int
	err   error
}

func (f *fakeUpdater) ParseMatches(_ context.Context, _ bool) (int, error) {
	f.calls++
	return len(fixtureMatches), f.err
}

var fixtureMatches = []viewmodels.MatchVm{
	{
		MatchID:       915,
		HomeTeamName:  "ЦСКА (Москва)",
		GuestTeamName: "Зенит (Санкт-Петербург)",
		HomeScore:     80,
		GuestScore:    75,
		Status:        models.StatusFinish,
		URL:           "https://competitions.russiabasket.ru/games/?id=915",
		Date:          time.Date(2025, time.March, 15, 16, 30, 0, 0, time.UTC),
	},
}

func newNotifyHandler(bot *fakeSender, groups *fakeGroups, provider *fakeProvider) *Handler {
	return &Handler{
		Bot:        bot,
		Groups:     groups,
		Basketball: provider,
		Parser:     &fakeUpdater{},
		Loc:        time.FixedZone("MSK", 3*3600),
		SendDelay:  time.Millisecond,
		Log:        zap.NewNop().Sugar(),
	}
}

func TestBroadcastNoSubscribers(t *testing.T) {
	bot := &fakeSender{}
	h := newNotifyHandler(bot, &fakeGroups{}, &fakeProvider{matches: fixtureMatches})

	h.NotifyGroups(context.Background(), false, nil, nil)

	assert.Empty(t, bot.sent)
}

func TestBroadcastNoMatchesStaysSilent(t *testing.T) {
	bot := &fakeSender{}
	h := newNotifyHandler(bot, &fakeGroups{chatIDs: []int64{10, 20}}, &fakeProvider{})

	h.NotifyGroups(context.Background(), true, nil, nil)

	assert.Empty(t, bot.sent)
}

func TestBroadcastFailureIsolation(t *testing.T) {
	bot := &fakeSender{failFor: map[int64]bool{20: true}}
	h := newNotifyHandler(bot, &fakeGroups{chatIDs: []int64{10, 20, 30}}, &fakeProvider{matches: fixtureMatches})

	h.NotifyGroups(context.Background(), false, nil, nil)

	// Отказ второго чата не мешает первому и третьему
	require.Len(t, bot.sent, 2)
	assert.Equal(t, int64(10), bot.sent[0].chatID)
	assert.Equal(t, int64(30), bot.sent[1].chatID)
}

func TestBroadcastCancelledBetweenSends(t *testing.T) {
	bot := &fakeSender{}
	h := newNotifyHandler(bot, &fakeGroups{chatIDs: []int64{10, 20}}, &fakeProvider{matches: fixtureMatches})
	h.SendDelay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.NotifyGroups(ctx, false, nil, nil)

	// Первая отправка уходит сразу, на паузе рассылка обрывается
	assert.Len(t, bot.sent, 1)
}

func TestDirectReplyNoMatches(t *testing.T) {
	bot := &fakeSender{}
	h := newNotifyHandler(bot, &fakeGroups{}, &fakeProvider{})

	chatID := int64(42)
	h.NotifyGroups(context.Background(), true, &chatID, nil)

	require.Len(t, bot.sent, 1)
	assert.Equal(t, "Матчи не найдены", bot.sent[0].text)
}

func TestDirectReplyProviderError(t *testing.T) {
	bot := &fakeSender{}
	h := newNotifyHandler(bot, &fakeGroups{}, &fakeProvider{err: errors.New("база недоступна")})

	chatID := int64(42)
	h.NotifyGroups(context.Background(), false, &chatID, nil)

	require.Len(t, bot.sent, 1)
	assert.Equal(t, "❌ Ошибка, попробуйте позже", bot.sent[0].text)
}

func TestBuildMessageRecent(t *testing.T) {
	text := buildMessage(fixtureMatches, false, time.FixedZone("MSK", 3*3600))

	assert.True(t, strings.HasPrefix(text, "Недавние матчи:\n\n"))
	assert.Contains(t, text, "🏀 ЦСКА (Москва) vs Зенит (Санкт-Петербург)")
	assert.Contains(t, text, "Счет: <b>80:75</b>")
	assert.Contains(t, text, "Статус: Завершен")
	assert.Contains(t, text, "Дата: 15.03.2025 19:30 (мск)")
	assert.Contains(t, text, "<a href='https://competitions.russiabasket.ru/games/?id=915'>Статистика</a>")
}

func TestBuildMessageUpcomingSkipsScore(t *testing.T) {
	planned := append([]viewmodels.MatchVm(nil), fixtureMatches...)
	planned[0].Status = models.StatusPlan

	text := buildMessage(planned, true, time.FixedZone("MSK", 3*3600))

	assert.True(t, strings.HasPrefix(text, "Ближайшие матчи:\n\n"))
	assert.NotContains(t, text, "Счет:")
	assert.NotContains(t, text, "Статус:")
	assert.Contains(t, text, ">Превью</a>")
}

func TestSubscribeIdempotent(t *testing.T) {
	bot := &fakeSender{}
	groups := &fakeGroups{}
	h := newNotifyHandler(bot, groups, &fakeProvider{})

	h.Subscribe(context.Background(), 42, "Старый чат")
	h.Subscribe(context.Background(), 42, "Новый чат")

	require.Len(t, groups.groups, 1)
	assert.Equal(t, "Новый чат", groups.groups[42].GroupName)
	require.Len(t, bot.sent, 2)
	assert.Contains(t, bot.sent[1].text, "✅ Теперь вы будете получать уведомления")
}

func TestSubscribeEmptyNameFallsBackToChatID(t *testing.T) {
	groups := &fakeGroups{}
	h := newNotifyHandler(&fakeSender{}, groups, &fakeProvider{})

	h.Subscribe(context.Background(), 42, "")

	assert.Equal(t, "42", groups.groups[42].GroupName)
}

func TestSubscribeStoreError(t *testing.T) {
	bot := &fakeSender{}
	h := newNotifyHandler(bot, &fakeGroups{upsertErr: errors.New("база недоступна")}, &fakeProvider{})

	h.Subscribe(context.Background(), 42, "Чат")

	require.Len(t, bot.sent, 1)
	assert.Equal(t, "❌ Ошибка. Пожалуйста, попробуйте позже.", bot.sent[0].text)
}

func TestUnsubscribe(t *testing.T) {
	bot := &fakeSender{}
	groups := &fakeGroups{groups: map[int64]models.TelegramGroup{42: {ChatID: 42}}}
	h := newNotifyHandler(bot, groups, &fakeProvider{})

	h.Unsubscribe(context.Background(), 42)
	h.Unsubscribe(context.Background(), 42)

	require.Len(t, bot.sent, 2)
	assert.Equal(t, "✅ Вы успешно отписались от обновлений", bot.sent[0].text)
	assert.Equal(t, "ℹ️ Вы не подписаны на обновления", bot.sent[1].text)
}

func TestParseAndNotifyRefreshesBeforeBroadcast(t *testing.T) {
	bot := &fakeSender{}
	updater := &fakeUpdater{}
	h := newNotifyHandler(bot, &fakeGroups{chatIDs: []int64{10}}, &fakeProvider{matches: fixtureMatches})
	h.Parser = updater

	h.ParseAndNotify(context.Background(), true)

	assert.Equal(t, 1, updater.calls)
	assert.Len(t, bot.sent, 1)
}

func TestParseAndNotifySkipsBroadcastOnParseError(t *testing.T) {
	bot := &fakeSender{}
	updater := &fakeUpdater{err: errors.New("сайт недоступен")}
	h := newNotifyHandler(bot, &fakeGroups{chatIDs: []int64{10}}, &fakeProvider{matches: fixtureMatches})
	h.Parser = updater

	h.ParseAndNotify(context.Background(), true)

	assert.Empty(t, bot.sent)
}
