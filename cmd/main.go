package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"russiabasket-bot/config"
	wsh "russiabasket-bot/internal/WSH"
	"russiabasket-bot/internal/bot"
	dbpkg "russiabasket-bot/internal/db"
	"russiabasket-bot/internal/fetcher"
	matchhandlers "russiabasket-bot/internal/matchHandlers"
	notifyhandlers "russiabasket-bot/internal/notifyHandlers"
	parserhandlers "russiabasket-bot/internal/parserHandlers"
	"russiabasket-bot/internal/parseutils"
	"russiabasket-bot/internal/scheduler"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Не удалось создать логгер: %v", err)
	}
	defer logger.Sync()
	zlog := logger.Sugar()

	// Инициализация конфигурации
	cfg, err := config.InitConfig()
	if err != nil {
		zlog.Fatalf("Ошибка инициализации конфигурации: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Инициализация базы данных
	database, err := dbpkg.InitDatabase(ctx, cfg)
	if err != nil {
		zlog.Fatalf("Ошибка инициализации базы данных: %v", err)
	}
	defer database.Close(context.Background())

	loc := parseutils.MoscowLocation()

	parser := &parserhandlers.Handler{
		Fetcher: fetcher.New(30 * time.Second),
		Teams:   database.Teams,
		Matches: database.Matches,
		BaseURL: cfg.BaseURL,
		Loc:     loc,
		Log:     zlog,
	}

	basketball := &matchhandlers.Handler{
		Matches: database.Matches,
		Teams:   database.Teams,
		Log:     zlog,
	}

	// Создаем бота и обработчик уведомлений
	tgBot, err := bot.NewBot(cfg, zlog)
	if err != nil {
		zlog.Fatalf("Не удалось инициализировать бота: %v", err)
	}

	notify := &notifyhandlers.Handler{
		Bot:        tgBot.API,
		Groups:     database.Groups,
		Basketball: basketball,
		Parser:     parser,
		Loc:        loc,
		SendDelay:  cfg.NotifyDelay(),
		Log:        zlog,
	}
	tgBot.Notify = notify

	// Запуск веб-сервера
	go wsh.StartWS(parser, basketball, cfg, zlog)

	// Плановые задания: утром ближайшие матчи, вечером сыгранные
	sched := scheduler.New(notify, loc, zlog)
	if err := sched.Start(ctx, cfg.MorningCron, cfg.EveningCron); err != nil {
		zlog.Fatalf("Не удалось запустить планировщик: %v", err)
	}
	defer sched.Stop()

	tgBot.Run(ctx)
}
