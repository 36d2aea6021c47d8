package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	_ "github.com/lib/pq"
	"github.com/robfig/cron"

	"fitbot/clients/ai"
	"fitbot/internal/bot"
	"fitbot/internal/config"
	"fitbot/internal/conversation"
	"fitbot/internal/nlp"
	"fitbot/internal/repository"
	"fitbot/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("конфигурация: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatalf("подключение к базе: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		log.Fatalf("проверка базы: %v", err)
	}

	repo := repository.New(db)

	var assistant *ai.TemplateAssistant
	var classifier nlp.IntentClassifier
	if cfg.AIAPIKey != "" {
		assistant = ai.NewTemplateAssistant(ai.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel))
		classifier = assistant
	} else {
		log.Println("AI_API_KEY не задан, работаем только на правилах")
	}

	extractor := nlp.NewExtractor(nlp.DefaultConfig(), classifier)

	var managerAI conversation.Assistant
	if assistant != nil {
		managerAI = assistant
	}
	manager := conversation.NewManager(
		repo.Catalog, repo.Profile, repo.Template, repo.Conversation,
		extractor, nil, managerAI,
	)

	// Ежечасная очистка брошенных диалогов
	ttl := time.Duration(cfg.ConversationTTLHours) * time.Hour
	c := cron.New()
	if err := c.AddFunc("@hourly", func() {
		n, err := repo.Conversation.DeleteStale(ttl)
		if err != nil {
			log.Printf("очистка диалогов: %v", err)
			return
		}
		if n > 0 {
			log.Printf("очистка диалогов: удалено %d", n)
		}
	}); err != nil {
		log.Fatalf("планировщик: %v", err)
	}
	c.Start()
	defer c.Stop()

	if cfg.BotToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		go func() {
			if err := bot.New(api, manager).Start(context.Background()); err != nil {
				log.Printf("telegram: %v", err)
			}
		}()
	}

	srv := server.New(manager)
	if err := srv.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("HTTP сервер: %v", err)
	}
}
