// chatcli — консольный клиент диалога для локальной отладки без HTTP.
package main

import (
	"bufio"
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/lib/pq"

	"fitbot/clients/ai"
	"fitbot/internal/config"
	"fitbot/internal/conversation"
	"fitbot/internal/nlp"
	"fitbot/internal/repository"
)

func main() {
	userID := flag.String("user", "cli", "id сессии диалога")
	flag.Parse()

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

	fmt.Println("Workout template chat. Type 'quit' to exit, '/reset' to start over.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		if text == "quit" || text == "exit" {
			break
		}
		if text == "/reset" {
			if err := manager.Reset(*userID); err != nil {
				fmt.Println("reset failed:", err)
				continue
			}
			fmt.Println("conversation reset")
			continue
		}

		events, err := manager.HandleTurn(context.Background(), *userID, text)
		if err != nil {
			log.Printf("реплика не обработана: %v", err)
		}
		for _, ev := range events {
			if ev.TemplateMarkdown != "" {
				fmt.Println(ev.TemplateMarkdown)
			}
			if ev.Summary != "" {
				fmt.Println("--", ev.Summary)
			}
			if ev.Message != "" {
				fmt.Println(ev.Message)
			}
		}
	}
}
