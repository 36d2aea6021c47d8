// Package bot — Telegram-транспорт диалога: та же машина состояний,
// что и за HTTP, но события доставляются сообщениями в чат.
package bot

import (
	"context"
	"log"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"fitbot/internal/conversation"
	"fitbot/internal/engine"
)

// Bot слушает сообщения Telegram и прогоняет их через менеджер диалогов
type Bot struct {
	api     *tgbotapi.BotAPI
	manager *conversation.Manager
}

// New создаёт бота поверх менеджера диалогов
func New(api *tgbotapi.BotAPI, manager *conversation.Manager) *Bot {
	return &Bot{api: api, manager: manager}
}

// Start запускает цикл обработки обновлений. Блокирует до закрытия канала.
func (b *Bot) Start(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)

	log.Printf("bot: запущен как @%s", b.api.Self.UserName)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	userID := strconv.FormatInt(msg.From.ID, 10)

	if msg.IsCommand() {
		b.handleCommand(msg, userID)
		return
	}

	events, err := b.manager.HandleTurn(ctx, userID, msg.Text)
	if err != nil {
		log.Printf("bot: обработка реплики %s: %v", userID, err)
	}
	for _, ev := range events {
		// Промежуточные статусы в чат не шлём, только результат
		if ev.Status == conversation.StatusInProgress {
			continue
		}
		b.sendEvent(msg.Chat.ID, ev)
	}
}

func (b *Bot) handleCommand(msg *tgbotapi.Message, userID string) {
	switch msg.Command() {
	case "start":
		b.send(msg.Chat.ID, "Hi! I build workout templates. Say something like 'create a 3 day plan' to get started.")
	case "reset":
		if err := b.manager.Reset(userID); err != nil {
			log.Printf("bot: сброс диалога %s: %v", userID, err)
			b.send(msg.Chat.ID, "Could not reset the conversation, try again.")
			return
		}
		b.send(msg.Chat.ID, "Conversation reset. Let's start fresh!")
	default:
		b.send(msg.Chat.ID, "I understand plain text best. Try 'create a workout plan'.")
	}
}

// sendEvent отправляет событие: текст шаблона и сообщение менеджера
func (b *Bot) sendEvent(chatID int64, ev conversation.Event) {
	if ev.TemplateJSON != nil {
		b.send(chatID, engine.Display(ev.TemplateJSON))
	}
	text := ev.Message
	if ev.Summary != "" && ev.Summary != ev.Message {
		text = ev.Summary + "\n" + text
	}
	if text != "" {
		b.send(chatID, text)
	}
}

func (b *Bot) send(chatID int64, text string) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("bot: отправка сообщения: %v", err)
	}
}
