package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fitbot/internal/models"
)

// ConversationRepository хранит отложенные диалоги между репликами.
// Контекст сериализуется в JSON целиком: состояние, профиль и черновик
// шаблона восстанавливаются на следующей реплике.
type ConversationRepository struct {
	db *sql.DB
}

// NewConversationRepository создаёт репозиторий диалогов
func NewConversationRepository(db *sql.DB) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// Get возвращает отложенный диалог клиента либо (nil, nil)
func (r *ConversationRepository) Get(userID string) (*models.Context, error) {
	var payload []byte
	err := r.db.QueryRow(`
		SELECT context
		FROM public.pending_conversations
		WHERE user_id = $1`, userID).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("загрузка диалога клиента %s: %w", userID, err)
	}

	var ctx models.Context
	if err := json.Unmarshal(payload, &ctx); err != nil {
		return nil, fmt.Errorf("десериализация диалога клиента %s: %w", userID, err)
	}
	return &ctx, nil
}

// Set сохраняет (или заменяет) отложенный диалог клиента
func (r *ConversationRepository) Set(userID string, ctx *models.Context) error {
	payload, err := json.Marshal(ctx)
	if err != nil {
		return fmt.Errorf("сериализация диалога: %w", err)
	}
	_, err = r.db.Exec(`
		INSERT INTO public.pending_conversations (user_id, context, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET context = $2, updated_at = $3`,
		userID, payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("сохранение диалога клиента %s: %w", userID, err)
	}
	return nil
}

// Clear удаляет отложенный диалог клиента
func (r *ConversationRepository) Clear(userID string) error {
	_, err := r.db.Exec(`DELETE FROM public.pending_conversations WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("удаление диалога клиента %s: %w", userID, err)
	}
	return nil
}

// DeleteStale удаляет диалоги, не обновлявшиеся дольше ttl.
// Вызывается по расписанию, возвращает число удалённых.
func (r *ConversationRepository) DeleteStale(ttl time.Duration) (int64, error) {
	res, err := r.db.Exec(`
		DELETE FROM public.pending_conversations
		WHERE updated_at < $1`, time.Now().UTC().Add(-ttl))
	if err != nil {
		return 0, fmt.Errorf("очистка устаревших диалогов: %w", err)
	}
	return res.RowsAffected()
}
