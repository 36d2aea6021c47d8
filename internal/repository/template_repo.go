package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fitbot/internal/models"
)

// TemplateRepository хранит сохранённые тренировочные шаблоны
type TemplateRepository struct {
	db *sql.DB
}

// NewTemplateRepository создаёт репозиторий шаблонов
func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

// Save сохраняет шаблон и возвращает его id
func (r *TemplateRepository) Save(userID string, tpl *models.Template) (string, error) {
	payload, err := json.Marshal(tpl)
	if err != nil {
		return "", fmt.Errorf("сериализация шаблона: %w", err)
	}
	id := uuid.NewString()
	_, err = r.db.Exec(`
		INSERT INTO public.workout_templates (id, user_id, name, payload, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		id, userID, tpl.Name, payload, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("сохранение шаблона клиента %s: %w", userID, err)
	}
	return id, nil
}

// GetLatest возвращает последний сохранённый шаблон клиента.
// Отсутствие шаблона возвращается как (nil, nil).
func (r *TemplateRepository) GetLatest(userID string) (*models.Template, error) {
	var payload []byte
	err := r.db.QueryRow(`
		SELECT payload
		FROM public.workout_templates
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, userID).Scan(&payload)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("загрузка шаблона клиента %s: %w", userID, err)
	}

	var tpl models.Template
	if err := json.Unmarshal(payload, &tpl); err != nil {
		return nil, fmt.Errorf("десериализация шаблона клиента %s: %w", userID, err)
	}
	return &tpl, nil
}
