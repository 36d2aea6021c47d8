// Package conversation ведёт диалог редактирования шаблона: машина
// состояний, подсказки пользователю и оркестрация NLP, движка правок
// и языковой модели на каждой реплике.
package conversation

import (
	"github.com/google/uuid"

	"fitbot/internal/models"
)

// Статусы событий диалога
const (
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusError      = "error"
)

// EventType единственный тип событий диалога
const EventType = "workout_template"

// Event одно событие для фронтенда. Терминальное событие реплики несёт
// статус completed; события прогресса идут до него.
type Event struct {
	MsgID            string           `json:"msg_id"`
	Type             string           `json:"type"`
	Status           string           `json:"status"`
	Message          string           `json:"message,omitempty"`
	Summary          string           `json:"summary,omitempty"`
	TemplateMarkdown string           `json:"template_markdown,omitempty"`
	TemplateJSON     *models.Template `json:"template_json,omitempty"`
	TemplateIDs      map[string][]int `json:"template_ids,omitempty"`
}

// newEvent создаёт событие с уникальным msg_id
func newEvent(status, message string) Event {
	return Event{
		MsgID:   uuid.NewString(),
		Type:    EventType,
		Status:  status,
		Message: message,
	}
}
