package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"fitbot/internal/models"
)

// TemplateAssistant - ассистент тренировочных шаблонов поверх чат-API.
// Генерирует черновики и применяет свободные правки; каждый ответ
// проверяется на сохранность структуры дней.
type TemplateAssistant struct {
	client *Client
}

// NewTemplateAssistant создаёт ассистента
func NewTemplateAssistant(client *Client) *TemplateAssistant {
	return &TemplateAssistant{client: client}
}

const generateSystemPrompt = `You are a professional strength coach. You build multi-day workout templates as strict JSON.
Respond with a single JSON object of the form:
{"name": string, "goal": "muscle_gain"|"fat_loss"|"strength"|"performance", "days": {<day_key>: {"title": string, "muscle_groups": [string], "exercises": [{"name": string, "sets": int, "reps": string}]}}, "notes": [string]}
Use exactly the day keys you are given, no more and no fewer. Each day gets 6 exercises of common gym movements. No text outside the JSON.`

// GenerateTemplate генерирует черновик шаблона под профиль клиента.
// Лишние дни из ответа отбрасываются, недостающие дополняются пустыми:
// набор ключей дней всегда совпадает с запрошенным.
func (a *TemplateAssistant) GenerateTemplate(ctx context.Context, profile models.Profile, dayNames []string) (models.Template, error) {
	skeleton := models.NewSkeleton(dayNames)
	keys := skeleton.DayKeys()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Client goal: %s. Experience: %s.", profile.ClientGoal, profile.Experience)
	if profile.WeightDeltaText != "" {
		fmt.Fprintf(&sb, " Weight target: %s.", profile.WeightDeltaText)
	}
	if profile.MuscleFocus != "" {
		fmt.Fprintf(&sb, " Focus on %s.", profile.MuscleFocus)
	}
	fmt.Fprintf(&sb, "\nDay keys (use exactly these): %s.", strings.Join(keys, ", "))

	raw, err := a.client.ChatJSON(ctx, []Message{
		{Role: "system", Content: generateSystemPrompt},
		{Role: "user", Content: sb.String()},
	}, 0.7)
	if err != nil {
		return skeleton, fmt.Errorf("генерация шаблона: %w", err)
	}

	var tpl models.Template
	if err := json.Unmarshal([]byte(stripFences(raw)), &tpl); err != nil {
		return skeleton, fmt.Errorf("разбор сгенерированного шаблона: %w", err)
	}
	if tpl.Name == "" {
		tpl.Name = skeleton.Name
	}
	if tpl.Goal == "" {
		tpl.Goal = models.GoalMuscleGain
	}

	// Сводим дни ответа к запрошенному набору ключей
	want := make(map[string]bool, len(keys))
	for _, k := range keys {
		want[k] = true
	}
	byKey := make(map[string]models.Day, len(tpl.Days))
	for _, d := range tpl.Days {
		if want[d.Key] {
			byKey[d.Key] = d
		}
	}
	out := skeleton
	out.Name = tpl.Name
	out.Goal = tpl.Goal
	out.Notes = tpl.Notes
	for i := range out.Days {
		if d, ok := byKey[out.Days[i].Key]; ok {
			title := out.Days[i].Title
			out.Days[i] = d
			if out.Days[i].Title == "" {
				out.Days[i].Title = title
			}
		}
	}
	return out, nil
}

const editSystemPrompt = `You are a professional strength coach editing an existing workout template.
Apply the user's instruction to the template JSON and return the FULL updated template as a single JSON object in the same shape.
Keep the day keys of "days" exactly as they are: never add, remove or rename keys unless explicitly asked to change the number of days.
Only use real, common gym exercise names. No text outside the JSON.`

// EditTemplate применяет свободную правку через модель. Ответ с
// изменённым набором ключей дней отклоняется как порча структуры.
func (a *TemplateAssistant) EditTemplate(ctx context.Context, tpl *models.Template, instruction string) (models.Template, error) {
	current, err := json.Marshal(tpl)
	if err != nil {
		return models.Template{}, fmt.Errorf("сериализация шаблона для правки: %w", err)
	}

	raw, err := a.client.ChatJSON(ctx, []Message{
		{Role: "system", Content: editSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Template:\n%s\n\nInstruction: %s", current, instruction)},
	}, 0.4)
	if err != nil {
		return models.Template{}, fmt.Errorf("правка шаблона: %w", err)
	}

	var updated models.Template
	if err := json.Unmarshal([]byte(stripFences(raw)), &updated); err != nil {
		return models.Template{}, fmt.Errorf("разбор исправленного шаблона: %w", err)
	}
	if !updated.SameDayKeys(tpl) {
		return models.Template{}, fmt.Errorf("модель изменила набор дней шаблона")
	}
	return updated, nil
}

const classifySystemPrompt = `You classify one user message from a workout template chat.
Respond with a single JSON object:
{"intent": "create"|"show"|"edit"|"add"|"remove"|"replace"|"rename"|"bulk_change"|"confirm"|"decline"|"unknown", "confidence": number 0..1, "day": string, "exercise": string, "replace_with": string, "new_title": string, "muscle": string}
Leave fields you cannot fill as empty strings. No text outside the JSON.`

// классы намерений, которые модель может вернуть
var knownIntents = map[string]models.Intent{
	"create":      models.IntentCreate,
	"show":        models.IntentShow,
	"edit":        models.IntentEdit,
	"add":         models.IntentAdd,
	"remove":      models.IntentRemove,
	"replace":     models.IntentReplace,
	"rename":      models.IntentRename,
	"bulk_change": models.IntentBulkChange,
	"confirm":     models.IntentConfirm,
	"decline":     models.IntentDecline,
}

// ClassifyIntent разбирает неоднозначную реплику через модель
func (a *TemplateAssistant) ClassifyIntent(ctx context.Context, text string) (models.IntentResult, error) {
	raw, err := a.client.ChatJSON(ctx, []Message{
		{Role: "system", Content: classifySystemPrompt},
		{Role: "user", Content: text},
	}, 0.0)
	if err != nil {
		return models.IntentResult{}, fmt.Errorf("классификация реплики: %w", err)
	}

	var parsed struct {
		Intent      string  `json:"intent"`
		Confidence  float64 `json:"confidence"`
		Day         string  `json:"day"`
		Exercise    string  `json:"exercise"`
		ReplaceWith string  `json:"replace_with"`
		NewTitle    string  `json:"new_title"`
		Muscle      string  `json:"muscle"`
	}
	if err := json.Unmarshal([]byte(stripFences(raw)), &parsed); err != nil {
		return models.IntentResult{}, fmt.Errorf("разбор классификации: %w", err)
	}

	intent, ok := knownIntents[parsed.Intent]
	if !ok {
		intent = models.IntentUnknown
	}
	if parsed.Confidence < 0 {
		parsed.Confidence = 0
	}
	if parsed.Confidence > 1 {
		parsed.Confidence = 1
	}
	return models.IntentResult{
		Intent:     intent,
		Confidence: parsed.Confidence,
		Entities: models.Entities{
			DayName:      parsed.Day,
			ExerciseName: parsed.Exercise,
			ReplaceWith:  parsed.ReplaceWith,
			NewTitle:     parsed.NewTitle,
			Muscle:       parsed.Muscle,
		},
	}, nil
}

// stripFences убирает обрамление ```json ... ``` из ответа модели
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if i := strings.LastIndex(s, "```"); i >= 0 {
			s = s[:i]
		}
	}
	// Модели иногда добавляют текст вокруг JSON
	if i := strings.Index(s, "{"); i > 0 {
		s = s[i:]
	}
	if i := strings.LastIndex(s, "}"); i >= 0 && i < len(s)-1 {
		s = s[:i+1]
	}
	return strings.TrimSpace(s)
}
