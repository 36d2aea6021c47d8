package nlp

import (
	"context"
	"log"
	"strings"

	"fitbot/internal/fuzzy"
	"fitbot/internal/models"
)

// UnknownFloor минимальная уверенность: ниже неё намерение считается
// нераспознанным и вызывающий должен уточнить запрос
const UnknownFloor = 0.15

// llmAssistFloor порог, ниже которого правила считаются неубедительными
// и подключается языковая модель
const llmAssistFloor = 0.35

// contextEditBoost добавка к уверенности правки в контексте редактирования
const contextEditBoost = 0.2

// IntentClassifier внешний коллаборатор (языковая модель) для разбора
// неоднозначных реплик. Ошибки коллаборатора глушатся — экстрактор
// всегда возвращает хотя бы результат правил.
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, text string) (models.IntentResult, error)
}

// Extractor извлекает намерение и сущности из реплики пользователя
type Extractor struct {
	cfg *Config
	llm IntentClassifier
}

// NewExtractor создаёт экстрактор. llm может быть nil — тогда работает
// только правило-ориентированный разбор.
func NewExtractor(cfg *Config, llm IntentClassifier) *Extractor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Extractor{cfg: cfg, llm: llm}
}

// Extract классифицирует реплику и извлекает сущности
func (e *Extractor) Extract(ctx context.Context, text string, conv *models.Context) models.IntentResult {
	text = strings.TrimSpace(text)

	createConf := e.confidence(text, e.cfg.create)
	showConf := e.confidence(text, e.cfg.show)
	editConf := e.confidence(text, e.cfg.edit)

	// В контексте редактирования реплика чаще всего — правка
	if conv != nil && (conv.State == models.StateEditDecision || conv.State == models.StateConfirmSave) {
		editConf += contextEditBoost
	}

	intent := models.IntentUnknown
	best := 0.0
	for _, c := range []struct {
		intent models.Intent
		conf   float64
	}{
		{models.IntentCreate, createConf},
		{models.IntentShow, showConf},
		{models.IntentEdit, editConf},
	} {
		if c.conf > best {
			intent, best = c.intent, c.conf
		}
	}

	// Короткие утвердительные/отрицательные ответы
	if e.IsPositive(text) && best < 0.9 {
		intent, best = models.IntentConfirm, 0.9
	} else if e.IsNegative(text) && best < 0.9 {
		intent, best = models.IntentDecline, 0.9
	}

	if best < UnknownFloor {
		intent = models.IntentUnknown
	}

	// Уточняем класс правки до конкретной операции
	if intent == models.IntentEdit {
		intent = e.refineEdit(text)
	}

	result := models.IntentResult{Intent: intent, Confidence: best}
	result.Entities = e.extractEntities(text, result.Intent)

	// Правила неубедительны — спрашиваем модель, но её сбой не
	// поднимается наверх
	if best < llmAssistFloor && intent != models.IntentConfirm && intent != models.IntentDecline && e.llm != nil {
		if llmRes, err := e.llm.ClassifyIntent(ctx, text); err == nil && llmRes.Confidence > result.Confidence {
			if llmRes.Entities.DayName == "" {
				llmRes.Entities.DayName = result.Entities.DayName
			}
			return llmRes
		} else if err != nil {
			log.Printf("nlp: классификация через LLM не удалась: %v", err)
		}
	}
	return result
}

// confidence считает взвешенную уверенность: 60% паттерны, 40% ключевые слова
func (e *Extractor) confidence(text string, cfg intentConfig) float64 {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 0.0
	}
	conf := 0.0

	hits := 0
	for _, p := range cfg.patterns {
		if p.MatchString(lower) {
			hits++
		}
	}
	if hits > 0 {
		conf += float64(hits) / float64(len(cfg.patterns)) * 0.6
	}

	words := strings.Fields(lower)
	kwHits := 0
	for _, kw := range cfg.keywords {
		if strings.Contains(lower, kw) {
			kwHits++
			continue
		}
		for _, w := range words {
			if fuzzy.WordMatch(kw, w) {
				kwHits++
				break
			}
		}
	}
	if kwHits > 0 {
		conf += float64(kwHits) / float64(len(cfg.keywords)) * 0.4
	}

	if conf > 1.0 {
		conf = 1.0
	}
	return conf
}

// refineEdit уточняет правку до add/remove/replace/rename/bulk_change
func (e *Extractor) refineEdit(text string) models.Intent {
	lower := strings.ToLower(text)

	if info := e.ExtractBulkInfo(text); info.IsBulk && info.Muscle != "" && info.Operation != "" {
		return models.IntentBulkChange
	}
	for _, p := range e.cfg.renamePatterns[:2] {
		if m := p.FindStringSubmatch(lower); m != nil && e.looksLikeDay(m[1]) {
			return models.IntentRename
		}
	}
	if containsAny(lower, "remove", "delete", "take out", "drop ") {
		return models.IntentRemove
	}
	if e.cfg.replaceWith.MatchString(lower) || containsAny(lower, "alternative", "alternate") {
		return models.IntentReplace
	}
	if containsAny(lower, "add ", "include ", "put ") {
		return models.IntentAdd
	}
	return models.IntentEdit
}

// extractEntities вытаскивает сущности, зависящие от класса намерения
func (e *Extractor) extractEntities(text string, intent models.Intent) models.Entities {
	lower := strings.ToLower(text)
	ent := models.Entities{}

	if day, ok := e.MatchDay(lower); ok {
		ent.DayName = day
	}
	if m := e.cfg.ordinalDay.FindStringSubmatch(lower); m != nil {
		ent.DayOrdinal = atoiSafe(m[1])
	}
	for _, p := range e.cfg.allDays {
		if p.MatchString(lower) {
			ent.AllDays = true
			break
		}
	}
	if muscle, ok := e.MatchMuscle(lower); ok {
		ent.Muscle = muscle
	}
	if count, ok := e.ExtractDaysCount(text); ok {
		ent.Count = count
		ent.HasCount = true
	}

	switch intent {
	case models.IntentAdd:
		for _, p := range e.cfg.addPatterns {
			if m := p.FindStringSubmatch(lower); m != nil {
				ent.ExerciseName = strings.TrimSpace(m[1])
				if len(m) > 2 && ent.DayName == "" {
					ent.DayName = strings.TrimSpace(m[2])
				}
				break
			}
		}
	case models.IntentReplace:
		if m := e.cfg.replaceWith.FindStringSubmatch(lower); m != nil {
			ent.ExerciseName = strings.TrimSpace(m[1])
			ent.ReplaceWith = strings.TrimSpace(m[2])
		} else {
			for _, p := range e.cfg.alternative {
				if m := p.FindStringSubmatch(lower); m != nil {
					ent.ExerciseName = strings.TrimSpace(m[1])
					break
				}
			}
		}
	case models.IntentRename:
		for _, p := range e.cfg.renamePatterns {
			if m := p.FindStringSubmatch(lower); m != nil && e.looksLikeDay(m[1]) {
				ent.DayName = strings.TrimSpace(m[1])
				ent.NewTitle = models.TitleCase(m[2])
				break
			}
		}
	}
	return ent
}

// looksLikeDay проверяет, что строка похожа на ссылку на день
func (e *Extractor) looksLikeDay(s string) bool {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return false
	}
	if e.cfg.ordinalDay.MatchString(s) {
		return true
	}
	if _, ok := e.MatchDay(s); ok {
		return true
	}
	return strings.Contains(s, "day")
}

// MatchDay находит каноническое название дня недели с допуском опечаток
func (e *Extractor) MatchDay(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, day := range e.cfg.dayOrder {
		for _, p := range e.cfg.dayPatterns[day] {
			if p.MatchString(lower) {
				return day, true
			}
		}
	}
	return "", false
}

// MatchMuscle находит канонический токен группы мышц
func (e *Extractor) MatchMuscle(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, muscle := range e.cfg.muscleOrder {
		for _, p := range e.cfg.musclePatterns[muscle] {
			if p.MatchString(lower) {
				return muscle, true
			}
		}
	}
	return "", false
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0
		}
		n = n*10 + int(r-'0')
	}
	return n
}
