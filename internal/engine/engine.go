// Package engine реализует детерминированные операции над шаблоном:
// добавление, удаление, замена, переименование, массовые изменения
// и пост-проверку каталога. Каждая операция возвращает новый шаблон
// и человекочитаемое описание; при отказе шаблон остаётся прежним.
package engine

import (
	"fmt"
	"strings"

	"fitbot/internal/models"
	"fitbot/internal/nlp"
)

// Границы и пороги, общие для всех обработчиков
const (
	// MinExercisesPerDay нижняя граница упражнений в дне после мутации
	MinExercisesPerDay = 6
	// MaxExercisesPerDay верхняя граница упражнений в дне
	MaxExercisesPerDay = 8
	// MatchThreshold минимальная похожесть для add/remove/replace
	MatchThreshold = 0.5
	// AlternativeThreshold ослабленный порог для "alternative for X"
	AlternativeThreshold = 0.4
	// TemplateMatchThreshold порог поиска упражнения внутри шаблона
	TemplateMatchThreshold = 0.6
	// topUpRetryLimit предел попыток добора до минимума, чтобы не
	// зациклиться на исчерпанном каталоге
	topUpRetryLimit = 20
	// bulkDrawTarget сколько упражнений набирает массовая замена на день
	bulkDrawTarget = 6
	// bulkMinDraw ниже этого количества добор повторяется без
	// глобального ограничения использованных id
	bulkMinDraw = 2
)

// Engine применяет операции к шаблону поверх снимка каталога.
// Снимок берётся один раз на операцию и только читается.
type Engine struct {
	cat       *models.Catalog
	cfg       *Config
	extractor *nlp.Extractor
}

// New создаёт движок мутаций
func New(cat *models.Catalog, extractor *nlp.Extractor, cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultEngineConfig()
	}
	return &Engine{cat: cat, cfg: cfg, extractor: extractor}
}

// Catalog возвращает снимок каталога движка
func (e *Engine) Catalog() *models.Catalog { return e.cat }

// ApplyEdit применяет правку по распознанному намерению. handled=false
// означает, что правило не сработало и вызывающий может обратиться
// к языковой модели. Любая мутация проходит проверку каталога, а смена
// набора ключей дней без явного запроса откатывается к снимку.
func (e *Engine) ApplyEdit(tpl models.Template, instruction string, res models.IntentResult) (models.Template, string, bool) {
	snapshot := tpl.Clone()

	var (
		updated    models.Template
		summary    string
		handled    bool
		keysChange bool
	)

	if n, ok := e.DayCountSignal(instruction, len(tpl.Days)); ok {
		updated, summary = e.ChangeDayCount(tpl, n)
		handled = true
		keysChange = true
	} else {
		switch res.Intent {
		case models.IntentBulkChange:
			info := e.extractor.ExtractBulkInfo(instruction)
			updated, summary = e.BulkMuscleChange(tpl, info)
			handled = true
		case models.IntentReplace:
			updated, summary = e.Replace(tpl, instruction, res.Entities)
			handled = true
		case models.IntentAdd:
			updated, summary = e.AddExercise(tpl, instruction, res.Entities)
			handled = true
		case models.IntentRemove:
			updated, summary = e.RemoveExercise(tpl, instruction, res.Entities)
			handled = true
		case models.IntentRename:
			updated, summary = e.RenameDay(tpl, res.Entities)
			handled = true
		case models.IntentEdit:
			if e.isChangeAllExercises(instruction) {
				updated, summary = e.ChangeAllExercises(tpl)
				handled = true
			}
		}
	}

	if !handled {
		return tpl, "", false
	}

	updated = e.EnforceCatalog(updated)

	// Набор ключей дней может меняться только явным запросом на
	// изменение количества дней; иначе это порча структуры
	if !keysChange && !updated.SameDayKeys(&snapshot) {
		return snapshot, "The change could not be applied without breaking the template structure, so the template was kept as-is.", true
	}
	return updated, summary, true
}

// isChangeAllExercises распознаёт запрос полной замены упражнений
func (e *Engine) isChangeAllExercises(instruction string) bool {
	lower := strings.ToLower(instruction)
	return (strings.Contains(lower, "change all") || strings.Contains(lower, "replace all")) &&
		strings.Contains(lower, "exercise")
}

// availableDays перечисляет дни для сообщений об ошибках
func availableDays(tpl *models.Template) string {
	return strings.Join(tpl.DayKeys(), ", ")
}

// dayLabel отображаемое имя дня для сводок
func dayLabel(d *models.Day) string {
	if d.Title != "" {
		return d.Title
	}
	return models.TitleCase(strings.ReplaceAll(d.Key, "_", " "))
}

// notFoundSummary единый формат сообщения о неразрешённой ссылке
func notFoundSummary(what, got string, alternatives string) string {
	return fmt.Sprintf("Could not find %s '%s'. Available: %s.", what, got, alternatives)
}
