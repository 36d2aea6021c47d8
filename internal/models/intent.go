package models

// Intent класс намерения пользователя, определённый один раз экстрактором.
// Все обработчики ветвятся по тегу и не сканируют исходный текст повторно.
type Intent string

const (
	IntentCreate     Intent = "create"
	IntentShow       Intent = "show"
	IntentEdit       Intent = "edit"
	IntentAdd        Intent = "add"
	IntentRemove     Intent = "remove"
	IntentReplace    Intent = "replace"
	IntentRename     Intent = "rename"
	IntentBulkChange Intent = "bulk_change"
	IntentConfirm    Intent = "confirm"
	IntentDecline    Intent = "decline"
	IntentUnknown    Intent = "unknown"
)

// IsEditFamily сообщает, относится ли намерение к правкам шаблона
func (i Intent) IsEditFamily() bool {
	switch i {
	case IntentEdit, IntentAdd, IntentRemove, IntentReplace, IntentRename, IntentBulkChange:
		return true
	}
	return false
}

// Entities сущности, извлечённые из реплики вместе с намерением
type Entities struct {
	// DayName упомянутый день (каноническое название) либо пустая строка
	DayName string
	// DayOrdinal позиция дня при ссылке вида "day 2", 0 если не указана
	DayOrdinal int
	// AllDays признак ссылки на все дни сразу
	AllDays bool
	// Muscle запрошенная группа мышц (канонический токен) либо пустая строка
	Muscle string
	// Count извлечённое количество дней; HasCount=false означает
	// "число не найдено" — политику умолчания выбирает вызывающий
	Count    int
	HasCount bool
	// ExerciseName фрагмент названия упражнения
	ExerciseName string
	// ReplaceWith название замены при "replace X with Y"
	ReplaceWith string
	// NewTitle новое название дня при переименовании
	NewTitle string
}

// IntentResult результат извлечения намерения
type IntentResult struct {
	Intent     Intent
	Confidence float64
	Entities   Entities
}
