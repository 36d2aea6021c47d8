package nlp

import "strings"

// saveCommands явные команды сохранения: в EDIT_DECISION они сразу
// ведут к подтверждению, минуя разбор тональности
var saveCommands = []string{
	"save", "save it", "store", "store it", "keep", "keep it",
	"perfect", "looks good", "good to go",
}

// editKeywords слова-правки: их присутствие отменяет отрицательную
// трактовку ("no, change monday" — это правка, не отказ)
var editKeywords = []string{"change", "edit", "modify", "replace", "alternative", "different"}

// IsSaveCommand проверяет явную команду сохранения
func IsSaveCommand(text string) bool {
	lower := strings.ToLower(text)
	for _, cmd := range saveCommands {
		if strings.Contains(lower, cmd) {
			return true
		}
	}
	return false
}

// IsPositive распознаёт утвердительный ответ
func (e *Extractor) IsPositive(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return false
	}
	switch lower {
	case "save", "save it", "store", "store it", "keep", "keep it":
		return true
	}
	for _, p := range e.cfg.positive {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// IsNegative распознаёт отрицательный ответ
func (e *Extractor) IsNegative(text string) bool {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return false
	}
	for _, kw := range editKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, p := range e.cfg.negative {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}
