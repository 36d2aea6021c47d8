package nlp

import (
	"regexp"
	"strconv"
	"strings"

	"fitbot/internal/models"
)

// specialPhrases готовые словесные обозначения количества дней
var specialPhrases = []struct {
	phrase string
	count  int
}{
	{"full week", 7}, {"whole week", 7}, {"all days", 7}, {"every day", 7}, {"daily", 7},
	{"monday to friday", 5}, {"mon-fri", 5}, {"weekdays", 5}, {"work days", 5},
	{"monday to saturday", 6}, {"mon-sat", 6},
	{"weekends", 2}, {"weekend", 2},
	{"as usual", 6}, {"like usual", 6}, {"same as usual", 6},
	{"usual", 6}, {"normal", 6}, {"default", 6}, {"standard", 6}, {"typical", 6},
	{"one week", 7}, {"1 week", 7}, {"1week", 7},
	{"two week", 14}, {"2 week", 14}, {"2week", 14},
	{"weekly", 7}, {"week", 7},
}

// ExtractDaysCount извлекает количество тренировочных дней.
// Возвращает (0, false), если в тексте нет информации о днях —
// политику значения по умолчанию выбирает вызывающий.
func (e *Extractor) ExtractDaysCount(text string) (int, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return 0, false
	}

	// Числовые паттерны раньше словесных: иначе "5 times per week"
	// поглотила бы фраза "week"
	for _, p := range e.cfg.countPatterns {
		m := p.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		count, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		// "2 weeks of training" — счёт в неделях
		if strings.Contains(lower, "week") && count <= 4 {
			return count * 7, true
		}
		if count >= 1 && count <= 7 {
			return count, true
		}
	}

	for _, sp := range specialPhrases {
		if strings.Contains(lower, sp.phrase) {
			return sp.count, true
		}
	}

	// Фолбэк: считаем различные упоминания дней недели
	mentioned := e.MentionedDays(lower)
	if len(mentioned) > 0 {
		return len(mentioned), true
	}
	return 0, false
}

// MentionedDays возвращает упомянутые дни недели в каноническом порядке
func (e *Extractor) MentionedDays(text string) []string {
	lower := strings.ToLower(text)
	var out []string
	for _, day := range e.cfg.dayOrder {
		for _, p := range e.cfg.dayPatterns[day] {
			if p.MatchString(lower) {
				out = append(out, day)
				break
			}
		}
	}
	return out
}

// nothingKeywords ответы, означающие "использовать значения по умолчанию"
var nothingKeywords = map[string]bool{
	"nothing": true, "no": true, "skip": true, "default": true, "defaults": true,
	"normal": true, "standard": true, "none": true, "nope": true, "nah": true,
}

// IsNothingResponse проверяет, просит ли пользователь значения по умолчанию
func IsNothingResponse(text string) bool {
	return nothingKeywords[strings.ToLower(strings.TrimSpace(text))]
}

var (
	quotedRe  = regexp.MustCompile(`"([^"]+)"|'([^']+)'`)
	wordDayRe = regexp.MustCompile(`(?i)(\w+\s+day)\b`)
)

// skipWords слова, которые не могут быть пользовательскими названиями дней
var skipWords = map[string]bool{
	"workout": true, "template": true, "plan": true, "routine": true, "exercise": true,
	"training": true, "fitness": true, "create": true, "make": true, "build": true,
	"generate": true, "want": true, "need": true, "like": true, "prefer": true,
	"days": true, "day": true, "times": true, "week": true, "the": true, "and": true,
	"or": true, "but": true, "for": true, "with": true,
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// ExtractDayNames извлекает названия дней для шаблона: дни недели,
// группы мышц, пользовательские имена через разделители; недостающие
// дополняются стандартными названиями.
func (e *Extractor) ExtractDayNames(text string, count int) []string {
	lower := strings.ToLower(strings.TrimSpace(text))

	if lower == "" || len(lower) < 2 || IsNothingResponse(lower) {
		return models.DefaultDayNames(count)
	}

	if strings.Contains(lower, ",") {
		if names := splitNames(lower, ","); len(names) > 0 {
			return padNames(names, count)
		}
	}

	for trigger := range nothingKeywords {
		if trigger != "no" && strings.Contains(lower, trigger) {
			return models.DefaultDayNames(count)
		}
	}

	if mentioned := e.MentionedDays(lower); len(mentioned) > 0 {
		names := make([]string, len(mentioned))
		for i, d := range mentioned {
			names[i] = models.TitleCase(d)
		}
		return padWithWeekDays(names, count)
	}

	muscleNames := []string{"push", "pull", "legs", "upper", "lower", "full body", "cardio", "arms", "chest", "back"}
	var found []string
	for _, g := range muscleNames {
		if strings.Contains(lower, g) {
			found = append(found, models.TitleCase(g))
		}
	}
	if len(found) >= count {
		return found[:count]
	}

	for _, sep := range []string{"\n", "|", ";", "/", "\\"} {
		if strings.Contains(lower, sep) {
			if names := splitNames(lower, sep); len(names) >= count {
				return names[:count]
			}
		}
	}

	if quoted := quotedRe.FindAllStringSubmatch(lower, -1); len(quoted) >= count {
		names := make([]string, 0, count)
		for _, m := range quoted[:count] {
			q := m[1]
			if q == "" {
				q = m[2]
			}
			names = append(names, models.TitleCase(q))
		}
		return names
	}

	// "monster day crunch day" — пары "<слово> day"
	if matches := wordDayRe.FindAllString(lower, -1); len(matches) >= count {
		names := make([]string, 0, count)
		for _, m := range matches[:count] {
			names = append(names, models.TitleCase(m))
		}
		return names
	}

	// Любые содержательные слова как пользовательские названия
	var potential []string
	for _, w := range strings.Fields(lower) {
		if len(potential) >= count {
			break
		}
		if len(w) > 2 && !skipWords[w] && !isDigits(w) {
			potential = append(potential, models.TitleCase(w))
		}
	}
	if len(potential) > 0 {
		return padNames(potential, count)
	}

	return models.DefaultDayNames(count)
}

func splitNames(text, sep string) []string {
	var out []string
	for _, part := range strings.Split(text, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, models.TitleCase(part))
		}
	}
	return out
}

// padNames дополняет список стандартными названиями до count
func padNames(names []string, count int) []string {
	if len(names) >= count {
		return names[:count]
	}
	defaults := models.DefaultDayNames(count)
	for len(names) < count {
		names = append(names, defaults[len(names)])
	}
	return names
}

// padWithWeekDays дополняет найденные дни недели неиспользованными днями
func padWithWeekDays(names []string, count int) []string {
	if len(names) >= count {
		return names[:count]
	}
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, d := range models.WeekDays {
		if len(names) >= count {
			break
		}
		if !have[d] {
			names = append(names, d)
			have[d] = true
		}
	}
	for i := len(names); len(names) < count; i++ {
		names = append(names, "Day "+strconv.Itoa(len(names)+1))
	}
	return names[:count]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
