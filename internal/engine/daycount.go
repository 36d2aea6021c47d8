package engine

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"fitbot/internal/models"
)

// Явные сигналы смены количества дней. Только они разрешают менять
// набор ключей дней; без них расхождение ключей трактуется как порча.
var (
	dayCountRe  = regexp.MustCompile(`(?i)(?:make|change|expand|extend|reduce|shrink|cut)\b.*?\b(?:to|into)\s+(\d+)\s+days?\b`)
	wantDaysRe  = regexp.MustCompile(`(?i)\bi\s+want\s+(\d+)\s+days?\b`)
	addDayRe    = regexp.MustCompile(`(?i)\badd\s+(?:a|one|another)\s+(?:more\s+)?day\b`)
	removeDayRe = regexp.MustCompile(`(?i)\b(?:remove|drop|delete)\s+(?:a|one|the\s+last)\s+day\b`)
)

// DayCountSignal ищет явный запрос на изменение количества дней
func (e *Engine) DayCountSignal(instruction string, current int) (int, bool) {
	for _, re := range []*regexp.Regexp{dayCountRe, wantDaysRe} {
		if m := re.FindStringSubmatch(instruction); m != nil {
			if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n != current {
				return n, true
			}
		}
	}
	if addDayRe.MatchString(instruction) {
		return current + 1, true
	}
	if removeDayRe.MatchString(instruction) && current > 1 {
		return current - 1, true
	}
	return 0, false
}

// ChangeDayCount расширяет или сокращает шаблон до n дней. Расширение
// добавляет дни со свободными стандартными названиями, сокращение
// отбрасывает дни с конца.
func (e *Engine) ChangeDayCount(tpl models.Template, n int) (models.Template, string) {
	if n == len(tpl.Days) {
		return tpl, fmt.Sprintf("The template already has %d day(s).", n)
	}
	out := tpl.Clone()

	if n < len(out.Days) {
		out.Days = out.Days[:n]
		return out, fmt.Sprintf("Reduced the template to %d day(s).", n)
	}

	taken := make(map[string]bool, len(out.Days))
	for _, d := range out.Days {
		taken[d.Key] = true
	}
	candidates := models.DefaultDayNames(n + len(out.Days))
	for _, name := range candidates {
		if len(out.Days) >= n {
			break
		}
		key := models.SlugifyDay(name)
		if taken[key] {
			continue
		}
		taken[key] = true
		out.Days = append(out.Days, models.Day{
			Key:          key,
			Title:        models.TitleCase(name),
			MuscleGroups: []string{"full body"},
			Exercises:    []models.Exercise{},
		})
	}
	for i := len(out.Days); i < n; i++ {
		key := "day_" + strconv.Itoa(i+1)
		if taken[key] {
			key = key + "_extra"
		}
		taken[key] = true
		out.Days = append(out.Days, models.Day{
			Key:          key,
			Title:        models.TitleCase(strings.ReplaceAll(key, "_", " ")),
			MuscleGroups: []string{"full body"},
			Exercises:    []models.Exercise{},
		})
	}
	return out, fmt.Sprintf("Expanded the template to %d day(s).", n)
}
