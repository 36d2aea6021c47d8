package engine

import (
	"fmt"

	"fitbot/internal/models"
)

// RenameDay меняет отображаемое название дня. Ключ дня остаётся прежним:
// на него ссылаются правки и языковая модель, и его смена ломала бы их.
func (e *Engine) RenameDay(tpl models.Template, ent models.Entities) (models.Template, string) {
	if ent.NewTitle == "" {
		return tpl, "Please provide the new day name, e.g. 'rename monday to push day'."
	}

	day, ok := e.ResolveDay(&tpl, ent.DayName, ent.DayOrdinal)
	if !ok {
		return tpl, notFoundSummary("day", ent.DayName, availableDays(&tpl))
	}

	out := tpl.Clone()
	renamed, _ := out.Day(day.Key)
	old := dayLabel(renamed)
	renamed.Title = models.TitleCase(ent.NewTitle)
	return out, fmt.Sprintf("Renamed %s to %s.", old, renamed.Title)
}
