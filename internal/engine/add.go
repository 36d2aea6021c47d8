package engine

import (
	"fmt"
	"strings"

	"fitbot/internal/models"
)

// AddExercise добавляет упражнение из каталога в день шаблона.
// День выбирается так: явная ссылка на день, иначе "all days",
// иначе первый день. Переполненный день отклоняет добавление.
func (e *Engine) AddExercise(tpl models.Template, instruction string, ent models.Entities) (models.Template, string) {
	name := ent.ExerciseName
	if name == "" {
		name = strings.TrimSpace(instruction)
	}

	res, ok := e.ResolveExercise(name, instruction, MatchThreshold)
	if !ok {
		return tpl, fmt.Sprintf("Could not find an exercise matching '%s' in the catalog, so nothing was added.", name)
	}

	out := tpl.Clone()

	if ent.AllDays {
		var added, skipped []string
		for i := range out.Days {
			d := &out.Days[i]
			if d.HasExercise(res.ID) || len(d.Exercises) >= MaxExercisesPerDay {
				skipped = append(skipped, dayLabel(d))
				continue
			}
			d.Exercises = append(d.Exercises, models.NewExercise(res.ID, res.Name))
			added = append(added, dayLabel(d))
		}
		if len(added) == 0 {
			return tpl, fmt.Sprintf("'%s' is already present or every day is full, nothing was added.", res.Name)
		}
		summary := fmt.Sprintf("Added %s to %s.", res.Name, strings.Join(added, ", "))
		if len(skipped) > 0 {
			summary += fmt.Sprintf(" Skipped %s.", strings.Join(skipped, ", "))
		}
		return out, summary
	}

	day, found := e.ResolveDay(&out, ent.DayName, ent.DayOrdinal)
	if !found {
		if ent.DayName != "" {
			return tpl, notFoundSummary("day", ent.DayName, availableDays(&tpl))
		}
		if len(out.Days) == 0 {
			return tpl, "The template has no days yet, so nothing was added."
		}
		day = &out.Days[0]
	}

	if day.HasExercise(res.ID) {
		return tpl, fmt.Sprintf("%s is already in %s, nothing was changed.", res.Name, dayLabel(day))
	}
	if len(day.Exercises) >= MaxExercisesPerDay {
		return tpl, fmt.Sprintf("%s already has %d exercises (the maximum), so %s was not added.", dayLabel(day), MaxExercisesPerDay, res.Name)
	}

	day.Exercises = append(day.Exercises, models.NewExercise(res.ID, res.Name))
	return out, fmt.Sprintf("Added %s (%d sets x %s reps) to %s.", res.Name, models.DefaultSets, models.DefaultReps, dayLabel(day))
}
