package engine

import (
	"fmt"

	"fitbot/internal/models"
)

// Replace обрабатывает замену упражнения: явную ("replace X with Y")
// либо запрос альтернативы ("alternative for X"), когда замену подбирает
// движок из той же или смежной группы мышц.
func (e *Engine) Replace(tpl models.Template, instruction string, ent models.Entities) (models.Template, string) {
	if ent.ExerciseName != "" && ent.ReplaceWith != "" {
		return e.replaceExplicit(tpl, instruction, ent)
	}
	return e.replaceAlternative(tpl, instruction, ent)
}

// replaceExplicit меняет X на Y: X ищется в шаблоне, Y — в каталоге.
// Подходы и повторы заменяемого упражнения сохраняются.
func (e *Engine) replaceExplicit(tpl models.Template, instruction string, ent models.Entities) (models.Template, string) {
	dayIdx, exIdx, _, found := e.findInTemplate(&tpl, ent.ExerciseName, MatchThreshold)
	if !found {
		return tpl, fmt.Sprintf("Could not find '%s' in the template, nothing was replaced.", ent.ExerciseName)
	}

	repl, ok := e.ResolveExercise(ent.ReplaceWith, instruction, MatchThreshold)
	if !ok {
		return tpl, fmt.Sprintf("Could not find a catalog exercise matching '%s', nothing was replaced.", ent.ReplaceWith)
	}

	out := tpl.Clone()
	day := &out.Days[dayIdx]
	old := day.Exercises[exIdx]
	if old.ID == repl.ID {
		return tpl, fmt.Sprintf("%s is already in place, nothing was changed.", repl.Name)
	}
	if day.HasExercise(repl.ID) {
		return tpl, fmt.Sprintf("%s is already in %s, nothing was replaced.", repl.Name, dayLabel(day))
	}

	day.Exercises[exIdx].ID = repl.ID
	day.Exercises[exIdx].Name = repl.Name
	return out, fmt.Sprintf("Replaced %s with %s in %s.", old.Name, repl.Name, dayLabel(day))
}

// replaceAlternative подбирает замену сам: из групп мышц дня, потом из
// смежных групп исходного упражнения, в крайнем случае любое свободное
// упражнение каталога. Объёмы исходного упражнения сохраняются.
func (e *Engine) replaceAlternative(tpl models.Template, instruction string, ent models.Entities) (models.Template, string) {
	name := ent.ExerciseName
	if name == "" {
		name = instruction
	}

	// Ослабленный порог: пользователь часто называет упражнение неточно
	res, ok := e.ResolveExercise(name, instruction, AlternativeThreshold)
	target := name
	if ok {
		target = res.Name
	}

	dayIdx, exIdx, _, found := e.findInTemplate(&tpl, target, TemplateMatchThreshold)
	if !found {
		return tpl, fmt.Sprintf("Could not find '%s' in the template to suggest an alternative.", name)
	}

	out := tpl.Clone()
	day := &out.Days[dayIdx]
	old := day.Exercises[exIdx]
	used := day.UsedIDs()

	picked := e.cat.PickFromMuscles(day.MuscleGroups, used, 1)
	if len(picked) == 0 {
		if ex, okEx := e.cat.Get(old.ID); okEx {
			related := append([]string{ex.MuscleGroup}, e.cfg.RelatedMuscles[ex.MuscleGroup]...)
			picked = e.cat.PickFromMuscles(related, used, 1)
		}
	}
	if len(picked) == 0 {
		picked = e.cat.PickAny(used, 1)
	}
	if len(picked) == 0 {
		return tpl, fmt.Sprintf("No alternative for %s is available in the catalog.", old.Name)
	}

	alt, _ := e.cat.Get(picked[0])
	day.Exercises[exIdx].ID = alt.ID
	day.Exercises[exIdx].Name = alt.Name
	return out, fmt.Sprintf("Swapped %s for %s in %s.", old.Name, alt.Name, dayLabel(day))
}
