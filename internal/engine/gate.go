package engine

import (
	"fitbot/internal/fuzzy"
	"fitbot/internal/models"
)

// EnforceCatalog финальная проверка шаблона перед показом пользователю:
// каждое упражнение канонизируется к записи каталога, неразрешимые
// отбрасываются, дни добираются до минимума и обрезаются по максимуму.
// Операция идемпотентна: повторный прогон ничего не меняет.
func (e *Engine) EnforceCatalog(tpl models.Template) models.Template {
	out := tpl.Clone()
	for i := range out.Days {
		day := &out.Days[i]
		day.Exercises = e.canonicalizeDay(day)
		e.topUpDay(day)
		if len(day.Exercises) > MaxExercisesPerDay {
			day.Exercises = day.Exercises[:MaxExercisesPerDay]
		}
	}
	return out
}

// canonicalizeDay приводит упражнения дня к каталогу: валидный id,
// иначе точное имя, иначе нечёткое имя, иначе подбор по группам дня.
// Имя всегда берётся из каталога, дубликаты внутри дня отбрасываются.
func (e *Engine) canonicalizeDay(day *models.Day) []models.Exercise {
	seen := make(map[int]bool)
	kept := make([]models.Exercise, 0, len(day.Exercises))

	for _, ex := range day.Exercises {
		canon, ok := e.canonicalize(ex, day, seen)
		if !ok || seen[canon.ID] {
			continue
		}
		seen[canon.ID] = true
		kept = append(kept, canon)
	}
	return kept
}

func (e *Engine) canonicalize(ex models.Exercise, day *models.Day, taken map[int]bool) (models.Exercise, bool) {
	if cat, ok := e.cat.Get(ex.ID); ok {
		return withDefaults(ex, cat), true
	}
	if id, ok := e.cat.IDForName(ex.Name); ok {
		cat, _ := e.cat.Get(id)
		ex.ID = id
		return withDefaults(ex, cat), true
	}
	if ex.Name != "" {
		bestID, bestScore := 0, 0.0
		for _, id := range e.cat.IDs() {
			cat, _ := e.cat.Get(id)
			if s := fuzzy.Similarity(ex.Name, cat.Name); s > bestScore {
				bestID, bestScore = id, s
			}
		}
		if bestScore >= MatchThreshold {
			cat, _ := e.cat.Get(bestID)
			ex.ID = bestID
			return withDefaults(ex, cat), true
		}
	}
	// Последний шанс: упражнение из групп мышц дня вместо неопознанного
	if picked := e.cat.PickFromMuscles(day.MuscleGroups, taken, 1); len(picked) > 0 {
		cat, _ := e.cat.Get(picked[0])
		ex.ID = picked[0]
		return withDefaults(ex, cat), true
	}
	return models.Exercise{}, false
}

// withDefaults подставляет каноническое имя и стандартные объёмы,
// сохраняя уже заданные подходы и повторы
func withDefaults(ex models.Exercise, cat models.CatalogExercise) models.Exercise {
	ex.Name = cat.Name
	if ex.Sets == nil {
		sets := models.DefaultSets
		ex.Sets = &sets
	}
	if ex.Reps == nil || *ex.Reps == "" {
		reps := models.Reps(models.DefaultReps)
		ex.Reps = &reps
	}
	return ex
}

// topUpDay добирает день до минимума: сначала группы мышц дня, потом
// "full body", потом весь каталог. Жёсткий потолок попыток защищает
// от зацикливания на исчерпанном каталоге.
func (e *Engine) topUpDay(day *models.Day) {
	attempts := 0
	for len(day.Exercises) < MinExercisesPerDay && attempts < topUpRetryLimit {
		attempts++
		used := day.UsedIDs()
		need := MinExercisesPerDay - len(day.Exercises)

		picked := e.cat.PickFromMuscles(day.MuscleGroups, used, need)
		if len(picked) == 0 {
			picked = e.cat.PickFromMuscles([]string{"full body"}, used, need)
		}
		if len(picked) == 0 {
			picked = e.cat.PickAny(used, need)
		}
		if len(picked) == 0 {
			break
		}
		for _, id := range picked {
			cat, _ := e.cat.Get(id)
			day.Exercises = append(day.Exercises, models.NewExercise(id, cat.Name))
		}
	}
}
