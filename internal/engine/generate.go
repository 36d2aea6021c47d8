package engine

import (
	"fmt"
	"sort"

	"fitbot/internal/models"
)

// MuscleSpecificTemplate строит шаблон, сфокусированный на одной группе
// мышц: каждый день получает подборку наименее использованных упражнений
// группы, чтобы дни различались, пока каталог позволяет.
func (e *Engine) MuscleSpecificTemplate(dayNames []string, muscle string) (models.Template, string) {
	groups, ok := e.cfg.MuscleSynonyms[muscle]
	if !ok {
		groups = []string{muscle}
	}

	var pool []int
	seen := make(map[int]bool)
	for _, g := range groups {
		for _, id := range e.cat.MuscleIDs(g) {
			if !seen[id] {
				seen[id] = true
				pool = append(pool, id)
			}
		}
	}

	tpl := models.NewSkeleton(dayNames)
	tpl.Name = fmt.Sprintf("%s Workout (%d days)", models.TitleCase(muscle), len(dayNames))

	usage := make(map[int]int, len(pool))
	for i := range tpl.Days {
		day := &tpl.Days[i]
		day.Title = fmt.Sprintf("%s - %s", day.Title, models.TitleCase(muscle))
		day.MuscleGroups = append([]string(nil), groups...)

		picked := leastUsed(pool, usage, MinExercisesPerDay)
		if len(picked) == 0 {
			picked = e.cat.PickAny(map[int]bool{}, MinExercisesPerDay)
		}
		for _, id := range picked {
			ex, _ := e.cat.Get(id)
			day.Exercises = append(day.Exercises, models.NewExercise(id, ex.Name))
			usage[id]++
		}
	}

	tpl = e.EnforceCatalog(tpl)
	summary := fmt.Sprintf("Built a %d-day template focused on %s.", len(dayNames), muscle)
	return tpl, summary
}

// leastUsed выбирает n наименее использованных id; при равенстве
// побеждает порядок пула, выбор детерминирован
func leastUsed(pool []int, usage map[int]int, n int) []int {
	if len(pool) == 0 || n <= 0 {
		return nil
	}
	type ranked struct {
		id, uses, pos int
	}
	rs := make([]ranked, len(pool))
	for i, id := range pool {
		rs[i] = ranked{id: id, uses: usage[id], pos: i}
	}
	sort.SliceStable(rs, func(a, b int) bool {
		if rs[a].uses != rs[b].uses {
			return rs[a].uses < rs[b].uses
		}
		return rs[a].pos < rs[b].pos
	})
	if n > len(rs) {
		n = len(rs)
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = rs[i].id
	}
	return out
}
