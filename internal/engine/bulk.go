package engine

import (
	"fmt"
	"strings"

	"fitbot/internal/models"
	"fitbot/internal/nlp"
)

// BulkMuscleChange применяет массовую операцию к нескольким дням:
// замена набора упражнений дня на новую группу мышц либо добавление
// одного упражнения группы в каждый день.
func (e *Engine) BulkMuscleChange(tpl models.Template, info nlp.BulkInfo) (models.Template, string) {
	if info.Muscle == "" {
		return tpl, "Please name the muscle group, e.g. 'change all days to legs'."
	}

	groups, ok := e.cfg.MuscleSynonyms[info.Muscle]
	if !ok {
		groups = []string{info.Muscle}
	}

	out := tpl.Clone()
	target := len(out.Days)
	if info.TargetDays == nlp.TargetCount && info.Count > 0 && info.Count < target {
		target = info.Count
	}

	if info.Operation == "add" {
		return e.bulkAdd(tpl, out, groups, target, info.Muscle)
	}
	return e.bulkReplace(tpl, out, groups, target, info.Muscle)
}

// bulkReplace заменяет упражнения целевых дней подборкой из групп.
// Использованные id учитываются глобально, чтобы дни не дублировали
// друг друга; при слишком бедном результате добор повторяется с учётом
// только текущего дня.
func (e *Engine) bulkReplace(orig, out models.Template, groups []string, target int, muscle string) (models.Template, string) {
	globalUsed := make(map[int]bool)
	changed := 0
	for i := 0; i < target; i++ {
		day := &out.Days[i]
		picked := e.drawRoundRobin(groups, globalUsed, bulkDrawTarget)
		if len(picked) < bulkMinDraw {
			picked = e.drawRoundRobin(groups, map[int]bool{}, bulkDrawTarget)
		}
		if len(picked) == 0 {
			continue
		}
		day.Exercises = day.Exercises[:0]
		for _, id := range picked {
			ex, _ := e.cat.Get(id)
			day.Exercises = append(day.Exercises, models.NewExercise(id, ex.Name))
			globalUsed[id] = true
		}
		day.MuscleGroups = append([]string(nil), groups...)
		changed++
	}
	if changed == 0 {
		return orig, fmt.Sprintf("The catalog has no exercises for '%s', nothing was changed.", muscle)
	}
	return out, fmt.Sprintf("Changed %d day(s) to focus on %s.", changed, muscle)
}

// bulkAdd добавляет по одному упражнению группы в каждый целевой день
func (e *Engine) bulkAdd(orig, out models.Template, groups []string, target int, muscle string) (models.Template, string) {
	globalUsed := make(map[int]bool)
	var added []string
	for i := 0; i < target; i++ {
		day := &out.Days[i]
		if len(day.Exercises) >= MaxExercisesPerDay {
			continue
		}
		used := day.UsedIDs()
		for id := range globalUsed {
			used[id] = true
		}
		picked := e.cat.PickFromMuscles(groups, used, 1)
		if len(picked) == 0 {
			picked = e.cat.PickFromMuscles(groups, day.UsedIDs(), 1)
		}
		if len(picked) == 0 {
			continue
		}
		ex, _ := e.cat.Get(picked[0])
		day.Exercises = append(day.Exercises, models.NewExercise(ex.ID, ex.Name))
		globalUsed[ex.ID] = true
		added = append(added, fmt.Sprintf("%s to %s", ex.Name, dayLabel(day)))
	}
	if len(added) == 0 {
		return orig, fmt.Sprintf("Could not add any %s exercises: days are full or the catalog has none.", muscle)
	}
	return out, fmt.Sprintf("Added %s.", strings.Join(added, ", "))
}

// drawRoundRobin набирает до n упражнений, обходя группы по кругу,
// чтобы подборка дня не состояла из одной группы
func (e *Engine) drawRoundRobin(groups []string, used map[int]bool, n int) []int {
	pools := make([][]int, len(groups))
	for i, g := range groups {
		pools[i] = e.cat.MuscleIDs(g)
	}
	idx := make([]int, len(groups))
	seen := make(map[int]bool)

	var out []int
	for len(out) < n {
		progressed := false
		for i := range pools {
			if len(out) >= n {
				break
			}
			for idx[i] < len(pools[i]) {
				id := pools[i][idx[i]]
				idx[i]++
				if used[id] || seen[id] {
					continue
				}
				seen[id] = true
				out = append(out, id)
				progressed = true
				break
			}
		}
		if !progressed {
			break
		}
	}
	return out
}

// ChangeAllExercises заменяет упражнения каждого дня свежей подборкой,
// сохраняя фокус дня на его группах мышц
func (e *Engine) ChangeAllExercises(tpl models.Template) (models.Template, string) {
	out := tpl.Clone()
	changed := 0
	for i := range out.Days {
		day := &out.Days[i]
		exclude := day.UsedIDs()
		n := len(day.Exercises)
		if n < MinExercisesPerDay {
			n = MinExercisesPerDay
		}
		picked := e.cat.PickFromMuscles(day.MuscleGroups, exclude, n)
		if len(picked) < n {
			for _, id := range e.cat.PickAny(exclude, n-len(picked)) {
				dup := false
				for _, p := range picked {
					if p == id {
						dup = true
						break
					}
				}
				if !dup {
					picked = append(picked, id)
				}
			}
		}
		if len(picked) == 0 {
			continue
		}
		day.Exercises = day.Exercises[:0]
		for _, id := range picked {
			ex, _ := e.cat.Get(id)
			day.Exercises = append(day.Exercises, models.NewExercise(id, ex.Name))
		}
		changed++
	}
	if changed == 0 {
		return tpl, "Could not find replacement exercises in the catalog, nothing was changed."
	}
	return out, fmt.Sprintf("Refreshed the exercises on %d day(s).", changed)
}
