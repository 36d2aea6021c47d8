package engine

import (
	"context"
	"strings"
	"testing"

	"fitbot/internal/models"
	"fitbot/internal/nlp"
)

// testCatalog небольшой срез справочника, покрывающий основные группы
func testCatalog() *models.Catalog {
	return models.NewCatalog([]models.CatalogExercise{
		{ID: 1, Name: "Squat", MuscleGroup: "quadriceps"},
		{ID: 2, Name: "Leg Press", MuscleGroup: "quadriceps"},
		{ID: 3, Name: "Romanian Deadlift", MuscleGroup: "hamstrings"},
		{ID: 4, Name: "Leg Curl", MuscleGroup: "hamstrings"},
		{ID: 5, Name: "Hip Thrust", MuscleGroup: "glutes"},
		{ID: 6, Name: "Lunge", MuscleGroup: "glutes"},
		{ID: 7, Name: "Calf Raise", MuscleGroup: "calves"},
		{ID: 8, Name: "Bench Press", MuscleGroup: "chest"},
		{ID: 9, Name: "Incline Dumbbell Press", MuscleGroup: "chest"},
		{ID: 10, Name: "Push-Up", MuscleGroup: "chest"},
		{ID: 11, Name: "Barbell Row", MuscleGroup: "back"},
		{ID: 12, Name: "Pull-Up", MuscleGroup: "back"},
		{ID: 13, Name: "Lat Pulldown", MuscleGroup: "back"},
		{ID: 14, Name: "Overhead Press", MuscleGroup: "shoulders"},
		{ID: 15, Name: "Lateral Raise", MuscleGroup: "shoulders"},
		{ID: 16, Name: "Bicep Curl", MuscleGroup: "biceps"},
		{ID: 17, Name: "Hammer Curl", MuscleGroup: "biceps"},
		{ID: 18, Name: "Tricep Pushdown", MuscleGroup: "triceps"},
		{ID: 19, Name: "Dip", MuscleGroup: "triceps"},
		{ID: 20, Name: "Plank", MuscleGroup: "core"},
		{ID: 21, Name: "Crunch", MuscleGroup: "core"},
		{ID: 22, Name: "Deadlift", MuscleGroup: "full body"},
		{ID: 23, Name: "Burpee", MuscleGroup: "full body"},
		{ID: 24, Name: "Kettlebell Swing", MuscleGroup: "full body"},
		{ID: 25, Name: "Farmer Carry", MuscleGroup: "full body"},
	})
}

func testEngine() *Engine {
	return New(testCatalog(), nlp.NewExtractor(nil, nil), nil)
}

// testTemplate два дня по шесть упражнений
func testTemplate() models.Template {
	cat := testCatalog()
	tpl := models.NewSkeleton([]string{"Monday", "Tuesday"})
	tpl.Days[0].MuscleGroups = []string{"chest", "triceps"}
	tpl.Days[1].MuscleGroups = []string{"back", "biceps"}
	for _, id := range []int{1, 9, 10, 18, 19, 22} {
		ex, _ := cat.Get(id)
		tpl.Days[0].Exercises = append(tpl.Days[0].Exercises, models.NewExercise(id, ex.Name))
	}
	for _, id := range []int{11, 12, 13, 16, 17, 23} {
		ex, _ := cat.Get(id)
		tpl.Days[1].Exercises = append(tpl.Days[1].Exercises, models.NewExercise(id, ex.Name))
	}
	return tpl
}

func dayIDs(t *testing.T, tpl *models.Template, key string) []int {
	t.Helper()
	d, ok := tpl.Day(key)
	if !ok {
		t.Fatalf("день %s не найден", key)
	}
	ids := make([]int, len(d.Exercises))
	for i, ex := range d.Exercises {
		ids[i] = ex.ID
	}
	return ids
}

func TestAddExercise(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	got, summary := e.AddExercise(tpl, "add bench press on monday", models.Entities{
		ExerciseName: "bench press", DayName: "monday",
	})

	day, _ := got.Day("monday")
	if !day.HasExercise(8) {
		t.Fatalf("Bench Press не добавлен: %v", dayIDs(t, &got, "monday"))
	}
	if !strings.Contains(summary, "Bench Press") || !strings.Contains(summary, "Monday") {
		t.Errorf("сводка не называет упражнение и день: %q", summary)
	}
	// Исходный шаблон не изменён
	if orig, _ := tpl.Day("monday"); orig.HasExercise(8) {
		t.Error("мутация затронула исходный шаблон")
	}
}

func TestAddExerciseTypo(t *testing.T) {
	e := testEngine()
	got, _ := e.AddExercise(testTemplate(), "add benhc press on monday", models.Entities{
		ExerciseName: "benhc press", DayName: "monday",
	})
	day, _ := got.Day("monday")
	if !day.HasExercise(8) {
		t.Error("опечатка в названии не разрешилась в Bench Press")
	}
}

func TestAddExerciseRejections(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	t.Run("неизвестное упражнение", func(t *testing.T) {
		got, summary := e.AddExercise(tpl, "add xyzzy", models.Entities{ExerciseName: "xyzzy"})
		if len(got.Days[0].Exercises) != len(tpl.Days[0].Exercises) {
			t.Error("шаблон изменён при неразрешимом упражнении")
		}
		if !strings.Contains(summary, "xyzzy") {
			t.Errorf("сводка не объясняет отказ: %q", summary)
		}
	})

	t.Run("дубликат", func(t *testing.T) {
		got, _ := e.AddExercise(tpl, "add squat on monday", models.Entities{
			ExerciseName: "squat", DayName: "monday",
		})
		day, _ := got.Day("monday")
		count := 0
		for _, ex := range day.Exercises {
			if ex.ID == 1 {
				count++
			}
		}
		if count != 1 {
			t.Errorf("Squat встречается %d раз", count)
		}
	})

	t.Run("переполненный день", func(t *testing.T) {
		full := testTemplate()
		cat := testCatalog()
		for _, id := range []int{14, 15} {
			ex, _ := cat.Get(id)
			full.Days[0].Exercises = append(full.Days[0].Exercises, models.NewExercise(id, ex.Name))
		}
		got, summary := e.AddExercise(full, "add plank on monday", models.Entities{
			ExerciseName: "plank", DayName: "monday",
		})
		day, _ := got.Day("monday")
		if len(day.Exercises) != MaxExercisesPerDay {
			t.Errorf("день вырос сверх максимума: %d", len(day.Exercises))
		}
		if !strings.Contains(summary, "maximum") {
			t.Errorf("сводка не называет причину отказа: %q", summary)
		}
	})
}

func TestRemoveExercise(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	got, summary := e.RemoveExercise(tpl, "remove pull ups from tuesday", models.Entities{DayName: "tuesday"})
	day, _ := got.Day("tuesday")
	if day.HasExercise(12) {
		t.Error("Pull-Up не удалён")
	}
	if !strings.Contains(summary, "Pull-Up") {
		t.Errorf("сводка не называет удалённое упражнение: %q", summary)
	}
}

func TestRemoveNotConfident(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	got, summary := e.RemoveExercise(tpl, "remove the flibbertigibbet", models.Entities{})
	for _, key := range []string{"monday", "tuesday"} {
		before, _ := tpl.Day(key)
		after, _ := got.Day(key)
		if len(before.Exercises) != len(after.Exercises) {
			t.Errorf("день %s изменён при неуверенном совпадении", key)
		}
	}
	if !strings.Contains(summary, "Not confident") {
		t.Errorf("сводка не объясняет отказ: %q", summary)
	}
}

func TestReplaceExplicit(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()
	// Нестандартные объёмы, которые замена должна сохранить
	sets := 5
	reps := models.Reps("8-12")
	tpl.Days[0].Exercises[0].Sets = &sets
	tpl.Days[0].Exercises[0].Reps = &reps

	got, summary := e.Replace(tpl, "replace squat with lunges", models.Entities{
		ExerciseName: "squat", ReplaceWith: "lunges",
	})

	day, _ := got.Day("monday")
	if day.HasExercise(1) {
		t.Error("Squat остался после замены")
	}
	if !day.HasExercise(6) {
		t.Fatalf("Lunge не появился: %v", dayIDs(t, &got, "monday"))
	}
	for _, ex := range day.Exercises {
		if ex.ID == 6 {
			if ex.Sets == nil || *ex.Sets != 5 || ex.Reps == nil || *ex.Reps != "8-12" {
				t.Error("объёмы заменённого упражнения не сохранены")
			}
		}
	}
	if !strings.Contains(summary, "Squat") || !strings.Contains(summary, "Lunge") {
		t.Errorf("сводка не называет обе стороны замены: %q", summary)
	}
}

func TestReplaceAlternative(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	got, _ := e.Replace(tpl, "alternative for bench press", models.Entities{
		ExerciseName: "incline dumbbell press",
	})
	day, _ := got.Day("monday")
	if day.HasExercise(9) {
		t.Error("исходное упражнение осталось после подбора альтернативы")
	}
	if len(day.Exercises) != 6 {
		t.Errorf("число упражнений изменилось: %d", len(day.Exercises))
	}
	// Дубликатов внутри дня нет
	seen := map[int]bool{}
	for _, ex := range day.Exercises {
		if seen[ex.ID] {
			t.Errorf("дубликат id %d после замены", ex.ID)
		}
		seen[ex.ID] = true
	}
}

func TestRenameDayKeepsKey(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	got, summary := e.RenameDay(tpl, models.Entities{DayName: "monday", NewTitle: "push day"})
	day, ok := got.Day("monday")
	if !ok {
		t.Fatal("ключ дня изменился при переименовании")
	}
	if day.Title != "Push Day" {
		t.Errorf("Title = %q, ожидали Push Day", day.Title)
	}
	if !strings.Contains(summary, "Push Day") {
		t.Errorf("сводка не называет новое имя: %q", summary)
	}
}

func TestBulkMuscleChange(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	got, summary := e.BulkMuscleChange(tpl, nlp.BulkInfo{
		IsBulk: true, Operation: "replace", Muscle: "legs", TargetDays: nlp.TargetAll,
	})

	legIDs := map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true}
	for _, key := range []string{"monday", "tuesday"} {
		day, _ := got.Day(key)
		if len(day.Exercises) == 0 {
			t.Fatalf("день %s пуст после массовой замены", key)
		}
		for _, ex := range day.Exercises {
			if !legIDs[ex.ID] {
				t.Errorf("день %s содержит не-ножное упражнение %s", key, ex.Name)
			}
		}
	}
	if !strings.Contains(summary, "legs") {
		t.Errorf("сводка не называет группу: %q", summary)
	}
}

func TestApplyEditDispatch(t *testing.T) {
	e := testEngine()
	ex := nlp.NewExtractor(nil, nil)
	tpl := testTemplate()

	res := ex.Extract(context.Background(), "add overhead press on tuesday", &models.Context{State: models.StateEditDecision})
	got, _, handled := e.ApplyEdit(tpl, "add overhead press on tuesday", res)
	if !handled {
		t.Fatal("правка не обработана движком")
	}
	day, _ := got.Day("tuesday")
	if !day.HasExercise(14) {
		t.Errorf("Overhead Press не добавлен: %v", dayIDs(t, &got, "tuesday"))
	}
	if !got.SameDayKeys(&tpl) {
		t.Error("набор ключей дней изменился")
	}
}

func TestApplyEditUnhandled(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	_, _, handled := e.ApplyEdit(tpl, "make it more fun somehow", models.IntentResult{Intent: models.IntentEdit})
	if handled {
		t.Error("расплывчатая правка не должна обрабатываться правилами")
	}
}

func TestDayCountSignal(t *testing.T) {
	e := testEngine()
	tests := []struct {
		text    string
		current int
		want    int
		ok      bool
	}{
		{"change it to 4 days", 2, 4, true},
		{"expand the plan to 5 days", 3, 5, true},
		{"add another day", 3, 4, true},
		{"remove the last day", 3, 2, true},
		{"add bench press on monday", 3, 0, false},
		{"make monday harder", 3, 0, false},
	}
	for _, tt := range tests {
		got, ok := e.DayCountSignal(tt.text, tt.current)
		if ok != tt.ok || got != tt.want {
			t.Errorf("DayCountSignal(%q, %d) = (%d, %v), ожидали (%d, %v)", tt.text, tt.current, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChangeDayCount(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()

	expanded, _ := e.ChangeDayCount(tpl, 4)
	if len(expanded.Days) != 4 {
		t.Fatalf("ожидали 4 дня, получили %d", len(expanded.Days))
	}
	keys := map[string]bool{}
	for _, d := range expanded.Days {
		if keys[d.Key] {
			t.Errorf("дубликат ключа дня %s", d.Key)
		}
		keys[d.Key] = true
	}

	reduced, _ := e.ChangeDayCount(tpl, 1)
	if len(reduced.Days) != 1 || reduced.Days[0].Key != "monday" {
		t.Errorf("сокращение должно отбрасывать дни с конца: %v", reduced.DayKeys())
	}
}

func TestMuscleSpecificTemplate(t *testing.T) {
	e := testEngine()

	tpl, summary := e.MuscleSpecificTemplate([]string{"Monday", "Wednesday"}, "legs")
	if len(tpl.Days) != 2 {
		t.Fatalf("ожидали 2 дня, получили %d", len(tpl.Days))
	}
	for _, d := range tpl.Days {
		if len(d.Exercises) < MinExercisesPerDay {
			t.Errorf("день %s содержит %d упражнений, минимум %d", d.Key, len(d.Exercises), MinExercisesPerDay)
		}
	}
	if !strings.Contains(summary, "legs") {
		t.Errorf("сводка не называет группу: %q", summary)
	}
}
