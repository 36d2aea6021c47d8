package engine

import (
	"reflect"
	"testing"

	"fitbot/internal/models"
)

func TestEnforceCatalogTopsUp(t *testing.T) {
	e := testEngine()
	tpl := models.NewSkeleton([]string{"Monday"})
	tpl.Days[0].MuscleGroups = []string{"chest"}
	tpl.Days[0].Exercises = []models.Exercise{
		models.NewExercise(8, "Bench Press"),
		models.NewExercise(10, "Push-Up"),
	}

	got := e.EnforceCatalog(tpl)
	day, _ := got.Day("monday")
	if len(day.Exercises) < MinExercisesPerDay {
		t.Fatalf("день не добран до минимума: %d", len(day.Exercises))
	}
	if len(day.Exercises) > MaxExercisesPerDay {
		t.Fatalf("день превышает максимум: %d", len(day.Exercises))
	}
	seen := map[int]bool{}
	for _, ex := range day.Exercises {
		if _, ok := e.Catalog().Get(ex.ID); !ok {
			t.Errorf("id %d отсутствует в справочнике", ex.ID)
		}
		if seen[ex.ID] {
			t.Errorf("дубликат id %d", ex.ID)
		}
		seen[ex.ID] = true
	}
}

func TestEnforceCatalogCanonicalizes(t *testing.T) {
	e := testEngine()
	tpl := models.NewSkeleton([]string{"Monday"})
	tpl.Days[0].MuscleGroups = []string{"back"}
	tpl.Days[0].Exercises = []models.Exercise{
		{ID: 999, Name: "Bench Press"},        // невалидный id, валидное имя
		{ID: 998, Name: "benhc press"},        // опечатка
		{ID: 997, Name: "Quantum Flux Press"}, // выдумка модели
	}

	got := e.EnforceCatalog(tpl)
	day, _ := got.Day("monday")
	for _, ex := range day.Exercises {
		cat, ok := e.Catalog().Get(ex.ID)
		if !ok {
			t.Fatalf("id %d не из справочника", ex.ID)
		}
		if ex.Name != cat.Name {
			t.Errorf("имя %q не каноническое (%q)", ex.Name, cat.Name)
		}
		if ex.Sets == nil || ex.Reps == nil {
			t.Error("объёмы по умолчанию не выставлены")
		}
	}
}

func TestEnforceCatalogTruncates(t *testing.T) {
	e := testEngine()
	cat := testCatalog()
	tpl := models.NewSkeleton([]string{"Monday"})
	for _, id := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		ex, _ := cat.Get(id)
		tpl.Days[0].Exercises = append(tpl.Days[0].Exercises, models.NewExercise(id, ex.Name))
	}

	got := e.EnforceCatalog(tpl)
	day, _ := got.Day("monday")
	if len(day.Exercises) != MaxExercisesPerDay {
		t.Errorf("ожидали обрезку до %d, получили %d", MaxExercisesPerDay, len(day.Exercises))
	}
}

func TestEnforceCatalogIdempotent(t *testing.T) {
	e := testEngine()
	tpl := models.NewSkeleton([]string{"Monday", "Tuesday"})
	tpl.Days[0].MuscleGroups = []string{"chest"}
	tpl.Days[1].MuscleGroups = []string{"legs"}

	once := e.EnforceCatalog(tpl)
	twice := e.EnforceCatalog(once)
	if !reflect.DeepEqual(once, twice) {
		t.Error("повторный прогон проверки изменил шаблон")
	}
}

func TestEnforceCatalogKeepsVolumes(t *testing.T) {
	e := testEngine()
	tpl := testTemplate()
	sets := 5
	reps := models.Reps("AMRAP")
	tpl.Days[0].Exercises[0].Sets = &sets
	tpl.Days[0].Exercises[0].Reps = &reps

	got := e.EnforceCatalog(tpl)
	day, _ := got.Day("monday")
	ex := day.Exercises[0]
	if ex.Sets == nil || *ex.Sets != 5 || ex.Reps == nil || *ex.Reps != "AMRAP" {
		t.Error("заданные объёмы потеряны при проверке каталога")
	}
}
