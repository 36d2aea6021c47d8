package nlp

import (
	"context"
	"testing"

	"fitbot/internal/models"
)

func newTestExtractor() *Extractor {
	return NewExtractor(DefaultConfig(), nil)
}

func editCtx() *models.Context {
	return &models.Context{State: models.StateEditDecision}
}

func TestExtractIntent(t *testing.T) {
	e := newTestExtractor()

	tests := []struct {
		name string
		text string
		conv *models.Context
		want models.Intent
	}{
		{"создание шаблона", "create a workout plan for me", nil, models.IntentCreate},
		{"создание с опечаткой", "craete a workout plan", nil, models.IntentCreate},
		{"показ шаблона", "show my current template", nil, models.IntentShow},
		{"добавление в контексте правки", "add bench press on monday", editCtx(), models.IntentAdd},
		{"удаление в контексте правки", "remove squats from tuesday", editCtx(), models.IntentRemove},
		{"замена", "replace squats with lunges", editCtx(), models.IntentReplace},
		{"альтернатива", "give me an alternative for deadlift", editCtx(), models.IntentReplace},
		{"переименование", "rename monday to push day", editCtx(), models.IntentRename},
		{"массовая правка", "change all days to legs", editCtx(), models.IntentBulkChange},
		{"подтверждение", "yes", nil, models.IntentConfirm},
		{"отказ", "no", nil, models.IntentDecline},
		{"бессмыслица", "qwerty asdf", nil, models.IntentUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(context.Background(), tt.text, tt.conv)
			if got.Intent != tt.want {
				t.Errorf("Extract(%q) = %s (%.2f), ожидали %s", tt.text, got.Intent, got.Confidence, tt.want)
			}
		})
	}
}

func TestExtractEntitiesReplace(t *testing.T) {
	e := newTestExtractor()
	res := e.Extract(context.Background(), "replace squats with lunges", editCtx())

	if res.Intent != models.IntentReplace {
		t.Fatalf("намерение %s, ожидали replace", res.Intent)
	}
	if res.Entities.ExerciseName != "squats" {
		t.Errorf("ExerciseName = %q, ожидали squats", res.Entities.ExerciseName)
	}
	if res.Entities.ReplaceWith != "lunges" {
		t.Errorf("ReplaceWith = %q, ожидали lunges", res.Entities.ReplaceWith)
	}
}

func TestExtractEntitiesAdd(t *testing.T) {
	e := newTestExtractor()
	res := e.Extract(context.Background(), "add bench press on monday", editCtx())

	if res.Intent != models.IntentAdd {
		t.Fatalf("намерение %s, ожидали add", res.Intent)
	}
	if res.Entities.ExerciseName != "bench press" {
		t.Errorf("ExerciseName = %q, ожидали bench press", res.Entities.ExerciseName)
	}
	if res.Entities.DayName != "monday" {
		t.Errorf("DayName = %q, ожидали monday", res.Entities.DayName)
	}
}

func TestExtractEntitiesRename(t *testing.T) {
	e := newTestExtractor()
	res := e.Extract(context.Background(), "rename monday to push day", editCtx())

	if res.Intent != models.IntentRename {
		t.Fatalf("намерение %s, ожидали rename", res.Intent)
	}
	if res.Entities.NewTitle != "Push Day" {
		t.Errorf("NewTitle = %q, ожидали Push Day", res.Entities.NewTitle)
	}
	if res.Entities.DayName != "monday" {
		t.Errorf("DayName = %q, ожидали monday", res.Entities.DayName)
	}
}

func TestMatchDayTypos(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		text string
		want string
	}{
		{"on monday", "monday"},
		{"on mondey please", "monday"},
		{"tusday workout", "tuesday"},
		{"wensday", "wednesday"},
		{"thrsdy", "thursday"},
	}
	for _, tt := range tests {
		got, ok := e.MatchDay(tt.text)
		if !ok || got != tt.want {
			t.Errorf("MatchDay(%q) = %q/%v, ожидали %q", tt.text, got, ok, tt.want)
		}
	}
	if _, ok := e.MatchDay("no day here"); ok {
		t.Error("MatchDay не должен находить день в тексте без дней")
	}
}

func TestMatchMuscle(t *testing.T) {
	e := newTestExtractor()
	tests := []struct {
		text string
		want string
	}{
		{"leg exercises please", "legs"},
		{"lower body focus", "legs"},
		{"work my abs", "core"},
		{"shoulder day", "shoulders"},
	}
	for _, tt := range tests {
		got, ok := e.MatchMuscle(tt.text)
		if !ok || got != tt.want {
			t.Errorf("MatchMuscle(%q) = %q/%v, ожидали %q", tt.text, got, ok, tt.want)
		}
	}
}

func TestSentiment(t *testing.T) {
	e := newTestExtractor()

	if !e.IsPositive("yes") || !e.IsPositive("sounds good") || !e.IsPositive("save it") {
		t.Error("утвердительные ответы не распознаны")
	}
	if e.IsPositive("no way") {
		t.Error("отрицание распознано как согласие")
	}
	if !e.IsNegative("no") || !e.IsNegative("cancel") {
		t.Error("отрицательные ответы не распознаны")
	}
	// Слова-правки отменяют отрицательную трактовку
	if e.IsNegative("no, change monday to legs") {
		t.Error("правка распознана как отказ")
	}
	if !IsSaveCommand("save it please") || IsSaveCommand("remove squats") {
		t.Error("команда сохранения распознана неверно")
	}
}

func TestExtractBulkInfo(t *testing.T) {
	e := newTestExtractor()

	info := e.ExtractBulkInfo("add biceps to all days")
	if !info.IsBulk || info.Operation != "add" || info.Muscle != "biceps" || info.TargetDays != TargetAll {
		t.Errorf("add-bulk разобран неверно: %+v", info)
	}

	info = e.ExtractBulkInfo("change all days to legs")
	if !info.IsBulk || info.Operation != "replace" || info.Muscle != "legs" || !info.CompleteChange {
		t.Errorf("replace-bulk разобран неверно: %+v", info)
	}

	info = e.ExtractBulkInfo("add core for the first 2 days")
	if !info.IsBulk || info.TargetDays != TargetCount || info.Count != 2 {
		t.Errorf("bulk с количеством дней разобран неверно: %+v", info)
	}
}
