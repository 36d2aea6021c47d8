package conversation

import (
	"testing"

	"fitbot/internal/models"
	"fitbot/internal/nlp"
)

func res(intent models.Intent, conf float64) models.IntentResult {
	return models.IntentResult{Intent: intent, Confidence: conf}
}

func withTemplate(state models.State) *models.Context {
	tpl := models.NewSkeleton([]string{"Monday"})
	return &models.Context{State: state, Template: &tpl}
}

func TestNextState(t *testing.T) {
	ex := nlp.NewExtractor(nil, nil)

	tests := []struct {
		name string
		conv *models.Context
		text string
		res  models.IntentResult
		want models.State
	}{
		{
			"старт: создание",
			&models.Context{State: models.StateStart},
			"create a workout plan", res(models.IntentCreate, 0.5),
			models.StateFetchProfile,
		},
		{
			"старт: бессмыслица",
			&models.Context{State: models.StateStart},
			"hello there", res(models.IntentUnknown, 0.0),
			models.StateStart,
		},
		{
			"после профиля спрашиваем дни",
			&models.Context{State: models.StateFetchProfile},
			"", res(models.IntentUnknown, 0.0),
			models.StateAskDays,
		},
		{
			"дни названы — спрашиваем имена",
			&models.Context{State: models.StateAskDays},
			"3 days", res(models.IntentUnknown, 0.1),
			models.StateAskNames,
		},
		{
			"дни не названы — переспрашиваем",
			&models.Context{State: models.StateAskDays},
			"whatever you think", res(models.IntentUnknown, 0.1),
			models.StateAskDays,
		},
		{
			"имена дней ведут к генерации",
			&models.Context{State: models.StateAskNames},
			"push, pull, legs", res(models.IntentUnknown, 0.1),
			models.StateDraftGeneration,
		},
		{
			"решение: команда сохранения",
			withTemplate(models.StateEditDecision),
			"save it", res(models.IntentConfirm, 0.9),
			models.StateConfirmSave,
		},
		{
			"решение: да — пользователь хочет правки",
			withTemplate(models.StateEditDecision),
			"yes please", res(models.IntentConfirm, 0.9),
			models.StateApplyEdit,
		},
		{
			"решение: нет — переходим к сохранению",
			withTemplate(models.StateEditDecision),
			"no thanks", res(models.IntentDecline, 0.9),
			models.StateConfirmSave,
		},
		{
			"решение: неоднозначная реплика трактуется как правка",
			withTemplate(models.StateEditDecision),
			"hmm maybe something else", res(models.IntentUnknown, 0.1),
			models.StateApplyEdit,
		},
		{
			"подтверждение: да — завершаем",
			withTemplate(models.StateConfirmSave),
			"yes", res(models.IntentConfirm, 0.9),
			models.StateDone,
		},
		{
			"подтверждение: нет — назад к выбору правок",
			withTemplate(models.StateConfirmSave),
			"no", res(models.IntentDecline, 0.9),
			models.StateEditDecision,
		},
		{
			"подтверждение: неясный ответ трактуется как правка",
			withTemplate(models.StateConfirmSave),
			"hold on a second", res(models.IntentUnknown, 0.1),
			models.StateApplyEdit,
		},
		{
			"глобальный переход: показ из любого состояния",
			withTemplate(models.StateEditDecision),
			"show my template", res(models.IntentShow, 0.6),
			models.StateShowTemplate,
		},
		{
			"глобальный переход: новое создание посреди правок",
			withTemplate(models.StateEditDecision),
			"create a new plan", res(models.IntentCreate, 0.5),
			models.StateFetchProfile,
		},
		{
			"глобальный переход: правка при готовом черновике",
			withTemplate(models.StateConfirmSave),
			"add lunges on monday", res(models.IntentAdd, 0.4),
			models.StateApplyEdit,
		},
		{
			"правка без черновика не перехватывает сбор данных",
			&models.Context{State: models.StateAskDays},
			"add 3 days", res(models.IntentAdd, 0.4),
			models.StateAskNames,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextState(tt.conv, tt.text, tt.res, ex)
			if got != tt.want {
				t.Errorf("NextState(%s, %q) = %s, ожидали %s", tt.conv.State, tt.text, got, tt.want)
			}
		})
	}
}
