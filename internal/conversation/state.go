package conversation

import (
	"fitbot/internal/models"
	"fitbot/internal/nlp"
)

// Пороги глобальных переходов: достаточно уверенное намерение
// перебрасывает диалог из любого состояния
const (
	createJumpThreshold = 0.3
	showJumpThreshold   = 0.25
	editJumpThreshold   = 0.2
)

// NextState выбирает следующее состояние диалога. Сначала проверяются
// глобальные переходы (создание, показ, правка), затем логика текущего
// состояния. Неоднозначная реплика при готовом черновике трактуется
// как правка, а не как сбой.
func NextState(conv *models.Context, text string, res models.IntentResult, ex *nlp.Extractor) models.State {
	// Глобальные переходы работают из любого состояния
	if res.Intent == models.IntentCreate && res.Confidence > createJumpThreshold {
		return models.StateFetchProfile
	}
	if res.Intent == models.IntentShow && res.Confidence > showJumpThreshold {
		return models.StateShowTemplate
	}
	if res.Intent.IsEditFamily() && res.Confidence > editJumpThreshold && conv.Template != nil &&
		conv.State != models.StateAskDays && conv.State != models.StateAskNames {
		return models.StateApplyEdit
	}

	switch conv.State {
	case models.StateStart, models.StateDone:
		if res.Intent == models.IntentCreate {
			return models.StateFetchProfile
		}
		return models.StateStart

	case models.StateFetchProfile:
		return models.StateAskDays

	case models.StateAskDays:
		if _, ok := ex.ExtractDaysCount(text); ok {
			return models.StateAskNames
		}
		return models.StateAskDays

	case models.StateAskNames:
		return models.StateDraftGeneration

	case models.StateDraftGeneration:
		return models.StateEditDecision

	case models.StateEditDecision:
		// Явная команда сохранения минует разбор тональности
		if nlp.IsSaveCommand(text) {
			return models.StateConfirmSave
		}
		// Вопрос звучит "хотите что-то поменять?", поэтому "да" ведёт
		// к правкам, а "нет" — к сохранению
		if res.Intent == models.IntentDecline {
			return models.StateConfirmSave
		}
		// Согласие и неоднозначность трактуем как правку
		return models.StateApplyEdit

	case models.StateApplyEdit:
		return models.StateEditDecision

	case models.StateConfirmSave:
		if res.Intent == models.IntentConfirm || nlp.IsSaveCommand(text) {
			return models.StateDone
		}
		if res.Intent == models.IntentDecline {
			return models.StateEditDecision
		}
		return models.StateApplyEdit

	case models.StateShowTemplate:
		if conv.Template != nil {
			return models.StateEditDecision
		}
		return models.StateStart
	}
	return models.StateStart
}
