package engine

import (
	"strings"

	"fitbot/internal/fuzzy"
	"fitbot/internal/models"
)

// Resolution результат разрешения названия упражнения в запись каталога
type Resolution struct {
	ID    int
	Name  string
	Score float64
}

// resolveStrategy одна стратегия разрешения. Стратегии пробуются строго
// по порядку: точное совпадение, нечёткий поиск, разговорные названия.
type resolveStrategy func(name, instruction string, threshold float64) (Resolution, bool)

// ResolveExercise разрешает пользовательское название упражнения в запись
// каталога. При равных похожестях побеждает первое совпадение в порядке
// каталога, результат детерминирован.
func (e *Engine) ResolveExercise(name, instruction string, threshold float64) (Resolution, bool) {
	for _, strat := range []resolveStrategy{e.resolveExact, e.resolveFuzzy, e.resolveAlias} {
		if r, ok := strat(name, instruction, threshold); ok {
			return r, true
		}
	}
	return Resolution{}, false
}

func (e *Engine) resolveExact(name, _ string, _ float64) (Resolution, bool) {
	if name == "" {
		return Resolution{}, false
	}
	id, ok := e.cat.IDForName(name)
	if !ok {
		return Resolution{}, false
	}
	ex, _ := e.cat.Get(id)
	return Resolution{ID: id, Name: ex.Name, Score: 1.0}, true
}

func (e *Engine) resolveFuzzy(name, _ string, threshold float64) (Resolution, bool) {
	if name == "" {
		return Resolution{}, false
	}
	best := Resolution{}
	for _, id := range e.cat.IDs() {
		ex, _ := e.cat.Get(id)
		score := fuzzy.Similarity(name, ex.Name)
		if score > best.Score {
			best = Resolution{ID: id, Name: ex.Name, Score: score}
		}
	}
	if best.Score >= threshold {
		return best, true
	}
	return Resolution{}, false
}

// resolveAlias ищет разговорные названия прямо в тексте инструкции,
// когда извлечённое имя не удалось разрешить
func (e *Engine) resolveAlias(_ string, instruction string, threshold float64) (Resolution, bool) {
	if instruction == "" {
		return Resolution{}, false
	}
	for _, alias := range e.cfg.CommonAliases {
		if !alias.Pattern.MatchString(instruction) {
			continue
		}
		if r, ok := e.resolveExact(alias.Name, "", threshold); ok {
			return r, true
		}
		if r, ok := e.resolveFuzzy(alias.Name, "", threshold); ok {
			return r, true
		}
	}
	return Resolution{}, false
}

// ResolveDay находит день шаблона по пользовательской ссылке: сначала
// порядковый номер, потом нечёткое совпадение с ключом либо заголовком дня.
func (e *Engine) ResolveDay(tpl *models.Template, ref string, ordinal int) (*models.Day, bool) {
	if ordinal >= 1 && ordinal <= len(tpl.Days) {
		return &tpl.Days[ordinal-1], true
	}
	ref = strings.TrimSpace(strings.ToLower(ref))
	if ref == "" {
		return nil, false
	}

	var (
		best      *models.Day
		bestScore float64
	)
	for i := range tpl.Days {
		d := &tpl.Days[i]
		keyText := strings.ReplaceAll(d.Key, "_", " ")
		score := fuzzy.Similarity(ref, keyText)
		if s := fuzzy.Similarity(ref, d.Title); s > score {
			score = s
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	if bestScore >= MatchThreshold {
		return best, true
	}
	return nil, false
}

// findInTemplate ищет упражнение по всем дням шаблона и возвращает
// глобально лучшую пару (день, позиция) не ниже порога
func (e *Engine) findInTemplate(tpl *models.Template, name string, threshold float64) (dayIdx, exIdx int, score float64, ok bool) {
	dayIdx, exIdx = -1, -1
	for i := range tpl.Days {
		for j, ex := range tpl.Days[i].Exercises {
			s := fuzzy.Similarity(name, ex.Name)
			if s > score {
				dayIdx, exIdx, score = i, j, s
			}
		}
	}
	if score >= threshold {
		return dayIdx, exIdx, score, true
	}
	return -1, -1, score, false
}
