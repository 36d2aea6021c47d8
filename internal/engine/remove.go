package engine

import (
	"fmt"
	"strings"

	"fitbot/internal/fuzzy"
	"fitbot/internal/models"
)

// maxCandidateWords длина самой длинной кандидатной фразы в словах
const maxCandidateWords = 4

// RemoveExercise удаляет одно упражнение из шаблона. Из инструкции
// строятся кандидатные фразы (от длинных к коротким), каждая сверяется
// с каждым упражнением; удаляется глобально лучшая пара (день, упражнение)
// не ниже порога. Неуверенное совпадение ничего не меняет.
func (e *Engine) RemoveExercise(tpl models.Template, instruction string, ent models.Entities) (models.Template, string) {
	candidates := e.removeCandidates(instruction)
	if len(candidates) == 0 {
		return tpl, "Please name the exercise to remove, e.g. 'remove squats from monday'."
	}

	// Явно названный день сужает поиск
	var onlyDay string
	if day, ok := e.ResolveDay(&tpl, ent.DayName, ent.DayOrdinal); ok && (ent.DayName != "" || ent.DayOrdinal > 0) {
		onlyDay = day.Key
	}

	bestDay, bestEx := -1, -1
	bestScore := 0.0
	bestPhrase := ""
	for _, phrase := range candidates {
		for i := range tpl.Days {
			if onlyDay != "" && tpl.Days[i].Key != onlyDay {
				continue
			}
			for j, ex := range tpl.Days[i].Exercises {
				s := fuzzy.Similarity(phrase, ex.Name)
				if s > bestScore {
					bestDay, bestEx, bestScore, bestPhrase = i, j, s, phrase
				}
			}
		}
	}

	if bestScore < MatchThreshold {
		return tpl, fmt.Sprintf("Not confident enough about which exercise to remove (best guess '%s' scored %.0f%%). Nothing was changed.", bestPhrase, bestScore*100)
	}

	out := tpl.Clone()
	day := &out.Days[bestDay]
	removed := day.Exercises[bestEx].Name
	day.Exercises = append(day.Exercises[:bestEx], day.Exercises[bestEx+1:]...)
	return out, fmt.Sprintf("Removed %s from %s.", removed, dayLabel(day))
}

// removeCandidates строит кандидатные фразы из инструкции: скользящие
// окна от maxCandidateWords слов до одного, без служебных слов
func (e *Engine) removeCandidates(instruction string) []string {
	words := strings.Fields(strings.ToLower(instruction))
	var content []string
	for _, w := range words {
		w = strings.Trim(w, ".,!?'\"")
		if w == "" || e.cfg.RemoveStopWords[w] {
			continue
		}
		content = append(content, w)
	}

	var out []string
	for size := maxCandidateWords; size >= 1; size-- {
		for i := 0; i+size <= len(content); i++ {
			out = append(out, strings.Join(content[i:i+size], " "))
		}
	}
	return out
}
