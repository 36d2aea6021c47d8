// Package fuzzy сравнивает пользовательский ввод с названиями упражнений
// и дней: точное совпадение, подстроки, пересечение токенов, расстояние
// Левенштейна, таблица частых опечаток и фонетический код как последний шанс.
package fuzzy

import "strings"

// Пороги каскада сравнения
const (
	scoreExact      = 1.0
	scoreNoSpace    = 0.95
	scoreSubstring  = 0.85
	tokenBase       = 0.7
	tokenSpan       = 0.2
	phoneticFloor   = 0.6
	minFuzzyWordLen = 3
)

// misspellings частые опечатки в названиях упражнений
var misspellings = map[string]string{
	"benhc":     "bench",
	"becnh":     "bench",
	"sqaut":     "squat",
	"squatt":    "squat",
	"sqauts":    "squats",
	"dumbell":   "dumbbell",
	"dumbel":    "dumbbell",
	"dumbells":  "dumbbells",
	"excercise": "exercise",
	"exercize":  "exercise",
	"pres":      "press",
	"puhs":      "push",
	"pul":       "pull",
	"curls":     "curl",
	"lundge":    "lunge",
	"lundges":   "lunges",
	"shoulderr": "shoulder",
	"sholder":   "shoulder",
	"bicep":     "biceps",
	"tricep":    "triceps",
	"wieght":    "weight",
	"deadlfit":  "deadlift",
	"dedlift":   "deadlift",
}

// Similarity возвращает оценку похожести двух строк в [0,1].
// Тотальная функция: не паникует, для пустых входов возвращает 0.
func Similarity(a, b string) float64 {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return scoreExact
	}

	na := stripSpaces(a)
	nb := stripSpaces(b)
	if na == nb {
		return scoreNoSpace
	}

	best := 0.0
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		best = scoreSubstring
	}

	if s := tokenOverlap(a, b); s > best {
		best = s
	}

	lev := levenshteinScore(na, nb)
	if corrected := levenshteinScore(correct(a), correct(b)); corrected > lev {
		lev = corrected
	}
	if lev > best {
		best = lev
	}

	// Фонетика — только как нижняя граница, когда буквенные метрики слабее
	if best < phoneticFloor && phoneticCode(na) == phoneticCode(nb) {
		best = phoneticFloor
	}
	return best
}

// BestMatch возвращает индекс и оценку наиболее похожего кандидата.
// При равных оценках побеждает первый по порядку — детерминизм.
func BestMatch(target string, candidates []string) (int, float64) {
	bestIdx, bestScore := -1, 0.0
	for i, cand := range candidates {
		if s := Similarity(target, cand); s > bestScore {
			bestIdx, bestScore = i, s
		}
	}
	return bestIdx, bestScore
}

// WordMatch грубая проверка похожести двух отдельных слов,
// используется при подсчёте совпадений ключевых слов намерения
func WordMatch(target, word string) bool {
	if len(target) < minFuzzyWordLen || len(word) < minFuzzyWordLen {
		return target == word
	}
	return Similarity(target, word) >= 0.8
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// correct применяет таблицу опечаток пословно
func correct(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if fixed, ok := misspellings[w]; ok {
			words[i] = fixed
		}
	}
	return strings.Join(words, "")
}

// tokenOverlap доля общих слов для многословных строк, 0.7–0.9
func tokenOverlap(a, b string) float64 {
	ta := strings.Fields(a)
	tb := strings.Fields(b)
	if len(ta) < 2 && len(tb) < 2 {
		return 0.0
	}
	setA := make(map[string]bool, len(ta))
	for _, w := range ta {
		setA[w] = true
	}
	common := 0
	for _, w := range tb {
		if setA[w] {
			common++
		}
	}
	if common == 0 {
		return 0.0
	}
	max := len(ta)
	if len(tb) > max {
		max = len(tb)
	}
	return tokenBase + tokenSpan*float64(common)/float64(max)
}

// levenshteinScore нормализованная похожесть по расстоянию редактирования
func levenshteinScore(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}
	dist := levenshtein(a, b)
	max := len(a)
	if len(b) > max {
		max = len(b)
	}
	return 1.0 - float64(dist)/float64(max)
}

func levenshtein(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// phoneticCode упрощённый согласный код: гласные отбрасываются,
// согласные сводятся к классам звучания
var consonantClass = map[rune]rune{
	'b': '1', 'p': '1', 'f': '1', 'v': '1',
	'c': '2', 'k': '2', 'g': '2', 'q': '2', 'j': '2', 's': '2', 'x': '2', 'z': '2',
	'd': '3', 't': '3',
	'l': '4',
	'm': '5', 'n': '5',
	'r': '6',
}

func phoneticCode(s string) string {
	var out []rune
	var last rune
	for _, r := range s {
		cls, ok := consonantClass[r]
		if !ok {
			last = 0
			continue
		}
		if cls == last {
			continue
		}
		out = append(out, cls)
		last = cls
	}
	return string(out)
}
