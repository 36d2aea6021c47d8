package engine

import "regexp"

// Alias готовое соответствие "разговорное название → название в каталоге".
// Паттерн ищется в тексте инструкции, имя дальше разрешается через каталог.
type Alias struct {
	Pattern *regexp.Regexp
	Name    string
}

// Config таблицы соответствий движка. Заполняются один раз при старте
// и дальше только читаются.
type Config struct {
	// MuscleSynonyms канонический токен группы → названия групп каталога
	MuscleSynonyms map[string][]string
	// RelatedMuscles группа каталога → близкие группы для поиска замены
	RelatedMuscles map[string][]string
	// CommonAliases разговорные названия упражнений
	CommonAliases []Alias
	// RemoveStopWords слова, не являющиеся названием упражнения
	RemoveStopWords map[string]bool
}

// DefaultEngineConfig возвращает таблицы по умолчанию
func DefaultEngineConfig() *Config {
	return &Config{
		MuscleSynonyms: map[string][]string{
			"legs":      {"lower body", "legs", "quadriceps", "hamstrings", "glutes", "calves"},
			"upper":     {"upper body", "chest", "back", "shoulders", "arms"},
			"core":      {"core", "abs", "abdominals"},
			"chest":     {"chest", "pectorals"},
			"back":      {"back", "lats", "upper back", "lower back"},
			"biceps":    {"biceps", "arms"},
			"triceps":   {"triceps", "arms"},
			"shoulders": {"shoulders", "deltoids"},
			"cardio":    {"cardio", "conditioning"},
		},
		RelatedMuscles: map[string][]string{
			"chest":      {"shoulders", "triceps"},
			"back":       {"biceps", "shoulders"},
			"shoulders":  {"chest", "triceps"},
			"biceps":     {"back", "forearms"},
			"triceps":    {"chest", "shoulders"},
			"quadriceps": {"glutes", "hamstrings"},
			"hamstrings": {"glutes", "quadriceps"},
			"glutes":     {"hamstrings", "quadriceps"},
			"calves":     {"quadriceps", "hamstrings"},
			"core":       {"lower back", "glutes"},
			"full body":  {"core", "legs"},
		},
		CommonAliases: []Alias{
			{regexp.MustCompile(`(?i)\bbench\b`), "Bench Press"},
			{regexp.MustCompile(`(?i)\bsquats?\b`), "Squat"},
			{regexp.MustCompile(`(?i)\bdead\s*lifts?\b`), "Deadlift"},
			{regexp.MustCompile(`(?i)\bpull\s*ups?\b`), "Pull-Up"},
			{regexp.MustCompile(`(?i)\bpush\s*ups?\b`), "Push-Up"},
			{regexp.MustCompile(`(?i)\bchin\s*ups?\b`), "Chin-Up"},
			{regexp.MustCompile(`(?i)\bcurls?\b`), "Bicep Curl"},
			{regexp.MustCompile(`(?i)\blunges?\b`), "Lunge"},
			{regexp.MustCompile(`(?i)\bplanks?\b`), "Plank"},
			{regexp.MustCompile(`(?i)\bdips?\b`), "Dip"},
			{regexp.MustCompile(`(?i)\brows?\b`), "Barbell Row"},
			{regexp.MustCompile(`(?i)\bburpees?\b`), "Burpee"},
		},
		RemoveStopWords: map[string]bool{
			"remove": true, "delete": true, "take": true, "out": true, "drop": true,
			"from": true, "off": true, "the": true, "my": true, "an": true, "a": true,
			"please": true, "exercise": true, "exercises": true, "on": true, "of": true,
			"day": true, "workout": true, "template": true,
			"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
			"friday": true, "saturday": true, "sunday": true,
		},
	}
}
