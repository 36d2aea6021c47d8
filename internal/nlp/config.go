// Package nlp разбирает свободный текст пользователя: намерение с оценкой
// уверенности, дни, группы мышц, количества и тональность ответа.
package nlp

import "regexp"

// intentConfig правила одного класса намерения: регулярные выражения
// дают 60% веса, ключевые слова с допуском опечаток — 40%.
type intentConfig struct {
	patterns  []*regexp.Regexp
	keywords  []string
	threshold float64
}

// Config неизменяемые таблицы паттернов. Создаются один раз и
// передаются в экстрактор — без глобального изменяемого состояния.
type Config struct {
	create intentConfig
	show   intentConfig
	edit   intentConfig

	dayPatterns map[string][]*regexp.Regexp
	dayOrder    []string

	positive []*regexp.Regexp
	negative []*regexp.Regexp

	musclePatterns map[string][]*regexp.Regexp
	muscleOrder    []string

	countPatterns  []*regexp.Regexp
	allDays        []*regexp.Regexp
	specificCount  []*regexp.Regexp
	renamePatterns []*regexp.Regexp
	addPatterns    []*regexp.Regexp
	replaceWith    *regexp.Regexp
	alternative    []*regexp.Regexp
	ordinalDay     *regexp.Regexp
}

func compileAll(exprs []string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(`(?i)` + e)
	}
	return out
}

// DefaultConfig собирает стандартный набор паттернов
func DefaultConfig() *Config {
	cfg := &Config{
		create: intentConfig{
			patterns: compileAll([]string{
				`(?:create|make|build|generate|new|start|design|craft|setup|construct)`,
				`(?:workout|template|plan|routine|program|schedule|regimen)`,
				`(?:want|need|like|prefer).*(?:workout|plan|routine)`,
				`(?:give|show).*(?:me|us).*(?:workout|plan)`,
				`(?:i|we).*(?:want|need|would like).*(?:to|a).*(?:workout|exercise)`,
				`(?:let's|lets).*(?:create|make|start|begin)`,
			}),
			keywords:  []string{"create", "make", "build", "new", "workout", "plan", "routine", "template"},
			threshold: 0.3,
		},
		show: intentConfig{
			patterns: compileAll([]string{
				`(?:show|view|see|display|look|check).*(?:my|current|existing|saved)`,
				`(?:what|which).*(?:template|plan|routine|workout).*(?:have|got|saved)`,
				`(?:current|existing|saved|my).*(?:template|plan|routine|workout)`,
				`(?:see|view|show|display).*(?:template|plan|routine|workout)`,
			}),
			keywords:  []string{"show", "view", "see", "current", "existing", "my", "saved"},
			threshold: 0.25,
		},
		edit: intentConfig{
			patterns: compileAll([]string{
				`(?:change|edit|modify|alter|update|adjust|tweak|fix|improve)`,
				`(?:replace|swap|substitute|switch|exchange)`,
				`(?:add|include|insert|put in|bring in)`,
				`(?:remove|delete|take out|exclude|drop)`,
				`(?:increase|decrease|more|less|heavier|lighter|harder|easier)`,
				`(?:different|another|other|alternative)`,
				`(?:i|we).*(?:want|need|would like).*(?:to|different|other)`,
			}),
			keywords:  []string{"change", "edit", "modify", "different", "more", "less", "add", "remove"},
			threshold: 0.2,
		},

		dayPatterns: map[string][]*regexp.Regexp{
			"monday":    compileAll([]string{`\bmon(?:day)?\b`, `\bm[ou]nd\w*`, `\bmnd?y\b`, `\bmonda?y?\b`}),
			"tuesday":   compileAll([]string{`\btue(?:s(?:day)?)?\b`, `\btues\w*`, `\btusd?a?y\b`, `\btusday\b`}),
			"wednesday": compileAll([]string{`\bwed(?:nesday)?\b`, `\bwedn\w*`, `\bwedns?day\b`, `\bwensd?a?y\b`}),
			"thursday":  compileAll([]string{`\bthu(?:rs?day)?\b`, `\bthurs\w*`, `\bthrs?\b`, `\bthursd?a?y\b`, `\bthrsdy\b`}),
			"friday":    compileAll([]string{`\bfri(?:day)?\b`, `\bfrid\w*`, `\bfrid?y\b`, `\bfridy\b`}),
			"saturday":  compileAll([]string{`\bsat(?:urday)?\b`, `\bsatur\w*`, `\bsatd?y\b`, `\bsaturdy\b`, `\bsatrdy\b`}),
			"sunday":    compileAll([]string{`\bsun(?:day)?\b`, `\bsund\w*`, `\bsund?y\b`, `\bsundy\b`}),
		},
		dayOrder: []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"},

		positive: compileAll([]string{
			`^(?:y|yes|yep|yeah|yup|ya|sure|ok|okay|alright|right)$`,
			`^(?:go|do)(?:\s*(?:ahead|it|that))?$`,
			`^(?:proceed|continue|next|forward)$`,
			`^(?:please|absolutely|definitely|certainly|of course)$`,
			`^(?:sounds?\s*(?:good|great|fine|perfect))$`,
			`^(?:that(?:'s|s)?\s*(?:good|great|fine|perfect|right))$`,
			`^(?:let(?:'s|s)?\s*(?:go|do it))$`,
			`^(?:i(?:'m|m)?\s*(?:ready|good))$`,
			`^perfect$`, `^good$`, `^great$`, `^fine$`,
			`^save(?:\s*it)?$`, `^confirm$`, `^approved?$`,
		}),
		negative: compileAll([]string{
			`^(?:n|no|nope|nah|not?)$`,
			`^(?:cancel|stop|quit|exit|abort)$`,
			`^(?:not\s*(?:now|yet|today|ready))$`,
			`^(?:skip|pass|later|maybe\s*later)$`,
			`^(?:don'?t|do\s*not|not\s*(?:really|quite))$`,
			`^(?:i\s*(?:don'?t|do\s*not)\s*(?:want|like|think))$`,
			`^(?:that'?s\s*(?:not|wrong))$`,
			`^(?:need\s*(?:changes?|edit|different))$`,
		}),

		musclePatterns: map[string][]*regexp.Regexp{
			"legs":      compileAll([]string{`\bleg\b`, `\blegs\b`, `leg\s*(?:exercise|workout|training)`, `lower\s*body`, `lowerbody`, `quadriceps?`, `hamstrings?`, `glutes?`, `calves?`}),
			"upper":     compileAll([]string{`upper\s*body`, `upperbody`, `upper\s*(?:exercise|workout)`, `chest\s*and\s*arms?`, `arms?\s*and\s*chest`, `\barms?\b`}),
			"core":      compileAll([]string{`core\s*(?:exercise|workout)?`, `\babs?\b`, `abdominal`}),
			"chest":     compileAll([]string{`\bchest\b`, `pec\s*(?:exercise|workout)`}),
			"back":      compileAll([]string{`\bback\b`, `\blats?\b`, `pull\s*(?:exercise|workout)`}),
			"biceps":    compileAll([]string{`\bbiceps?\b`, `arm\s*curl`, `bicep\s*curl`}),
			"triceps":   compileAll([]string{`\btriceps?\b`, `\btri\s*(?:exercise|workout)`}),
			"shoulders": compileAll([]string{`\bshoulders?\b`, `\bdelts?\b`, `deltoids?`}),
			"cardio":    compileAll([]string{`\bcardio\b`, `aerobic`, `running`, `cycling`}),
		},
		muscleOrder: []string{"legs", "upper", "core", "chest", "back", "biceps", "triceps", "shoulders", "cardio"},

		countPatterns: compileAll([]string{
			`^\s*(\d+)\s*$`,
			`\b(\d+)\s*(?:days?|day)\b`,
			`\b(\d+)\s*(?:times?|time)?\s*(?:per|a)?\s*week\b`,
			`\b(\d+)\s*(?:workout|session)s?\b`,
			`(?:for|about|around)\s*(\d+)\b`,
			`\b(\d+)\s*(?:of|out of)\s*7\b`,
			`(?:build|create|make)\s*(\d+)`,
			`(\d+)\s*(?:days?)?\s*(?:workout|plan|routine)`,
			`(?:create|make|build)\s*(\d+)\s*(?:template|plan)s?`,
			`(\d+)\s*(?:template|plan)s?`,
			`(\d+)\s*weeks?\s*(?:of|worth)`,
			`(\d+)\s*(?:week|weekly)`,
		}),
		allDays: compileAll([]string{
			`(?:all|every|each)\s*days?`,
			`(?:all|every|each)\s*(?:of\s*the\s*)?(?:workout\s*)?days?`,
			`(?:for\s*)?(?:all|every|each)\s*(?:day|days)`,
			`(?:on\s*)?(?:all|every|each)\s*(?:day|days)`,
		}),
		specificCount: compileAll([]string{
			`(?:for|on)\s*(?:the\s*)?(?:first|last)\s*(\d+)\s*days?`,
			`(?:for|on)\s*(\d+)\s*days?`,
			`(\d+)\s*days?`,
		}),
		renamePatterns: compileAll([]string{
			`rename\s+(.+?)\s+(?:to|as)\s+(.+)`,
			`change\s+(?:the\s+)?(?:name\s+of\s+)?(.+?)\s+(?:to|as)\s+(.+)`,
			`call\s+(.+?)\s+(.+)`,
			`make\s+(.+?)\s+(?:called|named)\s+(.+)`,
		}),
		addPatterns: compileAll([]string{
			`add\s+(.+?)\s+on\s+(\S+)`,
			`add\s+(.+?)\s+to\s+(\S+)`,
			`add\s+(\w+(?:\s+\w+)?)\s+(\w*day\w*)`,
			`(?:include|put)\s+(.+?)\s+(?:on|to|in)\s+(\S+)`,
		}),
		replaceWith: regexp.MustCompile(`(?i)(?:replace|swap|substitute|switch)\s+(.+?)\s+(?:with|for|to)\s+(.+)`),
		alternative: compileAll([]string{
			`(?:alternate|alternative)\s+for\s+(.+?)\s*$`,
			`(?:alternate|alternative)\s+(?:to\s+)?(.+?)\s*$`,
		}),
		ordinalDay: regexp.MustCompile(`(?i)\bday\s*(\d+)\b`),
	}
	return cfg
}
