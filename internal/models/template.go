package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Goal цель тренировочного шаблона
type Goal string

const (
	GoalMuscleGain  Goal = "muscle_gain"
	GoalFatLoss     Goal = "fat_loss"
	GoalStrength    Goal = "strength"
	GoalPerformance Goal = "performance"
)

// Reps количество повторений: в JSON может прийти числом или строкой ("8-12", "AMRAP")
type Reps string

// UnmarshalJSON принимает и число, и строку
func (r *Reps) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Reps(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*r = Reps(n.String())
	return nil
}

// Exercise упражнение в дне шаблона. ID всегда указывает на запись каталога,
// Name берётся из каталога и никогда не придумывается.
type Exercise struct {
	ID   int     `json:"id"`
	Name string  `json:"name"`
	Sets *int    `json:"sets"`
	Reps *Reps   `json:"reps"`
	Note *string `json:"note"`
}

// Стандартные объёмы для новых упражнений
const (
	DefaultSets = 3
	DefaultReps = "10"
)

// NewExercise создаёт упражнение со стандартными подходами и повторами
func NewExercise(id int, name string) Exercise {
	sets := DefaultSets
	reps := Reps(DefaultReps)
	return Exercise{ID: id, Name: name, Sets: &sets, Reps: &reps}
}

// Day один тренировочный день шаблона. Key — стабильный слаг дня,
// Title — отображаемое название, которое можно менять независимо от ключа.
type Day struct {
	Key          string     `json:"-"`
	Title        string     `json:"title"`
	MuscleGroups []string   `json:"muscle_groups"`
	Exercises    []Exercise `json:"exercises"`
}

// HasExercise проверяет наличие упражнения с данным id в дне
func (d *Day) HasExercise(id int) bool {
	for _, ex := range d.Exercises {
		if ex.ID == id {
			return true
		}
	}
	return false
}

// UsedIDs возвращает id упражнений дня
func (d *Day) UsedIDs() map[int]bool {
	used := make(map[int]bool, len(d.Exercises))
	for _, ex := range d.Exercises {
		used[ex.ID] = true
	}
	return used
}

// Days упорядоченный набор дней. В JSON сериализуется как объект
// день-ключ → день с сохранением порядка.
type Days []Day

// MarshalJSON сохраняет порядок дней
func (ds Days) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, d := range ds {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(d.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		body, err := json.Marshal(d)
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON восстанавливает порядок дней из JSON-объекта
func (ds *Days) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*ds = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("days: ожидался JSON-объект")
	}

	var out Days
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("days: некорректный ключ дня")
		}
		var day Day
		if err := dec.Decode(&day); err != nil {
			return err
		}
		day.Key = key
		out = append(out, day)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*ds = out
	return nil
}

// Template многодневный тренировочный шаблон — основной документ диалога
type Template struct {
	Name  string   `json:"name"`
	Goal  Goal     `json:"goal"`
	Days  Days     `json:"days"`
	Notes []string `json:"notes"`
}

// Day возвращает день по ключу
func (t *Template) Day(key string) (*Day, bool) {
	for i := range t.Days {
		if t.Days[i].Key == key {
			return &t.Days[i], true
		}
	}
	return nil, false
}

// DayKeys возвращает ключи дней в порядке следования
func (t *Template) DayKeys() []string {
	keys := make([]string, len(t.Days))
	for i, d := range t.Days {
		keys[i] = d.Key
	}
	return keys
}

// SameDayKeys проверяет, что набор ключей дней совпадает с other
func (t *Template) SameDayKeys(other *Template) bool {
	if len(t.Days) != len(other.Days) {
		return false
	}
	mine := make(map[string]bool, len(t.Days))
	for _, d := range t.Days {
		mine[d.Key] = true
	}
	for _, d := range other.Days {
		if !mine[d.Key] {
			return false
		}
	}
	return true
}

// Clone возвращает глубокую копию шаблона. Все мутации работают с копией,
// чтобы при ошибке вернуть исходный шаблон нетронутым.
func (t *Template) Clone() Template {
	out := Template{Name: t.Name, Goal: t.Goal}
	if t.Notes != nil {
		out.Notes = append([]string(nil), t.Notes...)
	}
	out.Days = make(Days, len(t.Days))
	for i, d := range t.Days {
		nd := Day{Key: d.Key, Title: d.Title}
		if d.MuscleGroups != nil {
			nd.MuscleGroups = append([]string(nil), d.MuscleGroups...)
		}
		nd.Exercises = make([]Exercise, len(d.Exercises))
		for j, ex := range d.Exercises {
			ne := Exercise{ID: ex.ID, Name: ex.Name}
			if ex.Sets != nil {
				v := *ex.Sets
				ne.Sets = &v
			}
			if ex.Reps != nil {
				v := *ex.Reps
				ne.Reps = &v
			}
			if ex.Note != nil {
				v := *ex.Note
				ne.Note = &v
			}
			nd.Exercises[j] = ne
		}
		out.Days[i] = nd
	}
	return out
}

// IDsByDay возвращает id упражнений по дням (структура "только id")
func (t *Template) IDsByDay() map[string][]int {
	out := make(map[string][]int, len(t.Days))
	for _, d := range t.Days {
		ids := make([]int, 0, len(d.Exercises))
		for _, ex := range d.Exercises {
			ids = append(ids, ex.ID)
		}
		out[d.Key] = ids
	}
	return out
}

// SlugifyDay превращает название дня в стабильный ключ
func SlugifyDay(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.Join(strings.Fields(s), "_")
	return s
}

// WeekDays стандартные названия дней для шаблонов по умолчанию
var WeekDays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DefaultDayNames возвращает count стандартных названий дней
func DefaultDayNames(count int) []string {
	if count <= len(WeekDays) {
		return append([]string(nil), WeekDays[:count]...)
	}
	names := append([]string(nil), WeekDays...)
	for i := len(WeekDays); i < count; i++ {
		names = append(names, fmt.Sprintf("Day %d", i+1))
	}
	return names
}

// NewSkeleton создаёт пустой шаблон с данными названиями дней
func NewSkeleton(dayNames []string) Template {
	tpl := Template{
		Name:  fmt.Sprintf("Workout Template (%d days)", len(dayNames)),
		Goal:  GoalMuscleGain,
		Notes: []string{},
	}
	for _, name := range dayNames {
		tpl.Days = append(tpl.Days, Day{
			Key:          SlugifyDay(name),
			Title:        TitleCase(name),
			MuscleGroups: []string{},
			Exercises:    []Exercise{},
		})
	}
	return tpl
}

// TitleCase приводит каждое слово к виду с заглавной буквы
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(strings.TrimSpace(s)))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
