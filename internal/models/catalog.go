package models

import "strings"

// CatalogExercise каноническое упражнение из справочника
type CatalogExercise struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	MuscleGroup  string `json:"muscle_group"`
	IsCardio     bool   `json:"is_cardio"`
	IsBodyweight bool   `json:"is_bodyweight"`
}

// Catalog справочник упражнений. Загружается один раз на операцию
// и дальше используется только на чтение.
type Catalog struct {
	byID     map[int]CatalogExercise
	byName   map[string]int
	byMuscle map[string][]int
	order    []int
}

// NewCatalog строит индексы по списку упражнений. Порядок списка
// сохраняется и используется как детерминированный tie-break.
func NewCatalog(list []CatalogExercise) *Catalog {
	c := &Catalog{
		byID:     make(map[int]CatalogExercise, len(list)),
		byName:   make(map[string]int, len(list)),
		byMuscle: make(map[string][]int),
	}
	for _, ex := range list {
		if _, dup := c.byID[ex.ID]; dup {
			continue
		}
		c.byID[ex.ID] = ex
		c.order = append(c.order, ex.ID)
		key := NormalizeName(ex.Name)
		if _, taken := c.byName[key]; !taken {
			c.byName[key] = ex.ID
		}
		mg := strings.ToLower(strings.TrimSpace(ex.MuscleGroup))
		if mg != "" {
			c.byMuscle[mg] = append(c.byMuscle[mg], ex.ID)
		}
	}
	return c
}

// NormalizeName нормализует название упражнения для точного поиска
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), " ")
}

// Len возвращает размер каталога
func (c *Catalog) Len() int { return len(c.order) }

// IDs возвращает id упражнений в порядке хранения
func (c *Catalog) IDs() []int { return c.order }

// Get возвращает упражнение по id
func (c *Catalog) Get(id int) (CatalogExercise, bool) {
	ex, ok := c.byID[id]
	return ex, ok
}

// IDForName возвращает id по точному (нормализованному) названию
func (c *Catalog) IDForName(name string) (int, bool) {
	id, ok := c.byName[NormalizeName(name)]
	return id, ok
}

// MuscleIDs возвращает id упражнений, чья группа мышц совпадает с muscle
// или содержит его как подстроку (справочник хранит группы вида
// "lower body", запросы приходят вида "legs")
func (c *Catalog) MuscleIDs(muscle string) []int {
	muscle = strings.ToLower(strings.TrimSpace(muscle))
	if muscle == "" {
		return nil
	}
	if ids, ok := c.byMuscle[muscle]; ok {
		return ids
	}
	var out []int
	for _, id := range c.order {
		mg := strings.ToLower(c.byID[id].MuscleGroup)
		if mg == "" {
			continue
		}
		if strings.Contains(mg, muscle) || strings.Contains(muscle, mg) {
			out = append(out, id)
		}
	}
	return out
}

// PickFromMuscles выбирает до n упражнений из перечисленных групп мышц,
// пропуская уже использованные id. Порядок детерминирован порядком каталога.
func (c *Catalog) PickFromMuscles(muscles []string, used map[int]bool, n int) []int {
	if n <= 0 {
		return nil
	}
	var out []int
	seen := make(map[int]bool)
	for _, muscle := range muscles {
		for _, id := range c.MuscleIDs(muscle) {
			if len(out) >= n {
				return out
			}
			if used[id] || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}

// PickAny выбирает до n любых неиспользованных упражнений в порядке каталога
func (c *Catalog) PickAny(used map[int]bool, n int) []int {
	var out []int
	for _, id := range c.order {
		if len(out) >= n {
			break
		}
		if used[id] {
			continue
		}
		out = append(out, id)
	}
	return out
}
