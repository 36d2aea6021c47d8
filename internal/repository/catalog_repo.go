package repository

import (
	"database/sql"
	"fmt"

	"fitbot/internal/models"
)

// CatalogRepository работает со справочником упражнений
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository создаёт репозиторий справочника
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Load загружает снимок справочника целиком. Снимок берётся один раз
// на операцию и дальше используется только на чтение.
func (r *CatalogRepository) Load() (*models.Catalog, error) {
	rows, err := r.db.Query(`
		SELECT id, name, COALESCE(muscle_group, ''),
		       COALESCE(is_cardio, false), COALESCE(is_bodyweight, false)
		FROM public.exercises
		ORDER BY muscle_group, name`)
	if err != nil {
		return nil, fmt.Errorf("загрузка справочника упражнений: %w", err)
	}
	defer rows.Close()

	var list []models.CatalogExercise
	for rows.Next() {
		var e models.CatalogExercise
		if err := rows.Scan(&e.ID, &e.Name, &e.MuscleGroup, &e.IsCardio, &e.IsBodyweight); err != nil {
			continue
		}
		list = append(list, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("чтение справочника упражнений: %w", err)
	}
	return models.NewCatalog(list), nil
}

// MuscleGroups возвращает список всех групп мышц
func (r *CatalogRepository) MuscleGroups() ([]string, error) {
	rows, err := r.db.Query(`
		SELECT DISTINCT muscle_group
		FROM public.exercises
		WHERE muscle_group IS NOT NULL AND muscle_group != ''
		ORDER BY muscle_group`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			continue
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}
