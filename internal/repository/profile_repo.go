package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"fitbot/internal/models"
)

// ProfileRepository работает с анкетами клиентов и историей веса
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository создаёт репозиторий профилей
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Get возвращает профиль клиента с последней записью веса. Отсутствие
// анкеты не ошибка: возвращается неполный профиль с мягкими значениями
// по умолчанию, диалог продолжится без персонализации.
func (r *ProfileRepository) Get(userID string) (models.Profile, error) {
	p := models.Profile{
		ClientGoal: "muscle gain",
		Experience: "beginner",
	}

	var goal, experience sql.NullString
	err := r.db.QueryRow(`
		SELECT COALESCE(goal, ''), COALESCE(experience, '')
		FROM public.clients
		WHERE user_id = $1`, userID).Scan(&goal, &experience)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return p, nil
	case err != nil:
		return p, fmt.Errorf("загрузка профиля клиента %s: %w", userID, err)
	}

	if goal.Valid && goal.String != "" {
		p.ClientGoal = goal.String
	}
	if experience.Valid && experience.String != "" {
		p.Experience = experience.String
	}
	p.ProfileComplete = true

	var current, target sql.NullFloat64
	err = r.db.QueryRow(`
		SELECT current_weight, target_weight
		FROM public.weight_journey
		WHERE user_id = $1
		ORDER BY recorded_at DESC
		LIMIT 1`, userID).Scan(&current, &target)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return p, fmt.Errorf("загрузка истории веса клиента %s: %w", userID, err)
	}

	if current.Valid {
		v := current.Float64
		p.CurrentWeight = &v
	}
	if target.Valid {
		v := target.Float64
		p.TargetWeight = &v
	}
	if p.CurrentWeight != nil && p.TargetWeight != nil {
		delta := *p.TargetWeight - *p.CurrentWeight
		switch {
		case delta > 0:
			p.WeightDeltaText = fmt.Sprintf("gain %.1f kg", delta)
		case delta < 0:
			p.WeightDeltaText = fmt.Sprintf("lose %.1f kg", -delta)
		default:
			p.WeightDeltaText = "maintain current weight"
		}
	}
	return p, nil
}
