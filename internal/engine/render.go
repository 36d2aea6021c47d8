package engine

import (
	"fmt"
	"strings"

	"fitbot/internal/models"
)

// Markdown рендерит шаблон в markdown для фронтенда
func Markdown(tpl *models.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", tpl.Name)
	if tpl.Goal != "" {
		fmt.Fprintf(&b, "**Goal:** %s\n\n", strings.ReplaceAll(string(tpl.Goal), "_", " "))
	}
	for _, day := range tpl.Days {
		fmt.Fprintf(&b, "## %s\n", dayLabel(&day))
		if len(day.MuscleGroups) > 0 {
			fmt.Fprintf(&b, "*Focus: %s*\n", strings.Join(day.MuscleGroups, ", "))
		}
		b.WriteString("\n")
		for i, ex := range day.Exercises {
			fmt.Fprintf(&b, "%d. **%s** — %s\n", i+1, ex.Name, volumeText(&ex))
		}
		b.WriteString("\n")
	}
	for _, note := range tpl.Notes {
		fmt.Fprintf(&b, "> %s\n", note)
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// Display рендерит шаблон в текст для мессенджера
func Display(tpl *models.Template) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏋️ %s\n", tpl.Name)
	for _, day := range tpl.Days {
		fmt.Fprintf(&b, "\n%s %s\n", dayEmoji(&day), dayLabel(&day))
		for _, ex := range day.Exercises {
			fmt.Fprintf(&b, "  %s %s — %s\n", exerciseEmoji(ex.Name), ex.Name, volumeText(&ex))
		}
	}
	return b.String()
}

func volumeText(ex *models.Exercise) string {
	sets := models.DefaultSets
	if ex.Sets != nil {
		sets = *ex.Sets
	}
	reps := models.DefaultReps
	if ex.Reps != nil && *ex.Reps != "" {
		reps = string(*ex.Reps)
	}
	if ex.Note != nil && *ex.Note != "" {
		return fmt.Sprintf("%d x %s (%s)", sets, reps, *ex.Note)
	}
	return fmt.Sprintf("%d x %s", sets, reps)
}

func dayEmoji(day *models.Day) string {
	focus := strings.ToLower(strings.Join(day.MuscleGroups, " "))
	switch {
	case strings.Contains(focus, "leg") || strings.Contains(focus, "lower"):
		return "🦵"
	case strings.Contains(focus, "cardio"):
		return "🏃"
	case strings.Contains(focus, "core") || strings.Contains(focus, "abs"):
		return "🧘"
	default:
		return "💪"
	}
}

func exerciseEmoji(name string) string {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "run") || strings.Contains(lower, "sprint"):
		return "🏃"
	case strings.Contains(lower, "bike") || strings.Contains(lower, "cycl"):
		return "🚴"
	case strings.Contains(lower, "row"):
		return "🚣"
	case strings.Contains(lower, "jump") || strings.Contains(lower, "burpee"):
		return "🤸"
	default:
		return "🏋️"
	}
}
