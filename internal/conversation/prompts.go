package conversation

import (
	"fmt"

	"fitbot/internal/models"
)

// Наборы подсказок по состояниям. Вариант выбирается детерминированно
// от длины реплики, чтобы диалог не звучал механически.
var (
	startPrompts = []string{
		"Hi! I can build you a workout template. Say something like 'create a workout plan' to get started.",
		"Ready when you are! Ask me to create a workout template, e.g. 'make me a 3 day plan'.",
	}
	askDaysPrompts = []string{
		"How many days per week do you want to train? You can say '3 days', 'weekdays' or 'full week'.",
		"How many training days should the template have?",
	}
	askDaysRetryPrompts = []string{
		"I didn't catch the number of days. Try '3 days', 'monday to friday' or 'as usual'.",
		"How many days? A number from 1 to 7 works, or phrases like 'weekdays'.",
	}
	askNamesPrompts = []string{
		"What should the days be called? Weekday names, 'push / pull / legs', or say 'default' to use standard names.",
		"Name your days if you like ('Push Day, Pull Day, Leg Day'), or say 'default'.",
	}
	editDecisionPrompts = []string{
		"Here is your template. Want to change anything? You can say 'add bench press on monday', 'remove squats' or 'save it'.",
		"What would you like to tweak? For example 'replace deadlift with hip thrust', or say 'save' if it looks good.",
	}
	confirmSavePrompts = []string{
		"Should I save this template?",
		"Happy with it? Say 'yes' to save or keep editing.",
	}
	fallbackPrompts = []string{
		"I'm not sure what you meant. You can create a template ('make me a plan'), show the current one, or edit it ('add lunges on friday').",
		"Could you rephrase? Try 'create a 4 day plan', 'show my template' or 'remove burpees'.",
	}
	manualEditHints = []string{
		"I couldn't apply that change automatically. Try a concrete command like 'add bench press on monday', 'remove squats from tuesday' or 'replace deadlift with hip thrust'.",
		"That edit didn't go through. Concrete commands work best: 'add pull-ups on wednesday', 'rename day 2 to pull day', 'change all days to legs'.",
	}
)

// pick выбирает вариант подсказки по длине реплики
func pick(prompts []string, text string) string {
	if len(prompts) == 0 {
		return ""
	}
	return prompts[len(text)%len(prompts)]
}

// askDaysPrompt строит вопрос о днях с учётом профиля клиента
func askDaysPrompt(profile *models.Profile, text string) string {
	base := pick(askDaysPrompts, text)
	if !profile.ProfileComplete {
		return base
	}
	prefix := fmt.Sprintf("Got your profile: goal %s, %s level.", profile.ClientGoal, profile.Experience)
	if profile.WeightDeltaText != "" {
		prefix += fmt.Sprintf(" Target: %s.", profile.WeightDeltaText)
	}
	return prefix + " " + base
}
