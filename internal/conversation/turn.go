package conversation

import (
	"context"
	"fmt"
	"log"

	"fitbot/internal/engine"
	"fitbot/internal/models"
	"fitbot/internal/nlp"
)

// CatalogStore источник снимка справочника упражнений
type CatalogStore interface {
	Load() (*models.Catalog, error)
}

// ProfileStore источник профилей клиентов
type ProfileStore interface {
	Get(userID string) (models.Profile, error)
}

// TemplateStore хранилище сохранённых шаблонов
type TemplateStore interface {
	Save(userID string, tpl *models.Template) (string, error)
	GetLatest(userID string) (*models.Template, error)
}

// ConversationStore хранилище отложенных диалогов
type ConversationStore interface {
	Get(userID string) (*models.Context, error)
	Set(userID string, ctx *models.Context) error
	Clear(userID string) error
}

// Assistant языковая модель для генерации и свободных правок.
// Может отсутствовать: диалог тогда работает только на правилах.
type Assistant interface {
	GenerateTemplate(ctx context.Context, profile models.Profile, dayNames []string) (models.Template, error)
	EditTemplate(ctx context.Context, tpl *models.Template, instruction string) (models.Template, error)
}

// Manager обрабатывает реплики диалога: одна реплика — одна транзакция
// состояния и список событий для фронтенда
type Manager struct {
	catalogs  CatalogStore
	profiles  ProfileStore
	templates TemplateStore
	convs     ConversationStore
	extractor *nlp.Extractor
	engCfg    *engine.Config
	ai        Assistant
}

// NewManager создаёт менеджер диалогов. ai может быть nil.
func NewManager(catalogs CatalogStore, profiles ProfileStore, templates TemplateStore, convs ConversationStore, extractor *nlp.Extractor, engCfg *engine.Config, ai Assistant) *Manager {
	return &Manager{
		catalogs:  catalogs,
		profiles:  profiles,
		templates: templates,
		convs:     convs,
		extractor: extractor,
		engCfg:    engCfg,
		ai:        ai,
	}
}

// HandleTurn обрабатывает одну реплику пользователя. Последнее событие
// всегда терминальное (completed либо error).
func (m *Manager) HandleTurn(ctx context.Context, userID, text string) ([]Event, error) {
	conv, err := m.convs.Get(userID)
	if err != nil {
		log.Printf("conversation: загрузка диалога %s: %v", userID, err)
	}
	if conv == nil {
		conv = &models.Context{State: models.StateStart}
	}

	cat, err := m.catalogs.Load()
	if err != nil {
		ev := newEvent(StatusError, "The exercise catalog is unavailable right now, please try again in a moment.")
		return []Event{ev}, fmt.Errorf("загрузка справочника: %w", err)
	}
	eng := engine.New(cat, m.extractor, m.engCfg)

	res := m.extractor.Extract(ctx, text, conv)
	next := NextState(conv, text, res, m.extractor)

	var events []Event
	switch next {
	case models.StateFetchProfile:
		events = m.handleFetchProfile(ctx, userID, text, conv, res, eng)
	case models.StateAskDays:
		events = m.handleAskDays(text, conv)
	case models.StateAskNames:
		events = m.handleAskNames(text, conv)
	case models.StateDraftGeneration:
		events = m.handleDraftGeneration(ctx, text, conv, eng)
	case models.StateApplyEdit:
		events = m.handleApplyEdit(ctx, text, conv, res, eng)
	case models.StateEditDecision:
		events = m.handleEditDecision(text, conv)
	case models.StateConfirmSave:
		events = m.handleConfirmSave(text, conv)
	case models.StateDone:
		events = m.handleDone(userID, text, conv)
	case models.StateShowTemplate:
		events = m.handleShowTemplate(userID, text, conv)
	default:
		events = m.handleStart(text, conv, res)
	}

	if conv.State == models.StateDone {
		if err := m.convs.Clear(userID); err != nil {
			log.Printf("conversation: очистка диалога %s: %v", userID, err)
		}
	} else {
		if err := m.convs.Set(userID, conv); err != nil {
			log.Printf("conversation: сохранение диалога %s: %v", userID, err)
		}
	}
	return events, nil
}

// handleFetchProfile стартует построение шаблона: профиль клиента плюс
// всё, что удалось извлечь из стартовой реплики (дни, группа мышц)
func (m *Manager) handleFetchProfile(ctx context.Context, userID, text string, conv *models.Context, res models.IntentResult, eng *engine.Engine) []Event {
	events := []Event{newEvent(StatusInProgress, "Let me pull up your profile...")}

	profile, err := m.profiles.Get(userID)
	if err != nil {
		log.Printf("conversation: профиль клиента %s: %v", userID, err)
	}
	conv.Profile = profile

	if res.Entities.Muscle != "" {
		conv.Profile.MuscleFocus = res.Entities.Muscle
	}
	if res.Entities.HasCount && res.Entities.Count >= 1 && res.Entities.Count <= 14 {
		conv.Profile.DaysCount = res.Entities.Count
	}

	// Стартовая реплика вида "create a 3 day leg plan" содержит всё
	// нужное — пропускаем вопросы и сразу генерируем черновик
	if conv.Profile.DaysCount > 0 && conv.Profile.MuscleFocus != "" {
		conv.Profile.DayNames = models.DefaultDayNames(conv.Profile.DaysCount)
		return append(events, m.generateDraft(ctx, text, conv, eng)...)
	}
	if conv.Profile.DaysCount > 0 {
		conv.State = models.StateAskNames
		return append(events, newEvent(StatusCompleted, pick(askNamesPrompts, text)))
	}

	conv.State = models.StateAskDays
	return append(events, newEvent(StatusCompleted, askDaysPrompt(&conv.Profile, text)))
}

// handleAskDays повторный вопрос о количестве дней
func (m *Manager) handleAskDays(text string, conv *models.Context) []Event {
	retry := conv.State == models.StateAskDays
	conv.State = models.StateAskDays
	if retry {
		return []Event{newEvent(StatusCompleted, pick(askDaysRetryPrompts, text))}
	}
	return []Event{newEvent(StatusCompleted, askDaysPrompt(&conv.Profile, text))}
}

// handleAskNames запоминает количество дней и спрашивает их названия
func (m *Manager) handleAskNames(text string, conv *models.Context) []Event {
	if count, ok := m.extractor.ExtractDaysCount(text); ok {
		conv.Profile.DaysCount = count
	}
	if muscle, ok := m.extractor.MatchMuscle(text); ok && conv.Profile.MuscleFocus == "" {
		conv.Profile.MuscleFocus = muscle
	}
	conv.State = models.StateAskNames
	return []Event{newEvent(StatusCompleted, pick(askNamesPrompts, text))}
}

// handleDraftGeneration разбирает названия дней и строит черновик
func (m *Manager) handleDraftGeneration(ctx context.Context, text string, conv *models.Context, eng *engine.Engine) []Event {
	count := conv.Profile.DaysCount
	if count <= 0 {
		count = 3
	}
	conv.Profile.DayNames = m.extractor.ExtractDayNames(text, count)
	return m.generateDraft(ctx, text, conv, eng)
}

// generateDraft строит черновик: фокус на группе мышц делает это движок,
// общий случай — языковая модель, при её сбое остов с добором из каталога
func (m *Manager) generateDraft(ctx context.Context, text string, conv *models.Context, eng *engine.Engine) []Event {
	events := []Event{newEvent(StatusInProgress, "Generating your template...")}

	names := conv.Profile.DayNames
	if len(names) == 0 {
		count := conv.Profile.DaysCount
		if count <= 0 {
			count = 3
		}
		names = models.DefaultDayNames(count)
	}

	var (
		tpl     models.Template
		summary string
	)
	switch {
	case conv.Profile.MuscleFocus != "":
		tpl, summary = eng.MuscleSpecificTemplate(names, conv.Profile.MuscleFocus)
	case m.ai != nil:
		generated, err := m.ai.GenerateTemplate(ctx, conv.Profile, names)
		if err != nil {
			log.Printf("conversation: генерация через LLM не удалась: %v", err)
			tpl = models.NewSkeleton(names)
			summary = fmt.Sprintf("Built a %d-day starter template.", len(names))
		} else {
			tpl = generated
			summary = fmt.Sprintf("Built a %d-day template for %s.", len(names), conv.Profile.ClientGoal)
		}
	default:
		tpl = models.NewSkeleton(names)
		summary = fmt.Sprintf("Built a %d-day starter template.", len(names))
	}

	tpl = eng.EnforceCatalog(tpl)
	conv.Template = &tpl
	conv.State = models.StateEditDecision

	ev := m.templateEvent(conv.Template, summary, pick(editDecisionPrompts, text))
	return append(events, ev)
}

// handleApplyEdit применяет правку: сперва детерминированный движок,
// потом языковая модель, в конце подсказка с примерами команд
func (m *Manager) handleApplyEdit(ctx context.Context, text string, conv *models.Context, res models.IntentResult, eng *engine.Engine) []Event {
	if conv.Template == nil {
		conv.State = models.StateStart
		return []Event{newEvent(StatusCompleted, "There is no template to edit yet. Say 'create a workout plan' to build one.")}
	}

	events := []Event{newEvent(StatusInProgress, "Applying your change...")}

	updated, summary, handled := eng.ApplyEdit(*conv.Template, text, res)
	if !handled && m.ai != nil {
		llmUpdated, err := m.ai.EditTemplate(ctx, conv.Template, text)
		if err != nil {
			log.Printf("conversation: правка через LLM не удалась: %v", err)
		} else {
			gated := eng.EnforceCatalog(llmUpdated)
			if gated.SameDayKeys(conv.Template) {
				updated, summary, handled = gated, "Applied your change.", true
			} else {
				// Модель поломала структуру дней — оставляем как было
				updated, summary, handled = *conv.Template, "The change could not be applied without breaking the template structure, so the template was kept as-is.", true
			}
		}
	}

	conv.State = models.StateEditDecision
	if !handled {
		ev := m.templateEvent(conv.Template, "", pick(manualEditHints, text))
		return append(events, ev)
	}

	conv.Template = &updated
	ev := m.templateEvent(conv.Template, summary, pick(editDecisionPrompts, text))
	return append(events, ev)
}

// handleEditDecision возвращает диалог к выбору правок, показывая черновик
func (m *Manager) handleEditDecision(text string, conv *models.Context) []Event {
	if conv.Template == nil {
		conv.State = models.StateStart
		return []Event{newEvent(StatusCompleted, "There is no template yet. Say 'create a workout plan' to build one.")}
	}
	conv.State = models.StateEditDecision
	return []Event{m.templateEvent(conv.Template, "", pick(editDecisionPrompts, text))}
}

// handleConfirmSave спрашивает подтверждение перед сохранением
func (m *Manager) handleConfirmSave(text string, conv *models.Context) []Event {
	if conv.Template == nil {
		conv.State = models.StateStart
		return []Event{newEvent(StatusCompleted, "There is nothing to save yet. Say 'create a workout plan' first.")}
	}
	conv.State = models.StateConfirmSave
	return []Event{m.templateEvent(conv.Template, "", pick(confirmSavePrompts, text))}
}

// handleDone сохраняет шаблон и завершает диалог
func (m *Manager) handleDone(userID, text string, conv *models.Context) []Event {
	if conv.Template == nil {
		conv.State = models.StateStart
		return []Event{newEvent(StatusCompleted, "There is nothing to save yet. Say 'create a workout plan' first.")}
	}

	events := []Event{newEvent(StatusInProgress, "Saving your template...")}
	if _, err := m.templates.Save(userID, conv.Template); err != nil {
		log.Printf("conversation: сохранение шаблона %s: %v", userID, err)
		conv.State = models.StateEditDecision
		ev := newEvent(StatusError, "Saving failed, please try again in a moment.")
		return append(events, ev)
	}

	conv.State = models.StateDone
	ev := m.templateEvent(conv.Template, "Template saved.", "Saved! Ask me any time to show it or build a new one.")
	return append(events, ev)
}

// handleShowTemplate показывает черновик или последний сохранённый шаблон
func (m *Manager) handleShowTemplate(userID, text string, conv *models.Context) []Event {
	if conv.Template == nil {
		saved, err := m.templates.GetLatest(userID)
		if err != nil {
			log.Printf("conversation: загрузка шаблона %s: %v", userID, err)
		}
		conv.Template = saved
	}
	if conv.Template == nil {
		conv.State = models.StateStart
		return []Event{newEvent(StatusCompleted, "You don't have a template yet. Say 'create a workout plan' to build one.")}
	}
	conv.State = models.StateEditDecision
	return []Event{m.templateEvent(conv.Template, "", pick(editDecisionPrompts, text))}
}

// handleStart приветствие и мягкий фолбэк для нераспознанных реплик
func (m *Manager) handleStart(text string, conv *models.Context, res models.IntentResult) []Event {
	conv.State = models.StateStart
	if res.Intent == models.IntentUnknown {
		return []Event{newEvent(StatusCompleted, pick(fallbackPrompts, text))}
	}
	return []Event{newEvent(StatusCompleted, pick(startPrompts, text))}
}

// templateEvent терминальное событие с полным представлением шаблона
func (m *Manager) templateEvent(tpl *models.Template, summary, message string) Event {
	ev := newEvent(StatusCompleted, message)
	ev.Summary = summary
	ev.TemplateJSON = tpl
	ev.TemplateMarkdown = engine.Markdown(tpl)
	ev.TemplateIDs = tpl.IDsByDay()
	return ev
}

// Status возвращает текущее состояние диалога для отладочных ручек
func (m *Manager) Status(userID string) (*models.Context, error) {
	return m.convs.Get(userID)
}

// Reset сбрасывает диалог клиента
func (m *Manager) Reset(userID string) error {
	return m.convs.Clear(userID)
}
