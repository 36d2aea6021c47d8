package models

// State состояние диалога построения шаблона
type State string

const (
	StateStart           State = "start"
	StateFetchProfile    State = "fetch_profile"
	StateAskDays         State = "ask_days"
	StateAskNames        State = "ask_names"
	StateDraftGeneration State = "draft_generation"
	StateEditDecision    State = "edit_decision"
	StateApplyEdit       State = "apply_edit"
	StateConfirmSave     State = "confirm_save"
	StateDone            State = "done"
	// StateShowTemplate ветка показа без изменения основного состояния
	StateShowTemplate State = "show_template"
)

// Profile данные клиента, влияющие на генерацию шаблона
type Profile struct {
	ClientGoal      string   `json:"client_goal"`
	Experience      string   `json:"experience"`
	CurrentWeight   *float64 `json:"current_weight"`
	TargetWeight    *float64 `json:"target_weight"`
	WeightDeltaText string   `json:"weight_delta_text"`
	ProfileComplete bool     `json:"profile_complete"`

	DaysCount   int      `json:"days_count,omitempty"`
	DayNames    []string `json:"day_names,omitempty"`
	MuscleFocus string   `json:"muscle_focus,omitempty"`
}

// Context состояние диалога между репликами. Хранится во внешнем
// хранилище по id сессии; единственный писатель — машина состояний.
type Context struct {
	State    State     `json:"state"`
	Profile  Profile   `json:"profile"`
	Template *Template `json:"template,omitempty"`
}
