package models

// ViewMode selects the span of the calendar grid.
type ViewMode string

const (
	ViewModeWeek  ViewMode = "week"
	ViewModeMonth ViewMode = "month"
)

// Toggle flips week and month.
func (m ViewMode) Toggle() ViewMode {
	if m == ViewModeMonth {
		return ViewModeWeek
	}
	return ViewModeMonth
}

// CalendarViewState is the transient UI state of the live-classes calendar.
type CalendarViewState struct {
	AnchorDate   Date     `json:"anchor_date"`
	ViewMode     ViewMode `json:"view_mode"`
	SelectedDate *Date    `json:"selected_date,omitempty"`
}

// CalendarDay is one cell of the rendered grid.
type CalendarDay struct {
	Date         Date           `json:"date"`
	Weekday      string         `json:"weekday"`
	InMonth      bool           `json:"in_month"`
	IsToday      bool           `json:"is_today"`
	IsSelected   bool           `json:"is_selected"`
	SessionCount int            `json:"session_count"`
	Sessions     []ClassSession `json:"sessions"`
}

// CalendarSelection is the detail panel of the selected day.
type CalendarSelection struct {
	Date     Date           `json:"date"`
	Title    string         `json:"title"`
	InRange  bool           `json:"in_range"`
	Sessions []ClassSession `json:"sessions"`
}

// CalendarView is the fully derived calendar for one render.
type CalendarView struct {
	State     CalendarViewState  `json:"state"`
	Title     string             `json:"title"`
	RangeFrom Date               `json:"range_from"`
	RangeTo   Date               `json:"range_to"`
	Status    LoadStatus         `json:"status"`
	Error     string             `json:"error,omitempty"`
	Empty     bool               `json:"empty"`
	Days      []CalendarDay      `json:"days"`
	Selected  *CalendarSelection `json:"selected,omitempty"`
}

// LoadStatus tracks a store's fetch lifecycle.
type LoadStatus string

const (
	LoadStatusIdle    LoadStatus = "idle"
	LoadStatusLoading LoadStatus = "loading"
	LoadStatusReady   LoadStatus = "ready"
	LoadStatusFailed  LoadStatus = "failed"
)
