package models

// ViewMode selects how the page window is presented.
type ViewMode string

const (
	ViewModeList ViewMode = "list"
	ViewModeCard ViewMode = "card"
)

// Valid reports whether m is a known view mode.
func (m ViewMode) Valid() bool {
	return m == ViewModeList || m == ViewModeCard
}

// ViewState is the non-persisted interaction state of a session.
type ViewState struct {
	ViewMode       ViewMode `json:"view_mode"`
	SearchQuery    string   `json:"search_query"`
	DebouncedQuery string   `json:"debounced_query"`
	CurrentPage    int      `json:"current_page"`
	FormOpen       bool     `json:"form_open"`
	EditingID      *int     `json:"editing_id"` // nil when the form is closed or creating
}
