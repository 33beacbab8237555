package dto

// FilterDraftRequest sets one draft filter value. An empty value unsets the field.
type FilterDraftRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SelectDateRequest selects a calendar day.
type SelectDateRequest struct {
	Date string `json:"date" binding:"required"`
}

// InquiryStatusRequest edits the local status of an inquiry card.
type InquiryStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListMeta describes a filtered list response.
type ListMeta struct {
	Status  string            `json:"status"`
	Error   string            `json:"error,omitempty"`
	Total   int               `json:"total"`
	Visible int               `json:"visible"`
	Fields  []string          `json:"fields"`
	Draft   map[string]string `json:"draft"`
	Applied map[string]string `json:"applied"`
	// Pending counts unsaved local edits; only the inquiry board has them.
	Pending int `json:"pending,omitempty"`
}
