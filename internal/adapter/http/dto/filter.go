package dto

// FilterRequest is the optional body of the paged search endpoints.
type FilterRequest struct {
	FilterCriteria []FilterCriterion `json:"filterCriteria" binding:"omitempty,dive"`
}

type FilterCriterion struct {
	Key       string `json:"key" binding:"required"`
	Value     any    `json:"value"`
	Operation string `json:"operation" binding:"required,oneof=IS GTE LTE GT LT REGEX"`
}
