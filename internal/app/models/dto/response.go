package dto

import "time"

// APIResponse is the envelope of every successful JSON response
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

// NewAPIResponse wraps data in a success envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a standard success response for API endpoints
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
