package dto

import "net/http"

// APIResponse is the uniform envelope returned by every endpoint.
type APIResponse struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	TraceID    string `json:"traceId,omitempty"`
}

func OK(data any, message string) APIResponse {
	return APIResponse{StatusCode: http.StatusOK, Success: true, Message: message, Data: data}
}

func Created(data any, message string) APIResponse {
	return APIResponse{StatusCode: http.StatusCreated, Success: true, Message: message, Data: data}
}

func Fail(statusCode int, message string) APIResponse {
	return APIResponse{StatusCode: statusCode, Success: false, Message: message}
}

// PagedResult wraps one page of items plus the pre-pagination match count.
type PagedResult[T any] struct {
	TotalCount int64 `json:"totalCount"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Items      []T   `json:"items"`
}
