package dto

import "time"

const MessageSuccess = "success"

// Response wraps every successful body.
type Response[T any] struct {
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp"`
	Message   string `json:"message"`
}

func Success[T any](data T) Response[T] {
	return Response[T]{
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Message:   MessageSuccess,
	}
}

type Page[T any] struct {
	List  []T   `json:"list"`
	Total int64 `json:"total"`
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
}

type IDResponse struct {
	ID string `json:"id"`
}

type UpdateResponse struct {
	Matched  int64 `json:"matched"`
	Modified int64 `json:"modified"`
}
