package http

import "github.com/hasthiya-it/tracker-backend/internal/httpjson"

// response is the envelope every endpoint answers with.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type createReq struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	DueDate     string  `json:"due_date"`
}

// updateReq accepts any subset of the project fields. Description uses
// Nullable so an explicit null clears the stored value while an omitted
// field leaves it alone.
type updateReq struct {
	Name        *string                   `json:"name"`
	Description httpjson.Nullable[string] `json:"description"`
	Status      *string                   `json:"status"`
	DueDate     *string                   `json:"due_date"`
}
