// Package domain holds the todo types shared by the repo, service and transport layers
package domain

const (
	// DefaultLimit is the page size used when the caller does not ask for one
	DefaultLimit int64 = 10
	// MaxLimit is the hard ceiling for a page; larger requests are reduced, never rejected
	MaxLimit int64 = 10
)

// Todo is a single stored todo
type Todo struct {
	ID      int32  `json:"id"      example:"1"`
	Title   string `json:"title"   example:"buy milk"`
	Content string `json:"content" example:"two litres, semi skimmed"`
}

// TodoInput is the create and update body; both fields must be present, empty strings are allowed
type TodoInput struct {
	Title   *string `json:"title"   validate:"required" example:"buy milk"`
	Content *string `json:"content" validate:"required" example:"two litres, semi skimmed"`
}

// ListQuery carries the optional pagination parameters as sent by the caller
type ListQuery struct {
	Limit  *int64
	Offset *int64
}

// Page is a list result: the effective limit and offset, the unfiltered total and the rows
type Page struct {
	Limit  int64  `json:"limit"  example:"10"`
	Offset int64  `json:"offset" example:"0"`
	Total  int64  `json:"total"  example:"3"`
	Items  []Todo `json:"items"`
}

// Draft is a todo that has not been stored yet
type Draft struct {
	Title   string
	Content string
}
