package errors

import "net/http"

// Client facing messages
const (
	MsgNotFound    = "not found"
	MsgInternal    = "internal server error"
	MsgInvalidPath = "type of the following path is invalid"
)

// Wire is the JSON body written for every failed request
type Wire struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Path    string `json:"path,omitempty"`
	Comment string `json:"comment,omitempty"`
}

func statusOf(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeValidation, ErrorCodeJSON:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// HTTPStatus returns the status err maps to
func HTTPStatus(err error) int { return statusOf(CodeOf(err)) }

// HTTP maps err to its status and client body. A not found body is always
// MsgNotFound, a 400 keeps its message, field and hint, and everything else,
// foreign errors included, collapses to a bare MsgInternal 500
func HTTP(err error) (int, Wire) {
	if err == nil {
		return http.StatusOK, Wire{}
	}
	e, ok := As(err)
	if !ok {
		return http.StatusInternalServerError, Wire{Code: http.StatusInternalServerError, Message: MsgInternal}
	}
	status := statusOf(e.code)
	switch status {
	case http.StatusNotFound:
		return status, Wire{Code: status, Message: MsgNotFound}
	case http.StatusBadRequest:
		return status, Wire{Code: status, Message: e.msg, Path: e.field, Comment: e.comment}
	default:
		return status, Wire{Code: status, Message: MsgInternal}
	}
}
