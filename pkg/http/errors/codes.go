package errors

import "net/http"

// Messages carried in the error envelope, keyed by HTTP status.
const (
	MsgBadRequest       = "Bad Request"
	MsgNotFound         = "Resource Not Found"
	MsgMethodNotAllowed = "Method Not Allowed"
	MsgUnprocessable    = "Unprocessable"
	MsgInternalError    = "Internal Server Error"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusNotFound:            MsgNotFound,
	http.StatusMethodNotAllowed:    MsgMethodNotAllowed,
	http.StatusUnprocessableEntity: MsgUnprocessable,
	http.StatusInternalServerError: MsgInternalError,
}

// MessageFor returns the envelope message for status, falling back to the
// standard status text.
func MessageFor(status int) string {
	if msg, ok := statusMessages[status]; ok {
		return msg
	}
	return http.StatusText(status)
}
