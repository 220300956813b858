package errorx

import "fmt"

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`

	// Fields carries per-field validation messages for ValidationFailure
	// errors.
	Fields map[string]string `json:"fields,omitempty"`
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// NewValidation reports a failed form validation together with the messages
// of every violated field.
func NewValidation(fields map[string]string) Error {
	return Error{
		Code:    ValidationFailure,
		Message: "The submitted form is invalid",
		Fields:  fields,
	}
}
