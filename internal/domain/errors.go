package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// Authorization denials. Controllers surface these with a generic message so
// the existence of other accounts' resources is not leaked.
var (
	ErrNotOwner         = errors.New("not the owner of this resource")
	ErrInsufficientRole = errors.New("insufficient role")
)

// FieldError is a single (field, message) validation violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is the structured result of an input validation step,
// produced before any store call and independent of transport.
type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Messages returns the violation messages in field order.
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, len(v))
	for i, fe := range v {
		msgs[i] = fe.Message
	}
	return msgs
}
