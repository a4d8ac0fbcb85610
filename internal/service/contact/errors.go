package contact

import (
	"errors"
	"strings"
)

var (
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrCaptchaRejected = errors.New("captcha expired or invalid, please try again")
	ErrInvalidStatus   = errors.New("invalid inquiry status")
)

// ValidationError lists the field-level problems of a submission so the
// form can render them. It is raised before the captcha is ever checked.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + strings.Join(e.Fields, "; ")
}
