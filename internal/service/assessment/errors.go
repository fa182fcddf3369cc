package assessment

import "errors"

var (
	ErrNotFound        = errors.New("assessment not found")
	ErrEmptyResponses  = errors.New("assessment has no responses")
	ErrUnknownQuestion = errors.New("unknown question id")
)
