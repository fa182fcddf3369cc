package matchmaking

import "errors"

var (
	ErrNoAssessment = errors.New("no completed assessment for this user")
	ErrEmptyRoster  = errors.New("no approved therapists available")
)
