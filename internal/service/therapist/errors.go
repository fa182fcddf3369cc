package therapist

import "errors"

var (
	ErrNotFound      = errors.New("therapist profile not found")
	ErrAlreadyExists = errors.New("therapist profile already exists for this user")
	ErrNotApproved   = errors.New("therapist profile is not approved")
)
