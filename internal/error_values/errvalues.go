package errorvalues

import "errors"

var (
	ErrUserExists          = errors.New("such user already exists")
	ErrUserNotFound        = errors.New("user doesn't exists")
	ErrWrongCredentials    = errors.New("wrong name or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTaskNotFound        = errors.New("task doesn't exists")
	ErrChallengeNotFound   = errors.New("challenge doesn't exists")
	ErrParticipantNotFound = errors.New("user is not enrolled in challenge")
	ErrDuplicateEnrollment = errors.New("user already enrolled in challenge")
	ErrWrongOwner          = errors.New("entity has different owner")
	ErrUnknownCategory     = errors.New("unknown challenge category")
)
