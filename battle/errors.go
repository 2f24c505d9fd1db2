package battle

import "errors"

var (
	ErrEmptyRoster    = errors.New("empty team roster")
	ErrBadParticipant = errors.New("participant index out of range")
)

type InvalidViewError string

func (e InvalidViewError) Error() string { return "invalid battle view: " + string(e) }

func ErrInvalidView(msg string) error { return InvalidViewError(msg) }
