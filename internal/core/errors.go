package core

import "errors"

// Error codes for relay errors.
const (
	ErrCodeRoomNotFound       = "room_not_found"
	ErrCodeNotInRoom          = "not_in_room"
	ErrCodeAlreadyInRoom      = "already_in_room"
	ErrCodeBadRequest         = "bad_request"
	ErrCodeCodeSpaceExhausted = "code_space_exhausted"
)

var (
	ErrRoomNotFound       = errors.New("room not found")
	ErrNotInRoom          = errors.New("not in room")
	ErrAlreadyInRoom      = errors.New("already in room")
	ErrCodeSpaceExhausted = errors.New("room code space exhausted")
)

// RelayError wraps a code and human-readable message.
type RelayError struct {
	Code    string
	Message string
}

func (e *RelayError) Error() string {
	return e.Message
}

func relayError(code, msg string) *RelayError {
	return &RelayError{Code: code, Message: msg}
}
