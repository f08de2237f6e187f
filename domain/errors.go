package domain

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrRoomNotFound        = errors.New("room not found")
	ErrNotHost             = errors.New("only the host can do this")
	ErrNoActiveQuestion    = errors.New("no active question")
	ErrNotInRoom           = errors.New("not in room")
	ErrQuestionInProgress  = errors.New("question in progress")
	ErrAlreadyAnswered     = errors.New("already answered")
	ErrQuestionUnavailable = errors.New("no question available")
	ErrCodeSpaceExhausted  = errors.New("room code space exhausted")
	ErrUnknownIntent       = errors.New("unknown intent")
	ErrRateLimited         = errors.New("rate limit exceeded")
)
