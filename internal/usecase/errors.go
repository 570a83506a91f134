package usecase

import "errors"

var (
	ErrEngineNotReady     = errors.New("engine not ready")
	ErrOccupationNotFound = errors.New("occupation not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInternal           = errors.New("internal error")
)
