package service

import "errors"

var (
	// ErrTestNotFound means the referenced test id does not exist.
	ErrTestNotFound = errors.New("test not found")
	// ErrInvalidPayload means a test creation payload is missing required fields.
	ErrInvalidPayload = errors.New("invalid payload")
)
