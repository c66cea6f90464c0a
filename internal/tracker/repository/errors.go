package repository

import "errors"

var (
	ErrFailedToGet  = errors.New("failed to get value")
	ErrFailedToSet  = errors.New("failed to set values")
	ErrFailedToList = errors.New("failed to list keys")
)
