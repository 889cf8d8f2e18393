package domain

import "errors"

var (
	ErrNotFound      = errors.New("not found")
	ErrStoreDisabled = errors.New("results archive disabled")
)
