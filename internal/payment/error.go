package payment

import "errors"

var (
	ErrInvalidAmount     = errors.New("invalid payment amount")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)
