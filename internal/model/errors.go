package model

import "errors"

// ErrInvalidInput wraps validation failures raised before any store access.
var ErrInvalidInput = errors.New("invalid input")
