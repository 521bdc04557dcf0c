package domain

import "errors"

// ErrInvalidArgument is wrapped by every rejected checkout request
var ErrInvalidArgument = errors.New("invalid argument")
