package logger

import "errors"

var (
	ErrUnknownFormat = errors.New("logger: unknown format")
	ErrUnknownLevel  = errors.New("logger: unknown level")
)
