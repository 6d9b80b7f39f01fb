package i3blocks

import "errors"

var (
	// ErrParse indicates a malformed line in a configuration file.
	ErrParse = errors.New("invalid config syntax")
)
