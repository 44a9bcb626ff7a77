package tlssig

import (
	"errors"
)

var (
	ErrMalformedToken = errors.New("malformed token text")
	ErrCorruptPayload = errors.New("corrupt compressed payload")
)
