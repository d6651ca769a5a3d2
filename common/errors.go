package common

import "errors"

var (
	ErrorInvalidParameters = errors.New("invalid distribution parameters")
	ErrorGenerateFailed    = errors.New("generate test vector failed")
)
