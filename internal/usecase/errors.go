package usecase

import (
	"errors"
	"fmt"
)

// ErrInvalidAddress is returned for input that is neither a TRX nor an ETH address.
var ErrInvalidAddress = errors.New("invalid address format")

// LabeledError tags an upstream failure with the resource that could not be fetched.
type LabeledError struct {
	Resource string
	Err      error
}

func (e *LabeledError) Error() string {
	return fmt.Sprintf("failed to fetch %s", e.Resource)
}

func (e *LabeledError) Unwrap() error { return e.Err }

func labeled(resource string, err error) error {
	if err == nil {
		return nil
	}
	return &LabeledError{Resource: resource, Err: err}
}
