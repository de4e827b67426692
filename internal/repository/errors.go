package repository

import "errors"

// ErrStore matches every failure returned by the store adapters.
var ErrStore = errors.New("store failure")

// StoreError wraps a driver failure. Its message is the driver's message verbatim.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return e.Err.Error()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
