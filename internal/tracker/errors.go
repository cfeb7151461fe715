package tracker

import (
	"errors"
	"fmt"
)

// InputError is a recoverable user mistake. It is shown as a warning and
// never changes state.
type InputError struct {
	Title   string
	Message string
}

func (e *InputError) Error() string { return e.Title + ": " + e.Message }

var (
	ErrEmptyEntry  = &InputError{Title: "Input Error", Message: "Please enter an expense."}
	ErrMultiline   = &InputError{Title: "Input Error", Message: "An expense must fit on one line."}
	ErrNoSelection = &InputError{Title: "Selection Error", Message: "Please select an expense to delete."}
)

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// StorageError wraps a failed read or write of one of the durable files.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }

func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
