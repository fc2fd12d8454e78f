package user

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("user not found")

// StageError records which stage of the cascade delete failed. Stages that
// already completed stay committed; there is no compensation.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("delete user: stage %q failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
