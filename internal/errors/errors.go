package errors

import (
	stderrors "errors"
	"fmt"
)

// Is and As are re-exported so callers importing this package do not need
// the standard library one as well.
var (
	Is = stderrors.Is
	As = stderrors.As
)

// Error tags a failure with the command or operation that produced it.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// E wraps err with op. A nil err stays nil so callers can write
// `return errors.E("save", store.Save(name))`.
func E(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}
