package param

import (
	"errors"
	"fmt"
)

var (
	// ErrNilValue is reported when a check that needs a value runs against an absent one.
	ErrNilValue = errors.New("check requires a non-nil value")

	// ErrValidationFailed is returned by Errors when it holds no field errors.
	ErrValidationFailed = errors.New("validation failed")
)

// NilValueError is the panic value raised by every check except the presence
// checks when the parameter holds no value. It is a usage error rather than a
// validation failure, so it never touches the failure counter.
type NilValueError struct {
	Name  string
	Check Check
}

func (e *NilValueError) Error() string {
	return fmt.Sprintf("param %q: %s: %v", e.Name, e.Check, ErrNilValue)
}

func (e *NilValueError) Unwrap() error {
	return ErrNilValue
}

// Recover converts a NilValueError panic back into an error.
// It must be deferred directly:
//
//	func validate(p *param.Text) (err error) {
//		defer param.Recover(&err)
//		p.IsLength(5)
//		return nil
//	}
//
// Any other panic value is re-raised.
func Recover(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if nv, ok := r.(*NilValueError); ok && err != nil {
		*err = nv
		return
	}
	panic(r)
}
