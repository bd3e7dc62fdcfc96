package param

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a single collected field failure with translation support.
type Error struct {
	Field             string
	Check             Check
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Errors is a collection of field failures that satisfies the error interface.
type Errors []Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return ErrValidationFailed.Error()
	}

	parts := make([]string, 0, len(e))
	for _, err := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(parts, "; ")
}

func (e Errors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (e *Errors) Add(err Error) {
	*e = append(*e, err)
}

func (e Errors) Has(field string) bool {
	for _, err := range e {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for field, in failure order.
func (e Errors) Get(field string) []string {
	var messages []string
	for _, err := range e {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (e Errors) GetErrors(field string) []Error {
	var out []Error
	for _, err := range e {
		if err.Field == field {
			out = append(out, err)
		}
	}
	return out
}

// Fields returns the distinct failed field names in first-failure order.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range e {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// Err returns e as an error, or nil when nothing failed.
func (e Errors) Err() error {
	if e.IsEmpty() {
		return nil
	}
	return e
}

// Collect returns a callback that appends every failure to errs.
//
//	var errs param.Errors
//	email := param.NewText("email", r.FormValue("email"), param.WithCallbacks(param.Collect(&errs)))
//	email.NotEmpty()
//	email.IsFormat("email")
//	if err := errs.Err(); err != nil {
//		// render field errors
//	}
func Collect(errs *Errors) Callback {
	return func(f Failure) {
		errs.Add(f.AsError())
	}
}

// ExtractErrors extracts Errors from an error chain.
func ExtractErrors(err error) Errors {
	if err == nil {
		return nil
	}

	var verrs Errors
	if errors.As(err, &verrs) {
		return verrs
	}
	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	var verrs Errors
	return errors.As(err, &verrs)
}

// Counter aggregates failures across every parameter of a form submission.
// It is not safe for concurrent use; one Counter belongs to one request.
type Counter struct {
	failures int
	fields   map[string]int
}

// Callback returns a callback that records each failure in c.
func (c *Counter) Callback() Callback {
	return func(f Failure) {
		c.failures++
		if c.fields == nil {
			c.fields = make(map[string]int)
		}
		c.fields[f.Name()]++
	}
}

// Count returns the number of failed checks recorded so far.
func (c *Counter) Count() int {
	return c.failures
}

// Field returns the number of failed checks recorded for name.
func (c *Counter) Field(name string) int {
	return c.fields[name]
}

func (c *Counter) IsValid() bool {
	return c.failures == 0
}
