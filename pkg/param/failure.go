package param

// Checked is the read-only view of a checked value that failure callbacks receive.
type Checked interface {
	Name() string
	Failures() int
	HasFailures() bool
	IsNil() bool
	// Any returns the wrapped value, or nil when the value is absent.
	Any() any
}

// Failure describes one failed check invocation.
// TranslationValues carries the check arguments keyed by name ("min", "max",
// "inclusive", "length", "values", "index", ...) plus the "field" name, so the
// same event can be rendered by a message catalog or inspected programmatically.
type Failure struct {
	Check             Check
	Param             Checked
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Name returns the name of the parameter that failed.
func (f Failure) Name() string {
	if f.Param == nil {
		return ""
	}
	return f.Param.Name()
}

// Arg returns a single check argument.
func (f Failure) Arg(key string) (any, bool) {
	v, ok := f.TranslationValues[key]
	return v, ok
}

// AsError converts the failure into a collectable field error.
func (f Failure) AsError() Error {
	return Error{
		Field:             f.Name(),
		Check:             f.Check,
		Message:           f.Message,
		TranslationKey:    f.TranslationKey,
		TranslationValues: f.TranslationValues,
	}
}

// Callback is notified synchronously, in registration order, after a check fails.
type Callback func(Failure)
