package param

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	formatOnce     sync.Once
	formatValidate *validator.Validate
)

// formatValidator returns the shared validator instance. validator.Validate
// caches parsed tags and is safe for concurrent use.
func formatValidator() *validator.Validate {
	formatOnce.Do(func() {
		formatValidate = validator.New(validator.WithRequiredStructEnabled())
	})
	return formatValidate
}

// matchesFormat reports whether value satisfies the validator tag.
// An empty value never matches, since format tags describe non-empty input.
func matchesFormat(value, tag string) bool {
	if value == "" {
		return false
	}
	return formatValidator().Var(value, tag) == nil
}
