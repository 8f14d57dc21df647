// Package validation centralizes precondition checks so every service
// operation applies identical semantics. Checks return a tri-state outcome
// (pass, not-found, bad-input) and compose left to right, short-circuiting
// on the first failure.
package validation

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"lexvault/internal/domain"
	"lexvault/internal/pagination"
)

// Code classifies a gate outcome.
type Code int

const (
	Pass Code = iota
	NotFound
	BadInput
)

// Outcome is the result of one gate check. Err carries the typed failure
// when Code is not Pass.
type Outcome struct {
	Code Code
	Err  error
}

// Passed reports whether the check succeeded.
func (o Outcome) Passed() bool { return o.Code == Pass }

// OK is the passing outcome.
func OK() Outcome { return Outcome{Code: Pass} }

// BadInputf builds a bad-input outcome wrapping domain.ErrInvalidInput.
func BadInputf(format string, args ...any) Outcome {
	return Outcome{
		Code: BadInput,
		Err:  fmt.Errorf("%w: %s", domain.ErrInvalidInput, fmt.Sprintf(format, args...)),
	}
}

// Missing builds a not-found outcome carrying the given sentinel.
func Missing(err error) Outcome {
	return Outcome{Code: NotFound, Err: err}
}

// First runs checks in order and returns the first non-pass outcome.
func First(checks ...func() Outcome) Outcome {
	for _, check := range checks {
		if o := check(); !o.Passed() {
			return o
		}
	}
	return OK()
}

// UUIDRequired fails when id is the zero uuid.
func UUIDRequired(id uuid.UUID, field string) func() Outcome {
	return func() Outcome {
		if id == uuid.Nil {
			return BadInputf("%s is required", field)
		}
		return OK()
	}
}

// StringRequired fails when s is empty or blank.
func StringRequired(s, field string) func() Outcome {
	return func() Outcome {
		if strings.TrimSpace(s) == "" {
			return BadInputf("%s is required", field)
		}
		return OK()
	}
}

// ExtensionAllowed fails when ext is not an accepted document extension.
func ExtensionAllowed(ext string) func() Outcome {
	return func() Outcome {
		if _, ok := domain.AllowedExtensions[strings.ToLower(ext)]; !ok {
			return BadInputf("extension %q is not allowed", ext)
		}
		return OK()
	}
}

// PageParams fails when the page request is invalid.
func PageParams(p pagination.Params) func() Outcome {
	return func() Outcome {
		if err := p.Validate(); err != nil {
			return Outcome{Code: BadInput, Err: err}
		}
		return OK()
	}
}
