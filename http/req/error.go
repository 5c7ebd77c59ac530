package req

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xy-planning-network/wanderlust"
)

const redacted = "[redacted]"

// A ValidationError is an issue with a concrete value not matching the rule set on its field.
type ValidationError struct {
	Field string `json:"field"`
	Got   any    `json:"got"`
	Rule  string `json:"rule,omitempty"`
}

// safe returns a copy of ve whose Got is masked if ve.Field holds a secret.
func (ve ValidationError) safe() ValidationError {
	if strings.Contains(strings.ToLower(ve.Field), "password") {
		ve.Got = redacted
	}

	return ve
}

// ValidationErrors is a set of ValidationError.
// Values of password fields never appear in its text or JSON.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, ve := range v {
		ve = ve.safe()
		msgs = append(msgs, fmt.Sprintf("field=%q rule=%q got=%q", ve.Field, ve.Rule, fmt.Sprint(ve.Got)))
	}

	return strings.Join(msgs, "\n")
}

func (v ValidationErrors) MarshalJSON() ([]byte, error) {
	var errs struct {
		E []ValidationError `json:"validationErrors,omitempty"`
	}

	for _, ve := range v {
		errs.E = append(errs.E, ve.safe())
	}

	return json.Marshal(errs)
}

// Fields lists the fields failing validation, in order.
func (v ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, ve := range v {
		fields = append(fields, ve.Field)
	}

	return fields
}

func (ValidationErrors) Unwrap() error { return wanderlust.ErrNotValid }
