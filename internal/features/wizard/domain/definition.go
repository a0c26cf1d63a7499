package domain

import (
	"cargo-portal/internal/core/validation"
	sessiondomain "cargo-portal/internal/features/session/domain"
)

// Kind names a wizard.
type Kind string

const (
	KindOrder        Kind = "order"
	KindVerification Kind = "verification"
	KindVehicle      Kind = "vehicle"
)

// Values are the answers collected so far, keyed by field name.
type Values map[string]string

// Field is one input of a step. Rule uses validator tags, e.g. "required,url".
type Field struct {
	Name string `json:"name"`
	Rule string `json:"rule,omitempty"`
	// Upload fields are filled with the URL returned by the file upload.
	Upload bool `json:"upload,omitempty"`
}

// Step is one page of a wizard.
type Step struct {
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// Validate checks only this step's fields against v.
func (s Step) Validate(v Values) error {
	errs := make([]error, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.Rule == "" {
			continue
		}
		errs = append(errs, validation.Var(f.Name, v[f.Name], f.Rule))
	}
	return validation.Merge(errs...)
}

func (s Step) field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Definition describes a wizard: its steps, who may run it and where the
// combined answers are posted.
type Definition struct {
	Kind  Kind
	Steps []Step
	// Submit is the backend path the payload is posted to.
	Submit string
	// Roles may start the wizard; empty means any signed-in user.
	Roles []sessiondomain.Role
	// Payload shapes the validated values into the backend's request body.
	Payload func(Values) (interface{}, error)
}

// Allows reports whether role may start the wizard.
func (d Definition) Allows(role sessiondomain.Role) bool {
	if len(d.Roles) == 0 {
		return true
	}
	for _, r := range d.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// uploadField finds an upload field in any step and returns the field as
// declared, so callers key state by the definition's own name.
func (d Definition) uploadField(name string) (Field, bool) {
	for _, s := range d.Steps {
		if f, ok := s.field(name); ok && f.Upload {
			return f, true
		}
	}
	return Field{}, false
}
