package validation

import "strings"

// Violations maps field name to violation code.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Required flags field when value is blank.
func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}
