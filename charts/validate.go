package charts

import (
	"fmt"
	"strings"

	"datachat/dataset"
)

// Encoding channels the validator recognizes.
var recognizedChannels = []string{"x", "y", "color", "size", "shape", "tooltip", "detail", "opacity"}

// Validator structurally checks chart specs. It never stops at the
// first problem; the full issue list goes back upstream so the model
// can self-correct in one round.
type Validator struct {
	// RequireSchema demands a $schema declaration matching SchemaURL.
	RequireSchema bool
	SchemaURL     string
}

func NewValidator(requireSchema bool) *Validator {
	return &Validator{
		RequireSchema: requireSchema,
		SchemaURL:     DefaultSchemaURL,
	}
}

// Validation is the outcome of a structural check.
type Validation struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues,omitempty"`
}

// Validate checks that the spec declares a mark and at least one
// recognized encoding channel. When a dataset profile is supplied,
// every channel naming a field must resolve against the profile's
// columns.
func (v *Validator) Validate(spec Spec, profile []dataset.ColumnProfile) Validation {
	if len(spec) == 0 {
		return Validation{Valid: false, Issues: []string{"chart spec is missing"}}
	}

	var issues []string

	if v.RequireSchema {
		url, _ := spec["$schema"].(string)
		switch {
		case url == "":
			issues = append(issues, "missing $schema declaration")
		case url != v.SchemaURL:
			issues = append(issues, fmt.Sprintf("unsupported $schema %q, expected %q", url, v.SchemaURL))
		}
	}

	if _, ok := spec["mark"]; !ok {
		issues = append(issues, "missing mark")
	}

	encoding, ok := spec.Encoding()
	if !ok || len(encoding) == 0 {
		issues = append(issues, "missing encoding")
		return Validation{Valid: len(issues) == 0, Issues: issues}
	}

	columns := make([]string, 0, len(profile))
	for _, col := range profile {
		columns = append(columns, col.Name)
	}

	recognized := 0
	for _, channel := range recognizedChannels {
		raw, present := encoding[channel]
		if !present {
			continue
		}
		recognized++

		def, ok := raw.(map[string]interface{})
		if !ok {
			issues = append(issues, fmt.Sprintf("encoding channel %q is not an object", channel))
			continue
		}
		fieldName, _ := def["field"].(string)
		if fieldName == "" || len(columns) == 0 {
			continue
		}
		if _, err := dataset.ResolveField(fieldName, columns); err != nil {
			issues = append(issues, fmt.Sprintf("encoding channel %q references unknown field %q", channel, fieldName))
		}
	}
	if recognized == 0 {
		issues = append(issues, fmt.Sprintf("encoding declares none of the recognized channels (%s)",
			strings.Join(recognizedChannels, ", ")))
	}

	return Validation{Valid: len(issues) == 0, Issues: issues}
}
