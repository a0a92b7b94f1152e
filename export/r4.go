// Package export converts compiled compositions to and from the generated
// FHIR R4 resource types used across the gofhir libraries, so downstream
// consumers receive native r4.ValueSet values.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/vcl/compose"
)

// ToR4 converts a compiled composition to an r4.ValueSet. The compose model
// serializes to exactly the FHIR R4 ValueSet JSON shape, so conversion is a
// canonical JSON round-trip rather than a field-by-field mapping.
func ToR4(vs *compose.ValueSet) (*r4.ValueSet, error) {
	if vs == nil {
		return nil, fmt.Errorf("valueset is nil")
	}
	data, err := json.Marshal(vs)
	if err != nil {
		return nil, fmt.Errorf("encode composition: %w", err)
	}
	var out r4.ValueSet
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("convert to r4: %w", err)
	}
	return &out, nil
}

// FromR4 converts an r4.ValueSet back to the compose model, typically to
// run the compatibility check over a resource obtained elsewhere. Operators
// outside the closed set fail the conversion.
func FromR4(vs *r4.ValueSet) (*compose.ValueSet, error) {
	if vs == nil {
		return nil, fmt.Errorf("valueset is nil")
	}
	data, err := json.Marshal(vs)
	if err != nil {
		return nil, fmt.Errorf("encode r4 resource: %w", err)
	}
	var out compose.ValueSet
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("convert from r4: %w", err)
	}
	return &out, nil
}
