package compose

import (
	"encoding/json"
	"fmt"
)

// Operator identifies the filter operator of a composition rule filter.
// The set is closed: the compiler only ever emits these values, and the
// compatibility checker rejects anything outside them.
type Operator int

// Filter operators supported by the VCL grammar.
const (
	// OpEqual is a direct property/value equality test (`=`).
	OpEqual Operator = iota
	// OpIsA is a descendant-or-self subsumption test (`<<`).
	OpIsA
	// OpIsNotA is the negated subsumption test (`~<<`).
	OpIsNotA
	// OpRegex matches the property value against a regular expression (`/`).
	OpRegex
	// OpExists tests for the presence of a property (desugared from `*`).
	OpExists
)

// operatorCodes maps operators to the FHIR filter-operator wire codes used
// in ValueSet.compose.include.filter.op.
var operatorCodes = map[Operator]string{
	OpEqual:  "=",
	OpIsA:    "is-a",
	OpIsNotA: "is-not-a",
	OpRegex:  "regex",
	OpExists: "exists",
}

// String returns the FHIR wire code for the operator, or an empty string for
// a value outside the closed set.
func (op Operator) String() string {
	return operatorCodes[op]
}

// Known reports whether the operator is one of the closed set of values the
// compiler can emit.
func (op Operator) Known() bool {
	_, ok := operatorCodes[op]
	return ok
}

// ParseOperator maps a FHIR filter-operator wire code back to an Operator.
func ParseOperator(code string) (Operator, bool) {
	for op, c := range operatorCodes {
		if c == code {
			return op, true
		}
	}
	return 0, false
}

// MarshalJSON encodes the operator as its FHIR wire code.
func (op Operator) MarshalJSON() ([]byte, error) {
	code, ok := operatorCodes[op]
	if !ok {
		return nil, fmt.Errorf("unknown filter operator %d", int(op))
	}
	return json.Marshal(code)
}

// UnmarshalJSON decodes a FHIR wire code. Codes outside the closed set are
// rejected rather than preserved.
func (op *Operator) UnmarshalJSON(data []byte) error {
	var code string
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	parsed, ok := ParseOperator(code)
	if !ok {
		return fmt.Errorf("unknown filter operator %q", code)
	}
	*op = parsed
	return nil
}
