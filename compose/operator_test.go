package compose

import (
	"encoding/json"
	"testing"
)

func TestOperatorWireCodes(t *testing.T) {
	tests := []struct {
		op   Operator
		code string
	}{
		{OpEqual, "="},
		{OpIsA, "is-a"},
		{OpIsNotA, "is-not-a"},
		{OpRegex, "regex"},
		{OpExists, "exists"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.code {
			t.Errorf("Operator(%d).String() = %q; want %q", int(tt.op), got, tt.code)
		}
		parsed, ok := ParseOperator(tt.code)
		if !ok || parsed != tt.op {
			t.Errorf("ParseOperator(%q) = %v, %v; want %v, true", tt.code, parsed, ok, tt.op)
		}
	}
}

func TestOperatorKnown(t *testing.T) {
	for _, op := range []Operator{OpEqual, OpIsA, OpIsNotA, OpRegex, OpExists} {
		if !op.Known() {
			t.Errorf("Operator %v reported unknown", op)
		}
	}
	if Operator(99).Known() {
		t.Error("Operator(99) reported known; the set is closed")
	}
	if Operator(-1).Known() {
		t.Error("Operator(-1) reported known; the set is closed")
	}
}

func TestOperatorJSONRoundTrip(t *testing.T) {
	for _, op := range []Operator{OpEqual, OpIsA, OpIsNotA, OpRegex, OpExists} {
		data, err := json.Marshal(op)
		if err != nil {
			t.Fatalf("Marshal(%v) error = %v", op, err)
		}
		var back Operator
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("Unmarshal(%s) error = %v", data, err)
		}
		if back != op {
			t.Errorf("round trip of %v produced %v", op, back)
		}
	}
}

func TestOperatorJSONRejectsUnknown(t *testing.T) {
	if _, err := json.Marshal(Operator(42)); err == nil {
		t.Error("Marshal of out-of-set operator succeeded; want error")
	}
	var op Operator
	if err := json.Unmarshal([]byte(`"descendent-of"`), &op); err == nil {
		t.Error("Unmarshal of unsupported code succeeded; want error")
	}
	if err := json.Unmarshal([]byte(`7`), &op); err == nil {
		t.Error("Unmarshal of non-string op succeeded; want error")
	}
}
