package compose

import "testing"

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name string
		vs   *ValueSet
		want bool
	}{
		{"nil valueset", nil, false},
		{"no compose", &ValueSet{ResourceType: "ValueSet"}, false},
		{"empty compose", &ValueSet{Compose: &Compose{}}, true},
		{
			"concept rules only",
			&ValueSet{Compose: &Compose{
				Include: []Rule{{Concept: []Concept{{Code: "a"}}}},
			}},
			true,
		},
		{
			"all supported operators",
			&ValueSet{Compose: &Compose{
				Include: []Rule{{Filter: []Filter{
					{Property: "p", Op: OpEqual, Value: "v"},
					{Property: "p", Op: OpIsA, Value: "v"},
					{Property: "p", Op: OpIsNotA, Value: "v"},
					{Property: "p", Op: OpRegex, Value: "v"},
					{Property: "concept", Op: OpExists, Value: "true"},
				}}},
			}},
			true,
		},
		{
			"unknown operator in include",
			&ValueSet{Compose: &Compose{
				Include: []Rule{{Filter: []Filter{{Property: "p", Op: Operator(99), Value: "v"}}}},
			}},
			false,
		},
		{
			"unknown operator in exclude",
			&ValueSet{Compose: &Compose{
				Include: []Rule{{Concept: []Concept{{Code: "a"}}}},
				Exclude: []Rule{{Filter: []Filter{{Property: "p", Op: Operator(-3), Value: "v"}}}},
			}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompatible(tt.vs); got != tt.want {
				t.Errorf("IsCompatible() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestIsCompatibleJSON(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{
			"supported operators",
			`{"resourceType":"ValueSet","compose":{"include":[
				{"system":"http://snomed.info/sct","filter":[{"property":"concept","op":"is-a","value":"123"}]},
				{"filter":[{"property":"concept","op":"exists","value":"true"}]}
			]}}`,
			true,
		},
		{
			"concepts only",
			`{"compose":{"include":[{"concept":[{"code":"a"}]}]}}`,
			true,
		},
		{
			"empty include",
			`{"compose":{"include":[]}}`,
			true,
		},
		{
			"unsupported operator",
			`{"compose":{"include":[{"filter":[{"property":"concept","op":"descendent-of","value":"1"}]}]}}`,
			false,
		},
		{
			"unsupported operator in exclude",
			`{"compose":{"include":[{"concept":[{"code":"a"}]}],"exclude":[{"filter":[{"property":"p","op":"in","value":"x"}]}]}}`,
			false,
		},
		{
			"filter without op",
			`{"compose":{"include":[{"filter":[{"property":"p","value":"x"}]}]}}`,
			false,
		},
		{"no compose", `{"resourceType":"ValueSet","status":"active"}`, false},
		{"compose not an object", `{"compose":"nope"}`, false},
		{"include not an array", `{"compose":{"include":{"concept":[]}}}`, false},
		{"rule not an object", `{"compose":{"include":["a"]}}`, false},
		{"malformed json", `{"compose":{`, false},
		{"empty document", ``, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCompatibleJSON([]byte(tt.data)); got != tt.want {
				t.Errorf("IsCompatibleJSON() = %v; want %v", got, tt.want)
			}
		})
	}
}
