package compose

import "github.com/buger/jsonparser"

// IsCompatible reports whether a ValueSet's composition uses only filter
// operators from the closed set this library supports. It is total: a nil
// ValueSet or one without a composition is simply incompatible. An empty
// filter list is trivially compatible.
func IsCompatible(vs *ValueSet) bool {
	if vs == nil || vs.Compose == nil {
		return false
	}
	return rulesCompatible(vs.Compose.Include) && rulesCompatible(vs.Compose.Exclude)
}

func rulesCompatible(rules []Rule) bool {
	for i := range rules {
		for _, f := range rules[i].Filter {
			if !f.Op.Known() {
				return false
			}
		}
	}
	return true
}

// IsCompatibleJSON makes the same decision as IsCompatible over a raw JSON
// document, typically a ValueSet deserialized from storage that never passed
// through this compiler. It walks compose.include and compose.exclude
// without decoding the full resource and never panics; malformed JSON is
// incompatible.
func IsCompatibleJSON(data []byte) bool {
	composeData, dataType, _, err := jsonparser.Get(data, "compose")
	if err != nil || dataType != jsonparser.Object {
		return false
	}

	compatible := true
	for _, list := range []string{"include", "exclude"} {
		rules, listType, _, err := jsonparser.Get(composeData, list)
		if err != nil {
			// An absent list has nothing to reject.
			continue
		}
		if listType != jsonparser.Array {
			return false
		}
		_, _ = jsonparser.ArrayEach(rules, func(rule []byte, ruleType jsonparser.ValueType, _ int, _ error) {
			if ruleType != jsonparser.Object {
				compatible = false
				return
			}
			_, _ = jsonparser.ArrayEach(rule, func(filter []byte, _ jsonparser.ValueType, _ int, _ error) {
				code, err := jsonparser.GetString(filter, "op")
				if err != nil {
					compatible = false
					return
				}
				if _, ok := ParseOperator(code); !ok {
					compatible = false
				}
			}, "filter")
		})
	}
	return compatible
}
