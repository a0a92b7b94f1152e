// Package compose defines the composition data model produced by the VCL
// compiler: a FHIR-shaped ValueSet envelope holding include and exclude rule
// lists. The model mirrors the JSON field names and array-vs-absent
// conventions that the downstream code-system execution engine expects.
package compose

// ValueSet is the envelope around a compiled composition. Only the fields a
// terminology server needs to route and store the composition are carried;
// the full resource surface lives in the generated FHIR types (see the
// export package).
type ValueSet struct {
	ResourceType string   `json:"resourceType"`
	ID           string   `json:"id,omitempty"`
	URL          string   `json:"url,omitempty"`
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Status       string   `json:"status"`
	Experimental bool     `json:"experimental"`
	Compose      *Compose `json:"compose,omitempty"`
}

// Compose holds the include and exclude rule lists of a composition.
type Compose struct {
	Include []Rule `json:"include"`
	Exclude []Rule `json:"exclude,omitempty"`
}

// Rule is one unit of a composition, scoped to an optional code system.
// Exactly one of Concept, Filter, and ValueSet is populated per rule the
// compiler emits; System and Version may accompany any of the three.
type Rule struct {
	System   string    `json:"system,omitempty"`
	Version  string    `json:"version,omitempty"`
	Concept  []Concept `json:"concept,omitempty"`
	Filter   []Filter  `json:"filter,omitempty"`
	ValueSet []string  `json:"valueSet,omitempty"`
}

// Concept is a single coded concept. Display is never set by the compiler;
// VCL carries no display text.
type Concept struct {
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
}

// Filter is a property/operator/value membership test. Value is stored
// unquoted: a literal wrapped in double quotes in the source keeps only its
// interior content.
type Filter struct {
	Property string   `json:"property"`
	Op       Operator `json:"op"`
	Value    string   `json:"value"`
}

// NewSkeleton returns a fresh draft ValueSet with an empty composition. The
// include and exclude lists are non-nil so callers can append directly.
func NewSkeleton(id, name, description string) *ValueSet {
	return &ValueSet{
		ResourceType: "ValueSet",
		ID:           id,
		Name:         name,
		Description:  description,
		Status:       "draft",
		Experimental: true,
		Compose: &Compose{
			Include: []Rule{},
			Exclude: []Rule{},
		},
	}
}

// Clone returns a deep copy of the ValueSet. Compiled compositions are
// immutable by contract; callers that cache or hand out compositions clone
// them instead of sharing rule slices.
func (vs *ValueSet) Clone() *ValueSet {
	if vs == nil {
		return nil
	}
	out := *vs
	out.Compose = vs.Compose.Clone()
	return &out
}

// Clone returns a deep copy of the composition.
func (c *Compose) Clone() *Compose {
	if c == nil {
		return nil
	}
	return &Compose{
		Include: cloneRules(c.Include),
		Exclude: cloneRules(c.Exclude),
	}
}

func cloneRules(rules []Rule) []Rule {
	if rules == nil {
		return nil
	}
	out := make([]Rule, len(rules))
	for i, r := range rules {
		out[i] = r
		if r.Concept != nil {
			out[i].Concept = append([]Concept(nil), r.Concept...)
		}
		if r.Filter != nil {
			out[i].Filter = append([]Filter(nil), r.Filter...)
		}
		if r.ValueSet != nil {
			out[i].ValueSet = append([]string(nil), r.ValueSet...)
		}
	}
	return out
}
