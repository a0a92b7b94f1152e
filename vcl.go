package vcl

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gofhir/vcl/compose"
)

// Parse compiles a VCL expression into a ValueSet whose composition holds
// the include and exclude rules of the expression. It returns a *ParseError
// for any malformed input; there is no partial result.
func Parse(text string) (*compose.ValueSet, error) {
	return defaultCompiler.Parse(text)
}

// ParseAndAssignID compiles the expression and stamps the result with a
// synthetic url of the form "cid:<n>". The numeric suffix is unique within
// the process lifetime and carries no meaning beyond identity.
func ParseAndAssignID(text string) (*compose.ValueSet, error) {
	return defaultCompiler.ParseAndAssignID(text)
}

// ValidateExpression reports whether the expression parses. It is total:
// exactly the inputs Parse accepts return true, and nothing escapes as an
// error.
func ValidateExpression(text string) bool {
	_, err := parseExpression(text)
	return err == nil
}

// BuildSkeleton returns a fresh draft ValueSet with an empty composition
// and the three supplied fields set verbatim.
func BuildSkeleton(id, name, description string) *compose.ValueSet {
	return compose.NewSkeleton(id, name, description)
}

// SplitSystemURI splits a system URI on the first '|' into its system and
// version parts. Without a '|' the version is empty and the system is the
// input unchanged.
func SplitSystemURI(uri string) (system, version string) {
	if idx := strings.IndexByte(uri, '|'); idx >= 0 {
		return uri[:idx], uri[idx+1:]
	}
	return uri, ""
}

// Sequence is a process-wide monotonic identifier source. The zero value is
// ready to use; the first Next is 1. It is safe for concurrent callers and
// is never reset or persisted.
type Sequence struct {
	n atomic.Uint64
}

// NewSequence returns a fresh Sequence starting at zero.
func NewSequence() *Sequence {
	return &Sequence{}
}

// Next advances the sequence and returns the new value.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

// assignID stamps a composition with the next synthetic identifier.
func assignID(vs *compose.ValueSet, seq *Sequence) {
	vs.URL = fmt.Sprintf("cid:%d", seq.Next())
}
