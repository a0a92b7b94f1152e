package vcl

// Version is the library release.
const Version = "0.3.0"

// FHIRRelease identifies the FHIR release whose compose model the compiler
// targets. The export package converts to the matching generated types.
type FHIRRelease string

// Supported FHIR releases.
const (
	// R4 is FHIR Release 4 (4.0.1), the release the compose output and the
	// export converters are shaped for.
	R4 FHIRRelease = "R4"
)

// String returns the release string.
func (r FHIRRelease) String() string {
	return string(r)
}

// TargetRelease is the release compiled compositions conform to.
const TargetRelease = R4
