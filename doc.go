// Package vcl compiles ValueSet Composition Language expressions into FHIR
// ValueSet compose structures.
//
// VCL is a compact single-line grammar for set algebra over coded
// terminologies: semicolons separate alternatives, commas join codes or
// filters into one rule, a leading parenthesized absolute URI scopes the
// clause to a code system, and a trailing -(...) group subtracts its rules.
//
//	vs, err := vcl.Parse("(http://snomed.info/sct)concept<<404684003")
//
// Parsing is all-or-nothing: any malformed input yields a *ParseError and
// no partial composition. ValidateExpression and the compatibility checks
// in the compose package are total and never fail.
//
// A Compiler adds memoization and metrics around the pure parse for use
// inside a terminology service; the package-level functions share one
// default Compiler. Downstream consumers that want generated FHIR resource
// types convert results with the export package.
package vcl
