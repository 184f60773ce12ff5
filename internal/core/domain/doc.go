// Package domain defines the core entities of the SunEye client.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - InputMode: The three mutually exclusive submission kinds
//   - Envelope: A validated payload for exactly one input mode
//   - AnalysisResult: The opaque JSON value returned by the analysis service
//   - PageState: The Home/Output view state and the single live result
//   - CalculationQuery / CalculationResult: The electricity estimate flow
//   - Artifact: The exported JSON document
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
