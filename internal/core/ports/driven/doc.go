// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - AnalysisGateway: Sends an envelope to the analysis service
//   - CalculationGateway: Requests an energy estimate for a sample
//   - ArtifactSaver: Hands an exported artifact to a save mechanism
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ImagePreviewer: Local image preview. Without it, no preview is shown.
//   - BlobLoader: Reads selected files. Without it, only in-memory blobs can be submitted.
//   - FilePicker: Native file dialogs. Without it, paths are typed.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
