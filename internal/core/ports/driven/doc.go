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
//   - LayoutExtractor: Turns a document file into per-page text lines
//   - ExtractorRegistry: Selects the appropriate extractor
//   - PostProcessor: One stage of outline post-processing
//   - PostProcessorPipeline: Runs the outline stages in order
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PDFInspector: Structural PDF validation. Without it, corrupt files
//     surface as extraction errors instead.
//   - RunStore: Run history. Without it, runs are not recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, extractor, or post-processor package
package driven
