// Package normalisers provides implementations of the LayoutExtractor
// interface for document formats. Each extractor knows how to turn a
// specific kind of file into per-page text lines with font metrics.
//
// Extractors are registered with the Registry at startup.
package normalisers
