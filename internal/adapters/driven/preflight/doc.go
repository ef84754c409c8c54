// Package preflight validates PDF structure before layout extraction.
package preflight
