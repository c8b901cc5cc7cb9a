// Package metadata assembles and persists the metadata document that
// describes a compiled timeline.
//
// Generate runs the full pipeline (compile, phase adjustment and cut-point
// extraction) and stamps the document with its layout and generator
// versions. WriteFile stores the JSON encoding atomically while holding an
// advisory file lock, so concurrent compiles targeting the same output do not
// interleave.
package metadata
