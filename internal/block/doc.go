// Package block defines the content tree that codecast schedules: code
// snippets, media cutaways, simulated consoles and nested split layouts.
//
// Block is a closed set of six value types. Callers dispatch with type
// switches; the unexported marker method keeps other packages from adding
// variants. Trees are decoded from YAML or JSON documents whose entries carry
// a "type" discriminator, and unknown types either fail the decode or are
// skipped and reported when lenient decoding is requested.
//
// The package also owns the small presentation rules that depend only on a
// block's own fields, such as console command/output splitting, prompt labels,
// console history for appended sessions, and layout pane weights.
package block
