// Package main hosts the codecast CLI entrypoint and command graph.
//
// The Cobra command tree loads content trees, compiles them into frame
// timelines, and writes the metadata documents consumed by the renderer and
// the trimmer. It also exposes read-only views (cut points, a timeline table)
// and configuration scaffolding. Configuration and logger setup happen once
// per invocation in commandContext so subcommands stay small.
package main
