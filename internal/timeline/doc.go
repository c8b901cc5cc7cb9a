// Package timeline compiles a block tree into frame placements.
//
// Compile walks one ordered sequence with a running cursor. Code blocks are
// diffed against the previous code block of the same sequence to find how
// many characters they add; layouts compile each pane as an independent
// sequence and take the longest pane as their own duration. Every block is
// followed by a transition, shortened when an appended console continues the
// previous one.
package timeline
