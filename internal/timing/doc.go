// Package timing converts block content into on-screen durations.
//
// Settings carries the animation tunables in seconds. Code blocks are timed
// from the number of characters they add, with separate rates for small and
// large edits, and are scaled by the timing multiplier. Cutaways use explicit
// seconds when the author gives them and per-type defaults otherwise.
// Consoles are timed from their command and output lengths at configurable
// typing rates.
//
// Every function here is pure. Frame counts are rounded to the nearest frame.
package timing
