// Package phases derives the highlight-hold and tail phases that follow each
// block's typing animation, and stretches them so no inter-block gap is left
// uncovered.
package phases
