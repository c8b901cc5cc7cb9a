// Package cutpoints reduces a compiled timeline to the frame positions where
// an external trimming step may cut.
//
// Every leaf block, including blocks nested in layout panes, is mapped to
// absolute frames and split into highlighted and covered intervals. The
// intervals are merged into sorted cut points that always begin at zero and
// end at the timeline's total frame count, and one-frame segments are folded
// into their neighbours.
package cutpoints
