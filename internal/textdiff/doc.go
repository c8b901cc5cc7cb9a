// Package textdiff counts how many characters a code snippet gains between
// two consecutive versions. It wraps the diff-match-patch engine with a
// deterministic configuration and reports lengths in runes.
package textdiff
