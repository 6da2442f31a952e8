package upgma

import (
	"strconv"
	"strings"
)

// newickSpecial lists the characters that force a name to be quoted.
const newickSpecial = " \t\n\r()[]':;,"

// FormatNewick builds the label of a cluster formed by joining a left and a
// right subtree at the given height:
//
//	(left:height-leftHeight,right:height-rightHeight)
//
// Branch lengths are height differences, so a subtree that was merged earlier
// keeps the distance from the new node down to its leaves equal to height.
// digits is passed to FormatBranchLength.
func FormatNewick(left string, leftHeight float64, right string, rightHeight float64, height float64, digits int) string {
	var b strings.Builder
	b.Grow(len(left) + len(right) + 32)
	b.WriteByte('(')
	b.WriteString(left)
	b.WriteByte(':')
	b.WriteString(FormatBranchLength(height-leftHeight, digits))
	b.WriteByte(',')
	b.WriteString(right)
	b.WriteByte(':')
	b.WriteString(FormatBranchLength(height-rightHeight, digits))
	b.WriteByte(')')
	return b.String()
}

// FormatBranchLength formats a branch length in plain decimal notation.
// digits <= 0 uses the shortest representation that round-trips, so 1.0
// prints as "1" and 0.25 as "0.25"; digits > 0 prints exactly that many
// fractional digits.
func FormatBranchLength(v float64, digits int) string {
	if digits <= 0 {
		digits = -1
	}
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if s == "-0" {
		return "0"
	}
	return s
}

// QuoteName returns name as a Newick taxon label. Names without Newick
// metacharacters are returned unchanged; others are single-quoted with
// embedded quotes doubled.
func QuoteName(name string) string {
	if name != "" && !strings.ContainsAny(name, newickSpecial) {
		return name
	}
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
