// Package receipt renders the shareable text summary of a completed pickup.
// The text is derived on every request and never persisted.
package receipt

import (
	"fmt"
	"strings"
)

// Line is one collected item on the receipt.
type Line struct {
	Quantity uint32
	Category string
}

// Text renders the messaging-app friendly receipt, e.g.
// "Donation Receipt - Donor: Jane. Items: 2 Chairs, 1 Table. Thank you!".
func Text(donorName string, lines []Line) string {
	parts := make([]string, len(lines))
	for i, l := range lines {
		parts[i] = fmt.Sprintf("%d %s", l.Quantity, l.Category)
	}

	var b strings.Builder
	b.WriteString("Donation Receipt - Donor: ")
	b.WriteString(donorName)
	b.WriteString(". Items: ")
	b.WriteString(strings.Join(parts, ", "))
	b.WriteString(". Thank you!")
	return b.String()
}
