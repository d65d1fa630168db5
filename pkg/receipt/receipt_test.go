package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		donor string
		lines []Line
		want  string
	}{
		{
			name:  "multiple items",
			donor: "Jane",
			lines: []Line{
				{Quantity: 2, Category: "Chairs"},
				{Quantity: 1, Category: "Table"},
			},
			want: "Donation Receipt - Donor: Jane. Items: 2 Chairs, 1 Table. Thank you!",
		},
		{
			name:  "single item",
			donor: "John",
			lines: []Line{{Quantity: 5, Category: "Books"}},
			want:  "Donation Receipt - Donor: John. Items: 5 Books. Thank you!",
		},
		{
			name:  "no items",
			donor: "Empty",
			lines: nil,
			want:  "Donation Receipt - Donor: Empty. Items: . Thank you!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.donor, tt.lines))
		})
	}
}
