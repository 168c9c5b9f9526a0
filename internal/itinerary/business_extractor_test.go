package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractBusinessNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "bracketed name", text: "Lunch at [Chez Pierre] near the river", want: []string{"Chez Pierre"}},
		{name: "brackets win over patterns", text: "[A](https://a.example) then Hotel Lutetia and [B]", want: []string{"A", "B"}},
		{name: "venue prefix", text: "Dinner at Hotel Lutetia then walk", want: []string{"Hotel Lutetia"}},
		{name: "chain name", text: "Grab coffee at Starbucks before the tour", want: []string{"Starbucks"}},
		{name: "street names skipped", text: "Walk down Main Street to see Big Ben", want: []string{"Big Ben"}},
		{name: "first appearance order", text: "Visit the Louvre then dinner at Hotel Ritz", want: []string{"Louvre", "Hotel Ritz"}},
		{name: "duplicates removed", text: "Starbucks first, Starbucks again", want: []string{"Starbucks"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractBusinessNames(tt.text))
		})
	}
}

func TestExtractBusinessNamesNothingFound(t *testing.T) {
	assert.Empty(t, ExtractBusinessNames("a quiet morning by the water"))
	assert.Empty(t, ExtractBusinessNames(""))
}

func TestLooksLikeStreet(t *testing.T) {
	assert.True(t, looksLikeStreet("Baker St"))
	assert.True(t, looksLikeStreet("Fifth Avenue"))
	assert.False(t, looksLikeStreet("Grand Hotel"))
}
