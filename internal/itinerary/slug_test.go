package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Weekend in Paris!":       "weekend-in-paris",
		"  Multiple   Spaces  ":   "multiple-spaces",
		"Tokyo -- Kyoto -- Osaka": "tokyo-kyoto-osaka",
		"-Leading and trailing-":  "leading-and-trailing",
		"Trip to Paris, Lyon":     "trip-to-paris-lyon",
		"!!!":                     "",
		"Already-a-slug":          "already-a-slug",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}
