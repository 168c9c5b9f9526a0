package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveVenueURL(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "https://example.com/menu", want: "https://example.com/menu"},
		{name: "Marriott Downtown", want: "https://www.marriott.com"},
		{name: "Holiday Inn Express", want: "https://www.ihg.com/holidayinn"},
		{name: "McDonald's Champs-Elysees", want: "https://www.mcdonalds.com"},
		{name: "Chez Pierre", want: "https://www.google.com/search?q=Chez+Pierre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveVenueURL(tt.name))
		})
	}
}

func TestResolveMapsURL(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Chez+Pierre", ResolveMapsURL("Chez Pierre"))
	assert.Equal(t, "https://www.hilton.com", ResolveMapsURL("Hilton Paris Opera"))
}

func TestAnnotateSingleLine(t *testing.T) {
	spans := Annotate("Lunch at Chez Pierre")
	require.Len(t, spans, 1)
	assert.Equal(t, Span{Kind: SpanLink, Text: "Lunch at Chez Pierre", Href: "https://www.google.com/search?q=Lunch+at+Chez+Pierre"}, spans[0])
}

func TestAnnotateBody(t *testing.T) {
	spans := Annotate("Dinner\nTry [Chez Pierre] tonight")
	assert.Equal(t, []Span{
		{Kind: SpanLink, Text: "Dinner", Href: "https://www.google.com/search?q=Dinner"},
		{Kind: SpanPlain, Text: "\n"},
		{Kind: SpanPlain, Text: "Try "},
		{Kind: SpanLink, Text: "Chez Pierre", Href: "https://www.google.com/search?q=Chez+Pierre"},
		{Kind: SpanPlain, Text: " tonight"},
	}, spans)
}

func TestAnnotateInlineLinkTarget(t *testing.T) {
	spans := Annotate("Drinks\n[Le Bar](https://lebar.example) after dinner")
	require.Len(t, spans, 4)
	assert.Equal(t, Span{Kind: SpanLink, Text: "Le Bar", Href: "https://lebar.example"}, spans[2])
	assert.Equal(t, Span{Kind: SpanPlain, Text: " after dinner"}, spans[3])
}

func TestAnnotateEmpty(t *testing.T) {
	assert.Nil(t, Annotate("   "))
}
