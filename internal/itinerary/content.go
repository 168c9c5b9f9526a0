package itinerary

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown/v2"
	"go.uber.org/zap"
)

var (
	codeFenceRe = regexp.MustCompile("(?m)^[ \t]*```[a-zA-Z]*[ \t]*$")
	htmlTagRe   = regexp.MustCompile(`(?i)<(?:p|h[1-6]|ul|ol|li|div|br|strong|em|table)\b[^>]*>`)
)

type generatedPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// NormalizeGeneratedContent turns a raw model response into storable content.
// A JSON object with a non-empty content field is used as is; anything else
// becomes the content of a plan titled after the destinations. HTML content
// is converted to markdown so the day parser can read it.
func NormalizeGeneratedContent(raw string, prefs TravelPreferences) GeneratedItineraryContent {
	stripped := strings.TrimSpace(codeFenceRe.ReplaceAllString(raw, ""))

	var out GeneratedItineraryContent
	if payload, ok := decodePayload(stripped); ok {
		out = GeneratedItineraryContent{
			Title:       strings.TrimSpace(payload.Title),
			Description: strings.TrimSpace(payload.Description),
			Content:     payload.Content,
		}
	} else {
		out = GeneratedItineraryContent{Content: stripped}
	}

	if out.Title == "" {
		out.Title = fallbackTitle(prefs)
	}
	if out.Description == "" {
		out.Description = fallbackDescription(prefs)
	}
	out.Content = htmlToMarkdown(out.Content)
	out.Slug = Slugify(out.Title)
	return out
}

func decodePayload(s string) (generatedPayload, bool) {
	start := strings.Index(s, "{")
	if start < 0 {
		return generatedPayload{}, false
	}
	end := matchingBrace(s, start)
	if end < 0 {
		return generatedPayload{}, false
	}

	var p generatedPayload
	if err := json.Unmarshal([]byte(s[start:end+1]), &p); err != nil {
		zap.L().Debug("generated content is not a JSON payload", zap.Error(err))
		return generatedPayload{}, false
	}
	if strings.TrimSpace(p.Content) == "" {
		return generatedPayload{}, false
	}
	return p, true
}

// matchingBrace returns the index of the brace closing the one at start,
// skipping braces inside JSON strings, or -1.
func matchingBrace(s string, start int) int {
	if start >= len(s) || s[start] != '{' {
		return -1
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' && inString {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}
		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func htmlToMarkdown(content string) string {
	if !htmlTagRe.MatchString(content) {
		return content
	}
	converted, err := md.ConvertString(content)
	if err != nil {
		zap.L().Warn("html content conversion failed", zap.Error(err))
		return content
	}
	return converted
}

func fallbackTitle(prefs TravelPreferences) string {
	dests := prefs.DestinationList()
	if len(dests) == 0 {
		return "My Trip"
	}
	return "Trip to " + strings.Join(dests, ", ")
}

func fallbackDescription(prefs TravelPreferences) string {
	desc := fmt.Sprintf("A %d-day itinerary", prefs.TripDays())
	if dests := prefs.DestinationList(); len(dests) > 0 {
		desc += " for " + strings.Join(dests, ", ")
	}
	return desc
}
