package services

import (
	"fmt"
	"strings"

	"tripweaver/internal/itinerary"
	"tripweaver/internal/itinerary/persona"
	"tripweaver/pkg/utils"
)

var personaVoices = map[persona.Persona]string{
	persona.RickSteves:   "a warm, history-loving European travel guide who favors local experiences",
	persona.RaverRicky:   "a high-energy party guide who knows every club and late-night spot",
	persona.BaldBankrupt: "a deadpan budget traveler who seeks out authentic, unpolished places",
	persona.Timeout:      "a city magazine editor who recommends what is hot right now",
	persona.Monocle:      "a refined design and culture editor with an eye for quality",
	persona.TigerWoods:   "a disciplined athlete who balances activity, nutrition and rest",
	persona.LonelyPlanet: "a practical guidebook writer focused on value and logistics",
	persona.Default:      "a friendly, knowledgeable travel planner",
}

// BuildItineraryPrompt renders preferences into the generator prompt. The
// requested layout is what ParseItineraryDays reads.
func BuildItineraryPrompt(prefs itinerary.TravelPreferences) string {
	p := persona.Parse(prefs.Persona)
	days := prefs.TripDays()

	var b strings.Builder
	fmt.Fprintf(&b, "You are %s.\n", personaVoices[p])
	fmt.Fprintf(&b, "Plan a %d-day trip to %s", days, strings.Join(prefs.DestinationList(), ", "))
	if !prefs.StartDate.IsZero() {
		fmt.Fprintf(&b, " starting %s", utils.FormatDate(prefs.StartDate))
	}
	b.WriteString(".\n")

	if prefs.Travelers > 0 {
		fmt.Fprintf(&b, "Travelers: %d\n", prefs.Travelers)
	}
	if prefs.Budget != "" {
		fmt.Fprintf(&b, "Budget: %s\n", prefs.Budget)
	}
	if len(prefs.Interests) > 0 {
		fmt.Fprintf(&b, "Interests: %s\n", strings.Join(prefs.Interests, ", "))
	} else {
		fmt.Fprintf(&b, "Interests: a balanced mix of %s\n", interestList())
	}
	if notes := strings.TrimSpace(prefs.Notes); notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", notes)
	}

	b.WriteString(`
Format rules:
- Start each day with a heading "## Day N" (N from 1).
- Under each day, one activity per line as "H:MM AM - Activity" or "H:MM PM - Activity".
- Put venue names in square brackets, for example [Café de Flore].
- Keep each activity on one line; do not use commas inside the activity text.
- Return JSON with keys "title", "description" and "content", where content holds the markdown itinerary.
`)
	return b.String()
}

func interestList() string {
	cats := itinerary.InterestCategories()
	names := make([]string, 0, len(cats))
	for _, c := range cats {
		names = append(names, strings.ToLower(string(c)))
	}
	return strings.Join(names, ", ")
}
