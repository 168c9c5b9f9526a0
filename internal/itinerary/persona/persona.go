// Package persona holds the tour-guide voices used to fill in descriptions for
// activities the itinerary text only names.
package persona

import (
	"strings"
)

type Persona string

const (
	RickSteves   Persona = "rick-steves"
	RaverRicky   Persona = "raver-ricky"
	BaldBankrupt Persona = "bald-bankrupt"
	Timeout      Persona = "timeout"
	Monocle      Persona = "monocle"
	TigerWoods   Persona = "tiger-woods"
	LonelyPlanet Persona = "lonely-planet"
	Default      Persona = "default"
)

// All lists the named personas in a stable order, Default excluded.
func All() []Persona {
	return []Persona{RickSteves, RaverRicky, BaldBankrupt, Timeout, Monocle, TigerWoods, LonelyPlanet}
}

// Parse maps a free-form identifier onto a known persona. Unknown or empty
// input yields Default.
func Parse(s string) Persona {
	p := Persona(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := templates[p]; ok {
		return p
	}
	return Default
}

// Activity type keys. They mirror itinerary.ActivityType values so the table
// can be addressed without importing the parent package.
const (
	typeDining      = "dining"
	typeNightlife   = "nightlife"
	typeSightseeing = "sightseeing"
	typeEducational = "educational"
	typeOther       = "other"
)

// interestPlaceholder is replaced by the lowercased interest label in
// templates of the "other" family.
const interestPlaceholder = "{interest}"

type row map[string]string

var templates = map[Persona]row{
	RickSteves: {
		typeDining:      "Pull up a chair where the locals eat. Order the house specialty, linger over it, and let the meal be your window into the culture.",
		typeNightlife:   "Join the evening stroll and find a neighborhood spot where the regulars gather. It's Europe's living room after dark.",
		typeSightseeing: "Take your time here and read the stones. A little history turns this sight from a photo stop into a story you'll carry home.",
		typeEducational: "Grab the audioguide and go slow. This is where the past comes alive if you give it a couple of unhurried hours.",
		typeOther:       "Travel is about connecting with people, and this {interest} stop is a great chance to do just that. Keep on travelin'!",
	},
	RaverRicky: {
		typeDining:      "Fuel up, fam. Big plate, good vibes, and we're carb-loading for a long night ahead.",
		typeNightlife:   "This is the one. Bass in your chest, hands in the air, and we don't leave until the lights come on.",
		typeSightseeing: "Quick culture hit before the party. Snap the pic, feel the energy, then we ride.",
		typeEducational: "Brain food before body moves. Soak it in, it's all part of the journey.",
		typeOther:       "Some {interest} time to keep the energy flowing. Stay hydrated and stay loud.",
	},
	BaldBankrupt: {
		typeDining:      "Very cheap. Very filling. The lady behind the counter does not smile, which means the food is authentic.",
		typeNightlife:   "Local bar, no tourists, beer cheaper than water. Someone will tell you their life story whether you like it or not.",
		typeSightseeing: "Everyone comes for the famous view. I walk two streets back to see how people really live.",
		typeEducational: "An old museum with older attendants. Half the lights work. Absolutely fascinating.",
		typeOther:       "Proper {interest} experience, nothing fancy, very real. This is the stuff they don't show you on postcards.",
	},
	Timeout: {
		typeDining:      "One of the city's most talked-about tables right now. Book ahead and order whatever the kitchen is excited about.",
		typeNightlife:   "The after-dark crowd swears by this place. Arrive early or be prepared to queue.",
		typeSightseeing: "An essential stop that still earns its spot on every must-see list. Go early to beat the crowds.",
		typeEducational: "A smart, well-curated stop that rewards the curious. Check the listings for talks and temporary shows.",
		typeOther:       "Our editors' pick for {interest} in town. Trust us, it's worth the detour.",
	},
	Monocle: {
		typeDining:      "A considered room, a short seasonal menu and service that knows when to disappear. Quietly excellent.",
		typeNightlife:   "An unhurried bar with good lighting, a serious back bar and a crowd of well-dressed regulars.",
		typeSightseeing: "A civic landmark worth seeing for its proportions alone. Note the details the city has taken care to keep.",
		typeEducational: "Thoughtful curation and handsome design. The shop on the way out is worth the visit too.",
		typeOther:       "A refined take on {interest}, the kind of place that makes a city feel well run.",
	},
	TigerWoods: {
		typeDining:      "Good nutrition is part of the routine. Eat well, stay focused, keep your game sharp.",
		typeNightlife:   "A relaxed evening to unwind. Recovery matters as much as practice.",
		typeSightseeing: "Take in the course of the city. Every great round starts with reading the landscape.",
		typeEducational: "Always be learning. The best players never stop studying the game.",
		typeOther:       "Some {interest} time to reset the mind. Discipline on and off the course.",
	},
	LonelyPlanet: {
		typeDining:      "A local favourite serving honest regional dishes. Ask about the daily specials and bring cash.",
		typeNightlife:   "A lively spot popular with locals and travellers alike. Things get going late.",
		typeSightseeing: "A highlight of any visit. Allow at least an hour and check opening times before you go.",
		typeEducational: "Well worth a visit for context on the region's history. Free entry on the first Sunday of the month.",
		typeOther:       "A good option for {interest} on a budget. Ask at the hostel for current tips.",
	},
	Default: {
		typeDining:      "Enjoy a meal and sample the local flavors.",
		typeNightlife:   "Experience the local nightlife and evening atmosphere.",
		typeSightseeing: "Take in the sights and enjoy the surroundings.",
		typeEducational: "Learn something new about the history and culture of the area.",
		typeOther:       "Enjoy some {interest} time at your own pace.",
	},
}

// Narrative returns the fixed template for an activity type in the persona's
// voice. Unknown personas read from the Default row and unknown types use the
// "other" family, which embeds the lowercased interest label.
func Narrative(activityType, interestLabel string, p Persona) string {
	r, ok := templates[p]
	if !ok {
		r = templates[Default]
	}
	tmpl, ok := r[activityType]
	if !ok {
		tmpl = r[typeOther]
	}
	return strings.ReplaceAll(tmpl, interestPlaceholder, strings.ToLower(interestLabel))
}

// Describe returns the description for an activity. Multi-line activity text
// already carries the model's own description and is returned verbatim,
// trimmed; everything else gets the persona narrative.
func Describe(activityText, activityType, interestLabel string, p Persona) string {
	text := strings.TrimSpace(activityText)
	if _, detail, ok := strings.Cut(text, "\n"); ok && strings.TrimSpace(detail) != "" {
		return text
	}
	return Narrative(activityType, interestLabel, p)
}
