package itinerary

import "strings"

// Order matters: "bar" is both a Food and a Nightlife keyword and Food wins.
var interestRules = []keywordRule[InterestCategory]{
	{keywords: []string{"breakfast", "lunch", "dinner", "café", "restaurant", "food", "eat", "dining", "meal", "bar", "coffee", "tea"}, result: InterestFood},
	{keywords: []string{"museum", "gallery", "tour", "visit", "monument", "landmark", "historical", "palace", "castle", "cathedral", "church"}, result: InterestCulture},
	{keywords: []string{"hike", "trek", "swim", "surf", "adventure", "climb", "bike", "kayak", "boat", "sail"}, result: InterestAdventure},
	{keywords: []string{"spa", "massage", "relax", "beach", "pool", "rest", "nap", "sleep", "hotel"}, result: InterestRelaxation},
	{keywords: []string{"shop", "market", "mall", "store", "boutique", "buy"}, result: InterestShopping},
	{keywords: []string{"club", "pub", "party", "dance", "night", "bar", "drink"}, result: InterestNightlife},
}

var activityTypeRules = []keywordRule[ActivityType]{
	{keywords: []string{"restaurant", "café", "cafe", "food", "dining", "kitchen", "eatery"}, result: ActivityDining},
	{keywords: []string{"bar", "club", "pub", "lounge", "nightlife", "party"}, result: ActivityNightlife},
	{keywords: []string{"tour", "museum", "gallery", "monument", "explore", "visit"}, result: ActivitySightseeing},
	{keywords: []string{"university", "college", "campus", "school"}, result: ActivityEducational},
}

// ClassifyInterest tags activity text with a coarse interest category.
func ClassifyInterest(text string) InterestCategory {
	return firstMatch(interestRules, strings.ToLower(text), InterestSightseeing)
}

// ClassifyActivityType picks the narrative family for activity text. It runs
// independently of ClassifyInterest and the two may disagree.
func ClassifyActivityType(text string) ActivityType {
	return firstMatch(activityTypeRules, strings.ToLower(text), ActivityOther)
}

// InterestCategories lists every category in classifier order followed by the
// default.
func InterestCategories() []InterestCategory {
	out := make([]InterestCategory, 0, len(interestRules)+1)
	for _, r := range interestRules {
		out = append(out, r.result)
	}
	return append(out, InterestSightseeing)
}
