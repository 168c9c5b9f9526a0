package itinerary

// ColorID names the color bucket of a time-of-day slot.
type ColorID string

const (
	ColorMorning   ColorID = "morning-amber"
	ColorAfternoon ColorID = "afternoon-sky"
	ColorEvening   ColorID = "evening-indigo"
	ColorDefault   ColorID = "neutral-slate"
)

// TagID names the badge style of an interest category.
type TagID string

const (
	TagFood        TagID = "tag-food"
	TagCulture     TagID = "tag-culture"
	TagAdventure   TagID = "tag-adventure"
	TagRelaxation  TagID = "tag-relaxation"
	TagShopping    TagID = "tag-shopping"
	TagNightlife   TagID = "tag-nightlife"
	TagSightseeing TagID = "tag-sightseeing"
	TagDefault     TagID = "tag-default"
)

// IconID is the closed set of icons the presentation layer knows how to draw.
type IconID string

const (
	IconUtensils   IconID = "utensils"
	IconLandmark   IconID = "landmark"
	IconMountain   IconID = "mountain"
	IconSpa        IconID = "spa"
	IconShopping   IconID = "shopping-bag"
	IconMusic      IconID = "music"
	IconCamera     IconID = "camera"
	IconGlass      IconID = "cocktail"
	IconGraduation IconID = "graduation-cap"
	IconMapPin     IconID = "map-pin"
)

var colorBuckets = map[TimeOfDay]ColorID{
	Morning:   ColorMorning,
	Afternoon: ColorAfternoon,
	Evening:   ColorEvening,
}

var tagBuckets = map[InterestCategory]TagID{
	InterestFood:        TagFood,
	InterestCulture:     TagCulture,
	InterestAdventure:   TagAdventure,
	InterestRelaxation:  TagRelaxation,
	InterestShopping:    TagShopping,
	InterestNightlife:   TagNightlife,
	InterestSightseeing: TagSightseeing,
}

var interestIcons = map[InterestCategory]IconID{
	InterestFood:        IconUtensils,
	InterestCulture:     IconLandmark,
	InterestAdventure:   IconMountain,
	InterestRelaxation:  IconSpa,
	InterestShopping:    IconShopping,
	InterestNightlife:   IconMusic,
	InterestSightseeing: IconCamera,
}

var activityTypeIcons = map[ActivityType]IconID{
	ActivityDining:      IconUtensils,
	ActivityNightlife:   IconGlass,
	ActivitySightseeing: IconCamera,
	ActivityEducational: IconGraduation,
	ActivityOther:       IconMapPin,
}

func ColorBucket(t TimeOfDay) ColorID {
	if c, ok := colorBuckets[t]; ok {
		return c
	}
	return ColorDefault
}

func TagBucket(c InterestCategory) TagID {
	if t, ok := tagBuckets[c]; ok {
		return t
	}
	return TagDefault
}

func IconFor(c InterestCategory) IconID {
	if i, ok := interestIcons[c]; ok {
		return i
	}
	return IconMapPin
}

func IconForActivityType(t ActivityType) IconID {
	if i, ok := activityTypeIcons[t]; ok {
		return i
	}
	return IconMapPin
}
