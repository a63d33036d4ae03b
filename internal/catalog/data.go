package catalog

// Destination is one catalog entry. Entries are immutable and belong
// to exactly one tier partition; cumulative access across tiers is
// computed by unlocked, never by duplicating rows.
type Destination struct {
	Name        string
	Region      string
	Type        string
	Activities  []string
	BestSeasons []string
	Highlights  string
}

// silver is the base partition, available to every pass tier.
var silver = []Destination{
	{
		Name:        "Cancun, Mexico",
		Region:      "Latin America",
		Type:        "beach resort",
		Activities:  []string{"snorkeling", "beach lounging", "nightlife"},
		BestSeasons: []string{"winter", "spring"},
		Highlights:  "White sand beaches with Mayan ruins a day trip away",
	},
	{
		Name:        "Miami, USA",
		Region:      "North America",
		Type:        "beach city",
		Activities:  []string{"beach lounging", "art deco tours", "nightlife"},
		BestSeasons: []string{"winter", "spring", "fall"},
		Highlights:  "South Beach, Cuban food, and year-round sunshine",
	},
	{
		Name:        "Orlando, USA",
		Region:      "North America",
		Type:        "theme park hub",
		Activities:  []string{"theme parks", "family activities", "shopping"},
		BestSeasons: []string{"spring", "fall", "winter"},
		Highlights:  "The world's largest concentration of theme parks",
	},
	{
		Name:        "Las Vegas, USA",
		Region:      "North America",
		Type:        "entertainment city",
		Activities:  []string{"casinos", "live shows", "fine dining"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "Round-the-clock shows and desert day trips",
	},
	{
		Name:        "Toronto, Canada",
		Region:      "North America",
		Type:        "city break",
		Activities:  []string{"museums", "food tours", "sightseeing"},
		BestSeasons: []string{"summer", "fall"},
		Highlights:  "Multicultural neighborhoods and the CN Tower",
	},
	{
		Name:        "Punta Cana, Dominican Republic",
		Region:      "Caribbean",
		Type:        "beach resort",
		Activities:  []string{"beach lounging", "golf", "water sports"},
		BestSeasons: []string{"winter", "spring"},
		Highlights:  "All-inclusive resorts on palm-lined Atlantic beaches",
	},
	{
		Name:        "San Diego, USA",
		Region:      "North America",
		Type:        "coastal city",
		Activities:  []string{"surfing", "zoo visits", "craft beer"},
		BestSeasons: []string{"spring", "summer"},
		Highlights:  "Laid-back beaches and a world-famous zoo",
	},
	{
		Name:        "Montreal, Canada",
		Region:      "North America",
		Type:        "city break",
		Activities:  []string{"festivals", "food tours", "history"},
		BestSeasons: []string{"summer", "fall"},
		Highlights:  "European charm without crossing the Atlantic",
	},
}

// goldExclusive holds destinations unlocked at gold and above.
var goldExclusive = []Destination{
	{
		Name:        "Paris, France",
		Region:      "Europe",
		Type:        "city break",
		Activities:  []string{"museums", "fine dining", "architecture"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "The Louvre, café culture, and the Seine at dusk",
	},
	{
		Name:        "Rome, Italy",
		Region:      "Europe",
		Type:        "historic city",
		Activities:  []string{"ancient ruins", "food tours", "art"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "Two thousand years of history on every corner",
	},
	{
		Name:        "Barcelona, Spain",
		Region:      "Europe",
		Type:        "coastal city",
		Activities:  []string{"architecture", "beach lounging", "tapas tours"},
		BestSeasons: []string{"spring", "summer", "fall"},
		Highlights:  "Gaudí masterpieces a short walk from the beach",
	},
	{
		Name:        "London, UK",
		Region:      "Europe",
		Type:        "city break",
		Activities:  []string{"museums", "theater", "royal landmarks"},
		BestSeasons: []string{"spring", "summer"},
		Highlights:  "Free world-class museums and West End shows",
	},
	{
		Name:        "Amsterdam, Netherlands",
		Region:      "Europe",
		Type:        "city break",
		Activities:  []string{"canal cruises", "museums", "cycling"},
		BestSeasons: []string{"spring", "summer"},
		Highlights:  "Canals, bicycles, and the Van Gogh Museum",
	},
	{
		Name:        "Lisbon, Portugal",
		Region:      "Europe",
		Type:        "coastal city",
		Activities:  []string{"tram rides", "food tours", "viewpoints"},
		BestSeasons: []string{"spring", "summer", "fall"},
		Highlights:  "Hilltop miradouros and custard tarts in Belém",
	},
	{
		Name:        "Prague, Czech Republic",
		Region:      "Europe",
		Type:        "historic city",
		Activities:  []string{"castle tours", "beer halls", "old town walks"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "A fairytale old town untouched by the wars",
	},
	{
		Name:        "Athens, Greece",
		Region:      "Europe",
		Type:        "historic city",
		Activities:  []string{"ancient ruins", "island hopping", "food tours"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "The Acropolis plus ferries to the Saronic islands",
	},
	{
		Name:        "Dubai, UAE",
		Region:      "Middle East",
		Type:        "luxury city",
		Activities:  []string{"shopping", "desert safaris", "skyscrapers"},
		BestSeasons: []string{"winter", "spring"},
		Highlights:  "Record-breaking architecture rising from the dunes",
	},
	{
		Name:        "Rio de Janeiro, Brazil",
		Region:      "South America",
		Type:        "beach city",
		Activities:  []string{"beach lounging", "hiking", "samba"},
		BestSeasons: []string{"winter", "spring"},
		Highlights:  "Copacabana below, Christ the Redeemer above",
	},
}

// platinumExclusive holds destinations unlocked only at platinum.
var platinumExclusive = []Destination{
	{
		Name:        "Tokyo, Japan",
		Region:      "Asia",
		Type:        "city break",
		Activities:  []string{"temples", "sushi tours", "technology districts"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "Neon-lit districts beside centuries-old shrines",
	},
	{
		Name:        "Kyoto, Japan",
		Region:      "Asia",
		Type:        "historic city",
		Activities:  []string{"temples", "tea ceremonies", "gardens"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "Seventeen UNESCO sites and cherry-blossom lanes",
	},
	{
		Name:        "Bali, Indonesia",
		Region:      "Asia",
		Type:        "island escape",
		Activities:  []string{"surfing", "temples", "rice terraces"},
		BestSeasons: []string{"spring", "summer", "fall"},
		Highlights:  "Volcanic beaches and emerald rice paddies",
	},
	{
		Name:        "Singapore",
		Region:      "Asia",
		Type:        "city break",
		Activities:  []string{"gardens", "hawker food", "shopping"},
		BestSeasons: []string{"winter", "spring"},
		Highlights:  "Hawker centres and the Gardens by the Bay",
	},
	{
		Name:        "Sydney, Australia",
		Region:      "Oceania",
		Type:        "coastal city",
		Activities:  []string{"opera house tours", "surfing", "harbor cruises"},
		BestSeasons: []string{"spring", "summer", "fall"},
		Highlights:  "Harbour sails and the Bondi to Coogee walk",
	},
	{
		Name:        "Queenstown, New Zealand",
		Region:      "Oceania",
		Type:        "adventure town",
		Activities:  []string{"bungee jumping", "hiking", "skiing"},
		BestSeasons: []string{"winter", "summer"},
		Highlights:  "The adventure capital of the southern hemisphere",
	},
	{
		Name:        "Cape Town, South Africa",
		Region:      "Africa",
		Type:        "coastal city",
		Activities:  []string{"mountain hikes", "wine tours", "beach lounging"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "Table Mountain with winelands an hour away",
	},
	{
		Name:        "Marrakech, Morocco",
		Region:      "Africa",
		Type:        "historic city",
		Activities:  []string{"souk shopping", "riad stays", "desert trips"},
		BestSeasons: []string{"spring", "fall"},
		Highlights:  "Labyrinthine souks and Atlas mountain views",
	},
	{
		Name:        "Santorini, Greece",
		Region:      "Europe",
		Type:        "island escape",
		Activities:  []string{"sunset views", "wine tours", "beach lounging"},
		BestSeasons: []string{"spring", "summer", "fall"},
		Highlights:  "Whitewashed villages above a volcanic caldera",
	},
	{
		Name:        "Maldives",
		Region:      "Asia",
		Type:        "island resort",
		Activities:  []string{"overwater villas", "snorkeling", "spa retreats"},
		BestSeasons: []string{"winter", "spring"},
		Highlights:  "Private overwater villas on coral atolls",
	},
	{
		Name:        "Reykjavik, Iceland",
		Region:      "Europe",
		Type:        "city break",
		Activities:  []string{"northern lights", "hot springs", "glacier tours"},
		BestSeasons: []string{"fall", "winter"},
		Highlights:  "Aurora hunting and geothermal lagoons",
	},
	{
		Name:        "Machu Picchu, Peru",
		Region:      "South America",
		Type:        "historic site",
		Activities:  []string{"inca trail hiking", "ancient ruins", "mountain scenery"},
		BestSeasons: []string{"spring", "summer"},
		Highlights:  "The lost Inca citadel above the Urubamba valley",
	},
}

// tierInfo describes one pass tier for response metadata.
type tierInfo struct {
	display     string
	description string
}

var tiers = map[string]tierInfo{
	"silver": {
		display:     "Silver Pass",
		description: "Popular getaways across the Americas and the Caribbean.",
	},
	"gold": {
		display:     "Gold Pass",
		description: "Everything in Silver plus Europe, the Middle East, and South America.",
	},
	"platinum": {
		display:     "Platinum Pass",
		description: "The full catalog, including Asia, Oceania, Africa, and bucket-list escapes.",
	},
}

// unlocked returns the cumulative destination list for a tier in
// catalog order: silver first, then each tier-exclusive partition
// appended. The second return is false for an unknown tier.
func unlocked(tier string) ([]Destination, bool) {
	switch tier {
	case "silver":
		return silver, true
	case "gold":
		return concat(silver, goldExclusive), true
	case "platinum":
		return concat(silver, goldExclusive, platinumExclusive), true
	default:
		return nil, false
	}
}

func concat(parts ...[]Destination) []Destination {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Destination, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
