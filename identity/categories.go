package identity

import "strings"

// forbiddenCategories are storefront section names that must never be used
// as a plant name. Matching is case-insensitive.
var forbiddenCategories = map[string]struct{}{
	"herbs":      {},
	"herb":       {},
	"flowers":    {},
	"flower":     {},
	"vegetables": {},
	"vegetable":  {},
	"fruits":     {},
	"fruit":      {},
	"seeds":      {},
	"seed":       {},
	"plants":     {},
	"plant":      {},
	"annuals":    {},
	"perennials": {},
	"organic":    {},
	"new":        {},
	"sale":       {},
}

// Forbidden reports whether name is a broad storefront category rather than
// a plant.
func Forbidden(name string) bool {
	_, ok := forbiddenCategories[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// knownPlantTypes are the built-in plant-type names used for longest-match
// title splitting. Multi-word entries must precede shorter entries that they
// contain, but the resolver sorts by length at match time anyway.
var knownPlantTypes = []string{
	"sweet pea", "sweet corn", "sweet pepper", "hot pepper", "bell pepper",
	"bush beans", "bush bean", "pole beans", "pole bean", "lima bean",
	"fava bean", "snap pea", "snow pea", "shelling pea", "cherry tomato",
	"paste tomato", "brussels sprouts", "swiss chard", "pak choi", "bok choy",
	"winter squash", "summer squash", "butternut squash", "acorn squash",
	"morning glory", "bachelor button", "black-eyed susan", "shasta daisy",
	"sweet alyssum", "four o'clock", "bee balm", "lemon balm", "salad burnet",
	"mustard greens", "collard greens", "salad mix", "cover crop",

	"tomato", "pepper", "bean", "pea", "corn", "squash", "pumpkin", "cucumber",
	"melon", "watermelon", "cantaloupe", "lettuce", "spinach", "kale", "chard",
	"arugula", "radish", "carrot", "beet", "turnip", "rutabaga", "parsnip",
	"zucchini", "onion", "leek", "shallot", "garlic", "scallion", "potato", "broccoli",
	"cauliflower", "cabbage", "kohlrabi", "celery", "fennel", "okra",
	"eggplant", "artichoke", "asparagus", "rhubarb",

	"basil", "cilantro", "coriander", "dill", "parsley", "sage", "thyme",
	"oregano", "rosemary", "chives", "mint", "lavender", "chamomile",
	"borage", "tarragon", "marjoram", "savory", "lovage", "anise", "caraway",

	"zinnia", "sunflower", "marigold", "cosmos", "nasturtium", "poppy",
	"snapdragon", "petunia", "calendula", "celosia", "dahlia", "delphinium",
	"larkspur", "aster", "dianthus", "foxglove", "hollyhock", "lupine",
	"nigella", "pansy", "viola", "phlox", "rudbeckia", "salvia", "scabiosa",
	"statice", "stock", "strawflower", "verbena", "yarrow", "echinacea",
	"amaranth", "columbine", "coreopsis", "gaillardia", "impatiens",
}

// matchPlantType returns the longest known plant type (built-in plus
// caller-supplied) appearing as a word substring of text, or "".
func matchPlantType(text string, extra []string) string {
	lower := " " + strings.ToLower(text) + " "

	best := ""
	consider := func(name string) {
		n := strings.ToLower(strings.TrimSpace(name))
		if n == "" || len(n) <= len(best) {
			return
		}
		if strings.Contains(lower, " "+n+" ") ||
			strings.Contains(lower, " "+n+"s ") ||
			strings.Contains(lower, " "+n+"es ") {
			best = n
		}
	}
	for _, name := range extra {
		consider(name)
	}
	for _, name := range knownPlantTypes {
		consider(name)
	}
	return best
}
