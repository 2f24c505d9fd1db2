package creature

// Category 栖息地/元素分类
//
// Categories double as both a creature's habitat affinity and a move's
// elemental tag; the type chart is keyed on them.
type Category byte

const (
	CategoryNone Category = 0
)

const (
	CategoryForest Category = iota + 1
	CategoryOcean
	CategoryMountain
	CategoryDesert
	CategorySky
	CategoryCave
	CategoryTundra
	CategorySwamp
	CategoryVolcano
	CategoryMeadow
)

var CategoryDictionary = map[Category]string{
	CategoryForest:   "forest",
	CategoryOcean:    "ocean",
	CategoryMountain: "mountain",
	CategoryDesert:   "desert",
	CategorySky:      "sky",
	CategoryCave:     "cave",
	CategoryTundra:   "tundra",
	CategorySwamp:    "swamp",
	CategoryVolcano:  "volcano",
	CategoryMeadow:   "meadow",
}

func (c Category) String() string {
	if s, ok := CategoryDictionary[c]; ok {
		return s
	}
	return "none"
}

// ParseCategory maps a category name back to its enum value.
func ParseCategory(name string) (Category, bool) {
	for c, s := range CategoryDictionary {
		if s == name {
			return c, true
		}
	}
	return CategoryNone, false
}
