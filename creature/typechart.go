package creature

// typeChart 属性克制表
//
// Only super-effective (>1) and not-very-effective (<1) pairings are
// listed; any pairing absent from the chart is neutral. The chart is
// asymmetric on purpose: ocean punishes volcano but not the reverse.
var typeChart = map[Category]map[Category]float64{
	CategoryVolcano: {
		CategoryForest:   2.0,
		CategoryTundra:   2.0,
		CategoryMeadow:   1.5,
		CategoryOcean:    0.5,
		CategoryVolcano:  0.5,
		CategoryMountain: 0.5,
	},
	CategoryOcean: {
		CategoryVolcano:  2.0,
		CategoryDesert:   2.0,
		CategoryMountain: 2.0,
		CategoryForest:   0.5,
		CategoryOcean:    0.5,
		CategorySwamp:    0.5,
	},
	CategoryForest: {
		CategoryOcean:   2.0,
		CategoryDesert:  2.0,
		CategoryCave:    1.5,
		CategoryForest:  0.5,
		CategorySky:     0.5,
		CategoryVolcano: 0.5,
		CategorySwamp:   0.5,
	},
	CategoryTundra: {
		CategoryForest:  2.0,
		CategorySky:     2.0,
		CategorySwamp:   1.5,
		CategoryTundra:  0.5,
		CategoryOcean:   0.5,
		CategoryVolcano: 0.5,
	},
	CategorySky: {
		CategoryForest:   2.0,
		CategoryMeadow:   1.5,
		CategoryMountain: 0.5,
		CategoryTundra:   0.5,
	},
	CategoryMountain: {
		CategorySky:     2.0,
		CategoryVolcano: 2.0,
		CategoryTundra:  2.0,
		CategoryDesert:  0.5,
		CategorySwamp:   0.5,
	},
	CategoryDesert: {
		CategoryVolcano: 2.0,
		CategoryCave:    2.0,
		CategorySwamp:   1.5,
		CategoryForest:  0.5,
		CategorySky:     0.5,
	},
	CategorySwamp: {
		CategoryForest: 2.0,
		CategoryMeadow: 2.0,
		CategoryOcean:  1.5,
		CategorySwamp:  0.5,
		CategoryCave:   0.5,
	},
	CategoryCave: {
		CategorySky:    2.0,
		CategoryMeadow: 2.0,
		CategoryDesert: 0.5,
		CategoryCave:   0.5,
	},
	CategoryMeadow: {
		CategoryCave:     2.0,
		CategorySwamp:    1.5,
		CategoryMountain: 0.5,
	},
}

// Effectiveness returns the combined multiplier for an attack of the
// given category against a defender's categories. Multi-category
// defenders compound: each of their categories contributes its chart
// multiplier. Unknown categories and empty defender lists are neutral.
func Effectiveness(attack Category, defender []Category) float64 {
	mult := 1.0
	row, ok := typeChart[attack]
	if !ok {
		return mult
	}
	for _, d := range defender {
		if m, ok := row[d]; ok {
			mult *= m
		}
	}
	return mult
}
