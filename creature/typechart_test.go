package creature

import "testing"

func TestEffectivenessNeutralOnEmptyDefender(t *testing.T) {
	for c := range CategoryDictionary {
		if got := Effectiveness(c, nil); got != 1.0 {
			t.Fatalf("Effectiveness(%s, nil) = %v, want 1.0", c, got)
		}
	}
}

func TestEffectivenessUnknownCategoryNeutral(t *testing.T) {
	if got := Effectiveness(CategoryNone, []Category{CategoryForest}); got != 1.0 {
		t.Fatalf("unknown attack category: got %v, want 1.0", got)
	}
	if got := Effectiveness(CategoryVolcano, []Category{CategoryNone}); got != 1.0 {
		t.Fatalf("unknown defender category: got %v, want 1.0", got)
	}
}

func TestEffectivenessSingleCategory(t *testing.T) {
	cases := []struct {
		name     string
		attack   Category
		defender Category
		want     float64
	}{
		{"volcano scorches forest", CategoryVolcano, CategoryForest, 2.0},
		{"ocean drowns volcano", CategoryOcean, CategoryVolcano, 2.0},
		{"volcano fizzles on ocean", CategoryVolcano, CategoryOcean, 0.5},
		{"sky neutral against ocean defender", CategorySky, CategoryOcean, 1.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Effectiveness(tc.attack, []Category{tc.defender})
			if got != tc.want {
				t.Fatalf("Effectiveness(%s, [%s]) = %v, want %v", tc.attack, tc.defender, got, tc.want)
			}
		})
	}
}

func TestEffectivenessCompoundsMultiCategory(t *testing.T) {
	// Forest is strong into both ocean and desert: 2.0 * 2.0.
	got := Effectiveness(CategoryForest, []Category{CategoryOcean, CategoryDesert})
	if got != 4.0 {
		t.Fatalf("compounded multiplier = %v, want 4.0", got)
	}

	// Mixed pairing partially cancels: 2.0 * 0.5.
	got = Effectiveness(CategoryOcean, []Category{CategoryVolcano, CategoryForest})
	if got != 1.0 {
		t.Fatalf("mixed multiplier = %v, want 1.0", got)
	}
}

func TestEffectivenessAsymmetry(t *testing.T) {
	// The chart is directional: volcano melts tundra, tundra chills volcano.
	ab := Effectiveness(CategoryVolcano, []Category{CategoryTundra})
	ba := Effectiveness(CategoryTundra, []Category{CategoryVolcano})
	if ab != 2.0 || ba != 0.5 {
		t.Fatalf("asymmetry broken: volcano->tundra %v, tundra->volcano %v", ab, ba)
	}
}
