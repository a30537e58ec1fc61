package compare

import (
	"strings"
	"testing"

	"lustre/internal/product"
)

func mustProduct(t *testing.T, p product.Product) *product.Product {
	t.Helper()
	out, err := product.New(p)
	if err != nil {
		t.Fatalf("test product invalid: %v", err)
	}
	return out
}

func baseProduct(t *testing.T) *product.Product {
	return mustProduct(t, product.Product{
		Name:          "GlowBoost Vitamin C Serum",
		Concentration: "10% Vitamin C",
		SkinTypes:     []string{"Oily", "Combination"},
		Ingredients:   []string{"Vitamin C", "Hyaluronic Acid"},
		Benefits:      []string{"Brightening", "Fades dark spots"},
		Usage:         "Apply 2-3 drops in the morning before sunscreen",
		SideEffects:   "Mild tingling for sensitive skin",
		Price:         699,
	})
}

func competitor(t *testing.T) *product.Product {
	return mustProduct(t, product.Product{
		Name:          "VitaLift Concentrate",
		Concentration: "12% Vitamin C",
		SkinTypes:     []string{"Dry", "Normal", "Combination"},
		Ingredients:   []string{"vitamin c", "Niacinamide"},
		Benefits:      []string{"Brightening"},
		Usage:         "Apply at night after cleansing",
		SideEffects:   "Moderate redness during first week",
		Price:         899,
	})
}

func findRow(t *testing.T, res Result, dimension string) DimensionResult {
	t.Helper()
	for _, row := range res.Matrix {
		if row.Dimension == dimension {
			return row
		}
	}
	t.Fatalf("dimension %q missing from matrix", dimension)
	return DimensionResult{}
}

func TestCompare_SixDimensions(t *testing.T) {
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	if len(res.Matrix) != 6 {
		t.Fatalf("matrix has %d rows, want 6", len(res.Matrix))
	}
	if res.Scores.TotalDimensions != 6 {
		t.Errorf("total dimensions = %d", res.Scores.TotalDimensions)
	}
}

func TestComparePrice_CheaperWins(t *testing.T) {
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	row := findRow(t, res, "Price")
	if row.Winner != WinnerProductA {
		t.Errorf("winner = %s, want product_a (699 vs 899)", row.Winner)
	}
	if !strings.Contains(row.Verdict, "200") {
		t.Errorf("verdict should name the rupee difference: %q", row.Verdict)
	}
}

func TestComparePrice_TieUnderThreshold(t *testing.T) {
	a, b := baseProduct(t), competitor(t)
	b.Price = a.Price + 99
	row := findRow(t, NewScorer(DefaultThresholds()).Compare(a, b), "Price")
	if row.Winner != WinnerTie {
		t.Errorf("winner = %s, want tie for 99 rupee gap", row.Winner)
	}
	if row.Verdict != "Similarly priced" {
		t.Errorf("verdict = %q", row.Verdict)
	}
}

func TestComparePrice_Symmetric(t *testing.T) {
	s := NewScorer(DefaultThresholds())
	a, b := baseProduct(t), competitor(t)

	fwd := findRow(t, s.Compare(a, b), "Price")
	rev := findRow(t, s.Compare(b, a), "Price")

	if fwd.Winner != WinnerProductA || rev.Winner != WinnerProductB {
		t.Errorf("swap did not flip winner: fwd=%s rev=%s", fwd.Winner, rev.Winner)
	}
	if fwd.Verdict != rev.Verdict {
		t.Errorf("magnitude changed on swap: %q vs %q", fwd.Verdict, rev.Verdict)
	}
}

func TestComparePrice_ZeroPriceGuard(t *testing.T) {
	// Zero price cannot come from a validated Product, but the scorer
	// guards the divisor anyway.
	a, b := baseProduct(t), competitor(t)
	b.Price = 0
	row := findRow(t, NewScorer(DefaultThresholds()).Compare(a, b), "Price")
	if !strings.Contains(row.Difference, "+0%") {
		t.Errorf("difference = %q, want 0%% with zero divisor", row.Difference)
	}
}

func TestCompareConcentration_AlwaysContextual(t *testing.T) {
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	row := findRow(t, res, "Concentration")
	if row.Winner != WinnerContextual {
		t.Errorf("winner = %s, want contextual", row.Winner)
	}
}

func TestCompareSkinTypes_MoreTypesWins(t *testing.T) {
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	row := findRow(t, res, "Skin Type Coverage")
	if row.Winner != WinnerProductB {
		t.Errorf("winner = %s, want product_b (3 vs 2 types)", row.Winner)
	}
}

func TestCompareSkinTypes_EqualCardinalityTies(t *testing.T) {
	a, b := baseProduct(t), competitor(t)
	b.SkinTypes = []string{"Dry", "Normal"} // different labels, same count
	row := findRow(t, NewScorer(DefaultThresholds()).Compare(a, b), "Skin Type Coverage")
	if row.Winner != WinnerTie {
		t.Errorf("winner = %s, want tie for equal counts", row.Winner)
	}
}

func TestCompareSkinTypes_Deduplicated(t *testing.T) {
	a, b := baseProduct(t), competitor(t)
	a.SkinTypes = []string{"Oily", "Oily", "Oily"}
	b.SkinTypes = []string{"Dry", "Normal"}
	row := findRow(t, NewScorer(DefaultThresholds()).Compare(a, b), "Skin Type Coverage")
	if row.Winner != WinnerProductB {
		t.Errorf("winner = %s, want product_b (duplicates collapse to 1)", row.Winner)
	}
}

func TestCompareIngredients_CaseInsensitiveOverlap(t *testing.T) {
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	row := findRow(t, res, "Ingredients")
	if row.Winner != WinnerContextual {
		t.Errorf("winner = %s, want contextual", row.Winner)
	}
	if row.Common != 1 {
		t.Errorf("common = %d, want 1 (Vitamin C matches vitamin c)", row.Common)
	}
}

func TestCompareBenefits_MoreBenefitsWins(t *testing.T) {
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	row := findRow(t, res, "Benefits")
	if row.Winner != WinnerProductA {
		t.Errorf("winner = %s, want product_a (2 vs 1)", row.Winner)
	}
}

func TestCompareSafety_MildWins(t *testing.T) {
	// A: "Mild tingling", B: "Moderate redness" -> product_a.
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	row := findRow(t, res, "Safety")
	if row.Winner != WinnerProductA {
		t.Errorf("winner = %s, want product_a", row.Winner)
	}
}

func TestCompareSafety_BothMildTies(t *testing.T) {
	a, b := baseProduct(t), competitor(t)
	b.SideEffects = "Mild dryness possible"
	row := findRow(t, NewScorer(DefaultThresholds()).Compare(a, b), "Safety")
	if row.Winner != WinnerTie {
		t.Errorf("winner = %s, want tie when both mild", row.Winner)
	}
}

func TestTally_BoundedByDimensions(t *testing.T) {
	res := NewScorer(DefaultThresholds()).Compare(baseProduct(t), competitor(t))
	s := res.Scores
	if s.ProductAWins+s.ProductBWins > s.TotalDimensions {
		t.Errorf("wins exceed dimensions: %+v", s)
	}
	if s.ProductAWins+s.ProductBWins+s.Ties != s.TotalDimensions {
		t.Errorf("tally does not partition the matrix: %+v", s)
	}
}

func TestSummary_NamesLeader(t *testing.T) {
	a, b := baseProduct(t), competitor(t)
	res := NewScorer(DefaultThresholds()).Compare(a, b)
	// A wins price, benefits, safety; B wins skin types -> A leads.
	if !strings.Contains(res.Summary, a.Name) {
		t.Errorf("summary should name the leader: %q", res.Summary)
	}
}

func TestCustomThresholds(t *testing.T) {
	a, b := baseProduct(t), competitor(t)
	s := NewScorer(Thresholds{PriceTie: 500, SafetyKeyword: "gentle"})

	priceRow := findRow(t, s.Compare(a, b), "Price")
	if priceRow.Winner != WinnerTie {
		t.Errorf("price winner = %s, want tie under widened threshold", priceRow.Winner)
	}
	safetyRow := findRow(t, s.Compare(a, b), "Safety")
	if safetyRow.Winner != WinnerTie {
		t.Errorf("safety winner = %s, want tie with changed keyword", safetyRow.Winner)
	}
}
