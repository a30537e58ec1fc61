// Package compare scores two product records across six fixed dimensions
// and aggregates the per-dimension verdicts into a win/tie tally.
package compare

import (
	"fmt"
	"math"
	"strings"

	"lustre/internal/product"
)

// Winner tags the outcome of one comparison dimension. The set is closed;
// aggregation counts only the two strict-winner tags.
type Winner string

const (
	WinnerProductA   Winner = "product_a"
	WinnerProductB   Winner = "product_b"
	WinnerTie        Winner = "tie"
	WinnerContextual Winner = "contextual"
)

// DimensionResult is one row of the comparison matrix.
type DimensionResult struct {
	Dimension  string `json:"dimension"`
	ProductA   string `json:"product_a"`
	ProductB   string `json:"product_b"`
	Difference string `json:"difference,omitempty"`
	Common     int    `json:"common_ingredients,omitempty"`
	Winner     Winner `json:"winner"`
	Verdict    string `json:"verdict"`
}

// Tally aggregates the matrix. Tie and contextual rows count toward
// neither side.
type Tally struct {
	ProductAWins    int `json:"product_a_wins"`
	ProductBWins    int `json:"product_b_wins"`
	Ties            int `json:"ties"`
	TotalDimensions int `json:"total_dimensions"`
}

// Result is the full comparison: matrix, tally, and summary sentence.
type Result struct {
	Matrix  []DimensionResult `json:"matrix"`
	Scores  Tally             `json:"scores"`
	Summary string            `json:"summary"`
}

// Thresholds holds the tunable constants of the scorer. The defaults
// mirror long-standing behavior; they carry no deeper rationale.
type Thresholds struct {
	// PriceTie is the rupee difference under which prices are a tie.
	PriceTie float64 `yaml:"price_tie"`
	// SafetyKeyword is the side-effect word that marks a milder profile.
	SafetyKeyword string `yaml:"safety_keyword"`
}

// DefaultThresholds returns the standard scorer constants.
func DefaultThresholds() Thresholds {
	return Thresholds{PriceTie: 100, SafetyKeyword: "mild"}
}

// Scorer computes dimension verdicts with a fixed set of thresholds.
type Scorer struct {
	th Thresholds
}

// NewScorer builds a Scorer. Zero-valued threshold fields fall back to the
// defaults.
func NewScorer(th Thresholds) *Scorer {
	def := DefaultThresholds()
	if th.PriceTie == 0 {
		th.PriceTie = def.PriceTie
	}
	if th.SafetyKeyword == "" {
		th.SafetyKeyword = def.SafetyKeyword
	}
	return &Scorer{th: th}
}

// Compare evaluates all six dimensions in fixed order and aggregates the
// tally. Empty ingredient or skin-type sets are legal and produce
// empty-set rows, not failures.
func (s *Scorer) Compare(a, b *product.Product) Result {
	matrix := []DimensionResult{
		s.comparePrice(a, b),
		s.compareConcentration(a, b),
		s.compareSkinTypes(a, b),
		s.compareIngredients(a, b),
		s.compareBenefits(a, b),
		s.compareSafety(a, b),
	}
	scores := tallyMatrix(matrix)
	return Result{
		Matrix:  matrix,
		Scores:  scores,
		Summary: summarize(a, b, scores),
	}
}

// comparePrice declares a tie under the threshold; otherwise the cheaper
// product wins. The verdict reports the absolute rupee difference and the
// signed percentage relative to B's price (0% when B's price is zero).
func (s *Scorer) comparePrice(a, b *product.Product) DimensionResult {
	diff := a.Price - b.Price
	var pct float64
	if b.Price > 0 {
		pct = diff / b.Price * 100
	}

	res := DimensionResult{
		Dimension:  "Price",
		ProductA:   formatRupees(a.Price),
		ProductB:   formatRupees(b.Price),
		Difference: fmt.Sprintf("₹%d (%+.0f%%)", int(math.Abs(diff)), pct),
	}

	switch {
	case math.Abs(diff) < s.th.PriceTie:
		res.Winner = WinnerTie
		res.Verdict = "Similarly priced"
	case diff < 0:
		res.Winner = WinnerProductA
		res.Verdict = fmt.Sprintf("₹%d cheaper", int(math.Abs(diff)))
	default:
		res.Winner = WinnerProductB
		res.Verdict = fmt.Sprintf("₹%d cheaper", int(diff))
	}
	return res
}

// compareConcentration never declares a winner: concentration value is not
// orderable without knowing the reader's skin.
func (s *Scorer) compareConcentration(a, b *product.Product) DimensionResult {
	return DimensionResult{
		Dimension: "Concentration",
		ProductA:  a.Concentration,
		ProductB:  b.Concentration,
		Winner:    WinnerContextual,
		Verdict:   "Compare based on your skin's needs",
	}
}

func (s *Scorer) compareSkinTypes(a, b *product.Product) DimensionResult {
	aTypes := dedupe(a.SkinTypes)
	bTypes := dedupe(b.SkinTypes)

	res := DimensionResult{
		Dimension: "Skin Type Coverage",
		ProductA:  strings.Join(aTypes, ", "),
		ProductB:  strings.Join(bTypes, ", "),
	}

	switch {
	case len(aTypes) > len(bTypes):
		res.Winner = WinnerProductA
		res.Verdict = fmt.Sprintf("Suitable for %d skin types", len(aTypes))
	case len(bTypes) > len(aTypes):
		res.Winner = WinnerProductB
		res.Verdict = fmt.Sprintf("Suitable for %d skin types", len(bTypes))
	default:
		res.Winner = WinnerTie
		res.Verdict = fmt.Sprintf("Both suitable for %d skin types", len(aTypes))
	}
	return res
}

// compareIngredients reports shared-ingredient count only. Overlap is not
// inherently better or worse, so the row is always contextual.
func (s *Scorer) compareIngredients(a, b *product.Product) DimensionResult {
	aSet := lowerSet(a.Ingredients)
	common := 0
	for _, ing := range dedupe(b.Ingredients) {
		if aSet[strings.ToLower(ing)] {
			common++
		}
	}

	return DimensionResult{
		Dimension: "Ingredients",
		ProductA:  fmt.Sprintf("%d ingredients", len(a.Ingredients)),
		ProductB:  fmt.Sprintf("%d ingredients", len(b.Ingredients)),
		Common:    common,
		Winner:    WinnerContextual,
		Verdict:   fmt.Sprintf("%d shared ingredients", common),
	}
}

func (s *Scorer) compareBenefits(a, b *product.Product) DimensionResult {
	aCount, bCount := len(a.Benefits), len(b.Benefits)

	res := DimensionResult{
		Dimension: "Benefits",
		ProductA:  fmt.Sprintf("%d benefits", aCount),
		ProductB:  fmt.Sprintf("%d benefits", bCount),
	}

	switch {
	case aCount > bCount:
		res.Winner = WinnerProductA
		res.Verdict = fmt.Sprintf("%d claimed benefits", aCount)
	case bCount > aCount:
		res.Winner = WinnerProductB
		res.Verdict = fmt.Sprintf("%d claimed benefits", bCount)
	default:
		res.Winner = WinnerTie
		res.Verdict = fmt.Sprintf("Both offer %d benefits", aCount)
	}
	return res
}

// compareSafety gives the win to whichever side-effect text contains the
// safety keyword when the other does not; everything else is a tie.
func (s *Scorer) compareSafety(a, b *product.Product) DimensionResult {
	kw := strings.ToLower(s.th.SafetyKeyword)
	aMild := strings.Contains(strings.ToLower(a.SideEffects), kw)
	bMild := strings.Contains(strings.ToLower(b.SideEffects), kw)

	res := DimensionResult{
		Dimension: "Safety",
		ProductA:  a.SideEffects,
		ProductB:  b.SideEffects,
	}

	switch {
	case aMild && !bMild:
		res.Winner = WinnerProductA
		res.Verdict = "Milder side effect profile"
	case bMild && !aMild:
		res.Winner = WinnerProductB
		res.Verdict = "Milder side effect profile"
	default:
		res.Winner = WinnerTie
		res.Verdict = "Similar safety profiles"
	}
	return res
}

func tallyMatrix(matrix []DimensionResult) Tally {
	t := Tally{TotalDimensions: len(matrix)}
	for _, row := range matrix {
		switch row.Winner {
		case WinnerProductA:
			t.ProductAWins++
		case WinnerProductB:
			t.ProductBWins++
		default:
			t.Ties++
		}
	}
	return t
}

func summarize(a, b *product.Product, t Tally) string {
	switch {
	case t.ProductAWins > t.ProductBWins:
		return fmt.Sprintf("%s leads in %d out of %d dimensions", a.Name, t.ProductAWins, t.TotalDimensions)
	case t.ProductBWins > t.ProductAWins:
		return fmt.Sprintf("%s leads in %d out of %d dimensions", b.Name, t.ProductBWins, t.TotalDimensions)
	default:
		return fmt.Sprintf("Both products are competitive across %d key dimensions", t.TotalDimensions)
	}
}

func formatRupees(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("₹%d", int(v))
	}
	return fmt.Sprintf("₹%.2f", v)
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}

func lowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[strings.ToLower(it)] = true
	}
	return set
}
