package workflow

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"lustre/internal/llm"
	"lustre/internal/page"
	"lustre/internal/product"
)

// comparisonStep generates a fictional competitor, runs the comparison
// scorer, and writes the comparison artifact with a recommendation. Both
// LLM calls degrade to deterministic fallbacks.
func (e *Engine) comparisonStep(ctx context.Context, s State) State {
	if s.Product == nil {
		return s.withError("Comparison generation failed: product missing from state")
	}

	competitor, err := e.fictionalCompetitor(ctx, s.Product)
	if err != nil {
		e.log.Warn("competitor generation falling back", "error", err)
		competitor = fallbackCompetitor(s.Product)
	}

	result := e.lib.Comparison(s.Product, competitor)
	recommendation := e.recommendation(ctx, s.Product, competitor, result.Summary)

	s.Comparison = &page.ComparisonPage{
		PageType:       page.TypeComparison,
		ProductA:       *s.Product,
		ProductB:       *competitor,
		Matrix:         result.Matrix,
		Scores:         result.Scores,
		Summary:        result.Summary,
		Recommendation: recommendation,
		GeneratedAt:    time.Now().UTC(),
	}
	return s.withLog(fmt.Sprintf("Generated comparison page against %q", competitor.Name))
}

// fictionalCompetitor asks the LLM for a realistic competitor record and
// validates it with the same rules as real input.
func (e *Engine) fictionalCompetitor(ctx context.Context, p *product.Product) (*product.Product, error) {
	prompt, err := fillPrompt("competitor", competitorPrompt, p, nil)
	if err != nil {
		return nil, err
	}
	reply, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	raw, err := llm.Decode[product.Product](reply)
	if err != nil {
		return nil, err
	}
	competitor, err := product.New(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: competitor record invalid: %v", llm.ErrMalformedResponse, err)
	}
	return competitor, nil
}

// fallbackCompetitor derives a deterministic competitor: 15% dearer, first
// ingredient marked enhanced, concentration scaled to 95% of the leading
// numeric figure.
func fallbackCompetitor(p *product.Product) *product.Product {
	ingredients := make([]string, len(p.Ingredients))
	copy(ingredients, p.Ingredients)
	if len(ingredients) > 0 {
		ingredients[0] += " (Enhanced)"
	}

	// Every field derives from an already validated product, so the
	// record is built directly without another validation pass.
	return &product.Product{
		Name:          fmt.Sprintf("Premium %s Competitor", firstWord(p.Name)),
		Concentration: scaleConcentration(p.Concentration),
		SkinTypes:     p.SkinTypes,
		Ingredients:   ingredients,
		Benefits:      p.Benefits,
		Usage:         p.Usage,
		SideEffects:   p.SideEffects,
		Price:         p.Price * 1.15,
	}
}

func firstWord(name string) string {
	if fields := strings.Fields(name); len(fields) > 0 {
		return fields[0]
	}
	return name
}

// scaleConcentration reduces the leading percentage by 5% and relabels it.
// Concentrations without a leading number pass through unchanged.
func scaleConcentration(c string) string {
	head, _, found := strings.Cut(c, "%")
	if !found {
		return c
	}
	val, err := strconv.ParseFloat(strings.TrimSpace(head), 64)
	if err != nil {
		return c
	}
	return fmt.Sprintf("%d%% Active", int(val*0.95))
}

// recommendation writes the closing guidance. The fallback is neutral and
// always long enough for the artifact contract.
func (e *Engine) recommendation(ctx context.Context, a, b *product.Product, matrixSummary string) string {
	extra := map[string]any{
		"competitor": fmt.Sprintf("%s (₹%v, %s, benefits: %s)",
			b.Name, b.Price, b.Concentration, strings.Join(b.Benefits, ", ")),
		"matrix": matrixSummary,
	}
	prompt, err := fillPrompt("recommendation", recommendationPrompt, a, extra)
	if err == nil {
		if reply, cerr := e.completer.Complete(ctx, prompt); cerr == nil {
			if text := strings.TrimSpace(reply); len(text) >= 50 {
				return text
			}
		}
	}
	return fmt.Sprintf("Both %s and %s are excellent skincare products. Choose based on your specific skin type and budget preferences. %s offers proven benefits, while %s provides an alternative formulation. Patch test before full use.",
		a.Name, b.Name, a.Name, b.Name)
}
