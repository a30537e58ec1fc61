package blocks

import (
	"context"
	"fmt"
	"strings"

	"lustre/internal/llm"
	"lustre/internal/product"
)

// BenefitDetail is one elaborated product benefit.
type BenefitDetail struct {
	Benefit     string `json:"benefit"`
	Description string `json:"description"`
	Relevance   string `json:"relevance"`
}

// BenefitContent is the benefits page section.
type BenefitContent struct {
	Title    string          `json:"title"`
	Benefits []BenefitDetail `json:"benefits"`
	Summary  string          `json:"summary"`
}

// Benefit elaborates each product benefit into a one-sentence description.
// The LLM path keys descriptions by benefit name; any parse or call failure
// drops the whole block to the templated fallback.
func (l *Library) Benefit(ctx context.Context, p *product.Product) (BenefitContent, error) {
	if l.cfg.UseLLM {
		content, err := l.benefitLLM(ctx, p)
		if err == nil {
			return content, nil
		}
		l.log.Warn("benefit block falling back", "error", err)
	}
	return l.benefitFallback(p), nil
}

func (l *Library) benefitLLM(ctx context.Context, p *product.Product) (BenefitContent, error) {
	prompt, err := fillPrompt("benefit", benefitPrompt, p, nil)
	if err != nil {
		return BenefitContent{}, err
	}
	reply, err := l.completer.Complete(ctx, prompt)
	if err != nil {
		return BenefitContent{}, err
	}
	descriptions, err := llm.Decode[map[string]string](reply)
	if err != nil {
		return BenefitContent{}, err
	}

	details := make([]BenefitDetail, 0, len(p.Benefits))
	for _, benefit := range p.Benefits {
		desc, ok := descriptions[benefit]
		if !ok {
			desc = fallbackBenefitSentence(benefit)
		}
		details = append(details, BenefitDetail{
			Benefit:     benefit,
			Description: desc,
			Relevance:   "High",
		})
	}
	return BenefitContent{
		Title:    "Key Benefits",
		Benefits: details,
		Summary:  benefitSummary(p, len(details)),
	}, nil
}

// benefitFallback never fails: it reads only fields the product model
// guarantees non-empty.
func (l *Library) benefitFallback(p *product.Product) BenefitContent {
	details := make([]BenefitDetail, 0, len(p.Benefits))
	for _, benefit := range p.Benefits {
		details = append(details, BenefitDetail{
			Benefit:     benefit,
			Description: fallbackBenefitSentence(benefit),
			Relevance:   "High",
		})
	}
	return BenefitContent{
		Title:    "Key Benefits",
		Benefits: details,
		Summary:  benefitSummary(p, len(details)),
	}
}

func fallbackBenefitSentence(benefit string) string {
	return fmt.Sprintf("Experience the power of %s with our advanced formula.", strings.ToLower(benefit))
}

func benefitSummary(p *product.Product, count int) string {
	return fmt.Sprintf("This product delivers %d proven benefits for %s skin.",
		count, strings.Join(p.SkinTypes, ", "))
}
