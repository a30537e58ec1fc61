package blocks

import (
	"context"
	"fmt"
	"strings"

	"lustre/internal/llm"
	"lustre/internal/product"
)

// HeroContent is the product page hero section.
type HeroContent struct {
	Headline string `json:"headline"`
	Tagline  string `json:"tagline"`
	CTAText  string `json:"cta_text"`
}

// Hero writes the headline, tagline, and call to action. The LLM path must
// return all three fields; otherwise the templated fallback is used.
func (l *Library) Hero(ctx context.Context, p *product.Product) (HeroContent, error) {
	if l.cfg.UseLLM {
		content, err := l.heroLLM(ctx, p)
		if err == nil {
			return content, nil
		}
		l.log.Warn("hero block falling back", "error", err)
	}
	return heroFallback(p), nil
}

func (l *Library) heroLLM(ctx context.Context, p *product.Product) (HeroContent, error) {
	prompt, err := fillPrompt("hero", heroPrompt, p, nil)
	if err != nil {
		return HeroContent{}, err
	}
	reply, err := l.completer.Complete(ctx, prompt)
	if err != nil {
		return HeroContent{}, err
	}
	content, err := llm.Decode[HeroContent](reply)
	if err != nil {
		return HeroContent{}, err
	}
	if content.Headline == "" || content.Tagline == "" || content.CTAText == "" {
		return HeroContent{}, fmt.Errorf("%w: hero reply missing fields", llm.ErrMalformedResponse)
	}
	return content, nil
}

func heroFallback(p *product.Product) HeroContent {
	return HeroContent{
		Headline: fmt.Sprintf("Premium %s", p.Name),
		Tagline: fmt.Sprintf("Professional skincare solution for %s skin. Formulated with %s.",
			strings.Join(p.SkinTypes, ", "), p.Concentration),
		CTAText: "Shop Now",
	}
}
