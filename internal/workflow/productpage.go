package workflow

import (
	"context"
	"fmt"
	"time"

	"lustre/internal/blocks"
	"lustre/internal/page"
	"lustre/internal/template"
)

// productPageStep renders the product page template and assembles the
// typed artifact from the rendered block tree. A required block failure
// fails the step; optional blocks degrade to their zero section.
func (e *Engine) productPageStep(ctx context.Context, s State) State {
	if s.Product == nil {
		return s.withError("Product page generation failed: product missing from state")
	}

	rendered, err := e.tmpl.RenderTemplate(ctx, template.ProductTemplate(), s.Product)
	if err != nil {
		e.log.Error("product page render failed", "error", err)
		return s.withError(fmt.Sprintf("Product page generation failed: %v", err))
	}

	pp := &page.ProductPage{
		PageType:    page.TypeProduct,
		ProductName: s.Product.Name,
		GeneratedAt: time.Now().UTC(),
	}
	for _, sec := range rendered.Sections {
		for _, b := range sec.Blocks {
			assignSection(pp, b.Content)
		}
	}

	s.Page = pp
	return s.withLog("Generated complete product page")
}

// assignSection routes one rendered block into its artifact field. The
// block set is closed, so an unmatched content type is silently ignored.
func assignSection(pp *page.ProductPage, content any) {
	switch c := content.(type) {
	case blocks.HeroContent:
		pp.Hero = c
	case blocks.BenefitContent:
		pp.Benefits = c
	case blocks.IngredientContent:
		pp.Ingredients = c
	case blocks.UsageContent:
		pp.Usage = c
	case blocks.SafetyContent:
		pp.Safety = c
	case blocks.PriceContent:
		pp.Price = c
	}
}
