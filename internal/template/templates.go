package template

// ProductTemplate is the full product page layout. The hero and pricing
// sections must render; descriptive sections degrade gracefully.
func ProductTemplate() Template {
	return Template{
		Type: "product_page",
		Sections: []Section{
			{
				Name:     "hero",
				Required: []BlockID{BlockHero},
				Enhance:  true,
				FormatRules: map[string]any{
					"headline_max_words": 8,
					"tagline_max_words":  15,
				},
			},
			{
				Name:     "benefits",
				Required: []BlockID{BlockBenefits},
				Enhance:  true,
				FormatRules: map[string]any{
					"words_per_benefit": 20,
				},
			},
			{
				Name:     "ingredients",
				Optional: []BlockID{BlockIngredients},
				Enhance:  true,
			},
			{
				Name:     "usage",
				Required: []BlockID{BlockUsage},
			},
			{
				Name:     "safety",
				Required: []BlockID{BlockSafety},
			},
			{
				Name:     "pricing",
				Required: []BlockID{BlockPrice},
			},
		},
	}
}

// ComparisonSnapshotTemplate renders the per-product summary embedded in a
// comparison page, once for each side of the comparison.
func ComparisonSnapshotTemplate() Template {
	return Template{
		Type: "comparison_snapshot",
		Sections: []Section{
			{
				Name:     "overview",
				Required: []BlockID{BlockPrice},
				Optional: []BlockID{BlockBenefits},
			},
		},
	}
}
