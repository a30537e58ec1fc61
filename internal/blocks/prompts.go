package blocks

import (
	"bytes"
	"fmt"
	"text/template"

	"lustre/internal/product"
)

// promptContext is the data passed to every block prompt template.
type promptContext struct {
	Product *product.Product
	Extra   map[string]any
}

// fillPrompt executes an inline Go text/template against the product and
// optional extra values.
func fillPrompt(name, tmplStr string, p *product.Product, extra map[string]any) (string, error) {
	funcMap := template.FuncMap{
		"join": joinComma,
	}
	tmpl, err := template.New(name).Funcs(funcMap).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parse prompt %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, promptContext{Product: p, Extra: extra}); err != nil {
		return "", fmt.Errorf("execute prompt %s: %w", name, err)
	}
	return buf.String(), nil
}

func joinComma(items []string) string {
	out := ""
	for i, it := range items {
		if i > 0 {
			out += ", "
		}
		out += it
	}
	return out
}

const benefitPrompt = `You are a skincare copywriter. Given these product benefits, create compelling descriptions.

Product: {{.Product.Name}}
Benefits: {{join .Product.Benefits}}
Key Ingredients: {{join .Product.Ingredients}}

For each benefit, write ONE sentence (15-25 words) that:
1. Explains HOW the product delivers this benefit
2. Mentions relevant ingredients if applicable
3. Uses aspirational but honest language

Format your response as a JSON object keyed by the exact benefit name:
{
    "Benefit name": "description here"
}

Respond ONLY with the JSON object, no other text.`

const ingredientPrompt = `You are a cosmetic chemist. Provide brief, factual information about these skincare ingredients.

Product context: {{.Product.Name}} ({{.Product.Concentration}})
Ingredients to explain: {{join .Extra.unknown}}

For each ingredient, provide:
1. A one-sentence function (what it does)
2. 2-3 key benefits (brief phrases)

Format as JSON:
{
    "ingredient name": {
        "function": "what it does",
        "benefits": ["benefit1", "benefit2"]
    }
}

Respond ONLY with JSON, no other text.`

const heroPrompt = `You are a copywriter for luxury skincare. Create a compelling hero section for this product page.

Product: {{.Product.Name}}
Concentration: {{.Product.Concentration}}
Key Benefits: {{join .Product.Benefits}}
Skin Types: {{join .Product.SkinTypes}}

Create a compelling hero section for this product page:

1. Headline (5-8 words): Aspirational, benefit-focused, memorable
2. Tagline (10-15 words): Expands on headline, includes key differentiator
3. CTA text (2-4 words): Action-oriented call to action

Respond in this exact JSON format:
{
    "headline": "your headline here",
    "tagline": "your tagline here",
    "cta_text": "your CTA here"
}

Make it compelling and professional. No markdown, just JSON.`
