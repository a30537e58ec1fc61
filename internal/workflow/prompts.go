package workflow

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"lustre/internal/product"
)

type promptContext struct {
	Product *product.Product
	Extra   map[string]any
}

func fillPrompt(name, tmplStr string, p *product.Product, extra map[string]any) (string, error) {
	funcMap := template.FuncMap{
		"join": func(items []string) string { return strings.Join(items, ", ") },
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

const questionPrompt = `You are a customer research assistant. Generate realistic questions that customers would ask about this skincare product.

Product Information:
- Name: {{.Product.Name}}
- Concentration: {{.Product.Concentration}}
- Skin Types: {{join .Product.SkinTypes}}
- Key Ingredients: {{join .Product.Ingredients}}
- Benefits: {{join .Product.Benefits}}
- Usage: {{.Product.Usage}}
- Side Effects: {{.Product.SideEffects}}
- Price: ₹{{.Product.Price}}

Generate EXACTLY {{.Extra.count}} questions that real customers would ask about this product.

Categories (distribute questions evenly):
1. informational - About the product itself
2. safety - About side effects and precautions
3. usage - How to use the product
4. purchase - About buying, pricing, value
5. comparison - Comparing to other products or ingredients
6. ingredients - About specific ingredients and their effects

Requirements:
- Each question must be natural and conversational
- Questions should be specific to THIS product
- Questions should be 10-25 words each

Respond ONLY with this JSON format, no other text:
{
    "questions": [
        {"category": "usage", "question": "How often should I apply this serum?"}
    ]
}`

const answerPrompt = `You are a knowledgeable skincare expert. Answer these customer questions about a product.

Product Information:
- Name: {{.Product.Name}}
- Concentration: {{.Product.Concentration}}
- Skin Types: {{join .Product.SkinTypes}}
- Key Ingredients: {{join .Product.Ingredients}}
- Benefits: {{join .Product.Benefits}}
- Usage: {{.Product.Usage}}
- Side Effects: {{.Product.SideEffects}}
- Price: ₹{{.Product.Price}}

Customer Questions:
{{.Extra.questions}}

For EACH question, provide a helpful, accurate answer (2-4 sentences).

Guidelines:
- Base answers ONLY on the product information provided
- Be honest about side effects and limitations
- Keep answers concise but complete

Respond ONLY with this JSON format, answers in the same order as the questions:
{
    "answers": ["answer to question 1", "answer to question 2"]
}`

const competitorPrompt = `You are a market analyst creating a realistic competitor product for comparison purposes.

Original Product:
- Name: {{.Product.Name}}
- Concentration: {{.Product.Concentration}}
- Skin Types: {{join .Product.SkinTypes}}
- Ingredients: {{join .Product.Ingredients}}
- Benefits: {{join .Product.Benefits}}
- Usage: {{.Product.Usage}}
- Side Effects: {{.Product.SideEffects}}
- Price: ₹{{.Product.Price}}

Create a REALISTIC fictional competitor product:

1. Name: Different brand name, professional skincare style (e.g. "ClarityGlow Serum", "VitaLift Concentrate")
2. Price: Within ±30% of ₹{{.Product.Price}}
3. Concentration: Similar category but different percentage
4. Ingredients: 50-70% overlap
5. Benefits: 50-80% overlap
6. Side Effects: Realistic and believable

The competitor should feel like a real product, not perfect or dramatically better.

Respond ONLY with this JSON format, no other text:
{
    "name": "Product Name",
    "concentration": "percentage",
    "skin_types": ["type1", "type2"],
    "ingredients": ["ing1", "ing2"],
    "benefits": ["benefit1", "benefit2"],
    "usage": "usage instructions",
    "side_effects": "possible side effects",
    "price": 0
}`

const recommendationPrompt = `You are a skincare expert providing objective product recommendations.

Product A: {{.Product.Name}}
- Price: ₹{{.Product.Price}}
- Concentration: {{.Product.Concentration}}
- Key Benefits: {{join .Product.Benefits}}

Product B: {{.Extra.competitor}}

Comparison Results:
{{.Extra.matrix}}

Write an objective recommendation (3-5 sentences, 100-200 words):

1. Summarize key differences
2. Recommend who should choose Product A (specific use cases)
3. Recommend who should choose Product B (specific use cases)
4. Be balanced and fair

Keep it professional and helpful. No marketing fluff. Respond with plain text only.`
