// Package page defines the three output artifacts and their serialization
// to disk. Each artifact is written once by its producing workflow step and
// is read-only afterward.
package page

import (
	"time"

	"lustre/internal/blocks"
	"lustre/internal/compare"
	"lustre/internal/product"
)

// Page type discriminators embedded in every artifact.
const (
	TypeFAQ        = "faq"
	TypeProduct    = "product"
	TypeComparison = "comparison"
)

// FAQPage is the FAQ artifact.
type FAQPage struct {
	PageType    string                   `json:"page_type"`
	ProductName string                   `json:"product_name"`
	FAQs        []product.QuestionAnswer `json:"faqs"`
	GeneratedAt time.Time                `json:"generated_at"`
}

// NewFAQPage stamps the discriminator and generation time.
func NewFAQPage(name string, faqs []product.QuestionAnswer) *FAQPage {
	return &FAQPage{
		PageType:    TypeFAQ,
		ProductName: name,
		FAQs:        faqs,
		GeneratedAt: time.Now().UTC(),
	}
}

// ProductPage is the product description artifact. Section content comes
// from the block library via the template engine.
type ProductPage struct {
	PageType    string                   `json:"page_type"`
	ProductName string                   `json:"product_name"`
	Hero        blocks.HeroContent       `json:"hero_section"`
	Benefits    blocks.BenefitContent    `json:"benefits_section"`
	Ingredients blocks.IngredientContent `json:"ingredients_section"`
	Usage       blocks.UsageContent      `json:"usage_section"`
	Safety      blocks.SafetyContent     `json:"safety_section"`
	Price       blocks.PriceContent      `json:"price_section"`
	GeneratedAt time.Time                `json:"generated_at"`
}

// ComparisonPage is the comparison artifact. ProductB is fictional,
// generated for comparison purposes only.
type ComparisonPage struct {
	PageType       string                    `json:"page_type"`
	ProductA       product.Product           `json:"product_a"`
	ProductB       product.Product           `json:"product_b"`
	Matrix         []compare.DimensionResult `json:"comparison_matrix"`
	Scores         compare.Tally             `json:"scores"`
	Summary        string                    `json:"summary"`
	Recommendation string                    `json:"recommendation"`
	GeneratedAt    time.Time                 `json:"generated_at"`
}
