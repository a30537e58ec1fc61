package blocks

import (
	"context"
	"fmt"
	"strings"

	"lustre/internal/product"
)

// Price positioning tier thresholds in rupees.
const (
	tierBudgetMax  = 500
	tierMidMax     = 1000
	tierPremiumMax = 2000
)

// premiumIngredients trigger the research-backed value highlight.
var premiumIngredients = []string{"Vitamin C", "Hyaluronic Acid", "Retinol", "Niacinamide"}

// PriceContent is the pricing and value page section.
type PriceContent struct {
	Title                  string   `json:"title"`
	Price                  string   `json:"price"`
	PriceNumeric           float64  `json:"price_numeric"`
	BottleSizeML           float64  `json:"bottle_size_ml"`
	Positioning            string   `json:"positioning"`
	PositioningDescription string   `json:"positioning_description"`
	CostPerML              string   `json:"cost_per_ml"`
	CostPerUse             string   `json:"cost_per_use"`
	EstimatedDaysSupply    int      `json:"estimated_days_supply"`
	ValueHighlights        []string `json:"value_highlights"`
	InvestmentStatement    string   `json:"investment_statement"`
}

// Price derives per-use economics from the configured bottle constants,
// classifies the price into a positioning tier, and emits conditional
// value highlights. Fully deterministic.
func (l *Library) Price(ctx context.Context, p *product.Product) (PriceContent, error) {
	costPerML := p.Price / l.cfg.BottleSizeML
	mlPerUse := l.cfg.DropsPerUse * l.cfg.MLPerDrop
	costPerUse := mlPerUse * costPerML

	usesPerDay := 1.0
	usage := strings.ToLower(p.Usage)
	if strings.Contains(usage, "twice") || strings.Contains(usage, "morning and evening") {
		usesPerDay = 2
	}
	totalUses := l.cfg.BottleSizeML / mlPerUse
	daysSupply := totalUses / usesPerDay

	positioning, positioningDesc := classifyPositioning(p.Price)

	return PriceContent{
		Title:                  "Pricing & Value",
		Price:                  fmt.Sprintf("₹%v", p.Price),
		PriceNumeric:           p.Price,
		BottleSizeML:           l.cfg.BottleSizeML,
		Positioning:            positioning,
		PositioningDescription: positioningDesc,
		CostPerML:              fmt.Sprintf("₹%.2f", costPerML),
		CostPerUse:             fmt.Sprintf("₹%.2f", costPerUse),
		EstimatedDaysSupply:    int(daysSupply),
		ValueHighlights:        valueHighlights(p, costPerUse, daysSupply),
		InvestmentStatement:    investmentStatement(p.Price, daysSupply),
	}, nil
}

func classifyPositioning(price float64) (tier, description string) {
	switch {
	case price < tierBudgetMax:
		return "Budget-Friendly", "Affordable luxury for everyday skincare"
	case price < tierMidMax:
		return "Mid-Range", "Premium quality at accessible pricing"
	case price < tierPremiumMax:
		return "Premium", "High-end formulation with proven ingredients"
	default:
		return "Luxury", "Professional-grade investment in skin health"
	}
}

func valueHighlights(p *product.Product, costPerUse, daysSupply float64) []string {
	var highlights []string

	if costPerUse < 5 {
		highlights = append(highlights, fmt.Sprintf("Less than ₹%d per application", int(costPerUse)+1))
	} else {
		highlights = append(highlights, fmt.Sprintf("Approximately ₹%.0f per use", costPerUse))
	}

	if daysSupply >= 60 {
		highlights = append(highlights, fmt.Sprintf("Over %d months supply with daily use", int(daysSupply/30)))
	} else {
		highlights = append(highlights, fmt.Sprintf("Approximately %d days of use", int(daysSupply)))
	}

	highlights = append(highlights, fmt.Sprintf("Effective %s formulation", p.Concentration))

	if hasPremiumIngredient(p) {
		highlights = append(highlights, "Contains premium, research-backed ingredients")
	}
	if len(p.Benefits) >= 2 {
		highlights = append(highlights, fmt.Sprintf("Delivers %d benefits in one product", len(p.Benefits)))
	}
	return highlights
}

func hasPremiumIngredient(p *product.Product) bool {
	for _, ing := range p.Ingredients {
		for _, premium := range premiumIngredients {
			if strings.EqualFold(ing, premium) {
				return true
			}
		}
	}
	return false
}

func investmentStatement(price, daysSupply float64) string {
	dailyCost := price / daysSupply
	switch {
	case dailyCost < 15:
		return fmt.Sprintf("An investment of just ₹%.0f per day for healthier, more radiant skin", dailyCost)
	case dailyCost < 30:
		return fmt.Sprintf("Premium skincare at ₹%.0f daily - less than your morning coffee", dailyCost)
	default:
		return fmt.Sprintf("A professional-grade treatment for ₹%.0f per day", dailyCost)
	}
}
