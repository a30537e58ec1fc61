package blocks

import (
	"context"
	"fmt"
	"strings"

	"lustre/internal/product"
)

// EffectNote is one recognized side effect with a contextual note.
type EffectNote struct {
	Effect  string `json:"effect"`
	Context string `json:"context"`
}

// SafetyContent is the safety and side effects page section.
type SafetyContent struct {
	Title              string       `json:"title"`
	Severity           string       `json:"severity"`
	Description        string       `json:"description"`
	SideEffects        []EffectNote `json:"side_effects"`
	Precautions        []string     `json:"precautions"`
	IfSideEffectsOccur []string     `json:"if_side_effects_occur"`
	SuitableFor        []string     `json:"suitable_for"`
	NotSuitableFor     []string     `json:"not_suitable_for"`
	Disclaimer         string       `json:"disclaimer"`
}

// Safety classifies side-effect severity by keyword, annotates recognized
// effects, and derives precautions and suitability lists. Fully
// deterministic.
func (l *Library) Safety(ctx context.Context, p *product.Product) (SafetyContent, error) {
	text := strings.ToLower(p.SideEffects)

	severity, severityDesc := classifySeverity(text, p.Name)

	return SafetyContent{
		Title:              "Safety & Side Effects",
		Severity:           severity,
		Description:        severityDesc,
		SideEffects:        identifyEffects(text),
		Precautions:        safetyPrecautions(p, text),
		IfSideEffectsOccur: actionSteps(severity),
		SuitableFor:        suitableFor(p),
		NotSuitableFor:     notSuitableFor(text),
		Disclaimer:         "This information is for educational purposes. Always patch test and consult a dermatologist if you have concerns.",
	}, nil
}

func classifySeverity(text, productName string) (severity, description string) {
	switch {
	case strings.Contains(text, "mild"):
		return "Mild", "Generally well-tolerated with minimal side effects"
	case strings.Contains(text, "moderate"):
		return "Moderate", "Some users may experience temporary discomfort"
	case strings.Contains(text, "severe"):
		return "Requires Caution", "Please consult a dermatologist before use"
	default:
		return "Minimal", fmt.Sprintf("%s is formulated for optimal safety", productName)
	}
}

func identifyEffects(text string) []EffectNote {
	var effects []EffectNote

	if strings.Contains(text, "tingling") {
		effects = append(effects, EffectNote{
			Effect:  "Tingling sensation",
			Context: "Common with actives like Vitamin C, usually subsides after a few minutes",
		})
	}
	if strings.Contains(text, "redness") {
		effects = append(effects, EffectNote{
			Effect:  "Mild redness",
			Context: "May occur during initial use as skin adjusts - reduce frequency if severe",
		})
	}
	if strings.Contains(text, "dryness") {
		effects = append(effects, EffectNote{
			Effect:  "Temporary dryness",
			Context: "Use a good moisturizer after application to maintain skin barrier",
		})
	}
	if strings.Contains(text, "irritation") {
		effects = append(effects, EffectNote{
			Effect:  "Skin irritation",
			Context: "Discontinue use and allow skin to calm before resuming",
		})
	}

	if len(effects) == 0 {
		effects = append(effects, EffectNote{
			Effect:  "No known severe side effects",
			Context: "Well-tolerated by most users when used as directed",
		})
	}
	return effects
}

func safetyPrecautions(p *product.Product, text string) []string {
	precautions := []string{
		"Always patch test on inner arm 24 hours before full application",
		"Avoid contact with eyes - if contact occurs, rinse immediately with water",
	}

	if strings.Contains(text, "sensitive") {
		precautions = append(precautions, "Start with 2-3 times per week if you have sensitive skin")
	}
	if p.HasIngredient("vitamin c") {
		precautions = append(precautions, "Do not mix with vitamin B3 or niacinamide in the same routine")
	}
	if p.HasIngredient("acid") {
		precautions = append(precautions, "Avoid using with other exfoliating acids on the same day")
	}

	return append(precautions,
		"Keep away from heat sources - store in cool place",
		"Consult a dermatologist if you have specific skin conditions or concerns")
}

func actionSteps(severity string) []string {
	steps := []string{
		"Stop using the product immediately",
		"Rinse face thoroughly with cool water",
	}
	if severity == "Moderate" || severity == "Requires Caution" {
		steps = append(steps,
			"Apply a gentle, fragrance-free moisturizer",
			"Do not use other active ingredients until irritation clears")
	} else {
		steps = append(steps, "Apply a calming moisturizer to soothe skin")
	}
	return append(steps, "Consider reintroducing at lower frequency once skin has calmed")
}

func suitableFor(p *product.Product) []string {
	suitable := make([]string, 0, len(p.SkinTypes)+2)
	for _, st := range p.SkinTypes {
		suitable = append(suitable, st+" skin")
	}
	suitable = append(suitable, "Adults 18+ years")
	if strings.Contains(strings.ToLower(p.SideEffects), "mild") {
		suitable = append(suitable, "Sensitive skin types (with patch test)")
	}
	return suitable
}

func notSuitableFor(text string) []string {
	notSuitable := []string{
		"Pregnant or nursing women (consult doctor)",
		"Children under 18 years",
	}
	if strings.Contains(text, "sensitive") {
		notSuitable = append(notSuitable, "Those with severe skin sensitivity without prior testing")
	}
	return append(notSuitable,
		"Those allergic to any ingredient (review full ingredient list)",
		"Active skin infections or severe acne (consult dermatologist first)")
}
