package blocks

import (
	"context"
	"fmt"
	"strings"

	"lustre/internal/product"
)

// UsageStep is one numbered application instruction.
type UsageStep struct {
	Step        int    `json:"step"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

// UsageContent is the how-to-use page section.
type UsageContent struct {
	Title             string      `json:"title"`
	Frequency         string      `json:"frequency"`
	Timing            string      `json:"timing"`
	RoutinePosition   string      `json:"routine_position"`
	ApplicationAmount string      `json:"application_amount"`
	Steps             []UsageStep `json:"steps"`
	Tips              []string    `json:"tips"`
	Instructions      string      `json:"instructions"`
}

// Usage classifies the usage text into a timing category and routine
// position, extracts the application amount, and emits the fixed five-step
// instruction sequence plus conditional tips. Fully deterministic.
func (l *Library) Usage(ctx context.Context, p *product.Product) (UsageContent, error) {
	usage := strings.ToLower(p.Usage)

	timing, position := classifyTiming(usage)
	amount := extractAmount(usage)

	return UsageContent{
		Title:             "How to Use",
		Frequency:         classifyFrequency(usage),
		Timing:            timing,
		RoutinePosition:   position,
		ApplicationAmount: amount,
		Steps:             applicationSteps(amount, timing),
		Tips:              usageTips(p),
		Instructions:      p.Usage,
	}, nil
}

func classifyTiming(usage string) (timing, position string) {
	switch {
	case strings.Contains(usage, "morning"):
		return "Morning", "after cleansing, before sunscreen"
	case strings.Contains(usage, "evening"), strings.Contains(usage, "night"):
		return "Evening", "after cleansing, before moisturizer"
	default:
		return "Daily", "as needed in your skincare routine"
	}
}

func extractAmount(usage string) string {
	switch {
	case strings.Contains(usage, "2-3 drops"), strings.Contains(usage, "2–3 drops"):
		return "2-3 drops"
	case strings.Contains(usage, "drop"):
		return "Few drops"
	case strings.Contains(usage, "pea-sized"):
		return "Pea-sized amount"
	default:
		return "As directed"
	}
}

func classifyFrequency(usage string) string {
	switch {
	case strings.Contains(usage, "once"):
		return "Once daily"
	case strings.Contains(usage, "twice"), strings.Contains(usage, "morning and evening"):
		return "Twice daily"
	case strings.Contains(usage, "morning"):
		return "Once daily (morning)"
	case strings.Contains(usage, "evening"), strings.Contains(usage, "night"):
		return "Once daily (evening)"
	default:
		return "Daily"
	}
}

// applicationSteps returns the fixed sequence; only the fifth step varies,
// by timing.
func applicationSteps(amount, timing string) []UsageStep {
	steps := []UsageStep{
		{1, "Cleanse", "Start with a clean face and neck. Pat dry completely."},
		{2, "Apply Serum", fmt.Sprintf("Dispense %s onto fingertips and apply to face and neck.", amount)},
		{3, "Massage", "Gently massage in upward, circular motions for 30 seconds."},
		{4, "Wait", "Allow serum to absorb for 1-2 minutes before proceeding."},
	}
	if timing == "Morning" {
		steps = append(steps, UsageStep{5, "Apply Sunscreen",
			"Always apply broad-spectrum SPF 30+ sunscreen as the final step."})
	} else {
		steps = append(steps, UsageStep{5, "Moisturize",
			"Follow with your regular moisturizer to lock in benefits."})
	}
	return steps
}

func usageTips(p *product.Product) []string {
	var tips []string

	if p.HasIngredient("vitamin c") {
		tips = append(tips,
			"Vitamin C works best on clean skin - apply to completely dry face",
			"Store in a cool place to maintain stability and potency")
	}
	if p.HasSkinType("Oily") {
		tips = append(tips, "Use lightweight moisturizer after application")
	}
	if p.HasSkinType("Sensitive") || strings.Contains(strings.ToLower(p.SideEffects), "sensitive") {
		tips = append(tips,
			"Start with use 2-3 times per week to allow skin to adapt",
			"Do patch test on inner arm first if this is your first time")
	}

	tips = append(tips,
		"Consistency is key - use daily for best results",
		"Visible results typically appear within 2-4 weeks of regular use")
	return tips
}
