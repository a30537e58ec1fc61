package product

import (
	"fmt"
	"strings"
)

// Category classifies a customer question. The set is closed; the FAQ
// selection logic and fallback answers depend on it.
type Category string

const (
	CategoryInformational Category = "informational"
	CategorySafety        Category = "safety"
	CategoryUsage         Category = "usage"
	CategoryPurchase      Category = "purchase"
	CategoryComparison    Category = "comparison"
	CategoryIngredients   Category = "ingredients"
)

// Categories lists all known categories in canonical order.
func Categories() []Category {
	return []Category{
		CategoryInformational,
		CategorySafety,
		CategoryUsage,
		CategoryPurchase,
		CategoryComparison,
		CategoryIngredients,
	}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryInformational, CategorySafety, CategoryUsage,
		CategoryPurchase, CategoryComparison, CategoryIngredients:
		return true
	}
	return false
}

const minQuestionLen = 10

// Question is a categorized customer question produced in bulk by the
// question-generation step.
type Question struct {
	Category Category `json:"category"`
	Question string   `json:"question"`
}

// Validate checks the category against the closed set and the question
// text against the minimum length.
func (q Question) Validate() error {
	if !q.Category.Valid() {
		return fmt.Errorf("unknown question category %q", q.Category)
	}
	if len(strings.TrimSpace(q.Question)) < minQuestionLen {
		return fmt.Errorf("question text too short (min %d chars): %q", minQuestionLen, q.Question)
	}
	return nil
}

const minAnswerLen = 20

// QuestionAnswer is an answered question embedded in the FAQ page artifact.
// It is written once during FAQ answering and never mutated.
type QuestionAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
}

// Validate checks the answer against the minimum length.
func (qa QuestionAnswer) Validate() error {
	if len(strings.TrimSpace(qa.Answer)) < minAnswerLen {
		return fmt.Errorf("answer too short (min %d chars) for question %q", minAnswerLen, qa.Question)
	}
	return nil
}
