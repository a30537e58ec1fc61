package workflow

import (
	"context"
	"fmt"

	"lustre/internal/llm"
	"lustre/internal/product"
)

type questionList struct {
	Questions []product.Question `json:"questions"`
}

// questionStep produces the categorized question list. The LLM path asks
// for the configured count in one call; any failure, including invalid
// individual questions, falls back to the deterministic set.
func (e *Engine) questionStep(ctx context.Context, s State) State {
	if s.Product == nil {
		return s.withError("Question generation failed: product missing from state")
	}

	questions, err := e.generateQuestions(ctx, s.Product)
	if err != nil {
		e.log.Warn("question generation falling back", "error", err)
		questions = fallbackQuestions(s.Product)
	}

	s.Questions = questions
	return s.withLog(fmt.Sprintf("Generated %d categorized questions", len(questions)))
}

func (e *Engine) generateQuestions(ctx context.Context, p *product.Product) ([]product.Question, error) {
	prompt, err := fillPrompt("questions", questionPrompt, p, map[string]any{
		"count": e.opts.QuestionCount,
	})
	if err != nil {
		return nil, err
	}
	reply, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	list, err := llm.Decode[questionList](reply)
	if err != nil {
		return nil, err
	}
	if len(list.Questions) == 0 {
		return nil, fmt.Errorf("%w: empty question list", llm.ErrMalformedResponse)
	}
	for _, q := range list.Questions {
		if err := q.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", llm.ErrMalformedResponse, err)
		}
	}
	return list.Questions, nil
}

// fallbackQuestions builds three questions per category from the product
// fields. Every question clears the minimum length for any valid product.
func fallbackQuestions(p *product.Product) []product.Question {
	return []product.Question{
		{Category: product.CategoryInformational, Question: fmt.Sprintf("What exactly is %s and what does it do?", p.Name)},
		{Category: product.CategoryInformational, Question: fmt.Sprintf("What concentration of active ingredients does %s contain?", p.Name)},
		{Category: product.CategoryInformational, Question: "How long does one bottle typically last with regular use?"},
		{Category: product.CategorySafety, Question: "Are there any side effects I should know about before using this?"},
		{Category: product.CategorySafety, Question: "Is this product safe to use if I have sensitive skin?"},
		{Category: product.CategorySafety, Question: "Should I do a patch test before applying it to my face?"},
		{Category: product.CategoryUsage, Question: "How often should I apply this product for best results?"},
		{Category: product.CategoryUsage, Question: "Should I use this in the morning or in the evening?"},
		{Category: product.CategoryUsage, Question: "Can I layer this with my other skincare products?"},
		{Category: product.CategoryPurchase, Question: fmt.Sprintf("Is %s good value for its price?", p.Name)},
		{Category: product.CategoryPurchase, Question: "How does the cost per use compare to similar products?"},
		{Category: product.CategoryPurchase, Question: "Is there a smaller size available to try before committing?"},
		{Category: product.CategoryComparison, Question: "How does this compare to other serums in the same price range?"},
		{Category: product.CategoryComparison, Question: "What makes this formulation different from cheaper alternatives?"},
		{Category: product.CategoryComparison, Question: "Would a higher concentration product give me faster results?"},
		{Category: product.CategoryIngredients, Question: fmt.Sprintf("What role does %s play in this formula?", firstIngredient(p))},
		{Category: product.CategoryIngredients, Question: "Are all the ingredients suitable for daily use?"},
		{Category: product.CategoryIngredients, Question: "Do any of the ingredients conflict with retinol or acids?"},
	}
}

func firstIngredient(p *product.Product) string {
	if len(p.Ingredients) > 0 {
		return p.Ingredients[0]
	}
	return "the active ingredient"
}

// selectQuestions distributes the FAQ slots evenly: group by category in
// encounter order, take floor(max/categories) from each group, truncate to
// max. Uneven category counts can under-fill; leftovers are dropped, not
// backfilled.
func selectQuestions(questions []product.Question, max int) []product.Question {
	if len(questions) <= max {
		return questions
	}

	var order []product.Category
	byCategory := make(map[product.Category][]product.Question)
	for _, q := range questions {
		if _, seen := byCategory[q.Category]; !seen {
			order = append(order, q.Category)
		}
		byCategory[q.Category] = append(byCategory[q.Category], q)
	}

	perCategory := max / len(order)
	var selected []product.Question
	for _, cat := range order {
		group := byCategory[cat]
		if len(group) > perCategory {
			group = group[:perCategory]
		}
		selected = append(selected, group...)
	}
	if len(selected) > max {
		selected = selected[:max]
	}
	return selected
}
