package workflow

import (
	"context"
	"fmt"
	"strings"

	"lustre/internal/llm"
	"lustre/internal/page"
	"lustre/internal/product"
)

type answerList struct {
	Answers []string `json:"answers"`
}

// faqStep selects the best questions, answers them, and produces the FAQ
// artifact. Answer generation failures degrade per question to the
// category fallback; the step itself only fails on missing upstream state.
func (e *Engine) faqStep(ctx context.Context, s State) State {
	if s.Product == nil {
		return s.withError("FAQ generation failed: product missing from state")
	}
	if len(s.Questions) == 0 {
		return s.withError("FAQ generation failed: questions missing from state")
	}

	selected := selectQuestions(s.Questions, e.opts.MaxFAQ)
	e.log.Info("questions selected for FAQ", "total", len(s.Questions), "selected", len(selected))

	faqs := e.answerQuestions(ctx, s.Product, selected)

	s.FAQ = page.NewFAQPage(s.Product.Name, faqs)
	return s.withLog(fmt.Sprintf("Generated FAQ page with %d Q&A pairs", len(faqs)))
}

// answerQuestions makes one batch LLM call for all answers, then fills any
// gap (call failure, short reply, short answer) with the category fallback.
// Never fails; every selected question gets an answer.
func (e *Engine) answerQuestions(ctx context.Context, p *product.Product, questions []product.Question) []product.QuestionAnswer {
	answers := e.batchAnswers(ctx, p, questions)

	faqs := make([]product.QuestionAnswer, 0, len(questions))
	for i, q := range questions {
		qa := product.QuestionAnswer{
			Question: q.Question,
			Category: string(q.Category),
		}
		if i < len(answers) {
			qa.Answer = strings.TrimSpace(answers[i])
		}
		if qa.Validate() != nil {
			qa.Answer = fallbackAnswer(p, q)
		}
		faqs = append(faqs, qa)
	}
	return faqs
}

func (e *Engine) batchAnswers(ctx context.Context, p *product.Product, questions []product.Question) []string {
	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, q.Category, q.Question)
	}

	prompt, err := fillPrompt("answers", answerPrompt, p, map[string]any{
		"questions": sb.String(),
	})
	if err != nil {
		e.log.Warn("answer prompt failed", "error", err)
		return nil
	}
	reply, err := e.completer.Complete(ctx, prompt)
	if err != nil {
		e.log.Warn("answer generation falling back", "error", err)
		return nil
	}
	list, err := llm.Decode[answerList](reply)
	if err != nil {
		e.log.Warn("answer reply malformed", "error", err)
		return nil
	}
	return list.Answers
}

// fallbackAnswer writes an answer from the product fields matching the
// question's category. Always clears the minimum answer length for a
// validated product.
func fallbackAnswer(p *product.Product, q product.Question) string {
	switch q.Category {
	case product.CategoryUsage:
		return fmt.Sprintf("This product should be used as follows: %s. Apply consistently for best results.", p.Usage)
	case product.CategorySafety:
		return fmt.Sprintf("Safety information: %s. Always perform a patch test before full application.", p.SideEffects)
	case product.CategoryIngredients:
		return fmt.Sprintf("This product contains: %s. Each ingredient has been selected for its benefits.", strings.Join(p.Ingredients, ", "))
	case product.CategoryPurchase:
		return fmt.Sprintf("This product is priced at ₹%v, offering excellent value for its formulation.", p.Price)
	case product.CategoryComparison:
		return fmt.Sprintf("The key benefits of this product include: %s. Results vary by individual.", strings.Join(p.Benefits, ", "))
	default:
		return fmt.Sprintf("%s is designed for %s skin types. Please review the product information for more details.", p.Name, strings.Join(p.SkinTypes, ", "))
	}
}
