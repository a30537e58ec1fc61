package blocks

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"lustre/internal/llm"
	"lustre/internal/product"
)

//go:embed knowledge.yaml
var knowledgeYAML []byte

// IngredientInfo is one entry of the static ingredient knowledge table.
type IngredientInfo struct {
	Function string   `yaml:"function" json:"function"`
	Benefits []string `yaml:"benefits" json:"benefits"`
}

var knowledgeTable = loadKnowledgeTable(knowledgeYAML)

func loadKnowledgeTable(data []byte) map[string]IngredientInfo {
	var doc struct {
		Ingredients map[string]IngredientInfo `yaml:"ingredients"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		panic(fmt.Sprintf("load knowledge.yaml: %v", err))
	}
	return doc.Ingredients
}

// IngredientDetail is one explained ingredient.
type IngredientDetail struct {
	Ingredient string   `json:"ingredient"`
	Function   string   `json:"function"`
	Benefits   []string `json:"benefits"`
}

// IngredientContent is the ingredients page section.
type IngredientContent struct {
	Title       string             `json:"title"`
	Ingredients []IngredientDetail `json:"ingredients"`
	Summary     string             `json:"summary"`
}

// Ingredient explains each product ingredient: knowledge-table entries are
// used verbatim, unknown ingredients go through one batch LLM call, and
// anything still unexplained gets a generic filler entry.
func (l *Library) Ingredient(ctx context.Context, p *product.Product) (IngredientContent, error) {
	details := make([]IngredientDetail, 0, len(p.Ingredients))
	var unknown []string

	for _, ing := range p.Ingredients {
		if info, ok := knowledgeTable[strings.ToLower(ing)]; ok {
			details = append(details, IngredientDetail{
				Ingredient: ing,
				Function:   info.Function,
				Benefits:   info.Benefits,
			})
		} else {
			unknown = append(unknown, ing)
		}
	}

	if len(unknown) > 0 {
		explained := map[string]IngredientInfo{}
		if l.cfg.UseLLM {
			var err error
			explained, err = l.ingredientLLM(ctx, p, unknown)
			if err != nil {
				l.log.Warn("ingredient block falling back", "error", err)
				explained = map[string]IngredientInfo{}
			}
		}
		for _, ing := range unknown {
			info, ok := lookupFold(explained, ing)
			if !ok {
				info = IngredientInfo{
					Function: fmt.Sprintf("Active ingredient in %s", p.Name),
					Benefits: []string{"Part of proprietary formula"},
				}
			}
			details = append(details, IngredientDetail{
				Ingredient: ing,
				Function:   info.Function,
				Benefits:   info.Benefits,
			})
		}
	}

	return IngredientContent{
		Title:       "Key Ingredients",
		Ingredients: details,
		Summary:     fmt.Sprintf("Formulated with %d science-backed ingredients", len(p.Ingredients)),
	}, nil
}

func (l *Library) ingredientLLM(ctx context.Context, p *product.Product, unknown []string) (map[string]IngredientInfo, error) {
	prompt, err := fillPrompt("ingredient", ingredientPrompt, p, map[string]any{"unknown": unknown})
	if err != nil {
		return nil, err
	}
	reply, err := l.completer.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}
	return llm.Decode[map[string]IngredientInfo](reply)
}

// lookupFold finds a map entry by case-insensitive key match.
func lookupFold(m map[string]IngredientInfo, key string) (IngredientInfo, bool) {
	if info, ok := m[key]; ok {
		return info, true
	}
	for k, info := range m {
		if strings.EqualFold(k, key) {
			return info, true
		}
	}
	return IngredientInfo{}, false
}
