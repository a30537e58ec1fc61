package template

import (
	"context"
	"fmt"
	"log/slog"

	"lustre/internal/blocks"
	"lustre/internal/logging"
	"lustre/internal/product"
)

// BlockID identifies a content block. The set is closed; the engine binds
// every ID to its function at construction, so an unknown ID in a template
// is a programming error surfaced at render time.
type BlockID string

const (
	BlockHero        BlockID = "hero"
	BlockBenefits    BlockID = "benefits"
	BlockIngredients BlockID = "ingredients"
	BlockUsage       BlockID = "usage"
	BlockSafety      BlockID = "safety"
	BlockPrice       BlockID = "price"
)

// BlockFunc computes one content section for a product.
type BlockFunc func(ctx context.Context, p *product.Product) (any, error)

// Section is one named group of blocks within a page template. Required
// blocks must succeed; optional blocks are skipped on failure. Enhance
// records whether the section's content is expected to carry LLM-written
// copy. FormatRules are hints consumed by individual blocks, never
// interpreted by the engine.
type Section struct {
	Name        string
	Required    []BlockID
	Optional    []BlockID
	Enhance     bool
	FormatRules map[string]any
}

// Template is a page type tag plus its ordered sections.
type Template struct {
	Type     string
	Sections []Section
}

// RenderedBlock is one block's output within a rendered section.
type RenderedBlock struct {
	Name     string `json:"name"`
	Content  any    `json:"content"`
	Required bool   `json:"required"`
}

// RenderedSection is the output of rendering one section.
type RenderedSection struct {
	Name   string          `json:"section_name"`
	Blocks []RenderedBlock `json:"blocks"`
}

// RenderedTemplate is a fully rendered page tree.
type RenderedTemplate struct {
	Type     string            `json:"template_type"`
	Sections []RenderedSection `json:"sections"`
}

// Engine renders templates by invoking registered blocks in section order.
// No caching; every render recomputes from the product.
type Engine struct {
	registry map[BlockID]BlockFunc
	log      *slog.Logger
}

// NewEngine binds the block library's functions to their IDs.
func NewEngine(lib *blocks.Library) *Engine {
	return &Engine{
		registry: map[BlockID]BlockFunc{
			BlockHero: func(ctx context.Context, p *product.Product) (any, error) {
				return lib.Hero(ctx, p)
			},
			BlockBenefits: func(ctx context.Context, p *product.Product) (any, error) {
				return lib.Benefit(ctx, p)
			},
			BlockIngredients: func(ctx context.Context, p *product.Product) (any, error) {
				return lib.Ingredient(ctx, p)
			},
			BlockUsage: func(ctx context.Context, p *product.Product) (any, error) {
				return lib.Usage(ctx, p)
			},
			BlockSafety: func(ctx context.Context, p *product.Product) (any, error) {
				return lib.Safety(ctx, p)
			},
			BlockPrice: func(ctx context.Context, p *product.Product) (any, error) {
				return lib.Price(ctx, p)
			},
		},
		log: logging.New("template"),
	}
}

// RenderSection invokes the section's required blocks in order, then its
// optional blocks. A required block failure aborts the section; an optional
// block failure is logged and the block omitted.
func (e *Engine) RenderSection(ctx context.Context, sec Section, p *product.Product) (RenderedSection, error) {
	out := RenderedSection{Name: sec.Name, Blocks: []RenderedBlock{}}

	for _, id := range sec.Required {
		content, err := e.invoke(ctx, id, p)
		if err != nil {
			return RenderedSection{}, fmt.Errorf("section %q: required block %q: %w", sec.Name, id, err)
		}
		out.Blocks = append(out.Blocks, RenderedBlock{Name: string(id), Content: content, Required: true})
	}

	for _, id := range sec.Optional {
		content, err := e.invoke(ctx, id, p)
		if err != nil {
			e.log.Warn("optional block skipped", "section", sec.Name, "block", id, "error", err)
			continue
		}
		out.Blocks = append(out.Blocks, RenderedBlock{Name: string(id), Content: content, Required: false})
	}
	return out, nil
}

// RenderTemplate renders every section in order.
func (e *Engine) RenderTemplate(ctx context.Context, tmpl Template, p *product.Product) (RenderedTemplate, error) {
	out := RenderedTemplate{Type: tmpl.Type, Sections: make([]RenderedSection, 0, len(tmpl.Sections))}
	for _, sec := range tmpl.Sections {
		rendered, err := e.RenderSection(ctx, sec, p)
		if err != nil {
			return RenderedTemplate{}, err
		}
		out.Sections = append(out.Sections, rendered)
	}
	return out, nil
}

func (e *Engine) invoke(ctx context.Context, id BlockID, p *product.Product) (any, error) {
	fn, ok := e.registry[id]
	if !ok {
		return nil, fmt.Errorf("no block registered for id %q", id)
	}
	return fn(ctx, p)
}

// register replaces a block binding. Test hook.
func (e *Engine) register(id BlockID, fn BlockFunc) {
	e.registry[id] = fn
}
