// Package workflow runs the fixed five-step pipeline that turns one raw
// product record into the FAQ, product page, and comparison artifacts.
package workflow

import (
	"context"
	"fmt"
	"log/slog"

	"lustre/internal/blocks"
	"lustre/internal/llm"
	"lustre/internal/logging"
	"lustre/internal/product"
	"lustre/internal/template"
)

// Defaults for question generation and FAQ selection.
const (
	DefaultQuestionCount = 18
	DefaultMaxFAQ        = 10
)

// Options tune the engine. Zero values fall back to defaults.
type Options struct {
	QuestionCount int
	MaxFAQ        int
}

// Engine executes the step sequence against a single state. One engine can
// serve many runs; it holds no per-run state.
type Engine struct {
	lib       *blocks.Library
	tmpl      *template.Engine
	completer llm.Completer
	opts      Options
	log       *slog.Logger
}

// New wires the engine. A nil completer disables every LLM path; all steps
// then run on deterministic fallbacks.
func New(completer llm.Completer, lib *blocks.Library, opts Options) *Engine {
	if opts.QuestionCount <= 0 {
		opts.QuestionCount = DefaultQuestionCount
	}
	if opts.MaxFAQ <= 0 {
		opts.MaxFAQ = DefaultMaxFAQ
	}
	if lib == nil {
		lib = blocks.NewLibrary(completer, nil, blocks.DefaultConfig())
	}
	if completer == nil {
		completer = llm.Disabled{}
	}
	return &Engine{
		lib:       lib,
		tmpl:      template.NewEngine(lib),
		completer: completer,
		opts:      opts,
		log:       logging.New("workflow"),
	}
}

// Run executes the pipeline: parse, questions, gate, FAQ, product page,
// comparison. The gate is the only conditional edge; if the error list is
// non-empty or no questions were produced, the run halts and returns the
// partial state.
func (e *Engine) Run(ctx context.Context, raw []byte) State {
	s := NewState(raw)

	s = e.parseStep(s)
	s = e.questionStep(ctx, s)

	if len(s.Errors) > 0 || s.Questions == nil {
		e.log.Warn("halting at error gate", "errors", len(s.Errors))
		return s.withLog("Workflow halted at error gate")
	}

	s = e.faqStep(ctx, s)
	s = e.productPageStep(ctx, s)
	s = e.comparisonStep(ctx, s)
	return s
}

// parseStep validates the raw input into a Product. Validation failures
// are fatal to the run; every offending field is reported at once.
func (e *Engine) parseStep(s State) State {
	p, err := product.Parse(s.Raw)
	if err != nil {
		e.log.Error("parse failed", "error", err)
		return s.withError(fmt.Sprintf("Data parsing failed: %v", err))
	}
	e.log.Info("product parsed", "name", p.Name)
	s.Product = p
	return s.withLog(fmt.Sprintf("Parsed and validated product %q", p.Name))
}
