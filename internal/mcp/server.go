// Package mcp exposes the content pipeline as MCP tools over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"lustre/internal/compare"
	"lustre/internal/logging"
	"lustre/internal/page"
	"lustre/internal/product"
	"lustre/internal/workflow"
)

// Server wraps the MCP SDK server around one workflow engine. Runs are
// independent; the server holds no per-run state.
type Server struct {
	MCPServer *sdkmcp.Server

	engine    *workflow.Engine
	scorer    *compare.Scorer
	outputDir string
	log       *slog.Logger
}

// NewServer registers the content tools against the given engine. Artifacts
// from generate_content land in outputDir when file output is requested.
func NewServer(engine *workflow.Engine, scorer *compare.Scorer, outputDir string) *Server {
	s := &Server{
		engine:    engine,
		scorer:    scorer,
		outputDir: outputDir,
		log:       logging.New("mcp"),
	}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "lustre", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "generate_content",
		Description: "Run the full content pipeline on a product record. Produces FAQ, product page, and comparison artifacts.",
	}, s.handleGenerate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "validate_product",
		Description: "Validate a raw product record and report every offending field.",
	}, s.handleValidate)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "compare_products",
		Description: "Score two product records across the six comparison dimensions.",
	}, s.handleCompare)
}

// --- Tool input/output types ---

type generateInput struct {
	ProductJSON string `json:"product_json" jsonschema:"raw product record as a JSON string"`
	WriteFiles  bool   `json:"write_files,omitempty" jsonschema:"write the artifacts to the server's output directory"`
}

type generateOutput struct {
	Complete   bool                 `json:"complete"`
	Missing    []string             `json:"missing,omitempty"`
	Errors     []string             `json:"errors,omitempty"`
	Log        []string             `json:"execution_log"`
	FAQ        *page.FAQPage        `json:"faq_page,omitempty"`
	Page       *page.ProductPage    `json:"product_page,omitempty"`
	Comparison *page.ComparisonPage `json:"comparison_page,omitempty"`
	OutputDir  string               `json:"output_dir,omitempty"`
}

type validateInput struct {
	ProductJSON string `json:"product_json" jsonschema:"raw product record as a JSON string"`
}

type validateOutput struct {
	Valid  bool                 `json:"valid"`
	Name   string               `json:"name,omitempty"`
	Fields []product.FieldError `json:"fields,omitempty"`
	Error  string               `json:"error,omitempty"`
}

type compareInput struct {
	ProductAJSON string `json:"product_a_json" jsonschema:"first product record as a JSON string"`
	ProductBJSON string `json:"product_b_json" jsonschema:"second product record as a JSON string"`
}

type compareOutput struct {
	Matrix  []compare.DimensionResult `json:"matrix"`
	Scores  compare.Tally             `json:"scores"`
	Summary string                    `json:"summary"`
}

// --- Tool handlers ---

func (s *Server) handleGenerate(ctx context.Context, _ *sdkmcp.CallToolRequest, input generateInput) (*sdkmcp.CallToolResult, generateOutput, error) {
	state := s.engine.Run(ctx, []byte(input.ProductJSON))
	report := workflow.Validate(state)

	out := generateOutput{
		Complete:   report.Complete,
		Missing:    report.Missing,
		Errors:     report.Errors,
		Log:        report.Log,
		FAQ:        state.FAQ,
		Page:       state.Page,
		Comparison: state.Comparison,
	}

	if input.WriteFiles {
		writer, err := page.NewWriter(s.outputDir)
		if err != nil {
			return nil, generateOutput{}, err
		}
		if err := writer.WriteAll(state.FAQ, state.Page, state.Comparison); err != nil {
			return nil, generateOutput{}, fmt.Errorf("write artifacts: %w", err)
		}
		out.OutputDir = writer.Dir()
	}

	s.log.Info("generate_content run finished", "complete", report.Complete, "errors", len(report.Errors))
	return nil, out, nil
}

func (s *Server) handleValidate(ctx context.Context, _ *sdkmcp.CallToolRequest, input validateInput) (*sdkmcp.CallToolResult, validateOutput, error) {
	p, err := product.Parse([]byte(input.ProductJSON))
	if err != nil {
		var ve *product.ValidationError
		if errors.As(err, &ve) {
			return nil, validateOutput{Valid: false, Fields: ve.Fields}, nil
		}
		return nil, validateOutput{Valid: false, Error: err.Error()}, nil
	}
	return nil, validateOutput{Valid: true, Name: p.Name}, nil
}

func (s *Server) handleCompare(ctx context.Context, _ *sdkmcp.CallToolRequest, input compareInput) (*sdkmcp.CallToolResult, compareOutput, error) {
	a, err := product.Parse([]byte(input.ProductAJSON))
	if err != nil {
		return nil, compareOutput{}, fmt.Errorf("product A: %w", err)
	}
	b, err := product.Parse([]byte(input.ProductBJSON))
	if err != nil {
		return nil, compareOutput{}, fmt.Errorf("product B: %w", err)
	}

	result := s.scorer.Compare(a, b)
	return nil, compareOutput{
		Matrix:  result.Matrix,
		Scores:  result.Scores,
		Summary: result.Summary,
	}, nil
}
