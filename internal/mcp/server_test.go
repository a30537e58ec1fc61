package mcp

import (
	"context"
	"testing"

	"lustre/internal/compare"
	"lustre/internal/llm"
	"lustre/internal/workflow"
)

const validProductJSON = `{
	"name": "GlowBoost Vitamin C Serum",
	"concentration": "10% Vitamin C",
	"skin_types": ["Oily"],
	"ingredients": ["Vitamin C"],
	"benefits": ["Brightening"],
	"usage": "Apply 2-3 drops in the morning",
	"side_effects": "Mild tingling",
	"price": 699
}`

func testServer(t *testing.T) *Server {
	t.Helper()
	engine := workflow.New(llm.Disabled{}, nil, workflow.Options{})
	return NewServer(engine, compare.NewScorer(compare.DefaultThresholds()), t.TempDir())
}

func TestHandleGenerate_CompleteRun(t *testing.T) {
	srv := testServer(t)
	_, out, err := srv.handleGenerate(context.Background(), nil, generateInput{ProductJSON: validProductJSON})
	if err != nil {
		t.Fatalf("handleGenerate: %v", err)
	}
	if !out.Complete {
		t.Fatalf("run incomplete, missing %v, errors %v", out.Missing, out.Errors)
	}
	if out.FAQ == nil || out.Page == nil || out.Comparison == nil {
		t.Error("artifacts missing from output")
	}
	if out.OutputDir != "" {
		t.Error("files should not be written unless requested")
	}
}

func TestHandleGenerate_WriteFiles(t *testing.T) {
	srv := testServer(t)
	_, out, err := srv.handleGenerate(context.Background(), nil, generateInput{
		ProductJSON: validProductJSON,
		WriteFiles:  true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if out.OutputDir == "" {
		t.Error("output_dir not reported after write")
	}
}

func TestHandleGenerate_InvalidInputReportsErrors(t *testing.T) {
	srv := testServer(t)
	_, out, err := srv.handleGenerate(context.Background(), nil, generateInput{ProductJSON: `{"name": "X"}`})
	if err != nil {
		t.Fatalf("invalid input is a run error, not a tool error: %v", err)
	}
	if out.Complete || len(out.Errors) == 0 {
		t.Errorf("expected failed run, got %+v", out)
	}
}

func TestHandleValidate(t *testing.T) {
	srv := testServer(t)

	_, out, err := srv.handleValidate(context.Background(), nil, validateInput{ProductJSON: validProductJSON})
	if err != nil || !out.Valid {
		t.Fatalf("valid record rejected: %v %+v", err, out)
	}

	_, out, err = srv.handleValidate(context.Background(), nil, validateInput{ProductJSON: `{"price": -5}`})
	if err != nil {
		t.Fatal(err)
	}
	if out.Valid || len(out.Fields) == 0 {
		t.Errorf("field errors not reported: %+v", out)
	}
}

func TestHandleCompare(t *testing.T) {
	srv := testServer(t)
	b := `{
		"name": "VitaLift Concentrate",
		"concentration": "12% Vitamin C",
		"skin_types": ["Dry"],
		"ingredients": ["Niacinamide"],
		"benefits": ["Firming"],
		"usage": "evening use",
		"side_effects": "Moderate redness",
		"price": 899
	}`
	_, out, err := srv.handleCompare(context.Background(), nil, compareInput{
		ProductAJSON: validProductJSON,
		ProductBJSON: b,
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Matrix) != 6 {
		t.Errorf("matrix rows = %d, want 6", len(out.Matrix))
	}
	if out.Summary == "" {
		t.Error("summary empty")
	}
}

func TestHandleCompare_BadInput(t *testing.T) {
	srv := testServer(t)
	if _, _, err := srv.handleCompare(context.Background(), nil, compareInput{
		ProductAJSON: `{`,
		ProductBJSON: validProductJSON,
	}); err == nil {
		t.Fatal("malformed product A must fail the tool call")
	}
}
