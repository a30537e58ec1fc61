package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleProduct = `{
	"name": "GlowBoost Vitamin C Serum",
	"concentration": "10% Vitamin C",
	"skin_types": ["Oily", "Combination"],
	"ingredients": ["Vitamin C", "Hyaluronic Acid"],
	"benefits": ["Brightening", "Fades dark spots"],
	"usage": "Apply 2-3 drops in the morning before sunscreen",
	"side_effects": "Mild tingling for sensitive skin",
	"price": 699
}`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "product.json")
	if err := os.WriteFile(path, []byte(sampleProduct), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGenerate_NoLLM(t *testing.T) {
	input := writeSample(t)
	outDir := t.TempDir()

	out, err := runCLI(t, "generate", "-f", input, "-o", outDir, "--no-llm")
	if err != nil {
		t.Fatalf("generate: %v\n%s", err, out)
	}

	for _, name := range []string{"faq.json", "product_page.json", "comparison_page.json"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("artifact %s not written: %v", name, err)
		}
	}
	if !strings.Contains(out, "Artifacts written") {
		t.Errorf("missing success line in output:\n%s", out)
	}
}

func TestValidate_ReportsFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"name": "X", "price": 0}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "validate", "-f", path)
	if err == nil {
		t.Fatal("invalid record must exit with error")
	}
	if !strings.Contains(out, "price") || !strings.Contains(out, "concentration") {
		t.Errorf("field errors not listed:\n%s", out)
	}
}

func TestValidate_AcceptsValidRecord(t *testing.T) {
	out, err := runCLI(t, "validate", "-f", writeSample(t))
	if err != nil {
		t.Fatalf("validate: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Valid product record") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestCompare_PrintsMatrix(t *testing.T) {
	a := writeSample(t)
	b := filepath.Join(t.TempDir(), "b.json")
	competitor := strings.Replace(sampleProduct, "699", "899", 1)
	competitor = strings.Replace(competitor, "GlowBoost Vitamin C Serum", "VitaLift Concentrate", 1)
	if err := os.WriteFile(b, []byte(competitor), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := runCLI(t, "compare", "-a", a, "-b", b)
	if err != nil {
		t.Fatalf("compare: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"matrix"`) || !strings.Contains(out, `"summary"`) {
		t.Errorf("comparison JSON missing keys:\n%s", out)
	}
}
