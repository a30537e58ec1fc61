package page

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"lustre/internal/product"
)

func TestWriteAll_SkipsAbsentArtifacts(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	faq := NewFAQPage("GlowBoost Vitamin C Serum", []product.QuestionAnswer{
		{Question: "How do I use this serum every day?", Answer: "Apply a few drops to clean skin each morning before sunscreen.", Category: "usage"},
	})
	if err := w.WriteAll(faq, nil, nil); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, FAQFile)); err != nil {
		t.Errorf("faq artifact missing: %v", err)
	}
	for _, name := range []string{ProductFile, ComparisonFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
			t.Errorf("%s should not exist for absent artifact", name)
		}
	}
}

func TestWriteAll_FAQRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	if err != nil {
		t.Fatal(err)
	}

	faq := NewFAQPage("GlowBoost Vitamin C Serum", []product.QuestionAnswer{
		{Question: "Is this safe for sensitive skin?", Answer: "Patch test first; mild tingling can occur during the first week of use.", Category: "safety"},
	})
	if err := w.WriteAll(faq, nil, nil); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(filepath.Join(dir, FAQFile))
	if err != nil {
		t.Fatal(err)
	}
	var got FAQPage
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("artifact is not valid JSON: %v", err)
	}
	if got.PageType != TypeFAQ {
		t.Errorf("page_type = %q, want %q", got.PageType, TypeFAQ)
	}
	if got.GeneratedAt.IsZero() {
		t.Error("generated_at not stamped")
	}
	if len(got.FAQs) != 1 || got.FAQs[0].Category != "safety" {
		t.Errorf("faqs round trip broken: %+v", got.FAQs)
	}
}

func TestNewWriter_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	if _, err := NewWriter(dir); err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("output dir not created: %v", err)
	}
}
