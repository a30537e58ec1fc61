package page

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"lustre/internal/logging"
)

// Artifact file names within the output directory.
const (
	FAQFile        = "faq.json"
	ProductFile    = "product_page.json"
	ComparisonFile = "comparison_page.json"
)

// Writer serializes page artifacts to an output directory. Artifacts are
// independent files, so writes run concurrently.
type Writer struct {
	dir string
	log *slog.Logger
}

// NewWriter creates the output directory if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &Writer{dir: dir, log: logging.New("page")}, nil
}

// Dir returns the output directory path.
func (w *Writer) Dir() string { return w.dir }

// WriteAll writes every non-nil artifact. A nil artifact means its
// producing step did not run; it is skipped, not an error.
func (w *Writer) WriteAll(faq *FAQPage, prod *ProductPage, comp *ComparisonPage) error {
	var g errgroup.Group
	if faq != nil {
		g.Go(func() error { return w.writeJSON(FAQFile, faq) })
	}
	if prod != nil {
		g.Go(func() error { return w.writeJSON(ProductFile, prod) })
	}
	if comp != nil {
		g.Go(func() error { return w.writeJSON(ComparisonFile, comp) })
	}
	return g.Wait()
}

func (w *Writer) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	w.log.Info("artifact written", "path", path, "bytes", len(data))
	return nil
}
