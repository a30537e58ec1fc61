package blocks

import (
	"lustre/internal/compare"
	"lustre/internal/product"
)

// Comparison builds the six-dimension comparison matrix between two
// products. Delegates to the scorer; fully deterministic.
func (l *Library) Comparison(a, b *product.Product) compare.Result {
	return l.scorer.Compare(a, b)
}
