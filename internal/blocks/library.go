// Package blocks holds the content block library: independent transforms
// from a validated product record to one content section each. Every block
// with an LLM path carries a deterministic fallback that only reads fields
// the product model guarantees non-empty, so the fallback never fails.
package blocks

import (
	"log/slog"

	"lustre/internal/compare"
	"lustre/internal/llm"
	"lustre/internal/logging"
)

// Config holds the tunable constants of the block library.
type Config struct {
	// UseLLM gates every LLM-enhanced path. When false, blocks go
	// straight to their deterministic fallbacks.
	UseLLM bool `yaml:"use_llm"`
	// BottleSizeML is the assumed bottle volume for price math.
	BottleSizeML float64 `yaml:"bottle_size_ml"`
	// DropsPerUse is the assumed per-application drop count.
	DropsPerUse float64 `yaml:"drops_per_use"`
	// MLPerDrop is the assumed volume of one drop.
	MLPerDrop float64 `yaml:"ml_per_drop"`
}

// DefaultConfig returns the standard block constants.
func DefaultConfig() Config {
	return Config{
		UseLLM:       true,
		BottleSizeML: 30,
		DropsPerUse:  2.5,
		MLPerDrop:    0.05,
	}
}

// Library binds the content blocks to a completer and a scorer. Blocks are
// methods so they share the completer, config, and logger; each one is a
// pure function of its product arguments.
type Library struct {
	completer llm.Completer
	scorer    *compare.Scorer
	cfg       Config
	log       *slog.Logger
}

// NewLibrary builds the block library. A nil completer disables the LLM
// paths regardless of cfg.UseLLM.
func NewLibrary(completer llm.Completer, scorer *compare.Scorer, cfg Config) *Library {
	if completer == nil {
		completer = llm.Disabled{}
		cfg.UseLLM = false
	}
	if scorer == nil {
		scorer = compare.NewScorer(compare.DefaultThresholds())
	}
	def := DefaultConfig()
	if cfg.BottleSizeML <= 0 {
		cfg.BottleSizeML = def.BottleSizeML
	}
	if cfg.DropsPerUse <= 0 {
		cfg.DropsPerUse = def.DropsPerUse
	}
	if cfg.MLPerDrop <= 0 {
		cfg.MLPerDrop = def.MLPerDrop
	}
	return &Library{
		completer: completer,
		scorer:    scorer,
		cfg:       cfg,
		log:       logging.New("blocks"),
	}
}
