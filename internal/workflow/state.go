package workflow

import (
	"slices"

	"lustre/internal/page"
	"lustre/internal/product"
)

// State is the record threaded through the workflow steps. Steps never
// mutate the state they receive; each returns a copy with at most one new
// content field, or with an appended error. Artifact fields are nil until
// their producing step succeeds.
type State struct {
	Raw        []byte
	Product    *product.Product
	Questions  []product.Question
	FAQ        *page.FAQPage
	Page       *page.ProductPage
	Comparison *page.ComparisonPage

	Errors []string
	Log    []string
}

// NewState starts a run from raw input with empty error and log lists.
func NewState(raw []byte) State {
	return State{Raw: raw}
}

// withError returns a copy with the message appended to the error list.
func (s State) withError(msg string) State {
	s.Errors = append(slices.Clip(s.Errors), msg)
	return s
}

// withLog returns a copy with the entry appended to the execution log.
func (s State) withLog(entry string) State {
	s.Log = append(slices.Clip(s.Log), entry)
	return s
}

// Report names the required state fields missing after a run. The check is
// advisory; it never triggers retries.
type Report struct {
	Complete bool     `json:"complete"`
	Missing  []string `json:"missing,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Log      []string `json:"execution_log,omitempty"`
}

// Validate checks the five fields a complete run must populate.
func Validate(s State) Report {
	var missing []string
	if s.Product == nil {
		missing = append(missing, "product")
	}
	if s.Questions == nil {
		missing = append(missing, "questions")
	}
	if s.FAQ == nil {
		missing = append(missing, "faq_page")
	}
	if s.Page == nil {
		missing = append(missing, "product_page")
	}
	if s.Comparison == nil {
		missing = append(missing, "comparison_page")
	}
	return Report{
		Complete: len(missing) == 0,
		Missing:  missing,
		Errors:   s.Errors,
		Log:      s.Log,
	}
}
