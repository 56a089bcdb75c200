package report

import (
	"fmt"
	"strings"

	"github.com/catalogops/product-report/internal/models"
)

const headerRule = 50

// Renderer formats one run's results into the fixed-structure text report.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the report document: counts, aggregates, per-category
// breakdown in first-seen order and the error listing in input order. All
// monetary values are formatted with exactly two decimal places.
func (rn *Renderer) Render(valid []models.Record, lineErrors []models.LineError, stats models.Statistics) string {
	var b strings.Builder

	fmt.Fprintln(&b, "DATA PROCESSING REPORT")
	fmt.Fprintln(&b, strings.Repeat("=", headerRule))
	fmt.Fprintf(&b, "Total records: %d\n", len(valid)+len(lineErrors))
	fmt.Fprintf(&b, "Valid records: %d\n", len(valid))
	fmt.Fprintf(&b, "Invalid records: %d\n", len(lineErrors))
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "Total value of goods: %.2f\n", stats.TotalValue)
	fmt.Fprintf(&b, "Average final price: %.2f\n", stats.AvgPrice)
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "CATEGORY STATISTICS:")
	for _, category := range stats.ByCategory {
		fmt.Fprintf(&b, "- %s: %d pcs, value %.2f\n", category.Category, category.Count, category.Value)
	}
	fmt.Fprintln(&b)

	fmt.Fprintln(&b, "ERRORS:")
	if len(lineErrors) == 0 {
		fmt.Fprintln(&b, "No errors found.")
	} else {
		for _, lineErr := range lineErrors {
			fmt.Fprintf(&b, "Line %d: %v\n", lineErr.Line, lineErr.Reason)
		}
	}

	return b.String()
}
