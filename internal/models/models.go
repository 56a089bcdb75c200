package models

import "fmt"

// Product categories accepted by the validator.
const (
	CategoryElectronics = "electronics"
	CategoryFood        = "food"
	CategoryBooks       = "books"
	CategoryClothes     = "clothes"
)

// Record is one fully parsed and validated product line. Records are
// immutable after validation; FinalPrice and TotalValue are already rounded
// to two decimal places.
type Record struct {
	ID         int
	Name       string
	Category   string
	FinalPrice float64
	Quantity   int
	TotalValue float64
}

// LineError ties a validation failure to the input line that produced it.
type LineError struct {
	Line   int
	Reason error
}

func (e LineError) Error() string {
	return fmt.Sprintf("Line %d: %v", e.Line, e.Reason)
}

func (e LineError) Unwrap() error {
	return e.Reason
}

// CategoryStats accumulates per-category counters over the valid-record set.
type CategoryStats struct {
	Category string
	Count    int
	Value    float64
}

// Statistics is derived from the valid records once per run. ByCategory
// keeps first-seen category order so report output is deterministic.
type Statistics struct {
	TotalValue float64
	AvgPrice   float64
	ByCategory []CategoryStats
}
