package stats

import "github.com/catalogops/product-report/internal/models"

// Aggregator reduces a run's valid records into summary statistics.
type Aggregator struct{}

func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate computes the total value, average final price and per-category
// counters. Categories appear in ByCategory in first-seen order; categories
// with no valid records never appear. Empty input yields zero statistics.
func (a *Aggregator) Aggregate(records []models.Record) models.Statistics {
	stats := models.Statistics{}
	if len(records) == 0 {
		return stats
	}

	var priceSum float64
	index := make(map[string]int)

	for _, record := range records {
		stats.TotalValue += record.TotalValue
		priceSum += record.FinalPrice

		i, seen := index[record.Category]
		if !seen {
			i = len(stats.ByCategory)
			index[record.Category] = i
			stats.ByCategory = append(stats.ByCategory, models.CategoryStats{Category: record.Category})
		}
		stats.ByCategory[i].Count++
		stats.ByCategory[i].Value += record.TotalValue
	}

	stats.AvgPrice = priceSum / float64(len(records))
	return stats
}
