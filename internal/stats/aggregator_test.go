package stats

import (
	"testing"

	"github.com/catalogops/product-report/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestAggregator_Aggregate_Empty(t *testing.T) {
	aggregator := NewAggregator()

	result := aggregator.Aggregate([]models.Record{})

	assert.Zero(t, result.TotalValue)
	assert.Zero(t, result.AvgPrice)
	assert.Empty(t, result.ByCategory)
}

func TestAggregator_Aggregate(t *testing.T) {
	aggregator := NewAggregator()
	records := []models.Record{
		{ID: 1, Category: models.CategoryElectronics, FinalPrice: 90.00, Quantity: 2, TotalValue: 180.00},
		{ID: 2, Category: models.CategoryBooks, FinalPrice: 20.00, Quantity: 1, TotalValue: 20.00},
		{ID: 3, Category: models.CategoryElectronics, FinalPrice: 10.00, Quantity: 3, TotalValue: 30.00},
	}

	result := aggregator.Aggregate(records)

	assert.InDelta(t, 230.00, result.TotalValue, 1e-9)
	assert.InDelta(t, 40.00, result.AvgPrice, 1e-9)

	// First-seen category order, absent categories never appear.
	assert.Len(t, result.ByCategory, 2)
	assert.Equal(t, models.CategoryElectronics, result.ByCategory[0].Category)
	assert.Equal(t, 2, result.ByCategory[0].Count)
	assert.InDelta(t, 210.00, result.ByCategory[0].Value, 1e-9)
	assert.Equal(t, models.CategoryBooks, result.ByCategory[1].Category)
	assert.Equal(t, 1, result.ByCategory[1].Count)
	assert.InDelta(t, 20.00, result.ByCategory[1].Value, 1e-9)
}

func TestAggregator_Aggregate_CategoryValuesSumToTotal(t *testing.T) {
	aggregator := NewAggregator()
	records := []models.Record{
		{ID: 1, Category: models.CategoryFood, FinalPrice: 5.50, Quantity: 4, TotalValue: 22.00},
		{ID: 2, Category: models.CategoryClothes, FinalPrice: 33.33, Quantity: 3, TotalValue: 99.99},
		{ID: 3, Category: models.CategoryFood, FinalPrice: 2.00, Quantity: 0, TotalValue: 0.00},
	}

	result := aggregator.Aggregate(records)

	var categorySum float64
	for _, category := range result.ByCategory {
		categorySum += category.Value
	}
	assert.InDelta(t, result.TotalValue, categorySum, 1e-9)
}

func TestAggregator_Aggregate_SingleRecord(t *testing.T) {
	aggregator := NewAggregator()
	records := []models.Record{
		{ID: 1, Category: models.CategoryBooks, FinalPrice: 15.00, Quantity: 2, TotalValue: 30.00},
	}

	result := aggregator.Aggregate(records)

	assert.InDelta(t, 30.00, result.TotalValue, 1e-9)
	assert.InDelta(t, 15.00, result.AvgPrice, 1e-9)
	assert.Len(t, result.ByCategory, 1)
}
