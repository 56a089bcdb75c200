package parser

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/catalogops/product-report/internal/models"
)

// Input line layout: id;name;category;price;quantity;discount;date
const (
	delimiter  = ";"
	fieldCount = 7
	dateLayout = "2006-01-02"
)

const (
	minNameLength   = 3
	maxNameLength   = 50
	maxDiscount     = 50.0
	foodMaxDiscount = 20.0
	minFinalPrice   = 1.0
)

// Validation failure reasons. Every rule fails with its own sentinel so
// callers can tell failures apart with errors.Is.
var (
	ErrFieldCount       = errors.New("wrong field count")
	ErrIDNotNumber      = errors.New("id is not a number")
	ErrIDNotPositive    = errors.New("id must be positive")
	ErrDuplicateID      = errors.New("id must be unique")
	ErrNameLength       = errors.New("invalid name length")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrPriceFormat      = errors.New("price has an invalid format")
	ErrPriceNotPositive = errors.New("price must be greater than zero")
	ErrQuantityFormat   = errors.New("quantity is not an integer")
	ErrQuantityNegative = errors.New("quantity cannot be negative")
	ErrDiscountFormat   = errors.New("discount has an invalid format")
	ErrDiscountRange    = errors.New("discount out of range 0-50")
	ErrFoodDiscount     = errors.New("discount too large for food")
	ErrDateFormat       = errors.New("invalid date format")
	ErrDateInFuture     = errors.New("date is in the future")
	ErrFinalPriceTooLow = errors.New("final price below 1")
)

var allowedCategories = map[string]bool{
	models.CategoryElectronics: true,
	models.CategoryFood:        true,
	models.CategoryBooks:       true,
	models.CategoryClothes:     true,
}

// RecordValidator parses raw product lines and applies the business rules in
// a fixed order, short-circuiting at the first failure.
type RecordValidator struct {
	now func() time.Time
}

func NewRecordValidator() *RecordValidator {
	return &RecordValidator{now: time.Now}
}

// ParseAndValidate turns one raw line into a Record or a failure reason.
// A successfully parsed id claims its slot in usedIDs immediately, even when
// a later field in the same line fails.
func (v *RecordValidator) ParseAndValidate(line string, usedIDs map[int]bool) (*models.Record, error) {
	parts := strings.Split(strings.TrimSpace(line), delimiter)
	if len(parts) != fieldCount {
		return nil, ErrFieldCount
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, ErrIDNotNumber
	}
	if id <= 0 {
		return nil, ErrIDNotPositive
	}
	if usedIDs[id] {
		return nil, ErrDuplicateID
	}
	usedIDs[id] = true

	name := strings.TrimSpace(parts[1])
	if nameLen := utf8.RuneCountInString(name); nameLen < minNameLength || nameLen > maxNameLength {
		return nil, ErrNameLength
	}

	category := strings.TrimSpace(parts[2])
	if !allowedCategories[category] {
		return nil, ErrUnknownCategory
	}

	price, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
	if err != nil {
		return nil, ErrPriceFormat
	}
	if price <= 0 {
		return nil, ErrPriceNotPositive
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		return nil, ErrQuantityFormat
	}
	if quantity < 0 {
		return nil, ErrQuantityNegative
	}

	discount, err := strconv.ParseFloat(strings.TrimSpace(parts[5]), 64)
	if err != nil {
		return nil, ErrDiscountFormat
	}
	if discount < 0 || discount > maxDiscount {
		return nil, ErrDiscountRange
	}

	if category == models.CategoryFood && discount > foodMaxDiscount {
		return nil, ErrFoodDiscount
	}

	createdAt, err := time.Parse(dateLayout, strings.TrimSpace(parts[6]))
	if err != nil {
		return nil, ErrDateFormat
	}
	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if createdAt.After(today) {
		return nil, ErrDateInFuture
	}

	finalPrice := round2(price * (1 - discount/100))
	if finalPrice < minFinalPrice {
		return nil, ErrFinalPriceTooLow
	}

	return &models.Record{
		ID:         id,
		Name:       name,
		Category:   category,
		FinalPrice: finalPrice,
		Quantity:   quantity,
		TotalValue: round2(finalPrice * float64(quantity)),
	}, nil
}

// round2 rounds half away from zero to two decimal places.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
