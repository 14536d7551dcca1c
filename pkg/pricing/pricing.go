// Package pricing derives the third member of the
// {original price, discounted price, discount percentage} triple from
// any two, keeping the admin product form's price fields mutually
// consistent.
package pricing

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrOriginalPriceRequired = errors.New("pricing: original price must be greater than zero")
	ErrNegativePrice         = errors.New("pricing: price must not be negative")
	ErrPercentageRange       = errors.New("pricing: percentage must be between 0 and 100")
	ErrDiscountExceedsPrice  = errors.New("pricing: discounted price exceeds original price")
)

// FromPercentage computes the discounted price for an original price
// and a discount percentage, rounded to two decimal places.
func FromPercentage(originalPrice float64, percentage int) (float64, error) {
	if originalPrice < 0 {
		return 0, ErrNegativePrice
	}
	if percentage < 0 || percentage > 100 {
		return 0, fmt.Errorf("%w: got %d", ErrPercentageRange, percentage)
	}
	return round2(originalPrice * (1 - float64(percentage)/100)), nil
}

// PercentageFrom computes the discount percentage implied by an
// original and a discounted price, rounded to the nearest integer.
// The original price must be strictly positive.
func PercentageFrom(originalPrice, discountedPrice float64) (int, error) {
	if originalPrice <= 0 {
		return 0, ErrOriginalPriceRequired
	}
	if discountedPrice < 0 {
		return 0, ErrNegativePrice
	}
	if discountedPrice > originalPrice {
		return 0, ErrDiscountExceedsPrice
	}
	pct := (originalPrice - discountedPrice) / originalPrice * 100
	return int(math.Round(pct)), nil
}

// Consistent reports whether the triple is mutually derivable within
// rounding tolerance: the discounted price recomputed from the
// percentage must match within one currency unit.
func Consistent(originalPrice, discountedPrice float64, percentage int) bool {
	want, err := FromPercentage(originalPrice, percentage)
	if err != nil {
		return false
	}
	return math.Abs(want-discountedPrice) <= 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
