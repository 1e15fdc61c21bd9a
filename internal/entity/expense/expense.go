package expense

import (
	"math"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/shopspring/decimal"
)

const displayPlaces = 2

// Record is a single expense as owned by the expenses service.
type Record struct {
	Expense  string    `json:"expense"`
	Amount   float64   `json:"amount"`
	Category string    `json:"category"`
	Date     Timestamp `json:"date"`
}

// List is the authoritative state of one user's expenses. Every fetch
// replaces it as a whole.
type List struct {
	Username string   `json:"username"`
	Expenses []Record `json:"expenses"`
}

// Balance is the sum of all amounts at full precision.
func (l List) Balance() float64 {
	total := 0.0
	for _, rec := range l.Expenses {
		total += rec.Amount
	}
	return total
}

// SpentSince sums the amounts of records dated at or after from. Records
// without a date are skipped.
func (l List) SpentSince(from time.Time) float64 {
	total := 0.0
	for _, rec := range l.Expenses {
		if rec.Date.IsZero() || rec.Date.Before(from) {
			continue
		}
		total += rec.Amount
	}
	return total
}

// SpentThisMonth sums the amounts dated in the current calendar month.
func (l List) SpentThisMonth() float64 {
	return l.SpentSince(now.BeginningOfMonth())
}

// FormatAmount rounds v to two decimals for display.
func FormatAmount(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(displayPlaces)
}
