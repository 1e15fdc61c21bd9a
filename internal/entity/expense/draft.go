package expense

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var leadingNumber = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// Draft is the unsubmitted add-expense form. Amount stays raw text until
// submission.
type Draft struct {
	Expense  string `validate:"required"`
	Amount   string `validate:"required"`
	Category string `validate:"required"`
}

func (d *Draft) Reset() {
	*d = Draft{}
}

func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// ParsedAmount reads the leading number of the amount text, so "19.99abc"
// is 19.99. Text without one is NaN; range is not checked.
func (d Draft) ParsedAmount() float64 {
	num := leadingNumber.FindString(strings.TrimSpace(d.Amount))
	if num == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil && !math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}

// NewRecord is what the client submits; the service assigns the date.
type NewRecord struct {
	Expense  string
	Amount   float64
	Category string
}

func (d Draft) Record() NewRecord {
	return NewRecord{
		Expense:  d.Expense,
		Amount:   d.ParsedAmount(),
		Category: d.Category,
	}
}
