package reports

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	PeriodAll   = ""
	PeriodWeek  = "week"
	PeriodMonth = "month"
	PeriodYear  = "year"
)

var reportFilters = map[string]func() time.Time{
	PeriodAll:   func() time.Time { return time.Time{} },
	PeriodWeek:  now.BeginningOfWeek,
	PeriodMonth: now.BeginningOfMonth,
	PeriodYear:  now.BeginningOfYear,
}

// Record is the spending of one category.
type Record struct {
	Category string
	Amount   float64
}

// Report groups a fetched expense list by category, largest first.
type Report struct {
	Period  string
	Records []Record
	Total   float64
}

// Generate builds the report for period from list. Undated records only
// count towards the all-time report.
func Generate(list expense.List, period string) (Report, error) {
	filter, ok := reportFilters[period]
	if !ok {
		return Report{}, errors.Errorf("report period %s is not supported", period)
	}

	expenses := list.Expenses
	if period != PeriodAll {
		expenses = filterExpensesSince(expenses, filter())
	}

	report := groupExpenses(expenses)
	report.Period = period
	return report, nil
}

func filterExpensesSince(exps []expense.Record, since time.Time) []expense.Record {
	res := make([]expense.Record, 0, len(exps))
	for _, exp := range exps {
		if exp.Date.IsZero() || exp.Date.Before(since) {
			continue
		}
		res = append(res, exp)
	}
	return res
}

func groupExpenses(exps []expense.Record) Report {
	m := make(map[string]float64)
	for _, exp := range exps {
		m[exp.Category] += exp.Amount
	}
	records := make([]Record, 0, len(m))
	total := 0.0
	for cat, am := range m {
		records = append(records, Record{Category: cat, Amount: am})
		total += am
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Amount == records[j].Amount {
			return records[i].Category < records[j].Category
		}
		return records[i].Amount > records[j].Amount
	})
	return Report{
		Records: records,
		Total:   total,
	}
}

func IsSupportedPeriod(period string) bool {
	_, ok := reportFilters[period]
	return ok
}
