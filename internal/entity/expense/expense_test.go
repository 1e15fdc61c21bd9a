package expense

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Balance_ShouldKeepFullPrecision(t *testing.T) {
	list := List{Expenses: []Record{
		{Amount: 0.1},
		{Amount: 0.2},
		{Amount: 3.333},
	}}

	assert.InDelta(t, 3.633, list.Balance(), 1e-9)
	assert.Equal(t, "3.63", FormatAmount(list.Balance()))
}

func Test_FormatAmount(t *testing.T) {
	cases := map[float64]string{
		0:      "0.00",
		3.5:    "3.50",
		19.99:  "19.99",
		-12.5:  "-12.50",
		2.675:  "2.68",
		1000.1: "1000.10",
	}

	for in, want := range cases {
		assert.Equal(t, want, FormatAmount(in), in)
	}
	assert.Equal(t, "NaN", FormatAmount(math.NaN()))
}

func Test_SpentSince_ShouldSkipOlderAndUndated(t *testing.T) {
	from := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	list := List{Expenses: []Record{
		{Amount: 1, Date: Timestamp{Time: from.AddDate(0, 0, -1)}},
		{Amount: 2, Date: Timestamp{Time: from}},
		{Amount: 4, Date: Timestamp{Time: from.AddDate(0, 0, 5)}},
		{Amount: 8},
	}}

	assert.Equal(t, 6.0, list.SpentSince(from))
}

func Test_DecodeList(t *testing.T) {
	raw := `{"username":"alice","expenses":[
		{"expense":"Coffee","amount":3.5,"category":"Food","date":"2026-10-01T09:30:00Z"},
		{"expense":"Book","amount":19.99,"category":"Leisure","date":"2026-10-02T12:00:00.123"},
		{"expense":"Rent","amount":900,"category":"Home","date":"2026-10-03"},
		{"expense":"Bus","amount":2,"category":"Travel","date":1790000000000},
		{"expense":"Gift","amount":10,"category":"Other","date":null}
	]}`

	var list List
	require.NoError(t, json.Unmarshal([]byte(raw), &list))

	require.Len(t, list.Expenses, 5)
	assert.Equal(t, "alice", list.Username)
	assert.Equal(t, time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC), list.Expenses[0].Date.UTC())
	assert.Equal(t, time.Date(2026, 10, 2, 12, 0, 0, 123000000, time.UTC), list.Expenses[1].Date.Time)
	assert.Equal(t, time.Date(2026, 10, 3, 0, 0, 0, 0, time.UTC), list.Expenses[2].Date.Time)
	assert.Equal(t, time.UnixMilli(1790000000000).UTC(), list.Expenses[3].Date.Time)
	assert.True(t, list.Expenses[4].Date.IsZero())
}

func Test_DecodeList_WithOddDates_ShouldKeepRecords(t *testing.T) {
	raw := `{"username":"alice","expenses":[
		{"expense":"Coffee","amount":3.5,"category":"Food","date":"2026-10-01T09:30:00+0000"},
		{"expense":"Tea","amount":2,"category":"Food","date":"yesterday"},
		{"expense":"Bus","amount":2,"category":"Travel","date":1790000000.123},
		{"expense":"Gift","amount":10,"category":"Other","date":[2026,10,1,9,30]},
		{"expense":"Cake","amount":4,"category":"Food","date":{"day":1}}
	]}`

	var list List
	require.NoError(t, json.Unmarshal([]byte(raw), &list))

	require.Len(t, list.Expenses, 5)
	assert.Equal(t, time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC), list.Expenses[0].Date.UTC())
	assert.True(t, list.Expenses[1].Date.IsZero())
	assert.Equal(t, time.UnixMilli(1790000000).UTC(), list.Expenses[2].Date.Time)
	assert.True(t, list.Expenses[3].Date.IsZero())
	assert.True(t, list.Expenses[4].Date.IsZero())
	assert.Equal(t, "21.50", FormatAmount(list.Balance()))
}

func Test_Draft(t *testing.T) {
	d := Draft{Expense: "Book", Amount: " 19.99 ", Category: "Leisure"}
	assert.Equal(t, NewRecord{Expense: "Book", Amount: 19.99, Category: "Leisure"}, d.Record())

	d.Amount = "-5"
	assert.Equal(t, -5.0, d.ParsedAmount())

	d.Amount = "abc"
	assert.True(t, math.IsNaN(d.ParsedAmount()))
}

func Test_ParsedAmount_ShouldReadLeadingNumber(t *testing.T) {
	cases := map[string]float64{
		"19.99abc": 19.99,
		" 42 USD":  42,
		".5":       0.5,
		"1e3x":     1000,
		"7e":       7,
		"-3.25.1":  -3.25,
	}

	for in, want := range cases {
		d := Draft{Amount: in}
		assert.Equal(t, want, d.ParsedAmount(), in)
	}

	d := Draft{Amount: "Infinity"}
	assert.True(t, math.IsInf(d.ParsedAmount(), 1))
	d.Amount = "1e999"
	assert.True(t, math.IsInf(d.ParsedAmount(), 1))
	d.Amount = "$5"
	assert.True(t, math.IsNaN(d.ParsedAmount()))
}

func Test_Draft_Reset(t *testing.T) {
	d := Draft{Expense: "Book", Amount: "19.99", Category: "Leisure"}

	d.Reset()
	assert.True(t, d.IsEmpty())
}
