package messages

import (
	"fmt"
	"strings"

	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	commandParts = 2
	dateLayout   = "02.01.2006"
	noDate       = "-"

	loadingMessage    = "Loading..."
	noExpensesMessage = "You have no expenses yet"
	tableHeader       = "Expense | Amount | Category | Date"
	allTimePeriod     = "all time"
)

func parseCommand(text string) (cmd, arg string) {
	text = strings.TrimSpace(text)
	split := strings.SplitN(text, " ", commandParts)

	if len(split) == commandParts && strings.HasPrefix(split[0], "/") {
		return split[0], split[1]
	}
	if strings.HasPrefix(text, "/") {
		return text, ""
	}
	return "", text
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

// parseDraft reads "<expense...> <amount> <category>". The label may span
// several words; missing trailing fields stay empty.
func parseDraft(arg string) expense.Draft {
	args := strings.Fields(arg)
	n := len(args)
	switch {
	case n == 0:
		return expense.Draft{}
	case n < 3:
		return expense.Draft{Expense: argAt(args, 0), Amount: argAt(args, 1)}
	default:
		return expense.Draft{
			Expense:  strings.Join(args[:n-2], " "),
			Amount:   args[n-2],
			Category: args[n-1],
		}
	}
}

func formatWelcome(username string) string {
	return fmt.Sprintf(loggedInMessage, username)
}

func renderView(v *expenses.View, currency string) string {
	switch st := v.State().(type) {
	case expenses.Ready:
		return renderReady(st, v.Draft(), currency)
	case expenses.Failed:
		return "Error: " + st.Err
	default:
		return loadingMessage
	}
}

func renderReady(st expenses.Ready, draft expense.Draft, currency string) string {
	res := []string{
		fmt.Sprintf("Total balance: %s %s", expense.FormatAmount(st.List.Balance()), currency),
		fmt.Sprintf("Spent this month: %s %s", expense.FormatAmount(st.List.SpentThisMonth()), currency),
	}
	if st.Err != "" {
		res = append(res, "", st.Err)
	}
	if !draft.IsEmpty() {
		res = append(res, fmt.Sprintf("Draft: %s | %s | %s", draft.Expense, draft.Amount, draft.Category))
	}

	res = append(res, "")
	if len(st.List.Expenses) == 0 {
		return strings.Join(append(res, noExpensesMessage), "\n")
	}
	res = append(res, tableHeader)
	for _, rec := range st.List.Expenses {
		res = append(res, fmt.Sprintf("%s | %s | %s | %s",
			rec.Expense, expense.FormatAmount(rec.Amount), rec.Category, formatDate(rec.Date)))
	}
	return strings.Join(res, "\n")
}

func formatDate(ts expense.Timestamp) string {
	if ts.IsZero() {
		return noDate
	}
	return ts.Format(dateLayout)
}

func renderReport(report reports.Report, currency string) string {
	period := report.Period
	if period == reports.PeriodAll {
		period = allTimePeriod
	}
	if len(report.Records) == 0 {
		return fmt.Sprintf("Spending (%s)\n\n%s", period, noExpensesMessage)
	}

	res := make([]string, 0, len(report.Records)+4)
	res = append(res, fmt.Sprintf("Spending (%s)", period), "")
	for _, rec := range report.Records {
		res = append(res, fmt.Sprintf("%s: %s %s", rec.Category, expense.FormatAmount(rec.Amount), currency))
	}
	res = append(res, "", fmt.Sprintf("Total: %s %s", expense.FormatAmount(report.Total), currency))
	return strings.Join(res, "\n")
}
