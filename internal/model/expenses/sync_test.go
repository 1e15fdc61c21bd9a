package expenses

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/clients/rest"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/expenses/mock"
)

const userID int64 = 123

func coffeeList() *expense.List {
	return &expense.List{
		Username: "alice",
		Expenses: []expense.Record{
			{
				Expense:  "Coffee",
				Amount:   3.5,
				Category: "Food",
				Date:     expense.Timestamp{Time: time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)},
			},
		},
	}
}

func bookDraft() expense.Draft {
	return expense.Draft{Expense: "Book", Amount: "19.99", Category: "Leisure"}
}

func loggedIn(t *testing.T, m minimock.Tester, username string) *mock.SessionReaderMock {
	return mock.NewSessionReaderMock(m).UsernameMock.
		Inspect(func(_ context.Context, id int64) {
			assert.Equal(t, userID, id)
		}).
		Return(username, nil)
}

// listsInOrder answers GetAll calls for alice with lists, one per call.
func listsInOrder(t *testing.T, lists ...*expense.List) func(context.Context, string) (*expense.List, error) {
	return func(_ context.Context, username string) (*expense.List, error) {
		assert.Equal(t, "alice", username)
		require.NotEmpty(t, lists, "unexpected GetAll call")
		res := lists[0]
		lists = lists[1:]
		return res, nil
	}
}

func Test_OnFetchAll_WithoutSession_ShouldNotCallService(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := mock.NewSessionReaderMock(m).UsernameMock.Return("", nil)
	service := mock.NewExpensesServiceMock(m)

	_, err := NewSync(sessions, service).FetchAll(context.Background(), userID)

	assert.ErrorIs(t, err, ErrSessionMissing)
}

func Test_OnFetchAll_WithBrokenSessionStore_ShouldWrapError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := mock.NewSessionReaderMock(m).UsernameMock.Return("", errors.New("redis is down"))
	service := mock.NewExpensesServiceMock(m)

	_, err := NewSync(sessions, service).FetchAll(context.Background(), userID)

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionMissing)
	assert.Equal(t, "redis is down", Message(err))
}

func Test_OnFetchAll_ShouldReturnServerList(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	service.GetAllMock.
		Inspect(func(_ context.Context, username string) {
			assert.Equal(t, "alice", username)
		}).
		Return(coffeeList(), nil)

	list, err := NewSync(sessions, service).FetchAll(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), service.GetAllAfterCounter())
	assert.Equal(t, "alice", list.Username)
	require.Len(t, list.Expenses, 1)
	assert.Equal(t, "3.50", expense.FormatAmount(list.Balance()))
}

func Test_OnFetchAll_WithEmptyBody_ShouldReturnEmptyResponse(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	service.GetAllMock.Return(nil, nil)

	_, err := NewSync(sessions, service).FetchAll(context.Background(), userID)

	assert.ErrorIs(t, err, ErrEmptyResponse)
	assert.Equal(t, "no data returned from server", Message(err))
}

func Test_OnFetchAll_WithServiceError_ShouldShowCause(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	service.GetAllMock.Return(nil, errors.Wrap(&rest.APIError{StatusCode: 404}, "get expenses"))

	_, err := NewSync(sessions, service).FetchAll(context.Background(), userID)

	require.Error(t, err)
	assert.Equal(t, "request failed with status code 404", Message(err))
}

func Test_OnAddExpense_WithEmptyField_ShouldNotCallService(t *testing.T) {
	drafts := map[string]expense.Draft{
		"expense":  {Amount: "1", Category: "Food"},
		"amount":   {Expense: "Coffee", Category: "Food"},
		"category": {Expense: "Coffee", Amount: "1"},
		"all":      {},
	}

	for name, draft := range drafts {
		draft := draft
		t.Run(name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			sessions := mock.NewSessionReaderMock(m)
			service := mock.NewExpensesServiceMock(m)

			_, err := NewSync(sessions, service).AddExpense(context.Background(), userID, &draft)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Fields)
			assert.Equal(t, "Please fill out all fields before adding a new expense.", Message(err))
		})
	}
}

func Test_OnAddExpense_WithoutSession_ShouldNotCallService(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := mock.NewSessionReaderMock(m).UsernameMock.Return("", nil)
	service := mock.NewExpensesServiceMock(m)
	draft := bookDraft()

	_, err := NewSync(sessions, service).AddExpense(context.Background(), userID, &draft)

	assert.ErrorIs(t, err, ErrSessionMissing)
	assert.Equal(t, "Book", draft.Expense)
}

func Test_OnAddExpense_ShouldRefetchOnceAndResetDraft(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)
	updated := coffeeList()
	updated.Expenses = append(updated.Expenses, expense.Record{Expense: "Book", Amount: 19.99, Category: "Leisure"})

	service.AddMock.
		Inspect(func(_ context.Context, username string, rec expense.NewRecord) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, expense.NewRecord{Expense: "Book", Amount: 19.99, Category: "Leisure"}, rec)
			assert.Zero(t, service.GetAllBeforeCounter(), "refetch happens after the add")
		}).
		Return(nil)
	service.GetAllMock.Return(updated, nil)
	draft := bookDraft()

	list, err := NewSync(sessions, service).AddExpense(context.Background(), userID, &draft)

	require.NoError(t, err)
	assert.Equal(t, uint64(1), service.AddAfterCounter())
	assert.Equal(t, uint64(1), service.GetAllAfterCounter())
	assert.Equal(t, expense.Draft{}, draft)
	assert.Len(t, list.Expenses, 2)
	assert.Equal(t, "23.49", expense.FormatAmount(list.Balance()))
}

func Test_OnAddExpense_WithServerMessage_ShouldPreferIt(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	service.AddMock.Return(errors.Wrap(&rest.APIError{StatusCode: 400, Message: "category required"}, "add expense"))
	draft := bookDraft()

	_, err := NewSync(sessions, service).AddExpense(context.Background(), userID, &draft)

	var addErr *AddExpenseError
	require.ErrorAs(t, err, &addErr)
	assert.Equal(t, "Failed to add new expense. Reason: category required", Message(err))
	assert.Equal(t, "Book", draft.Expense, "draft is kept after a failure")
}

func Test_OnAddExpense_ReasonFallbacks(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "status only",
			err:  errors.Wrap(&rest.APIError{StatusCode: 500}, "add expense"),
			want: "Failed to add new expense. Reason: request failed with status code 500",
		},
		{
			name: "network",
			err:  errors.Wrap(errors.New("connection refused"), "add expense"),
			want: "Failed to add new expense. Reason: connection refused",
		},
		{
			name: "no message",
			err:  errors.New(""),
			want: "Failed to add new expense. Reason: unknown error",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			sessions := loggedIn(t, m, "alice")
			service := mock.NewExpensesServiceMock(m)

			service.AddMock.Return(tc.err)
			draft := bookDraft()

			_, err := NewSync(sessions, service).AddExpense(context.Background(), userID, &draft)

			assert.Equal(t, tc.want, Message(err))
		})
	}
}

func Test_OnAddExpense_WithTextAmount_ShouldPassNaN(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	var sent []float64
	service.AddMock.
		Inspect(func(_ context.Context, _ string, rec expense.NewRecord) {
			sent = append(sent, rec.Amount)
		}).
		Return(nil)
	service.GetAllMock.Return(coffeeList(), nil)
	draft := expense.Draft{Expense: "Book", Amount: "lots", Category: "Leisure"}

	_, err := NewSync(sessions, service).AddExpense(context.Background(), userID, &draft)

	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.True(t, math.IsNaN(sent[0]))
}
