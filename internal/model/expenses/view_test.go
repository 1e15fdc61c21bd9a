package expenses

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/clients/rest"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/model/expenses/mock"
)

func fillBook(d *expense.Draft) {
	*d = bookDraft()
}

func Test_OnMount_ShouldBecomeReady(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	service.GetAllMock.Return(coffeeList(), nil)

	view := NewView(NewSync(sessions, service), userID)
	assert.IsType(t, Loading{}, view.State())

	state := view.Mount(context.Background())

	ready, ok := state.(Ready)
	require.True(t, ok)
	assert.Empty(t, ready.Err)
	assert.Equal(t, "alice", ready.List.Username)
}

func Test_OnMountWithoutSession_ShouldFailForGood(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := mock.NewSessionReaderMock(m).UsernameMock.Return("", nil)
	service := mock.NewExpensesServiceMock(m)

	view := NewView(NewSync(sessions, service), userID)
	state := view.Mount(context.Background())

	assert.Equal(t, Failed{Err: "username not found in session"}, state)
	assert.Equal(t, state, view.Mount(context.Background()))
	assert.Equal(t, state, view.Add(context.Background(), fillBook))
	assert.Equal(t, uint64(1), sessions.UsernameAfterCounter())
}

func Test_OnAdd_ShouldReplaceListAndClearDraft(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)
	updated := coffeeList()
	updated.Expenses = append(updated.Expenses, expense.Record{Expense: "Book", Amount: 19.99, Category: "Leisure"})

	service.GetAllMock.Set(listsInOrder(t, coffeeList(), updated))
	service.AddMock.Return(nil)

	view := NewView(NewSync(sessions, service), userID)
	view.Mount(context.Background())
	state := view.Add(context.Background(), fillBook)

	assert.Equal(t, Ready{List: *updated}, state)
	assert.Equal(t, expense.Draft{}, view.Draft())
	assert.Equal(t, uint64(2), service.GetAllAfterCounter())
}

func Test_OnAddFailure_ShouldKeepListDraftAndShowErrorInline(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	service.GetAllMock.Return(coffeeList(), nil)
	service.AddMock.Return(errors.Wrap(&rest.APIError{StatusCode: 400, Message: "category required"}, "add expense"))

	view := NewView(NewSync(sessions, service), userID)
	view.Mount(context.Background())
	state := view.Add(context.Background(), fillBook)

	assert.Equal(t, Ready{
		List: *coffeeList(),
		Err:  "Failed to add new expense. Reason: category required",
	}, state)
	assert.Equal(t, bookDraft(), view.Draft())
	assert.Equal(t, uint64(1), service.GetAllAfterCounter(), "no refetch after a rejected add")
}

func Test_OnAdd_WithRefreshFailure_ShouldKeepListAndClearDraft(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	fetched := false
	service.GetAllMock.Set(func(_ context.Context, _ string) (*expense.List, error) {
		if fetched {
			return nil, errors.Wrap(&rest.APIError{StatusCode: 503, Message: "service unavailable"}, "get expenses")
		}
		fetched = true
		return coffeeList(), nil
	})
	service.AddMock.Return(nil)

	view := NewView(NewSync(sessions, service), userID)
	view.Mount(context.Background())
	state := view.Add(context.Background(), fillBook)

	assert.Equal(t, Ready{
		List: *coffeeList(),
		Err:  "service unavailable",
	}, state)
	assert.Equal(t, expense.Draft{}, view.Draft())
	assert.Equal(t, uint64(1), service.AddAfterCounter())
	assert.Equal(t, uint64(2), service.GetAllAfterCounter())
}

func Test_OnAddWithoutEdit_ShouldResubmitRetainedDraft(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	sessions := loggedIn(t, m, "alice")
	service := mock.NewExpensesServiceMock(m)

	var submitted []expense.NewRecord
	service.AddMock.Set(func(_ context.Context, _ string, rec expense.NewRecord) error {
		submitted = append(submitted, rec)
		if len(submitted) == 1 {
			return errors.New("connection refused")
		}
		return nil
	})
	service.GetAllMock.Return(coffeeList(), nil)

	view := NewView(NewSync(sessions, service), userID)
	view.Mount(context.Background())

	state := view.Add(context.Background(), fillBook)
	assert.Equal(t, "Failed to add new expense. Reason: connection refused", state.(Ready).Err)

	state = view.Add(context.Background(), nil)

	assert.Empty(t, state.(Ready).Err)
	assert.Equal(t, expense.Draft{}, view.Draft())
	require.Len(t, submitted, 2)
	assert.Equal(t, submitted[0], submitted[1])
	assert.Equal(t, uint64(2), service.GetAllAfterCounter())
}
