package messages

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/messages/mock"
	"max.ks1230/expense-tracker/internal/model/validation"
)

const chatID int64 = 123

const coffeeView = "Total balance: 3.50 USD\n" +
	"Spent this month: 0.00 USD\n" +
	"\n" +
	"Expense | Amount | Category | Date\n" +
	"Coffee | 3.50 | Food | 02.01.2020"

func coffeeList() expense.List {
	return expense.List{
		Username: "alice",
		Expenses: []expense.Record{{
			Expense:  "Coffee",
			Amount:   3.5,
			Category: "Food",
			Date:     expense.Timestamp{Time: time.Date(2020, 1, 2, 10, 0, 0, 0, time.UTC)},
		}},
	}
}

type fixture struct {
	sender *mock.MessageSenderMock
	auth   *mock.AuthenticatorMock
	sync   *mock.ExpensesSyncerMock
	model  *Service
}

func newFixture(t *testing.T, m *minimock.Controller) fixture {
	cfg := mock.NewConfigMock(m)
	cfg.CurrencyMock.Return("USD")

	f := fixture{
		sender: mock.NewMessageSenderMock(m),
		auth:   mock.NewAuthenticatorMock(m),
		sync:   mock.NewExpensesSyncerMock(m),
	}
	model, err := NewService(f.sender, f.auth, f.sync, cfg)
	require.NoError(t, err)
	f.model = model
	return f
}

func (f fixture) send(text string) error {
	return f.sendFrom(chatID, text)
}

func (f fixture) sendFrom(userID int64, text string) error {
	return f.model.HandleIncomingMessage(context.Background(), Message{
		Text:   text,
		UserID: userID,
	})
}

func Test_OnStartCommand_ShouldAnswerWithIntroMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.sender.SendMessageMock.
		Expect(helloMessage, chatID).
		Return(nil)

	assert.NoError(t, f.send("/start"))
}

func Test_OnUnknownCommand_ShouldAnswerWithHelpMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.sender.SendMessageMock.
		Expect("I don't understand you :(", chatID).
		Return(nil)

	assert.NoError(t, f.send("/none"))
}

func Test_OnLogin_ShouldNavigateToExpenses(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.auth.LoginMock.
		Inspect(func(_ context.Context, userID int64, creds user.Credentials) {
			assert.Equal(t, chatID, userID)
			assert.Equal(t, user.Credentials{Username: "alice", Password: "secret"}, creds)
		}).
		Return(user.Session{Username: "alice"}, nil)
	f.sync.FetchAllMock.Return(coffeeList(), nil)
	f.sender.SendMessageMock.
		Expect("Welcome, alice!\n\n"+coffeeView, chatID).
		Return(nil)

	require.NoError(t, f.send("/login alice secret"))
	assert.Equal(t, uint64(1), f.sync.FetchAllAfterCounter())
}

func Test_OnLoginWithMissingPassword_ShouldShowUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.auth.LoginMock.Return(user.Session{}, &auth.FormError{
		Fields: []validation.FieldError{{Field: "password", Tag: "required"}},
	})
	f.sender.SendMessageMock.
		Expect("Usage: /login <username> <password>\npassword is required", chatID).
		Return(nil)

	require.NoError(t, f.send("/login alice"))
}

func Test_OnLoginFailure_ShouldShowGenericMessage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.auth.LoginMock.Return(user.Session{}, auth.ErrInvalidCredentials)
	f.sender.SendMessageMock.
		Expect("Invalid credentials. Please try again.", chatID).
		Return(nil)

	require.NoError(t, f.send("/login alice wrong"))
}

func Test_OnLoginInfrastructureError_ShouldApologize(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.auth.LoginMock.Return(user.Session{}, errors.New("memcached is down"))
	f.sender.SendMessageMock.
		Expect("Sorry, something wrong happened...", chatID).
		Return(nil)

	assert.Error(t, f.send("/login alice secret"))
}

func Test_OnRegister_ShouldPointToLogin(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.auth.RegisterMock.
		Inspect(func(_ context.Context, form user.Registration) {
			assert.Equal(t, user.Registration{Username: "bob", Password: "pw", ConfirmPassword: "pw"}, form)
		}).
		Return(nil)
	f.sender.SendMessageMock.
		Expect("Account created! Now log in with /login <username> <password>", chatID).
		Return(nil)

	assert.NoError(t, f.send("/register bob pw pw"))
}

func Test_OnExpensesWithoutSession_ShouldShowError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.sync.FetchAllMock.Return(expense.List{}, expenses.ErrSessionMissing)
	f.sender.SendMessageMock.
		Expect("Error: username not found in session", chatID).
		Return(nil)

	assert.NoError(t, f.send("/expenses"))
}

func Test_OnAdd_ShouldShowRefreshedList(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.sync.FetchAllMock.Return(coffeeList(), nil)
	f.sync.AddExpenseMock.Set(func(_ context.Context, _ int64, draft *expense.Draft) (expense.List, error) {
		assert.Equal(t, expense.Draft{Expense: "Book", Amount: "19.99", Category: "Leisure"}, *draft)
		draft.Reset()
		list := coffeeList()
		list.Expenses = append(list.Expenses, expense.Record{Expense: "Book", Amount: 19.99, Category: "Leisure"})
		return list, nil
	})
	f.sender.SendMessageMock.When(coffeeView, chatID).Then(nil)
	f.sender.SendMessageMock.When("Total balance: 23.49 USD\n"+
		"Spent this month: 0.00 USD\n"+
		"\n"+
		"Expense | Amount | Category | Date\n"+
		"Coffee | 3.50 | Food | 02.01.2020\n"+
		"Book | 19.99 | Leisure | -", chatID).Then(nil)

	require.NoError(t, f.send("/expenses"))
	require.NoError(t, f.send("/add Book 19.99 Leisure"))
	assert.Equal(t, uint64(1), f.sync.FetchAllAfterCounter())
	assert.Equal(t, uint64(1), f.sync.AddExpenseAfterCounter())
}

func Test_OnAddFailure_ShouldKeepFormAndShowReason(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.sync.FetchAllMock.Return(coffeeList(), nil)
	f.sync.AddExpenseMock.Return(expense.List{}, &expenses.AddExpenseError{Reason: "category required"})
	f.sender.SendMessageMock.
		Expect("Total balance: 3.50 USD\n"+
			"Spent this month: 0.00 USD\n"+
			"\n"+
			"Failed to add new expense. Reason: category required\n"+
			"Draft: Book | 19.99 | Leisure\n"+
			"\n"+
			"Expense | Amount | Category | Date\n"+
			"Coffee | 3.50 | Food | 02.01.2020", chatID).
		Return(nil)

	require.NoError(t, f.send("/add Book 19.99 Leisure"))
	assert.Equal(t, uint64(1), f.sync.FetchAllAfterCounter(), "add without a mounted view mounts one first")
}

func Test_OnAddAfterViewEviction_ShouldMountAgain(t *testing.T) {
	defer func(limit int) { maxViews = limit }(maxViews)
	maxViews = 1

	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.sync.FetchAllMock.Return(coffeeList(), nil)
	f.sync.AddExpenseMock.Return(coffeeList(), nil)
	f.sender.SendMessageMock.Return(nil)

	require.NoError(t, f.sendFrom(chatID, "/expenses"))
	require.NoError(t, f.sendFrom(chatID+1, "/expenses"))
	require.NoError(t, f.sendFrom(chatID, "/add Book 19.99 Leisure"))

	assert.Equal(t, uint64(3), f.sync.FetchAllAfterCounter())
	assert.Equal(t, uint64(1), f.sync.AddExpenseAfterCounter())
}

func Test_OnReport_ShouldGroupFreshList(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	list := coffeeList()
	list.Expenses = append(list.Expenses,
		expense.Record{Expense: "Book", Amount: 19.99, Category: "Leisure"},
		expense.Record{Expense: "Tea", Amount: 2, Category: "Food"},
	)
	f.sync.FetchAllMock.Return(list, nil)
	f.sender.SendMessageMock.
		Expect("Spending (all time)\n"+
			"\n"+
			"Leisure: 19.99 USD\n"+
			"Food: 5.50 USD\n"+
			"\n"+
			"Total: 25.49 USD", chatID).
		Return(nil)

	require.NoError(t, f.send("/report"))
}

func Test_OnReportWithUnknownPeriod_ShouldShowUsage(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	f := newFixture(t, m)

	f.sender.SendMessageMock.
		Expect("Usage: /report [week|month|year]", chatID).
		Return(nil)

	require.NoError(t, f.send("/report decade"))
}

func Test_ParseDraft(t *testing.T) {
	cases := map[string]expense.Draft{
		"":                            {},
		"Book":                        {Expense: "Book"},
		"Book 19.99":                  {Expense: "Book", Amount: "19.99"},
		"Book 19.99 Leisure":          {Expense: "Book", Amount: "19.99", Category: "Leisure"},
		"Train ticket home 42 Travel": {Expense: "Train ticket home", Amount: "42", Category: "Travel"},
	}

	for arg, want := range cases {
		assert.Equal(t, want, parseDraft(arg), arg)
	}
}

func Test_ParseCommand(t *testing.T) {
	cmd, arg := parseCommand("  /add Book 19.99 Leisure ")
	assert.Equal(t, "/add", cmd)
	assert.Equal(t, "Book 19.99 Leisure", arg)

	cmd, arg = parseCommand("hello there")
	assert.Equal(t, "", cmd)
	assert.Equal(t, "hello there", arg)
}
