package messages

import (
	"context"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/auth"
	"max.ks1230/expense-tracker/internal/model/expenses"
	"max.ks1230/expense-tracker/internal/model/reports"
)

const (
	dontUnderstandMessage = "I don't understand you :("
	helloMessage          = "Hello! I am your expense tracker 🧾\n\n" +
		"/login <username> <password> - sign in\n" +
		"/register <username> <password> <confirm password> - create an account\n" +
		"/expenses - show your expenses and balance\n" +
		"/add <expense> <amount> <category> - add an expense (/add alone retries the last draft)\n" +
		"/report [week|month|year] - spending by category"
	noCommandMessage = "Send /start to see what I can do"

	loginUsageMessage         = "Usage: /login <username> <password>"
	registerUsageMessage      = "Usage: /register <username> <password> <confirm password>"
	invalidCredentialsMessage = "Invalid credentials. Please try again."
	registrationFailedMessage = "Registration failed. Please try again."
	registeredMessage         = "Account created! Now log in with /login <username> <password>"
	loggedInMessage           = "Welcome, %s!"
)

const (
	startCommand    = "/start"
	loginCommand    = "/login"
	registerCommand = "/register"
	expensesCommand = "/expenses"
	addCommand      = "/add"
	reportCommand   = "/report"
)

//go:generate minimock -i authenticator -o ./mock/authenticator_mock.go -n AuthenticatorMock -p mock
type authenticator interface {
	Login(ctx context.Context, userID int64, creds user.Credentials) (user.Session, error)
	Register(ctx context.Context, form user.Registration) error
}

//go:generate minimock -i expensesSyncer -o ./mock/expenses_syncer_mock.go -n ExpensesSyncerMock -p mock
type expensesSyncer interface {
	FetchAll(ctx context.Context, userID int64) (expense.List, error)
	AddExpense(ctx context.Context, userID int64, draft *expense.Draft) (expense.List, error)
}

//go:generate minimock -i config -o ./mock/config_mock.go -n ConfigMock -p mock
type config interface {
	Currency() string
}

// maxViews bounds the mounted views kept in memory. An evicted profile gets a
// fresh mount on its next /add.
var maxViews = 10000

type handler func(ctx context.Context, arg string, userID int64) (string, error)

type handlerMap map[string]handler

// HandlerService routes commands to the login, register and expense views.
// Navigation has no guards: /expenses without a session shows the session
// error instead of redirecting to /login.
type HandlerService struct {
	handlersMap handlerMap
	auth        authenticator
	sync        expensesSyncer
	currency    string
	views       *lru.Cache[int64, *expenses.View]
}

func newHandler(auth authenticator, sync expensesSyncer, config config) (*HandlerService, error) {
	views, err := lru.New[int64, *expenses.View](maxViews)
	if err != nil {
		return nil, errors.Wrap(err, "create view cache")
	}

	res := &HandlerService{
		auth:     auth,
		sync:     sync,
		currency: config.Currency(),
		views:    views,
	}
	res.handlersMap = newMap(res)
	return res, nil
}

func (s *HandlerService) HandleMessage(ctx context.Context, text string, userID int64) (string, error) {
	cmd, arg := parseCommand(text)

	handler, ok := s.handlersMap[cmd]
	if ok {
		return handler(ctx, arg, userID)
	}
	return dontUnderstandMessage, nil
}

func newMap(s *HandlerService) handlerMap {
	m := make(handlerMap)
	m[startCommand] = s.handleStart
	m[loginCommand] = s.handleLogin
	m[registerCommand] = s.handleRegister
	m[expensesCommand] = s.handleExpenses
	m[addCommand] = s.handleAdd
	m[reportCommand] = s.handleReport

	m[""] = s.handleNoCommand

	return m
}

func (s *HandlerService) handleStart(_ context.Context, _ string, _ int64) (string, error) {
	return helloMessage, nil
}

func (s *HandlerService) handleNoCommand(_ context.Context, _ string, _ int64) (string, error) {
	return noCommandMessage, nil
}

func (s *HandlerService) handleLogin(ctx context.Context, arg string, userID int64) (string, error) {
	args := strings.Fields(arg)
	creds := user.Credentials{
		Username: argAt(args, 0),
		Password: argAt(args, 1),
	}

	session, err := s.auth.Login(ctx, userID, creds)
	var formErr *auth.FormError
	switch {
	case errors.As(err, &formErr):
		return loginUsageMessage + "\n" + formErr.Error(), nil
	case errors.Is(err, auth.ErrInvalidCredentials):
		return invalidCredentialsMessage, nil
	case err != nil:
		return "", errors.Wrap(err, "handle login")
	}

	view := s.mount(ctx, userID)
	return formatWelcome(session.Username) + "\n\n" + renderView(view, s.currency), nil
}

func (s *HandlerService) handleRegister(ctx context.Context, arg string, _ int64) (string, error) {
	args := strings.Fields(arg)
	form := user.Registration{
		Username:        argAt(args, 0),
		Password:        argAt(args, 1),
		ConfirmPassword: argAt(args, 2),
	}

	err := s.auth.Register(ctx, form)
	var formErr *auth.FormError
	switch {
	case errors.As(err, &formErr):
		return registerUsageMessage + "\n" + formErr.Error(), nil
	case errors.Is(err, auth.ErrRegistrationFailed):
		return registrationFailedMessage, nil
	case err != nil:
		return "", errors.Wrap(err, "handle register")
	}
	return registeredMessage, nil
}

func (s *HandlerService) handleExpenses(ctx context.Context, _ string, userID int64) (string, error) {
	view := s.mount(ctx, userID)
	return renderView(view, s.currency), nil
}

func (s *HandlerService) handleAdd(ctx context.Context, arg string, userID int64) (string, error) {
	view, ok := s.views.Get(userID)
	if !ok {
		view = s.mount(ctx, userID)
	}

	var edit func(d *expense.Draft)
	if strings.TrimSpace(arg) != "" {
		draft := parseDraft(arg)
		edit = func(d *expense.Draft) {
			*d = draft
		}
	}
	view.Add(ctx, edit)
	return renderView(view, s.currency), nil
}

// handleReport fetches the list afresh and groups it; it leaves the mounted
// expense view alone.
func (s *HandlerService) handleReport(ctx context.Context, arg string, userID int64) (string, error) {
	period := strings.TrimSpace(arg)
	if !reports.IsSupportedPeriod(period) {
		return reportUsageMessage, nil
	}

	list, err := s.sync.FetchAll(ctx, userID)
	if err != nil {
		return "Error: " + expenses.Message(err), nil
	}
	report, err := reports.Generate(list, period)
	if err != nil {
		return "", errors.Wrap(err, "handle report")
	}
	return renderReport(report, s.currency), nil
}

// mount replaces the profile's expense view with a freshly fetched one.
func (s *HandlerService) mount(ctx context.Context, userID int64) *expenses.View {
	view := expenses.NewView(s.sync, userID)
	s.views.Add(userID, view)

	view.Mount(ctx)
	return view
}
