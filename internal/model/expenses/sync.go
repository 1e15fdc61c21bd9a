package expenses

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/expense"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/validation"
)

//go:generate minimock -i sessionReader -o ./mock/session_reader_mock.go -n SessionReaderMock -p mock
type sessionReader interface {
	Username(ctx context.Context, userID int64) (string, error)
}

//go:generate minimock -i expensesService -o ./mock/expenses_service_mock.go -n ExpensesServiceMock -p mock
type expensesService interface {
	GetAll(ctx context.Context, username string) (*expense.List, error)
	Add(ctx context.Context, username string, rec expense.NewRecord) error
}

// Sync keeps a client's view of its expenses equal to the server's. Local
// state is never merged: every successful fetch replaces it.
type Sync struct {
	sessions sessionReader
	service  expensesService
}

func NewSync(sessions sessionReader, service expensesService) *Sync {
	return &Sync{
		sessions: sessions,
		service:  service,
	}
}

func (s *Sync) username(ctx context.Context, userID int64) (string, error) {
	username, err := s.sessions.Username(ctx, userID)
	if err != nil {
		return "", errors.Wrap(err, "read session")
	}
	if username == "" {
		return "", ErrSessionMissing
	}
	return username, nil
}

// FetchAll loads the full expense list of the logged-in user.
func (s *Sync) FetchAll(ctx context.Context, userID int64) (expense.List, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fetchExpenses")
	defer span.Finish()

	list, err := s.fetchAll(ctx, userID)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return list, err
}

func (s *Sync) fetchAll(ctx context.Context, userID int64) (expense.List, error) {
	username, err := s.username(ctx, userID)
	if err != nil {
		return expense.List{}, err
	}

	list, err := s.service.GetAll(ctx, username)
	if err != nil {
		return expense.List{}, errors.Wrap(err, "fetch expenses")
	}
	if list == nil {
		return expense.List{}, ErrEmptyResponse
	}
	return *list, nil
}

// AddExpense submits draft and, once the service accepted it, clears the
// draft and refetches the full list. The returned list is only meaningful
// when err is nil.
func (s *Sync) AddExpense(ctx context.Context, userID int64, draft *expense.Draft) (expense.List, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "addExpense")
	defer span.Finish()

	fields, err := validation.Struct(draft)
	if err != nil {
		return expense.List{}, err
	}
	if len(fields) > 0 {
		return expense.List{}, &ValidationError{Fields: fields}
	}

	username, err := s.username(ctx, userID)
	if err != nil {
		return expense.List{}, err
	}

	err = s.service.Add(ctx, username, draft.Record())
	if err != nil {
		ext.Error.Set(span, true)
		addErr := newAddExpenseError(err)
		logger.Error("error adding expense",
			zap.Int64("userID", userID),
			zap.String("reason", addErr.Reason),
			zap.Error(err),
		)
		return expense.List{}, addErr
	}

	draft.Reset()

	list, err := s.FetchAll(ctx, userID)
	if err != nil {
		return expense.List{}, errors.Wrap(err, "refresh after add")
	}
	return list, nil
}
