package auth

import (
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/validation"
)

var (
	// ErrInvalidCredentials is the only failure a login reports, whatever
	// went wrong underneath.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrRegistrationFailed is the only failure a registration reports.
	ErrRegistrationFailed = errors.New("registration failed")
)

// FormError is returned before any request when a form field is missing
// or inconsistent.
type FormError struct {
	Fields []validation.FieldError
}

func (e *FormError) Error() string {
	return validation.Describe(e.Fields)
}

//go:generate minimock -i authService -o ./mock/auth_service_mock.go -n AuthServiceMock -p mock
type authService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, password, confirmPassword string) error
}

//go:generate minimock -i sessionWriter -o ./mock/session_writer_mock.go -n SessionWriterMock -p mock
type sessionWriter interface {
	SetUsername(ctx context.Context, userID int64, username string) error
}

type Authenticator struct {
	service  authService
	sessions sessionWriter
}

func NewAuthenticator(service authService, sessions sessionWriter) *Authenticator {
	return &Authenticator{
		service:  service,
		sessions: sessions,
	}
}

// Login persists the username returned by the auth service, not the one
// typed in. The session is left untouched on any failure.
func (a *Authenticator) Login(ctx context.Context, userID int64, creds user.Credentials) (user.Session, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "login")
	defer span.Finish()

	if err := checkForm(creds); err != nil {
		return user.Session{}, err
	}

	username, err := a.service.Login(ctx, creds.Username, creds.Password)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Debug("login failed", zap.Int64("userID", userID), zap.Error(err))
		return user.Session{}, ErrInvalidCredentials
	}

	if err = a.sessions.SetUsername(ctx, userID, username); err != nil {
		ext.Error.Set(span, true)
		return user.Session{}, errors.Wrap(err, "login")
	}

	logger.Info("logged in", zap.Int64("userID", userID), zap.String("username", username))
	return user.Session{Username: username}, nil
}

func (a *Authenticator) Register(ctx context.Context, form user.Registration) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "register")
	defer span.Finish()

	if err := checkForm(form); err != nil {
		return err
	}

	err := a.service.Register(ctx, form.Username, form.Password, form.ConfirmPassword)
	if err != nil {
		ext.Error.Set(span, true)
		logger.Debug("registration failed", zap.String("username", form.Username), zap.Error(err))
		return ErrRegistrationFailed
	}
	return nil
}

func checkForm(form any) error {
	fields, err := validation.Struct(form)
	if err != nil {
		return err
	}
	if len(fields) > 0 {
		return &FormError{Fields: fields}
	}
	return nil
}
