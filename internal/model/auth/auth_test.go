package auth

import (
	"context"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/entity/user"
	"max.ks1230/expense-tracker/internal/model/auth/mock"
)

const userID int64 = 42

func Test_OnLogin_ShouldPersistUsernameFromResponse(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	service := mock.NewAuthServiceMock(m)
	sessions := mock.NewSessionWriterMock(m)

	service.LoginMock.
		Inspect(func(_ context.Context, username, password string) {
			assert.Equal(t, "alice", username)
			assert.Equal(t, "secret", password)
		}).
		Return("Alice", nil)
	sessions.SetUsernameMock.
		Inspect(func(_ context.Context, id int64, username string) {
			assert.Equal(t, userID, id)
			assert.Equal(t, "Alice", username)
		}).
		Return(nil)

	session, err := NewAuthenticator(service, sessions).
		Login(context.Background(), userID, user.Credentials{Username: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, user.Session{Username: "Alice"}, session)
}

func Test_OnLoginFailure_ShouldNotTouchSession(t *testing.T) {
	failures := []error{
		errors.New("connection refused"),
		errors.New("request failed with status code 401"),
		errors.New("login response has no username"),
	}

	for _, failure := range failures {
		failure := failure
		t.Run(failure.Error(), func(t *testing.T) {
			m := minimock.NewController(t)
			defer m.Finish()
			service := mock.NewAuthServiceMock(m)
			sessions := mock.NewSessionWriterMock(m)

			service.LoginMock.Return("", failure)

			_, err := NewAuthenticator(service, sessions).
				Login(context.Background(), userID, user.Credentials{Username: "alice", Password: "wrong"})

			assert.Equal(t, ErrInvalidCredentials, err)
			assert.Zero(t, sessions.SetUsernameBeforeCounter())
		})
	}
}

func Test_OnLoginWithMissingField_ShouldNotCallService(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	service := mock.NewAuthServiceMock(m)
	sessions := mock.NewSessionWriterMock(m)

	_, err := NewAuthenticator(service, sessions).
		Login(context.Background(), userID, user.Credentials{Username: "alice"})

	var formErr *FormError
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "password is required", formErr.Error())
}

func Test_OnLoginWithBrokenSessionStore_ShouldReturnError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	service := mock.NewAuthServiceMock(m)
	sessions := mock.NewSessionWriterMock(m)

	service.LoginMock.Return("alice", nil)
	sessions.SetUsernameMock.Return(errors.New("memcached is down"))

	_, err := NewAuthenticator(service, sessions).
		Login(context.Background(), userID, user.Credentials{Username: "alice", Password: "secret"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func Test_OnRegister_ShouldSendConfirmation(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	service := mock.NewAuthServiceMock(m)
	sessions := mock.NewSessionWriterMock(m)

	service.RegisterMock.
		Inspect(func(_ context.Context, username, password, confirmPassword string) {
			assert.Equal(t, "bob", username)
			assert.Equal(t, "pw", password)
			assert.Equal(t, "pw", confirmPassword)
		}).
		Return(nil)

	err := NewAuthenticator(service, sessions).Register(context.Background(), user.Registration{
		Username:        "bob",
		Password:        "pw",
		ConfirmPassword: "pw",
	})

	require.NoError(t, err)
}

func Test_OnRegisterWithMismatchedPasswords_ShouldNotCallService(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	service := mock.NewAuthServiceMock(m)
	sessions := mock.NewSessionWriterMock(m)

	err := NewAuthenticator(service, sessions).Register(context.Background(), user.Registration{
		Username:        "bob",
		Password:        "pw",
		ConfirmPassword: "other",
	})

	var formErr *FormError
	require.ErrorAs(t, err, &formErr)
	assert.Equal(t, "confirm password does not match", formErr.Error())
}

func Test_OnRegisterFailure_ShouldReturnGenericError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	service := mock.NewAuthServiceMock(m)
	sessions := mock.NewSessionWriterMock(m)

	service.RegisterMock.Return(errors.New("request failed with status code 409"))

	err := NewAuthenticator(service, sessions).Register(context.Background(), user.Registration{
		Username:        "bob",
		Password:        "pw",
		ConfirmPassword: "pw",
	})

	assert.Equal(t, ErrRegistrationFailed, err)
}
