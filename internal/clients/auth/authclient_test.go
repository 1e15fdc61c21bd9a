package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/clients/rest"
)

type testConfig struct {
	url string
}

func (c testConfig) BaseURL() string        { return c.url }
func (c testConfig) Timeout() time.Duration { return 0 }

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := New(testConfig{url: srv.URL})
	require.NoError(t, err)
	return c
}

func Test_OnLogin_ShouldSendNullConfirmation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"username":"alice","password":"secret","confirmPassword":null}`, string(raw))

		_, _ = w.Write([]byte(`{"username":"Alice","email":"alice@example.com"}`))
	})

	username, err := client.Login(context.Background(), "alice", "secret")

	require.NoError(t, err)
	assert.Equal(t, "Alice", username)
}

func Test_OnLoginRejected_ShouldReturnAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"bad credentials"}`))
	})

	_, err := client.Login(context.Background(), "alice", "wrong")

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "bad credentials", apiErr.Message)
}

func Test_OnLoginMalformedResponse_ShouldFail(t *testing.T) {
	bodies := []string{``, `not json`, `{}`, `{"username":""}`}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(body))
			})

			_, err := client.Login(context.Background(), "alice", "secret")

			assert.Error(t, err)
		})
	}
}

func Test_OnRegister_ShouldSendConfirmation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/register", r.URL.Path)

		var req map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]any{
			"username":        "bob",
			"password":        "pw",
			"confirmPassword": "pw",
		}, req)

		w.WriteHeader(http.StatusCreated)
	})

	assert.NoError(t, client.Register(context.Background(), "bob", "pw", "pw"))
}

func Test_New_WithInvalidURL_ShouldFail(t *testing.T) {
	_, err := New(testConfig{url: ""})
	assert.Error(t, err)
}
