package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/clients/rest"
)

const (
	serviceName  = "auth"
	loginPath    = "/users/login"
	registerPath = "/users/register"
)

// usersRequest is shared by login and registration; login always sends a
// null confirmPassword.
type usersRequest struct {
	Username        string  `json:"username"`
	Password        string  `json:"password"`
	ConfirmPassword *string `json:"confirmPassword"`
}

type userResponse struct {
	Username string `json:"username"`
}

type Client struct {
	rest *rest.Client
}

func New(cfg rest.Config) (*Client, error) {
	c, err := rest.New(serviceName, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "cannot init auth client")
	}
	return &Client{c}, nil
}

// Login returns the canonical username reported by the service.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body: usersRequest{
			Username: username,
			Password: password,
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "login")
	}

	var res userResponse
	if err = json.Unmarshal(body, &res); err != nil {
		return "", errors.Wrap(err, "unmarshalling login response")
	}
	if res.Username == "" {
		return "", errors.New("login response has no username")
	}
	return res.Username, nil
}

func (c *Client) Register(ctx context.Context, username, password, confirmPassword string) error {
	_, err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   registerPath,
		Body: usersRequest{
			Username:        username,
			Password:        password,
			ConfirmPassword: &confirmPassword,
		},
	})
	return errors.Wrap(err, "register")
}
