package expenses

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
	"max.ks1230/expense-tracker/internal/clients/rest"
	"max.ks1230/expense-tracker/internal/entity/expense"
)

const (
	serviceName = "expenses"

	expenseParam  = "expense"
	amountParam   = "amount"
	categoryParam = "category"
)

type Client struct {
	rest *rest.Client
}

func New(cfg rest.Config) (*Client, error) {
	c, err := rest.New(serviceName, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "cannot init expenses client")
	}
	return &Client{c}, nil
}

func userPath(username string) string {
	return "/expenses/" + url.PathEscape(username)
}

// GetAll returns nil without an error when the service answered with an
// empty body.
func (c *Client) GetAll(ctx context.Context, username string) (*expense.List, error) {
	body, err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodGet,
		Path:   userPath(username) + "/all",
	})
	if err != nil {
		return nil, errors.Wrap(err, "get expenses")
	}
	if rest.IsEmpty(body) {
		return nil, nil
	}

	var list expense.List
	if err = json.Unmarshal(body, &list); err != nil {
		return nil, errors.Wrap(err, "unmarshalling expenses")
	}
	if list.Expenses == nil {
		list.Expenses = []expense.Record{}
	}
	return &list, nil
}

// Add submits rec as query parameters with an empty body. The response body
// is not used.
func (c *Client) Add(ctx context.Context, username string, rec expense.NewRecord) error {
	q := url.Values{}
	q.Set(expenseParam, rec.Expense)
	q.Set(amountParam, strconv.FormatFloat(rec.Amount, 'f', -1, 64))
	q.Set(categoryParam, rec.Category)

	_, err := c.rest.Do(ctx, rest.Request{
		Method: http.MethodPost,
		Path:   userPath(username),
		Query:  q,
	})
	return errors.Wrap(err, "add expense")
}
