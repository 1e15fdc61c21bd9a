package expenses

import (
	"context"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/clients/rest"
	"max.ks1230/expense-tracker/internal/entity/expense"
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

	c, err := New(testConfig{url: srv.URL + "/"})
	require.NoError(t, err)
	return c
}

func Test_OnGetAll_ShouldDecodeList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/expenses/alice/all", r.URL.Path)
		_, _ = w.Write([]byte(`{"username":"alice","expenses":[
			{"expense":"Coffee","amount":3.5,"category":"Food","date":"2026-10-01T09:30:00Z"}
		]}`))
	})

	list, err := client.GetAll(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, "alice", list.Username)
	require.Len(t, list.Expenses, 1)
	assert.Equal(t, "Coffee", list.Expenses[0].Expense)
	assert.Equal(t, 3.5, list.Expenses[0].Amount)
	assert.Equal(t, "Food", list.Expenses[0].Category)
}

func Test_OnGetAll_WithOddDates_ShouldKeepList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"username":"alice","expenses":[
			{"expense":"Coffee","amount":3.5,"category":"Food","date":"2026-10-01T09:30:00+0000"},
			{"expense":"Bus","amount":2,"category":"Travel","date":[2026,10,1,9,30]}
		]}`))
	})

	list, err := client.GetAll(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, list)
	require.Len(t, list.Expenses, 2)
	assert.Equal(t, time.Date(2026, 10, 1, 9, 30, 0, 0, time.UTC), list.Expenses[0].Date.UTC())
	assert.True(t, list.Expenses[1].Date.IsZero())
}

func Test_OnGetAll_WithMissingFields_ShouldDefault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	list, err := client.GetAll(context.Background(), "alice")

	require.NoError(t, err)
	require.NotNil(t, list)
	assert.Equal(t, "", list.Username)
	assert.Equal(t, []expense.Record{}, list.Expenses)
}

func Test_OnGetAll_WithEmptyBody_ShouldReturnNil(t *testing.T) {
	for _, body := range []string{"", "null", "  \n"} {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		list, err := client.GetAll(context.Background(), "alice")

		require.NoError(t, err)
		assert.Nil(t, list, "body %q", body)
	}
}

func Test_OnGetAll_ShouldEscapeUsername(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/expenses/john%20doe%2Fx/all", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"username":"john doe/x","expenses":[]}`))
	})

	_, err := client.GetAll(context.Background(), "john doe/x")
	assert.NoError(t, err)
}

func Test_OnAdd_ShouldSendQueryWithEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/expenses/alice", r.URL.Path)
		assert.Equal(t, "Book", r.URL.Query().Get("expense"))
		assert.Equal(t, "19.99", r.URL.Query().Get("amount"))
		assert.Equal(t, "Leisure", r.URL.Query().Get("category"))

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.Empty(t, raw)

		_, _ = w.Write([]byte(`ignored`))
	})

	err := client.Add(context.Background(), "alice", expense.NewRecord{Expense: "Book", Amount: 19.99, Category: "Leisure"})
	assert.NoError(t, err)
}

func Test_OnAdd_WithNaN_ShouldPassItThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "NaN", r.URL.Query().Get("amount"))
	})

	err := client.Add(context.Background(), "alice", expense.NewRecord{Expense: "Book", Amount: math.NaN(), Category: "Leisure"})
	assert.NoError(t, err)
}

func Test_OnAddRejected_ShouldCarryServerMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"category required"}`))
	})

	err := client.Add(context.Background(), "alice", expense.NewRecord{Expense: "Book", Amount: 1})

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "category required", apiErr.Message)
}

func Test_OnAddRejected_WithoutBody_ShouldDescribeStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	err := client.Add(context.Background(), "alice", expense.NewRecord{Expense: "Book", Amount: 1, Category: "x"})

	var apiErr *rest.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status code 500", apiErr.Error())
}
