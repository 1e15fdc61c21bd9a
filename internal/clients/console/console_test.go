package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/expense-tracker/internal/model/messages"
)

type echoHandler struct {
	client *Client
	got    []messages.Message
}

func (h *echoHandler) HandleIncomingMessage(_ context.Context, msg messages.Message) error {
	h.got = append(h.got, msg)
	return h.client.SendMessage("echo: "+msg.Text, msg.UserID)
}

func Test_ListenInput_ShouldHandleEveryLine(t *testing.T) {
	out := &bytes.Buffer{}
	client := New(strings.NewReader("/start\n\n/expenses\n"), out)
	handler := &echoHandler{client: client}

	require.NoError(t, client.ListenInput(context.Background(), handler))

	assert.Equal(t, []messages.Message{
		{Text: "/start", UserID: ProfileID},
		{Text: "/expenses", UserID: ProfileID},
	}, handler.got)
	assert.Equal(t, "> echo: /start\n> > echo: /expenses\n> ", out.String())
}
