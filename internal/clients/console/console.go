// Package console drives the message router from a terminal.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-tracker/internal/logger"
	"max.ks1230/expense-tracker/internal/model/messages"
)

// ProfileID identifies the single profile a terminal session acts for.
const ProfileID int64 = 0

const prompt = "> "

type incomingHandler interface {
	HandleIncomingMessage(ctx context.Context, msg messages.Message) error
}

type Client struct {
	in  io.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Client {
	return &Client{in: in, out: out}
}

func (c *Client) SendMessage(text string, _ int64) error {
	_, err := fmt.Fprintln(c.out, text)
	return errors.Wrap(err, "write message")
}

// ListenInput handles one line at a time until the input ends or ctx is done.
func (c *Client) ListenInput(ctx context.Context, msgModel incomingHandler) error {
	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(c.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	c.prompt()
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return errors.Wrap(err, "read input")
				default:
					return nil
				}
			}
			if strings.TrimSpace(line) != "" {
				err := msgModel.HandleIncomingMessage(ctx, messages.Message{Text: line, UserID: ProfileID})
				if err != nil {
					logger.Error("error processing message:", zap.Error(err))
				}
			}
			c.prompt()
		}
	}
}

func (c *Client) prompt() {
	_, _ = fmt.Fprint(c.out, prompt)
}
