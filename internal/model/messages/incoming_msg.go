package messages

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
)

const apologyMessage = "Sorry, something wrong happened..."

//go:generate minimock -i messageSender -o ./mock/message_sender_mock.go -n MessageSenderMock -p mock
type messageSender interface {
	SendMessage(text string, userID int64) error
}

type MessageHandler interface {
	HandleMessage(ctx context.Context, text string, userID int64) (string, error)
}

type Service struct {
	sender  messageSender
	handler MessageHandler
}

func NewService(sender messageSender, auth authenticator, sync expensesSyncer, config config) (*Service, error) {
	handler, err := newHandler(auth, sync, config)
	if err != nil {
		return nil, err
	}
	return &Service{
		sender:  sender,
		handler: handler,
	}, nil
}

type Message struct {
	Text   string
	UserID int64
}

func (s *Service) HandleIncomingMessage(ctx context.Context, msg Message) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "handleMessage")
	defer span.Finish()

	start := time.Now()
	err := s.handle(ctx, msg)
	elapsed := time.Since(start)

	observeResponse(elapsed, err != nil)
	if err != nil {
		ext.Error.Set(span, true)
	}
	return err
}

func (s *Service) handle(ctx context.Context, msg Message) error {
	resp, err := s.handler.HandleMessage(ctx, msg.Text, msg.UserID)
	if err != nil {
		_ = s.sender.SendMessage(apologyMessage, msg.UserID)
		return err
	}
	return s.sender.SendMessage(resp, msg.UserID)
}
