// Package notification sends push notifications through Firebase Cloud
// Messaging.
package notification

import (
	"context"

	"storehub/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// FCM allows at most this many tokens per multicast request.
const multicastTokenLimit = 500

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a PushSender backed by Firebase Cloud Messaging
func NewFirebaseSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

// SendAlert pushes one notification to a single device token
func (s *firebaseSender) SendAlert(ctx context.Context, token, title, body string, data map[string]string) error {
	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrap(err, "send notification")
	}

	return nil
}

// SendAlertToAll pushes one notification to every token
func (s *firebaseSender) SendAlertToAll(ctx context.Context, tokens []string, title, body string, data map[string]string) ([]string, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	if len(tokens) > multicastTokenLimit {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(tokens), multicastTokenLimit)
	}

	message := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "send multicast notification")
	}

	invalidTokens := make([]string, 0)
	for idx, sendResponse := range response.Responses {
		if sendResponse.Error == nil {
			continue
		}
		if messaging.IsInvalidArgument(sendResponse.Error) || messaging.IsUnregistered(sendResponse.Error) {
			invalidTokens = append(invalidTokens, tokens[idx])
		}
	}

	return invalidTokens, nil
}
