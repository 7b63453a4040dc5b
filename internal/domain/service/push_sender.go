package service

import "context"

// PushSender delivers store alerts to the owner's registered devices.
type PushSender interface {
	// SendAlert pushes one notification to a single device token
	SendAlert(ctx context.Context, token, title, body string, data map[string]string) error

	// SendAlertToAll pushes one notification to every token, returning the
	// tokens the provider reported as invalid or unregistered
	SendAlertToAll(ctx context.Context, tokens []string, title, body string, data map[string]string) (invalidTokens []string, err error)
}
