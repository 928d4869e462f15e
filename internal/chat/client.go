package chat

import "context"

// Message is a single turn in a completion request.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the completion backend. The production implementation talks to
// the Sarvam API; tests substitute a canned one.
//
//go:generate mockgen -source=client.go -destination=mock/client_mock.go -package=mock
type Client interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}
