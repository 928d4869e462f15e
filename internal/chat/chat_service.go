package chat

import (
	"context"
	"fmt"
	"strings"

	chaterrors "go-payroll/internal/chat/errors"

	"go.uber.org/zap"
)

const systemContext = "You are a helpful AI assistant for an open-source payroll software designed for MSMEs. " +
	"The software automates payroll data management, generates legally compliant registers, " +
	"reports, and returns for labor regulations. Assist the user with their queries."

// Snapshot is the live database summary fed into the assistant prompt.
type Snapshot struct {
	Headcount           int64
	MonthlyPayrollTotal float64
}

type SnapshotSource interface {
	Snapshot(ctx context.Context) (Snapshot, error)
}

// SnapshotFunc adapts a plain function to SnapshotSource.
type SnapshotFunc func(ctx context.Context) (Snapshot, error)

func (f SnapshotFunc) Snapshot(ctx context.Context) (Snapshot, error) { return f(ctx) }

//go:generate mockgen -source=chat_service.go -destination=mock/chat_service_mock.go -package=mock
type Service interface {
	Ask(ctx context.Context, message string) (ChatResponse, error)
}

type service struct {
	client Client
	source SnapshotSource
	logger *zap.Logger
}

func NewService(client Client, source SnapshotSource) Service {
	return &service{
		client: client,
		source: source,
		logger: zap.L().Named("chat.service"),
	}
}

func (s *service) Ask(ctx context.Context, message string) (ChatResponse, error) {
	if strings.TrimSpace(message) == "" {
		return ChatResponse{}, chaterrors.ErrMessageRequired
	}

	reply, err := s.client.Complete(ctx, []Message{
		{Role: "system", Content: s.systemPrompt(ctx)},
		{Role: "user", Content: message},
	})
	if err != nil {
		return ChatResponse{}, err
	}

	return ChatResponse{Response: reply}, nil
}

// systemPrompt appends the live data snapshot when a source is wired. A
// failed read degrades to the static prompt rather than failing the chat.
func (s *service) systemPrompt(ctx context.Context) string {
	if s.source == nil {
		return systemContext
	}

	snap, err := s.source.Snapshot(ctx)
	if err != nil {
		s.logger.Warn("data snapshot unavailable", zap.Error(err))
		return systemContext
	}

	return systemContext + fmt.Sprintf(
		"\n\nCurrent data: %d employees on record; payroll generated this month totals Rs. %.2f.",
		snap.Headcount, snap.MonthlyPayrollTotal,
	)
}
