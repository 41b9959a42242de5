package notifier

import (
	"context"
	"log/slog"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// LogNotifier writes every message request to the log and reports it as
// delivered. It stands in for a real transport in development.
type LogNotifier struct {
	logger *slog.Logger
}

var _ port.Notifier = (*LogNotifier)(nil)

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.With(slog.String("component", "notifier"))}
}

func (n *LogNotifier) Send(ctx context.Context, p domain.Prospect, kind domain.MessageKind) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n.logger.Info("outreach message",
		slog.Int64("prospect_id", p.ID),
		slog.String("kind", string(kind)),
		slog.String("email", p.Email),
		slog.String("location", p.Location().Key()))
	return nil
}
