package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"mesa-outreach/internal/core/domain"
	"mesa-outreach/internal/core/port"
)

// StreamNotifier hands messages to a delivery service by appending them to
// a Redis stream. A successful XADD counts as delivered.
type StreamNotifier struct {
	rdb    *redis.Client
	stream string
	maxLen int64
}

var _ port.Notifier = (*StreamNotifier)(nil)

// NewStreamNotifier returns a notifier writing to stream. maxLen > 0 caps
// the stream length approximately.
func NewStreamNotifier(rdb *redis.Client, stream string, maxLen int64) *StreamNotifier {
	return &StreamNotifier{rdb: rdb, stream: stream, maxLen: maxLen}
}

// Send appends the message request to the stream.
func (n *StreamNotifier) Send(ctx context.Context, p domain.Prospect, kind domain.MessageKind) error {
	args := &redis.XAddArgs{
		Stream: n.stream,
		Values: map[string]any{
			"prospect_id": p.ID,
			"kind":        string(kind),
			"name":        p.Name,
			"email":       p.Email,
			"city":        p.City,
			"country":     p.Country,
			"category":    p.Category,
		},
	}
	if n.maxLen > 0 {
		args.MaxLen = n.maxLen
		args.Approx = true
	}
	if err := n.rdb.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("xadd %s: %w", n.stream, err)
	}
	return nil
}
