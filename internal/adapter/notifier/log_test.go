package notifier

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-outreach/internal/core/domain"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewLogNotifier(slog.New(slog.NewTextHandler(&buf, nil)))

	p := domain.Prospect{ID: 3, Email: "a@example.com", City: "Leeds", Country: "UK"}
	require.NoError(t, n.Send(context.Background(), p, domain.MessageFollowUp))
	assert.Contains(t, buf.String(), "kind=follow_up")
	assert.Contains(t, buf.String(), "location=uk/leeds")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Send(ctx, p, domain.MessageInitial), context.Canceled)
}
