package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gabapcia/btcwatch/internal/pkg/resilience/retry"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransferSeenKey(t *testing.T) {
	assert.Equal(t, "transfer:seen:1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa", transferSeenKey("1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"))
}

// newTestClient connects to the server named by BTCWATCH_TEST_REDIS_ADDR and
// skips the test when it is not set.
func newTestClient(t *testing.T) *client {
	t.Helper()

	addr := os.Getenv("BTCWATCH_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("BTCWATCH_TEST_REDIS_ADDR not set")
	}

	c, err := NewClient(t.Context(), addr, "", "", 0, retry.New(
		retry.WithAttempts(2),
		retry.WithDelay(100*time.Millisecond),
	))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	return c
}

func TestClient_MarkSeen(t *testing.T) {
	t.Run("empty input does not touch redis", func(t *testing.T) {
		c := &client{}

		unseen, err := c.MarkSeen(t.Context(), "addr", nil)
		require.NoError(t, err)
		assert.NotNil(t, unseen)
		assert.Empty(t, unseen)
	})

	t.Run("reports each hash once per address", func(t *testing.T) {
		c := newTestClient(t)

		address := "test-" + uuid.NewString()
		t.Cleanup(func() { c.conn.Del(context.Background(), transferSeenKey(address)) })

		unseen, err := c.MarkSeen(t.Context(), address, []string{"h1", "h2", "h1"})
		require.NoError(t, err)
		assert.Equal(t, []string{"h1", "h2"}, unseen)

		unseen, err = c.MarkSeen(t.Context(), address, []string{"h2", "h3"})
		require.NoError(t, err)
		assert.Equal(t, []string{"h3"}, unseen)
	})
}
