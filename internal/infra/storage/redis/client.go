// Package redis implements the storage ports of btcwatch on top of Redis.
package redis

import (
	"context"

	"github.com/gabapcia/btcwatch/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis and checks the connection with PING, retried
// through r so a server that is still starting does not abort the process.
func NewClient(ctx context.Context, addr, username, password string, db int, r retry.Retry) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := r.Execute(ctx, func() error {
		return conn.Ping(ctx).Err()
	}); err != nil {
		conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
