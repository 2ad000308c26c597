package redis

import (
	"context"
	"fmt"

	"github.com/gabapcia/btcwatch/internal/transferfeed"

	"github.com/redis/go-redis/v9"
)

// transferKeyPrefix is the namespace of every key written by the transfer feed.
const transferKeyPrefix = "transfer"

// transferSeenKey returns the key of the set holding the transaction hashes
// already reported for address.
//
// Format: "transfer:seen:{address}"
func transferSeenKey(address string) string {
	return fmt.Sprintf("%s:seen:%s", transferKeyPrefix, address)
}

// MarkSeen implements the transferfeed.SeenStorage interface using a Redis set per address.
//
// Every hash is added with its own SADD inside a single MULTI/EXEC pipeline;
// a reply of 1 means the hash was not a member yet. A hash repeated in the
// input is only reported for its first occurrence.
func (c *client) MarkSeen(ctx context.Context, address string, hashes []string) ([]string, error) {
	unseen := make([]string, 0, len(hashes))
	if len(hashes) == 0 {
		return unseen, nil
	}

	key := transferSeenKey(address)

	cmds := make([]*redis.IntCmd, len(hashes))
	if _, err := c.conn.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for i, hash := range hashes {
			cmds[i] = pipe.SAdd(ctx, key, hash)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	for i, cmd := range cmds {
		if cmd.Val() == 1 {
			unseen = append(unseen, hashes[i])
		}
	}

	return unseen, nil
}

// Compile-time assertion to ensure *client satisfies the transferfeed.SeenStorage interface
var _ transferfeed.SeenStorage = new(client)
