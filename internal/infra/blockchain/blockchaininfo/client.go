// Package blockchaininfo implements the addrwatch.Explorer and
// mixscan.BlockSource interfaces on top of the public blockchain.info JSON API.
package blockchaininfo

import (
	"github.com/gabapcia/btcwatch/internal/addrwatch"
	"github.com/gabapcia/btcwatch/internal/mixscan"
	"github.com/gabapcia/btcwatch/internal/pkg/transport/rest"
)

// DefaultBaseURL is the root of the public blockchain.info API.
const DefaultBaseURL = "https://blockchain.info"

// client talks to blockchain.info through a REST client.
type client struct {
	conn rest.Client // underlying REST client, already bound to the API base URL
}

// Ensure client implements the consumer interfaces at compile time.
var (
	_ addrwatch.Explorer  = (*client)(nil)
	_ mixscan.BlockSource = (*client)(nil)
)

// NewClient creates a blockchain.info client using the provided REST connection.
func NewClient(conn rest.Client) *client {
	return &client{
		conn: conn,
	}
}
