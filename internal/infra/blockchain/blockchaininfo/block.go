package blockchaininfo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gabapcia/btcwatch/internal/mixscan"
	"github.com/gabapcia/btcwatch/internal/pkg/fault"
)

// BlockResponse is the payload of /rawblock/{height}.
type BlockResponse struct {
	Hash   string                `json:"hash"`
	Height int64                 `json:"height"`
	Tx     []TransactionResponse `json:"tx"`
}

// toMixscanBlock converts the response, reporting a missing "tx" field as a schema fault.
func (b BlockResponse) toMixscanBlock() (mixscan.Block, error) {
	if b.Tx == nil {
		return mixscan.Block{}, fmt.Errorf("%w: block %s has no tx field", fault.ErrSchema, b.Hash)
	}

	transactions := make([]mixscan.Transaction, len(b.Tx))
	for i, t := range b.Tx {
		transactions[i] = t.toMixscanTransaction()
	}

	return mixscan.Block{
		Height:       b.Height,
		Hash:         b.Hash,
		Transactions: transactions,
	}, nil
}

// BlockByHeight implements mixscan.BlockSource.
func (c *client) BlockByHeight(ctx context.Context, height int64) (mixscan.Block, error) {
	var res BlockResponse
	if err := c.conn.Get(ctx, "/rawblock/"+strconv.FormatInt(height, 10), nil, &res); err != nil {
		return mixscan.Block{}, err
	}

	return res.toMixscanBlock()
}
