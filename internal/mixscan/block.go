package mixscan

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
)

// Party is one side of a transfer: the address of an input's spent output or
// of an output, with its value.
type Party struct {
	Address string         `json:"address"`
	Amount  btcutil.Amount `json:"amount"`
}

// Transaction is a confirmed transaction reduced to what the scanner inspects.
type Transaction struct {
	Hash    string
	Inputs  []Party
	Outputs []Party
}

// Block is a block reduced to its transactions.
type Block struct {
	Height       int64
	Hash         string
	Transactions []Transaction
}

// BlockSource fetches blocks by height.
type BlockSource interface {
	// BlockByHeight returns the block at height with its full transaction list.
	BlockByHeight(ctx context.Context, height int64) (Block, error)
}

// IsMixingCandidate reports whether tx looks like a CoinJoin: more than one
// input and more than one output. No amount or anonymity-set checks are made.
func IsMixingCandidate(tx Transaction) bool {
	return len(tx.Inputs) > 1 && len(tx.Outputs) > 1
}
