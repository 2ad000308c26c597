package addrwatch

import (
	"context"

	"github.com/btcsuite/btcd/btcutil"
)

// Input is a transaction input, described by the previous output it spends.
type Input struct {
	Address string         // address of the spent output, empty when the payload omits it
	Amount  btcutil.Amount // value of the spent output
}

// Output is a transaction output.
type Output struct {
	Address string         // destination address, empty for outputs without one (e.g. OP_RETURN)
	Amount  btcutil.Amount // value assigned to the output
}

// Transaction is a transaction as observed through the Explorer.
//
// Inputs and Outputs are nil when the payload omitted the field entirely, and
// empty (non-nil) when the field was present with no elements.
type Transaction struct {
	Hash    string
	Inputs  []Input
	Outputs []Output
}

// Transfer is a normalized (from, to, amount) triple extracted from the first
// input and first output of a transaction.
type Transfer struct {
	TxHash string         `json:"tx_hash"`
	From   string         `json:"from"`
	To     string         `json:"to"`
	Amount btcutil.Amount `json:"amount"`
}

// Explorer is the read-only view of the blockchain the monitor depends on.
//
// Implementations report failures wrapped in the fault sentinels: a missing
// top-level transaction list is fault.ErrSchema.
type Explorer interface {
	// UnconfirmedTransactions returns the current snapshot of the unconfirmed
	// transaction pool, as limited by the upstream API.
	UnconfirmedTransactions(ctx context.Context) ([]Transaction, error)

	// AddressTransactions returns up to limit historical transactions of
	// address, skipping the first offset ones.
	AddressTransactions(ctx context.Context, address string, limit, offset int) ([]Transaction, error)
}
