package blockchaininfo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/gabapcia/btcwatch/internal/addrwatch"
	"github.com/gabapcia/btcwatch/internal/mixscan"
	"github.com/gabapcia/btcwatch/internal/pkg/fault"

	"github.com/btcsuite/btcd/btcutil"
)

type (
	// PrevOutResponse is the output spent by an input.
	PrevOutResponse struct {
		Addr  string `json:"addr"`
		Value int64  `json:"value"`
	}

	// InputResponse is a transaction input. PrevOut is nil for coinbase inputs.
	InputResponse struct {
		PrevOut *PrevOutResponse `json:"prev_out"`
	}

	// OutputResponse is a transaction output. Addr is empty for outputs
	// without a standard destination.
	OutputResponse struct {
		Addr  string `json:"addr"`
		Value int64  `json:"value"`
	}

	// TransactionResponse is a transaction as returned by every endpoint used here.
	TransactionResponse struct {
		Hash   string           `json:"hash"`
		Inputs []InputResponse  `json:"inputs"`
		Out    []OutputResponse `json:"out"`
	}

	// TransactionsResponse is the envelope of /unconfirmed-transactions and /rawaddr.
	TransactionsResponse struct {
		Txs []TransactionResponse `json:"txs"`
	}
)

// toAddrwatchTransaction converts the response, keeping nil slices nil so that
// absent fields stay distinguishable from empty ones.
func (t TransactionResponse) toAddrwatchTransaction() addrwatch.Transaction {
	tx := addrwatch.Transaction{Hash: t.Hash}

	if t.Inputs != nil {
		tx.Inputs = make([]addrwatch.Input, len(t.Inputs))
		for i, in := range t.Inputs {
			if in.PrevOut != nil {
				tx.Inputs[i] = addrwatch.Input{
					Address: in.PrevOut.Addr,
					Amount:  btcutil.Amount(in.PrevOut.Value),
				}
			}
		}
	}

	if t.Out != nil {
		tx.Outputs = make([]addrwatch.Output, len(t.Out))
		for i, out := range t.Out {
			tx.Outputs[i] = addrwatch.Output{
				Address: out.Addr,
				Amount:  btcutil.Amount(out.Value),
			}
		}
	}

	return tx
}

// toMixscanTransaction converts the response to the scanner's view.
func (t TransactionResponse) toMixscanTransaction() mixscan.Transaction {
	tx := mixscan.Transaction{
		Hash:    t.Hash,
		Inputs:  make([]mixscan.Party, len(t.Inputs)),
		Outputs: make([]mixscan.Party, len(t.Out)),
	}

	for i, in := range t.Inputs {
		if in.PrevOut != nil {
			tx.Inputs[i] = mixscan.Party{
				Address: in.PrevOut.Addr,
				Amount:  btcutil.Amount(in.PrevOut.Value),
			}
		}
	}

	for i, out := range t.Out {
		tx.Outputs[i] = mixscan.Party{
			Address: out.Addr,
			Amount:  btcutil.Amount(out.Value),
		}
	}

	return tx
}

// toAddrwatchTransactions converts the envelope, reporting a missing "txs" field as a schema fault.
func (r TransactionsResponse) toAddrwatchTransactions(endpoint string) ([]addrwatch.Transaction, error) {
	if r.Txs == nil {
		return nil, fmt.Errorf("%w: %s response has no txs field", fault.ErrSchema, endpoint)
	}

	txs := make([]addrwatch.Transaction, len(r.Txs))
	for i, t := range r.Txs {
		txs[i] = t.toAddrwatchTransaction()
	}

	return txs, nil
}

// UnconfirmedTransactions implements addrwatch.Explorer.
func (c *client) UnconfirmedTransactions(ctx context.Context) ([]addrwatch.Transaction, error) {
	const endpoint = "/unconfirmed-transactions"

	var res TransactionsResponse
	if err := c.conn.Get(ctx, endpoint, url.Values{"format": {"json"}}, &res); err != nil {
		return nil, err
	}

	return res.toAddrwatchTransactions(endpoint)
}

// AddressTransactions implements addrwatch.Explorer.
func (c *client) AddressTransactions(ctx context.Context, address string, limit, offset int) ([]addrwatch.Transaction, error) {
	query := url.Values{"limit": {strconv.Itoa(limit)}}
	if offset > 0 {
		query.Set("offset", strconv.Itoa(offset))
	}

	var res TransactionsResponse
	if err := c.conn.Get(ctx, "/rawaddr/"+url.PathEscape(address), query, &res); err != nil {
		return nil, err
	}

	return res.toAddrwatchTransactions("/rawaddr")
}
