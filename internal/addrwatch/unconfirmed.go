package addrwatch

import (
	"context"
	"fmt"

	"github.com/gabapcia/btcwatch/internal/pkg/fault"
	"github.com/gabapcia/btcwatch/internal/pkg/logger"
)

// UnconfirmedOutgoing implements Service.
//
// Transactions are inspected in feed order and only the first input of each
// one is compared. A transaction without inputs, or whose first input carries
// no address, is reported as fault.ErrSchema and ends the inspection, even if
// a later transaction would have matched.
func (m *monitor) UnconfirmedOutgoing(ctx context.Context) (bool, error) {
	txs, err := m.explorer.UnconfirmedTransactions(ctx)
	if err != nil {
		return false, err
	}

	for i, tx := range txs {
		if len(tx.Inputs) == 0 {
			return false, fmt.Errorf("%w: txs[%d] (%s) has no inputs", fault.ErrSchema, i, tx.Hash)
		}

		from := tx.Inputs[0].Address
		if from == "" {
			return false, fmt.Errorf("%w: txs[%d] (%s) inputs[0].prev_out.addr is missing", fault.ErrSchema, i, tx.Hash)
		}

		if from == m.address {
			return true, nil
		}
	}

	return false, nil
}

// UnconfirmedIncoming implements Service.
//
// Every output of every transaction is inspected; outputs without an address
// are skipped. A transaction without an outputs field is reported as
// fault.ErrSchema.
func (m *monitor) UnconfirmedIncoming(ctx context.Context) (bool, error) {
	txs, err := m.explorer.UnconfirmedTransactions(ctx)
	if err != nil {
		return false, err
	}

	for i, tx := range txs {
		if tx.Outputs == nil {
			return false, fmt.Errorf("%w: txs[%d] (%s) has no out field", fault.ErrSchema, i, tx.Hash)
		}

		for _, out := range tx.Outputs {
			if out.Address == m.address {
				return true, nil
			}
		}
	}

	return false, nil
}

// HasUnconfirmedOutgoing implements Service.
func (m *monitor) HasUnconfirmedOutgoing(ctx context.Context) bool {
	sent, err := m.UnconfirmedOutgoing(ctx)
	if err != nil {
		logger.Warn(ctx, "unconfirmed outgoing check failed",
			"address", m.address,
			"fault", fault.Classify(err).String(),
			"error", err,
		)
		return false
	}

	return sent
}

// HasUnconfirmedIncoming implements Service.
func (m *monitor) HasUnconfirmedIncoming(ctx context.Context) bool {
	received, err := m.UnconfirmedIncoming(ctx)
	if err != nil {
		logger.Warn(ctx, "unconfirmed incoming check failed",
			"address", m.address,
			"fault", fault.Classify(err).String(),
			"error", err,
		)
		return false
	}

	return received
}
