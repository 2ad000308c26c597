package addrwatch

import (
	"context"
	"errors"

	"github.com/gabapcia/btcwatch/internal/pkg/fault"
	"github.com/gabapcia/btcwatch/internal/pkg/logger"
)

// extractTransfers builds one Transfer per transaction from its first input and
// first output. Remaining inputs and outputs are ignored.
//
// Transactions missing the inputs or out field, with an empty one, or whose
// first input/output lacks an address or amount yield nothing.
func extractTransfers(txs []Transaction) []Transfer {
	transfers := make([]Transfer, 0, len(txs))
	for _, tx := range txs {
		if len(tx.Inputs) == 0 || len(tx.Outputs) == 0 {
			continue
		}

		transfer := Transfer{
			TxHash: tx.Hash,
			From:   tx.Inputs[0].Address,
			To:     tx.Outputs[0].Address,
			Amount: tx.Outputs[0].Amount,
		}

		if transfer.From == "" || transfer.To == "" || transfer.Amount == 0 {
			continue
		}

		transfers = append(transfers, transfer)
	}

	return transfers
}

// HistoryPage implements Service.
//
// A non-positive pageSize falls back to DefaultPageSize and a negative offset
// to zero.
func (m *monitor) HistoryPage(ctx context.Context, pageSize, offset int) ([]Transfer, error) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	if offset < 0 {
		offset = 0
	}

	txs, err := m.explorer.AddressTransactions(ctx, m.address, pageSize, offset)
	if err != nil {
		return nil, err
	}

	return extractTransfers(txs), nil
}

// FetchTransactionHistory implements Service.
//
// Transfers accumulate across calls without deduplication. When the request
// itself fails (network, status or body fault) the accumulated list is
// discarded; a payload without a transaction list leaves it untouched.
func (m *monitor) FetchTransactionHistory(ctx context.Context, pageSize int) []Transfer {
	page, err := m.HistoryPage(ctx, pageSize, 0)
	switch {
	case err == nil:
		m.transfers = append(m.transfers, page...)

	case errors.Is(err, fault.ErrSchema):
		logger.Warn(ctx, "address history has no transactions field",
			"address", m.address,
			"error", err,
		)

	default:
		logger.Warn(ctx, "address history fetch failed, discarding accumulated transfers",
			"address", m.address,
			"fault", fault.Classify(err).String(),
			"discarded", len(m.transfers),
			"error", err,
		)
		m.transfers = nil
	}

	return m.Transfers()
}

// Transfers implements Service.
func (m *monitor) Transfers() []Transfer {
	return append([]Transfer{}, m.transfers...)
}
