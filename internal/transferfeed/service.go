// Package transferfeed turns the history of a watched address into a feed of
// transfers not reported before.
//
// addrwatch returns whatever the API holds for the address on every call and
// leaves deduplication to its callers. This package is such a caller: it keeps
// track of the transaction hashes already reported per address through a
// SeenStorage and only hands back the new ones.
package transferfeed

import (
	"context"

	"github.com/gabapcia/btcwatch/internal/addrwatch"
	"github.com/gabapcia/btcwatch/internal/pkg/logger"
)

// SeenStorage records which transaction hashes were already reported for an address.
type SeenStorage interface {
	// MarkSeen records hashes as seen for address and returns the ones that
	// had not been recorded before, in input order.
	MarkSeen(ctx context.Context, address string, hashes []string) ([]string, error)
}

// Service defines the feed operations.
type Service interface {
	// NewTransfers fetches the latest history page of address and returns the
	// transfers whose transaction was not reported by an earlier call.
	NewTransfers(ctx context.Context, address string, pageSize int) ([]addrwatch.Transfer, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	explorer    addrwatch.Explorer
	seenStorage SeenStorage
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Option configures a service.
type Option func(*service)

// WithSeenStorage replaces the default in-memory storage, which forgets
// everything when the process exits.
func WithSeenStorage(storage SeenStorage) Option {
	return func(s *service) {
		s.seenStorage = storage
	}
}

// New creates a feed reading address history through explorer.
func New(explorer addrwatch.Explorer, opts ...Option) *service {
	s := &service{
		explorer:    explorer,
		seenStorage: NewMemoryStorage(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewTransfers implements Service.
//
// The page is marked as seen before it is returned, so a transfer the caller
// fails to handle is not offered again. Transfers without a transaction hash
// are never returned.
func (s *service) NewTransfers(ctx context.Context, address string, pageSize int) ([]addrwatch.Transfer, error) {
	monitor, err := addrwatch.New(s.explorer, address)
	if err != nil {
		return nil, err
	}

	page, err := monitor.HistoryPage(ctx, pageSize, 0)
	if err != nil {
		return nil, err
	}

	// Without a hash a transfer cannot be told apart from the next one.
	hashes := make([]string, 0, len(page))
	hashless := 0
	for _, transfer := range page {
		if transfer.TxHash == "" {
			hashless++
			continue
		}
		hashes = append(hashes, transfer.TxHash)
	}

	if hashless > 0 {
		logger.Warn(ctx, "skipping transfers without a transaction hash",
			"address", address,
			"skipped", hashless,
		)
	}

	unseen, err := s.seenStorage.MarkSeen(ctx, address, hashes)
	if err != nil {
		return nil, err
	}

	fresh := make(map[string]struct{}, len(unseen))
	for _, hash := range unseen {
		fresh[hash] = struct{}{}
	}

	transfers := make([]addrwatch.Transfer, 0, len(unseen))
	for _, transfer := range page {
		if _, ok := fresh[transfer.TxHash]; !ok {
			continue
		}

		transfers = append(transfers, transfer)
		delete(fresh, transfer.TxHash)
	}

	logger.Info(ctx, "address history checked",
		"address", address,
		"page", len(page),
		"new", len(transfers),
	)

	return transfers, nil
}
