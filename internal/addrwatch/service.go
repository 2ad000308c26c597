// Package addrwatch monitors a single bitcoin address: it detects the address
// sending or receiving coins in the unconfirmed-transaction pool and lists the
// address's historical transactions as normalized transfers.
//
// Every operation issues one synchronous request through the Explorer. The
// boolean and list operations never fail: faults are logged and collapse into
// false or an empty result. Their error-returning counterparts expose the
// fault to callers that need to tell "no activity" apart from "could not tell".
package addrwatch

import (
	"context"

	"github.com/gabapcia/btcwatch/internal/pkg/validator"
)

// DefaultPageSize is the number of historical transactions requested when the
// caller does not choose a page size.
const DefaultPageSize = 500

// Service defines the operations available on a monitored address.
type Service interface {
	// Address returns the watched address.
	Address() string

	// UnconfirmedOutgoing reports whether the first input of any unconfirmed
	// transaction spends from the watched address.
	UnconfirmedOutgoing(ctx context.Context) (bool, error)

	// UnconfirmedIncoming reports whether any output of any unconfirmed
	// transaction pays the watched address.
	UnconfirmedIncoming(ctx context.Context) (bool, error)

	// HasUnconfirmedOutgoing is UnconfirmedOutgoing with faults logged and reported as false.
	HasUnconfirmedOutgoing(ctx context.Context) bool

	// HasUnconfirmedIncoming is UnconfirmedIncoming with faults logged and reported as false.
	HasUnconfirmedIncoming(ctx context.Context) bool

	// HistoryPage fetches one page of the address history and returns its
	// transfers without touching the accumulated list.
	HistoryPage(ctx context.Context, pageSize, offset int) ([]Transfer, error)

	// FetchTransactionHistory fetches the first page of the address history,
	// appends its transfers to the accumulated list and returns the whole list.
	FetchTransactionHistory(ctx context.Context, pageSize int) []Transfer

	// Transfers returns a copy of the accumulated transfer list.
	Transfers() []Transfer
}

// watchedAddress is validated on construction. The address is an opaque
// identifier compared verbatim against the API payloads.
type watchedAddress struct {
	Address string `validate:"required"`
}

// monitor is the concrete implementation of the Service interface.
//
// It is not safe for concurrent use.
type monitor struct {
	explorer  Explorer   // source of blockchain data
	address   string     // watched address, immutable
	transfers []Transfer // grows with every successful FetchTransactionHistory call
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*monitor)(nil)

// New creates a monitor for address backed by explorer.
//
// It returns an error wrapping validator.ErrValidation when address is empty.
// No bitcoin address decoding is done here; callers that take addresses from
// users check them with the validator's btcaddr tag.
func New(explorer Explorer, address string) (*monitor, error) {
	if err := validator.Validate(watchedAddress{Address: address}); err != nil {
		return nil, err
	}

	return &monitor{
		explorer: explorer,
		address:  address,
	}, nil
}

// Address implements Service.
func (m *monitor) Address() string {
	return m.address
}
