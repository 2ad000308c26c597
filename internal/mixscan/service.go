// Package mixscan scans a range of block heights for transactions shaped like
// CoinJoin mixing and reports who took part in them.
//
// Blocks are fetched one request per height, sequentially. A block that cannot
// be fetched is skipped and the scan moves on to the next height.
package mixscan

import (
	"context"

	"github.com/gabapcia/btcwatch/internal/pkg/fault"
	"github.com/gabapcia/btcwatch/internal/pkg/logger"
	"github.com/gabapcia/btcwatch/internal/pkg/validator"

	"github.com/btcsuite/btcd/btcutil"
)

// Range is an inclusive range of block heights.
type Range struct {
	Start int64 `json:"start" validate:"min=0"`
	End   int64 `json:"end" validate:"min=0,gtefield=Start"`
}

// MixCandidateRow pairs a sender with a recipient by position across the
// whole scanned range. The pairing says nothing about who actually paid whom;
// use Candidate for per-transaction participants.
type MixCandidateRow struct {
	Sender    string         `json:"sender"`
	Recipient string         `json:"recipient"`
	Amount    btcutil.Amount `json:"amount"` // sender-side amount
}

// Candidate is a mixing-candidate transaction with its own participants.
type Candidate struct {
	Height  int64   `json:"height"`
	TxHash  string  `json:"tx_hash"`
	Inputs  []Party `json:"inputs"`
	Outputs []Party `json:"outputs"`
}

// Report is the result of ScanTransactions.
type Report struct {
	Range      Range       `json:"range"`
	Candidates []Candidate `json:"candidates"`
	Skipped    []int64     `json:"skipped"` // heights whose block could not be fetched
}

// Service defines the scanner operations.
type Service interface {
	// Range returns the scanned height range.
	Range() Range

	// ScanForMixingCandidates scans the range, appends the positional
	// sender/recipient rows to the accumulated list and returns the whole list.
	ScanForMixingCandidates(ctx context.Context) []MixCandidateRow

	// ScanTransactions scans the range and reports each mixing candidate with
	// its own inputs and outputs, plus the heights that were skipped. It does
	// not touch the accumulated row list.
	ScanTransactions(ctx context.Context) (Report, error)

	// Rows returns a copy of the accumulated row list.
	Rows() []MixCandidateRow
}

// scanner is the concrete implementation of the Service interface.
//
// It is not safe for concurrent use.
type scanner struct {
	source BlockSource
	rng    Range
	rows   []MixCandidateRow
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*scanner)(nil)

// New creates a scanner over [start, end] backed by source.
//
// It returns an error wrapping validator.ErrValidation when a height is
// negative or start is greater than end.
func New(source BlockSource, start, end int64) (*scanner, error) {
	rng := Range{Start: start, End: end}
	if err := validator.Validate(rng); err != nil {
		return nil, err
	}

	return &scanner{
		source: source,
		rng:    rng,
	}, nil
}

// Range implements Service.
func (s *scanner) Range() Range {
	return s.rng
}

// walk fetches every block of the range in ascending order and hands it to
// visit. Heights whose fetch fails are returned as skipped. The walk stops
// early, returning the context error, once ctx is done.
func (s *scanner) walk(ctx context.Context, visit func(height int64, block Block)) ([]int64, error) {
	skipped := make([]int64, 0)
	for height := s.rng.Start; ; height++ {
		if err := ctx.Err(); err != nil {
			return skipped, err
		}

		block, err := s.source.BlockByHeight(ctx, height)
		if err != nil {
			logger.Debug(ctx, "skipping block",
				"height", height,
				"fault", fault.Classify(err).String(),
				"error", err,
			)
			skipped = append(skipped, height)
		} else {
			visit(height, block)
		}

		if height == s.rng.End {
			return skipped, nil
		}
	}
}

// pairPositionally pairs the i-th sender with the i-th recipient, up to the
// shorter of the two lists. Pairs with an empty address or a zero amount are
// dropped without shifting the positions of the following ones.
func pairPositionally(senders, recipients []Party) []MixCandidateRow {
	n := min(len(senders), len(recipients))

	rows := make([]MixCandidateRow, 0, n)
	for i := range n {
		row := MixCandidateRow{
			Sender:    senders[i].Address,
			Recipient: recipients[i].Address,
			Amount:    senders[i].Amount,
		}

		if row.Sender == "" || row.Recipient == "" || row.Amount == 0 {
			continue
		}

		rows = append(rows, row)
	}

	return rows
}

// ScanForMixingCandidates implements Service.
//
// Senders and recipients of every candidate transaction are collected into two
// range-wide lists before pairing, so a row may join parties of different
// transactions or blocks. On cancellation the parties collected so far are
// still paired and appended.
func (s *scanner) ScanForMixingCandidates(ctx context.Context) []MixCandidateRow {
	var senders, recipients []Party

	_, err := s.walk(ctx, func(_ int64, block Block) {
		for _, tx := range block.Transactions {
			if !IsMixingCandidate(tx) {
				continue
			}

			senders = append(senders, tx.Inputs...)
			recipients = append(recipients, tx.Outputs...)
		}
	})
	if err != nil {
		logger.Warn(ctx, "block scan interrupted", "range", s.rng, "error", err)
	}

	if len(senders) != len(recipients) {
		logger.Debug(ctx, "sender and recipient counts differ, truncating pairs",
			"senders", len(senders),
			"recipients", len(recipients),
		)
	}

	s.rows = append(s.rows, pairPositionally(senders, recipients)...)
	return s.Rows()
}

// ScanTransactions implements Service.
func (s *scanner) ScanTransactions(ctx context.Context) (Report, error) {
	report := Report{
		Range:      s.rng,
		Candidates: make([]Candidate, 0),
	}

	skipped, err := s.walk(ctx, func(height int64, block Block) {
		for _, tx := range block.Transactions {
			if !IsMixingCandidate(tx) {
				continue
			}

			report.Candidates = append(report.Candidates, Candidate{
				Height:  height,
				TxHash:  tx.Hash,
				Inputs:  tx.Inputs,
				Outputs: tx.Outputs,
			})
		}
	})

	report.Skipped = skipped
	return report, err
}

// Rows implements Service.
func (s *scanner) Rows() []MixCandidateRow {
	return append([]MixCandidateRow{}, s.rows...)
}
