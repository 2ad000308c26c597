package cli

import (
	"context"
	"errors"

	"github.com/gabapcia/btcwatch/internal/addrwatch"
	"github.com/gabapcia/btcwatch/internal/pkg/validator"
	"github.com/gabapcia/btcwatch/internal/transferfeed"

	"github.com/urfave/cli/v3"
)

// ErrOffsetWithOnlyNew is returned when `history` is given both --offset and --only-new.
var ErrOffsetWithOnlyNew = errors.New("--offset cannot be combined with --only-new")

type (
	// addressInput is the --address flag, which must be a bitcoin mainnet address.
	addressInput struct {
		Address string `validate:"required,btcaddr"`
	}

	// unconfirmedOutput is printed by the outgoing and incoming commands.
	unconfirmedOutput struct {
		Address   string `json:"address"`
		Direction string `json:"direction"`
		Detected  bool   `json:"detected"`
	}

	// historyOutput is printed by the history command.
	historyOutput struct {
		Address   string               `json:"address"`
		Transfers []addrwatch.Transfer `json:"transfers"`
	}
)

func addressFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "address",
		Usage:    "Bitcoin mainnet address to watch",
		Required: true,
	}
}

// validAddress returns the --address flag value, or an error wrapping
// validator.ErrValidation when it is not a mainnet address.
func validAddress(c *cli.Command) (string, error) {
	in := addressInput{Address: c.String("address")}
	if err := validator.Validate(in); err != nil {
		return "", err
	}
	return in.Address, nil
}

func strictFlag() *cli.BoolFlag {
	return &cli.BoolFlag{
		Name:  "strict",
		Usage: "Fail when the API cannot be queried instead of reporting false",
	}
}

// unconfirmedCommand builds the outgoing and incoming commands, which only
// differ in the monitor check they run.
func unconfirmedCommand(
	explorer addrwatch.Explorer,
	name, description, usage string,
	check func(addrwatch.Service, context.Context) (bool, error),
	lenient func(addrwatch.Service, context.Context) bool,
) *cli.Command {
	return &cli.Command{
		Name:        name,
		Description: description,
		Usage:       usage,
		Flags:       []cli.Flag{addressFlag(), strictFlag()},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := validAddress(c)
			if err != nil {
				return err
			}

			monitor, err := addrwatch.New(explorer, address)
			if err != nil {
				return err
			}

			var detected bool
			if c.Bool("strict") {
				if detected, err = check(monitor, ctx); err != nil {
					return err
				}
			} else {
				detected = lenient(monitor, ctx)
			}

			return writeJSON(c, unconfirmedOutput{
				Address:   monitor.Address(),
				Direction: name,
				Detected:  detected,
			})
		},
	}
}

// outgoingCommand returns a CLI command reporting whether an unconfirmed
// transaction spends from the address.
//
// Usage example:
//
//	btcwatch outgoing --address 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
func outgoingCommand(explorer addrwatch.Explorer) *cli.Command {
	return unconfirmedCommand(explorer,
		"outgoing",
		"Reports whether the first input of an unconfirmed transaction spends from the address.",
		"Checks the unconfirmed pool for coins leaving an address.",
		addrwatch.Service.UnconfirmedOutgoing,
		addrwatch.Service.HasUnconfirmedOutgoing,
	)
}

// incomingCommand returns a CLI command reporting whether an unconfirmed
// transaction pays the address.
//
// Usage example:
//
//	btcwatch incoming --address 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa
func incomingCommand(explorer addrwatch.Explorer) *cli.Command {
	return unconfirmedCommand(explorer,
		"incoming",
		"Reports whether an output of an unconfirmed transaction pays the address.",
		"Checks the unconfirmed pool for coins arriving at an address.",
		addrwatch.Service.UnconfirmedIncoming,
		addrwatch.Service.HasUnconfirmedIncoming,
	)
}

// historyCommand returns a CLI command listing the transfers of an address.
//
// Without --offset or --only-new it fetches the first page and prints an empty
// list when the API cannot be queried. --offset fetches a later page and fails
// on API faults. --only-new prints only transfers not reported before, which
// spans runs only when the feed is backed by Redis.
//
// Usage example:
//
//	btcwatch history --address 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa --limit 100
func historyCommand(explorer addrwatch.Explorer, feed transferfeed.Service) *cli.Command {
	return &cli.Command{
		Name:        "history",
		Description: "Lists (from, to, amount) transfers built from the first input and output of each historical transaction.",
		Usage:       "Prints the transfers of an address history.",
		Flags: []cli.Flag{
			addressFlag(),
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Number of transactions to request",
				Value: addrwatch.DefaultPageSize,
			},
			&cli.IntFlag{
				Name:  "offset",
				Usage: "Number of most recent transactions to skip",
			},
			&cli.BoolFlag{
				Name:  "only-new",
				Usage: "Print only transfers not printed before. Earlier runs are remembered only when BTCWATCH_REDIS_ADDR is set; otherwise the whole page is new on every run",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			address, err := validAddress(c)
			if err != nil {
				return err
			}

			limit := c.Int("limit")

			if c.Bool("only-new") {
				if c.IsSet("offset") {
					return ErrOffsetWithOnlyNew
				}

				transfers, err := feed.NewTransfers(ctx, address, limit)
				if err != nil {
					return err
				}

				return writeJSON(c, historyOutput{Address: address, Transfers: transfers})
			}

			monitor, err := addrwatch.New(explorer, address)
			if err != nil {
				return err
			}

			var transfers []addrwatch.Transfer
			if c.IsSet("offset") {
				if transfers, err = monitor.HistoryPage(ctx, limit, c.Int("offset")); err != nil {
					return err
				}
			} else {
				transfers = monitor.FetchTransactionHistory(ctx, limit)
			}

			return writeJSON(c, historyOutput{Address: address, Transfers: transfers})
		},
	}
}
