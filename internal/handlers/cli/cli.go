package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/gabapcia/btcwatch/internal/addrwatch"
	"github.com/gabapcia/btcwatch/internal/mixscan"
	"github.com/gabapcia/btcwatch/internal/pkg/logger"
	"github.com/gabapcia/btcwatch/internal/transferfeed"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
)

// Run initializes and executes the btcwatch CLI application.
//
// It registers all available commands, including:
//
//   - `outgoing`: Checks the unconfirmed pool for spends from an address.
//   - `incoming`: Checks the unconfirmed pool for payments to an address.
//   - `history`: Lists the transfers in an address history.
//   - `scan`: Scans a range of blocks for mixing candidates.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - explorer: The blockchain view used by the address commands.
//   - blocks: The block source used by the scan command.
//   - feed: The transfer feed used by `history --only-new`.
func Run(ctx context.Context, explorer addrwatch.Explorer, blocks mixscan.BlockSource, feed transferfeed.Service) error {
	return newApp(explorer, blocks, feed).Run(ctx, os.Args)
}

// newApp builds the root command. Every invocation gets its own run ID,
// attached to the context so that all log lines of the run share it.
func newApp(explorer addrwatch.Explorer, blocks mixscan.BlockSource, feed transferfeed.Service) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "btcwatch",
		Description:           "Watches bitcoin addresses and scans blocks for mixing activity through the blockchain.info API.",
		Usage:                 "btcwatch [command] [flags]",
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return logger.WithRunID(ctx, uuid.NewString()), nil
		},
		Commands: []*cli.Command{
			outgoingCommand(explorer),
			incomingCommand(explorer),
			historyCommand(explorer, feed),
			scanCommand(blocks),
		},
	}
}

// writeJSON prints v as indented JSON to the root command writer.
func writeJSON(c *cli.Command, v any) error {
	enc := json.NewEncoder(c.Root().Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
