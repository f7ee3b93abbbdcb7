// Command derive runs the Facet deposit derivation core over a single L1
// block's worth of transactions and receipts, supplied as a JSON fixture
// file, and prints the resulting deposit transactions and updated FCT
// monetary state.
//
// Usage:
//
//	derive --input block.json --l2-chain-id 16436858 --l2-block 1 \
//	       --prev-rate 800000000000000 --prev-cum-gas 0
//
// Flags:
//
//	--input         path to a JSON fixture describing L1 txs + receipts
//	--l2-chain-id   expected L2 chain id embedded in Facet payloads
//	--l2-block      L2 block number being derived
//	--prev-rate     FCT mint rate carried in from the previous L2 block
//	--prev-cum-gas  cumulative L1 data gas carried in from the previous block
//	--log-format    json (default), text, or color
//	--log-level     debug, info (default), warn, or error
//	--version       print version and exit
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/holiman/uint256"

	"github.com/0xFacet/kona/log"
	"github.com/0xFacet/kona/rollup"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, exit, code := parseFlags(args)
	if exit {
		return code
	}

	log.SetDefault(log.New(cfg.logLevel, cfg.logFormat))
	logger := log.Default().Module("derive")

	txs, receipts, err := loadFixture(cfg.input)
	if err != nil {
		logger.Error("failed to load fixture", "err", err)
		return 1
	}

	deposits, newRate, newCumGas, err := rollup.Derive(
		txs, receipts, cfg.l2ChainID, cfg.l2Block, cfg.prevRate, cfg.prevCumGas,
	)
	if err != nil {
		logger.Error("derivation failed", "err", err)
		return 1
	}

	logger.Info("derived block",
		"l2_block", cfg.l2Block,
		"deposits", len(deposits),
		"new_rate", newRate.String(),
		"new_cum_gas", newCumGas.String(),
	)

	for _, d := range deposits {
		fmt.Printf("0x%s\n", hex.EncodeToString(d))
	}
	fmt.Printf("new_rate=%s new_cum_gas=%s\n", newRate.String(), newCumGas.String())

	return 0
}

type config struct {
	input      string
	l2ChainID  uint64
	l2Block    uint64
	prevRate   *uint256.Int
	prevCumGas *uint256.Int
	logFormat  log.Format
	logLevel   slog.Level
}

func parseFlags(args []string) (config, bool, int) {
	cfg := config{
		prevRate:   new(uint256.Int).Set(rollup.InitialRate),
		prevCumGas: new(uint256.Int),
	}

	fs := newCustomFlagSet("derive")
	fs.StringVar(&cfg.input, "input", "", "path to JSON fixture of L1 txs + receipts")
	fs.Uint64Var(&cfg.l2ChainID, "l2-chain-id", 0, "expected L2 chain id")
	fs.Uint64Var(&cfg.l2Block, "l2-block", 0, "L2 block number being derived")
	prevRate := fs.String("prev-rate", cfg.prevRate.String(), "previous FCT mint rate (decimal)")
	prevCumGas := fs.String("prev-cum-gas", cfg.prevCumGas.String(), "previous cumulative L1 data gas (decimal)")
	logFormat := fs.String("log-format", "json", "log output format: json, text, or color")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, or error")
	showVersion := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cfg, true, 2
	}

	if *showVersion {
		fmt.Printf("derive %s (commit %s)\n", version, commit)
		return cfg, true, 0
	}

	if cfg.input == "" {
		fmt.Fprintln(os.Stderr, "Error: --input is required")
		return cfg, true, 2
	}

	rate, err := uint256.FromDecimal(*prevRate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --prev-rate: %v\n", err)
		return cfg, true, 2
	}
	cfg.prevRate = rate

	cumGas, err := uint256.FromDecimal(*prevCumGas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid --prev-cum-gas: %v\n", err)
		return cfg, true, 2
	}
	cfg.prevCumGas = cumGas

	cfg.logFormat = log.ParseFormat(*logFormat)
	cfg.logLevel = parseLevel(*logLevel)

	return cfg, false, 0
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
