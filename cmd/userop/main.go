// Command userop computes the entry point hash, identifier, encoded size and
// entities of a user operation given in bundler RPC JSON form.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blndgs/userop"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var (
	configPath  string
	entrypoint  string
	chainID     string
	environment string

	rootCmd = &cobra.Command{
		Use:   "userop",
		Short: "Inspect ERC-4337 user operations",
		Long: `Compute the entry point bound hash, the (sender, nonce) id, the ABI
encoded size and the associated entities of a user operation.

The operation is read as bundler RPC JSON from a file or from stdin ("-").
`,
		SilenceUsage: true,
	}

	hashCmd = &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the user operation hash",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, func(out io.Writer, cfg *Config, op *userop.UserOperation) error {
				_, err := fmt.Fprintln(out, op.OpHash(cfg.EntrypointAddress, cfg.ChainID).Hex())
				return err
			})
		},
	}

	inspectCmd = &cobra.Command{
		Use:   "inspect [file]",
		Short: "Print a JSON report of the user operation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, func(out io.Writer, cfg *Config, op *userop.UserOperation) error {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(newReport(cfg, op))
			})
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "get version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&entrypoint, "entrypoint", "", "Entry point address (overrides config)")
	rootCmd.PersistentFlags().StringVar(&chainID, "chain-id", "", "Chain id, decimal or 0x-hex (overrides config)")
	rootCmd.PersistentFlags().StringVar(&environment, "env", "", "Logging environment: development or production")

	rootCmd.AddCommand(hashCmd, inspectCmd, versionCmd)
}

// report is the inspect command output.
type report struct {
	ID             string          `json:"id"`
	Hash           string          `json:"hash"`
	EntryPoint     string          `json:"entryPoint"`
	ChainID        string          `json:"chainId"`
	AbiEncodedSize int             `json:"abiEncodedSize"`
	HeapSize       int             `json:"heapSize"`
	Entities       []userop.Entity `json:"entities"`
}

func newReport(cfg *Config, op *userop.UserOperation) report {
	return report{
		ID:             op.ID().String(),
		Hash:           op.OpHash(cfg.EntrypointAddress, cfg.ChainID).Hex(),
		EntryPoint:     cfg.EntrypointAddress.Hex(),
		ChainID:        cfg.ChainID.String(),
		AbiEncodedSize: op.AbiEncodedSize(),
		HeapSize:       op.HeapSize(),
		Entities:       op.Entities(),
	}
}

// run resolves the configuration, reads the operation and hands both to fn.
func run(cmd *cobra.Command, args []string, fn func(io.Writer, *Config, *userop.UserOperation) error) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err := cfg.apply(entrypoint, chainID, environment); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Environment)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}

	op, err := readUserOperation(cmd.InOrStdin(), source)
	if err != nil {
		logger.Error("failed to read user operation", zap.String("source", source), zap.Error(err))
		return err
	}

	logger.Debug("user operation loaded",
		zap.String("source", source),
		zap.String("sender", op.Sender.Hex()),
		zap.String("entrypoint", cfg.EntrypointAddress.Hex()),
		zap.String("chainId", cfg.ChainID.String()),
	)

	return fn(cmd.OutOrStdout(), cfg, op)
}

func readUserOperation(stdin io.Reader, source string) (*userop.UserOperation, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}

	op := new(userop.UserOperation)
	if err := json.Unmarshal(data, op); err != nil {
		return nil, fmt.Errorf("failed to decode user operation: %w", err)
	}
	return op, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
