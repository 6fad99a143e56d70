package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Hurricane2010/polygot-code-translator/internal/config"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

// newRootCmd builds the polyglot command tree
func newRootCmd() *cobra.Command {
	var cfgPath string
	cfg := config.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "polyglot",
		Short: "Chunk Python source for size-bounded translation",
		Long: `polyglot partitions Python modules into semantically coherent,
size-bounded chunks: functions that call each other stay together, and
every chunk fits a downstream consumer's input budget.`,
		Version:       fmt.Sprintf("%s (built %s)", version, buildTime),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath == "" {
				cfgPath = os.Getenv("POLYGLOT_CONFIG")
			}
			loaded, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (or POLYGLOT_CONFIG)")

	cmd.AddCommand(newChunkCmd(cfg))
	cmd.AddCommand(newGraphCmd())
	cmd.AddCommand(newServeCmd(cfg))

	return cmd
}

// readSource reads a source argument: a file path, or stdin for "-"
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
