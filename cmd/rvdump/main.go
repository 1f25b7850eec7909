// Command rvdump is a thin CLI shell around the rvcodec package: it
// owns argument parsing, formatting, and error presentation only, never
// codec logic.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/lmmilewski/rvcodec"
)

var (
	logger  = log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})
	cfg     config
	xlenStr string
	noColor bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rvdump",
		Short:         "Decode and encode RISC-V instruction words",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := loadConfig(".rvdump.toml")
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfg = loaded
			logger.Debug("config resolved", "xlen", cfg.XLEN, "color", cfg.Color)
			if !cmd.Flags().Changed("xlen") {
				xlenStr = cfg.XLEN
			}
			if cmd.Flags().Changed("no-color") && noColor {
				cfg.Color = false
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&xlenStr, "xlen", "rv64", "register width: rv32 or rv64")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colorized output")

	root.AddCommand(newDecodeCmd())
	root.AddCommand(newEncodeCmd())
	return root
}

func parseXLEN(s string) (rvcodec.XLEN, error) {
	switch strings.ToLower(s) {
	case "rv32", "32":
		return rvcodec.Rv32, nil
	case "rv64", "64":
		return rvcodec.Rv64, nil
	default:
		return 0, fmt.Errorf("unrecognized xlen %q (want rv32 or rv64)", s)
	}
}
