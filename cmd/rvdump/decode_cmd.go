package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/lmmilewski/rvcodec"
)

func newDecodeCmd() *cobra.Command {
	var compressed bool
	cmd := &cobra.Command{
		Use:   "decode <hex-word>",
		Short: "Decode a hex-encoded instruction word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			xlen, err := parseXLEN(xlenStr)
			if err != nil {
				return err
			}
			word, err := parseHexWord(args[0])
			if err != nil {
				return err
			}

			var inst rvcodec.Inst
			var isCompressed rvcodec.IsCompressed
			switch {
			case compressed:
				inst, err = rvcodec.DecodeCompressed(uint16(word), xlen)
				isCompressed = rvcodec.Compressed
			default:
				inst, isCompressed, err = rvcodec.Decode(word, xlen)
			}
			if err != nil {
				logger.Warn("decode failed", "word", fmt.Sprintf("%#x", word), "err", err)
				return err
			}

			width := "4-byte"
			if isCompressed {
				width = "2-byte"
			}
			render(cmd, inst, width)
			return nil
		},
	}
	cmd.Flags().BoolVar(&compressed, "compressed", false, "treat input as a 16-bit compressed word")
	return cmd
}

func render(cmd *cobra.Command, inst rvcodec.Inst, width string) {
	mnemonic := color.New(color.FgCyan, color.Bold).SprintFunc()
	dim := color.New(color.FgHiBlack).SprintFunc()
	if !cfg.Color || noColor {
		mnemonic = fmt.Sprint
		dim = fmt.Sprint
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", mnemonic(inst.String()), dim("("+width+", "+inst.Kind().String()+")"))
}

// parseHexWord accepts "0x..." or bare hex, trimming whitespace.
func parseHexWord(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse hex word %q: %w", s, err)
	}
	return uint32(v), nil
}
