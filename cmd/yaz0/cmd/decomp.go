// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/woozymasta/yaz0"
)

func init() {
	rootCmd.AddCommand(decompCmd)
	decompCmd.Flags().StringP("output", "o", "", "Output file path (default <FILE> without .szs, for stdout use '-')")
	decompCmd.MarkFlagFilename("output")
	decompCmd.MarkZshCompPositionalArgumentFile(1, "*.szs")
	viper.BindPFlag("decomp.output", decompCmd.Flags().Lookup("output"))
}

// decompCmd represents the decomp command
var decompCmd = &cobra.Command{
	Use:     "decomp <SZS>",
	Aliases: []string{"d"},
	Short:   "Decompress a Yaz0 file",
	Example: heredoc.Doc(`
		# Decompress to layout.sarc
		❯ yaz0 decomp layout.sarc.szs

		# Pipe the payload elsewhere
		❯ yaz0 decomp layout.sarc.szs -o - | xxd | head`),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		infile := filepath.Clean(args[0])
		outFile := viper.GetString("decomp.output")
		if outFile == "" {
			outFile = defaultDecompOutput(infile)
		}

		data, err := os.ReadFile(infile)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", infile, err)
		}

		decompressed, err := yaz0.Decompress(data)
		if err != nil {
			return fmt.Errorf("failed to decompress %s: %w", infile, err)
		}

		if err := writeOutput(outFile, decompressed); err != nil {
			return err
		}

		if outFile != "-" {
			log.WithFields(log.Fields{
				"output": outFile,
				"size":   humanize.Bytes(uint64(len(decompressed))),
			}).Info("Decompressed File")
		}

		return nil
	},
}

// defaultDecompOutput strips a .szs/.yaz0 suffix, or appends .bin when there is none.
func defaultDecompOutput(infile string) string {
	for _, ext := range []string{".szs", ".yaz0"} {
		if strings.EqualFold(filepath.Ext(infile), ext) {
			return strings.TrimSuffix(infile, filepath.Ext(infile))
		}
	}

	return infile + ".bin"
}
