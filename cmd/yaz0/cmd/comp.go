// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/apex/log"
	"github.com/caarlos0/ctrlc"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/woozymasta/yaz0"
)

func init() {
	rootCmd.AddCommand(compCmd)
	compCmd.Flags().StringP("output", "o", "", "Output file path (default <FILE>.szs, for stdout use '-')")
	compCmd.Flags().IntP("chunk-size", "c", yaz0.DefaultChunkSize, "Independently compressed chunk size (power of two)")
	compCmd.Flags().IntP("workers", "w", 0, "Chunks compressed in parallel (0 = all CPUs)")
	compCmd.MarkFlagFilename("output")
	compCmd.MarkZshCompPositionalArgumentFile(1)
	viper.BindPFlag("comp.output", compCmd.Flags().Lookup("output"))
	viper.BindPFlag("comp.chunk-size", compCmd.Flags().Lookup("chunk-size"))
	viper.BindPFlag("comp.workers", compCmd.Flags().Lookup("workers"))
}

// compCmd represents the comp command
var compCmd = &cobra.Command{
	Use:     "comp <FILE>",
	Aliases: []string{"c"},
	Short:   "Compress a file to Yaz0",
	Example: heredoc.Doc(`
		# Compress to layout.sarc.szs
		❯ yaz0 comp layout.sarc

		# Larger chunks, four workers, explicit output
		❯ yaz0 comp layout.sarc --chunk-size 8192 --workers 4 -o out.szs`),
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		infile := filepath.Clean(args[0])
		outFile := viper.GetString("comp.output")
		if outFile == "" {
			outFile = infile + ".szs"
		}

		data, err := os.ReadFile(infile)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", infile, err)
		}

		opts := &yaz0.CompressOptions{
			ChunkSize: viper.GetInt("comp.chunk-size"),
			Workers:   viper.GetInt("comp.workers"),
		}
		log.WithFields(log.Fields{
			"input":      infile,
			"size":       humanize.Bytes(uint64(len(data))),
			"chunk_size": opts.ChunkSize,
			"workers":    opts.Workers,
		}).Debug("Compressing")

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var compressed []byte
		if err := ctrlc.Default.Run(ctx, func() error {
			out, err := yaz0.CompressContext(ctx, data, opts)
			compressed = out
			return err
		}); err != nil {
			return compressError(err)
		}

		if err := writeOutput(outFile, compressed); err != nil {
			return err
		}

		if outFile != "-" {
			log.WithFields(log.Fields{
				"output": outFile,
				"size":   humanize.Bytes(uint64(len(compressed))),
				"ratio":  fmt.Sprintf("%.2f%%", ratio(len(compressed), len(data))),
			}).Info("Compressed File")
		}

		return nil
	},
}

// errInterrupted is returned when compression is stopped by ctrl-c, so the process exits non-zero.
var errInterrupted = errors.New("compression interrupted")

func compressError(err error) error {
	if errors.As(err, &ctrlc.ErrorCtrlC{}) {
		log.Warn("Exiting...")
		return errInterrupted
	}
	return fmt.Errorf("failed to compress file: %w", err)
}

// writeOutput writes data to path, or to stdout when path is "-".
func writeOutput(path string, data []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write to stdout: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// ratio returns part as a percentage of whole.
func ratio(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
