// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/yaz0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/woozymasta/yaz0"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().BoolP("json", "j", false, "Output as JSON")
	infoCmd.MarkZshCompPositionalArgumentFile(1, "*.szs")
	viper.BindPFlag("info.json", infoCmd.Flags().Lookup("json"))
}

// streamInfo is the header summary printed by the info command.
type streamInfo struct {
	Path             string  `json:"path"`
	CompressedSize   int64   `json:"compressed_size"`
	UncompressedSize uint32  `json:"uncompressed_size"`
	Ratio            float64 `json:"ratio"`
}

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:           "info <SZS>",
	Aliases:       []string{"i"},
	Short:         "Display Yaz0 header information",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		infile := filepath.Clean(args[0])

		info, err := readStreamInfo(infile)
		if err != nil {
			return err
		}

		if viper.GetBool("info.json") {
			out, err := json.MarshalIndent(info, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		}

		log.WithFields(log.Fields{
			"compressed":   humanize.Bytes(uint64(info.CompressedSize)),
			"uncompressed": humanize.Bytes(uint64(info.UncompressedSize)),
			"ratio":        fmt.Sprintf("%.2f%%", info.Ratio),
		}).Info(info.Path)

		return nil
	},
}

// readStreamInfo reads only the header of the file at path.
func readStreamInfo(path string) (*streamInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file %s: %w", path, err)
	}

	var raw [yaz0.HeaderSize]byte
	n, err := io.ReadFull(f, raw[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	hdr, err := yaz0.ReadHeader(raw[:n])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &streamInfo{
		Path:             path,
		CompressedSize:   fi.Size(),
		UncompressedSize: hdr.UncompressedSize,
		Ratio:            ratio(int(fi.Size()), int(hdr.UncompressedSize)),
	}, nil
}
