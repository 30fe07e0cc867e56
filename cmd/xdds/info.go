// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/woozymasta/bcn"

	"github.com/woozymasta/xdds"
	"github.com/woozymasta/xdds/internal/logging"
	"github.com/woozymasta/xdds/internal/texfile"
)

var errSomeFailed = errors.New("one or more files failed")

type infoOptions struct {
	logLevel    string
	jsonOutput  bool
	hash        bool
	dxt5Literal bool
}

// fileInfo is one line of `xdds info` output.
type fileInfo struct {
	Path           string `json:"path"`
	Wrapping       string `json:"wrapping,omitempty"`
	Format         string `json:"format,omitempty"`
	BCnFormat      string `json:"bcn_format,omitempty"`
	Width          uint32 `json:"width,omitempty"`
	Height         uint32 `json:"height,omitempty"`
	Compressed     bool   `json:"compressed"`
	Swap           bool   `json:"swap,omitempty"`
	InternalFormat string `json:"internal_format,omitempty"`
	ExternalFormat string `json:"external_format,omitempty"`
	Type           string `json:"type,omitempty"`
	PayloadOffset  int    `json:"payload_offset,omitempty"`
	PayloadSize    int    `json:"payload_size,omitempty"`
	Mipmaps        uint32 `json:"mipmaps,omitempty"`
	Cubemap        bool   `json:"cubemap,omitempty"`
	Volume         bool   `json:"volume,omitempty"`
	XXHash         string `json:"xxhash,omitempty"`
	Error          string `json:"error,omitempty"`
}

func newInfoCmd() *cobra.Command {
	opts := &infoOptions{}
	cmd := &cobra.Command{
		Use:   "info <file>...",
		Short: "Print header, format and payload geometry of DDS files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.NewLogger("xdds", logging.Level(opts.logLevel), cmd.ErrOrStderr())
			return runInfo(cmd.OutOrStdout(), logger, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print one JSON object per file")
	cmd.Flags().BoolVar(&opts.hash, "hash", false, "Include xxhash64 of the payload")
	cmd.Flags().BoolVar(&opts.dxt5Literal, "dxt5-literal", false, "Use the legacy inverted DXT5 predicate")

	return cmd
}

func runInfo(out io.Writer, logger hclog.Logger, opts *infoOptions, paths []string) error {
	parseOpts := &xdds.ParseOptions{DXT5Mode: xdds.DXT5Equal}
	if opts.dxt5Literal {
		parseOpts.DXT5Mode = xdds.DXT5Literal
	}

	infos := make([]fileInfo, 0, len(paths))
	failed := false
	for _, path := range paths {
		parseOpts.Logger = logger.With("file", path)
		info, err := inspect(path, parseOpts, opts.hash)
		if err != nil {
			failed = true
			info.Error = err.Error()
			logger.Error("inspect failed", "file", path, "error", err)
		}
		infos = append(infos, info)
	}

	if err := printInfos(out, infos, opts.jsonOutput); err != nil {
		return err
	}
	if failed {
		return errSomeFailed
	}

	return nil
}

func inspect(path string, opts *xdds.ParseOptions, hash bool) (fileInfo, error) {
	info := fileInfo{Path: path}

	buf, wrap, err := texfile.Load(path)
	if err != nil {
		return info, err
	}
	if wrap != texfile.WrapNone {
		info.Wrapping = wrap.String()
	}

	res, err := xdds.ParseWithOptions(buf, opts)
	if err != nil {
		return info, err
	}

	info.Format = res.Format.String()
	if f := res.Format.BCn(); f != bcn.FormatUnknown {
		info.BCnFormat = fmt.Sprint(f)
	}
	info.Width = res.Width
	info.Height = res.Height
	info.Compressed = res.Compressed
	info.Swap = res.Swap
	info.InternalFormat = glName(res.InternalFormat)
	info.ExternalFormat = glName(res.ExternalFormat)
	info.Type = glName(res.Type)
	info.PayloadOffset = res.PayloadOffset
	info.PayloadSize = res.PayloadSize
	info.Cubemap = res.Header.Caps.IsCubemap()
	info.Volume = res.Header.Caps.IsVolume()
	if res.Header.Caps.HasMipmaps() {
		info.Mipmaps = res.Header.MipMapCount
	}

	if hash {
		payload, err := res.Payload(buf)
		if err != nil {
			return info, err
		}
		info.XXHash = fmt.Sprintf("%016x", xxhash.Sum64(payload))
	}

	return info, nil
}

func printInfos(out io.Writer, infos []fileInfo, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(out)
		for _, info := range infos {
			if err := enc.Encode(info); err != nil {
				return err
			}
		}
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tFORMAT\tSIZE\tCOMPRESSED\tOFFSET\tPAYLOAD\tXXHASH")
	for _, info := range infos {
		if info.Error != "" {
			fmt.Fprintf(tw, "%s\terror: %s\t\t\t\t\t\n", info.Path, info.Error)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%t\t%d\t%d\t%s\n",
			info.Path, info.Format, info.Width, info.Height,
			info.Compressed, info.PayloadOffset, info.PayloadSize, info.XXHash)
	}

	return tw.Flush()
}

func glName(e xdds.GLenum) string {
	if e == 0 {
		return ""
	}

	return e.String()
}
