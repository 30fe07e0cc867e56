// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package xdds

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// ParseOptions configures Parse.
type ParseOptions struct {
	// Logger receives advisory lines about the parsed surface. Nil discards them.
	Logger hclog.Logger
	// DXT5Mode selects the DXT5 predicate polarity. Zero value is DXT5Equal.
	DXT5Mode DXT5Mode
}

// Result describes a parsed surface and where its payload lives.
type Result struct {
	// Header is the decoded header, including caps metadata the parser ignores.
	Header *SurfaceHeader

	Format         Format
	InternalFormat GLenum
	ExternalFormat GLenum
	Type           GLenum

	Width  uint32
	Height uint32

	PayloadSize   int
	PayloadOffset int

	Compressed bool
	// Swap reports that channels must be swapped before upload.
	Swap bool
}

// Payload returns the payload bytes of buf without copying.
func (r *Result) Payload(buf []byte) ([]byte, error) {
	end := r.PayloadOffset + r.PayloadSize
	if end < r.PayloadOffset || len(buf) < end {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedPayload, end, len(buf))
	}

	return buf[r.PayloadOffset:end:end], nil
}

// Parse decodes and validates the DDS header at the start of buf.
func Parse(buf []byte) (*Result, error) {
	return ParseWithOptions(buf, nil)
}

// ParseWithOptions decodes and validates the DDS header at the start of buf.
// Nil opts uses DXT5Equal and discards log output.
// The payload is not read or copied; buf must outlive any slice returned by
// Result.Payload.
func ParseWithOptions(buf []byte, opts *ParseOptions) (*Result, error) {
	logger := hclog.NewNullLogger()
	mode := DXT5Equal
	if opts != nil {
		if opts.Logger != nil {
			logger = opts.Logger
		}
		mode = opts.DXT5Mode
	}

	header, err := DecodeHeader(buf)
	if err != nil {
		return nil, err
	}
	if err := validateHeader(header); err != nil {
		return nil, err
	}

	logger.Debug("surface size", "width", header.Width, "height", header.Height)

	format, err := Classify(header.PixelFormat, mode)
	if err != nil {
		logger.Warn("pixel format unsupported", "error", err)
		return nil, err
	}
	logger.Debug("pixel format", "format", format.String())

	size, err := payloadSize(header, format)
	if err != nil {
		return nil, err
	}

	info := format.info()
	if info.compressed {
		logger.Debug("compressed surface", "size", size)
	} else {
		logger.Debug("uncompressed surface", "size", size)
	}

	return &Result{
		Header:         header,
		Format:         format,
		InternalFormat: info.internalFormat,
		ExternalFormat: info.externalFormat,
		Type:           info.dataType,
		Width:          header.Width,
		Height:         header.Height,
		PayloadSize:    size,
		PayloadOffset:  HeaderLength,
		Compressed:     info.compressed,
		Swap:           info.swap,
	}, nil
}

func validateHeader(h *SurfaceHeader) error {
	const required = FlagPixelFormat | FlagCaps
	if missing := required &^ h.Flags; missing != 0 {
		return fmt.Errorf("%w: 0x%x", ErrMissingRequiredFlags, missing)
	}

	return nil
}

// payloadSize computes the payload length of the top-level surface.
func payloadSize(h *SurfaceHeader, format Format) (int, error) {
	info := format.info()
	switch {
	case info.compressed:
		size, err := mulSize(
			blockCount(h.Width, info.blockEdge),
			blockCount(h.Height, info.blockEdge),
			uint64(info.blockBytes),
		)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %dx%d", err, format, h.Width, h.Height)
		}
		if h.Flags&FlagLinearSize != 0 && uint64(h.PitchOrLinearSize) != uint64(size) {
			return 0, fmt.Errorf("%w: declared %d, computed %d", ErrSizeMismatch, h.PitchOrLinearSize, size)
		}
		return size, nil

	case info.palette:
		return 0, fmt.Errorf("%w: palette surfaces", ErrUnsupportedFormat)

	default:
		size, err := mulSize(uint64(h.Width), uint64(h.Height), uint64(info.blockBytes))
		if err != nil {
			return 0, fmt.Errorf("%w: %s %dx%d", err, format, h.Width, h.Height)
		}
		return size, nil
	}
}
