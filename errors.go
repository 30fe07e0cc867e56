// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package xdds

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncatedHeader indicates the buffer is shorter than a DDS header.
	ErrTruncatedHeader = errors.New("truncated DDS header")
	// ErrHeaderRead indicates the DDS header could not be decoded.
	ErrHeaderRead = errors.New("reading DDS header failed")
	// ErrBadMagic indicates the buffer does not start with "DDS ".
	ErrBadMagic = errors.New("bad DDS magic")
	// ErrBadHeaderSize indicates the declared header size is not 124.
	ErrBadHeaderSize = errors.New("bad DDS header size")
	// ErrBadPixelFormatSize indicates the declared pixel format size is not 32.
	ErrBadPixelFormatSize = errors.New("bad DDS pixel format size")
	// ErrMissingRequiredFlags indicates the pixel format or caps flag is absent.
	ErrMissingRequiredFlags = errors.New("missing required DDS flags")
	// ErrUnsupportedFormat indicates the pixel format is not one of the supported encodings.
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	// ErrSizeMismatch indicates the declared linear size disagrees with the computed one.
	ErrSizeMismatch = errors.New("linear size mismatch")
	// ErrSizeOverflow indicates the payload size exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrTruncatedPayload indicates the buffer ends before the payload does.
	ErrTruncatedPayload = errors.New("truncated payload")
)

// FormatError reports a pixel format that could not be mapped to a usable
// encoding. Near names the recognized but unsupported layout, if any.
type FormatError struct {
	PixelFormat PixelFormat
	Near        Format
}

func (e *FormatError) Error() string {
	pf := e.PixelFormat
	if e.Near != FormatUnknown {
		return fmt.Sprintf("%v: %s", ErrUnsupportedFormat, e.Near)
	}
	if pf.Flags&PFFourCC != 0 {
		return fmt.Sprintf("%v: fourCC %q", ErrUnsupportedFormat, FourCCString(pf.FourCC))
	}

	return fmt.Sprintf("%v: flags=0x%x bits=%d masks=%08x/%08x/%08x/%08x",
		ErrUnsupportedFormat, pf.Flags, pf.RGBBitCount,
		pf.RBitMask, pf.GBitMask, pf.BBitMask, pf.ABitMask)
}

// Unwrap returns ErrUnsupportedFormat.
func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}
