// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package xdds

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// newTestHeader returns a valid header with the given geometry and pixel format.
func newTestHeader(width, height uint32, pf PixelFormat) *SurfaceHeader {
	pf.Size = PixelFormatSize
	return &SurfaceHeader{
		Magic:       Magic,
		Size:        HeaderSize,
		Flags:       FlagCaps | FlagHeight | FlagWidth | FlagPixelFormat,
		Height:      height,
		Width:       width,
		Depth:       1,
		MipMapCount: 1,
		PixelFormat: pf,
		Caps:        Caps{Caps1: Caps1Texture},
	}
}

// encodeTestHeader serializes h in on-disk order followed by payloadLen zero bytes.
func encodeTestHeader(tb testing.TB, h *SurfaceHeader, payloadLen int) []byte {
	tb.Helper()

	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, h); err != nil {
		tb.Fatalf("encode header: %v", err)
	}
	if buf.Len() != HeaderLength {
		tb.Fatalf("encoded header is %d bytes, want %d", buf.Len(), HeaderLength)
	}
	buf.Write(make([]byte, payloadLen))

	return buf.Bytes()
}

func pfFourCC(tag string) PixelFormat {
	return PixelFormat{
		Flags:  PFFourCC,
		FourCC: FourCC(tag[0], tag[1], tag[2], tag[3]),
	}
}

func pfBGRA8() PixelFormat {
	return PixelFormat{
		Flags:       PFRGB | PFAlphaPixels,
		RGBBitCount: 32,
		RBitMask:    0x00ff0000,
		GBitMask:    0x0000ff00,
		BBitMask:    0x000000ff,
		ABitMask:    0xff000000,
	}
}

func pfBGR8() PixelFormat {
	return PixelFormat{
		Flags:       PFRGB,
		RGBBitCount: 24,
		RBitMask:    0x00ff0000,
		GBitMask:    0x0000ff00,
		BBitMask:    0x000000ff,
	}
}

func pfBGR565() PixelFormat {
	return PixelFormat{
		Flags:       PFRGB,
		RGBBitCount: 16,
		RBitMask:    0x0000f800,
		GBitMask:    0x000007e0,
		BBitMask:    0x0000001f,
	}
}

func pfBGR5A1() PixelFormat {
	return PixelFormat{
		Flags:       PFRGB | PFAlphaPixels,
		RGBBitCount: 16,
		RBitMask:    0x00007c00,
		GBitMask:    0x000003e0,
		BBitMask:    0x0000001f,
		ABitMask:    0x00008000,
	}
}

func pfIndex8() PixelFormat {
	return PixelFormat{
		Flags:       PFIndexed,
		RGBBitCount: 8,
	}
}
