// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package xdds

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/woozymasta/bcn"
)

const (
	// Magic is the little-endian "DDS " tag.
	Magic = uint32(bcn.DDSMagic)
	// HeaderSize is the declared header struct size (excluding the magic).
	HeaderSize = uint32(bcn.DDSHeaderSize)
	// PixelFormatSize is the declared pixel format struct size.
	PixelFormatSize = uint32(bcn.DDSPixelFormatSize)
	// HeaderLength is the on-disk length of magic plus header; the payload starts here.
	HeaderLength = 4 + int(bcn.DDSHeaderSize)
)

// Header flags (SurfaceHeader.Flags).
const (
	FlagCaps        = uint32(bcn.DDSFlagCaps)
	FlagHeight      = uint32(bcn.DDSFlagHeight)
	FlagWidth       = uint32(bcn.DDSFlagWidth)
	FlagPitch       = uint32(bcn.DDSFlagPitch)
	FlagPixelFormat = uint32(bcn.DDSFlagPixelFormat)
	FlagMipmapCount = uint32(bcn.DDSFlagMipmapCount)
	FlagLinearSize  = uint32(bcn.DDSFlagLinearSize)
	FlagDepth       = uint32(bcn.DDSFlagDepth)
)

// Pixel format flags (PixelFormat.Flags).
const (
	PFAlphaPixels = uint32(bcn.DDSPFAlphaPixels)
	PFFourCC      = uint32(bcn.DDSPFFourCC)
	PFIndexed     = uint32(0x00000020)
	PFRGB         = uint32(bcn.DDSPFRGB)
)

// Capability bits (Caps.Caps1, Caps.Caps2).
const (
	Caps1Complex = uint32(bcn.DDSCapsComplex)
	Caps1Texture = uint32(bcn.DDSCapsTexture)
	Caps1Mipmap  = uint32(bcn.DDSCapsMipmap)

	Caps2Cubemap          = uint32(bcn.DDSCaps2Cubemap)
	Caps2CubemapPositiveX = uint32(0x00000400)
	Caps2CubemapNegativeX = uint32(0x00000800)
	Caps2CubemapPositiveY = uint32(0x00001000)
	Caps2CubemapNegativeY = uint32(0x00002000)
	Caps2CubemapPositiveZ = uint32(0x00004000)
	Caps2CubemapNegativeZ = uint32(0x00008000)
	Caps2Volume           = uint32(0x00200000)
)

// PixelFormat is the 32-byte DDPIXELFORMAT block.
type PixelFormat struct {
	Size        uint32
	Flags       uint32
	FourCC      uint32
	RGBBitCount uint32
	RBitMask    uint32
	GBitMask    uint32
	BBitMask    uint32
	ABitMask    uint32
}

// Caps is the 16-byte capability block. It is decoded for callers but
// never consulted when classifying a surface.
type Caps struct {
	Caps1 uint32
	Caps2 uint32
	Caps3 uint32
	Caps4 uint32
}

// HasMipmaps reports whether the mipmap capability bit is set.
func (c Caps) HasMipmaps() bool { return c.Caps1&Caps1Mipmap != 0 }

// IsCubemap reports whether the cubemap capability bit is set.
func (c Caps) IsCubemap() bool { return c.Caps2&Caps2Cubemap != 0 }

// IsVolume reports whether the volume capability bit is set.
func (c Caps) IsVolume() bool { return c.Caps2&Caps2Volume != 0 }

// SurfaceHeader is the decoded view of the first HeaderLength bytes of a DDS file.
type SurfaceHeader struct {
	Magic             uint32
	Size              uint32
	Flags             uint32
	Height            uint32
	Width             uint32
	PitchOrLinearSize uint32
	Depth             uint32
	MipMapCount       uint32
	Reserved1         [11]uint32
	PixelFormat       PixelFormat
	Caps              Caps
	Reserved2         uint32
}

// DecodeHeader decodes the header at the start of buf. It rejects a bad
// magic and wrong declared struct sizes; flag validation is left to Parse.
func DecodeHeader(buf []byte) (*SurfaceHeader, error) {
	if len(buf) < HeaderLength {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrTruncatedHeader, HeaderLength, len(buf))
	}

	dh, err := bcn.ReadDDSHeader(bytes.NewReader(buf[:HeaderLength]))
	switch {
	case err == nil:
	case errors.Is(err, bcn.ErrInvalidDDSMagic):
		return nil, fmt.Errorf("%w: %w", ErrBadMagic, err)
	case errors.Is(err, bcn.ErrInvalidDDSHeaderSize):
		return nil, fmt.Errorf("%w: %w", ErrBadHeaderSize, err)
	case errors.Is(err, bcn.ErrInvalidDDSPixelFormatSize):
		return nil, fmt.Errorf("%w: %w", ErrBadPixelFormatSize, err)
	default:
		return nil, fmt.Errorf("%w: %w", ErrHeaderRead, err)
	}

	pf := dh.PixelFormat
	return &SurfaceHeader{
		Magic:             Magic,
		Size:              dh.Size,
		Flags:             dh.Flags,
		Height:            dh.Height,
		Width:             dh.Width,
		PitchOrLinearSize: dh.PitchOrLinearSize,
		Depth:             dh.Depth,
		MipMapCount:       dh.MipMapCount,
		Reserved1:         dh.Reserved1,
		PixelFormat: PixelFormat{
			Size:        pf.Size,
			Flags:       pf.Flags,
			FourCC:      pf.FourCC,
			RGBBitCount: pf.RGBBitCount,
			RBitMask:    pf.RBitMask,
			GBitMask:    pf.GBitMask,
			BBitMask:    pf.BBitMask,
			ABitMask:    pf.ABitMask,
		},
		Caps: Caps{
			Caps1: dh.Caps,
			Caps2: dh.Caps2,
			Caps3: dh.Caps3,
			Caps4: dh.Caps4,
		},
		Reserved2: dh.Reserved2,
	}, nil
}

// FourCC packs four ASCII bytes into a little-endian tag.
func FourCC(a, b, c, d byte) uint32 {
	return binary.LittleEndian.Uint32([]byte{a, b, c, d})
}

// FourCCString unpacks a little-endian tag into its ASCII form.
func FourCCString(value uint32) string {
	var tag [4]byte
	binary.LittleEndian.PutUint32(tag[:], value)
	return string(tag[:])
}
