// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package xdds

// DXT5Mode selects how the DXT5 predicate compares the fourCC tag.
type DXT5Mode uint8

const (
	// DXT5Equal recognizes DXT5 only when the tag equals "DXT5".
	DXT5Equal DXT5Mode = iota
	// DXT5Literal reproduces the legacy loader: any fourCC surface whose tag
	// is not DXT1, DXT3 or DXT5 is reported as DXT5, and a real DXT5 tag is
	// unsupported. Use it only to compare against files validated by that loader.
	DXT5Literal
)

var (
	fourCCDXT1 = FourCC('D', 'X', 'T', '1')
	fourCCDXT3 = FourCC('D', 'X', 'T', '3')
	fourCCDXT5 = FourCC('D', 'X', 'T', '5')
)

func (pf PixelFormat) has(flag uint32) bool {
	return pf.Flags&flag != 0
}

func isDXT1(pf PixelFormat) bool {
	return pf.has(PFFourCC) && pf.FourCC == fourCCDXT1
}

func isDXT3(pf PixelFormat) bool {
	return pf.has(PFFourCC) && pf.FourCC == fourCCDXT3
}

func isDXT5(pf PixelFormat, mode DXT5Mode) bool {
	if !pf.has(PFFourCC) {
		return false
	}
	if mode == DXT5Literal {
		return pf.FourCC != fourCCDXT5
	}

	return pf.FourCC == fourCCDXT5
}

func isBGRA8(pf PixelFormat) bool {
	return pf.has(PFRGB) && pf.has(PFAlphaPixels) &&
		pf.RGBBitCount == 32 &&
		pf.RBitMask == 0x00ff0000 && pf.GBitMask == 0x0000ff00 &&
		pf.BBitMask == 0x000000ff && pf.ABitMask == 0xff000000
}

func isBGR8(pf PixelFormat) bool {
	return pf.has(PFRGB) && !pf.has(PFAlphaPixels) &&
		pf.RGBBitCount == 24 &&
		pf.RBitMask == 0x00ff0000 && pf.GBitMask == 0x0000ff00 &&
		pf.BBitMask == 0x000000ff
}

func isBGR5A1(pf PixelFormat) bool {
	return pf.has(PFRGB) && pf.has(PFAlphaPixels) &&
		pf.RGBBitCount == 16 &&
		pf.RBitMask == 0x00007c00 && pf.GBitMask == 0x000003e0 &&
		pf.BBitMask == 0x0000001f && pf.ABitMask == 0x00008000
}

func isBGR565(pf PixelFormat) bool {
	return pf.has(PFRGB) && !pf.has(PFAlphaPixels) &&
		pf.RGBBitCount == 16 &&
		pf.RBitMask == 0x0000f800 && pf.GBitMask == 0x000007e0 &&
		pf.BBitMask == 0x0000001f
}

func isIndex8(pf PixelFormat) bool {
	return pf.has(PFIndexed) && pf.RGBBitCount == 8
}

// Classify maps a pixel format block to a supported Format. Predicates are
// evaluated in a fixed order and the first match wins. Indexed surfaces are
// rejected before any predicate runs. On failure the returned *FormatError
// names the near match, if one was recognized.
func Classify(pf PixelFormat, mode DXT5Mode) (Format, error) {
	if pf.has(PFIndexed) {
		return FormatUnknown, newFormatError(pf)
	}

	switch {
	case isDXT1(pf):
		return FormatDXT1, nil
	case isDXT3(pf):
		return FormatDXT3, nil
	case isDXT5(pf, mode):
		return FormatDXT5, nil
	case isBGRA8(pf):
		return FormatBGRA8, nil
	case isBGR8(pf):
		return FormatBGR8, nil
	case isBGR565(pf):
		return FormatBGR565, nil
	}

	return FormatUnknown, newFormatError(pf)
}

func newFormatError(pf PixelFormat) *FormatError {
	near := FormatUnknown
	switch {
	case isBGR5A1(pf):
		near = FormatBGR5A1
	case isIndex8(pf):
		near = FormatIndex8
	}

	return &FormatError{PixelFormat: pf, Near: near}
}
