// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package xdds

import (
	"fmt"

	"github.com/woozymasta/bcn"
)

// GLenum is an OpenGL enumerant passed to glTexImage2D/glCompressedTexImage2D.
type GLenum uint32

// OpenGL enumerants used by the supported formats.
const (
	GLRGB                    GLenum = 0x1907
	GLUnsignedByte           GLenum = 0x1401
	GLRGB5                   GLenum = 0x8050
	GLRGB8                   GLenum = 0x8051
	GLRGB5A1                 GLenum = 0x8057
	GLRGBA8                  GLenum = 0x8058
	GLBGR                    GLenum = 0x80E0
	GLBGRA                   GLenum = 0x80E1
	GLUnsignedShort565       GLenum = 0x8363
	GLUnsignedShort1555Rev   GLenum = 0x8366
	GLCompressedRGBAS3TCDXT1 GLenum = 0x83F1
	GLCompressedRGBAS3TCDXT3 GLenum = 0x83F2
	GLCompressedRGBAS3TCDXT5 GLenum = 0x83F3
)

var glNames = map[GLenum]string{
	0:                        "GL_NONE",
	GLRGB:                    "GL_RGB",
	GLUnsignedByte:           "GL_UNSIGNED_BYTE",
	GLRGB5:                   "GL_RGB5",
	GLRGB8:                   "GL_RGB8",
	GLRGB5A1:                 "GL_RGB5_A1",
	GLRGBA8:                  "GL_RGBA8",
	GLBGR:                    "GL_BGR",
	GLBGRA:                   "GL_BGRA",
	GLUnsignedShort565:       "GL_UNSIGNED_SHORT_5_6_5",
	GLUnsignedShort1555Rev:   "GL_UNSIGNED_SHORT_1_5_5_5_REV",
	GLCompressedRGBAS3TCDXT1: "GL_COMPRESSED_RGBA_S3TC_DXT1_EXT",
	GLCompressedRGBAS3TCDXT3: "GL_COMPRESSED_RGBA_S3TC_DXT3_EXT",
	GLCompressedRGBAS3TCDXT5: "GL_COMPRESSED_RGBA_S3TC_DXT5_EXT",
}

func (e GLenum) String() string {
	if name, ok := glNames[e]; ok {
		return name
	}

	return fmt.Sprintf("0x%04X", uint32(e))
}

// Format identifies a classified surface encoding.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatDXT1
	FormatDXT3
	FormatDXT5
	FormatBGRA8
	FormatBGR8
	FormatBGR5A1
	FormatBGR565
	FormatIndex8
)

// formatInfo describes how a classified surface is uploaded.
type formatInfo struct {
	name           string
	compressed     bool
	swap           bool
	palette        bool
	usable         bool
	blockEdge      uint32
	blockBytes     uint32
	internalFormat GLenum
	externalFormat GLenum
	dataType       GLenum
}

// formats is indexed by Format. BGR5A1 and INDEX8 are recognized for
// diagnostics only and are never returned by Classify.
var formats = [...]formatInfo{
	FormatUnknown: {name: "UNKNOWN"},
	FormatDXT1:    {name: "DXT1", compressed: true, usable: true, blockEdge: 4, blockBytes: 8, internalFormat: GLCompressedRGBAS3TCDXT1},
	FormatDXT3:    {name: "DXT3", compressed: true, usable: true, blockEdge: 4, blockBytes: 16, internalFormat: GLCompressedRGBAS3TCDXT3},
	FormatDXT5:    {name: "DXT5", compressed: true, usable: true, blockEdge: 4, blockBytes: 16, internalFormat: GLCompressedRGBAS3TCDXT5},
	FormatBGRA8:   {name: "BGRA8", usable: true, blockEdge: 1, blockBytes: 4, internalFormat: GLRGBA8, externalFormat: GLBGRA, dataType: GLUnsignedByte},
	FormatBGR8:    {name: "BGR8", usable: true, blockEdge: 1, blockBytes: 3, internalFormat: GLRGB8, externalFormat: GLBGR, dataType: GLUnsignedByte},
	FormatBGR5A1:  {name: "BGR5A1", swap: true, blockEdge: 1, blockBytes: 2, internalFormat: GLRGB5A1, externalFormat: GLBGRA, dataType: GLUnsignedShort1555Rev},
	FormatBGR565:  {name: "BGR565", swap: true, usable: true, blockEdge: 1, blockBytes: 2, internalFormat: GLRGB5, externalFormat: GLRGB, dataType: GLUnsignedShort565},
	FormatIndex8:  {name: "INDEX8", palette: true, blockEdge: 1, blockBytes: 1, internalFormat: GLRGB8, externalFormat: GLBGRA, dataType: GLUnsignedByte},
}

func (f Format) info() formatInfo {
	if int(f) >= len(formats) {
		return formats[FormatUnknown]
	}

	return formats[f]
}

// String returns the conventional name of the format.
func (f Format) String() string {
	return f.info().name
}

// Compressed reports whether the format is block-compressed.
func (f Format) Compressed() bool {
	return f.info().compressed
}

// Supported reports whether Parse can produce a result for the format.
func (f Format) Supported() bool {
	return f.info().usable
}

// BlockBytes returns bytes per block for compressed formats and bytes per
// pixel otherwise.
func (f Format) BlockBytes() uint32 {
	return f.info().blockBytes
}

// BCn maps the format to the bcn decoder format, for callers that decode
// surfaces on the CPU instead of uploading them. Formats bcn cannot decode
// map to bcn.FormatUnknown.
func (f Format) BCn() bcn.Format {
	switch f {
	case FormatDXT1:
		return bcn.FormatDXT1
	case FormatDXT3:
		return bcn.FormatDXT3
	case FormatDXT5:
		return bcn.FormatDXT5
	case FormatBGRA8:
		return bcn.FormatBGRA8
	default:
		return bcn.FormatUnknown
	}
}
