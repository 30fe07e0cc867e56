// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

/*
Package xdds decodes DirectDraw Surface (DDS) headers and classifies the pixel
encoding so the payload can be handed to OpenGL without further interpretation.

Parse validates the 128-byte header, picks one of DXT1, DXT3, DXT5, BGRA8,
BGR8 or BGR565, and reports the payload size and offset together with the
GL internal format, external format and data type to upload it with.
The payload itself is never read or copied.

Mipmap chains, cubemaps, volume textures and palette surfaces are not
decoded; their header fields are exposed through SurfaceHeader.Caps.
*/
package xdds
