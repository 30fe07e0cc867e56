// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

// Package texfile loads texture files into memory, unwrapping LZ4-frame and
// zstd compressed files (*.dds.lz4, *.dds.zst) on the fly.
package texfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const (
	magicLZ4Frame = 0x184D2204
	magicZstd     = 0xFD2FB528
)

var (
	// ErrOpenFile indicates the texture file could not be opened.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadFile indicates reading texture bytes failed.
	ErrReadFile = errors.New("read file failed")
	// ErrDecompress indicates unwrapping a compressed texture failed.
	ErrDecompress = errors.New("decompress failed")
)

// Wrapping is the outer compression detected around a texture.
type Wrapping uint8

const (
	WrapNone Wrapping = iota
	WrapLZ4
	WrapZstd
)

func (w Wrapping) String() string {
	switch w {
	case WrapLZ4:
		return "lz4"
	case WrapZstd:
		return "zstd"
	default:
		return "none"
	}
}

// Load reads the file at path and returns the unwrapped texture bytes.
func Load(path string) ([]byte, Wrapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, WrapNone, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode reads r to the end, unwrapping it if it starts with an LZ4 frame
// or zstd magic.
func Decode(r io.Reader) ([]byte, Wrapping, error) {
	br := bufio.NewReader(r)
	peek, err := br.Peek(4)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, WrapNone, fmt.Errorf("%w: %v", ErrReadFile, err)
	}

	wrap := WrapNone
	if len(peek) == 4 {
		switch binary.LittleEndian.Uint32(peek) {
		case magicLZ4Frame:
			wrap = WrapLZ4
		case magicZstd:
			wrap = WrapZstd
		}
	}

	switch wrap {
	case WrapLZ4:
		data, err := io.ReadAll(lz4.NewReader(br))
		if err != nil {
			return nil, wrap, fmt.Errorf("%w: lz4: %v", ErrDecompress, err)
		}
		return data, wrap, nil

	case WrapZstd:
		dec, err := zstd.NewReader(br)
		if err != nil {
			return nil, wrap, fmt.Errorf("%w: zstd: %v", ErrDecompress, err)
		}
		defer dec.Close()

		data, err := io.ReadAll(dec)
		if err != nil {
			return nil, wrap, fmt.Errorf("%w: zstd: %v", ErrDecompress, err)
		}
		return data, wrap, nil

	default:
		data, err := io.ReadAll(br)
		if err != nil {
			return nil, wrap, fmt.Errorf("%w: %v", ErrReadFile, err)
		}
		return data, wrap, nil
	}
}
