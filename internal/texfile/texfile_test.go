// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package texfile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func testPayload() []byte {
	data := make([]byte, 128+64*64)
	copy(data, "DDS ")
	for i := 4; i < len(data); i++ {
		data[i] = byte((i*31 + 7) & 0xff)
	}
	return data
}

func wrapLZ4(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("lz4 write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("lz4 close: %v", err)
	}
	return buf.Bytes()
}

func wrapZstd(t *testing.T, data []byte) []byte {
	t.Helper()

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	defer func() { _ = enc.Close() }()

	return enc.EncodeAll(data, nil)
}

func TestDecodeWrappings(t *testing.T) {
	t.Parallel()

	raw := testPayload()
	tests := []struct {
		name string
		in   []byte
		want Wrapping
	}{
		{name: "raw", in: raw, want: WrapNone},
		{name: "lz4", in: wrapLZ4(t, raw), want: WrapLZ4},
		{name: "zstd", in: wrapZstd(t, raw), want: WrapZstd},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, wrap, err := Decode(bytes.NewReader(tc.in))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if wrap != tc.want {
				t.Fatalf("wrapping = %s, want %s", wrap, tc.want)
			}
			if !bytes.Equal(got, raw) {
				t.Fatalf("round-trip mismatch")
			}
		})
	}
}

func TestDecodeShortInput(t *testing.T) {
	t.Parallel()

	for _, in := range [][]byte{nil, []byte("DD")} {
		got, wrap, err := Decode(bytes.NewReader(in))
		if err != nil {
			t.Fatalf("Decode(%q): %v", in, err)
		}
		if wrap != WrapNone || !bytes.Equal(got, in) {
			t.Fatalf("Decode(%q) = %q/%s", in, got, wrap)
		}
	}
}

func TestDecodeCorrupt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []byte
	}{
		{name: "lz4", in: []byte{0x04, 0x22, 0x4d, 0x18, 0xff, 0xff, 0xff, 0xff, 0x00, 0x01}},
		{name: "zstd", in: []byte{0x28, 0xb5, 0x2f, 0xfd, 0xff, 0xff, 0xff, 0xff, 0x00, 0x01}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, _, err := Decode(bytes.NewReader(tc.in)); !errors.Is(err, ErrDecompress) {
				t.Fatalf("expected ErrDecompress, got %v", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	raw := testPayload()
	dir := t.TempDir()
	path := filepath.Join(dir, "tex.dds.lz4")
	if err := os.WriteFile(path, wrapLZ4(t, raw), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, wrap, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if wrap != WrapLZ4 || !bytes.Equal(got, raw) {
		t.Fatalf("Load mismatch (wrapping %s)", wrap)
	}

	if _, _, err := Load(filepath.Join(dir, "missing.dds")); !errors.Is(err, ErrOpenFile) {
		t.Fatalf("expected ErrOpenFile, got %v", err)
	}
}

func TestWrappingString(t *testing.T) {
	t.Parallel()

	for w, want := range map[Wrapping]string{WrapNone: "none", WrapLZ4: "lz4", WrapZstd: "zstd", Wrapping(9): "none"} {
		if got := w.String(); got != want {
			t.Fatalf("String() = %q, want %q", got, want)
		}
	}
}
