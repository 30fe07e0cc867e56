// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/xdds

package xdds

import "math/bits"

const maxInt = uint64(^uint(0) >> 1)

// mulSize multiplies payload size factors and fails if the product does not
// fit into an int.
func mulSize(factors ...uint64) (int, error) {
	n := uint64(1)
	for _, f := range factors {
		hi, lo := bits.Mul64(n, f)
		if hi != 0 || lo > maxInt {
			return 0, ErrSizeOverflow
		}
		n = lo
	}

	// #nosec G115 -- bounds checked above.
	return int(n), nil
}

// blockCount returns the number of blocks covering dim pixels, at least one.
func blockCount(dim, edge uint32) uint64 {
	n := (uint64(dim) + uint64(edge) - 1) / uint64(edge)
	if n < 1 {
		return 1
	}

	return n
}
