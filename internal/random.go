// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	cryptorand "crypto/rand"
	"fmt"
	"io"
)

// RandomBytes returns random bytes of length len (wrapper for crypto/rand).
func RandomBytes(length int) []byte {
	r := make([]byte, length)
	if _, err := cryptorand.Read(r); err != nil {
		// We can as well not panic and try again in a loop
		panic(fmt.Errorf("unexpected error in generating random bytes : %w", err))
	}

	return r
}

// ReadRandom reads exactly length bytes from rng. A nil rng falls back to crypto/rand.
func ReadRandom(rng io.Reader, length int) ([]byte, error) {
	if rng == nil {
		rng = cryptorand.Reader
	}

	r := make([]byte, length)
	if _, err := io.ReadFull(rng, r); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}

	return r, nil
}

// Xor returns a new slice holding a ^ b. Both inputs must have the same length.
func Xor(a, b []byte) []byte {
	if len(a) != len(b) {
		panic("xoring slices must be of same length")
	}

	dst := make([]byte, len(a))

	for i := range a {
		dst[i] = a[i] ^ b[i]
	}

	return dst
}
