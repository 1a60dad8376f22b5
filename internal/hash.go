// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import (
	"crypto"

	"github.com/bytemare/hash"
)

// IsHashFunctionValid returns whether the hash function is supported and linked into the binary.
func IsHashFunctionValid(id crypto.Hash) bool {
	switch id {
	case crypto.SHA256, crypto.SHA384, crypto.SHA512, crypto.SHA3_256, crypto.SHA3_512:
		return id.Available()
	default:
		return false
	}
}

// NewKDF returns a newly instantiated KDF.
func NewKDF(id crypto.Hash) *KDF {
	return &KDF{h: hash.FromCrypto(id).GetHashFunction()}
}

// KDF wraps a hash function and exposes KDF methods.
type KDF struct {
	h *hash.Fixed
}

// Expand exposes an Expand only KDF method.
func (k *KDF) Expand(key, info []byte, length int) []byte {
	return k.h.HKDFExpand(key, info, length)
}

// Size returns the output size of the Extract method.
func (k *KDF) Size() int {
	return k.h.Size()
}

// NewMac returns a newly instantiated Mac.
func NewMac(id crypto.Hash) *Mac {
	return &Mac{h: hash.FromCrypto(id).GetHashFunction()}
}

// Mac wraps a hash function and exposes Message Authentication Code methods.
type Mac struct {
	h *hash.Fixed
}

// Size returns the MAC's output length.
func (m *Mac) Size() int {
	return m.h.Size()
}

// NewHash returns a newly instantiated Hash.
func NewHash(id crypto.Hash) *Hash {
	return &Hash{h: hash.FromCrypto(id).GetHashFunction()}
}

// Hash wraps a hash function and exposes only necessary hashing methods.
type Hash struct {
	h *hash.Fixed
}

// Size returns the output size of the hashing function.
func (h *Hash) Size() int {
	return h.h.Size()
}
