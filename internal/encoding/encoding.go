// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package encoding provides encoding utilities.
package encoding

import (
	"crypto/subtle"
	"errors"
)

var (
	// ErrI2OSPLength indicates a vector length prefix that is not supported.
	ErrI2OSPLength = errors.New("requested size is too big")

	// ErrDecodingVector indicates the input is too short for the announced vector length.
	ErrDecodingVector = errors.New("insufficient encoding length for vector")
)

// EncodeVectorLen returns the input prefixed with its length encoded on length bytes.
func EncodeVectorLen(in []byte, length uint16) []byte {
	switch length {
	case 1, 2:
		return Concat(I2OSP(len(in), length), in)
	default:
		panic(ErrI2OSPLength)
	}
}

// EncodeVector returns the input with a two byte encoding of its length.
func EncodeVector(in []byte) []byte {
	return EncodeVectorLen(in, 2)
}

// DecodeVector reads a two byte length prefixed vector from in, and returns it along with the number of bytes read.
func DecodeVector(in []byte) ([]byte, int, error) {
	if len(in) < 2 {
		return nil, 0, ErrDecodingVector
	}

	dataLen := OS2IP(in[0:2])
	if len(in) < 2+dataLen {
		return nil, 0, ErrDecodingVector
	}

	return in[2 : 2+dataLen], 2 + dataLen, nil
}

// IsAllZeros returns whether the input only holds zero bytes. The comparison is constant time. An empty input is
// not considered all zeros.
func IsAllZeros(in []byte) bool {
	if len(in) == 0 {
		return false
	}

	return subtle.ConstantTimeCompare(in, make([]byte, len(in))) == 1
}
