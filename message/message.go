// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package message provides the wire messages of the registration and login flows.
//
// Every message encodes as the concatenation of its fields, in declaration order of the protocol, without any length
// prefix or tag. Lengths are fixed by the configuration both peers agreed on, so decoding is done by a
// configuration-bound Deserializer in the parent package.
package message

import (
	"bytes"
	"slices"

	group "github.com/bytemare/crypto"
)

// Serializer is implemented by every message and sub-payload of the protocol.
type Serializer interface {
	Serialize() []byte
}

func encodeElement(e *group.Element) []byte {
	if e == nil {
		return nil
	}

	return e.Encode()
}

func copyElement(e *group.Element) *group.Element {
	if e == nil {
		return nil
	}

	return e.Copy()
}

// equal compares the wire encodings of a and b.
func equal(a, b Serializer) bool {
	return bytes.Equal(a.Serialize(), b.Serialize())
}

func clone(b []byte) []byte {
	return slices.Clone(b)
}
