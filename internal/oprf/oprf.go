// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package oprf implements the server side of the Elliptic Curve Oblivious Pseudorandom Function (EC-OPRF) from
// RFC 9497 that the message layer needs: key derivation and blind evaluation.
package oprf

import (
	"errors"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/apake/internal/encoding"
	"github.com/bytemare/apake/internal/tag"
)

// maxDeriveKeyAttempts bounds the DeriveKeyPair counter, which is encoded on one byte.
const maxDeriveKeyAttempts = 255

var (
	// ErrDeriveKeyFailed happens when no valid key could be derived from the seed.
	ErrDeriveKeyFailed = errors.New("could not derive an OPRF key from the seed")

	// ErrNilElement happens when evaluating a nil blinded element.
	ErrNilElement = errors.New("nil blinded element")
)

// mode distinguishes between the OPRF base mode and the Verifiable mode.
type mode byte

// base identifies the OPRF non-verifiable, base mode.
const base mode = iota

// Identifier returns the ciphersuite identifier of g, or an empty string if g is not supported.
func Identifier(g group.Group) string {
	switch g {
	case group.Ristretto255Sha512:
		return "ristretto255-SHA512"
	case group.P256Sha256:
		return "P256-SHA256"
	case group.P384Sha384:
		return "P384-SHA384"
	case group.P521Sha512:
		return "P521-SHA512"
	default:
		return ""
	}
}

// contextString is "OPRFV1-" ‖ I2OSP(mode, 1) ‖ "-" ‖ identifier.
func contextString(g group.Group) []byte {
	return encoding.Concat3(
		[]byte(tag.OPRFVersionPrefix),
		[]byte{byte(base)},
		[]byte("-"+Identifier(g)),
	)
}

// DeriveKey deterministically maps seed and info to a non-zero scalar in g.
func DeriveKey(g group.Group, seed, info []byte) (*group.Scalar, error) {
	dst := encoding.Concat([]byte(tag.DeriveKeyPairInternal), contextString(g))
	deriveInput := encoding.Concat(seed, encoding.EncodeVector(info))

	for counter := 0; counter <= maxDeriveKeyAttempts; counter++ {
		s := g.HashToScalar(encoding.Concat(deriveInput, []byte{byte(counter)}), dst)
		if !s.IsZero() {
			return s, nil
		}
	}

	return nil, ErrDeriveKeyFailed
}

// Evaluate evaluates the blinded input with the given key. The blinded element is not modified.
func Evaluate(privateKey *group.Scalar, blindedElement *group.Element) (*group.Element, error) {
	if blindedElement == nil {
		return nil, ErrNilElement
	}

	return blindedElement.Copy().Multiply(privateKey), nil
}
