// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package keys provides AKE key pair derivation, decoding, and public key validation.
package keys

import (
	"io"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/internal/encoding"
	"github.com/bytemare/apake/internal/oprf"
	"github.com/bytemare/apake/internal/tag"
)

// DeriveKeyPair deterministically derives a key pair in g from seed.
func DeriveKeyPair(g group.Group, seed []byte) (*group.Scalar, *group.Element, error) {
	sk, err := oprf.DeriveKey(g, seed, []byte(tag.DeriveDiffieHellmanKeyPair))
	if err != nil {
		return nil, nil, err
	}

	return sk, g.Base().Multiply(sk), nil
}

// GenerateKeyPair derives a key pair in g from a fresh seed read from rng.
func GenerateKeyPair(g group.Group, rng io.Reader) (*group.Scalar, *group.Element, error) {
	seed, err := internal.ReadRandom(rng, internal.SeedLength)
	if err != nil {
		return nil, nil, err
	}

	return DeriveKeyPair(g, seed)
}

// DecodeSecretKey decodes a non-zero scalar of g.
func DecodeSecretKey(g group.Group, encoded []byte) (*group.Scalar, error) {
	if len(encoded) != g.ScalarLength() {
		return nil, internal.ErrInvalidPrivateKey
	}

	sk := g.NewScalar()
	if err := sk.Decode(encoded); err != nil {
		return nil, err
	}

	if sk.IsZero() {
		return nil, internal.ErrZeroScalar
	}

	return sk, nil
}

// CheckPublicKey decodes a public key of g and rejects the identity element. The caller has already verified the
// input length.
func CheckPublicKey(g group.Group, encoded []byte) (*group.Element, error) {
	if encoding.IsAllZeros(encoded) {
		return nil, internal.ErrPublicKeyIdentity
	}

	pk := g.NewElement()
	if err := pk.Decode(encoded); err != nil {
		return nil, err
	}

	if pk.IsIdentity() {
		return nil, internal.ErrPublicKeyIdentity
	}

	return pk, nil
}
