// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package internal

import "errors"

var (
	// ErrConfigurationInvalidLength happens when deserializing a configuration of invalid length.
	ErrConfigurationInvalidLength = errors.New("invalid encoded configuration length")

	// ErrContextTooLong happens when the configuration context does not fit a two-byte length prefix.
	ErrContextTooLong = errors.New("configuration context is longer than 65535 bytes")

	// ErrInvalidOPRFid indicates an unavailable or unsupported OPRF group.
	ErrInvalidOPRFid = errors.New("invalid OPRF group id")

	// ErrInvalidAKEid indicates an unavailable or unsupported AKE group.
	ErrInvalidAKEid = errors.New("invalid AKE group id")

	// ErrInvalidKDFid indicates an unavailable or unsupported KDF hash function.
	ErrInvalidKDFid = errors.New("invalid KDF id")

	// ErrInvalidMACid indicates an unavailable or unsupported MAC hash function.
	ErrInvalidMACid = errors.New("invalid MAC id")

	// ErrInvalidHASHid indicates an unavailable or unsupported hash function.
	ErrInvalidHASHid = errors.New("invalid Hash id")

	// ErrInvalidKSFid indicates an unavailable key stretching function.
	ErrInvalidKSFid = errors.New("invalid KSF id")

	// ErrInvalidBlindedMessage indicates the blinded message bytes are not a valid group element.
	ErrInvalidBlindedMessage = errors.New("blinded message is an invalid element")

	// ErrInvalidEvaluatedMessage indicates the evaluated message bytes are not a valid group element.
	ErrInvalidEvaluatedMessage = errors.New("evaluated message is an invalid element")

	// ErrInvalidServerPublicKey indicates the server public key failed validation.
	ErrInvalidServerPublicKey = errors.New("invalid server public key")

	// ErrInvalidClientPublicKey indicates the client public key failed validation.
	ErrInvalidClientPublicKey = errors.New("invalid client public key")

	// ErrInvalidClientKeyShare indicates the client's ephemeral key share failed validation.
	ErrInvalidClientKeyShare = errors.New("invalid ephemeral client public key")

	// ErrInvalidServerKeyShare indicates the server's ephemeral key share failed validation.
	ErrInvalidServerKeyShare = errors.New("invalid ephemeral server public key")

	// ErrPublicKeyIdentity indicates a public key is the group identity element.
	ErrPublicKeyIdentity = errors.New("public key is the identity element")

	// ErrInvalidPrivateKey indicates a secret key that could not be decoded or is zero.
	ErrInvalidPrivateKey = errors.New("invalid private key")

	// ErrZeroScalar indicates a scalar that is zero.
	ErrZeroScalar = errors.New("scalar is zero")

	// ErrNilMessage indicates a nil message was given where one was required.
	ErrNilMessage = errors.New("nil message")

	// ErrNilConfiguration indicates a missing configuration.
	ErrNilConfiguration = errors.New("nil configuration")

	// ErrNilServerSetup indicates a missing server setup.
	ErrNilServerSetup = errors.New("nil server setup")

	// ErrRandomSource indicates the random source could not deliver enough bytes.
	ErrRandomSource = errors.New("could not read from the random source")
)
