// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package masking provides the credential masking mechanism.
package masking

import (
	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/internal/encoding"
	"github.com/bytemare/apake/internal/tag"
)

func xorResponse(conf *internal.Configuration, key, nonce, in []byte) []byte {
	pad := conf.KDF.Expand(
		key,
		encoding.SuffixString(nonce, tag.CredentialResponsePad),
		conf.MaskedResponseLength(),
	)

	return internal.Xor(pad, in)
}

// Mask encrypts the serverPublicKey and the envelope under nonce and the maskingKey.
func Mask(conf *internal.Configuration, maskingKey, nonce, serverPublicKey, envelope []byte) []byte {
	clear := encoding.Concat(serverPublicKey, envelope)
	return xorResponse(conf, maskingKey, nonce, clear)
}

// Unmask decrypts the maskedResponse and returns the encoded server public key and envelope.
// This function assumes that maskedResponse has been checked to be of length pointLength + envelope size.
func Unmask(conf *internal.Configuration, maskingKey, nonce, maskedResponse []byte) (serverPublicKey, envelope []byte) {
	clear := xorResponse(conf, maskingKey, nonce, maskedResponse)
	return clear[:conf.PublicKeyLength()], clear[conf.PublicKeyLength():]
}
