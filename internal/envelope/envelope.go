// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package envelope provides the configuration-dependent shape of the client envelope.
package envelope

import (
	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/message"
)

// Size returns the length of a serialized envelope for the configuration.
func Size(conf *internal.Configuration) int {
	return conf.EnvelopeSize
}

// Dummy returns an envelope of the exact serialized length of a real one, holding only zeros.
func Dummy(conf *internal.Configuration) *message.Envelope {
	return &message.Envelope{
		Nonce:   make([]byte, conf.NonceLen),
		AuthTag: make([]byte, conf.EnvelopeSize-conf.NonceLen),
	}
}

// Split returns the envelope held in input, which must be exactly Size(conf) bytes long. The returned envelope does
// not alias input.
func Split(conf *internal.Configuration, input []byte) *message.Envelope {
	env := &message.Envelope{
		Nonce:   make([]byte, conf.NonceLen),
		AuthTag: make([]byte, len(input)-conf.NonceLen),
	}

	copy(env.Nonce, input[:conf.NonceLen])
	copy(env.AuthTag, input[conf.NonceLen:])

	return env
}
