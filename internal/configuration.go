// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package internal provides structures and functions to operate the message layer that are not part of the public API.
package internal

import (
	group "github.com/bytemare/crypto"
)

const (
	// NonceLength is the default length used for nonces.
	NonceLength = 32

	// SeedLength is the default length used for seeds.
	SeedLength = 32
)

// Configuration is the internal representation of the instance runtime parameters. Every length used by the message
// layer is derived from a single Configuration so that encoders and decoders agree.
type Configuration struct {
	KDF          *KDF
	MAC          *Mac
	Hash         *Hash
	NonceLen     int
	EnvelopeSize int
	OPRF         group.Group
	Group        group.Group
}

// OPRFElementLength returns the length of an encoded OPRF group element.
func (c *Configuration) OPRFElementLength() int {
	return c.OPRF.ElementLength()
}

// PublicKeyLength returns the length of an encoded AKE public key.
func (c *Configuration) PublicKeyLength() int {
	return c.Group.ElementLength()
}

// SecretKeyLength returns the length of an encoded AKE secret key.
func (c *Configuration) SecretKeyLength() int {
	return c.Group.ScalarLength()
}

// MaskedResponseLength returns the length of the masked server public key and envelope.
func (c *Configuration) MaskedResponseLength() int {
	return c.PublicKeyLength() + c.EnvelopeSize
}

// KE1Length returns the length of an encoded KE1 payload.
func (c *Configuration) KE1Length() int {
	return c.NonceLen + c.PublicKeyLength()
}

// KE2Length returns the length of an encoded KE2 payload.
func (c *Configuration) KE2Length() int {
	return c.NonceLen + c.PublicKeyLength() + c.MAC.Size()
}

// KE3Length returns the length of an encoded KE3 payload.
func (c *Configuration) KE3Length() int {
	return c.MAC.Size()
}

// ServerSetupLength returns the length of an encoded server setup.
func (c *Configuration) ServerSetupLength() int {
	return c.Hash.Size() + 2*c.SecretKeyLength()
}
