// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package apake

import (
	"crypto"
	"encoding/hex"
	"log/slog"
	"slices"

	group "github.com/bytemare/crypto"
	"github.com/bytemare/ksf"

	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/internal/encoding"
	"github.com/bytemare/apake/internal/keys"
	"github.com/bytemare/apake/internal/oprf"
)

// Group identifies the prime-order group with hash-to-curve capability to use in OPRF and AKE.
type Group byte

const (
	// RistrettoSha512 identifies the Ristretto255 group and SHA2-512.
	RistrettoSha512 = Group(group.Ristretto255Sha512)

	// P256Sha256 identifies the NIST P-256 group and SHA-256.
	P256Sha256 = Group(group.P256Sha256)

	// P384Sha512 identifies the NIST P-384 group and SHA-384.
	P384Sha512 = Group(group.P384Sha384)

	// P521Sha512 identifies the NIST P-512 group and SHA-512.
	P521Sha512 = Group(group.P521Sha512)
)

// Available returns whether the Group byte is recognized in this implementation.
func (g Group) Available() bool {
	switch g {
	case RistrettoSha512, P256Sha256, P384Sha512, P521Sha512:
		return group.Group(g).Available()
	default:
		return false
	}
}

// String returns the ciphersuite name of the group.
func (g Group) String() string {
	if !g.Available() {
		return "unknown"
	}

	return oprf.Identifier(group.Group(g))
}

// Group returns the group identifier of the underlying group library.
func (g Group) Group() group.Group {
	return group.Group(g)
}

// maxContextLength is the largest context a two-byte length prefix can encode.
const maxContextLength = 1<<16 - 1

// confLength is the length of the fixed part of an encoded configuration: six identifiers and a context length.
const confLength = 8

// Configuration represents the message layer's runtime parameters such as the groups and hash functions. Both peers
// must use the same configuration: every message length is derived from it.
type Configuration struct {
	// Context is optional shared information to include in the AKE transcript.
	Context []byte `json:"context"`

	// KDF identifies the hash function to be used for key derivation (e.g. HKDF).
	KDF crypto.Hash `json:"kdf"`

	// MAC identifies the hash function to be used for message authentication (e.g. HMAC).
	MAC crypto.Hash `json:"mac"`

	// Hash identifies the hash function to be used for hashing, and sets the masking key length.
	Hash crypto.Hash `json:"hash"`

	// OPRF identifies the group to use for the OPRF.
	OPRF Group `json:"oprf"`

	// KSF identifies the key stretching function the client hardens its OPRF output with. 0 means identity.
	KSF ksf.Identifier `json:"ksf"`

	// AKE identifies the group to use for the AKE and the client and server key pairs.
	AKE Group `json:"group"`
}

// DefaultConfiguration returns a default configuration with strong parameters.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		OPRF:    RistrettoSha512,
		KDF:     crypto.SHA512,
		MAC:     crypto.SHA512,
		Hash:    crypto.SHA512,
		KSF:     ksf.Argon2id,
		AKE:     RistrettoSha512,
		Context: nil,
	}
}

func (c *Configuration) verify() error {
	if !c.OPRF.Available() {
		return ErrConfiguration.Join(internal.ErrInvalidOPRFid)
	}

	if !c.AKE.Available() {
		return ErrConfiguration.Join(internal.ErrInvalidAKEid)
	}

	if !internal.IsHashFunctionValid(c.KDF) {
		return ErrConfiguration.Join(internal.ErrInvalidKDFid)
	}

	if !internal.IsHashFunctionValid(c.MAC) {
		return ErrConfiguration.Join(internal.ErrInvalidMACid)
	}

	if !internal.IsHashFunctionValid(c.Hash) {
		return ErrConfiguration.Join(internal.ErrInvalidHASHid)
	}

	if c.KSF != 0 && !c.KSF.Available() {
		return ErrConfiguration.Join(internal.ErrInvalidKSFid)
	}

	if len(c.Context) > maxContextLength {
		return ErrConfiguration.Join(internal.ErrContextTooLong)
	}

	return nil
}

// toInternal builds the internal representation of the configuration parameters.
func (c *Configuration) toInternal() (*internal.Configuration, error) {
	if err := c.verify(); err != nil {
		return nil, err
	}

	mac := internal.NewMac(c.MAC)

	return &internal.Configuration{
		OPRF:         c.OPRF.Group(),
		Group:        c.AKE.Group(),
		KDF:          internal.NewKDF(c.KDF),
		MAC:          mac,
		Hash:         internal.NewHash(c.Hash),
		NonceLen:     internal.NonceLength,
		EnvelopeSize: internal.NonceLength + mac.Size(),
	}, nil
}

// Deserializer returns a pointer to a Deserializer structure bound to the configuration.
func (c *Configuration) Deserializer() (*Deserializer, error) {
	conf, err := c.toInternal()
	if err != nil {
		return nil, err
	}

	return &Deserializer{conf: conf, config: c.clone()}, nil
}

func (c *Configuration) clone() *Configuration {
	return &Configuration{
		OPRF:    c.OPRF,
		KDF:     c.KDF,
		MAC:     c.MAC,
		Hash:    c.Hash,
		KSF:     c.KSF,
		AKE:     c.AKE,
		Context: slices.Clone(c.Context),
	}
}

// LogValue implements the slog.LogValuer interface. The context is logged hex encoded.
func (c *Configuration) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("oprf", c.OPRF.String()),
		slog.String("kdf", c.KDF.String()),
		slog.String("mac", c.MAC.String()),
		slog.String("hash", c.Hash.String()),
		slog.Int("ksf", int(c.KSF)),
		slog.String("ake", c.AKE.String()),
		slog.String("context", hex.EncodeToString(c.Context)),
	)
}

// KeyGen returns a fresh key pair in the AKE group, for use as a server key.
func (c *Configuration) KeyGen() (secretKey, publicKey []byte) {
	sk, pk, err := keys.GenerateKeyPair(c.AKE.Group(), nil)
	if err != nil {
		panic(err)
	}

	return sk.Encode(), pk.Encode()
}

// Serialize returns the byte encoding of the Configuration structure. It panics if the context is longer than 65535
// bytes, which Deserializer and NewServerSetup reject.
func (c *Configuration) Serialize() []byte {
	b := []byte{
		byte(c.OPRF),
		byte(c.KDF),
		byte(c.MAC),
		byte(c.Hash),
		byte(c.KSF),
		byte(c.AKE),
	}

	return encoding.Concat(b, encoding.EncodeVector(c.Context))
}

// DeserializeConfiguration decodes the input and returns a Configuration structure.
func DeserializeConfiguration(encoded []byte) (*Configuration, error) {
	if len(encoded) < confLength {
		return nil, ErrConfiguration.Join(internal.ErrConfigurationInvalidLength)
	}

	ctx, length, err := encoding.DecodeVector(encoded[confLength-2:])
	if err != nil || confLength-2+length != len(encoded) {
		return nil, ErrConfiguration.Join(internal.ErrConfigurationInvalidLength)
	}

	var context []byte
	if len(ctx) != 0 {
		context = slices.Clone(ctx)
	}

	c := &Configuration{
		OPRF:    Group(encoded[0]),
		KDF:     crypto.Hash(encoded[1]),
		MAC:     crypto.Hash(encoded[2]),
		Hash:    crypto.Hash(encoded[3]),
		KSF:     ksf.Identifier(encoded[4]),
		AKE:     Group(encoded[5]),
		Context: context,
	}

	if err = c.verify(); err != nil {
		return nil, err
	}

	return c, nil
}
