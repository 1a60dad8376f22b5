// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package apake

import (
	"encoding/hex"
	"io"
	"log/slog"
	"slices"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/internal/encoding"
	"github.com/bytemare/apake/internal/envelope"
	"github.com/bytemare/apake/internal/keys"
	"github.com/bytemare/apake/internal/oprf"
	"github.com/bytemare/apake/internal/tag"
	"github.com/bytemare/apake/message"
)

// KeyPair groups a secret key and its public key.
type KeyPair struct {
	SecretKey *group.Scalar
	PublicKey *group.Element
}

func (k *KeyPair) copy() *KeyPair {
	return &KeyPair{
		SecretKey: k.SecretKey.Copy(),
		PublicKey: k.PublicKey.Copy(),
	}
}

// ServerSetup holds the server's long-term material: the OPRF seed, the server key pair, and the fake key pair used
// to answer login requests for unregistered credentials. It is immutable once built and safe for concurrent use.
type ServerSetup struct {
	conf        *internal.Configuration
	config      *Configuration
	keyPair     *KeyPair
	fakeKeyPair *KeyPair
	oprfSeed    []byte
}

// NewServerSetup returns a fresh ServerSetup. The OPRF seed, the server key pair, and the fake key pair are drawn
// from rng. If rng is nil, crypto/rand is used.
func NewServerSetup(conf *Configuration, rng io.Reader) (*ServerSetup, error) {
	return newServerSetup(conf, rng, nil)
}

// NewServerSetupWithKey is like NewServerSetup, but imports the encoded server secret key instead of generating one.
func NewServerSetupWithKey(conf *Configuration, rng io.Reader, secretKey []byte) (*ServerSetup, error) {
	if secretKey == nil {
		return nil, ErrServerSetup.Join(internal.ErrInvalidPrivateKey)
	}

	return newServerSetup(conf, rng, secretKey)
}

func newServerSetup(conf *Configuration, rng io.Reader, secretKey []byte) (*ServerSetup, error) {
	if conf == nil {
		return nil, ErrConfiguration.Join(internal.ErrNilConfiguration)
	}

	ic, err := conf.toInternal()
	if err != nil {
		return nil, err
	}

	seed, err := internal.ReadRandom(rng, ic.Hash.Size())
	if err != nil {
		return nil, ErrServerSetup.Join(err)
	}

	var kp *KeyPair

	if secretKey == nil {
		sk, pk, err := keys.GenerateKeyPair(ic.Group, rng)
		if err != nil {
			return nil, ErrServerSetup.Join(err)
		}

		kp = &KeyPair{SecretKey: sk, PublicKey: pk}
	} else {
		sk, err := keys.DecodeSecretKey(ic.Group, secretKey)
		if err != nil {
			return nil, ErrServerSetup.Join(internal.ErrInvalidPrivateKey, err)
		}

		kp = &KeyPair{SecretKey: sk, PublicKey: ic.Group.Base().Multiply(sk)}
	}

	fsk, fpk, err := keys.GenerateKeyPair(ic.Group, rng)
	if err != nil {
		return nil, ErrServerSetup.Join(err)
	}

	return &ServerSetup{
		conf:        ic,
		config:      conf.clone(),
		oprfSeed:    seed,
		keyPair:     kp,
		fakeKeyPair: &KeyPair{SecretKey: fsk, PublicKey: fpk},
	}, nil
}

// PublicKey returns the encoded server public key.
func (s *ServerSetup) PublicKey() []byte {
	return s.keyPair.PublicKey.Encode()
}

// KeyPair returns a copy of the server key pair.
func (s *ServerSetup) KeyPair() *KeyPair {
	return s.keyPair.copy()
}

// Configuration returns a copy of the configuration the setup was built for.
func (s *ServerSetup) Configuration() *Configuration {
	return s.config.clone()
}

// Deserializer returns a Deserializer bound to the setup's configuration.
func (s *ServerSetup) Deserializer() *Deserializer {
	return &Deserializer{conf: s.conf, config: s.config.clone()}
}

// OPRFKey derives the per-credential OPRF key from the OPRF seed.
func (s *ServerSetup) OPRFKey(credentialIdentifier []byte) (*group.Scalar, error) {
	seed := s.conf.KDF.Expand(
		s.oprfSeed,
		encoding.SuffixString(credentialIdentifier, tag.ExpandOPRF),
		internal.SeedLength,
	)

	return oprf.DeriveKey(s.conf.OPRF, seed, []byte(tag.DeriveKeyPair))
}

// Serialize returns the byte encoding of the setup: the OPRF seed, the server secret key, and the fake secret key.
// The output holds secrets.
func (s *ServerSetup) Serialize() []byte {
	return encoding.Concat3(s.oprfSeed, s.keyPair.SecretKey.Encode(), s.fakeKeyPair.SecretKey.Encode())
}

// LogValue implements the slog.LogValuer interface. Only the configuration and the server public key are logged.
func (s *ServerSetup) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("configuration", s.config),
		slog.String("public_key", hex.EncodeToString(s.PublicKey())),
	)
}

// ServerSetup takes a serialized ServerSetup and returns the rebuilt structure. Public keys are recomputed.
func (d *Deserializer) ServerSetup(serverSetup []byte) (*ServerSetup, error) {
	if err := checkSliceSize(serverSetup, d.conf.ServerSetupLength(), "server_setup_bytes"); err != nil {
		return nil, ErrServerSetup.Join(err)
	}

	seedLen := d.conf.Hash.Size()
	skLen := d.conf.SecretKeyLength()

	sk, err := keys.DecodeSecretKey(d.conf.Group, serverSetup[seedLen:seedLen+skLen])
	if err != nil {
		return nil, ErrServerSetup.Join(internal.ErrInvalidPrivateKey, err)
	}

	fsk, err := keys.DecodeSecretKey(d.conf.Group, serverSetup[seedLen+skLen:])
	if err != nil {
		return nil, ErrServerSetup.Join(internal.ErrInvalidPrivateKey, err)
	}

	return &ServerSetup{
		conf:        d.conf,
		config:      d.config.clone(),
		oprfSeed:    slices.Clone(serverSetup[:seedLen]),
		keyPair:     &KeyPair{SecretKey: sk, PublicKey: d.conf.Group.Base().Multiply(sk)},
		fakeKeyPair: &KeyPair{SecretKey: fsk, PublicKey: d.conf.Group.Base().Multiply(fsk)},
	}, nil
}

// DummyRegistrationUpload returns a registration record for an unregistered credential. It is indistinguishable on
// the wire from a real record: the envelope is zeroed, the masking key is drawn from rng, and the client public key
// is the setup's fake public key. If rng is nil, crypto/rand is used.
func DummyRegistrationUpload(rng io.Reader, setup *ServerSetup) (*message.RegistrationUpload, error) {
	if setup == nil {
		return nil, ErrServerSetup.Join(internal.ErrNilServerSetup)
	}

	maskingKey, err := internal.ReadRandom(rng, setup.conf.Hash.Size())
	if err != nil {
		return nil, ErrRegistrationUpload.Join(err)
	}

	return message.NewRegistrationUpload(
		setup.fakeKeyPair.PublicKey.Copy(),
		maskingKey,
		envelope.Dummy(setup.conf),
	), nil
}
