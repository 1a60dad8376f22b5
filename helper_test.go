// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package apake_test

import (
	"crypto"
	"encoding/hex"
	"errors"
	"io"
	"testing"

	group "github.com/bytemare/crypto"
	"github.com/bytemare/ksf"

	"github.com/bytemare/apake"
	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/message"
)

func init() {
	for _, c := range configurationTable {
		c.internal = toInternal(c.conf)
	}
}

// helper functions

type configuration struct {
	conf     *apake.Configuration
	internal *internal.Configuration
	name     string
}

func toInternal(c *apake.Configuration) *internal.Configuration {
	mac := internal.NewMac(c.MAC)

	return &internal.Configuration{
		OPRF:         c.OPRF.Group(),
		Group:        c.AKE.Group(),
		KDF:          internal.NewKDF(c.KDF),
		MAC:          mac,
		Hash:         internal.NewHash(c.Hash),
		NonceLen:     internal.NonceLength,
		EnvelopeSize: internal.NonceLength + mac.Size(),
	}
}

// toyConfiguration uses 32 byte elements, keys, hashes, and MACs.
func toyConfiguration() *apake.Configuration {
	return &apake.Configuration{
		OPRF: apake.RistrettoSha512,
		KDF:  crypto.SHA256,
		MAC:  crypto.SHA256,
		Hash: crypto.SHA256,
		KSF:  0,
		AKE:  apake.RistrettoSha512,
	}
}

var configurationTable = []*configuration{
	{
		name: "Ristretto255",
		conf: apake.DefaultConfiguration(),
	},
	{
		name: "Ristretto255Sha256",
		conf: toyConfiguration(),
	},
	{
		name: "P256Sha256",
		conf: &apake.Configuration{
			OPRF: apake.P256Sha256,
			KDF:  crypto.SHA256,
			MAC:  crypto.SHA256,
			Hash: crypto.SHA256,
			KSF:  ksf.Argon2id,
			AKE:  apake.P256Sha256,
		},
	},
	{
		name: "P384Sha384",
		conf: &apake.Configuration{
			OPRF: apake.P384Sha512,
			KDF:  crypto.SHA384,
			MAC:  crypto.SHA384,
			Hash: crypto.SHA384,
			KSF:  ksf.Argon2id,
			AKE:  apake.P384Sha512,
		},
	},
	{
		name: "P521Sha512",
		conf: &apake.Configuration{
			OPRF:    apake.P521Sha512,
			KDF:     crypto.SHA512,
			MAC:     crypto.SHA512,
			Hash:    crypto.SHA512,
			KSF:     ksf.Argon2id,
			AKE:     apake.P521Sha512,
			Context: []byte("context"),
		},
	},
}

func testAll(t *testing.T, f func(*testing.T, *configuration)) {
	for _, test := range configurationTable {
		t.Run(test.name, func(t *testing.T) {
			f(t, test)
		})
	}
}

func getDeserializer(t *testing.T, c *apake.Configuration) *apake.Deserializer {
	t.Helper()

	d, err := c.Deserializer()
	if err != nil {
		t.Fatal(err)
	}

	return d
}

func getServerSetup(t *testing.T, c *apake.Configuration) *apake.ServerSetup {
	t.Helper()

	s, err := apake.NewServerSetup(c, nil)
	if err != nil {
		t.Fatal(err)
	}

	return s
}

// expectErrors fails the test if the error returned by f does not match all targets.
func expectErrors(t *testing.T, f func() error, targets ...error) {
	t.Helper()

	err := f()
	if err == nil {
		t.Fatal("expected an error")
	}

	for _, target := range targets {
		if !errors.Is(err, target) {
			t.Fatalf("expected error %q in chain, got %+v", target, err)
		}
	}
}

func expectSizeError(t *testing.T, err error, field string) {
	t.Helper()

	var sizeErr *apake.SizeError
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected a size error, got %v", err)
	}

	if sizeErr.Field != field {
		t.Fatalf("expected size error on %q, got %q", field, sizeErr.Field)
	}
}

func randomElement(g group.Group) *group.Element {
	return g.Base().Multiply(g.NewScalar().Random())
}

func getBadRistrettoElement() []byte {
	a := "2a292df7e32cababbd9de088d1d1abec9fc0440f637ed2fba145094dc14bea08"
	decoded, _ := hex.DecodeString(a)

	return decoded
}

func getBadNistElement(t *testing.T, id group.Group) []byte {
	t.Helper()

	element := internal.RandomBytes(id.ElementLength())
	// detag compression
	element[0] = 4

	if err := id.NewElement().Decode(element); err == nil {
		t.Errorf("detagged compressed point did not yield an error for group %v", id)
	}

	return element
}

func getBadElement(t *testing.T, g group.Group) []byte {
	t.Helper()

	if g == group.Ristretto255Sha512 {
		return getBadRistrettoElement()
	}

	return getBadNistElement(t, g)
}

func getKE1(c *internal.Configuration) *message.KE1 {
	return &message.KE1{
		ClientKeyShare: randomElement(c.Group),
		ClientNonce:    internal.RandomBytes(c.NonceLen),
	}
}

func getKE2(c *internal.Configuration) *message.KE2 {
	return &message.KE2{
		ServerKeyShare: randomElement(c.Group),
		ServerNonce:    internal.RandomBytes(c.NonceLen),
		ServerMac:      internal.RandomBytes(c.MAC.Size()),
	}
}

func getKE3(c *internal.Configuration) *message.KE3 {
	return &message.KE3{ClientMac: internal.RandomBytes(c.MAC.Size())}
}

func getRegistrationUpload(c *internal.Configuration) *message.RegistrationUpload {
	return message.NewRegistrationUpload(
		randomElement(c.Group),
		internal.RandomBytes(c.Hash.Size()),
		&message.Envelope{
			Nonce:   internal.RandomBytes(c.NonceLen),
			AuthTag: internal.RandomBytes(c.MAC.Size()),
		},
	)
}

func getCredentialRequest(c *internal.Configuration) *message.CredentialRequest {
	return message.NewCredentialRequest(randomElement(c.OPRF), getKE1(c))
}

func getCredentialResponse(c *internal.Configuration) *message.CredentialResponse {
	return message.NewCredentialResponse(
		randomElement(c.OPRF),
		internal.RandomBytes(c.NonceLen),
		internal.RandomBytes(c.MaskedResponseLength()),
		getKE2(c),
	)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}
