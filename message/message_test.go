// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package message_test

import (
	"bytes"
	"encoding"
	"testing"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/apake/message"
)

const g = group.Ristretto255Sha512

func randomElement() *group.Element {
	return g.Base().Multiply(g.NewScalar().Random())
}

func filled(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}

func TestWireLayout(t *testing.T) {
	blinded, evaluated, pks, pku, epk := randomElement(), randomElement(), randomElement(), randomElement(),
		randomElement()
	env := &message.Envelope{Nonce: filled(1, 32), AuthTag: filled(2, 64)}
	ke1 := &message.KE1{ClientNonce: filled(3, 32), ClientKeyShare: epk}
	ke2 := &message.KE2{ServerNonce: filled(4, 32), ServerKeyShare: epk, ServerMac: filled(5, 64)}
	ke3 := &message.KE3{ClientMac: filled(6, 64)}

	for name, test := range map[string]struct {
		m    message.Serializer
		want []byte
	}{
		"RegistrationRequest": {message.NewRegistrationRequest(blinded), blinded.Encode()},
		"RegistrationResponse": {
			message.NewRegistrationResponse(evaluated, pks),
			append(evaluated.Encode(), pks.Encode()...),
		},
		"RegistrationUpload": {
			message.NewRegistrationUpload(pku, filled(7, 64), env),
			bytes.Join([][]byte{pku.Encode(), filled(7, 64), filled(1, 32), filled(2, 64)}, nil),
		},
		"CredentialRequest": {
			message.NewCredentialRequest(blinded, ke1),
			bytes.Join([][]byte{blinded.Encode(), filled(3, 32), epk.Encode()}, nil),
		},
		"CredentialResponse": {
			message.NewCredentialResponse(evaluated, filled(8, 32), filled(9, 128), ke2),
			bytes.Join([][]byte{
				evaluated.Encode(), filled(8, 32), filled(9, 128),
				filled(4, 32), epk.Encode(), filled(5, 64),
			}, nil),
		},
		"CredentialFinalization": {message.NewCredentialFinalization(ke3), filled(6, 64)},
	} {
		t.Run(name, func(t *testing.T) {
			if got := test.m.Serialize(); !bytes.Equal(got, test.want) {
				t.Fatalf("unexpected encoding\n\twant: %x\n\tgot : %x", test.want, got)
			}

			bm, ok := test.m.(encoding.BinaryMarshaler)
			if !ok {
				t.Fatal("message does not implement encoding.BinaryMarshaler")
			}

			b, err := bm.MarshalBinary()
			if err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(b, test.want) {
				t.Fatal("MarshalBinary differs from Serialize")
			}
		})
	}
}

func TestCredentialResponse_SerializeWithoutKE(t *testing.T) {
	evaluated := randomElement()
	ke2 := &message.KE2{ServerNonce: filled(4, 32), ServerKeyShare: randomElement(), ServerMac: filled(5, 64)}
	resp := message.NewCredentialResponse(evaluated, filled(8, 32), filled(9, 128), ke2)

	prefix := resp.SerializeWithoutKE()
	if !bytes.Equal(resp.Serialize(), append(prefix, ke2.Serialize()...)) {
		t.Fatal("CredentialResponse encoding is not prefix ‖ ke2")
	}
}

func TestCopy_IsIndependent(t *testing.T) {
	upload := message.NewRegistrationUpload(
		randomElement(),
		filled(7, 64),
		&message.Envelope{Nonce: filled(1, 32), AuthTag: filled(2, 64)},
	)
	cp := upload.Copy()

	if !upload.Equal(cp) {
		t.Fatal("copy is not equal to the original")
	}

	cp.MaskingKey[0] ^= 0xff
	cp.Envelope.AuthTag[0] ^= 0xff

	if upload.MaskingKey[0] != 7 || upload.Envelope.AuthTag[0] != 2 {
		t.Fatal("modifying the copy modified the original")
	}

	if upload.Equal(cp) {
		t.Fatal("modified copy is still equal to the original")
	}

	resp := message.NewCredentialResponse(randomElement(), filled(8, 32), filled(9, 128),
		&message.KE2{ServerNonce: filled(4, 32), ServerKeyShare: randomElement(), ServerMac: filled(5, 64)})
	rcp := resp.Copy()
	rcp.KE2.ServerMac[0] ^= 0xff

	if resp.KE2.ServerMac[0] != 5 || resp.Equal(rcp) {
		t.Fatal("modifying the KE2 copy modified the original")
	}

	req := message.NewCredentialRequest(randomElement(), &message.KE1{ClientNonce: filled(3, 32),
		ClientKeyShare: randomElement()})
	if !req.Equal(req.Copy()) {
		t.Fatal("copy is not equal to the original")
	}

	fin := message.NewCredentialFinalization(&message.KE3{ClientMac: filled(6, 64)})
	fcp := fin.Copy()
	fcp.KE3.ClientMac[0] ^= 0xff

	if fin.Equal(fcp) {
		t.Fatal("modifying the KE3 copy modified the original")
	}
}

func TestEqual_Nil(t *testing.T) {
	var a, b *message.RegistrationRequest
	if !a.Equal(b) {
		t.Fatal("two nil messages must be equal")
	}

	c := message.NewRegistrationRequest(randomElement())
	if c.Equal(nil) || a.Equal(c) {
		t.Fatal("nil and non-nil messages must differ")
	}

	if message.NewRegistrationRequest(randomElement()).Equal(c) {
		t.Fatal("different blinded messages must differ")
	}
}
