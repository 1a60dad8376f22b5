// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package message

import (
	group "github.com/bytemare/crypto"

	"github.com/bytemare/apake/internal/encoding"
)

// KE1 is the key exchange payload carried by the CredentialRequest.
type KE1 struct {
	ClientKeyShare *group.Element `json:"clientKeyShare"`
	ClientNonce    []byte         `json:"clientNonce"`
}

// Serialize returns the byte encoding of KE1.
func (m *KE1) Serialize() []byte {
	return encoding.Concat(m.ClientNonce, encodeElement(m.ClientKeyShare))
}

// Equal returns whether both payloads have the same encoding.
func (m *KE1) Equal(other *KE1) bool {
	if m == nil || other == nil {
		return m == other
	}

	return equal(m, other)
}

// Copy returns a deep copy of KE1.
func (m *KE1) Copy() *KE1 {
	return &KE1{
		ClientKeyShare: copyElement(m.ClientKeyShare),
		ClientNonce:    clone(m.ClientNonce),
	}
}

// KE2 is the key exchange payload carried by the CredentialResponse.
type KE2 struct {
	ServerKeyShare *group.Element `json:"serverKeyShare"`
	ServerNonce    []byte         `json:"serverNonce"`
	ServerMac      []byte         `json:"serverMac"`
}

// Serialize returns the byte encoding of KE2.
func (m *KE2) Serialize() []byte {
	return encoding.Concat3(m.ServerNonce, encodeElement(m.ServerKeyShare), m.ServerMac)
}

// Equal returns whether both payloads have the same encoding.
func (m *KE2) Equal(other *KE2) bool {
	if m == nil || other == nil {
		return m == other
	}

	return equal(m, other)
}

// Copy returns a deep copy of KE2.
func (m *KE2) Copy() *KE2 {
	return &KE2{
		ServerKeyShare: copyElement(m.ServerKeyShare),
		ServerNonce:    clone(m.ServerNonce),
		ServerMac:      clone(m.ServerMac),
	}
}

// KE3 is the key exchange payload carried by the CredentialFinalization.
type KE3 struct {
	ClientMac []byte `json:"clientMac"`
}

// Serialize returns the byte encoding of KE3.
func (m *KE3) Serialize() []byte {
	return clone(m.ClientMac)
}

// Equal returns whether both payloads have the same encoding.
func (m *KE3) Equal(other *KE3) bool {
	if m == nil || other == nil {
		return m == other
	}

	return equal(m, other)
}

// Copy returns a deep copy of KE3.
func (m *KE3) Copy() *KE3 {
	return &KE3{ClientMac: clone(m.ClientMac)}
}
