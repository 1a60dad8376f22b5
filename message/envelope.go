// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package message

import "github.com/bytemare/apake/internal/encoding"

// Envelope is the sealed client credential container. Its serialized length is a function of the configuration only.
type Envelope struct {
	Nonce   []byte `json:"nonce"`
	AuthTag []byte `json:"authTag"`
}

// Serialize returns the byte encoding of the Envelope.
func (e *Envelope) Serialize() []byte {
	return encoding.Concat(e.Nonce, e.AuthTag)
}

// Equal returns whether both envelopes have the same encoding.
func (e *Envelope) Equal(other *Envelope) bool {
	if e == nil || other == nil {
		return e == other
	}

	return equal(e, other)
}

// Copy returns a deep copy of the Envelope.
func (e *Envelope) Copy() *Envelope {
	return &Envelope{
		Nonce:   clone(e.Nonce),
		AuthTag: clone(e.AuthTag),
	}
}
