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

// CredentialRequest is the first message of the login flow, created by the client and sent to the server.
type CredentialRequest struct {
	BlindedMessage *group.Element `json:"blindedMessage"`
	KE1            *KE1           `json:"ke1"`
}

// NewCredentialRequest returns a CredentialRequest holding the blinded message and the first key exchange payload.
func NewCredentialRequest(blindedMessage *group.Element, ke1 *KE1) *CredentialRequest {
	return &CredentialRequest{
		BlindedMessage: blindedMessage,
		KE1:            ke1,
	}
}

// Serialize returns the byte encoding of CredentialRequest.
func (c *CredentialRequest) Serialize() []byte {
	var ke1 []byte
	if c.KE1 != nil {
		ke1 = c.KE1.Serialize()
	}

	return encoding.Concat(encodeElement(c.BlindedMessage), ke1)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (c *CredentialRequest) MarshalBinary() ([]byte, error) {
	return c.Serialize(), nil
}

// Equal returns whether both messages have the same encoding.
func (c *CredentialRequest) Equal(other *CredentialRequest) bool {
	if c == nil || other == nil {
		return c == other
	}

	return equal(c, other)
}

// Copy returns a deep copy of the message.
func (c *CredentialRequest) Copy() *CredentialRequest {
	var ke1 *KE1
	if c.KE1 != nil {
		ke1 = c.KE1.Copy()
	}

	return &CredentialRequest{
		BlindedMessage: copyElement(c.BlindedMessage),
		KE1:            ke1,
	}
}

// CredentialResponse is the second message of the login flow, created by the server and sent to the client.
type CredentialResponse struct {
	EvaluatedMessage *group.Element `json:"evaluatedMessage"`
	KE2              *KE2           `json:"ke2"`
	MaskingNonce     []byte         `json:"maskingNonce"`
	MaskedResponse   []byte         `json:"maskedResponse"`
}

// NewCredentialResponse returns a CredentialResponse holding the OPRF evaluation, the masked credentials, and the
// second key exchange payload.
func NewCredentialResponse(
	evaluatedMessage *group.Element,
	maskingNonce, maskedResponse []byte,
	ke2 *KE2,
) *CredentialResponse {
	return &CredentialResponse{
		EvaluatedMessage: evaluatedMessage,
		KE2:              ke2,
		MaskingNonce:     maskingNonce,
		MaskedResponse:   maskedResponse,
	}
}

// SerializeWithoutKE returns the byte encoding of the CredentialResponse fields preceding the KE2 payload.
func (c *CredentialResponse) SerializeWithoutKE() []byte {
	return encoding.Concat3(encodeElement(c.EvaluatedMessage), c.MaskingNonce, c.MaskedResponse)
}

// Serialize returns the byte encoding of CredentialResponse.
func (c *CredentialResponse) Serialize() []byte {
	var ke2 []byte
	if c.KE2 != nil {
		ke2 = c.KE2.Serialize()
	}

	return encoding.Concat(c.SerializeWithoutKE(), ke2)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (c *CredentialResponse) MarshalBinary() ([]byte, error) {
	return c.Serialize(), nil
}

// Equal returns whether both messages have the same encoding.
func (c *CredentialResponse) Equal(other *CredentialResponse) bool {
	if c == nil || other == nil {
		return c == other
	}

	return equal(c, other)
}

// Copy returns a deep copy of the message.
func (c *CredentialResponse) Copy() *CredentialResponse {
	var ke2 *KE2
	if c.KE2 != nil {
		ke2 = c.KE2.Copy()
	}

	return &CredentialResponse{
		EvaluatedMessage: copyElement(c.EvaluatedMessage),
		KE2:              ke2,
		MaskingNonce:     clone(c.MaskingNonce),
		MaskedResponse:   clone(c.MaskedResponse),
	}
}

// CredentialFinalization is the last message of the login flow, created by the client and sent to the server.
type CredentialFinalization struct {
	KE3 *KE3 `json:"ke3"`
}

// NewCredentialFinalization returns a CredentialFinalization holding the last key exchange payload.
func NewCredentialFinalization(ke3 *KE3) *CredentialFinalization {
	return &CredentialFinalization{KE3: ke3}
}

// Serialize returns the byte encoding of CredentialFinalization.
func (c *CredentialFinalization) Serialize() []byte {
	if c.KE3 == nil {
		return nil
	}

	return c.KE3.Serialize()
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (c *CredentialFinalization) MarshalBinary() ([]byte, error) {
	return c.Serialize(), nil
}

// Equal returns whether both messages have the same encoding.
func (c *CredentialFinalization) Equal(other *CredentialFinalization) bool {
	if c == nil || other == nil {
		return c == other
	}

	return equal(c, other)
}

// Copy returns a deep copy of the message.
func (c *CredentialFinalization) Copy() *CredentialFinalization {
	if c.KE3 == nil {
		return &CredentialFinalization{}
	}

	return &CredentialFinalization{KE3: c.KE3.Copy()}
}
