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

// RegistrationRequest is the first message of the registration flow, created by the client and sent to the server.
type RegistrationRequest struct {
	BlindedMessage *group.Element `json:"blindedMessage"`
}

// NewRegistrationRequest returns a RegistrationRequest holding the blinded message.
func NewRegistrationRequest(blindedMessage *group.Element) *RegistrationRequest {
	return &RegistrationRequest{BlindedMessage: blindedMessage}
}

// Serialize returns the byte encoding of RegistrationRequest.
func (r *RegistrationRequest) Serialize() []byte {
	return encodeElement(r.BlindedMessage)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (r *RegistrationRequest) MarshalBinary() ([]byte, error) {
	return r.Serialize(), nil
}

// Equal returns whether both messages have the same encoding.
func (r *RegistrationRequest) Equal(other *RegistrationRequest) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equal(r, other)
}

// Copy returns a deep copy of the message.
func (r *RegistrationRequest) Copy() *RegistrationRequest {
	return &RegistrationRequest{BlindedMessage: copyElement(r.BlindedMessage)}
}

// RegistrationResponse is the second message of the registration flow, created by the server and sent to the client.
type RegistrationResponse struct {
	EvaluatedMessage *group.Element `json:"evaluatedMessage"`
	ServerPublicKey  *group.Element `json:"serverPublicKey"`
}

// NewRegistrationResponse returns a RegistrationResponse holding the OPRF evaluation and the server's public key.
func NewRegistrationResponse(evaluatedMessage, serverPublicKey *group.Element) *RegistrationResponse {
	return &RegistrationResponse{
		EvaluatedMessage: evaluatedMessage,
		ServerPublicKey:  serverPublicKey,
	}
}

// Serialize returns the byte encoding of RegistrationResponse.
func (r *RegistrationResponse) Serialize() []byte {
	return encoding.Concat(encodeElement(r.EvaluatedMessage), encodeElement(r.ServerPublicKey))
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (r *RegistrationResponse) MarshalBinary() ([]byte, error) {
	return r.Serialize(), nil
}

// Equal returns whether both messages have the same encoding.
func (r *RegistrationResponse) Equal(other *RegistrationResponse) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equal(r, other)
}

// Copy returns a deep copy of the message.
func (r *RegistrationResponse) Copy() *RegistrationResponse {
	return &RegistrationResponse{
		EvaluatedMessage: copyElement(r.EvaluatedMessage),
		ServerPublicKey:  copyElement(r.ServerPublicKey),
	}
}

// RegistrationUpload is the last message of the registration flow, created by the client and sent to the server, who
// stores it as the client's record.
type RegistrationUpload struct {
	Envelope        *Envelope      `json:"envelope"`
	ClientPublicKey *group.Element `json:"clientPublicKey"`
	MaskingKey      []byte         `json:"maskingKey"`
}

// NewRegistrationUpload returns a RegistrationUpload holding the client's sealed credentials.
func NewRegistrationUpload(clientPublicKey *group.Element, maskingKey []byte, envelope *Envelope) *RegistrationUpload {
	return &RegistrationUpload{
		Envelope:        envelope,
		ClientPublicKey: clientPublicKey,
		MaskingKey:      maskingKey,
	}
}

// Serialize returns the byte encoding of RegistrationUpload.
func (r *RegistrationUpload) Serialize() []byte {
	var env []byte
	if r.Envelope != nil {
		env = r.Envelope.Serialize()
	}

	return encoding.Concat3(encodeElement(r.ClientPublicKey), r.MaskingKey, env)
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
func (r *RegistrationUpload) MarshalBinary() ([]byte, error) {
	return r.Serialize(), nil
}

// Equal returns whether both messages have the same encoding.
func (r *RegistrationUpload) Equal(other *RegistrationUpload) bool {
	if r == nil || other == nil {
		return r == other
	}

	return equal(r, other)
}

// Copy returns a deep copy of the message.
func (r *RegistrationUpload) Copy() *RegistrationUpload {
	var env *Envelope
	if r.Envelope != nil {
		env = r.Envelope.Copy()
	}

	return &RegistrationUpload{
		Envelope:        env,
		ClientPublicKey: copyElement(r.ClientPublicKey),
		MaskingKey:      clone(r.MaskingKey),
	}
}
