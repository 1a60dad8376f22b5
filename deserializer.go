// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package apake

import (
	"slices"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/internal/encoding"
	"github.com/bytemare/apake/internal/envelope"
	"github.com/bytemare/apake/internal/keys"
	"github.com/bytemare/apake/message"
)

// Deserializer exposes the message deserialization functions. It holds no mutable state and is safe for concurrent
// use.
type Deserializer struct {
	conf   *internal.Configuration
	config *Configuration
}

// decodeOPRFElement decodes an OPRF group element. The caller has already verified the input length. With
// rejectIdentity, an all-zero encoding yields ErrIdentityElement. Decode rejects the identity encoding of every
// supported group, so any other identity encoding yields ErrInvalidElement joined with cause.
func (d *Deserializer) decodeOPRFElement(input []byte, rejectIdentity bool, cause error) (*group.Element, error) {
	if rejectIdentity && encoding.IsAllZeros(input) {
		return nil, ErrIdentityElement
	}

	e := d.conf.OPRF.NewElement()
	if err := e.Decode(input); err != nil {
		return nil, ErrInvalidElement.Join(cause, err)
	}

	return e, nil
}

// decodePublicKey decodes and validates an AKE public key. The caller has already verified the input length.
func (d *Deserializer) decodePublicKey(input []byte, cause error) (*group.Element, error) {
	pk, err := keys.CheckPublicKey(d.conf.Group, input)
	if err != nil {
		return nil, ErrInvalidPublicKey.Join(cause, err)
	}

	return pk, nil
}

// RegistrationRequest takes a serialized RegistrationRequest message and returns a deserialized
// RegistrationRequest structure.
func (d *Deserializer) RegistrationRequest(registrationRequest []byte) (*message.RegistrationRequest, error) {
	if err := checkSliceSize(registrationRequest, d.conf.OPRFElementLength(), "registration_request_bytes"); err != nil {
		return nil, ErrRegistrationRequest.Join(err)
	}

	blindedMessage, err := d.decodeOPRFElement(registrationRequest, false, internal.ErrInvalidBlindedMessage)
	if err != nil {
		return nil, ErrRegistrationRequest.Join(err)
	}

	return message.NewRegistrationRequest(blindedMessage), nil
}

func (d *Deserializer) registrationResponseLength() int {
	return d.conf.OPRFElementLength() + d.conf.PublicKeyLength()
}

// RegistrationResponse takes a serialized RegistrationResponse message and returns a deserialized
// RegistrationResponse structure.
func (d *Deserializer) RegistrationResponse(registrationResponse []byte) (*message.RegistrationResponse, error) {
	if err := checkSliceSize(
		registrationResponse,
		d.registrationResponseLength(),
		"registration_response_bytes",
	); err != nil {
		return nil, ErrRegistrationResponse.Join(err)
	}

	elemLen := d.conf.OPRFElementLength()

	pks, err := d.decodePublicKey(registrationResponse[elemLen:], internal.ErrInvalidServerPublicKey)
	if err != nil {
		return nil, ErrRegistrationResponse.Join(err)
	}

	evaluatedMessage, err := d.decodeOPRFElement(registrationResponse[:elemLen], false, internal.ErrInvalidEvaluatedMessage)
	if err != nil {
		return nil, ErrRegistrationResponse.Join(err)
	}

	return message.NewRegistrationResponse(evaluatedMessage, pks), nil
}

// RegistrationUpload takes a serialized RegistrationUpload message and returns a deserialized
// RegistrationUpload structure.
func (d *Deserializer) RegistrationUpload(upload []byte) (*message.RegistrationUpload, error) {
	pkLen := d.conf.PublicKeyLength()
	hashLen := d.conf.Hash.Size()

	if err := checkSliceSizeAtLeast(upload, pkLen+hashLen, "registration_upload_bytes"); err != nil {
		return nil, ErrRegistrationUpload.Join(err)
	}

	env, err := d.Envelope(upload[pkLen+hashLen:])
	if err != nil {
		return nil, ErrRegistrationUpload.Join(err)
	}

	pku, err := d.decodePublicKey(upload[:pkLen], internal.ErrInvalidClientPublicKey)
	if err != nil {
		return nil, ErrRegistrationUpload.Join(err)
	}

	return message.NewRegistrationUpload(pku, slices.Clone(upload[pkLen:pkLen+hashLen]), env), nil
}

// CredentialRequest takes a serialized CredentialRequest message and returns a deserialized
// CredentialRequest structure.
func (d *Deserializer) CredentialRequest(credentialRequest []byte) (*message.CredentialRequest, error) {
	elemLen := d.conf.OPRFElementLength()

	if err := checkSliceSizeAtLeast(credentialRequest, elemLen, "credential_request_bytes"); err != nil {
		return nil, ErrCredentialRequest.Join(err)
	}

	blindedMessage, err := d.decodeOPRFElement(credentialRequest[:elemLen], true, internal.ErrInvalidBlindedMessage)
	if err != nil {
		return nil, ErrCredentialRequest.Join(err)
	}

	ke1, err := d.KE1(credentialRequest[elemLen:])
	if err != nil {
		return nil, ErrCredentialRequest.Join(err)
	}

	return message.NewCredentialRequest(blindedMessage, ke1), nil
}

func (d *Deserializer) credentialResponseLengthWithoutKE() int {
	return d.conf.OPRFElementLength() + d.conf.NonceLen + d.conf.MaskedResponseLength()
}

// CredentialResponse takes a serialized CredentialResponse message and returns a deserialized
// CredentialResponse structure.
func (d *Deserializer) CredentialResponse(credentialResponse []byte) (*message.CredentialResponse, error) {
	prefixLen := d.credentialResponseLengthWithoutKE()

	if err := checkSliceSizeAtLeast(
		credentialResponse,
		prefixLen+d.conf.KE2Length(),
		"credential_response_bytes",
	); err != nil {
		return nil, ErrCredentialResponse.Join(err)
	}

	elemLen := d.conf.OPRFElementLength()

	evaluatedMessage, err := d.decodeOPRFElement(credentialResponse[:elemLen], true, internal.ErrInvalidEvaluatedMessage)
	if err != nil {
		return nil, ErrCredentialResponse.Join(err)
	}

	maskingNonce := slices.Clone(credentialResponse[elemLen : elemLen+d.conf.NonceLen])
	maskedResponse := slices.Clone(credentialResponse[elemLen+d.conf.NonceLen : prefixLen])

	ke2, err := d.KE2(credentialResponse[prefixLen:])
	if err != nil {
		return nil, ErrCredentialResponse.Join(err)
	}

	return message.NewCredentialResponse(evaluatedMessage, maskingNonce, maskedResponse, ke2), nil
}

// CredentialFinalization takes a serialized CredentialFinalization message and returns a deserialized
// CredentialFinalization structure.
func (d *Deserializer) CredentialFinalization(finalization []byte) (*message.CredentialFinalization, error) {
	ke3, err := d.KE3(finalization)
	if err != nil {
		return nil, ErrCredentialFinalization.Join(err)
	}

	return message.NewCredentialFinalization(ke3), nil
}

// KE1 takes a serialized KE1 payload and returns a deserialized KE1 structure.
func (d *Deserializer) KE1(ke1 []byte) (*message.KE1, error) {
	if err := checkSliceSize(ke1, d.conf.KE1Length(), "ke1_message_bytes"); err != nil {
		return nil, ErrKE1.Join(err)
	}

	epku, err := d.decodePublicKey(ke1[d.conf.NonceLen:], internal.ErrInvalidClientKeyShare)
	if err != nil {
		return nil, ErrKE1.Join(err)
	}

	return &message.KE1{
		ClientKeyShare: epku,
		ClientNonce:    slices.Clone(ke1[:d.conf.NonceLen]),
	}, nil
}

// KE2 takes a serialized KE2 payload and returns a deserialized KE2 structure.
func (d *Deserializer) KE2(ke2 []byte) (*message.KE2, error) {
	if err := checkSliceSize(ke2, d.conf.KE2Length(), "ke2_message_bytes"); err != nil {
		return nil, ErrKE2.Join(err)
	}

	offset := d.conf.NonceLen + d.conf.PublicKeyLength()

	epks, err := d.decodePublicKey(ke2[d.conf.NonceLen:offset], internal.ErrInvalidServerKeyShare)
	if err != nil {
		return nil, ErrKE2.Join(err)
	}

	return &message.KE2{
		ServerKeyShare: epks,
		ServerNonce:    slices.Clone(ke2[:d.conf.NonceLen]),
		ServerMac:      slices.Clone(ke2[offset:]),
	}, nil
}

// KE3 takes a serialized KE3 payload and returns a deserialized KE3 structure.
func (d *Deserializer) KE3(ke3 []byte) (*message.KE3, error) {
	if err := checkSliceSize(ke3, d.conf.KE3Length(), "ke3_message_bytes"); err != nil {
		return nil, ErrKE3.Join(err)
	}

	return &message.KE3{ClientMac: slices.Clone(ke3)}, nil
}

// Envelope takes a serialized envelope and returns a deserialized Envelope structure.
func (d *Deserializer) Envelope(env []byte) (*message.Envelope, error) {
	if err := checkSliceSize(env, envelope.Size(d.conf), "envelope_bytes"); err != nil {
		return nil, ErrEnvelope.Join(err)
	}

	return envelope.Split(d.conf, env), nil
}

// DecodeAkePrivateKey takes a serialized private key (a scalar) and attempts to return its decoded form.
func (d *Deserializer) DecodeAkePrivateKey(encoded []byte) (*group.Scalar, error) {
	sk, err := keys.DecodeSecretKey(d.conf.Group, encoded)
	if err != nil {
		return nil, ErrConfiguration.Join(internal.ErrInvalidPrivateKey, err)
	}

	return sk, nil
}

// DecodeAkePublicKey takes a serialized public key (a point) and attempts to return its decoded form.
func (d *Deserializer) DecodeAkePublicKey(encoded []byte) (*group.Element, error) {
	if err := checkSliceSize(encoded, d.conf.PublicKeyLength(), "public_key_bytes"); err != nil {
		return nil, err
	}

	return d.decodePublicKey(encoded, nil)
}
