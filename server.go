// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package apake

import (
	"io"

	group "github.com/bytemare/crypto"

	"github.com/bytemare/apake/internal"
	"github.com/bytemare/apake/internal/envelope"
	"github.com/bytemare/apake/internal/masking"
	"github.com/bytemare/apake/internal/oprf"
	"github.com/bytemare/apake/message"
)

func (s *ServerSetup) evaluate(blinded *group.Element, credentialIdentifier []byte) (*group.Element, error) {
	ku, err := s.OPRFKey(credentialIdentifier)
	if err != nil {
		return nil, ErrServerSetup.Join(err)
	}

	return oprf.Evaluate(ku, blinded)
}

// RegistrationResponse evaluates the client's blinded message with the credential's OPRF key and attaches the server
// public key.
func (s *ServerSetup) RegistrationResponse(
	req *message.RegistrationRequest,
	credentialIdentifier []byte,
) (*message.RegistrationResponse, error) {
	if req == nil {
		return nil, ErrRegistrationRequest.Join(internal.ErrNilMessage)
	}

	z, err := s.evaluate(req.BlindedMessage, credentialIdentifier)
	if err != nil {
		return nil, ErrRegistrationRequest.Join(internal.ErrInvalidBlindedMessage, err)
	}

	return message.NewRegistrationResponse(z, s.keyPair.PublicKey.Copy()), nil
}

// CredentialResponse builds the response to a login request. The server public key and the record's envelope are
// masked under the record's masking key and a fresh nonce drawn from rng. If record is nil, the credential is
// unregistered and a dummy record is used instead, so that the response has the same length and shape. If rng is
// nil, crypto/rand is used.
func (s *ServerSetup) CredentialResponse(
	rng io.Reader,
	req *message.CredentialRequest,
	credentialIdentifier []byte,
	record *message.RegistrationUpload,
	ke2 *message.KE2,
) (*message.CredentialResponse, error) {
	if req == nil {
		return nil, ErrCredentialRequest.Join(internal.ErrNilMessage)
	}

	if ke2 == nil {
		return nil, ErrKE2.Join(internal.ErrNilMessage)
	}

	if record == nil {
		var err error
		if record, err = DummyRegistrationUpload(rng, s); err != nil {
			return nil, err
		}
	}

	if record.Envelope == nil {
		return nil, ErrRegistrationUpload.Join(ErrEnvelope, internal.ErrNilMessage)
	}

	env := record.Envelope.Serialize()
	if err := checkSliceSize(env, envelope.Size(s.conf), "envelope_bytes"); err != nil {
		return nil, ErrRegistrationUpload.Join(ErrEnvelope, err)
	}

	z, err := s.evaluate(req.BlindedMessage, credentialIdentifier)
	if err != nil {
		return nil, ErrCredentialRequest.Join(internal.ErrInvalidBlindedMessage, err)
	}

	nonce, err := internal.ReadRandom(rng, s.conf.NonceLen)
	if err != nil {
		return nil, ErrCredentialResponse.Join(err)
	}

	maskedResponse := masking.Mask(s.conf, record.MaskingKey, nonce, s.PublicKey(), env)

	return message.NewCredentialResponse(z, nonce, maskedResponse, ke2.Copy()), nil
}
