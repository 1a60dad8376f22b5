// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

// Package apake implements the message layer of an OPAQUE-style asymmetric password-authenticated key exchange.
//
// It encodes and decodes the six registration and login messages for a given Configuration, validating lengths,
// group elements, and public keys, and builds the server side responses. A login request for an unregistered
// credential is answered with a dummy record, so that the response is indistinguishable from a real one and the
// server does not leak which credentials exist.
//
// For protocol details, please refer to the IETF protocol document
// [here](https://datatracker.ietf.org/doc/draft-irtf-cfrg-opaque).
package apake
