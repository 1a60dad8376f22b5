// SPDX-License-Identifier: MIT
//
// Copyright (C) 2020-2025 Daniel Bourdrez. All Rights Reserved.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree or at
// https://spdx.org/licenses/MIT.html

package apake

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	// ErrConfiguration indicates that the configuration is invalid.
	ErrConfiguration = ErrCodeConfiguration.New("")

	// ErrServerSetup indicates that the server setup is invalid.
	ErrServerSetup = ErrCodeServerSetup.New("")

	// ErrSize indicates that an input buffer does not have the length required by the configuration.
	ErrSize = ErrCodeSize.New("")

	// ErrIdentityElement indicates that a decoded OPRF element is the group identity element.
	ErrIdentityElement = ErrCodeIdentityElement.New("")

	// ErrInvalidElement indicates that the input does not encode a valid group element.
	ErrInvalidElement = ErrCodeInvalidElement.New("")

	// ErrInvalidPublicKey indicates that the input does not encode a valid public key.
	ErrInvalidPublicKey = ErrCodeInvalidPublicKey.New("")

	// ErrRegistrationRequest indicates an error with a registration request.
	ErrRegistrationRequest = ErrCodeMessage.New("invalid registration request")

	// ErrRegistrationResponse indicates an error with a registration response.
	ErrRegistrationResponse = ErrCodeMessage.New("invalid registration response")

	// ErrRegistrationUpload indicates an error with a registration upload.
	ErrRegistrationUpload = ErrCodeMessage.New("invalid registration upload")

	// ErrCredentialRequest indicates an error with a credential request.
	ErrCredentialRequest = ErrCodeMessage.New("invalid credential request")

	// ErrCredentialResponse indicates an error with a credential response.
	ErrCredentialResponse = ErrCodeMessage.New("invalid credential response")

	// ErrCredentialFinalization indicates an error with a credential finalization.
	ErrCredentialFinalization = ErrCodeMessage.New("invalid credential finalization")

	// ErrKE1 indicates an error with a KE1 payload.
	ErrKE1 = ErrCodeMessage.New("invalid KE1 message")

	// ErrKE2 indicates an error with a KE2 payload.
	ErrKE2 = ErrCodeMessage.New("invalid KE2 message")

	// ErrKE3 indicates an error with a KE3 payload.
	ErrKE3 = ErrCodeMessage.New("invalid KE3 message")

	// ErrEnvelope indicates an error with an envelope.
	ErrEnvelope = ErrCodeMessage.New("invalid envelope")
)

// ErrorCode represents the type of error in the message layer. It is used to categorize errors and provide
// a consistent way to handle error conditions.
type ErrorCode byte //nolint:errname // This is an error code, not an error type.

const (
	// ErrCodeUnknown represents an unknown error.
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeConfiguration represents an error related to the configuration.
	ErrCodeConfiguration

	// ErrCodeMessage represents an error related to message processing.
	ErrCodeMessage

	// ErrCodeSize represents an input of invalid length.
	ErrCodeSize

	// ErrCodeIdentityElement represents an OPRF element equal to the group identity.
	ErrCodeIdentityElement

	// ErrCodeInvalidElement represents bytes that do not encode a group element.
	ErrCodeInvalidElement

	// ErrCodeInvalidPublicKey represents bytes that do not encode a valid public key.
	ErrCodeInvalidPublicKey

	// ErrCodeServerSetup represents an error related to the server setup.
	ErrCodeServerSetup
)

// New creates a new Error with the given message and errors.
func (c ErrorCode) New(message string, errs ...error) *Error {
	if message == "" {
		message = strings.ReplaceAll(c.String(), "_", " ")
	}

	return &Error{
		Code:    c,
		Message: message,
		Err:     errors.Join(errs...),
	}
}

// String returns the string representation of the ErrorCode. If the code is not recognized, it returns "unknown_error".
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeUnknown:
		return "unknown_error"
	case ErrCodeConfiguration:
		return "configuration_error"
	case ErrCodeMessage:
		return "message_error"
	case ErrCodeSize:
		return "size_error"
	case ErrCodeIdentityElement:
		return "identity_group_element_error"
	case ErrCodeInvalidElement:
		return "point_error"
	case ErrCodeInvalidPublicKey:
		return "invalid_public_key_error"
	case ErrCodeServerSetup:
		return "server_setup_error"
	default:
		return "unknown_error"
	}
}

// Error implements the error interface for the ErrorCode type. It returns a string representation of the error code.
func (c ErrorCode) Error() string {
	return c.String()
}

// Is implements the errors.Is method for the ErrorCode type.
// It allows checking if the error is of a specific ErrorCode.
func (c ErrorCode) Is(target error) bool {
	var errCode ErrorCode
	if errors.As(target, &errCode) {
		return byte(c) == byte(errCode)
	}

	var apakeErr *Error
	if errors.As(target, &apakeErr) {
		return byte(c) == byte(apakeErr.Code)
	}

	return false
}

// As implements the errors.As method for the Error type. It allows type assertion to specific error types.
func (c ErrorCode) As(target any) bool {
	switch t := target.(type) {
	case ErrorCode:
		return true
	case *ErrorCode:
		*t = c
		return true
	default:
		return false
	}
}

// Error represents an error in the message layer.
type Error struct {
	Err     error
	Message string
	Code    ErrorCode
}

// Error implements the error interface for the Error type. By convention, we return only the concise form of the
// current error, without the cause. The cause can be retrieved with the Unwrap() method.
func (e *Error) Error() string { return e.Message }

// Unwrap implements the errors.Unwrap method for the Error type. It allows retrieving the underlying error, if any.
func (e *Error) Unwrap() error { return e.Err }

// Join wraps the provided error to the current error.
func (e *Error) Join(errs ...error) error {
	return errors.Join(e, errors.Join(errs...))
}

// LogValue implements the slog.LogValuer interface for the Error type.
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("code", int(e.Code)),
		slog.String("code_name", e.Code.String()),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.Any("error", e.Err))
	}

	return slog.GroupValue(attrs...)
}

// Format implements the fmt.Formatter interface for the Error type. It allows formatting the error in different ways.
func (e *Error) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('+') {
			e.formatV(f)
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(f, e.Error()) //nolint:errcheck // safe to ignore // human-readable
	case 'q':
		_, _ = fmt.Fprintf(f, "%q", e.Error()) //nolint:errcheck // safe to ignore // quoted string
	default:
		_, _ = io.WriteString(f, e.Error()) //nolint:errcheck // safe to ignore // safe default
	}
}

// Is implements the errors.Is method for the Error type. An Error matches its own ErrorCode, and any Error with the
// same code and message.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorCode:
		return e.Code == t
	case *Error:
		return e.Code == t.Code && strings.EqualFold(e.Message, t.Message)
	default:
		return false
	}
}

// As implements the errors.As method for the Error type. It allows type assertion to specific error types.
func (e *Error) As(target any) bool {
	switch t := target.(type) {
	case *ErrorCode:
		*t = e.Code
		return true
	case **Error:
		*t = e
		return true
	default:
		return false
	}
}

func printV(f fmt.State, err error, depth int) {
	if err == nil {
		return
	}

	prefix := strings.Repeat("  ", depth)
	_, _ = fmt.Fprintf(f, "\n%s↳ %v", prefix, err) //nolint:errcheck // safe to ignore

	// Check for errors that can unwrap multiple errors
	var multiUnwrapper interface{ Unwrap() []error }
	if errors.As(err, &multiUnwrapper) {
		for _, child := range multiUnwrapper.Unwrap() {
			printV(f, child, depth+1)
		}

		return
	}

	// Check for errors that can unwrap a single error
	var singleUnwrapper interface{ Unwrap() error }
	if errors.As(err, &singleUnwrapper) {
		printV(f, singleUnwrapper.Unwrap(), depth+1)
	}
}

func (e *Error) formatV(f fmt.State) {
	// header with code
	_, _ = fmt.Fprintf(f, "code=%d(%s)", e.Code, e.Code.String()) //nolint:errcheck // safe to ignore
	if e.Message != "" {
		_, _ = fmt.Fprintf(f, " message=%q", e.Message) //nolint:errcheck // safe to ignore
	}

	// unwrap error chain
	if e.Err != nil {
		printV(f, e.Err, 0)
	}
}

// SizeError reports an input buffer whose length does not satisfy the layout of the configuration.
type SizeError struct {
	// Field names the buffer that was checked.
	Field    string
	Expected int
	Actual   int

	// AtLeast is set when Expected is a minimum, and unset when an exact length was required.
	AtLeast bool
}

// Error implements the error interface.
func (e *SizeError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("%s: expected at least %d bytes, got %d", e.Field, e.Expected, e.Actual)
	}

	return fmt.Sprintf("%s: expected %d bytes, got %d", e.Field, e.Expected, e.Actual)
}

// checkSliceSize returns a size error if input is not exactly size bytes long.
func checkSliceSize(input []byte, size int, field string) error {
	if len(input) != size {
		return ErrSize.Join(&SizeError{Field: field, Expected: size, Actual: len(input)})
	}

	return nil
}

// checkSliceSizeAtLeast returns a size error if input is shorter than size bytes.
func checkSliceSizeAtLeast(input []byte, size int, field string) error {
	if len(input) < size {
		return ErrSize.Join(&SizeError{Field: field, Expected: size, Actual: len(input), AtLeast: true})
	}

	return nil
}
