// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrKeyLoad is returned when the embedded vendor public key cannot be
	// parsed. It should never happen with the shipped key.
	ErrKeyLoad = errors.New("failed to load vendor public key")

	// ErrEncryption is returned when RSA wrapping or AES encryption fails.
	ErrEncryption = errors.New("encryption failed")

	// ErrCryptoComposition is returned by BuildEncryptedRequest when one of
	// its sub-steps fails.
	ErrCryptoComposition = errors.New("failed to build encrypted request")

	// ErrDecryption matches every *DecryptionFailure via errors.Is.
	ErrDecryption = errors.New("decryption failed")

	// ErrSealedDataCorrupted is returned by Keychain.Open for blobs that are
	// too short or fail authentication.
	ErrSealedDataCorrupted = errors.New("sealed data corrupted")
)

// DecryptionFailure is the structured marker DecryptResponse returns instead
// of a plaintext. Callers must check for it before using the result.
type DecryptionFailure struct {
	// Reason is a short machine-friendly cause, e.g. "bad_padding".
	Reason string
	// Preview holds at most the first 50 characters of the rejected input.
	Preview string
	Err     error
}

func (f *DecryptionFailure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("decryption failed (%s): %v", f.Reason, f.Err)
	}
	return fmt.Sprintf("decryption failed (%s)", f.Reason)
}

func (f *DecryptionFailure) Unwrap() error {
	return f.Err
}

// Is makes errors.Is(err, ErrDecryption) true for any DecryptionFailure.
func (f *DecryptionFailure) Is(target error) bool {
	return target == ErrDecryption
}

func newDecryptionFailure(reason, input string, err error) *DecryptionFailure {
	preview := input
	if len(preview) > 50 {
		preview = preview[:50]
	}
	return &DecryptionFailure{Reason: reason, Preview: preview, Err: err}
}
