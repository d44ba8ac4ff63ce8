// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/scale-sync/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// VendorCipher encrypts request bodies for, and decrypts response bodies
// from, the vendor sync API. One VendorCipher holds one AES session password
// and must not outlive a single sync run.
type VendorCipher interface {
	// WrapKey returns the session password RSA-encrypted under the vendor
	// public key, Base64-encoded.
	WrapKey() (string, error)

	// EncryptPayload returns Base64("Salted__" || salt || AES-CBC(plaintext)).
	EncryptPayload(plaintext string) (string, error)

	// DecryptResponse reverses EncryptPayload. It never panics: every failure
	// is reported as a *DecryptionFailure.
	DecryptResponse(armored string) (string, error)

	// BuildEncryptedRequest composes EncryptPayload and WrapKey into the
	// envelope posted to the download endpoint.
	BuildEncryptedRequest(plaintextJSON string) (models.EncryptedEnvelope, error)
}

// KeyGenerator produces the per-run AES session password. Implementations
// must return exactly [SessionKeyLength] lowercase hexadecimal characters.
type KeyGenerator interface {
	GenerateKey() string
}

// Keychain seals and opens secrets kept in the local credential store.
type Keychain interface {
	// Seal encrypts plaintext and returns a Base64 blob safe to persist.
	Seal(plaintext string) (string, error)

	// Open decrypts a blob produced by Seal.
	Open(sealed string) (string, error)
}
