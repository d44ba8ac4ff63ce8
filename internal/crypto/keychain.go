// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const keychainSaltLength = 16

// keychain is the private implementation of [Keychain].
type keychain struct {
	secret []byte

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. small boards vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeychain constructs a [Keychain] keyed by secret with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeychain(secret string) Keychain {
	return &keychain{
		secret:       []byte(secret),
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32,
	}
}

// Seal implements [Keychain]. The blob layout is
// salt (16 bytes) || nonce (12 bytes) || AES-256-GCM ciphertext.
func (k *keychain) Seal(plaintext string) (string, error) {
	salt := make([]byte, keychainSaltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	gcm, err := k.aead(salt)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	blob := append(salt, nonce...)
	blob = gcm.Seal(blob, nonce, []byte(plaintext), nil)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Open implements [Keychain].
func (k *keychain) Open(sealed string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}
	if len(blob) < keychainSaltLength {
		return "", ErrSealedDataCorrupted
	}

	salt := blob[:keychainSaltLength]
	gcm, err := k.aead(salt)
	if err != nil {
		return "", err
	}

	rest := blob[keychainSaltLength:]
	if len(rest) < gcm.NonceSize() {
		return "", ErrSealedDataCorrupted
	}

	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSealedDataCorrupted, err)
	}

	return string(plain), nil
}

func (k *keychain) aead(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey(k.secret, salt, k.argonTime, k.argonMemory, k.argonThreads, k.argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
