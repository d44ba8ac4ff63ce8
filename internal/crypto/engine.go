// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/scale-sync/models"
)

const (
	// VersionNumber is the only protocol version the vendor accepts from
	// this client.
	VersionNumber = 190
	// SourcePlatform is the platform tag the vendor expects in envelopes.
	SourcePlatform = "Android"
)

// Engine is the vendor request/response cipher. Build a new Engine for every
// sync run so the session password is never reused.
type Engine struct {
	publicKey  *rsa.PublicKey
	sessionKey string

	// saltSource feeds EncryptPayload salts, rsaRandom feeds PKCS#1 padding.
	saltSource io.Reader
	rsaRandom  io.Reader
}

// EngineOption customises an Engine at construction.
type EngineOption func(*Engine)

// WithSaltSource replaces crypto/rand as the source of payload salts.
func WithSaltSource(r io.Reader) EngineOption {
	return func(e *Engine) {
		e.saltSource = r
	}
}

// NewEngine creates an Engine that wraps a freshly generated session password
// under publicKey.
func NewEngine(publicKey *rsa.PublicKey, keys KeyGenerator, opts ...EngineOption) *Engine {
	e := &Engine{
		publicKey:  publicKey,
		sessionKey: keys.GenerateKey(),
		saltSource: rand.Reader,
		rsaRandom:  rand.Reader,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// WrapKey implements [VendorCipher].
func (e *Engine) WrapKey() (string, error) {
	if e.publicKey == nil {
		return "", fmt.Errorf("%w: no public key", ErrEncryption)
	}

	wrapped, err := rsa.EncryptPKCS1v15(e.rsaRandom, e.publicKey, []byte(e.sessionKey))
	if err != nil {
		return "", fmt.Errorf("%w: rsa wrap: %w", ErrEncryption, err)
	}

	return base64.StdEncoding.EncodeToString(wrapped), nil
}

// EncryptPayload implements [VendorCipher].
func (e *Engine) EncryptPayload(plaintext string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(e.saltSource, salt); err != nil {
		return "", fmt.Errorf("%w: read salt: %w", ErrEncryption, err)
	}

	return e.encryptWithSalt(plaintext, salt)
}

func (e *Engine) encryptWithSalt(plaintext string, salt []byte) (string, error) {
	key, iv := EVPBytesToKey([]byte(e.sessionKey), salt, aesKeyLength, aesIVLength)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: create cipher: %w", ErrEncryption, err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	armored := make([]byte, 0, len(saltedPrefix)+saltLength+len(ciphertext))
	armored = append(armored, saltedPrefix...)
	armored = append(armored, salt...)
	armored = append(armored, ciphertext...)

	return base64.StdEncoding.EncodeToString(armored), nil
}

// DecryptResponse implements [VendorCipher].
func (e *Engine) DecryptResponse(armored string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(armored))
	if err != nil {
		return "", newDecryptionFailure("bad_base64", armored, err)
	}

	if len(raw) < len(saltedPrefix)+saltLength {
		return "", newDecryptionFailure("too_short", armored, nil)
	}
	if string(raw[:len(saltedPrefix)]) != saltedPrefix {
		return "", newDecryptionFailure("missing_salted_marker", armored, nil)
	}

	salt := raw[len(saltedPrefix) : len(saltedPrefix)+saltLength]
	ciphertext := raw[len(saltedPrefix)+saltLength:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", newDecryptionFailure("bad_block_size", armored, errInvalidBlockSize)
	}

	key, iv := EVPBytesToKey([]byte(e.sessionKey), salt, aesKeyLength, aesIVLength)
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", newDecryptionFailure("cipher_init", armored, err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	plain, err = pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", newDecryptionFailure("bad_padding", armored, err)
	}
	if !utf8.Valid(plain) {
		return "", newDecryptionFailure("invalid_utf8", armored, nil)
	}

	return string(plain), nil
}

// BuildEncryptedRequest implements [VendorCipher].
func (e *Engine) BuildEncryptedRequest(plaintextJSON string) (models.EncryptedEnvelope, error) {
	data, dataErr := e.EncryptPayload(plaintextJSON)
	key, keyErr := e.WrapKey()
	if err := errors.Join(dataErr, keyErr); err != nil {
		return models.EncryptedEnvelope{}, fmt.Errorf("%w: %w", ErrCryptoComposition, err)
	}

	return models.EncryptedEnvelope{
		Data:           data,
		Key:            key,
		VersionNumber:  VersionNumber,
		SourcePlatform: SourcePlatform,
	}, nil
}

// EngineFactory builds one Engine per sync run from a shared public key and
// key generator.
type EngineFactory struct {
	publicKey *rsa.PublicKey
	keys      KeyGenerator
	opts      []EngineOption
}

// NewEngineFactory returns a factory for Engines bound to publicKey.
func NewEngineFactory(publicKey *rsa.PublicKey, keys KeyGenerator, opts ...EngineOption) *EngineFactory {
	return &EngineFactory{publicKey: publicKey, keys: keys, opts: opts}
}

// NewVendorFactory loads the embedded vendor key and pairs it with the weak
// hex generator the vendor protocol expects.
func NewVendorFactory() (*EngineFactory, error) {
	key, err := VendorPublicKey()
	if err != nil {
		return nil, err
	}
	return NewEngineFactory(key, NewHexKeyGenerator(nil)), nil
}

// NewCipher returns a VendorCipher with a fresh session password.
func (f *EngineFactory) NewCipher() VendorCipher {
	return NewEngine(f.publicKey, f.keys, f.opts...)
}
