// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side cryptography of scale-sync.
//
// Two unrelated concerns live here:
//
//   - [Engine] reproduces the vendor's legacy request/response cipher
//     byte for byte: OpenSSL "Salted__" armor, EVP_BytesToKey with a single
//     MD5 round, AES-256-CBC with PKCS#7 padding, and an RSA PKCS#1 v1.5
//     wrapped session password. None of it is modern cryptography; it exists
//     only to stay interoperable with the vendor server.
//   - [Keychain] seals secrets stored on disk (the vendor password) with
//     AES-256-GCM under an Argon2id-derived key.
package crypto
