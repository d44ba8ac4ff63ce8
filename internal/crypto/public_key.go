// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	_ "embed"
	"encoding/pem"
	"fmt"
)

//go:embed vendor_public_key.pem
var vendorPublicKeyPEM []byte

// VendorPublicKey parses the RSA public key shipped with the vendor's
// Android client.
func VendorPublicKey() (*rsa.PublicKey, error) {
	return ParsePublicKey(vendorPublicKeyPEM)
}

// ParsePublicKey decodes a PEM "PUBLIC KEY" (PKIX) block holding an RSA key.
// Any problem is reported as ErrKeyLoad.
func ParsePublicKey(pemBytes []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrKeyLoad)
	}

	parsed, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyLoad, err)
	}

	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: key is %T, not RSA", ErrKeyLoad, parsed)
	}

	return key, nil
}
