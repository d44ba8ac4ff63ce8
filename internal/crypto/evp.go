// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/md5"
	"errors"
)

const (
	saltedPrefix = "Salted__"
	saltLength   = 8
	aesKeyLength = 32
	aesIVLength  = 16
)

var (
	errInvalidPadding   = errors.New("invalid PKCS#7 padding")
	errInvalidBlockSize = errors.New("ciphertext is not a multiple of the block size")
)

// EVPBytesToKey derives a key and IV the way OpenSSL's EVP_BytesToKey does
// with MD5 and a single iteration:
//
//	D_0 = ""
//	D_i = MD5(D_{i-1} || password || salt)
//
// and the concatenation D_1 || D_2 || ... is split into key then IV.
func EVPBytesToKey(password, salt []byte, keyLen, ivLen int) (key, iv []byte) {
	derived := make([]byte, 0, keyLen+ivLen+md5.Size)
	var prev []byte

	for len(derived) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(password)
		h.Write(salt)
		prev = h.Sum(nil)
		derived = append(derived, prev...)
	}

	return derived[:keyLen], derived[keyLen : keyLen+ivLen]
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errInvalidBlockSize
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize {
		return nil, errInvalidPadding
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, errInvalidPadding
		}
	}

	return data[:len(data)-padLen], nil
}
