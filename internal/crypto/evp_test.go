// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEVPBytesToKey_KnownVectors(t *testing.T) {
	tests := []struct {
		name     string
		password string
		salt     []byte
		wantKey  string
		wantIV   string
	}{
		{
			name:     "short password",
			password: "password",
			salt:     []byte("saltsalt"),
			wantKey:  "fdbdf3419fff98bdb0241390f62a9db35f4aba29d77566377997314ebfc709f2",
			wantIV:   "0b5ca7b1081f94b1ac12e3c8ba87d05a",
		},
		{
			name:     "65 char session key",
			password: testSessionKey,
			salt:     []byte{0, 1, 2, 3, 4, 5, 6, 7},
			wantKey:  "b182dc07926bd104baa2a86ee40a19c1e31dc958b8b5455ccb807dd33a9a9d0b",
			wantIV:   "d6c37e7c96f3fb12435ed21328e903c6",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, iv := EVPBytesToKey([]byte(tt.password), tt.salt, 32, 16)
			assert.Equal(t, tt.wantKey, hex.EncodeToString(key))
			assert.Equal(t, tt.wantIV, hex.EncodeToString(iv))
		})
	}
}

func TestEVPBytesToKey_Deterministic(t *testing.T) {
	salt := []byte("12345678")

	key1, iv1 := EVPBytesToKey([]byte(testSessionKey), salt, 32, 16)
	key2, iv2 := EVPBytesToKey([]byte(testSessionKey), salt, 32, 16)

	assert.Equal(t, key1, key2)
	assert.Equal(t, iv1, iv2)
}

func TestEVPBytesToKey_DifferentSalts(t *testing.T) {
	key1, iv1 := EVPBytesToKey([]byte(testSessionKey), []byte("aaaaaaaa"), 32, 16)
	key2, iv2 := EVPBytesToKey([]byte(testSessionKey), []byte("aaaaaaab"), 32, 16)

	assert.NotEqual(t, key1, key2)
	assert.NotEqual(t, iv1, iv2)
}

func TestEVPBytesToKey_Lengths(t *testing.T) {
	key, iv := EVPBytesToKey([]byte("p"), nil, 32, 16)
	assert.Len(t, key, 32)
	assert.Len(t, iv, 16)
}

func TestPKCS7(t *testing.T) {
	t.Run("full block of padding when aligned", func(t *testing.T) {
		padded := pkcs7Pad(bytes.Repeat([]byte{'a'}, 16), 16)
		require.Len(t, padded, 32)
		assert.Equal(t, bytes.Repeat([]byte{16}, 16), padded[16:])
	})

	t.Run("round trip", func(t *testing.T) {
		for n := 0; n < 40; n++ {
			data := bytes.Repeat([]byte{'x'}, n)
			out, err := pkcs7Unpad(pkcs7Pad(append([]byte(nil), data...), 16), 16)
			require.NoError(t, err)
			assert.Equal(t, data, out)
		}
	})

	t.Run("rejects bad padding", func(t *testing.T) {
		block := bytes.Repeat([]byte{'a'}, 16)
		block[15] = 3
		block[14] = 3
		block[13] = 9
		_, err := pkcs7Unpad(block, 16)
		assert.ErrorIs(t, err, errInvalidPadding)
	})

	t.Run("rejects zero pad byte", func(t *testing.T) {
		_, err := pkcs7Unpad(make([]byte, 16), 16)
		assert.ErrorIs(t, err, errInvalidPadding)
	})

	t.Run("rejects unaligned input", func(t *testing.T) {
		_, err := pkcs7Unpad(make([]byte, 15), 16)
		assert.ErrorIs(t, err, errInvalidBlockSize)
	})
}
