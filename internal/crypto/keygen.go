// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// SessionKeyLength is the length of the AES session password in hex
// characters. 65 is odd on purpose: the vendor's Java client does the same.
const SessionKeyLength = 65

const hexAlphabet = "0123456789abcdef"

// hexKeyGenerator draws session passwords from a non-cryptographic PRNG.
// The vendor server trusts whatever password arrives inside the RSA-wrapped
// key, so the weak source is inherited, not chosen.
type hexKeyGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewHexKeyGenerator returns a KeyGenerator backed by src. A nil src seeds a
// PCG source from the wall clock.
func NewHexKeyGenerator(src rand.Source) KeyGenerator {
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &hexKeyGenerator{rnd: rand.New(src)}
}

// GenerateKey implements [KeyGenerator].
func (g *hexKeyGenerator) GenerateKey() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	var b strings.Builder
	b.Grow(SessionKeyLength)
	for range SessionKeyLength {
		b.WriteByte(hexAlphabet[g.rnd.IntN(len(hexAlphabet))])
	}
	return b.String()
}

// staticKeyGenerator always returns the same password. Tests use it to pin
// the session key.
type staticKeyGenerator string

// NewStaticKeyGenerator returns a KeyGenerator that always yields key.
func NewStaticKeyGenerator(key string) KeyGenerator {
	return staticKeyGenerator(key)
}

func (s staticKeyGenerator) GenerateKey() string {
	return string(s)
}
