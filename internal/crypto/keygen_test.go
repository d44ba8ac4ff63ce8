package crypto

import (
	"math/rand/v2"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sessionKeyPattern = regexp.MustCompile(`^[0-9a-f]{65}$`)

func TestHexKeyGenerator_Format(t *testing.T) {
	gen := NewHexKeyGenerator(nil)

	for range 50 {
		key := gen.GenerateKey()
		assert.Len(t, key, SessionKeyLength)
		assert.Regexp(t, sessionKeyPattern, key)
	}
}

func TestHexKeyGenerator_SeededIsReproducible(t *testing.T) {
	a := NewHexKeyGenerator(rand.NewPCG(1, 2))
	b := NewHexKeyGenerator(rand.NewPCG(1, 2))

	assert.Equal(t, a.GenerateKey(), b.GenerateKey())
}

func TestHexKeyGenerator_ConsecutiveKeysDiffer(t *testing.T) {
	gen := NewHexKeyGenerator(rand.NewPCG(42, 43))

	assert.NotEqual(t, gen.GenerateKey(), gen.GenerateKey())
}

func TestStaticKeyGenerator(t *testing.T) {
	gen := NewStaticKeyGenerator(testSessionKey)

	assert.Equal(t, testSessionKey, gen.GenerateKey())
	assert.Equal(t, testSessionKey, gen.GenerateKey())
}
