package service

import (
	"math/rand"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var codePattern = regexp.MustCompile(`^AR[A-Z0-9]{4}$`)

func TestCodeGenerator_Format(t *testing.T) {
	gen := NewCodeGenerator()

	for i := 0; i < 1000; i++ {
		code := gen.Generate()
		assert.Len(t, code, 6)
		assert.Regexp(t, codePattern, code)
		// ambiguous glyphs are excluded from the suffix alphabet
		assert.NotContains(t, code[2:], "I")
		assert.NotContains(t, code[2:], "L")
		assert.NotContains(t, code[2:], "O")
		assert.NotContains(t, code[2:], "0")
		assert.NotContains(t, code[2:], "1")
	}
}

func TestCodeGenerator_Deterministic(t *testing.T) {
	a := newCodeGenerator(rand.NewSource(42))
	b := newCodeGenerator(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Generate(), b.Generate())
	}
}

func TestCodeGenerator_Varies(t *testing.T) {
	gen := NewCodeGenerator()

	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		seen[gen.Generate()] = true
	}
	// 200 draws from a ~920k space should essentially never all collide
	assert.Greater(t, len(seen), 150)
}
