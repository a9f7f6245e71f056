package service

import (
	"math/rand"
	"sync"
	"time"
)

// codePrefix brands every check-in code; the original conference is the
// "Arsenic Summit".
const codePrefix = "AR"

// codeAlphabet is uppercase alphanumerics with glyphs that read ambiguously
// on a printed badge removed (I, L, O, 0, 1).
const codeAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// codeSuffixLength is the number of random characters after the prefix.
const codeSuffixLength = 4

// CodeGenerator mints short, typeable check-in codes. It makes no
// uniqueness guarantee of its own; the registration store's unique index
// plus the service retry loop provide that.
type CodeGenerator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewCodeGenerator creates a generator seeded from the clock.
func NewCodeGenerator() *CodeGenerator {
	return newCodeGenerator(rand.NewSource(time.Now().UnixNano()))
}

func newCodeGenerator(src rand.Source) *CodeGenerator {
	return &CodeGenerator{rng: rand.New(src)}
}

// Generate returns a 6-character code: the "AR" prefix plus four characters
// drawn from the unambiguous alphabet.
func (g *CodeGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	buf := make([]byte, 0, len(codePrefix)+codeSuffixLength)
	buf = append(buf, codePrefix...)
	for i := 0; i < codeSuffixLength; i++ {
		buf = append(buf, codeAlphabet[g.rng.Intn(len(codeAlphabet))])
	}
	return string(buf)
}
