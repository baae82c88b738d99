package sanitizer

import (
	"math/rand"
	"strconv"
	"sync"
	"time"
)

// slug suffix alphabet: 36 symbols, uniform per character
const tokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// TokenGenerator produces random slug suffix tokens. Uniqueness is not a
// cryptographic concern here, so math/rand with an injectable seed is enough
// and keeps collision-retry tests reproducible.
type TokenGenerator struct {
	mu sync.Mutex
	r  *rand.Rand
}

func NewTokenGenerator() *TokenGenerator {
	return NewSeededTokenGenerator(time.Now().UnixNano())
}

func NewSeededTokenGenerator(seed int64) *TokenGenerator {
	return &TokenGenerator{r: rand.New(rand.NewSource(seed))}
}

// Token returns a random string of length n drawn from 0-9a-z.
func (g *TokenGenerator) Token(n int) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := make([]byte, n)
	for i := range b {
		b[i] = tokenAlphabet[g.r.Intn(len(tokenAlphabet))]
	}
	return string(b)
}

// TimestampToken returns the current time in milliseconds since epoch,
// base-36 encoded. Used for the unconditional last-resort slug suffix.
func TimestampToken(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36)
}
