package test

import (
	"math/rand"
	"sync"
	"time"
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a lowercase alphanumeric string whose length falls
// within the given bounds. Fixtures use it to keep usernames and emails unique
// across subtests.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	rngMu.Lock()
	defer rngMu.Unlock()

	length := minLen + rng.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = nameAlphabet[rng.Intn(len(nameAlphabet))]
	}
	return string(buf)
}
