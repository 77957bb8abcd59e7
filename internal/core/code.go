package core

import (
	"crypto/rand"
	"fmt"
	"io"
)

// codeAlphabet is the full uppercase alphanumeric set. Four characters give
// 36^4 (about 1.68M) combinations, so collisions stay negligible at any
// realistic room count.
const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the number of characters in a room code.
const CodeLength = 4

// maxCodeAttempts bounds the collision-retry loop. Hitting it means the live
// room table is saturated; that is a transient resource condition, not a bug.
const maxCodeAttempts = 64

// CodeGenerator mints short human-typable room codes that do not collide
// with any currently live room.
type CodeGenerator struct {
	rand io.Reader
}

// NewCodeGenerator returns a generator backed by crypto/rand.
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{rand: rand.Reader}
}

// Generate returns a fresh code for which taken reports false. Exhausting
// the retry budget surfaces as ErrCodeSpaceExhausted.
func (g *CodeGenerator) Generate(taken func(string) bool) (string, error) {
	raw := make([]byte, CodeLength)
	code := make([]byte, CodeLength)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		if _, err := io.ReadFull(g.rand, raw); err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		for i, b := range raw {
			code[i] = codeAlphabet[int(b)%len(codeAlphabet)]
		}
		if candidate := string(code); !taken(candidate) {
			return candidate, nil
		}
	}

	return "", ErrCodeSpaceExhausted
}
